// Package dodge implements Car Dodge: the player steers a car left and right
// along the bottom of the field to avoid obstacles falling from the top.
// Obstacles spawn on a wall-clock interval and fall faster as the score grows.
package dodge

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "dodge"

// Fill colors and text sizes of the presentation.
const (
	backgroundColor = core.ColorGray
	playerColor     = core.ColorGreen
	obstacleColor   = core.ColorRed
	hudColor        = core.ColorWhite

	hudTextSize       = 30
	titleTextSize     = 64
	finalTextSize     = 36
	promptTextSize    = 24
	hudTop            = 10
	pausedPromptShift = 40
)

// Game implements the Car Dodge simulation. A Game is single-use: once it
// reaches GameOver or Quit it never advances again.
type Game struct {
	cfg       config.DodgeConfig
	player    Player
	obstacles []Obstacle
	spawner   *Spawner
	frames    int // Frames survived, the raw score
	phase     core.Phase
	paused    bool
}

// New creates a game ready to play. The configuration is expected to be
// valid; see config.DodgeConfig.Validate.
func New(cfg config.DodgeConfig, rng Source) *Game {
	return &Game{
		cfg:       cfg,
		player:    NewPlayer(cfg),
		obstacles: make([]Obstacle, 0, 16),
		spawner:   NewSpawner(cfg, rng),
		phase:     core.PhasePlaying,
	}
}

// NewSeeded creates a game whose obstacles come from a seeded RNG.
func NewSeeded(cfg config.DodgeConfig, seed int64) *Game {
	return New(cfg, rand.New(rand.NewSource(seed))) //nolint:gosec // gameplay randomness
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Car Dodge"
}

// Step advances the game by one frame.
//
// Order within a frame: quit and pause handling, player movement, obstacle
// movement, spawning, collision and off-field removal, then scoring. The
// frame on which a collision is found ends the game and is not scored.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	if g.phase != core.PhasePlaying {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) {
		g.phase = core.PhaseQuit
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var result core.StepResult

	g.player.Update(in, g.cfg.Field.Width)

	for i := range g.obstacles {
		g.obstacles[i].Advance()
	}

	if o, ok := g.spawner.MaybeSpawn(elapsed, g.DisplayScore()); ok {
		g.obstacles = append(g.obstacles, o)
		result.Spawned = true
	}

	ev := Evaluate(g.player.Bounds(), g.obstacles, g.cfg.Field.Height)
	g.obstacles = ev.Survivors
	result.Removed = ev.Removed

	if ev.Collided {
		g.phase = core.PhaseGameOver
		result.State = g.State()
		return result
	}

	g.frames++

	result.State = g.State()
	return result
}

// DisplayScore returns the score shown to the player.
func (g *Game) DisplayScore() int {
	return g.cfg.Scoring.DisplayScore(g.frames)
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.DodgeConfig {
	return g.cfg
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.DisplayScore(),
		Frames:    g.frames,
		Obstacles: len(g.obstacles),
		Phase:     g.phase,
		Paused:    g.paused,
	}
}

// Render draws the current frame. While playing this is the field, the car,
// every obstacle and the score; after a collision it is the end screen.
// Nothing is drawn after a quit.
func (g *Game) Render(dst core.Canvas) {
	switch g.phase {
	case core.PhasePlaying:
		g.renderField(dst)
	case core.PhaseGameOver:
		g.renderGameOver(dst)
	}
}

// renderField draws the live playfield.
func (g *Game) renderField(dst core.Canvas) {
	w, h := g.cfg.Field.Width, g.cfg.Field.Height

	dst.Fill(backgroundColor)
	dst.FillRect(g.player.Bounds(), playerColor)
	for _, o := range g.obstacles {
		dst.FillRect(o.Bounds(), obstacleColor)
	}
	dst.DrawText(w/2, hudTop, fmt.Sprintf("Score: %d", g.DisplayScore()), hudTextSize, hudColor)

	if g.paused {
		dst.DrawText(w/2, h/2, "PAUSED", finalTextSize, hudColor)
		dst.DrawText(w/2, h/2+pausedPromptShift, "Press P to resume", promptTextSize, hudColor)
	}
}

// renderGameOver draws the fixed end-of-game screen.
func (g *Game) renderGameOver(dst core.Canvas) {
	w, h := g.cfg.Field.Width, g.cfg.Field.Height

	dst.Fill(core.ColorBlack)
	dst.DrawText(w/2, h/4, "GAME OVER", titleTextSize, core.ColorRed)
	dst.DrawText(w/2, h/2, fmt.Sprintf("Final Score: %d", g.DisplayScore()), finalTextSize, core.ColorWhite)
	dst.DrawText(w/2, h*3/4, "Press any key to exit", promptTextSize, core.ColorWhite)
}

// Register the game with the registry
func init() {
	registry.Register(ID, func(cfg config.DodgeConfig, seed int64) registry.Game {
		return NewSeeded(cfg, seed)
	})
}
