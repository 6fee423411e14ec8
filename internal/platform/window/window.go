// Package window runs a game in a desktop window through ebiten. Unlike the
// terminal front end it sees real key releases, so held keys need no
// emulation.
package window

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/registry"
)

// Program adapts a registry.Game to ebiten.Game.
type Program struct {
	game     registry.Game
	cfg      config.DodgeConfig
	bindings Bindings
	keys     KeyState
	face     *text.GoTextFaceSource
	now      func() time.Time
	last     time.Time
	state    core.GameState
	onFinish func(core.GameState)
	finished bool
}

// Option configures a Program.
type Option func(*Program)

// WithFinishHook registers a callback invoked once when the game ends.
func WithFinishHook(fn func(core.GameState)) Option {
	return func(p *Program) {
		p.onFinish = fn
	}
}

// WithKeyState replaces the ebiten keyboard, for driving a Program without a window.
func WithKeyState(keys KeyState) Option {
	return func(p *Program) {
		p.keys = keys
	}
}

// WithClock overrides the clock used to measure frame time.
func WithClock(now func() time.Time) Option {
	return func(p *Program) {
		p.now = now
	}
}

// NewProgram creates a Program for game.
func NewProgram(game registry.Game, cfg config.DodgeConfig, opts ...Option) *Program {
	p := &Program{
		game:     game,
		cfg:      cfg,
		bindings: DefaultBindings(),
		keys:     ebitenKeys{},
		now:      time.Now,
		state:    game.State(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.last = p.now()
	return p
}

// Update advances the game by one tick. It returns ebiten.Termination once
// the player quits, closes the window, or presses a key on the end screen.
func (p *Program) Update() error {
	if ebiten.IsWindowBeingClosed() {
		p.quit()
		return ebiten.Termination
	}
	return p.tick()
}

// tick is Update without window queries.
func (p *Program) tick() error {
	now := p.now()
	elapsed := max(0, now.Sub(p.last))
	p.last = now

	switch p.state.Phase {
	case core.PhaseQuit:
		return ebiten.Termination
	case core.PhaseGameOver:
		if p.keys.AnyJustPressed() {
			return ebiten.Termination
		}
		return nil
	}

	p.state = p.game.Step(p.bindings.Frame(p.keys), elapsed).State
	if p.state.Over() {
		p.finish()
	}
	if p.state.Phase == core.PhaseQuit {
		return ebiten.Termination
	}
	return nil
}

func (p *Program) quit() {
	if !p.state.Over() {
		frame := core.NewInputFrame()
		frame.Set(core.ActionQuit)
		p.state = p.game.Step(frame, 0).State
	}
	p.finish()
}

func (p *Program) finish() {
	if p.finished {
		return
	}
	p.finished = true
	if p.onFinish != nil {
		p.onFinish(p.state)
	}
}

// Draw renders the game onto the window.
func (p *Program) Draw(screen *ebiten.Image) {
	p.game.Render(&imageCanvas{dst: screen, face: p.face})
}

// Layout keeps the logical screen at the field size; ebiten scales it to
// the window.
func (p *Program) Layout(_, _ int) (int, int) {
	return p.cfg.Field.Width, p.cfg.Field.Height
}

// State returns the last known game state.
func (p *Program) State() core.GameState {
	return p.state
}

// Run opens a window, plays the game and returns its final state.
func Run(game registry.Game, cfg config.DodgeConfig, opts ...Option) (core.GameState, error) {
	face, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
	if err != nil {
		return game.State(), fmt.Errorf("window: load font: %w", err)
	}

	p := NewProgram(game, cfg, opts...)
	p.face = face

	ebiten.SetWindowSize(cfg.Field.Width, cfg.Field.Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(cfg.Timing.FPS)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(p); err != nil && !errors.Is(err, ebiten.Termination) {
		return p.State(), fmt.Errorf("window: %w", err)
	}
	return p.State(), nil
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (ebitenKeys) JustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func (ebitenKeys) AnyJustPressed() bool {
	return len(inpututil.AppendJustPressedKeys(nil)) > 0
}

// imageCanvas draws field pixels directly onto an ebiten image.
type imageCanvas struct {
	dst  *ebiten.Image
	face *text.GoTextFaceSource
}

func (c *imageCanvas) Fill(col core.Color) {
	c.dst.Fill(col.RGBA())
}

func (c *imageCanvas) FillRect(r core.Rect, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col.RGBA(), false)
}

func (c *imageCanvas) DrawText(cx, y int, s string, size int, col core.Color) {
	if c.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cx), float64(y))
	op.ColorScale.ScaleWithColor(col.RGBA())
	op.PrimaryAlign = text.AlignCenter
	text.Draw(c.dst, s, &text.GoTextFace{
		Source: c.face,
		Size:   float64(size),
	}, op)
}
