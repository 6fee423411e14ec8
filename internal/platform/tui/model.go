package tui

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/registry"
)

// ErrNoTerminal is returned by Run when stdin or stdout is not a terminal.
var ErrNoTerminal = errors.New("tui: stdin and stdout must be a terminal")

// helpRows is the number of rows reserved below the field for key help.
const helpRows = 1

// Model is the Bubble Tea model running a single game.
//
// While playing, key events only record input; the tick handler turns them
// into one InputFrame per frame. After game over the model stops ticking,
// shows the end screen and exits on the next key press.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	canvas   *CellCanvas
	keys     KeyMap
	help     help.Model
	hold     *HoldTracker
	pending  core.InputFrame // Discrete actions since the last tick
	config   core.RuntimeConfig
	lastTick time.Time
	now      func() time.Time
	onFinish func(core.GameState)
	state    core.GameState
	finished bool
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithClock overrides the clock used to timestamp key events.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// WithFinishHook registers a callback invoked once when the game ends,
// either by game over or by quitting.
func WithFinishHook(fn func(core.GameState)) Option {
	return func(m *Model) {
		m.onFinish = fn
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg config.DodgeConfig, rt core.RuntimeConfig, opts ...Option) Model {
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Timing.FPS
	}

	screen := core.NewScreen(rt.ScreenW, rt.ScreenH-helpRows)
	m := Model{
		game:    game,
		screen:  screen,
		canvas:  NewCellCanvas(screen, cfg.Field),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		hold:    NewHoldTracker(cfg.Timing.KeyHold()),
		pending: core.NewInputFrame(),
		config:  rt,
		now:     time.Now,
		state:   game.State(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.lastTick = m.now()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()
	action := m.keys.Action(msg)

	if m.state.Phase == core.PhaseGameOver {
		// Auto-repeat of a direction still held from play is not a new key press.
		if (action == core.ActionLeft || action == core.ActionRight) && m.hold.Held(action, now) {
			m.hold.Press(action, now)
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionQuit:
		quit := core.NewInputFrame()
		quit.Set(core.ActionQuit)
		m.state = m.game.Step(quit, 0).State
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.hold.Press(action, now)
	case core.ActionPause:
		m.pending.Set(core.ActionPause)
		m.hold.Release()
	}

	return m, nil
}

// handleResize processes window resize events. The simulation is in field
// pixels, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpRows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.state.Over() {
		return m, nil
	}

	elapsed := max(0, now.Sub(m.lastTick))
	m.lastTick = now

	frame := m.pending.Clone()
	m.pending.Clear()
	m.hold.Apply(&frame, now)

	result := m.game.Step(frame, elapsed)
	m.state = result.State

	if m.state.Over() {
		m.finish()
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// finish runs the finish hook once.
func (m *Model) finish() {
	if m.finished {
		return
	}
	m.finished = true
	if m.onFinish != nil {
		m.onFinish(m.state)
	}
}

// State returns the last known game state.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting && m.state.Phase == core.PhaseQuit {
		return ""
	}

	m.game.Render(m.canvas)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run plays the game in the current terminal and returns its final state.
// It fails with ErrNoTerminal before touching the screen if there is no TTY.
func Run(game registry.Game, cfg config.DodgeConfig, rt core.RuntimeConfig, opts ...Option) (core.GameState, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return game.State(), ErrNoTerminal
	}

	model := NewModel(game, cfg, rt, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return game.State(), fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return game.State(), nil
}
