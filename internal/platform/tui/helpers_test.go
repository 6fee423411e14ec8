package tui

import (
	"time"

	"github.com/vovakirdan/dodge/internal/core"
)

// stubGame records the frames it is stepped with and ends when told to.
type stubGame struct {
	frames   []core.InputFrame
	elapsed  []time.Duration
	state    core.GameState
	overAt   int // Step count that triggers GameOver, 0 for never
	rendered int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	if g.state.Over() {
		return core.StepResult{State: g.state}
	}
	g.frames = append(g.frames, in.Clone())
	g.elapsed = append(g.elapsed, elapsed)

	switch {
	case in.Has(core.ActionQuit):
		g.state.Phase = core.PhaseQuit
	case in.Has(core.ActionPause):
		g.state.Paused = !g.state.Paused
	case g.overAt > 0 && len(g.frames) >= g.overAt:
		g.state.Phase = core.PhaseGameOver
	default:
		g.state.Frames++
		g.state.Score = g.state.Frames / 10
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst core.Canvas) {
	g.rendered++
	dst.Fill(core.ColorGray)
	dst.FillRect(core.NewRect(215, 550, 50, 80), core.ColorGreen)
	dst.DrawText(240, 10, "Score: 0", 30, core.ColorWhite)
}

func (g *stubGame) State() core.GameState {
	return g.state
}

// fakeClock is a settable clock for key event timestamps.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}
