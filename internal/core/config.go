package core

// RuntimeConfig describes the host surface a game runs on.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second
	Seed     int64 // RNG seed, 0 means derive one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Phase is the lifecycle stage of a game.
type Phase int

const (
	// PhasePlaying is the only phase in which the simulation advances.
	PhasePlaying Phase = iota
	// PhaseGameOver is entered on collision. The end screen is shown.
	PhaseGameOver
	// PhaseQuit is entered when the player chooses to stop. Nothing is shown.
	PhaseQuit
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// GameState summarizes a game for the platform layer.
type GameState struct {
	Score     int   // Display score
	Frames    int   // Frames survived
	Obstacles int   // Live obstacle count
	Phase     Phase // Lifecycle phase
	Paused    bool  // Whether the game is paused
}

// Over reports whether the game has reached a terminal phase.
func (s GameState) Over() bool {
	return s.Phase != PhasePlaying
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State   GameState
	Spawned bool // An obstacle was spawned this frame
	Removed int  // Obstacles that left the field this frame
}
