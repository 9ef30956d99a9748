package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in host units (cells or pixels)
	ScreenH  int   // Screen height in host units
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Dt returns the duration of one tick in seconds.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score         int  // Player's score
	OpponentScore int  // Goals conceded
	GameOver      bool // Whether the game has ended
	Paused        bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventNone        EventKind = iota
	EventGoalFor               // Player scored
	EventGoalAgainst           // Player conceded
	EventKick                  // Ball was kicked
	EventMatchOver             // Win score reached
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventGoalFor:
		return "goal_for"
	case EventGoalAgainst:
		return "goal_against"
	case EventKick:
		return "kick"
	case EventMatchOver:
		return "match_over"
	default:
		return "none"
	}
}

// Event is returned from Step so hosts can react without callbacks.
type Event struct {
	Kind  EventKind
	Value int // Goal count for goal events
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
