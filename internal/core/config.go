package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt its viewport to the screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// ScreenID identifies which top-level screen the game is showing.
type ScreenID int

const (
	ScreenTitle ScreenID = iota
	ScreenRunning
	ScreenGameOver
	ScreenEnding
)

// String returns a human-readable name for the screen.
func (s ScreenID) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenRunning:
		return "running"
	case ScreenGameOver:
		return "game_over"
	case ScreenEnding:
		return "ending"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int      // Current score
	Health   int      // Player health
	Level    int      // Zero-based index of the current level
	Screen   ScreenID // Screen currently shown
	GameOver bool     // Whether the run has ended (game over or ending)
	Paused   bool     // Whether the game is paused
}

// EventKind classifies something notable that happened during a tick.
type EventKind int

const (
	EventMonsterKilled EventKind = iota
	EventPlayerHurt
	EventLevelCleared
	EventGameOver
	EventGameCompleted
	EventRestarted
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventMonsterKilled:
		return "monster_killed"
	case EventPlayerHurt:
		return "player_hurt"
	case EventLevelCleared:
		return "level_cleared"
	case EventGameOver:
		return "game_over"
	case EventGameCompleted:
		return "game_completed"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is a notable occurrence during one tick.
type Event struct {
	Kind   EventKind
	Detail string // Monster name, level name, etc.
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
