package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the platform-facing summary of a game.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Lives remaining, for games that have them
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended in victory
	Paused   bool // Whether the game is paused
}

// Event is something that happened during a tick, reported to the platform
// for logging. Name is a short machine name, Value its subject (e.g. a cell).
type Event struct {
	Name  string
	Value int
}

// Event names shared by games and the platform.
const (
	EventNewSession = "new_session" // Value: total bombs
	EventWon        = "won"         // Value: final score
	EventLost       = "lost"        // Value: final score
)

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
