package core

// RuntimeConfig contains configuration passed to the simulation at
// initialization. The play field is measured in world units; the terminal
// platform maps one unit to one character cell.
type RuntimeConfig struct {
	FieldW   float64 // Play field width in world units
	FieldH   float64 // Play field height in world units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FieldW:   80,
		FieldH:   24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Signal is the terminal outcome reported by a tick.
type Signal int

const (
	SignalNone Signal = iota
	SignalLoss
	SignalWin
)

// String returns a human-readable name for the signal.
func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "None"
	case SignalLoss:
		return "Loss"
	case SignalWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// GameState summarizes the simulation status for the platform layer.
type GameState struct {
	Score    int  // Current score, truncated for display
	GameOver bool // Whether the attempt has ended
	Won      bool // Whether the attempt ended in a win
	Paused   bool // Whether the game is paused
}

// Event is a domain event emitted by a tick, consumed by external
// collaborators (achievement evaluator, persistence).
type Event interface {
	simEvent()
}

// BossSpawnedEvent is emitted when a score threshold spawns a sentinel.
type BossSpawnedEvent struct {
	Level int
}

func (BossSpawnedEvent) simEvent() {}

// BossDefeatedEvent is emitted when the memory card is collected.
type BossDefeatedEvent struct {
	Level int
}

func (BossDefeatedEvent) simEvent() {}

// KeyCollectedEvent is emitted when a safety key booster is picked up.
type KeyCollectedEvent struct{}

func (KeyCollectedEvent) simEvent() {}

// BackdoorCollectedEvent is emitted when a backdoor booster is picked up.
type BackdoorCollectedEvent struct{}

func (BackdoorCollectedEvent) simEvent() {}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State  GameState
	Signal Signal
	Events []Event
}
