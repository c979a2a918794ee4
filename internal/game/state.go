// Package game implements the breach runner simulation core: a tick-driven
// state machine advancing player motion, the scrolling firewall maze,
// booster pickups, and the sentinel boss encounter.
package game

import "github.com/vovakirdan/breach-runner/internal/core"

// BoosterKind discriminates collectible types.
type BoosterKind int

const (
	BoosterSafetyKey BoosterKind = iota
	BoosterBackdoor
	BoosterMemoryCard
)

// String returns a human-readable name for the booster kind.
func (k BoosterKind) String() string {
	switch k {
	case BoosterSafetyKey:
		return "safety-key"
	case BoosterBackdoor:
		return "backdoor"
	case BoosterMemoryCard:
		return "memory-card"
	default:
		return "unknown"
	}
}

// Player is the runner: a disc mutated every tick by input and collision
// outcomes. It lives for exactly one attempt.
type Player struct {
	Pos          core.Vec2
	Vel          core.Vec2
	Radius       float64
	Invulnerable bool
	InvulnTime   float64 // seconds of invulnerability remaining
	Shields      int     // banked safety keys; one absorbs a lethal hit
}

// Obstacle is a positioned firewall block. Owned by the maze generator,
// consumed read-only by collision checks, discarded once it scrolls past
// the player.
type Obstacle struct {
	Rect  core.Rect
	Phase float64 // visual shimmer phase, advanced with elapsed time
}

// Booster is a collectible. Deactivated (not removed) once collected so
// collection never invalidates indices mid-iteration.
type Booster struct {
	Pos    core.Vec2
	Size   float64 // collision radius
	Kind   BoosterKind
	Active bool
}

// State aggregates everything owned by one attempt. It is created at a
// neutral baseline, mutated exclusively by Step, and discarded (or
// snapshotted for persistence) when the attempt ends.
type State struct {
	Player    Player
	Obstacles []Obstacle
	Boosters  []Booster

	Score       float64
	ScrollSpeed float64

	AttemptsLeft int // informational; the daily quota gate lives outside the sim

	Active bool
	Won    bool

	Keys           int // cumulative safety keys collected
	Backdoors      int // cumulative backdoors collected
	BossTakedowns  int // cumulative boss defeats this attempt
	BestBossLevel  int // highest boss level defeated this attempt

	// Boss is present only during or directly after an encounter
	// (including cooldown); nil while dormant.
	Boss *Boss
}

// newState builds the per-attempt baseline: player centered horizontally
// near the bottom, empty collections, zero score, no boss.
func newState(fieldW, fieldH, playerRadius float64) State {
	return State{
		Player: Player{
			Pos:    core.Vec2{X: fieldW / 2, Y: fieldH - 3},
			Radius: playerRadius,
		},
		Obstacles: make([]Obstacle, 0, 32),
		Boosters:  make([]Booster, 0, 8),
		Active:    true,
	}
}
