// Package quota enforces the daily attempt limit. The simulation itself
// never blocks on it; the gate is consulted by the platform layer before
// an attempt starts.
package quota

import (
	"fmt"
	"time"

	"github.com/vovakirdan/breach-runner/internal/storage"
)

// Unlimited disables the gate.
const Unlimited = 0

// Gate counts today's recorded runs against a daily limit.
type Gate struct {
	store *storage.Store
	limit int
	now   func() time.Time
}

// New creates a gate over the given store. A non-positive limit means
// unlimited attempts.
func New(store *storage.Store, limit int) *Gate {
	return &Gate{store: store, limit: limit, now: time.Now}
}

// Limit returns the configured daily limit, 0 when unlimited.
func (g *Gate) Limit() int {
	if g.limit <= 0 {
		return Unlimited
	}
	return g.limit
}

// Remaining returns how many attempts are left today. Returns -1 when the
// gate is unlimited.
func (g *Gate) Remaining() (int, error) {
	if g.limit <= 0 {
		return -1, nil
	}
	used, err := g.store.RunsOn(g.now())
	if err != nil {
		return 0, fmt.Errorf("quota: %w", err)
	}
	left := g.limit - used
	if left < 0 {
		left = 0
	}
	return left, nil
}

// Allow reports whether another attempt may start today.
func (g *Gate) Allow() (bool, error) {
	left, err := g.Remaining()
	if err != nil {
		return false, err
	}
	return left != 0, nil
}
