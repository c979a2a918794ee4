// Package achievements defines the unlockable badge catalog and the rules
// that award them from lifetime run statistics. Evaluation is pure; the
// persistence of unlocks lives in the storage package.
package achievements

import (
	"fmt"

	"github.com/vovakirdan/breach-runner/internal/storage"
)

// Achievement is one unlockable badge.
type Achievement struct {
	ID          string
	Title       string
	Description string
}

// Achievement IDs. Stable, stored in the database as-is.
const (
	FirstRun      = "first-run"
	FirstKey      = "first-key"
	FirstBackdoor = "first-backdoor"
	FirstTakedown = "first-takedown"
	DeepTakedown  = "deep-takedown"
	CoreTakedown  = "core-takedown"
	Breach10      = "breach-10"
	Breach25      = "breach-25"
	Breach50      = "breach-50"
	Breach75      = "breach-75"
	FullBreach    = "full-breach"
	Grinder3      = "grinder-3"
	Grinder10     = "grinder-10"
)

// Catalog lists every achievement in display order.
var Catalog = []Achievement{
	{FirstRun, "Jacked In", "Finish your first run"},
	{FirstKey, "Keymaster", "Collect a safety key"},
	{FirstBackdoor, "Backdoor Dealer", "Collect a backdoor"},
	{FirstTakedown, "Sentinel Down", "Defeat a sentinel"},
	{DeepTakedown, "Deep Strike", "Defeat a level 2 sentinel"},
	{CoreTakedown, "Core Breach", "Defeat a level 3 sentinel"},
	{Breach10, "Foothold", "Reach 10% completion"},
	{Breach25, "Infiltrator", "Reach 25% completion"},
	{Breach50, "Halfway In", "Reach 50% completion"},
	{Breach75, "Almost There", "Reach 75% completion"},
	{FullBreach, "System Breached", "Reach 100% completion"},
	{Grinder3, "Persistent", "Play 3 runs in one day"},
	{Grinder10, "Obsessed", "Play 10 runs in one day"},
}

// completionTiers maps score floors to completion-tier IDs, checked against
// the best lifetime score (1000 points per percent).
var completionTiers = []struct {
	score int
	id    string
}{
	{10000, Breach10},
	{25000, Breach25},
	{50000, Breach50},
	{75000, Breach75},
	{100000, FullBreach},
}

// Earned returns the IDs of every achievement the given lifetime counters
// qualify for. runsToday counts today's finished runs including the one
// just recorded.
func Earned(c storage.Counters, runsToday int) []string {
	var ids []string

	if c.Runs >= 1 {
		ids = append(ids, FirstRun)
	}
	if c.Keys >= 1 {
		ids = append(ids, FirstKey)
	}
	if c.Backdoors >= 1 {
		ids = append(ids, FirstBackdoor)
	}
	if c.BossTakedowns >= 1 {
		ids = append(ids, FirstTakedown)
	}
	if c.BestBossLevel >= 2 {
		ids = append(ids, DeepTakedown)
	}
	if c.BestBossLevel >= 3 {
		ids = append(ids, CoreTakedown)
	}
	for _, tier := range completionTiers {
		if c.BestScore >= tier.score {
			ids = append(ids, tier.id)
		}
	}
	if runsToday >= 3 {
		ids = append(ids, Grinder3)
	}
	if runsToday >= 10 {
		ids = append(ids, Grinder10)
	}

	return ids
}

// Sync evaluates the current lifetime counters against the catalog and
// persists any unlocks not yet recorded. Returns the newly unlocked
// achievements in catalog order.
func Sync(store *storage.Store, runsToday int) ([]Achievement, error) {
	counters, err := store.Totals()
	if err != nil {
		return nil, fmt.Errorf("achievements: %w", err)
	}

	earned := make(map[string]bool)
	for _, id := range Earned(counters, runsToday) {
		earned[id] = true
	}

	var fresh []Achievement
	for _, a := range Catalog {
		if !earned[a.ID] {
			continue
		}
		isNew, err := store.Unlock(a.ID)
		if err != nil {
			return nil, fmt.Errorf("achievements: %w", err)
		}
		if isNew {
			fresh = append(fresh, a)
		}
	}

	return fresh, nil
}

// ByID returns the catalog entry for an ID.
func ByID(id string) (Achievement, bool) {
	for _, a := range Catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
