package game

import (
	"github.com/vovakirdan/breach-runner/internal/config"
	"github.com/vovakirdan/breach-runner/internal/core"
)

// despawnMargin is how far past the bottom edge entities travel before
// being recycled.
const despawnMargin = 4.0

// Maze procedurally generates the scrolling field of firewall rows and
// boosters ahead of the player. It owns the spawn cursor and RNG; the
// entity collections themselves live on the attempt State.
type Maze struct {
	rng    *RNG
	fieldW float64
	fieldH float64
	cfg    *config.MazeConfig
	diff   *config.DifficultyManager

	// sinceRow is the scroll distance accumulated since the last row.
	sinceRow float64
}

// NewMaze creates a generator with the given RNG seed.
func NewMaze(seed int64, fieldW, fieldH float64, cfg *config.MazeConfig, diff *config.DifficultyManager) *Maze {
	return &Maze{
		rng:    NewRNG(seed),
		fieldW: fieldW,
		fieldH: fieldH,
		cfg:    cfg,
		diff:   diff,
	}
}

// Reset reseeds the generator and clears the spawn cursor.
func (m *Maze) Reset(seed int64) {
	m.rng = NewRNG(seed)
	m.sinceRow = 0
}

// Advance scrolls existing entities downward by scroll*dt, recycles
// entities past the bottom edge, and spawns new firewall rows above the
// field as scroll distance accumulates. elapsed is total simulated time,
// used by time-based difficulty progression.
func (m *Maze) Advance(dt, scroll, elapsed float64, s *State) {
	dy := scroll * dt

	for i := range s.Obstacles {
		s.Obstacles[i].Rect.Y += dy
		s.Obstacles[i].Phase += dt
	}
	for i := range s.Boosters {
		s.Boosters[i].Pos.Y += dy
	}

	// Recycle in place once entities scroll past the player.
	live := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		if o.Rect.Y <= m.fieldH+despawnMargin {
			live = append(live, o)
		}
	}
	s.Obstacles = live

	liveBoosters := s.Boosters[:0]
	for _, b := range s.Boosters {
		if b.Pos.Y <= m.fieldH+despawnMargin {
			liveBoosters = append(liveBoosters, b)
		}
	}
	s.Boosters = liveBoosters

	m.sinceRow += dy
	spacing := m.diff.RowSpacing(m.cfg.RowSpacing, s.Score, elapsed)
	for m.sinceRow >= spacing {
		m.sinceRow -= spacing
		m.spawnRow(elapsed, s)
	}
}

// spawnRow emits one firewall row just above the visible field: a wall
// across the width with a randomly placed opening, and occasionally a
// booster floating in the opening.
func (m *Maze) spawnRow(elapsed float64, s *State) {
	gap := m.cfg.MinGap
	gapRange := m.diff.GapSize(m.cfg.MaxGap, s.Score, elapsed) - m.cfg.MinGap
	if gapRange > 0 {
		gap += m.rng.Float64() * gapRange
	}
	if gap > m.fieldW {
		gap = m.fieldW
	}
	gapX := m.rng.Float64() * (m.fieldW - gap)

	y := -m.cfg.BlockHeight
	if gapX > 0 {
		s.Obstacles = append(s.Obstacles, Obstacle{
			Rect: core.NewRect(0, y, gapX, m.cfg.BlockHeight),
		})
	}
	if gapX+gap < m.fieldW {
		s.Obstacles = append(s.Obstacles, Obstacle{
			Rect: core.NewRect(gapX+gap, y, m.fieldW-gapX-gap, m.cfg.BlockHeight),
		})
	}

	if m.rng.Float64() < m.cfg.BoosterChance {
		kind := BoosterSafetyKey
		if m.rng.Float64() < m.cfg.BackdoorWeight {
			kind = BoosterBackdoor
		}
		s.Boosters = append(s.Boosters, Booster{
			Pos:    core.Vec2{X: gapX + gap/2, Y: y + m.cfg.BlockHeight/2},
			Size:   m.cfg.BoosterSize,
			Kind:   kind,
			Active: true,
		})
	}
}

// HitObstacle reports whether the player's disc intersects any firewall
// block. Read-only over the obstacle collection.
func HitObstacle(s *State) bool {
	p := s.Player
	for i := range s.Obstacles {
		if core.CircleRectOverlap(p.Pos, p.Radius, s.Obstacles[i].Rect) {
			return true
		}
	}
	return false
}

// CollectBoosters deactivates every active booster overlapping the player
// and returns the collected kinds. Boosters are deactivated, not removed,
// so indices stay valid during iteration.
func CollectBoosters(s *State) []BoosterKind {
	p := s.Player
	var collected []BoosterKind
	for i := range s.Boosters {
		b := &s.Boosters[i]
		if !b.Active {
			continue
		}
		if core.CirclesOverlap(p.Pos, p.Radius, b.Pos, b.Size) {
			b.Active = false
			collected = append(collected, b.Kind)
		}
	}
	return collected
}
