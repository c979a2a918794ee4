package game

import (
	"math"

	"github.com/vovakirdan/breach-runner/internal/config"
	"github.com/vovakirdan/breach-runner/internal/core"
)

// Ring tags a boss line as belonging to the outer or inner square ring.
type Ring int

const (
	RingOuter Ring = iota
	RingInner
)

// Line counts per ring: the outer ring is two overlapping squares with
// every edge split at its midpoint (2 squares x 4 edges x 2 halves); the
// inner ring is the same two squares at half scale with unsplit edges.
const (
	OuterLineCount = 16
	InnerLineCount = 8
)

// minBossField is the smallest field dimension used for boss sizing.
// Degenerate play-field dimensions are clamped up to it so spawn
// construction is all-or-nothing and never produces collapsed geometry.
const minBossField = 16.0

// Line is one destructible segment of the sentinel. Endpoints are stored
// in the boss's local unrotated frame, relative to the boss center; world
// coordinates are produced per tick by rotating about the center by the
// ring's current angle. A destroyed line is permanently inert: it never
// rejoins vulnerability selection or collision checks.
type Line struct {
	ID         int
	Ring       Ring
	A, B       core.Vec2 // local frame, relative to boss center
	Vulnerable bool
	Destroyed  bool
}

// Boss is the sentinel: two counter-rotating destructible square rings
// guarding a memory card fixed at its center.
type Boss struct {
	Active bool
	Center core.Vec2
	Level  int // 1..3, chosen once at spawn from the triggering threshold band

	// Lines is an arena indexed by stable small ids: outer lines occupy
	// [0, OuterLineCount), inner lines the rest.
	Lines []Line

	OuterAngle float64 // degrees, always in [0, 360)
	InnerAngle float64 // degrees, always in [0, 360)

	VulnTimer float64 // seconds until the next vulnerability round
	Cooldown  float64 // seconds left before the encounter goes dormant

	Card Booster // memory card at the boss center
}

// BossOutcome reports what one boss tick did to the player and the lines.
type BossOutcome struct {
	Lethal    bool // player touched a non-vulnerable line
	Destroyed int  // vulnerable lines destroyed this tick
	Defeated  bool // memory card collected this tick
}

// newBoss constructs a sentinel for the given level, centered in the upper
// third of the play field and sized proportionally to the smaller field
// dimension. Construction is all-or-nothing; out-of-range inputs are
// clamped, never rejected.
func newBoss(level int, fieldW, fieldH float64, cfg *config.BossConfig) *Boss {
	if level < 1 {
		level = 1
	}
	if n := len(cfg.RotationPeriods); n > 0 && level > n {
		level = n
	}
	fieldW = math.Max(fieldW, minBossField)
	fieldH = math.Max(fieldH, minBossField)

	half := cfg.SizeFactor * math.Min(fieldW, fieldH) / 2
	center := core.Vec2{X: fieldW / 2, Y: fieldH / 3}

	lines := make([]Line, 0, OuterLineCount+InnerLineCount)
	id := 0

	// Outer ring: two overlapping squares, edges split at midpoints.
	for _, rot := range []float64{0, 45} {
		corners := squareCorners(half, rot)
		for i := 0; i < 4; i++ {
			a := corners[i]
			b := corners[(i+1)%4]
			mid := a.Add(b).Scale(0.5)
			lines = append(lines, Line{ID: id, Ring: RingOuter, A: a, B: mid})
			id++
			lines = append(lines, Line{ID: id, Ring: RingOuter, A: mid, B: b})
			id++
		}
	}

	// Inner ring: same construction at half scale, edges unsplit.
	for _, rot := range []float64{0, 45} {
		corners := squareCorners(half/2, rot)
		for i := 0; i < 4; i++ {
			lines = append(lines, Line{ID: id, Ring: RingInner, A: corners[i], B: corners[(i+1)%4]})
			id++
		}
	}

	return &Boss{
		Active:    true,
		Center:    center,
		Level:     level,
		Lines:     lines,
		VulnTimer: cfg.VulnInterval,
		Card: Booster{
			Pos:    center,
			Size:   cfg.CardRadius,
			Kind:   BoosterMemoryCard,
			Active: true,
		},
	}
}

// squareCorners returns the four corners of a square with half-extent h,
// centered at the origin and rotated by rot degrees.
func squareCorners(h, rot float64) [4]core.Vec2 {
	base := [4]core.Vec2{
		{X: -h, Y: -h},
		{X: h, Y: -h},
		{X: h, Y: h},
		{X: -h, Y: h},
	}
	if rot == 0 {
		return base
	}
	var out [4]core.Vec2
	for i, c := range base {
		out[i] = core.RotateAbout(c, core.Vec2{}, rot)
	}
	return out
}

// ringAngle returns the current rotation angle for a ring.
func (b *Boss) ringAngle(r Ring) float64 {
	if r == RingInner {
		return b.InnerAngle
	}
	return b.OuterAngle
}

// WorldSegment transforms a line from the boss's local frame into world
// space using the ring's current angle.
func (b *Boss) WorldSegment(l Line) core.Segment {
	angle := b.ringAngle(l.Ring)
	return core.Segment{
		A: core.RotateAbout(b.Center.Add(l.A), b.Center, angle),
		B: core.RotateAbout(b.Center.Add(l.B), b.Center, angle),
	}
}

// RingDestroyed reports whether every line of a ring is destroyed.
func (b *Boss) RingDestroyed(r Ring) bool {
	for i := range b.Lines {
		if b.Lines[i].Ring == r && !b.Lines[i].Destroyed {
			return false
		}
	}
	return true
}

// CardExposed reports whether the memory card is eligible for collection:
// every outer line AND every inner line destroyed, card still active.
// Inner lines are collidable from spawn, but their destruction only counts
// here, at the point memory-card eligibility is checked.
func (b *Boss) CardExposed() bool {
	return b.Card.Active && b.RingDestroyed(RingOuter) && b.RingDestroyed(RingInner)
}

// Dormant reports whether the encounter is fully over: defeated and cooled
// down. The orchestrator drops the Boss once this is true.
func (b *Boss) Dormant() bool {
	return !b.Active && b.Cooldown <= 0
}

// Advance runs one boss tick: cooldown countdown while inactive, otherwise
// rotation, vulnerability cycling, line collision resolution, and the
// gated memory-card check, in that order. Rotation happens before the
// collision transforms so collisions are tested against this tick's
// geometry.
func (b *Boss) Advance(dt float64, playerPos core.Vec2, playerRadius float64, rng *RNG, cfg *config.BossConfig) BossOutcome {
	var out BossOutcome

	if !b.Active {
		if b.Cooldown > 0 {
			b.Cooldown -= dt
			if b.Cooldown < 0 {
				b.Cooldown = 0
			}
		}
		return out
	}

	// Rotation: outer rate from the level's revolution period, inner ring
	// opposite direction at a fixed multiple. Angles never grow unbounded.
	rate := rotationRate(cfg, b.Level)
	b.OuterAngle = core.WrapDeg(b.OuterAngle + rate*dt)
	b.InnerAngle = core.WrapDeg(b.InnerAngle - rate*cfg.InnerRateFactor*dt)

	// Vulnerability cycling on the shared timer.
	b.VulnTimer -= dt
	if b.VulnTimer <= 0 {
		b.VulnTimer = cfg.VulnInterval
		b.assignVulnerable(rng, cfg.VulnPerCycle)
	}

	// Collision against this tick's rotated geometry. Exactly one outcome
	// applies per colliding line: vulnerable lines are destroyed and
	// inflict no damage, anything else is lethal.
	for i := range b.Lines {
		l := &b.Lines[i]
		if l.Destroyed {
			continue
		}
		if !core.CircleSegmentOverlap(playerPos, playerRadius, b.WorldSegment(*l)) {
			continue
		}
		if l.Vulnerable {
			l.Destroyed = true
			l.Vulnerable = false
			out.Destroyed++
		} else {
			out.Lethal = true
		}
	}

	// Memory card: only evaluated once both rings are fully destroyed.
	if b.CardExposed() && core.CirclesOverlap(playerPos, playerRadius, b.Card.Pos, b.Card.Size) {
		b.Card.Active = false
		b.Active = false
		b.Cooldown = cfg.Cooldown
		out.Defeated = true
	}

	return out
}

// assignVulnerable starts a fresh vulnerability round: every flag is
// cleared, then up to n lines are chosen uniformly without replacement
// from the pooled non-destroyed lines of both rings. Destroyed lines never
// rejoin the pool.
func (b *Boss) assignVulnerable(rng *RNG, n int) {
	pool := make([]int, 0, len(b.Lines))
	for i := range b.Lines {
		b.Lines[i].Vulnerable = false
		if !b.Lines[i].Destroyed {
			pool = append(pool, i)
		}
	}
	if n > len(pool) {
		n = len(pool)
	}
	// Partial Fisher-Yates: the first n slots become the selection.
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		b.Lines[pool[i]].Vulnerable = true
	}
}

// rotationRate returns the outer ring's angular rate in degrees per second
// for the given level. A config carrying no usable period leaves the rings
// static instead of panicking or producing non-finite angles.
func rotationRate(cfg *config.BossConfig, level int) float64 {
	n := len(cfg.RotationPeriods)
	if n == 0 {
		return 0
	}
	if level > n {
		level = n
	}
	if level < 1 {
		level = 1
	}
	period := cfg.RotationPeriods[level-1]
	if period <= 0 {
		return 0
	}
	return 360 / period
}

// bossLevelForCrossing reports whether the score crossed a spawn threshold
// this tick and which difficulty band it landed in. A threshold counts as
// crossed iff the score before this tick's increment was strictly below it
// and the score after is at or above it; comparing the actual before/after
// values makes the check exact for any per-tick increment, with no
// look-back constant. The highest qualifying band wins.
func bossLevelForCrossing(before, after float64, thresholds []float64) (int, bool) {
	for i := len(thresholds) - 1; i >= 0; i-- {
		if before < thresholds[i] && after >= thresholds[i] {
			return i + 1, true
		}
	}
	return 0, false
}
