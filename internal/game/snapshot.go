package game

import (
	"math"

	"github.com/vovakirdan/breach-runner/internal/core"
)

// Snapshot contains the complete attempt state for save/resume and
// determinism testing. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64
	Elapsed  float64
	Paused   bool
	GameOver bool

	// Player (8 fields)
	PlayerX      float64
	PlayerY      float64
	PlayerVX     float64
	PlayerVY     float64
	PlayerRadius float64
	Invulnerable bool
	InvulnTime   float64
	Shields      int

	Score        float64
	ScrollSpeed  float64
	AttemptsLeft int
	Active       bool
	Won          bool

	Keys          int
	Backdoors     int
	BossTakedowns int
	BestBossLevel int

	// Obstacles (each is 5 floats: X, Y, W, H, Phase)
	ObstacleCount int
	ObstacleData  []float64

	// Boosters (each is 4 floats: Kind, X, Y, Size) plus an active flag
	BoosterCount  int
	BoosterData   []float64
	BoosterActive []bool

	// Boss: geometry is rebuilt from Level and the field dimensions; only
	// the mutable encounter state is captured.
	HasBoss        bool
	BossActive     bool
	BossLevel      int
	BossCenterX    float64
	BossCenterY    float64
	OuterAngle     float64
	InnerAngle     float64
	VulnTimer      float64
	Cooldown       float64
	CardActive     bool
	LineDestroyed  []bool
	LineVulnerable []bool

	// RNG states for the boss selection and maze generation streams.
	RNGState     uint64
	MazeRNGState uint64
	MazeSinceRow float64
}

// Snapshot returns the current attempt state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := &g.state

	obstacleData := make([]float64, len(s.Obstacles)*5)
	for i, o := range s.Obstacles {
		idx := i * 5
		obstacleData[idx] = o.Rect.X
		obstacleData[idx+1] = o.Rect.Y
		obstacleData[idx+2] = o.Rect.W
		obstacleData[idx+3] = o.Rect.H
		obstacleData[idx+4] = o.Phase
	}

	boosterData := make([]float64, len(s.Boosters)*4)
	boosterActive := make([]bool, len(s.Boosters))
	for i, b := range s.Boosters {
		idx := i * 4
		boosterData[idx] = float64(b.Kind)
		boosterData[idx+1] = b.Pos.X
		boosterData[idx+2] = b.Pos.Y
		boosterData[idx+3] = b.Size
		boosterActive[i] = b.Active
	}

	snap := Snapshot{
		Tick:     g.tickCount,
		Elapsed:  g.elapsed,
		Paused:   g.paused,
		GameOver: g.gameOver,

		PlayerX:      s.Player.Pos.X,
		PlayerY:      s.Player.Pos.Y,
		PlayerVX:     s.Player.Vel.X,
		PlayerVY:     s.Player.Vel.Y,
		PlayerRadius: s.Player.Radius,
		Invulnerable: s.Player.Invulnerable,
		InvulnTime:   s.Player.InvulnTime,
		Shields:      s.Player.Shields,

		Score:        s.Score,
		ScrollSpeed:  s.ScrollSpeed,
		AttemptsLeft: s.AttemptsLeft,
		Active:       s.Active,
		Won:          s.Won,

		Keys:          s.Keys,
		Backdoors:     s.Backdoors,
		BossTakedowns: s.BossTakedowns,
		BestBossLevel: s.BestBossLevel,

		ObstacleCount: len(s.Obstacles),
		ObstacleData:  obstacleData,
		BoosterCount:  len(s.Boosters),
		BoosterData:   boosterData,
		BoosterActive: boosterActive,

		RNGState:     g.rng.State(),
		MazeRNGState: g.maze.rng.State(),
		MazeSinceRow: g.maze.sinceRow,
	}

	if b := s.Boss; b != nil {
		snap.HasBoss = true
		snap.BossActive = b.Active
		snap.BossLevel = b.Level
		snap.BossCenterX = b.Center.X
		snap.BossCenterY = b.Center.Y
		snap.OuterAngle = b.OuterAngle
		snap.InnerAngle = b.InnerAngle
		snap.VulnTimer = b.VulnTimer
		snap.Cooldown = b.Cooldown
		snap.CardActive = b.Card.Active
		snap.LineDestroyed = make([]bool, len(b.Lines))
		snap.LineVulnerable = make([]bool, len(b.Lines))
		for i := range b.Lines {
			snap.LineDestroyed[i] = b.Lines[i].Destroyed
			snap.LineVulnerable[i] = b.Lines[i].Vulnerable
		}
	}

	return snap
}

// ApplySnapshot restores attempt state from a snapshot. The game must have
// been Reset with the same runtime configuration the snapshot was taken
// under, since boss geometry is rebuilt from the field dimensions.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = snap.Tick
	g.elapsed = snap.Elapsed
	g.paused = snap.Paused
	g.gameOver = snap.GameOver

	s := &g.state
	s.Player.Pos.X = snap.PlayerX
	s.Player.Pos.Y = snap.PlayerY
	s.Player.Vel.X = snap.PlayerVX
	s.Player.Vel.Y = snap.PlayerVY
	s.Player.Radius = snap.PlayerRadius
	s.Player.Invulnerable = snap.Invulnerable
	s.Player.InvulnTime = snap.InvulnTime
	s.Player.Shields = snap.Shields

	s.Score = snap.Score
	s.ScrollSpeed = snap.ScrollSpeed
	s.AttemptsLeft = snap.AttemptsLeft
	s.Active = snap.Active
	s.Won = snap.Won

	s.Keys = snap.Keys
	s.Backdoors = snap.Backdoors
	s.BossTakedowns = snap.BossTakedowns
	s.BestBossLevel = snap.BestBossLevel

	s.Obstacles = s.Obstacles[:0]
	for i := 0; i < snap.ObstacleCount; i++ {
		idx := i * 5
		if idx+4 >= len(snap.ObstacleData) {
			break
		}
		s.Obstacles = append(s.Obstacles, Obstacle{
			Rect: core.NewRect(
				snap.ObstacleData[idx],
				snap.ObstacleData[idx+1],
				snap.ObstacleData[idx+2],
				snap.ObstacleData[idx+3],
			),
			Phase: snap.ObstacleData[idx+4],
		})
	}

	s.Boosters = s.Boosters[:0]
	for i := 0; i < snap.BoosterCount; i++ {
		idx := i * 4
		if idx+3 >= len(snap.BoosterData) || i >= len(snap.BoosterActive) {
			break
		}
		s.Boosters = append(s.Boosters, Booster{
			Kind:   BoosterKind(int(snap.BoosterData[idx])),
			Pos:    core.Vec2{X: snap.BoosterData[idx+1], Y: snap.BoosterData[idx+2]},
			Size:   snap.BoosterData[idx+3],
			Active: snap.BoosterActive[i],
		})
	}

	if snap.HasBoss {
		b := newBoss(snap.BossLevel, g.runtime.FieldW, g.runtime.FieldH, &g.cfg.Boss)
		b.Active = snap.BossActive
		b.Center = core.Vec2{X: snap.BossCenterX, Y: snap.BossCenterY}
		b.OuterAngle = snap.OuterAngle
		b.InnerAngle = snap.InnerAngle
		b.VulnTimer = snap.VulnTimer
		b.Cooldown = snap.Cooldown
		b.Card.Active = snap.CardActive
		b.Card.Pos = b.Center
		for i := range b.Lines {
			if i < len(snap.LineDestroyed) {
				b.Lines[i].Destroyed = snap.LineDestroyed[i]
			}
			if i < len(snap.LineVulnerable) {
				b.Lines[i].Vulnerable = snap.LineVulnerable[i]
			}
		}
		s.Boss = b
	} else {
		s.Boss = nil
	}

	g.rng.SetState(snap.RNGState)
	g.maze.rng.SetState(snap.MazeRNGState)
	g.maze.sinceRow = snap.MazeSinceRow
}

// Hash returns a determinism-test hash over the snapshot.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) {
		h = h*31 + v
	}
	mixF := func(v float64) {
		mix(math.Float64bits(v))
	}
	mixB := func(v bool) {
		if v {
			mix(1)
		} else {
			mix(0)
		}
	}

	mixF(snap.Elapsed)
	mixB(snap.Paused)
	mixB(snap.GameOver)

	mixF(snap.PlayerX)
	mixF(snap.PlayerY)
	mixF(snap.PlayerVX)
	mixF(snap.PlayerVY)
	mixB(snap.Invulnerable)
	mixF(snap.InvulnTime)
	mix(uint64(snap.Shields))

	mixF(snap.Score)
	mixF(snap.ScrollSpeed)
	mixB(snap.Active)
	mixB(snap.Won)
	mix(uint64(snap.Keys))
	mix(uint64(snap.Backdoors))
	mix(uint64(snap.BossTakedowns))
	mix(uint64(snap.BestBossLevel))

	mix(uint64(snap.ObstacleCount))
	for _, v := range snap.ObstacleData {
		mixF(v)
	}
	mix(uint64(snap.BoosterCount))
	for _, v := range snap.BoosterData {
		mixF(v)
	}
	for _, v := range snap.BoosterActive {
		mixB(v)
	}

	mixB(snap.HasBoss)
	if snap.HasBoss {
		mixB(snap.BossActive)
		mix(uint64(snap.BossLevel))
		mixF(snap.OuterAngle)
		mixF(snap.InnerAngle)
		mixF(snap.VulnTimer)
		mixF(snap.Cooldown)
		mixB(snap.CardActive)
		for _, v := range snap.LineDestroyed {
			mixB(v)
		}
		for _, v := range snap.LineVulnerable {
			mixB(v)
		}
	}

	mix(snap.RNGState)
	mix(snap.MazeRNGState)
	mixF(snap.MazeSinceRow)

	return h
}
