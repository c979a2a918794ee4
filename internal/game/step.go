package game

import (
	"time"

	"github.com/vovakirdan/breach-runner/internal/config"
	"github.com/vovakirdan/breach-runner/internal/core"
)

// Game drives one attempt of the breach runner. The host calls Step once
// per frame with the elapsed time and current input; everything else is
// internal. The simulation is single-threaded and cooperatively driven:
// each Step runs to completion before the next begins, holds no resources,
// and shares nothing across attempts.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.Config
	diff    *config.DifficultyManager

	state State
	maze  *Maze
	rng   *RNG

	tickCount uint64
	elapsed   float64 // total simulated seconds this attempt
	paused    bool
	gameOver  bool
}

// configPath stores the custom config path set via CLI.
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the identifier used for storage and CLI.
func (g *Game) ID() string {
	return "breach"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Breach Runner"
}

// Reset initializes or restarts the attempt.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	g.state = newState(runtime.FieldW, runtime.FieldH, cfg.Physics.PlayerRadius)
	g.state.ScrollSpeed = cfg.Physics.BaseScrollSpeed
	g.rng = NewRNG(runtime.Seed)
	g.maze = NewMaze(runtime.Seed+1, runtime.FieldW, runtime.FieldH, &g.cfg.Maze, g.diff)

	g.tickCount = 0
	g.elapsed = 0
	g.paused = false
	g.gameOver = false
}

// World exposes the attempt state for rendering and tests. Read-only by
// convention outside this package.
func (g *Game) World() *State {
	return &g.state
}

// Config returns the loaded tuning, primarily for the platform layer.
func (g *Game) Config() *config.Config {
	return &g.cfg
}

// State returns the platform-facing status summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.state.Score),
		GameOver: g.gameOver,
		Won:      g.state.Won,
		Paused:   g.paused,
	}
}

// Completion returns the display completion percentage: 1000 score points
// per percent, capped at 100.
func (g *Game) Completion() int {
	pct := int(g.state.Score / 1000)
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Step advances the simulation by dt seconds. Within a tick, movement is
// computed before collision detection, and boss rotation before boss-line
// transforms, so collisions always see this tick's positions.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.elapsed += dt

	var events []core.Event
	signal := core.SignalNone
	lethal := false

	// Player movement from input and collision-adjusted velocity.
	g.movePlayer(dt, in)

	// Invulnerability window counts down every tick.
	p := &g.state.Player
	if p.Invulnerable {
		p.InvulnTime -= dt
		if p.InvulnTime <= 0 {
			p.Invulnerable = false
			p.InvulnTime = 0
		}
	}

	// Advance and generate the obstacle field.
	scroll := g.diff.ScrollSpeed(g.cfg.Physics.BaseScrollSpeed, g.state.Score, g.elapsed)
	g.state.ScrollSpeed = scroll
	g.maze.Advance(dt, scroll, g.elapsed, &g.state)

	scoreBefore := g.state.Score

	// Boss tick: rotation, vulnerability cycling, line collisions, card.
	if b := g.state.Boss; b != nil {
		out := b.Advance(dt, p.Pos, p.Radius, g.rng, &g.cfg.Boss)
		if out.Lethal {
			lethal = true
		}
		if out.Defeated {
			g.state.BossTakedowns++
			if b.Level > g.state.BestBossLevel {
				g.state.BestBossLevel = b.Level
			}
			events = append(events, core.BossDefeatedEvent{Level: b.Level})
		}
		if b.Dormant() {
			g.state.Boss = nil
		}
	}

	// Obstacle and booster resolution, independent of boss logic.
	if HitObstacle(&g.state) {
		lethal = true
	}
	for _, kind := range CollectBoosters(&g.state) {
		switch kind {
		case BoosterSafetyKey:
			g.state.Keys++
			g.state.Player.Shields++
			g.state.Score += g.cfg.Scoring.KeyBonus
			events = append(events, core.KeyCollectedEvent{})
		case BoosterBackdoor:
			g.state.Backdoors++
			g.state.Score += g.cfg.Scoring.BackdoorBonus
			events = append(events, core.BackdoorCollectedEvent{})
		}
	}

	// Survival score.
	g.state.Score += g.cfg.Scoring.SurvivalRate * dt

	// Spawn trigger, evaluated here rather than inside the boss machine.
	// Uses the actual before/after scores of this tick, which is exact for
	// any increment size. No spawn while a boss is active or cooling down.
	if g.state.Boss == nil {
		if level, ok := bossLevelForCrossing(scoreBefore, g.state.Score, g.cfg.Boss.Thresholds); ok {
			g.state.Boss = newBoss(level, g.runtime.FieldW, g.runtime.FieldH, &g.cfg.Boss)
			events = append(events, core.BossSpawnedEvent{Level: level})
		}
	}

	// Terminal evaluation. A banked safety key absorbs one lethal hit and
	// opens the invulnerability window instead of ending the run.
	if lethal && !p.Invulnerable {
		if p.Shields > 0 {
			p.Shields--
			p.Invulnerable = true
			p.InvulnTime = g.cfg.Physics.InvulnDuration
		} else {
			g.gameOver = true
			g.state.Active = false
			signal = core.SignalLoss
		}
	}
	if !g.gameOver && g.state.Score >= g.cfg.Scoring.WinScore {
		g.gameOver = true
		g.state.Active = false
		g.state.Won = true
		signal = core.SignalWin
	}

	return core.StepResult{
		State:  g.State(),
		Signal: signal,
		Events: events,
	}
}

// movePlayer applies directional deltas or pointer steering, then clamps
// the disc to the play field.
func (g *Game) movePlayer(dt float64, in core.InputFrame) {
	p := &g.state.Player
	speed := g.cfg.Physics.PlayerSpeed

	var vel core.Vec2
	if in.HasPointer {
		// Proportional steering toward the pointer target, capped at the
		// directional speed so pointer input has no speed advantage.
		vel = in.Pointer.Sub(p.Pos).Scale(g.cfg.Physics.PointerGain)
		if l := vel.Len(); l > speed {
			vel = vel.Scale(speed / l)
		}
	} else {
		if in.Has(core.ActionLeft) {
			vel.X -= speed
		}
		if in.Has(core.ActionRight) {
			vel.X += speed
		}
		if in.Has(core.ActionUp) {
			vel.Y -= speed
		}
		if in.Has(core.ActionDown) {
			vel.Y += speed
		}
	}

	p.Vel = vel
	p.Pos = p.Pos.Add(vel.Scale(dt))
	p.Pos.X = core.ClampF(p.Pos.X, p.Radius, g.runtime.FieldW-p.Radius)
	p.Pos.Y = core.ClampF(p.Pos.Y, p.Radius, g.runtime.FieldH-p.Radius)
}
