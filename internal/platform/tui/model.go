package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breach-runner/internal/achievements"
	"github.com/vovakirdan/breach-runner/internal/core"
	"github.com/vovakirdan/breach-runner/internal/game"
	"github.com/vovakirdan/breach-runner/internal/storage"
)

// Model is the Bubble Tea model for a breach runner session.
type Model struct {
	game       *game.Game
	keys       *KeyMapper
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	dt         float64
	inputFrame core.InputFrame
	gameState  core.GameState
	unlocked   []achievements.Achievement // unlocks earned by the last run
	quitting   bool
	runSaved   bool // whether the finished run has been persisted
}

// NewModel creates a new Bubble Tea model for one play session.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) *Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return &Model{
		game:       g,
		keys:       NewKeyMapper(),
		screen:     core.NewScreen(int(cfg.FieldW), int(cfg.FieldH)),
		store:      store,
		logger:     log.NewWithOptions(os.Stderr, log.Options{Prefix: "breach"}),
		config:     cfg,
		dt:         1.0 / float64(cfg.TickRate),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m *Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse steers the runner toward the hovered cell. Terminal cells map
// one-to-one to world units.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.inputFrame.SetPointer(core.Vec2{X: float64(msg.X), Y: float64(msg.Y)})
	return m, nil
}

// handleResize processes window resize events.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width < 20 || msg.Height < 10 {
		return m, nil
	}
	m.config.FieldW = float64(msg.Width)
	m.config.FieldH = float64(msg.Height)
	m.screen.Resize(msg.Width, msg.Height)

	// Mid-run resizes restart the attempt: the maze layout depends on the
	// field dimensions.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.unlocked = nil
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.dt, m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.persistRun()
		m.runSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// persistRun saves the finished attempt and syncs achievement unlocks.
// Best-effort: failures are logged and the session continues.
func (m *Model) persistRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	w := m.game.World()
	_, err := m.store.SaveRun(storage.RunEntry{
		Score:         m.gameState.Score,
		Keys:          w.Keys,
		Backdoors:     w.Backdoors,
		BossTakedowns: w.BossTakedowns,
		BestBossLevel: w.BestBossLevel,
		Won:           w.Won,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}

	runsToday, err := m.store.RunsOn(time.Now())
	if err != nil {
		m.logger.Warn("could not count today's runs", "error", err)
		runsToday = 0
	}
	fresh, err := achievements.Sync(m.store, runsToday)
	if err != nil {
		m.logger.Warn("could not sync achievements", "error", err)
		return
	}
	m.unlocked = fresh
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".breach", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)

	if len(m.unlocked) > 0 {
		titles := make([]string, len(m.unlocked))
		for i, a := range m.unlocked {
			titles[i] = a.Title
		}
		view += "\nUnlocked: " + strings.Join(titles, ", ")
	}

	return view
}

// Run starts the Bubble Tea program for a local play session.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(g, store, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
