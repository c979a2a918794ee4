package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/breach-runner/internal/core"
	"github.com/vovakirdan/breach-runner/internal/game"
	"github.com/vovakirdan/breach-runner/internal/platform/tui"
	"github.com/vovakirdan/breach-runner/internal/quota"
	"github.com/vovakirdan/breach-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagDailyLimit int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a breach run.

Controls:
  A/D, Left/Right - Steer
  W/S, Up/Down    - Nudge
  Mouse           - Steer toward the pointer
  P               - Pause
  R               - Restart (after game over)
  Ctrl+S          - Save screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  breach play
  breach play --difficulty hard
  breach play --config ./my-breach.yaml
  breach play --daily-limit 5`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagDailyLimit, "daily-limit", 0, "Max runs per day (0 = unlimited)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		FieldW:   float64(width),
		FieldH:   float64(height),
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	// Open storage; play continues without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		fmt.Fprintln(os.Stderr, "Runs will not be saved.")
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// The daily quota gate runs before the attempt starts.
	if store != nil && flagDailyLimit > 0 {
		gate := quota.New(store, flagDailyLimit)
		ok, gateErr := gate.Allow()
		if gateErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", gateErr)
			os.Exit(1)
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "Daily limit of %d runs reached. Come back tomorrow.\n", flagDailyLimit)
			os.Exit(1)
		}
		if left, remErr := gate.Remaining(); remErr == nil && left > 0 {
			fmt.Printf("Attempts left today: %d\n", left)
		}
	}

	if err := tui.Run(game.New(), store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
