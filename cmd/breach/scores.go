package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/breach-runner/internal/platform/tui"
	"github.com/vovakirdan/breach-runner/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history",
	Long: `Display the top 10 recorded runs.

Examples:
  breach scores
  breach scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse runs in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Run History - Breach Runner")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breach play' to record the first run!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-6s  %-10s  %-7s  %s\n",
		"Rank", "Score", "Keys", "Doors", "Takedowns", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-6s  %-10s  %-7s  %s\n",
		"----", "-----", "----", "-----", "---------", "------", "----")

	for i, entry := range runs {
		result := "traced"
		if entry.Won {
			result = "breach"
		}
		takedowns := fmt.Sprintf("%d (L%d)", entry.BossTakedowns, entry.BestBossLevel)
		fmt.Printf("  %-4d  %-10d  %-5d  %-6d  %-10s  %-7s  %s\n",
			i+1, entry.Score, entry.Keys, entry.Backdoors,
			takedowns, result, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if highScore, hsErr := store.HighScore(); hsErr == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
