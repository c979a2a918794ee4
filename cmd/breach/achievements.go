package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breach-runner/internal/achievements"
	"github.com/vovakirdan/breach-runner/internal/storage"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show unlocked achievements",
	Long: `Display the achievement catalog with unlock status and dates.

Examples:
  breach achievements`,
	Args: cobra.NoArgs,
	Run:  runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	unlocked, err := store.Unlocked()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving achievements: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Achievements - Breach Runner")
	fmt.Println()

	count := 0
	for _, a := range achievements.Catalog {
		mark := "[ ]"
		date := ""
		if at, ok := unlocked[a.ID]; ok {
			mark = "[x]"
			date = at.Format("2006-01-02")
			count++
		}
		fmt.Printf("  %s  %-16s  %-32s  %s\n", mark, a.Title, a.Description, date)
	}

	fmt.Println()
	fmt.Printf("Unlocked: %d/%d\n", count, len(achievements.Catalog))
}
