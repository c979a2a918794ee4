// breach is a terminal runner: dodge firewalls, collect keys and backdoors,
// and take down the sentinels guarding the system core.
//
// Usage:
//
//	breach play              - Start a run
//	breach scores            - Show run history
//	breach achievements      - Show unlocked achievements
//	breach serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.breach/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breach",
	Short: "Breach Runner - Hack your way to the system core",
	Long: `Breach Runner is a terminal arcade runner. Steer through scrolling
firewall rows, bank safety keys, plant backdoors, and dismantle the
sentinels that spawn as you score.

Available commands:
  play          - Start a run
  scores        - View run history
  achievements  - View unlocked achievements
  serve         - Start SSH server for remote play

Examples:
  breach play
  breach play --difficulty hard
  breach scores --interactive
  breach serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breach/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(serveCmd)
}
