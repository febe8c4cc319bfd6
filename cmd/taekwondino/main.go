// taekwondino is a side-scrolling platformer for the terminal: a dinosaur
// martial artist crosses a series of levels, stomping beetles and raptors.
//
// Usage:
//
//	taekwondino play               - Play in this terminal
//	taekwondino levels             - Show the configured levels
//	taekwondino simulate           - Run a scripted game headless
//	taekwondino scores             - Show the best runs
//	taekwondino serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.taekwondino/runs.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//
// TKD_DB and TKD_LOG_LEVEL, from the environment or a .env file in the
// working directory, replace the defaults of --db and --log-level.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const (
	envDBPath   = "TKD_DB"
	envLogLevel = "TKD_LOG_LEVEL"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "taekwondino",
	Short: "Tae Kwon Dino - a martial arts platformer in your terminal",
	Long: `Tae Kwon Dino is a side-scrolling platformer played in the terminal.
Walk, run and jump across each level; land on monsters to defeat them,
and avoid touching them from the side.

Available commands:
  play      - Play in this terminal
  levels    - Show the configured levels
  simulate  - Run a scripted game without a terminal UI
  scores    - View the best runs
  serve     - Start SSH server for remote play

Examples:
  taekwondino play
  taekwondino play --difficulty hard
  taekwondino simulate --frames 600 --script "R+S*200,R+U,R*100"
  taekwondino serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnvironment,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.taekwondino/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadEnvironment reads .env (if present) and lets the environment fill in
// flags the user did not set.
func loadEnvironment(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot read .env: %w", err)
	}

	flags := cmd.Flags()
	if v := os.Getenv(envDBPath); v != "" && !flags.Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv(envLogLevel); v != "" && !flags.Changed("log-level") {
		flagLogLevel = v
	}

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := log.ParseLevel(flagLogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", flagLogLevel)
	}
	return nil
}

// newLogger creates a component logger at the configured level.
func newLogger(prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}
