// mobhold is a survival arena game for the terminal: hold out against
// endless waves of monsters while weapons fire on their own.
//
// Usage:
//
//	mobhold                   - Start menu
//	mobhold play              - Play a run directly
//	mobhold simulate          - Run the autopilot without a terminal
//	mobhold scores            - Show high scores
//	mobhold runs              - Show recent runs
//	mobhold scoreboard        - Interactive scoreboard
//	mobhold config dump       - Print the resolved configuration
//	mobhold config validate   - Check a configuration file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.mobhold/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log <path>          - Log file (default: ~/.mobhold/logs/mobhold.log)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mobhold/internal/config"
	"github.com/vovakirdan/mobhold/internal/games/mobhold"
	"github.com/vovakirdan/mobhold/internal/logging"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mobhold",
	Short: "Mobhold - survive the horde in your terminal",
	Long: `Mobhold is a survival arena game for the terminal. Move with the
keyboard or the mouse; your weapons fire on their own. Every score
threshold offers an upgrade: a new weapon, a stronger one, or a scroll
that strikes nearby enemies.

Available commands:
  play        - Play a run directly
  simulate    - Run the autopilot headlessly
  scores      - View high scores
  runs        - View recent runs
  scoreboard  - Interactive scoreboard
  config      - Dump or validate configuration
  list        - Show registered games

Examples:
  mobhold
  mobhold play --difficulty hard
  mobhold simulate --seed 42 --duration 5m
  mobhold config dump > my-mobhold.yaml`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		mobhold.SetConfigPath(flagConfig)
		mobhold.SetDifficultyPreset(flagDifficulty)
		return nil
	},
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mobhold/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", logging.DefaultPath, "Log file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(scoreboardCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogger builds the logger for a command and hands it to the game.
// Interactive commands log to the rotating file, since the terminal UI
// owns the screen.
func openLogger(stderr bool) (*log.Logger, io.Closer) {
	logger, closer, err := logging.New(logging.Options{
		Path:   flagLogPath,
		Level:  flagLogLevel,
		Stderr: stderr,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	mobhold.SetLogger(logger)
	return logger, closer
}

// terminalSize returns the stdout size, or 80x24 when unknown.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
