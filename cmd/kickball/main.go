// kickball is a terminal kick-the-ball game whose field is exactly the
// visible screen.
//
// Usage:
//
//	kickball list             - List available game modes
//	kickball play [mode]      - Play a mode (default: kickball)
//	kickball menu             - Start menu to pick modes interactively
//	kickball serve            - Start SSH server for remote play
//	kickball scores [mode]    - Show high scores and recent matches
//	kickball bounds           - Print the field rectangle for a screen size
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom kickball.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file (default: discard)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/config"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/games/kickball"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

// logger is set up before any subcommand runs.
var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kickball",
	Short: "Kickball - kick a ball around a field the size of your terminal",
	Long: `Kickball is a small top-down football game for the terminal.

Walk the player with the arrow keys (or WASD) and kick the ball with Space
when you are close, or click the ball with the mouse to kick it away from
the click. The field is exactly the visible screen: resize the terminal and
the walls move with it.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and match history
  bounds   - Print the field rectangle for a screen size

Examples:
  kickball play
  kickball play kickball_endless --difficulty hard
  kickball menu --log-file ./kickball.log
  kickball serve --ssh :2222
  kickball bounds --width 120 --height 40`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed (0 = based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom kickball config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boundsCmd)
}

// setup validates global flags and configures logging and the game package.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "kickball",
			Level:           level,
		})
	}

	kickball.SetConfigPath(flagConfig)
	kickball.SetDifficultyPreset(flagDifficulty)
	kickball.SetLogger(logger)
	return nil
}

// preset returns the chosen difficulty, normal when none was given.
func preset() config.DifficultyPreset {
	if p := config.ParsePreset(flagDifficulty); p != "" {
		return p
	}
	return config.DifficultyNormal
}
