// kickball-gui runs kickball in a resizable desktop window.
//
// Usage:
//
//	kickball-gui [--endless] [--difficulty hard] [--width 960 --height 600]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/config"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/games/kickball"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/platform/gui"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/storage"
)

var (
	flagWidth      int
	flagHeight     int
	flagScale      float64
	flagFPS        int
	flagEndless    bool
	flagDifficulty string
	flagConfig     string
	flagDBPath     string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kickball-gui",
	Short: "Kickball in a desktop window",
	Long: `Play kickball in a resizable window. The field is the window.

Controls:
  Arrows/WASD - Move
  Space       - Kick (when the ball is in reach)
  Mouse click - Kick the clicked ball away from the cursor, or walk there
  P/Esc       - Pause
  R           - Restart (after game over)
  Q           - Quit`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	def := gui.DefaultOptions()
	rootCmd.Flags().IntVar(&flagWidth, "width", def.Width, "Initial window width in pixels")
	rootCmd.Flags().IntVar(&flagHeight, "height", def.Height, "Initial window height in pixels")
	rootCmd.Flags().Float64Var(&flagScale, "scale", def.PixelsPerUnit, "Pixels per world unit")
	rootCmd.Flags().IntVar(&flagFPS, "fps", def.TickRate, "Tick rate (ticks per second)")
	rootCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play without a win score")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom kickball config YAML")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database (empty = don't save)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log to stderr")
}

func run(_ *cobra.Command, _ []string) error {
	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	logger := log.New(io.Discard)
	if flagVerbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "kickball-gui",
			Level:           log.DebugLevel,
		})
	}
	kickball.SetConfigPath(flagConfig)

	var store *storage.Store
	if flagDBPath != "" {
		s, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open scores database", "err", err)
		} else {
			store = s
			defer store.Close()
		}
	}

	return gui.Run(gui.Options{
		Width:         flagWidth,
		Height:        flagHeight,
		PixelsPerUnit: flagScale,
		TickRate:      flagFPS,
		Endless:       flagEndless,
		Difficulty:    preset,
		Store:         store,
		Logger:        logger,
	})
}
