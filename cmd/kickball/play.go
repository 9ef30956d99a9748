package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/platform/tui"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/registry"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the specified mode (kickball when omitted).

Controls:
  Arrows/WASD - Move
  Space       - Kick (when the ball is in reach)
  Mouse click - Kick the clicked ball away from the click, or walk there
  P/Esc       - Pause
  R           - Restart (after game over)
  Ctrl+S      - Screenshot to ~/.arcade/screenshots
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Wide goals, first to 3
  normal - Starts at 30% difficulty, progresses with your score
  hard   - Narrow goals, first to 7, starts at 70% difficulty
  fixed  - No progression, stays at the config's initial level

Examples:
  kickball play
  kickball play kickball_endless
  kickball play --difficulty hard
  kickball play --config ./my-kickball.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// terminalConfig builds a runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "kickball"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'kickball list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	logger.Info("playing", "game", gameID, "difficulty", preset())
	runErr := tui.Run(game, store, terminalConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
