package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/registry"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/storage"
)

var flagMatches int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent matches",
	Long: `Display the top 10 scores and the most recent matches for a mode
(kickball when omitted).

Examples:
  kickball scores
  kickball scores kickball_endless
  kickball scores --matches 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagMatches, "matches", 5, "Number of recent matches to show (0 = none)")
}

func runScores(_ *cobra.Command, args []string) {
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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'kickball play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %s\n", "Rank", "Goals", "Date")
	fmt.Printf("  %-4s  %-6s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-6d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, statsErr := store.GetGameStats(gameID); statsErr == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Played: %d  Won: %d  Lost: %d\n", stats.HighScore, stats.GamesCount, stats.Wins, stats.Losses)
	}

	if flagMatches <= 0 {
		return
	}
	matches, err := store.RecentMatches(gameID, flagMatches)
	if err != nil || len(matches) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent matches:")
	fmt.Printf("  %-7s  %-6s  %-7s  %-6s  %s\n", "Result", "Score", "Ball", "Ticks", "Date")
	for _, m := range matches {
		result := "draw"
		switch {
		case m.Won():
			result = "win"
		case m.GoalsFor < m.GoalsAgainst:
			result = "loss"
		}
		fmt.Printf("  %-7s  %-6s  %-7s  %-6d  %s\n",
			result, fmt.Sprintf("%d-%d", m.GoalsFor, m.GoalsAgainst), m.Policy, m.DurationTicks,
			m.CreatedAt.Format("2006-01-02 15:04"))
	}
}
