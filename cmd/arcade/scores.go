package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/platform/tui"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game.
Games that time laps also show the fastest laps and lap statistics.

Examples:
  arcade scores racer
  arcade scores racer --course "Canyon Run"
  arcade scores swing`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

var flagScoresCourse string

func init() {
	scoresCmd.Flags().StringVar(&flagScoresCourse, "course", "", "Only show laps for this course")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Show high score
	fmt.Println()
	if len(scores) > 0 {
		highScore, err := store.HighScore(gameID)
		if err == nil {
			fmt.Printf("Best: %d\n", highScore)
		}
	}

	if _, ok := game.(registry.LapRecorder); ok {
		printLaps(store, gameID, flagScoresCourse)
	}
}

// printLaps shows the fastest laps and a summary of every lap on record.
func printLaps(store *storage.Store, gameID, course string) {
	laps, err := store.BestLaps(gameID, course, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving laps: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("Fastest Laps")
	fmt.Println()
	if len(laps) == 0 {
		fmt.Println("No laps recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "Rank", "Time", "Course", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "----", "----", "------", "----")
	for i, lap := range laps {
		dateStr := lap.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-12s  %s\n", i+1, tui.FormatLapTime(lap.Time), lap.Course, dateStr)
	}

	sum, err := store.LapStats(gameID, course)
	if err != nil || sum.Count == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("Laps: %d  Best: %s  Mean: %s  StdDev: %.1fs\n",
		sum.Count, tui.FormatLapTime(sum.Best), tui.FormatLapTime(sum.Mean), sum.StdDev.Seconds())
}
