package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/photonics/internal/platform/tui"
	"github.com/vovakirdan/photonics/internal/registry"
	"github.com/vovakirdan/photonics/internal/storage"
)

var (
	flagScoresTUI     bool
	flagScoresClear   bool
	flagScoresAll     bool
	flagScoresSummary bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show caught counts and quiz results",
	Long: `Display the top 10 caught counts and the latest quiz results for a
variant (the guided game by default). With --tui an interactive
scoreboard opens instead.

Examples:
  photonics scores
  photonics scores photon_free
  photonics scores --tui
  photonics scores --all
  photonics scores --summary
  photonics scores photon --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and quiz results of the variant")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded session of the variant, newest first")
	scoresCmd.Flags().BoolVar(&flagScoresSummary, "summary", false, "Show totals for every variant played so far")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		cfg := terminalConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		logger.Info("scores cleared", "variant", gameID)
		return nil
	}

	if flagScoresSummary {
		return printSummary(store)
	}
	if flagScoresAll {
		return printAllSessions(store, gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("Photons Caught - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'photonics play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Caught", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "------", "----")
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
		}

		stats, err := store.GetGameStats(gameID)
		if err == nil {
			fmt.Println()
			fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
		}
	}

	return printQuizResults(store, gameID)
}

// printQuizResults lists the most recent quiz attempts.
func printQuizResults(store *storage.Store, gameID string) error {
	results, err := store.RecentQuizResults(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving quiz results: %w", err)
	}
	if len(results) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Quiz Results")
	fmt.Println()
	fmt.Printf("  %-6s  %-10s  %s\n", "Score", "Answers", "Date")
	fmt.Printf("  %-6s  %-10s  %s\n", "-----", "-------", "----")
	for _, r := range results {
		fmt.Printf("  %-6s  %-10s  %s\n", fmt.Sprintf("%d/%d", r.Score, r.Total), r.Answers, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, found, err := store.BestQuizScore(gameID); err == nil && found {
		fmt.Println()
		fmt.Printf("Best quiz: %d/%d\n", best.Score, best.Total)
	}
	return nil
}

// printAllSessions lists every caught count recorded for a variant.
func printAllSessions(store *storage.Store, gameID string) error {
	scores, err := store.AllScores(gameID)
	if err != nil {
		return fmt.Errorf("retrieving sessions: %w", err)
	}
	if len(scores) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %s\n", "Date", "Caught")
	fmt.Printf("  %-16s  %s\n", "----", "------")
	for _, entry := range scores {
		fmt.Printf("  %-16s  %d\n", entry.CreatedAt.Format("2006-01-02 15:04"), entry.Score)
	}
	return nil
}

// printSummary shows aggregated statistics for every variant with sessions.
func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving statistics: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("Nothing played yet.")
		return nil
	}

	ids := slices.Sorted(maps.Keys(all))
	fmt.Printf("  %-12s  %6s  %5s  %7s  %6s  %7s  %s\n", "Variant", "Games", "Best", "Average", "Total", "Quizzes", "Last played")
	for _, id := range ids {
		st := all[id]
		last := "-"
		if !st.LastPlayed.IsZero() {
			last = st.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-12s  %6d  %5d  %7.1f  %6d  %7d  %s\n",
			id, st.GamesCount, st.HighScore, st.AvgScore, st.TotalScore, st.QuizCount, last)
	}
	return nil
}
