package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"mathventure/internal/quiz"
	"mathventure/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show all-time practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		stats, err := st.EventRepo().Totals(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		if stats.Sessions == 0 {
			fmt.Println("No sessions recorded yet. Run 'mathventure play' to start.")
			return nil
		}

		var accuracy float64
		if stats.Attempts > 0 {
			accuracy = float64(stats.Correct) / float64(stats.Attempts) * 100
		}

		fmt.Printf("Sessions:     %d\n", stats.Sessions)
		fmt.Printf("Puzzles:      %d\n", stats.Attempts)
		fmt.Printf("Correct:      %d (%.0f%%)\n", stats.Correct, accuracy)
		fmt.Printf("Best streak:  %d\n", stats.BestStreak)

		if len(stats.ByLevel) > 0 {
			fmt.Println("\nBy level:")
			levels := make([]int, 0, len(stats.ByLevel))
			for l := range stats.ByLevel {
				levels = append(levels, l)
			}
			sort.Ints(levels)
			for _, l := range levels {
				tally := stats.ByLevel[l]
				var acc float64
				if tally.Total > 0 {
					acc = float64(tally.Correct) / float64(tally.Total) * 100
				}
				fmt.Printf("  %-8s %d/%d correct (%.0f%%)\n",
					quiz.Difficulty(l), tally.Correct, tally.Total, acc)
			}
		}
		return nil
	},
}
