package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lexiq/lexiq/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show placement history and aggregates",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		repo, err := s.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}

		ctx := context.Background()
		sessions, err := repo.RecentSessions(ctx, limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No placements recorded yet. Run `lexiq place` to take one.")
			return nil
		}

		fmt.Printf("%-19s  %-12s  %6s  %7s  %7s  %6s  %s\n",
			"Date", "Level", "Theta", "SE", "Correct", "Time", "Outcome")
		fmt.Println(strings.Repeat("─", 78))

		var completed, totalItems, totalCorrect int
		for _, sess := range sessions {
			outcome := sess.StopReason
			if sess.Action == "aborted" {
				outcome = "aborted"
			} else {
				completed++
				totalItems += sess.ItemsServed
				totalCorrect += sess.CorrectCount
			}
			fmt.Printf("%-19s  %-12s  %+6.2f  %7.2f  %4d/%-2d  %6s  %s\n",
				sess.Timestamp.Local().Format("2006-01-02 15:04:05"),
				strings.ToUpper(sess.Level),
				sess.Theta,
				sess.StandardError,
				sess.CorrectCount,
				sess.ItemsServed,
				(time.Duration(sess.DurationSecs) * time.Second).String(),
				outcome,
			)
		}

		fmt.Println(strings.Repeat("─", 78))
		fmt.Printf("%d placements (%d completed)", len(sessions), completed)
		if totalItems > 0 {
			fmt.Printf(", %.0f%% correct overall", 100*float64(totalCorrect)/float64(totalItems))
		}
		fmt.Println()
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of placements to show")
}
