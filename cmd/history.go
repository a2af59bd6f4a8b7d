package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sp80808/Highway-Code-Master/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		results, err := st.ResultRepo().Recent(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}
		if len(results) == 0 {
			fmt.Println("No quizzes taken yet.")
			return nil
		}

		fmt.Printf("%-19s  %-22s  %-8s  %-7s  %-5s  %s\n",
			"When", "Category", "Level", "Score", "XP", "Result")
		fmt.Println(strings.Repeat("─", 78))

		for _, r := range results {
			outcome := "pass"
			if !r.Passed {
				outcome = "fail"
			}
			fmt.Printf("%-19s  %-22s  %-8s  %2d/%-4d  %-5d  %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Category,
				r.Difficulty,
				r.Score, r.Total,
				r.XPEarned,
				outcome,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of results to show")
}
