package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sp80808/Highway-Code-Master/internal/progression"
	"github.com/sp80808/Highway-Code-Master/internal/store"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Show your current rank and XP progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		xp := progression.NewXPStore(st.KV())
		prog := progression.Calculate(xp.XP())

		fmt.Printf("%s  %s (level %d)\n", prog.Current.Icon, prog.Current.Name, prog.Level)
		fmt.Printf("XP: %d\n", prog.XP)
		if prog.Next != nil {
			fmt.Printf("Next: %s at %d XP (%.0f%% there)\n", prog.Next.Name, prog.Next.MinXP, prog.ProgressToNext)
		} else {
			fmt.Println("You hold the highest rank.")
		}

		fmt.Println()
		for i, r := range progression.Ranks {
			marker := "  "
			if r.Name == prog.Current.Name {
				marker = "▸ "
			}
			fmt.Printf("%s%d. %s %-22s %d XP\n", marker, i+1, r.Icon, r.Name, r.MinXP)
		}
		return nil
	},
}
