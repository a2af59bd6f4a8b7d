package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sp80808/Highway-Code-Master/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "highway",
	Short: "UK Highway Code quiz trainer",
	Long:  "Highway Code Master — terminal trainer that generates UK driving theory questions and study guides, and tracks your rank as you learn.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// A local .env is the easiest place to keep API keys.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides HIGHWAY_DB env var)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(llmCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then HIGHWAY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
