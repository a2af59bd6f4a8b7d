package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sp80808/Highway-Code-Master/internal/app"
	"github.com/sp80808/Highway-Code-Master/internal/content"
	"github.com/sp80808/Highway-Code-Master/internal/llm"
	"github.com/sp80808/Highway-Code-Master/internal/progression"
	"github.com/sp80808/Highway-Code-Master/internal/quiz"
	"github.com/sp80808/Highway-Code-Master/internal/sound"
	"github.com/sp80808/Highway-Code-Master/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set GEMINI_API_KEY (or HIGHWAY_LLM_PROVIDER with a matching key) and try again.")
		return err
	}

	kv := st.KV()
	opts := app.Options{
		Fetcher:   content.NewGenerator(provider),
		XP:        progression.NewXPStore(kv),
		Snapshots: quiz.NewSnapshotStore(kv),
		Results:   st.ResultRepo(),
		Sound:     sound.NewPlayer(),
	}

	return app.Run(opts)
}
