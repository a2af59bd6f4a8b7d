package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sp80808/Highway-Code-Master/internal/content"
	"github.com/sp80808/Highway-Code-Master/internal/llm"
	"github.com/sp80808/Highway-Code-Master/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate content without the TUI",
}

var generateQuestionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate a question batch and print it as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("count")

		cat, err := parseCategory(category)
		if err != nil {
			return err
		}
		if count <= 0 {
			count = content.QuestionCount(cat)
		}

		fetcher, st, err := buildFetcher(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		questions, err := fetcher.Questions(cmd.Context(), cat, content.Difficulty(difficulty), count)
		if err != nil {
			return fmt.Errorf("generate questions: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(questions)
	},
}

var generateGuideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Generate a study guide and print it as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		cat, err := parseCategory(category)
		if err != nil {
			return err
		}

		fetcher, st, err := buildFetcher(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		guide, err := fetcher.StudyGuide(cmd.Context(), cat)
		if err != nil {
			return fmt.Errorf("generate study guide: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(guide)
	},
}

func init() {
	generateCmd.PersistentFlags().String("category", string(content.CategoryGeneral), "Quiz category")
	generateQuestionsCmd.Flags().String("difficulty", string(content.DifficultyMedium), "Easy, Medium or Hard")
	generateQuestionsCmd.Flags().Int("count", 0, "Number of questions (0 = category default)")

	generateCmd.AddCommand(generateQuestionsCmd)
	generateCmd.AddCommand(generateGuideCmd)
}

// buildFetcher opens the store and wires the LLM-backed fetcher. The
// caller must close the returned store.
func buildFetcher(cmd *cobra.Command) (content.Fetcher, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("LLM provider not configured: %w", err)
	}
	return content.NewGenerator(provider), st, nil
}

func parseCategory(name string) (content.Category, error) {
	for _, cat := range content.Categories {
		if string(cat) == name {
			return cat, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (valid: %v)", name, content.Categories)
}
