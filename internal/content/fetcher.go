package content

import (
	"context"

	"github.com/sp80808/Highway-Code-Master/internal/quiz"
)

// Fetcher produces quiz questions and study guides. Implementations do
// not retry internally: a failed call surfaces immediately and the
// caller offers a manual retry.
type Fetcher interface {
	// Questions returns at least count validated questions for the
	// category at the given difficulty.
	Questions(ctx context.Context, category Category, difficulty Difficulty, count int) ([]quiz.Question, error)

	// StudyGuide returns the structured learn-mode content for a topic.
	StudyGuide(ctx context.Context, category Category) (*StudyGuide, error)
}
