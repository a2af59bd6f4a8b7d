package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/sp80808/Highway-Code-Master/internal/llm"
	"github.com/sp80808/Highway-Code-Master/internal/quiz"
)

// Generation temperatures, kept low for factual accuracy. Study guides
// run slightly lower still.
const (
	questionTemperature   = 0.5
	studyGuideTemperature = 0.4
)

const maxResponseTokens = 8192

// Generator implements Fetcher using the LLM provider.
type Generator struct {
	provider llm.Provider
}

// NewGenerator creates a Generator backed by the given provider.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// questionOutput is one raw question before validation and ID assignment.
type questionOutput struct {
	QuestionText       string   `json:"questionText" validate:"required"`
	Options            []string `json:"options" validate:"len=4,dive,required"`
	CorrectOptionIndex int      `json:"correctOptionIndex" validate:"gte=0,lte=3"`
	Explanation        string   `json:"explanation" validate:"required"`
	Category           string   `json:"category"`
}

// questionBatch is the raw LLM response for a question request.
type questionBatch struct {
	Questions []questionOutput `json:"questions"`
}

// Questions generates count questions for the category and difficulty.
func (g *Generator) Questions(ctx context.Context, category Category, difficulty Difficulty, count int) ([]quiz.Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)

	req := llm.Request{
		System: examinerPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionMessage(category, difficulty, count)},
		},
		Schema:      QuestionListSchema,
		MaxTokens:   maxResponseTokens,
		Temperature: questionTemperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	var batch questionBatch
	if err := json.Unmarshal(resp.Content, &batch); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("parse questions: %w", err)}
	}
	if err := validateQuestions(batch.Questions, count); err != nil {
		return nil, err
	}

	questions := make([]quiz.Question, len(batch.Questions))
	for i, raw := range batch.Questions {
		cat := raw.Category
		if cat == "" {
			cat = string(category)
		}
		questions[i] = quiz.Question{
			ID:           uuid.NewString(),
			Text:         raw.QuestionText,
			Options:      raw.Options,
			CorrectIndex: raw.CorrectOptionIndex,
			Explanation:  raw.Explanation,
			Category:     cat,
		}
	}
	return questions, nil
}

// StudyGuide generates the learn-mode guide for a topic.
func (g *Generator) StudyGuide(ctx context.Context, category Category) (*StudyGuide, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeStudyGuide)

	req := llm.Request{
		System: instructorPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildStudyGuideMessage(category)},
		},
		Schema:      StudyGuideSchema,
		MaxTokens:   maxResponseTokens,
		Temperature: studyGuideTemperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("study guide generation failed: %w", err)
	}

	var guide StudyGuide
	if err := json.Unmarshal(resp.Content, &guide); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("parse study guide: %w", err)}
	}
	if err := validateStudyGuide(&guide); err != nil {
		return nil, err
	}
	return &guide, nil
}
