package content

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/sp80808/Highway-Code-Master/internal/llm"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateQuestions checks a generated batch beyond what the response
// schema can express: the batch size and per-field constraints. Any
// failure surfaces as an invalid-response error so callers treat it
// like a malformed response.
func validateQuestions(questions []questionOutput, count int) error {
	if len(questions) < count {
		return &llm.ErrInvalidResponse{Err: fmt.Errorf("got %d questions, need %d", len(questions), count)}
	}
	for i, q := range questions {
		if err := validate.Struct(q); err != nil {
			return &llm.ErrInvalidResponse{Err: fmt.Errorf("question %d: %w", i, err)}
		}
	}
	return nil
}

// validateStudyGuide checks a generated guide's required structure.
func validateStudyGuide(guide *StudyGuide) error {
	if err := validate.Struct(guide); err != nil {
		return &llm.ErrInvalidResponse{Err: fmt.Errorf("study guide: %w", err)}
	}
	return nil
}
