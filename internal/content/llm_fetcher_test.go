package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sp80808/Highway-Code-Master/internal/llm"
)

// goodBatchJSON builds a valid question batch of n questions.
func goodBatchJSON(n int) json.RawMessage {
	questions := make([]map[string]any, n)
	for i := range questions {
		questions[i] = map[string]any{
			"questionText":       fmt.Sprintf("What does rule %d require?", i),
			"options":            []string{"A", "B", "C", "D"},
			"correctOptionIndex": i % 4,
			"explanation":        "See the relevant rule.",
			"category":           "General Rules",
		}
	}
	data, _ := json.Marshal(map[string]any{"questions": questions})
	return data
}

func goodGuideJSON() json.RawMessage {
	data, _ := json.Marshal(map[string]any{
		"title":        "Motorway Rules",
		"introduction": "Motorways carry fast-moving traffic.",
		"keyRules": []map[string]string{
			{"title": "Joining", "content": "Give priority to traffic already on the motorway."},
		},
		"commonSigns": []map[string]string{
			{"name": "Motorway start", "description": "Blue rectangular sign.", "shape": "Blue Rectangle", "icon": "🛣️"},
		},
	})
	return data
}

func TestQuestionsHappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: goodBatchJSON(5)})
	g := NewGenerator(mock)

	qs, err := g.Questions(context.Background(), CategoryGeneral, DifficultyMedium, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != 5 {
		t.Fatalf("got %d questions", len(qs))
	}

	seen := map[string]bool{}
	for _, q := range qs {
		if q.ID == "" || seen[q.ID] {
			t.Fatalf("question IDs must be unique and non-empty, got %q", q.ID)
		}
		seen[q.ID] = true
		if len(q.Options) != 4 {
			t.Fatalf("options = %v", q.Options)
		}
	}

	// The request carries the schema, the reference text, and the
	// difficulty.
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != QuestionListSchema {
		t.Error("request must carry the question schema")
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "Difficulty: Medium") {
		t.Error("prompt missing difficulty")
	}
	if !strings.Contains(msg, "Stopping distances") {
		t.Error("prompt missing reference text")
	}
	if req.Temperature != questionTemperature {
		t.Errorf("temperature = %v", req.Temperature)
	}
}

func TestQuestionsEmptyCategoryFallsBack(t *testing.T) {
	raw := []byte(`{"questions":[{"questionText":"Q?","options":["a","b","c","d"],"correctOptionIndex":1,"explanation":"E","category":""}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	g := NewGenerator(mock)

	qs, err := g.Questions(context.Background(), CategorySigns, DifficultyEasy, 1)
	if err != nil {
		t.Fatal(err)
	}
	if qs[0].Category != string(CategorySigns) {
		t.Errorf("category = %q", qs[0].Category)
	}
}

func TestQuestionsValidationFailures(t *testing.T) {
	cases := map[string]string{
		"too few":         `{"questions":[{"questionText":"Q?","options":["a","b","c","d"],"correctOptionIndex":0,"explanation":"E","category":"c"}]}`,
		"three options":   `{"questions":[{"questionText":"Q?","options":["a","b","c"],"correctOptionIndex":0,"explanation":"E","category":"c"},{"questionText":"Q?","options":["a","b","c","d"],"correctOptionIndex":0,"explanation":"E","category":"c"}]}`,
		"index range":     `{"questions":[{"questionText":"Q?","options":["a","b","c","d"],"correctOptionIndex":4,"explanation":"E","category":"c"},{"questionText":"Q?","options":["a","b","c","d"],"correctOptionIndex":0,"explanation":"E","category":"c"}]}`,
		"empty text":      `{"questions":[{"questionText":"","options":["a","b","c","d"],"correctOptionIndex":0,"explanation":"E","category":"c"},{"questionText":"Q?","options":["a","b","c","d"],"correctOptionIndex":0,"explanation":"E","category":"c"}]}`,
		"not even json":   `][`,
		"empty questions": `{"questions":[]}`,
	}
	for name, raw := range cases {
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
		g := NewGenerator(mock)

		_, err := g.Questions(context.Background(), CategoryGeneral, DifficultyEasy, 2)
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		var invalid *llm.ErrInvalidResponse
		if !errors.As(err, &invalid) {
			t.Errorf("%s: err = %v, want ErrInvalidResponse", name, err)
		}
	}
}

func TestQuestionsProviderErrorPassedThrough(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := NewGenerator(mock)

	_, err := g.Questions(context.Background(), CategoryMock, DifficultyHard, 20)
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestStudyGuideHappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: goodGuideJSON()})
	g := NewGenerator(mock)

	guide, err := g.StudyGuide(context.Background(), CategoryMotorway)
	if err != nil {
		t.Fatal(err)
	}
	if guide.Title != "Motorway Rules" || len(guide.KeyRules) != 1 {
		t.Fatalf("guide = %+v", guide)
	}

	req := mock.Calls[0]
	if req.Schema != StudyGuideSchema {
		t.Error("request must carry the study guide schema")
	}
	if !strings.Contains(req.Messages[0].Content, "Lane discipline") {
		t.Error("prompt missing motorway reference text")
	}
	if req.Temperature != studyGuideTemperature {
		t.Errorf("temperature = %v", req.Temperature)
	}
}

func TestStudyGuideMissingFieldsRejected(t *testing.T) {
	raw := []byte(`{"title":"T","introduction":"","keyRules":[],"commonSigns":[]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	g := NewGenerator(mock)

	_, err := g.StudyGuide(context.Background(), CategorySigns)
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestQuestionCount(t *testing.T) {
	if got := QuestionCount(CategoryMock); got != 20 {
		t.Errorf("mock count = %d", got)
	}
	if got := QuestionCount(CategorySigns); got != 5 {
		t.Errorf("topic count = %d", got)
	}
}

func TestReferenceTextRouting(t *testing.T) {
	// Safety folds in general rules because stopping distances live there.
	if !strings.Contains(ReferenceText(CategorySafety), "Stopping distances") {
		t.Error("safety text missing stopping distances")
	}
	// The mock test spans all sections.
	mock := ReferenceText(CategoryMock)
	for _, frag := range []string{"Signals", "Roundabouts", "Traffic lights", "Vulnerable road users", "Lane discipline", "Insurance"} {
		if !strings.Contains(mock, frag) {
			t.Errorf("mock text missing %q", frag)
		}
	}
	if strings.Contains(ReferenceText(CategorySigns), "Motorways MUST NOT be used") {
		t.Error("signs text should not include motorway rules")
	}
}
