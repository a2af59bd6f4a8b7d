package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-answer",
	Description: "test schema",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
			"score":  map[string]any{"type": "integer"},
		},
		"required":             []any{"answer"},
		"additionalProperties": false,
	},
}

func TestValidateResponseOK(t *testing.T) {
	err := validateResponse(testSchema, json.RawMessage(`{"answer":"stop","score":3}`))
	if err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponseFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed JSON", `{"answer": `},
		{"missing required", `{"score": 3}`},
		{"wrong type", `{"answer": 42}`},
		{"extra property", `{"answer":"go","extra":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema, json.RawMessage(tt.raw))
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("err = %v, want ErrInvalidResponse", err)
			}
		})
	}
}
