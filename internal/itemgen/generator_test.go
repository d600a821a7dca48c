package itemgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/lexiq/lexiq/internal/llm"
)

func testInput() GenerateInput {
	return GenerateInput{
		Language:         "Spanish",
		Skill:            "preterite vs imperfect",
		TargetDifficulty: 3,
	}
}

func clozeDraftJSON() json.RawMessage {
	return json.RawMessage(`{
		"prompt": "Ayer ____ al mercado con mi madre.",
		"format": "cloze",
		"choices": ["fui", "iba", "voy", "ido"],
		"answer_index": 0,
		"difficulty": 3,
		"rationale": "A completed one-time action in the past takes the preterite fui. Iba is imperfect, voy is present, ido is a participle."
	}`)
}

func mcDraftJSON() json.RawMessage {
	return json.RawMessage(`{
		"prompt": "Which word means 'the kitchen'?",
		"format": "multiple_choice",
		"choices": ["la cocina", "el dormitorio", "la nevera", "el horno"],
		"answer_index": 0,
		"difficulty": 1,
		"rationale": "La cocina is the kitchen. El dormitorio is the bedroom, la nevera the fridge, el horno the oven."
	}`)
}

func TestGenerate_Cloze(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: clozeDraftJSON(),
	})
	gen := New(mock, DefaultConfig())

	d, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Format != FormatCloze {
		t.Errorf("expected cloze format, got %q", d.Format)
	}
	if d.Choices[d.AnswerIndex] != "fui" {
		t.Errorf("expected keyed answer fui, got %q", d.Choices[d.AnswerIndex])
	}
	if d.Skill != "preterite vs imperfect" {
		t.Errorf("unexpected skill: %q", d.Skill)
	}
	if d.Language != "Spanish" {
		t.Errorf("unexpected language: %q", d.Language)
	}
}

func TestGenerate_MultipleChoice(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: mcDraftJSON(),
	})
	gen := New(mock, DefaultConfig())

	d, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Format != FormatMultipleChoice {
		t.Errorf("expected multiple_choice format, got %q", d.Format)
	}
	if len(d.Choices) != 4 {
		t.Errorf("expected 4 choices, got %d", len(d.Choices))
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: errors.New("rate limited"),
	})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected an error from the provider")
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"prompt": `),
	})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestGenerate_ValidationFailure(t *testing.T) {
	bad := json.RawMessage(`{
		"prompt": "Ayer fui al mercado.",
		"format": "cloze",
		"choices": ["fui", "iba", "voy", "ido"],
		"answer_index": 0,
		"difficulty": 3,
		"rationale": "No blank in this one."
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a ValidationError, got %v", err)
	}
	if verr.Validator != "cloze" {
		t.Errorf("expected the cloze validator to fail, got %q", verr.Validator)
	}
	if !verr.Retryable {
		t.Error("missing blank should be retryable")
	}
}

func TestGenerate_PromptIncludesContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: clozeDraftJSON(),
	})
	gen := New(mock, DefaultConfig())

	input := testInput()
	input.PriorPrompts = []string{"Ella ____ en Madrid."}
	if _, err := gen.Generate(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Spanish", "preterite vs imperfect", "Ella ____ en Madrid."} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
	if mock.Calls[0].Schema != DraftSchema {
		t.Error("request did not carry the draft schema")
	}
}
