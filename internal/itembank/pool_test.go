package itembank

import (
	"context"
	"errors"
	"testing"
)

func mcItem(id string, diff, disc float64) Item {
	return Item{
		ID:             id,
		Difficulty:     diff,
		Discrimination: disc,
		Content: Content{
			Type:        TypeMultipleChoice,
			Prompt:      "pick one",
			Choices:     []string{"a", "b", "c", "d"},
			AnswerIndex: 0,
		},
	}
}

func TestNewPool_ValidatesItems(t *testing.T) {
	_, err := NewPool(mcItem("q1", 0, 0))
	if !errors.Is(err, ErrInvalidItem) {
		t.Errorf("zero discrimination: err = %v, want ErrInvalidItem", err)
	}

	bad := mcItem("q1", 0, 1)
	bad.Content.AnswerIndex = 9
	_, err = NewPool(bad)
	if !errors.Is(err, ErrInvalidItem) {
		t.Errorf("answer index out of range: err = %v, want ErrInvalidItem", err)
	}

	_, err = NewPool(mcItem("q1", 0, 1), mcItem("q1", 1, 1))
	if !errors.Is(err, ErrInvalidItem) {
		t.Errorf("duplicate id: err = %v, want ErrInvalidItem", err)
	}
}

func TestPool_FetchEligibleItems(t *testing.T) {
	p, err := NewPool(mcItem("q2", 0, 1), mcItem("q1", -1, 1), mcItem("q3", 1, 1))
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}

	items, err := p.FetchEligibleItems(context.Background(), map[string]bool{"q2": true})
	if err != nil {
		t.Fatalf("FetchEligibleItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	// Sorted by ID, exclusions honored.
	if items[0].ID != "q1" || items[1].ID != "q3" {
		t.Errorf("got %s, %s; want q1, q3", items[0].ID, items[1].ID)
	}
}

func TestPool_Get(t *testing.T) {
	p, err := NewPool(mcItem("q1", -1, 1))
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	if _, ok := p.Get(context.Background(), "q1"); !ok {
		t.Error("q1 not found")
	}
	if _, ok := p.Get(context.Background(), "missing"); ok {
		t.Error("missing item reported found")
	}
}

func TestParseBank(t *testing.T) {
	data := []byte(`{
		"name": "spanish-a1",
		"language": "es",
		"items": [
			{
				"id": "q1",
				"difficulty": -0.5,
				"discrimination": 1.2,
				"content": {
					"type": "multiple_choice",
					"prompt": "¿Cómo ___ llamas?",
					"choices": ["te", "se", "me", "le"],
					"answer_index": 0
				}
			}
		]
	}`)
	bank, err := ParseBank(data)
	if err != nil {
		t.Fatalf("ParseBank: %v", err)
	}
	if bank.Language != "es" || len(bank.Items) != 1 {
		t.Errorf("bank = %+v", bank)
	}
	if bank.Items[0].Content.Type != TypeMultipleChoice {
		t.Errorf("content type = %q", bank.Items[0].Content.Type)
	}
}

func TestParseBank_SchemaRejections(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"missing items", `{"name": "x"}`},
		{"empty items", `{"items": []}`},
		{"negative discrimination", `{"items": [{"id": "q", "difficulty": 0, "discrimination": -1, "content": {}}]}`},
		{"missing difficulty", `{"items": [{"id": "q", "discrimination": 1, "content": {}}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseBank([]byte(tc.data)); err == nil {
				t.Error("ParseBank accepted invalid bank")
			}
		})
	}
}
