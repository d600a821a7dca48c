package itemgen

import (
	"testing"

	"github.com/lexiq/lexiq/internal/itembank"
)

func TestProvisionalDifficulty(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{1, -2.0},
		{2, -1.0},
		{3, 0.0},
		{4, 1.0},
		{5, 2.0},
	}
	for _, tt := range tests {
		if got := ProvisionalDifficulty(tt.level); got != tt.want {
			t.Errorf("ProvisionalDifficulty(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestToItem(t *testing.T) {
	d := validDraft()
	item, err := ToItem(d, "draft-1")
	if err != nil {
		t.Fatalf("ToItem: %v", err)
	}
	if item.ID != "draft-1" {
		t.Errorf("id = %q", item.ID)
	}
	if item.Content.Type != itembank.TypeCloze {
		t.Errorf("type = %q, want cloze", item.Content.Type)
	}
	if item.Difficulty != 0.0 {
		t.Errorf("difficulty = %v, want 0.0 for level 3", item.Difficulty)
	}
	if item.Discrimination != 1.0 {
		t.Errorf("discrimination = %v, want provisional 1.0", item.Discrimination)
	}
	if got := item.Content.Choices[item.Content.AnswerIndex]; got != "fui" {
		t.Errorf("keyed answer = %q, want fui", got)
	}

	// The copy must not alias the draft's slice.
	item.Content.Choices[0] = "mutated"
	if d.Choices[0] != "fui" {
		t.Error("ToItem aliased the draft's choices")
	}
}

func TestToItem_UnknownFormat(t *testing.T) {
	d := validDraft()
	d.Format = "essay"
	if _, err := ToItem(d, "draft-2"); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}
