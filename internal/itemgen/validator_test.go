package itemgen

import (
	"strings"
	"testing"
)

func validDraft() *Draft {
	return &Draft{
		Prompt:      "Ayer ____ al mercado con mi madre.",
		Format:      FormatCloze,
		Choices:     []string{"fui", "iba", "voy", "ido"},
		AnswerIndex: 0,
		Difficulty:  3,
		Rationale:   "Completed past action takes the preterite.",
	}
}

func TestStructuralValidator(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Draft)
		wantOK bool
	}{
		{"valid", func(d *Draft) {}, true},
		{"empty prompt", func(d *Draft) { d.Prompt = "" }, false},
		{"prompt too long", func(d *Draft) { d.Prompt = strings.Repeat("x", 501) }, false},
		{"empty rationale", func(d *Draft) { d.Rationale = "" }, false},
		{"difficulty too low", func(d *Draft) { d.Difficulty = 0 }, false},
		{"difficulty too high", func(d *Draft) { d.Difficulty = 6 }, false},
		{"bad format", func(d *Draft) { d.Format = "essay" }, false},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(d)
			err := v.Validate(d, GenerateInput{})
			if (err == nil) != tt.wantOK {
				t.Errorf("Validate() error = %v, wantOK %v", err, tt.wantOK)
			}
		})
	}
}

func TestChoicesValidator(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Draft)
		wantOK bool
	}{
		{"valid", func(d *Draft) {}, true},
		{"too few choices", func(d *Draft) { d.Choices = d.Choices[:3] }, false},
		{"answer index out of range", func(d *Draft) { d.AnswerIndex = 4 }, false},
		{"negative answer index", func(d *Draft) { d.AnswerIndex = -1 }, false},
		{"blank choice", func(d *Draft) { d.Choices[2] = "  " }, false},
		{"duplicate choice", func(d *Draft) { d.Choices[3] = "Fui" }, false},
	}

	v := &ChoicesValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(d)
			err := v.Validate(d, GenerateInput{})
			if (err == nil) != tt.wantOK {
				t.Errorf("Validate() error = %v, wantOK %v", err, tt.wantOK)
			}
		})
	}
}

func TestClozeValidator(t *testing.T) {
	v := &ClozeValidator{}

	d := validDraft()
	if err := v.Validate(d, GenerateInput{}); err != nil {
		t.Errorf("valid cloze rejected: %v", err)
	}

	d = validDraft()
	d.Prompt = "Ayer fui al mercado."
	if err := v.Validate(d, GenerateInput{}); err == nil {
		t.Error("cloze without a blank should fail")
	}

	d = validDraft()
	d.Prompt = "____ tarde, ____ al mercado."
	if err := v.Validate(d, GenerateInput{}); err == nil {
		t.Error("cloze with two blanks should fail")
	}

	d = validDraft()
	d.Format = FormatMultipleChoice
	d.Prompt = "Which word means 'the kitchen'?"
	if err := v.Validate(d, GenerateInput{}); err != nil {
		t.Errorf("non-cloze drafts should pass through: %v", err)
	}
}
