package itemgen

import (
	"fmt"
	"strings"
)

// ChoicesValidator checks that the option set is well-formed: exactly
// 4 distinct options with the keyed answer among them.
type ChoicesValidator struct{}

func (v *ChoicesValidator) Name() string { return "choices" }

func (v *ChoicesValidator) Validate(d *Draft, _ GenerateInput) *ValidationError {
	if len(d.Choices) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected 4 choices, got %d", len(d.Choices)),
			Retryable: true,
		}
	}
	if d.AnswerIndex < 0 || d.AnswerIndex >= len(d.Choices) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer_index %d out of range", d.AnswerIndex),
			Retryable: true,
		}
	}

	seen := make(map[string]bool, len(d.Choices))
	for _, c := range d.Choices {
		trimmed := strings.TrimSpace(c)
		if trimmed == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "choice is empty",
				Retryable: true,
			}
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate choice %q", trimmed),
				Retryable: true,
			}
		}
		seen[key] = true
	}
	return nil
}
