package itemgen

import "strings"

// blankMarker is the blank placeholder cloze prompts must contain.
const blankMarker = "____"

// ClozeValidator checks cloze-specific structure: exactly one blank in
// the prompt. It passes non-cloze drafts through untouched.
type ClozeValidator struct{}

func (v *ClozeValidator) Name() string { return "cloze" }

func (v *ClozeValidator) Validate(d *Draft, _ GenerateInput) *ValidationError {
	if d.Format != FormatCloze {
		return nil
	}
	switch n := strings.Count(d.Prompt, blankMarker); {
	case n == 0:
		return &ValidationError{
			Validator: v.Name(),
			Message:   "cloze prompt has no ____ blank",
			Retryable: true,
		}
	case n > 1:
		return &ValidationError{
			Validator: v.Name(),
			Message:   "cloze prompt has more than one blank",
			Retryable: true,
		}
	}
	return nil
}
