package itemgen

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(d *Draft, _ GenerateInput) *ValidationError {
	if d.Prompt == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "prompt is empty",
			Retryable: true,
		}
	}
	if len(d.Prompt) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "prompt exceeds 500 characters",
			Retryable: true,
		}
	}
	if d.Rationale == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "rationale is empty",
			Retryable: true,
		}
	}
	if len(d.Rationale) > 1000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "rationale exceeds 1000 characters",
			Retryable: true,
		}
	}
	if d.Difficulty < 1 || d.Difficulty > 5 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "difficulty must be between 1 and 5",
			Retryable: true,
		}
	}
	if d.Format != FormatMultipleChoice && d.Format != FormatCloze {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "format must be \"multiple_choice\" or \"cloze\"",
			Retryable: true,
		}
	}
	return nil
}
