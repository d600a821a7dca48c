package itemgen

import "fmt"

// Validator checks a drafted item for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural", "choices", "cloze".
	Name() string

	// Validate checks the draft and returns nil if it passes.
	// Returns a ValidationError if the draft fails the check.
	Validate(d *Draft, input GenerateInput) *ValidationError
}

// ValidationError describes why a draft failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
