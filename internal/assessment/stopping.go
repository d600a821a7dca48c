package assessment

import "github.com/lexiq/lexiq/internal/irt"

const (
	// DefaultMaxItems is the standard item budget per session.
	DefaultMaxItems = 10

	// DefaultTargetSE is the precision target that ends a session.
	DefaultTargetSE = 0.3

	// DefaultMinItems is how many items must be administered before
	// the precision rule applies. Early estimates are too noisy to
	// trust a small standard error.
	DefaultMinItems = 3
)

// StopPolicy configures the session termination rules.
type StopPolicy struct {
	// MaxItems is the item budget. The session completes once this
	// many observations exist.
	MaxItems int `json:"max_items"`

	// TargetSE completes the session once the standard error is at or
	// below it, provided MinItems have been administered.
	TargetSE float64 `json:"target_se"`

	// MinItems gates the TargetSE rule.
	MinItems int `json:"min_items"`
}

// DefaultStopPolicy returns the standard termination rules.
func DefaultStopPolicy() StopPolicy {
	return StopPolicy{
		MaxItems: DefaultMaxItems,
		TargetSE: DefaultTargetSE,
		MinItems: DefaultMinItems,
	}
}

// Evaluate applies the rules in priority order and returns the first
// that fires, or (StopNone, false) to continue. Pure and idempotent:
// the same inputs always produce the same verdict.
func (p StopPolicy) Evaluate(observations int, est irt.Estimate, eligibleRemaining int) (StopReason, bool) {
	if observations >= p.MaxItems {
		return StopMaxItems, true
	}
	if observations >= p.MinItems && est.SE <= p.TargetSE {
		return StopPrecision, true
	}
	if eligibleRemaining == 0 {
		return StopExhausted, true
	}
	return StopNone, false
}
