// Package level maps ability estimates to the coarse proficiency
// buckets the rest of the product speaks in. The thresholds are policy
// constants, not algorithm output, so they live in configuration.
package level

// Level is a coarse proficiency bucket derived from theta.
type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

// Thresholds defines the theta cut points between buckets.
// theta < BeginnerBelow → beginner; theta < AdvancedFrom → intermediate;
// otherwise advanced.
type Thresholds struct {
	BeginnerBelow float64 `json:"beginner_below"`
	AdvancedFrom  float64 `json:"advanced_from"`
}

// DefaultThresholds returns the product's standard cut points.
func DefaultThresholds() Thresholds {
	return Thresholds{
		BeginnerBelow: -0.5,
		AdvancedFrom:  1.0,
	}
}

// For returns the bucket for a theta value.
func (t Thresholds) For(theta float64) Level {
	switch {
	case theta < t.BeginnerBelow:
		return Beginner
	case theta < t.AdvancedFrom:
		return Intermediate
	default:
		return Advanced
	}
}
