package irt

// ConfidenceZ is the z value used for the reported confidence interval
// (~95% coverage).
const ConfidenceZ = 1.96

// Estimate is an immutable snapshot of the ability estimate after some
// number of observed responses. Updates produce a fresh Estimate; prior
// values are retained by the session for charting and audit.
type Estimate struct {
	// Theta is the latent ability on the logit scale.
	Theta float64 `json:"theta"`

	// SE is the standard error of Theta. Smaller is more precise.
	SE float64 `json:"se"`

	// Responses is the number of observations the estimate is based on.
	Responses int `json:"responses"`
}

// ConfidenceInterval returns [θ - z·SE, θ + z·SE] at ConfidenceZ.
func (e Estimate) ConfidenceInterval() (lo, hi float64) {
	return e.Theta - ConfidenceZ*e.SE, e.Theta + ConfidenceZ*e.SE
}
