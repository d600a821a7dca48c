package irt

import "math"

// Probability returns the chance of a correct response under the
// two-parameter logistic model: P = 1 / (1 + exp(-a·(θ - b))).
// disc is the discrimination (a), diff the difficulty (b).
func Probability(theta, disc, diff float64) float64 {
	return 1.0 / (1.0 + math.Exp(-disc*(theta-diff)))
}

// Information returns the Fisher information an item contributes at
// ability theta: I(θ) = a²·P·(1-P). It peaks where θ equals the item's
// difficulty and grows with the square of discrimination.
func Information(theta, disc, diff float64) float64 {
	p := Probability(theta, disc, diff)
	return disc * disc * p * (1.0 - p)
}

// Response pairs an item's parameters with the observed correctness.
// The estimator works on these alone; item identity and content stay
// with the caller.
type Response struct {
	// Difficulty is the item's b parameter.
	Difficulty float64

	// Discrimination is the item's a parameter. Must be positive.
	Discrimination float64

	// Correct is whether the test-taker answered correctly.
	Correct bool
}

// logLikelihoodDerivs returns the gradient and observed information of
// the log-likelihood at theta across all responses.
func logLikelihoodDerivs(theta float64, responses []Response) (gradient, information float64) {
	for _, r := range responses {
		p := Probability(theta, r.Discrimination, r.Difficulty)
		x := 0.0
		if r.Correct {
			x = 1.0
		}
		gradient += r.Discrimination * (x - p)
		information += r.Discrimination * r.Discrimination * p * (1.0 - p)
	}
	return gradient, information
}
