package irt

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadParameters indicates a response carried malformed item
// parameters (non-positive discrimination or a non-finite value).
// Rejected before any numerical work.
var ErrBadParameters = errors.New("irt: bad item parameters")

const (
	// DefaultInitialSE is the standard error reported with zero
	// observations, signaling maximal uncertainty.
	DefaultInitialSE = 1.0

	// DefaultThetaMin and DefaultThetaMax bound the estimate. The
	// unconstrained MLE diverges on all-correct or all-incorrect
	// patterns; clamping keeps theta finite.
	DefaultThetaMin = -4.0
	DefaultThetaMax = 4.0

	// DefaultMaxIterations caps Newton-Raphson iterations per update.
	DefaultMaxIterations = 20

	// DefaultGradientTolerance stops iteration once the log-likelihood
	// gradient is this close to zero.
	DefaultGradientTolerance = 1e-6

	// minInformation is the threshold below which the Newton step is
	// considered numerically unsafe and the fallback step is used.
	minInformation = 1e-9

	// fallbackStep is the fixed step taken in the gradient direction
	// when information is too small for a Newton step.
	fallbackStep = 0.5

	// maxStep caps the magnitude of a single Newton step. Raw steps
	// become huge when information is thin (extreme theta, few
	// observations) and make the iteration oscillate between the
	// clamp bounds instead of converging.
	maxStep = 1.0
)

// Config tunes the maximum-likelihood estimator.
type Config struct {
	// InitialSE is the standard error with no observations.
	InitialSE float64

	// ThetaMin and ThetaMax clamp the estimate after every step.
	ThetaMin float64
	ThetaMax float64

	// MaxIterations caps Newton-Raphson iterations per update.
	MaxIterations int

	// GradientTolerance is the convergence threshold on the gradient.
	GradientTolerance float64
}

// DefaultConfig returns the estimator settings used in production.
func DefaultConfig() Config {
	return Config{
		InitialSE:         DefaultInitialSE,
		ThetaMin:          DefaultThetaMin,
		ThetaMax:          DefaultThetaMax,
		MaxIterations:     DefaultMaxIterations,
		GradientTolerance: DefaultGradientTolerance,
	}
}

// Estimator computes maximum-likelihood ability estimates under the
// two-parameter logistic model. It is stateless; all state lives in the
// response history the caller passes in.
type Estimator struct {
	cfg Config
}

// NewEstimator creates an estimator, filling zero config fields with
// defaults.
func NewEstimator(cfg Config) *Estimator {
	def := DefaultConfig()
	if cfg.InitialSE <= 0 {
		cfg.InitialSE = def.InitialSE
	}
	if cfg.ThetaMin == 0 && cfg.ThetaMax == 0 {
		cfg.ThetaMin = def.ThetaMin
		cfg.ThetaMax = def.ThetaMax
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = def.MaxIterations
	}
	if cfg.GradientTolerance <= 0 {
		cfg.GradientTolerance = def.GradientTolerance
	}
	return &Estimator{cfg: cfg}
}

// Initial returns the estimate before any responses: theta 0 at maximal
// uncertainty.
func (e *Estimator) Initial() Estimate {
	return Estimate{Theta: 0, SE: e.cfg.InitialSE}
}

// Update recomputes the estimate from the full response history,
// starting Newton-Raphson at the prior theta. It iterates until the
// gradient is within tolerance or the iteration cap is hit, clamping
// theta to [ThetaMin, ThetaMax] after every step.
//
// Update never errors on valid input. Responses with non-positive
// discrimination or non-finite parameters are rejected with
// ErrBadParameters before any numerical work.
func (e *Estimator) Update(prior Estimate, responses []Response) (Estimate, error) {
	for i, r := range responses {
		if err := validateResponse(r); err != nil {
			return Estimate{}, fmt.Errorf("response %d: %w", i, err)
		}
	}

	if len(responses) == 0 {
		return e.Initial(), nil
	}

	theta := e.clamp(prior.Theta)
	for i := 0; i < e.cfg.MaxIterations; i++ {
		gradient, information := logLikelihoodDerivs(theta, responses)
		if math.Abs(gradient) < e.cfg.GradientTolerance {
			break
		}
		if information < minInformation {
			// Too flat for a Newton step; nudge toward the gradient.
			if gradient > 0 {
				theta += fallbackStep
			} else {
				theta -= fallbackStep
			}
		} else {
			step := gradient / information
			if step > maxStep {
				step = maxStep
			} else if step < -maxStep {
				step = -maxStep
			}
			theta += step
		}
		theta = e.clamp(theta)
	}

	// The reported standard error folds the initial uncertainty in as
	// prior precision, so it starts at InitialSE and shrinks as item
	// information accrues. A bare 1/sqrt(information) would exceed the
	// initial value on short or extreme response patterns and would
	// blow up entirely when information vanishes at the clamp bounds.
	_, information := logLikelihoodDerivs(theta, responses)
	priorPrecision := 1.0 / (e.cfg.InitialSE * e.cfg.InitialSE)
	se := 1.0 / math.Sqrt(priorPrecision+information)

	return Estimate{Theta: theta, SE: se, Responses: len(responses)}, nil
}

func (e *Estimator) clamp(theta float64) float64 {
	if theta < e.cfg.ThetaMin {
		return e.cfg.ThetaMin
	}
	if theta > e.cfg.ThetaMax {
		return e.cfg.ThetaMax
	}
	return theta
}

func validateResponse(r Response) error {
	if r.Discrimination <= 0 {
		return fmt.Errorf("%w: discrimination %v must be positive", ErrBadParameters, r.Discrimination)
	}
	if math.IsNaN(r.Difficulty) || math.IsInf(r.Difficulty, 0) || math.IsNaN(r.Discrimination) || math.IsInf(r.Discrimination, 0) {
		return fmt.Errorf("%w: non-finite parameter", ErrBadParameters)
	}
	return nil
}
