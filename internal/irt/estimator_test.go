package irt

import (
	"errors"
	"math"
	"testing"
)

func TestUpdate_ZeroObservations(t *testing.T) {
	e := NewEstimator(DefaultConfig())
	est, err := e.Update(e.Initial(), nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if est.Theta != 0 {
		t.Errorf("Theta = %f, want 0", est.Theta)
	}
	if est.SE != DefaultInitialSE {
		t.Errorf("SE = %f, want %f", est.SE, DefaultInitialSE)
	}
}

func TestUpdate_SymmetricPattern(t *testing.T) {
	// One correct on an easy item, one incorrect on a hard item of
	// equal discrimination: the MLE sits at the midpoint.
	e := NewEstimator(DefaultConfig())
	responses := []Response{
		{Difficulty: -1, Discrimination: 1, Correct: true},
		{Difficulty: 1, Discrimination: 1, Correct: false},
	}
	est, err := e.Update(e.Initial(), responses)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if math.Abs(est.Theta) > 1e-4 {
		t.Errorf("Theta = %f, want 0", est.Theta)
	}
}

func TestUpdate_AllCorrectDrivesThetaUp(t *testing.T) {
	e := NewEstimator(DefaultConfig())
	var responses []Response
	prior := e.Initial()
	prevTheta := prior.Theta
	for i := 0; i < 6; i++ {
		responses = append(responses, Response{Difficulty: 0, Discrimination: 1, Correct: true})
		est, err := e.Update(prior, responses)
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if est.Theta < prevTheta {
			t.Errorf("after %d correct: Theta %f dropped below %f", i+1, est.Theta, prevTheta)
		}
		if est.Theta > DefaultThetaMax {
			t.Errorf("Theta %f exceeds clamp bound", est.Theta)
		}
		prevTheta = est.Theta
		prior = est
	}
	if prevTheta != DefaultThetaMax {
		t.Errorf("all-correct streak should saturate at clamp: got %f", prevTheta)
	}
}

func TestUpdate_AllIncorrectDrivesThetaDown(t *testing.T) {
	e := NewEstimator(DefaultConfig())
	var responses []Response
	prior := e.Initial()
	prevTheta := prior.Theta
	for i := 0; i < 6; i++ {
		responses = append(responses, Response{Difficulty: 0, Discrimination: 1, Correct: false})
		est, err := e.Update(prior, responses)
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if est.Theta > prevTheta {
			t.Errorf("after %d incorrect: Theta %f rose above %f", i+1, est.Theta, prevTheta)
		}
		prevTheta = est.Theta
		prior = est
	}
	if prevTheta != DefaultThetaMin {
		t.Errorf("all-incorrect streak should saturate at clamp: got %f", prevTheta)
	}
}

func TestUpdate_SEShrinksWithInformativeItems(t *testing.T) {
	e := NewEstimator(DefaultConfig())
	responses := []Response{
		{Difficulty: -0.5, Discrimination: 1, Correct: true},
		{Difficulty: 0.5, Discrimination: 1, Correct: false},
	}
	prior := e.Initial()
	est, err := e.Update(prior, responses)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	prevSE := est.SE

	// Items near the current theta add information, so SE shrinks.
	for i := 0; i < 4; i++ {
		correct := i%2 == 0
		responses = append(responses, Response{Difficulty: est.Theta, Discrimination: 1.2, Correct: correct})
		est, err = e.Update(est, responses)
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if est.SE > prevSE {
			t.Errorf("SE grew from %f to %f on a near-theta item", prevSE, est.SE)
		}
		prevSE = est.SE
	}
}

func TestUpdate_SENeverExceedsInitial(t *testing.T) {
	e := NewEstimator(DefaultConfig())
	// A single correct answer pushes theta to the clamp where the
	// item carries almost no information; the prior precision keeps
	// SE at or below the initial value instead of blowing up.
	est, err := e.Update(e.Initial(), []Response{{Difficulty: 0, Discrimination: 1, Correct: true}})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if est.SE > DefaultInitialSE {
		t.Errorf("SE = %f exceeds initial %f", est.SE, DefaultInitialSE)
	}
}

func TestUpdate_RejectsBadDiscrimination(t *testing.T) {
	e := NewEstimator(DefaultConfig())
	_, err := e.Update(e.Initial(), []Response{{Difficulty: 0, Discrimination: 0, Correct: true}})
	if !errors.Is(err, ErrBadParameters) {
		t.Errorf("err = %v, want ErrBadParameters", err)
	}
	_, err = e.Update(e.Initial(), []Response{{Difficulty: 0, Discrimination: -1.5, Correct: false}})
	if !errors.Is(err, ErrBadParameters) {
		t.Errorf("err = %v, want ErrBadParameters", err)
	}
}

func TestUpdate_RejectsNonFiniteParameters(t *testing.T) {
	e := NewEstimator(DefaultConfig())
	_, err := e.Update(e.Initial(), []Response{{Difficulty: math.NaN(), Discrimination: 1, Correct: true}})
	if !errors.Is(err, ErrBadParameters) {
		t.Errorf("err = %v, want ErrBadParameters", err)
	}
}

func TestConfidenceInterval(t *testing.T) {
	est := Estimate{Theta: 0.5, SE: 0.4}
	lo, hi := est.ConfidenceInterval()
	if !almostEqual(lo, 0.5-ConfidenceZ*0.4) || !almostEqual(hi, 0.5+ConfidenceZ*0.4) {
		t.Errorf("ConfidenceInterval = [%f, %f]", lo, hi)
	}
}

func TestNewEstimator_FillsDefaults(t *testing.T) {
	e := NewEstimator(Config{})
	if e.cfg.MaxIterations != DefaultMaxIterations {
		t.Errorf("MaxIterations = %d, want %d", e.cfg.MaxIterations, DefaultMaxIterations)
	}
	if e.cfg.InitialSE != DefaultInitialSE {
		t.Errorf("InitialSE = %f, want %f", e.cfg.InitialSE, DefaultInitialSE)
	}
	if e.cfg.ThetaMin != DefaultThetaMin || e.cfg.ThetaMax != DefaultThetaMax {
		t.Errorf("clamp bounds = [%f, %f]", e.cfg.ThetaMin, e.cfg.ThetaMax)
	}
}
