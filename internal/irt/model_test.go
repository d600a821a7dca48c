package irt

import (
	"math"
	"testing"
)

const epsilon = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestProbability_AtDifficulty(t *testing.T) {
	// P(b) = 0.5 regardless of discrimination.
	for _, disc := range []float64{0.5, 1.0, 2.5} {
		for _, diff := range []float64{-2.0, 0.0, 1.5} {
			p := Probability(diff, disc, diff)
			if !almostEqual(p, 0.5) {
				t.Errorf("Probability(b=%v, a=%v) = %f, want 0.5", diff, disc, p)
			}
		}
	}
}

func TestProbability_StrictlyIncreasing(t *testing.T) {
	prev := Probability(-4.0, 1.2, 0.5)
	for theta := -3.9; theta <= 4.0; theta += 0.1 {
		p := Probability(theta, 1.2, 0.5)
		if p <= prev {
			t.Fatalf("Probability not strictly increasing at theta=%f: %f <= %f", theta, p, prev)
		}
		prev = p
	}
}

func TestProbability_Bounds(t *testing.T) {
	if p := Probability(-10, 2.0, 0); p <= 0 || p >= 0.5 {
		t.Errorf("Probability(-10) = %f, want in (0, 0.5)", p)
	}
	if p := Probability(10, 2.0, 0); p <= 0.5 || p >= 1 {
		t.Errorf("Probability(10) = %f, want in (0.5, 1)", p)
	}
}

func TestInformation_PeaksAtDifficulty(t *testing.T) {
	const diff = 0.7
	peak := Information(diff, 1.5, diff)
	for _, theta := range []float64{diff - 2, diff - 0.5, diff + 0.5, diff + 2} {
		if Information(theta, 1.5, diff) >= peak {
			t.Errorf("Information(%f) >= Information at difficulty", theta)
		}
	}
	// At the peak, I = a²/4.
	if !almostEqual(peak, 1.5*1.5/4.0) {
		t.Errorf("peak information = %f, want %f", peak, 1.5*1.5/4.0)
	}
}

func TestInformation_GrowsWithDiscrimination(t *testing.T) {
	lo := Information(0, 0.8, 0)
	hi := Information(0, 2.0, 0)
	if hi <= lo {
		t.Errorf("Information with a=2.0 (%f) should exceed a=0.8 (%f)", hi, lo)
	}
}
