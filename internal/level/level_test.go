package level

import "testing"

func TestThresholds_For(t *testing.T) {
	th := DefaultThresholds()
	cases := []struct {
		theta float64
		want  Level
	}{
		{-4.0, Beginner},
		{-0.51, Beginner},
		{-0.5, Intermediate},
		{0.0, Intermediate},
		{0.99, Intermediate},
		{1.0, Advanced},
		{4.0, Advanced},
	}
	for _, tc := range cases {
		if got := th.For(tc.theta); got != tc.want {
			t.Errorf("For(%v) = %s, want %s", tc.theta, got, tc.want)
		}
	}
}

func TestThresholds_Custom(t *testing.T) {
	th := Thresholds{BeginnerBelow: 0, AdvancedFrom: 2}
	if got := th.For(-0.1); got != Beginner {
		t.Errorf("For(-0.1) = %s, want beginner", got)
	}
	if got := th.For(1.9); got != Intermediate {
		t.Errorf("For(1.9) = %s, want intermediate", got)
	}
}
