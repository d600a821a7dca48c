package assessment

import (
	"testing"

	"github.com/lexiq/lexiq/internal/irt"
)

func TestStopPolicy_ItemBudget(t *testing.T) {
	p := DefaultStopPolicy()
	est := irt.Estimate{Theta: 0, SE: 0.9}

	if _, stop := p.Evaluate(p.MaxItems-1, est, 5); stop {
		t.Error("stopped one item short of the budget")
	}
	reason, stop := p.Evaluate(p.MaxItems, est, 5)
	if !stop || reason != StopMaxItems {
		t.Errorf("Evaluate at budget = (%s, %v), want (max_items, true)", reason, stop)
	}
}

func TestStopPolicy_PrecisionGatedByMinItems(t *testing.T) {
	p := DefaultStopPolicy()
	precise := irt.Estimate{Theta: 0.4, SE: p.TargetSE - 0.01}

	if _, stop := p.Evaluate(p.MinItems-1, precise, 5); stop {
		t.Error("precision rule fired before MinItems")
	}
	reason, stop := p.Evaluate(p.MinItems, precise, 5)
	if !stop || reason != StopPrecision {
		t.Errorf("Evaluate = (%s, %v), want (precision, true)", reason, stop)
	}
}

func TestStopPolicy_Exhaustion(t *testing.T) {
	p := DefaultStopPolicy()
	est := irt.Estimate{Theta: 0, SE: 0.9}
	reason, stop := p.Evaluate(2, est, 0)
	if !stop || reason != StopExhausted {
		t.Errorf("Evaluate = (%s, %v), want (pool_exhausted, true)", reason, stop)
	}
}

func TestStopPolicy_RuleOrder(t *testing.T) {
	// Budget outranks precision; precision outranks exhaustion.
	p := DefaultStopPolicy()
	precise := irt.Estimate{SE: 0.1}

	if reason, _ := p.Evaluate(p.MaxItems, precise, 0); reason != StopMaxItems {
		t.Errorf("reason = %s, want max_items", reason)
	}
	if reason, _ := p.Evaluate(p.MinItems, precise, 0); reason != StopPrecision {
		t.Errorf("reason = %s, want precision", reason)
	}
}

func TestStopPolicy_Idempotent(t *testing.T) {
	p := DefaultStopPolicy()
	est := irt.Estimate{Theta: 1.1, SE: 0.25}
	r1, s1 := p.Evaluate(4, est, 3)
	r2, s2 := p.Evaluate(4, est, 3)
	if r1 != r2 || s1 != s2 {
		t.Errorf("Evaluate not idempotent: (%s, %v) then (%s, %v)", r1, s1, r2, s2)
	}
}
