package assessment

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lexiq/lexiq/internal/irt"
	"github.com/lexiq/lexiq/internal/itembank"
)

func testPool(t *testing.T, difficulties ...float64) *itembank.Pool {
	t.Helper()
	items := make([]itembank.Item, len(difficulties))
	for i, d := range difficulties {
		items[i] = itembank.Item{
			ID:             fmt.Sprintf("q%d", i+1),
			Difficulty:     d,
			Discrimination: 1.0,
		}
	}
	p, err := itembank.NewPool(items...)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	return p
}

func startSession(t *testing.T, src itembank.Source, policy StopPolicy) (*Session, *Transition) {
	t.Helper()
	s, err := New(Config{ID: "test-session", Source: src, Policy: policy})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tr, err := s.Start(context.Background())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s, tr
}

func TestStart(t *testing.T) {
	s, tr := startSession(t, testPool(t, -1, 0, 1), DefaultStopPolicy())

	if s.Status() != StatusInProgress {
		t.Errorf("status = %s, want in_progress", s.Status())
	}
	if tr.Estimate.Theta != 0 || tr.Estimate.SE != irt.DefaultInitialSE {
		t.Errorf("initial estimate = %+v", tr.Estimate)
	}
	// First item at theta 0 is the one with difficulty 0.
	if tr.NextItem == nil || tr.NextItem.Difficulty != 0 {
		t.Errorf("first item = %+v, want difficulty 0", tr.NextItem)
	}
}

func TestStart_Twice(t *testing.T) {
	s, _ := startSession(t, testPool(t, 0), DefaultStopPolicy())
	if _, err := s.Start(context.Background()); !errors.Is(err, ErrNotStartable) {
		t.Errorf("second Start err = %v, want ErrNotStartable", err)
	}
}

func TestStart_EmptyPool(t *testing.T) {
	s, tr := startSession(t, testPool(t), DefaultStopPolicy())
	if s.Status() != StatusCompleted {
		t.Errorf("status = %s, want completed", s.Status())
	}
	if s.StopReason() != StopExhausted {
		t.Errorf("stop reason = %s, want pool_exhausted", s.StopReason())
	}
	if tr.Report == nil {
		t.Error("terminal transition missing report")
	}
}

func TestSubmit_RejectsUnknownItem(t *testing.T) {
	s, _ := startSession(t, testPool(t, -1, 0, 1), DefaultStopPolicy())
	before := s.Estimate()

	_, err := s.Submit(context.Background(), "nope", true, 100)
	if !errors.Is(err, ErrUnknownItem) {
		t.Errorf("err = %v, want ErrUnknownItem", err)
	}
	if s.Estimate() != before || len(s.Observations()) != 0 {
		t.Error("rejected submit mutated session state")
	}
}

func TestSubmit_RejectsNonPendingItem(t *testing.T) {
	s, tr := startSession(t, testPool(t, -1, 0, 1), DefaultStopPolicy())

	// q1 (difficulty -1) exists but is not the pending item.
	if tr.NextItem.ID == "q1" {
		t.Fatal("test setup: q1 unexpectedly pending")
	}
	_, err := s.Submit(context.Background(), "q1", true, 100)
	if !errors.Is(err, ErrUnexpectedItem) {
		t.Errorf("err = %v, want ErrUnexpectedItem", err)
	}
}

func TestSubmit_ObservationCarriesPreUpdateEstimate(t *testing.T) {
	s, tr := startSession(t, testPool(t, -1, 0, 1), DefaultStopPolicy())
	before := s.Estimate()

	if _, err := s.Submit(context.Background(), tr.NextItem.ID, true, 1200); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	obs := s.Observations()
	if len(obs) != 1 {
		t.Fatalf("got %d observations, want 1", len(obs))
	}
	if obs[0].Theta != before.Theta || obs[0].SE != before.SE {
		t.Errorf("observation snapshot = (%f, %f), want pre-update (%f, %f)",
			obs[0].Theta, obs[0].SE, before.Theta, before.SE)
	}
	if obs[0].LatencyMs != 1200 {
		t.Errorf("latency = %d, want 1200", obs[0].LatencyMs)
	}
	if s.Estimate() == before {
		t.Error("estimate did not change after a response")
	}
}

func TestSubmit_NeverRepeatsItems(t *testing.T) {
	s, tr := startSession(t, testPool(t, -2, -1, 0, 1, 2), StopPolicy{MaxItems: 5, TargetSE: 0.01, MinItems: 5})

	seen := make(map[string]bool)
	for tr.NextItem != nil {
		if seen[tr.NextItem.ID] {
			t.Fatalf("item %s administered twice", tr.NextItem.ID)
		}
		seen[tr.NextItem.ID] = true
		var err error
		tr, err = s.Submit(context.Background(), tr.NextItem.ID, len(seen)%2 == 0, 100)
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
}

func TestPauseResume(t *testing.T) {
	s, tr := startSession(t, testPool(t, -1, 0, 1), DefaultStopPolicy())

	if _, err := s.Pause(); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if s.Status() != StatusPaused {
		t.Errorf("status = %s, want paused", s.Status())
	}
	if _, err := s.Submit(context.Background(), tr.NextItem.ID, true, 100); !errors.Is(err, ErrNotActive) {
		t.Errorf("submit while paused err = %v, want ErrNotActive", err)
	}
	rtr, err := s.Resume(context.Background())
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	// The pending item survives a pause.
	if rtr.NextItem == nil || rtr.NextItem.ID != tr.NextItem.ID {
		t.Errorf("pending item after resume = %+v, want %s", rtr.NextItem, tr.NextItem.ID)
	}
	if _, err := s.Submit(context.Background(), tr.NextItem.ID, true, 100); err != nil {
		t.Errorf("submit after resume failed: %v", err)
	}
}

func TestPause_OnCompletedSession(t *testing.T) {
	s, _ := startSession(t, testPool(t), DefaultStopPolicy()) // completes immediately
	if _, err := s.Pause(); !errors.Is(err, ErrNotActive) {
		t.Errorf("Pause on completed err = %v, want ErrNotActive", err)
	}
}

func TestRestore_ReplaysObservations(t *testing.T) {
	pool := testPool(t, -1, 0, 1)
	ctx := context.Background()

	// Run a live session two responses in.
	s, tr := startSession(t, pool, DefaultStopPolicy())
	for i := 0; i < 2; i++ {
		var err error
		tr, err = s.Submit(ctx, tr.NextItem.ID, true, 100)
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	want := s.Estimate()

	// Rebuild from the persisted observations.
	restored, err := Restore(ctx, Config{ID: s.ID(), Source: pool}, s.Observations())
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if restored.Status() != StatusPaused {
		t.Errorf("restored status = %s, want paused", restored.Status())
	}
	if got := restored.Estimate(); got != want {
		t.Errorf("restored estimate = %+v, want %+v", got, want)
	}
	if len(restored.History()) != len(s.History()) {
		t.Errorf("restored history = %d entries, want %d", len(restored.History()), len(s.History()))
	}

	// Resume re-selects the same item the live session had pending.
	rtr, err := restored.Resume(ctx)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if rtr.NextItem == nil || tr.NextItem == nil || rtr.NextItem.ID != tr.NextItem.ID {
		t.Errorf("resumed pending item = %+v, live had %+v", rtr.NextItem, tr.NextItem)
	}
}

func TestRestore_UnknownItem(t *testing.T) {
	pool := testPool(t, 0)
	obs := []Observation{{ItemID: "ghost", Correct: true}}
	_, err := Restore(context.Background(), Config{ID: "x", Source: pool}, obs)
	if !errors.Is(err, ErrUnknownItem) {
		t.Errorf("err = %v, want ErrUnknownItem", err)
	}
}

// Scenario: three items (difficulties -1, 0, 1, discrimination 1.0),
// responses correct, correct, incorrect against adaptive selection.
// The final theta lands between 0 and 1 with SE below the initial
// default.
func TestScenario_ThreeItemAdaptiveRun(t *testing.T) {
	s, tr := startSession(t, testPool(t, -1, 0, 1), DefaultStopPolicy())

	answers := []bool{true, true, false}
	for _, correct := range answers {
		if tr.NextItem == nil {
			t.Fatal("selector returned no item before responses were exhausted")
		}
		var err error
		tr, err = s.Submit(context.Background(), tr.NextItem.ID, correct, 100)
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	if s.Status() != StatusCompleted {
		t.Fatalf("status = %s, want completed", s.Status())
	}
	final := s.Estimate()
	if final.Theta <= 0 || final.Theta >= 1 {
		t.Errorf("final theta = %f, want in (0, 1)", final.Theta)
	}
	if final.SE >= irt.DefaultInitialSE {
		t.Errorf("final SE = %f, want < %f", final.SE, irt.DefaultInitialSE)
	}
}

// Scenario: with a budget of 5 and an over-supplied pool, the session
// completes exactly on the 5th response.
func TestScenario_ItemBudget(t *testing.T) {
	pool := testPool(t, -3, -2.2, -1.5, -0.7, 0, 0.7, 1.5, 2.2, 3)
	s, tr := startSession(t, pool, StopPolicy{MaxItems: 5, TargetSE: 0.01, MinItems: 3})

	for i := 1; i <= 5; i++ {
		var err error
		tr, err = s.Submit(context.Background(), tr.NextItem.ID, i%2 == 0, 100)
		if err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
		if i < 5 && s.Status() != StatusInProgress {
			t.Fatalf("session ended early at response %d (%s)", i, s.StopReason())
		}
	}
	if s.Status() != StatusCompleted || s.StopReason() != StopMaxItems {
		t.Errorf("status = %s (%s), want completed (max_items)", s.Status(), s.StopReason())
	}
	if len(s.Observations()) != 5 {
		t.Errorf("observations = %d, want 5", len(s.Observations()))
	}
}

// Scenario: a two-item pool runs dry after two responses; the session
// force-completes on exhaustion.
func TestScenario_PoolExhaustion(t *testing.T) {
	s, tr := startSession(t, testPool(t, -0.5, 0.5), DefaultStopPolicy())

	for i := 0; i < 2; i++ {
		var err error
		tr, err = s.Submit(context.Background(), tr.NextItem.ID, true, 100)
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	if s.Status() != StatusCompleted || s.StopReason() != StopExhausted {
		t.Errorf("status = %s (%s), want completed (pool_exhausted)", s.Status(), s.StopReason())
	}
	if tr.NextItem != nil {
		t.Error("terminal transition still carries a next item")
	}
	if tr.Report == nil || len(tr.Report.Observations) != 2 {
		t.Errorf("report = %+v, want 2 observations", tr.Report)
	}
}

// Scenario: abort mid-session freezes the estimate and rejects any
// further submissions.
func TestScenario_Abort(t *testing.T) {
	s, tr := startSession(t, testPool(t, -1, 0, 1), DefaultStopPolicy())

	tr, err := s.Submit(context.Background(), tr.NextItem.ID, true, 100)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	atAbort := s.Estimate()
	pending := tr.NextItem

	abortTr, err := s.Abort()
	if err != nil {
		t.Fatalf("Abort: %v", err)
	}
	if s.Status() != StatusAborted {
		t.Errorf("status = %s, want aborted", s.Status())
	}
	if abortTr.Report == nil || abortTr.Report.StopReason != StopAborted {
		t.Errorf("abort report = %+v, want StopAborted report", abortTr.Report)
	}

	if _, err := s.Submit(context.Background(), pending.ID, true, 100); !errors.Is(err, ErrNotActive) {
		t.Errorf("submit after abort err = %v, want ErrNotActive", err)
	}
	if s.Estimate() != atAbort {
		t.Errorf("estimate changed after abort: %+v vs %+v", s.Estimate(), atAbort)
	}
}

func TestHistory_GrowsWithObservations(t *testing.T) {
	s, tr := startSession(t, testPool(t, -1, 0, 1), DefaultStopPolicy())

	if len(s.History()) != 1 {
		t.Fatalf("history = %d entries at start, want 1", len(s.History()))
	}
	for i := 0; i < 2; i++ {
		var err error
		tr, err = s.Submit(context.Background(), tr.NextItem.ID, true, 100)
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	if got := len(s.History()); got != 3 {
		t.Errorf("history = %d entries after 2 responses, want 3", got)
	}
}
