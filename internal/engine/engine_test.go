package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/lexiq/lexiq/internal/assessment"
	"github.com/lexiq/lexiq/internal/itembank"
	"github.com/lexiq/lexiq/internal/store"
)

type fakeEventRepo struct {
	sessionEvents  []store.SessionEventData
	responseEvents []store.ResponseEventData
	failAppends    bool
}

func (f *fakeEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	if f.failAppends {
		return fmt.Errorf("append failed")
	}
	f.sessionEvents = append(f.sessionEvents, data)
	return nil
}

func (f *fakeEventRepo) AppendResponseEvent(_ context.Context, data store.ResponseEventData) error {
	if f.failAppends {
		return fmt.Errorf("append failed")
	}
	f.responseEvents = append(f.responseEvents, data)
	return nil
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (f *fakeEventRepo) SessionResponses(_ context.Context, _ string) ([]store.ResponseRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) RecentSessions(_ context.Context, _ int) ([]store.SessionSummary, error) {
	return nil, nil
}

func (f *fakeEventRepo) RecentLLMRequests(_ context.Context, _ int) ([]store.LLMRequestRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func (f *fakeEventRepo) ItemAccuracy(_ context.Context, _ string) (float64, int, error) {
	return 0, 0, nil
}

type fakeSnapshotRepo struct {
	saved  []*store.Snapshot
	latest *store.Snapshot
}

func (f *fakeSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	f.saved = append(f.saved, snap)
	f.latest = snap
	return nil
}

func (f *fakeSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	return f.latest, nil
}

func (f *fakeSnapshotRepo) Prune(_ context.Context, _ int) error { return nil }

func testPool(t *testing.T, difficulties ...float64) *itembank.Pool {
	t.Helper()
	items := make([]itembank.Item, 0, len(difficulties))
	for i, b := range difficulties {
		items = append(items, itembank.Item{
			ID:             fmt.Sprintf("q%d", i+1),
			Difficulty:     b,
			Discrimination: 1.0,
		})
	}
	pool, err := itembank.NewPool(items...)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	return pool
}

func newTestEngine(t *testing.T, pool *itembank.Pool, events store.EventRepo, snaps store.SnapshotRepo) *Engine {
	t.Helper()
	eng, err := New(Config{
		Source:    pool,
		Events:    events,
		Snapshots: snaps,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return eng
}

func TestStart_AssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, testPool(t, -1, 0, 1), nil, nil)

	tr1, err := eng.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	tr2, err := eng.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if tr1.SessionID == "" || tr1.SessionID == tr2.SessionID {
		t.Fatalf("expected distinct non-empty session ids, got %q and %q", tr1.SessionID, tr2.SessionID)
	}
	if tr1.NextItem == nil {
		t.Fatal("expected a first item")
	}
}

func TestSubmit_RecordsEvents(t *testing.T) {
	ctx := context.Background()
	events := &fakeEventRepo{}
	eng := newTestEngine(t, testPool(t, -1, 0, 1, 2, -2, 0.5, -0.5, 1.5, -1.5, 0.25, -0.25), events, nil)

	tr, err := eng.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if len(events.sessionEvents) != 1 || events.sessionEvents[0].Action != "started" {
		t.Fatalf("expected a started event, got %+v", events.sessionEvents)
	}

	id := tr.SessionID
	for tr.Status == assessment.StatusInProgress {
		tr, err = eng.Submit(ctx, id, tr.NextItem.ID, true, 1200)
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	if tr.Status != assessment.StatusCompleted {
		t.Fatalf("status = %v, want completed", tr.Status)
	}
	if len(events.responseEvents) != len(tr.Report.Observations) {
		t.Fatalf("response events = %d, want %d", len(events.responseEvents), len(tr.Report.Observations))
	}
	last := events.sessionEvents[len(events.sessionEvents)-1]
	if last.Action != "completed" {
		t.Fatalf("last session event = %q, want completed", last.Action)
	}
	if last.StopReason == "" || last.Level == "" {
		t.Fatalf("terminal event missing level/stop reason: %+v", last)
	}
	if last.CorrectCount != last.ItemsServed {
		t.Fatalf("all answers were correct, got %d/%d", last.CorrectCount, last.ItemsServed)
	}
	// Response events carry the bank parameters.
	if events.responseEvents[0].Discrimination != 1.0 {
		t.Fatalf("discrimination = %v, want 1.0", events.responseEvents[0].Discrimination)
	}
}

func TestSubmit_StoreFailureDoesNotBreakSession(t *testing.T) {
	ctx := context.Background()
	events := &fakeEventRepo{failAppends: true}
	eng := newTestEngine(t, testPool(t, -1, 0, 1), events, nil)

	tr, err := eng.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	tr, err = eng.Submit(ctx, tr.SessionID, tr.NextItem.ID, true, 500)
	if err != nil {
		t.Fatalf("Submit should survive a failing store: %v", err)
	}
	if tr.Status != assessment.StatusInProgress {
		t.Fatalf("status = %v, want in_progress", tr.Status)
	}
}

func TestSubmit_UnknownSession(t *testing.T) {
	eng := newTestEngine(t, testPool(t, 0), nil, nil)
	if _, err := eng.Submit(context.Background(), "nope", "q1", true, 0); err == nil {
		t.Fatal("expected an error for an unknown session")
	}
}

func TestAbort_RecordsTerminalEvent(t *testing.T) {
	ctx := context.Background()
	events := &fakeEventRepo{}
	eng := newTestEngine(t, testPool(t, -1, 0, 1), events, nil)

	tr, err := eng.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	tr, err = eng.Abort(ctx, tr.SessionID)
	if err != nil {
		t.Fatalf("Abort: %v", err)
	}
	if tr.Status != assessment.StatusAborted {
		t.Fatalf("status = %v, want aborted", tr.Status)
	}
	last := events.sessionEvents[len(events.sessionEvents)-1]
	if last.Action != "aborted" {
		t.Fatalf("last session event = %q, want aborted", last.Action)
	}
}

func TestSuspendRestore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	snaps := &fakeSnapshotRepo{}
	pool := testPool(t, -1, 0, 1, 2)

	eng := newTestEngine(t, pool, nil, snaps)
	tr, err := eng.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	id := tr.SessionID
	tr, err = eng.Submit(ctx, id, tr.NextItem.ID, true, 800)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	wantTheta := tr.Estimate.Theta

	if err := eng.Suspend(ctx); err != nil {
		t.Fatalf("Suspend: %v", err)
	}
	if len(snaps.saved) != 1 {
		t.Fatalf("snapshots saved = %d, want 1", len(snaps.saved))
	}
	if _, ok := snaps.latest.Data.Sessions[id]; !ok {
		t.Fatalf("snapshot missing session %s", id)
	}

	// A fresh engine picks the session back up.
	eng2 := newTestEngine(t, pool, nil, snaps)
	if err := eng2.Restore(ctx); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	sess, err := eng2.Session(id)
	if err != nil {
		t.Fatalf("Session after restore: %v", err)
	}
	if sess.Status() != assessment.StatusPaused {
		t.Fatalf("restored status = %v, want paused", sess.Status())
	}
	if got := sess.Estimate().Theta; got != wantTheta {
		t.Fatalf("restored theta = %v, want %v", got, wantTheta)
	}

	tr, err = eng2.Resume(ctx, id)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if tr.Status != assessment.StatusInProgress || tr.NextItem == nil {
		t.Fatalf("resume did not re-select an item: %+v", tr)
	}
	if tr.NextItem.ID == sess.Observations()[0].ItemID {
		t.Fatal("resume re-served an already administered item")
	}
}

func TestSuspend_SkipsTerminalSessions(t *testing.T) {
	ctx := context.Background()
	snaps := &fakeSnapshotRepo{}
	eng := newTestEngine(t, testPool(t, 0), nil, snaps)

	tr, err := eng.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := eng.Abort(ctx, tr.SessionID); err != nil {
		t.Fatalf("Abort: %v", err)
	}
	if err := eng.Suspend(ctx); err != nil {
		t.Fatalf("Suspend: %v", err)
	}
	if len(snaps.saved) != 0 {
		t.Fatalf("aborted session should not be snapshotted, got %d snapshots", len(snaps.saved))
	}
}

func TestRestore_WithoutSnapshotIsNoop(t *testing.T) {
	eng := newTestEngine(t, testPool(t, 0), nil, &fakeSnapshotRepo{})
	if err := eng.Restore(context.Background()); err != nil {
		t.Fatalf("Restore: %v", err)
	}
}
