package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testEventRepo(t *testing.T, s *Store) EventRepo {
	t.Helper()
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionResponses_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	data := []ResponseEventData{
		{SessionID: "s1", ItemID: "q1", Correct: true, LatencyMs: 900, Difficulty: -0.5, Discrimination: 1.2, ThetaAfter: 0.4, SEAfter: 0.85},
		{SessionID: "s1", ItemID: "q2", Correct: false, LatencyMs: 2100, Difficulty: 0.5, Discrimination: 1.0, ThetaAfter: 0.1, SEAfter: 0.7},
		{SessionID: "s2", ItemID: "q1", Correct: true, LatencyMs: 500, Difficulty: -0.5, Discrimination: 1.2, ThetaAfter: 0.4, SEAfter: 0.85},
	}
	for _, d := range data {
		if err := repo.AppendResponseEvent(ctx, d); err != nil {
			t.Fatalf("AppendResponseEvent: %v", err)
		}
	}

	records, err := repo.SessionResponses(ctx, "s1")
	if err != nil {
		t.Fatalf("SessionResponses: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ItemID != "q1" || records[1].ItemID != "q2" {
		t.Errorf("records out of order: %s, %s", records[0].ItemID, records[1].ItemID)
	}
	if records[0].Sequence >= records[1].Sequence {
		t.Errorf("sequences not increasing: %d, %d", records[0].Sequence, records[1].Sequence)
	}
	if records[1].ThetaAfter != 0.1 || records[1].SEAfter != 0.7 {
		t.Errorf("estimate snapshot lost: %+v", records[1])
	}
}

func TestRecentSessions(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "s1", Action: "started"},
		{SessionID: "s1", Action: "completed", ItemsServed: 8, CorrectCount: 5, Theta: 0.6, StandardError: 0.28, Level: "intermediate", StopReason: "precision", DurationSecs: 240},
		{SessionID: "s2", Action: "started"},
		{SessionID: "s2", Action: "aborted", ItemsServed: 2, CorrectCount: 1, Theta: 0.1, StandardError: 0.8, StopReason: "aborted", DurationSecs: 45},
	}
	for _, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("AppendSessionEvent: %v", err)
		}
	}

	summaries, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	// Only terminal events, newest first.
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	if summaries[0].SessionID != "s2" || summaries[1].SessionID != "s1" {
		t.Errorf("order = %s, %s; want s2, s1", summaries[0].SessionID, summaries[1].SessionID)
	}
	if summaries[1].Level != "intermediate" || summaries[1].StopReason != "precision" {
		t.Errorf("summary fields lost: %+v", summaries[1])
	}
}

func TestItemAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	acc, n, err := repo.ItemAccuracy(ctx, "q1")
	if err != nil {
		t.Fatalf("ItemAccuracy: %v", err)
	}
	if n != 0 || acc != 0 {
		t.Errorf("empty accuracy = (%f, %d), want (0, 0)", acc, n)
	}

	for _, correct := range []bool{true, true, false, true} {
		err := repo.AppendResponseEvent(ctx, ResponseEventData{
			SessionID: "s1", ItemID: "q1", Correct: correct,
			Difficulty: 0, Discrimination: 1, ThetaAfter: 0, SEAfter: 0.9,
		})
		if err != nil {
			t.Fatalf("AppendResponseEvent: %v", err)
		}
	}

	acc, n, err = repo.ItemAccuracy(ctx, "q1")
	if err != nil {
		t.Fatalf("ItemAccuracy: %v", err)
	}
	if n != 4 || acc != 0.75 {
		t.Errorf("accuracy = (%f, %d), want (0.75, 4)", acc, n)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest on empty store: %v", err)
	}
	if snap != nil {
		t.Fatalf("expected nil snapshot, got %+v", snap)
	}

	data := SnapshotData{
		Version: 1,
		Sessions: map[string]*SessionSnapshotData{
			"s1": {
				SessionID: "s1",
				Status:    "paused",
				Observations: []ObservationData{
					{ItemID: "q1", Correct: true, LatencyMs: 800, Theta: 0, SE: 1.0, At: time.Now().UTC()},
				},
			},
		},
	}
	if err := repo.Save(ctx, &Snapshot{Sequence: 7, Timestamp: time.Now(), Data: data}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if snap == nil || snap.Sequence != 7 {
		t.Fatalf("snapshot = %+v", snap)
	}
	sess := snap.Data.Sessions["s1"]
	if sess == nil || sess.Status != "paused" || len(sess.Observations) != 1 {
		t.Errorf("session data lost: %+v", sess)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		snap := &Snapshot{
			Sequence:  int64(i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		}
		if err := repo.Save(ctx, snap); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("Prune: %v", err)
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest == nil || latest.Sequence != 4 {
		t.Errorf("latest after prune = %+v, want sequence 4", latest)
	}

	// Prune with fewer snapshots than keep is a no-op.
	if err := repo.Prune(ctx, 10); err != nil {
		t.Fatalf("Prune with large keep: %v", err)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	seq, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("newSequenceCounter: %v", err)
	}

	ctx := context.Background()
	prev := int64(0)
	for i := 0; i < 5; i++ {
		n, err := seq.Next(ctx)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if n <= prev && i > 0 {
			t.Errorf("sequence not increasing: %d after %d", n, prev)
		}
		prev = n
	}
}

func TestLLMRequestQueries(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "item-draft", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "item-draft", InputTokens: 120, OutputTokens: 60, LatencyMs: 1200, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "item-review", InputTokens: 40, OutputTokens: 10, LatencyMs: 400, Success: false, ErrorMessage: "rate limited"},
	}
	for _, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	records, err := repo.RecentLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("RecentLLMRequests: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Newest first.
	if records[0].Purpose != "item-review" || records[0].ErrorMessage != "rate limited" {
		t.Errorf("newest record = %+v, want the failed review call", records[0])
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByPurpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purposes, want 2", len(byPurpose))
	}
	// Sorted by purpose name.
	draft := byPurpose[0]
	if draft.Purpose != "item-draft" || draft.Calls != 2 || draft.InputTokens != 220 || draft.OutputTokens != 110 {
		t.Errorf("item-draft usage = %+v", draft)
	}
	if draft.AvgLatencyMs != 1000 {
		t.Errorf("avg latency = %d, want 1000", draft.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByModel: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("got %d models, want 2", len(byModel))
	}
	if byModel[0].Model != "claude-sonnet-4-5" || byModel[0].Calls != 2 {
		t.Errorf("model usage = %+v", byModel[0])
	}
}
