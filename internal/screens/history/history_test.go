package history

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/lexiq/lexiq/internal/store"
)

type fakeEventRepo struct {
	sessions      []store.SessionSummary
	responses     map[string][]store.ResponseRecord
	responseCalls int
}

func (f *fakeEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}

func (f *fakeEventRepo) AppendResponseEvent(_ context.Context, _ store.ResponseEventData) error {
	return nil
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (f *fakeEventRepo) SessionResponses(_ context.Context, sessionID string) ([]store.ResponseRecord, error) {
	f.responseCalls++
	return f.responses[sessionID], nil
}

func (f *fakeEventRepo) RecentSessions(_ context.Context, _ int) ([]store.SessionSummary, error) {
	return f.sessions, nil
}

func (f *fakeEventRepo) ItemAccuracy(_ context.Context, _ string) (float64, int, error) {
	return 0, 0, nil
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

func testRepo() *fakeEventRepo {
	return &fakeEventRepo{
		sessions: []store.SessionSummary{
			{SessionID: "s1", Action: "completed", ItemsServed: 3, Theta: 0.4, Level: "intermediate", Timestamp: time.Now()},
			{SessionID: "s2", Action: "aborted", ItemsServed: 1, Timestamp: time.Now()},
		},
		responses: map[string][]store.ResponseRecord{
			"s1": {
				{ResponseEventData: store.ResponseEventData{SessionID: "s1", ItemID: "q1", Correct: true}},
			},
		},
	}
}

func loadScreen(t *testing.T, repo *fakeEventRepo) *HistoryScreen {
	t.Helper()
	s := New(repo)
	msg := s.Init()()
	updated, _ := s.Update(msg)
	return updated.(*HistoryScreen)
}

func TestInit_LoadsSessionsOnly(t *testing.T) {
	repo := testRepo()
	s := loadScreen(t, repo)

	if len(s.sessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(s.sessions))
	}
	if repo.responseCalls != 0 {
		t.Errorf("response fetches at init = %d, want 0", repo.responseCalls)
	}
}

func TestExpand_FetchesResponsesOnce(t *testing.T) {
	repo := testRepo()
	s := loadScreen(t, repo)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a fetch command on first expand")
	}
	updated, _ := s.Update(cmd())
	s = updated.(*HistoryScreen)

	if repo.responseCalls != 1 {
		t.Fatalf("response fetches = %d, want 1", repo.responseCalls)
	}
	if len(s.responses["s1"]) != 1 {
		t.Errorf("cached responses = %d, want 1", len(s.responses["s1"]))
	}

	// Collapse and re-expand serves from cache.
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("collapse should not fetch")
	}
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("re-expand should hit the cache")
	}
	if repo.responseCalls != 1 {
		t.Errorf("response fetches after re-expand = %d, want 1", repo.responseCalls)
	}
}
