package store

import (
	"context"
	"time"
)

// SessionEventData captures a session lifecycle change.
type SessionEventData struct {
	SessionID     string
	Action        string // "started", "completed", "aborted"
	ItemsServed   int
	CorrectCount  int
	Theta         float64
	StandardError float64
	Level         string // set on terminal actions
	StopReason    string // set on terminal actions
	DurationSecs  int    // set on terminal actions
}

// ResponseEventData captures one scored response and the estimate it
// produced. Item parameters are denormalized in so history survives
// bank edits.
type ResponseEventData struct {
	SessionID      string
	ItemID         string
	Correct        bool
	LatencyMs      int
	Difficulty     float64
	Discrimination float64
	ThetaAfter     float64
	SEAfter        float64
}

// ResponseRecord is a persisted response event with its ordering metadata.
type ResponseRecord struct {
	Sequence  int64
	Timestamp time.Time
	ResponseEventData
}

// SessionSummary is a terminal session event as read back for stats.
type SessionSummary struct {
	SessionID     string
	Action        string
	ItemsServed   int
	CorrectCount  int
	Theta         float64
	StandardError float64
	Level         string
	StopReason    string
	DurationSecs  int
	Timestamp     time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestRecord is a persisted LLM request event with its ordering
// metadata.
type LLMRequestRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates token usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model ID.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session lifecycle change.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendResponseEvent records a scored response.
	AppendResponseEvent(ctx context.Context, data ResponseEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// SessionResponses returns a session's responses in submission order.
	SessionResponses(ctx context.Context, sessionID string) ([]ResponseRecord, error)

	// RecentSessions returns the most recent terminal session events,
	// newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error)

	// ItemAccuracy returns the observed proportion correct for an item
	// across all sessions, plus the sample size.
	ItemAccuracy(ctx context.Context, itemID string) (float64, int, error)

	// RecentLLMRequests returns the most recent LLM request events,
	// newest first.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// ObservationData is the persisted form of one session observation.
type ObservationData struct {
	ItemID    string    `json:"item_id"`
	Correct   bool      `json:"correct"`
	LatencyMs int       `json:"latency_ms"`
	Theta     float64   `json:"theta"`
	SE        float64   `json:"se"`
	At        time.Time `json:"at"`
}

// SessionSnapshotData is the persisted form of one suspended session.
type SessionSnapshotData struct {
	SessionID    string            `json:"session_id"`
	Status       string            `json:"status"`
	Observations []ObservationData `json:"observations"`
}

// SnapshotData captures every suspended session at a point in time so
// the engine can restore them after a restart.
type SnapshotData struct {
	Version  int                             `json:"version"`
	Sessions map[string]*SessionSnapshotData `json:"sessions"`
}

// Snapshot represents a point-in-time capture of engine state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages engine state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
