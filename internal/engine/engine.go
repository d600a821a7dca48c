// Package engine is the hosting-facing surface of the assessment core.
// It owns the session registry (keyed by UUID), serializes access to
// each session, and mirrors every transition into the event store so
// dashboards and history screens can read it back.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lexiq/lexiq/internal/assessment"
	"github.com/lexiq/lexiq/internal/irt"
	"github.com/lexiq/lexiq/internal/itembank"
	"github.com/lexiq/lexiq/internal/level"
	"github.com/lexiq/lexiq/internal/store"
)

// ErrSessionNotFound is returned for operations on unknown session IDs.
var ErrSessionNotFound = errors.New("engine: session not found")

// Config assembles the engine's collaborators. Source is required;
// everything else has a working default or is optional.
type Config struct {
	// Source supplies assessment items.
	Source itembank.Source

	// Estimator tunes the ability estimator.
	Estimator irt.Config

	// Policy holds the stopping rules.
	Policy assessment.StopPolicy

	// Levels maps theta to proficiency buckets.
	Levels level.Thresholds

	// Events receives lifecycle and response events. Optional.
	Events store.EventRepo

	// Snapshots persists suspended sessions across restarts. Optional.
	Snapshots store.SnapshotRepo

	// Logger receives structured logs. Defaults to slog.Default().
	Logger *slog.Logger
}

type sessionEntry struct {
	mu   sync.Mutex
	sess *assessment.Session
}

// Engine manages concurrent assessment sessions. Sessions are fully
// independent; the registry mutex only guards the map, and each
// session serializes its own operations.
type Engine struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry

	source    itembank.Source
	estimator *irt.Estimator
	policy    assessment.StopPolicy
	levels    level.Thresholds
	events    store.EventRepo
	snapshots store.SnapshotRepo
	log       *slog.Logger
}

// New creates an engine.
func New(cfg Config) (*Engine, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("engine: nil item source")
	}
	if cfg.Policy == (assessment.StopPolicy{}) {
		cfg.Policy = assessment.DefaultStopPolicy()
	}
	if cfg.Levels == (level.Thresholds{}) {
		cfg.Levels = level.DefaultThresholds()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Engine{
		sessions:  make(map[string]*sessionEntry),
		source:    cfg.Source,
		estimator: irt.NewEstimator(cfg.Estimator),
		policy:    cfg.Policy,
		levels:    cfg.Levels,
		events:    cfg.Events,
		snapshots: cfg.Snapshots,
		log:       cfg.Logger,
	}, nil
}

// Start creates a session, starts it, and returns the first
// transition. The session ID is in Transition.SessionID.
func (e *Engine) Start(ctx context.Context) (*assessment.Transition, error) {
	id := uuid.NewString()
	sess, err := assessment.New(assessment.Config{
		ID:        id,
		Source:    e.source,
		Estimator: e.estimator,
		Policy:    e.policy,
		Levels:    e.levels,
	})
	if err != nil {
		return nil, err
	}

	tr, err := sess.Start(ctx)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.sessions[id] = &sessionEntry{sess: sess}
	e.mu.Unlock()

	e.log.Info("assessment started", "session_id", id, "status", tr.Status)
	e.recordSessionEvent(ctx, sess, "started")
	if tr.Status == assessment.StatusCompleted {
		// An empty pool completes the session on the spot.
		e.recordTerminal(ctx, sess)
	}
	return tr, nil
}

// Submit scores a response for the given session.
func (e *Engine) Submit(ctx context.Context, sessionID, itemID string, correct bool, latencyMs int) (*assessment.Transition, error) {
	entry, err := e.entry(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	before := entry.sess.Estimate()
	tr, err := entry.sess.Submit(ctx, itemID, correct, latencyMs)
	if err != nil {
		return nil, err
	}

	e.log.Debug("response scored",
		"session_id", sessionID,
		"item_id", itemID,
		"correct", correct,
		"theta", tr.Estimate.Theta,
		"se", tr.Estimate.SE,
		"theta_before", before.Theta,
	)
	e.recordResponse(ctx, sessionID, itemID, correct, latencyMs, tr.Estimate)
	if tr.Status == assessment.StatusCompleted {
		e.log.Info("assessment completed",
			"session_id", sessionID,
			"stop_reason", entry.sess.StopReason(),
			"theta", tr.Estimate.Theta,
			"se", tr.Estimate.SE,
			"level", tr.Level,
		)
		e.recordTerminal(ctx, entry.sess)
	}
	return tr, nil
}

// Abort terminates a session. The estimate freezes as it stood.
func (e *Engine) Abort(ctx context.Context, sessionID string) (*assessment.Transition, error) {
	entry, err := e.entry(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	tr, err := entry.sess.Abort()
	if err != nil {
		return nil, err
	}
	e.log.Info("assessment aborted", "session_id", sessionID, "theta", tr.Estimate.Theta)
	e.recordTerminal(ctx, entry.sess)
	return tr, nil
}

// Pause suspends a session.
func (e *Engine) Pause(sessionID string) (*assessment.Transition, error) {
	entry, err := e.entry(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.sess.Pause()
}

// Resume reactivates a paused session.
func (e *Engine) Resume(ctx context.Context, sessionID string) (*assessment.Transition, error) {
	entry, err := e.entry(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	tr, err := entry.sess.Resume(ctx)
	if err != nil {
		return nil, err
	}
	if tr.Status == assessment.StatusCompleted {
		e.recordTerminal(ctx, entry.sess)
	}
	return tr, nil
}

// Policy returns the stopping rules in effect.
func (e *Engine) Policy() assessment.StopPolicy {
	return e.policy
}

// Session returns the session with the given ID.
func (e *Engine) Session(sessionID string) (*assessment.Session, error) {
	entry, err := e.entry(sessionID)
	if err != nil {
		return nil, err
	}
	return entry.sess, nil
}

// Suspend pauses every in-progress session and snapshots all
// non-terminal ones so Restore can rebuild them after a restart.
func (e *Engine) Suspend(ctx context.Context) error {
	if e.snapshots == nil {
		return nil
	}

	e.mu.Lock()
	entries := make([]*sessionEntry, 0, len(e.sessions))
	for _, entry := range e.sessions {
		entries = append(entries, entry)
	}
	e.mu.Unlock()

	data := store.SnapshotData{
		Version:  1,
		Sessions: make(map[string]*store.SessionSnapshotData),
	}
	for _, entry := range entries {
		entry.mu.Lock()
		sess := entry.sess
		if sess.Status() == assessment.StatusInProgress {
			if _, err := sess.Pause(); err != nil {
				entry.mu.Unlock()
				return fmt.Errorf("pause session %s: %w", sess.ID(), err)
			}
		}
		if sess.Status() == assessment.StatusPaused {
			data.Sessions[sess.ID()] = sessionToSnapshot(sess)
		}
		entry.mu.Unlock()
	}

	if len(data.Sessions) == 0 {
		return nil
	}
	err := e.snapshots.Save(ctx, &store.Snapshot{
		Timestamp: time.Now(),
		Data:      data,
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	e.log.Info("sessions suspended", "count", len(data.Sessions))
	return nil
}

// Restore rebuilds suspended sessions from the latest snapshot. Safe
// to call on a fresh engine; missing snapshots are a no-op.
func (e *Engine) Restore(ctx context.Context) error {
	if e.snapshots == nil {
		return nil
	}
	snap, err := e.snapshots.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return nil
	}

	restored := 0
	for id, sd := range snap.Data.Sessions {
		observations := make([]assessment.Observation, 0, len(sd.Observations))
		for _, o := range sd.Observations {
			observations = append(observations, assessment.Observation{
				ItemID:    o.ItemID,
				Correct:   o.Correct,
				LatencyMs: o.LatencyMs,
				Theta:     o.Theta,
				SE:        o.SE,
				At:        o.At,
			})
		}
		sess, err := assessment.Restore(ctx, assessment.Config{
			ID:        id,
			Source:    e.source,
			Estimator: e.estimator,
			Policy:    e.policy,
			Levels:    e.levels,
		}, observations)
		if err != nil {
			// An item may have left the bank since the snapshot.
			e.log.Warn("session not restorable", "session_id", id, "error", err)
			continue
		}
		e.mu.Lock()
		e.sessions[id] = &sessionEntry{sess: sess}
		e.mu.Unlock()
		restored++
	}
	if restored > 0 {
		e.log.Info("sessions restored", "count", restored)
	}
	return nil
}

func (e *Engine) entry(sessionID string) (*sessionEntry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	entry, ok := e.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return entry, nil
}

func sessionToSnapshot(sess *assessment.Session) *store.SessionSnapshotData {
	obs := sess.Observations()
	data := &store.SessionSnapshotData{
		SessionID:    sess.ID(),
		Status:       string(sess.Status()),
		Observations: make([]store.ObservationData, 0, len(obs)),
	}
	for _, o := range obs {
		data.Observations = append(data.Observations, store.ObservationData{
			ItemID:    o.ItemID,
			Correct:   o.Correct,
			LatencyMs: o.LatencyMs,
			Theta:     o.Theta,
			SE:        o.SE,
			At:        o.At,
		})
	}
	return data
}

// Event persistence is best-effort: a failed append is logged and the
// session carries on. The in-memory state machine stays the source of
// truth for a running assessment.

func (e *Engine) recordSessionEvent(ctx context.Context, sess *assessment.Session, action string) {
	if e.events == nil {
		return
	}
	est := sess.Estimate()
	err := e.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:     sess.ID(),
		Action:        action,
		ItemsServed:   len(sess.Observations()),
		CorrectCount:  correctCount(sess),
		Theta:         est.Theta,
		StandardError: est.SE,
	})
	if err != nil {
		e.log.Warn("session event not recorded", "session_id", sess.ID(), "action", action, "error", err)
	}
}

func (e *Engine) recordTerminal(ctx context.Context, sess *assessment.Session) {
	if e.events == nil {
		return
	}
	report := sess.Report()
	if report == nil {
		return
	}
	action := "completed"
	if sess.Status() == assessment.StatusAborted {
		action = "aborted"
	}
	err := e.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:     sess.ID(),
		Action:        action,
		ItemsServed:   len(report.Observations),
		CorrectCount:  correctCount(sess),
		Theta:         report.Final.Theta,
		StandardError: report.Final.SE,
		Level:         string(report.Level),
		StopReason:    string(report.StopReason),
		DurationSecs:  int(report.Duration.Seconds()),
	})
	if err != nil {
		e.log.Warn("terminal event not recorded", "session_id", sess.ID(), "action", action, "error", err)
	}
}

func (e *Engine) recordResponse(ctx context.Context, sessionID, itemID string, correct bool, latencyMs int, est irt.Estimate) {
	if e.events == nil {
		return
	}
	var diff, disc float64
	if item, ok := e.source.Get(ctx, itemID); ok {
		diff, disc = item.Difficulty, item.Discrimination
	}
	err := e.events.AppendResponseEvent(ctx, store.ResponseEventData{
		SessionID:      sessionID,
		ItemID:         itemID,
		Correct:        correct,
		LatencyMs:      latencyMs,
		Difficulty:     diff,
		Discrimination: disc,
		ThetaAfter:     est.Theta,
		SEAfter:        est.SE,
	})
	if err != nil {
		e.log.Warn("response event not recorded", "session_id", sessionID, "item_id", itemID, "error", err)
	}
}

func correctCount(sess *assessment.Session) int {
	n := 0
	for _, o := range sess.Observations() {
		if o.Correct {
			n++
		}
	}
	return n
}
