// Package assessment implements the adaptive assessment session: a
// state machine that selects items by maximum information, updates the
// ability estimate after every response, and stops once the estimate
// is precise enough or a budget runs out.
package assessment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lexiq/lexiq/internal/irt"
	"github.com/lexiq/lexiq/internal/itembank"
	"github.com/lexiq/lexiq/internal/level"
	"github.com/lexiq/lexiq/internal/selection"
)

var (
	// ErrNotStartable is returned by Start on a session that already ran.
	ErrNotStartable = errors.New("assessment: session already started")

	// ErrNotActive is returned when an operation needs an in-progress
	// session. Submitting to an aborted or completed session lands here.
	ErrNotActive = errors.New("assessment: session not in progress")

	// ErrUnknownItem is returned when a response references an item
	// the bank does not know.
	ErrUnknownItem = errors.New("assessment: unknown item")

	// ErrUnexpectedItem is returned when a response references a known
	// item that is not the one currently administered.
	ErrUnexpectedItem = errors.New("assessment: item is not the pending one")
)

// Config assembles a session's collaborators and policies.
type Config struct {
	// ID identifies the session. Required.
	ID string

	// Source supplies candidate items. Required.
	Source itembank.Source

	// Estimator computes ability estimates. Defaults apply when nil.
	Estimator *irt.Estimator

	// Policy holds the stopping rules. Zero value gets defaults.
	Policy StopPolicy

	// Levels maps theta to a proficiency bucket. Zero value gets defaults.
	Levels level.Thresholds
}

// Session is the adaptive assessment state machine. Methods must be
// called from one goroutine at a time; concurrent test-takers get
// independent sessions with no shared state.
type Session struct {
	id        string
	source    itembank.Source
	estimator *irt.Estimator
	policy    StopPolicy
	levels    level.Thresholds

	status       Status
	estimate     irt.Estimate
	history      []irt.Estimate
	observations []Observation
	responses    []irt.Response
	administered map[string]bool
	current      *itembank.Item
	stopReason   StopReason
	startedAt    time.Time
	finishedAt   time.Time
}

// Transition is emitted after every state change so the hosting layer
// can render the next step.
type Transition struct {
	SessionID string         `json:"session_id"`
	Status    Status         `json:"status"`
	Estimate  irt.Estimate   `json:"estimate"`
	Level     level.Level    `json:"level"`
	NextItem  *itembank.Item `json:"next_item,omitempty"`
	Report    *Report        `json:"report,omitempty"`
}

// Report is the completion payload for downstream reporting.
type Report struct {
	SessionID    string        `json:"session_id"`
	Final        irt.Estimate  `json:"final"`
	ConfidenceLo float64       `json:"confidence_lo"`
	ConfidenceHi float64       `json:"confidence_hi"`
	Level        level.Level   `json:"level"`
	StopReason   StopReason    `json:"stop_reason"`
	Observations []Observation `json:"observations"`
	Duration     time.Duration `json:"duration"`
}

// New creates a session in StatusNotStarted.
func New(cfg Config) (*Session, error) {
	if cfg.ID == "" {
		return nil, fmt.Errorf("assessment: empty session id")
	}
	if cfg.Source == nil {
		return nil, fmt.Errorf("assessment: nil item source")
	}
	if cfg.Estimator == nil {
		cfg.Estimator = irt.NewEstimator(irt.DefaultConfig())
	}
	if cfg.Policy == (StopPolicy{}) {
		cfg.Policy = DefaultStopPolicy()
	}
	if cfg.Levels == (level.Thresholds{}) {
		cfg.Levels = level.DefaultThresholds()
	}
	return &Session{
		id:           cfg.ID,
		source:       cfg.Source,
		estimator:    cfg.Estimator,
		policy:       cfg.Policy,
		levels:       cfg.Levels,
		status:       StatusNotStarted,
		administered: make(map[string]bool),
	}, nil
}

// Restore rebuilds a session from persisted observations, replaying
// each one through the estimator so the estimate history matches what
// the original session produced. The restored session is Paused with
// no pending item; Resume re-runs selection.
func Restore(ctx context.Context, cfg Config, observations []Observation) (*Session, error) {
	s, err := New(cfg)
	if err != nil {
		return nil, err
	}

	s.estimate = s.estimator.Initial()
	s.history = append(s.history, s.estimate)
	for _, o := range observations {
		item, ok := s.source.Get(ctx, o.ItemID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownItem, o.ItemID)
		}
		s.responses = append(s.responses, irt.Response{
			Difficulty:     item.Difficulty,
			Discrimination: item.Discrimination,
			Correct:        o.Correct,
		})
		est, err := s.estimator.Update(s.estimate, s.responses)
		if err != nil {
			return nil, fmt.Errorf("replay observation %s: %w", o.ItemID, err)
		}
		s.observations = append(s.observations, o)
		s.administered[o.ItemID] = true
		s.estimate = est
		s.history = append(s.history, est)
	}

	s.status = StatusPaused
	s.startedAt = time.Now()
	if len(observations) > 0 {
		s.startedAt = observations[0].At
	}
	return s, nil
}

// Start transitions NotStarted → InProgress, seeds the default
// estimate, and selects the first item. An empty pool completes the
// session immediately.
func (s *Session) Start(ctx context.Context) (*Transition, error) {
	if s.status != StatusNotStarted {
		return nil, fmt.Errorf("%w: status %s", ErrNotStartable, s.status)
	}

	eligible, err := s.source.FetchEligibleItems(ctx, s.administered)
	if err != nil {
		return nil, fmt.Errorf("fetch eligible items: %w", err)
	}

	s.estimate = s.estimator.Initial()
	s.history = append(s.history, s.estimate)
	s.startedAt = time.Now()
	s.status = StatusInProgress

	s.current = selection.Next(s.estimate.Theta, s.administered, eligible)
	if s.current == nil {
		return s.complete(StopExhausted), nil
	}
	return s.transition(), nil
}

// Submit scores a response to the pending item, recomputes the
// estimate, and either continues with the next item or completes the
// session. Domain errors leave the session untouched.
func (s *Session) Submit(ctx context.Context, itemID string, correct bool, latencyMs int) (*Transition, error) {
	if s.status != StatusInProgress {
		return nil, fmt.Errorf("%w: status %s", ErrNotActive, s.status)
	}

	item, ok := s.source.Get(ctx, itemID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
	}
	if s.current == nil || s.current.ID != itemID {
		pending := "none"
		if s.current != nil {
			pending = s.current.ID
		}
		return nil, fmt.Errorf("%w: got %s, pending %s", ErrUnexpectedItem, itemID, pending)
	}

	// Compute everything fallible before committing any state.
	responses := append(append([]irt.Response{}, s.responses...), irt.Response{
		Difficulty:     item.Difficulty,
		Discrimination: item.Discrimination,
		Correct:        correct,
	})
	newEstimate, err := s.estimator.Update(s.estimate, responses)
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]bool, len(s.administered)+1)
	for id := range s.administered {
		excluded[id] = true
	}
	excluded[itemID] = true
	eligible, err := s.source.FetchEligibleItems(ctx, excluded)
	if err != nil {
		return nil, fmt.Errorf("fetch eligible items: %w", err)
	}

	// Commit: observation carries the pre-update estimate.
	s.observations = append(s.observations, Observation{
		ItemID:    itemID,
		Correct:   correct,
		LatencyMs: latencyMs,
		Theta:     s.estimate.Theta,
		SE:        s.estimate.SE,
		At:        time.Now(),
	})
	s.responses = responses
	s.administered[itemID] = true
	s.estimate = newEstimate
	s.history = append(s.history, newEstimate)
	s.current = nil

	if reason, stop := s.policy.Evaluate(len(s.observations), s.estimate, len(eligible)); stop {
		return s.complete(reason), nil
	}

	s.current = selection.Next(s.estimate.Theta, s.administered, eligible)
	if s.current == nil {
		// Safety net: the selector found nothing even though the
		// stopping rules said continue.
		return s.complete(StopExhausted), nil
	}
	return s.transition(), nil
}

// Pause suspends an in-progress session. The pending item stays
// pending across Resume.
func (s *Session) Pause() (*Transition, error) {
	if s.status != StatusInProgress {
		return nil, fmt.Errorf("%w: status %s", ErrNotActive, s.status)
	}
	s.status = StatusPaused
	return s.transition(), nil
}

// Resume reactivates a paused session. A session restored from a
// snapshot resumes with no pending item; in that case Resume re-runs
// the stopping rules and selects the next item, which may complete
// the session outright.
func (s *Session) Resume(ctx context.Context) (*Transition, error) {
	if s.status != StatusPaused {
		return nil, fmt.Errorf("%w: status %s", ErrNotActive, s.status)
	}
	s.status = StatusInProgress
	if s.current != nil {
		return s.transition(), nil
	}

	eligible, err := s.source.FetchEligibleItems(ctx, s.administered)
	if err != nil {
		s.status = StatusPaused
		return nil, fmt.Errorf("fetch eligible items: %w", err)
	}
	if reason, stop := s.policy.Evaluate(len(s.observations), s.estimate, len(eligible)); stop {
		return s.complete(reason), nil
	}
	s.current = selection.Next(s.estimate.Theta, s.administered, eligible)
	if s.current == nil {
		return s.complete(StopExhausted), nil
	}
	return s.transition(), nil
}

// Abort terminates the session from InProgress or Paused. The estimate
// is frozen as it stood; further submissions are rejected.
func (s *Session) Abort() (*Transition, error) {
	if s.status != StatusInProgress && s.status != StatusPaused {
		return nil, fmt.Errorf("%w: status %s", ErrNotActive, s.status)
	}
	s.status = StatusAborted
	s.stopReason = StopAborted
	s.current = nil
	s.finishedAt = time.Now()

	t := s.transition()
	t.Report = s.Report()
	return t, nil
}

func (s *Session) complete(reason StopReason) *Transition {
	s.status = StatusCompleted
	s.stopReason = reason
	s.current = nil
	s.finishedAt = time.Now()

	t := s.transition()
	t.Report = s.Report()
	return t
}

func (s *Session) transition() *Transition {
	return &Transition{
		SessionID: s.id,
		Status:    s.status,
		Estimate:  s.estimate,
		Level:     s.levels.For(s.estimate.Theta),
		NextItem:  s.current,
	}
}

// Report assembles the completion payload. Nil unless the session has
// finished.
func (s *Session) Report() *Report {
	if !s.status.Terminal() {
		return nil
	}
	lo, hi := s.estimate.ConfidenceInterval()
	return &Report{
		SessionID:    s.id,
		Final:        s.estimate,
		ConfidenceLo: lo,
		ConfidenceHi: hi,
		Level:        s.levels.For(s.estimate.Theta),
		StopReason:   s.stopReason,
		Observations: s.Observations(),
		Duration:     s.finishedAt.Sub(s.startedAt),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Status returns the current lifecycle state.
func (s *Session) Status() Status { return s.status }

// Estimate returns the current ability estimate.
func (s *Session) Estimate() irt.Estimate { return s.estimate }

// Level returns the proficiency bucket for the current estimate.
func (s *Session) Level() level.Level { return s.levels.For(s.estimate.Theta) }

// CurrentItem returns the pending item, or nil when none is pending.
func (s *Session) CurrentItem() *itembank.Item { return s.current }

// StopReason returns why the session ended, or StopNone while running.
func (s *Session) StopReason() StopReason { return s.stopReason }

// Observations returns a copy of the append-only observation log.
func (s *Session) Observations() []Observation {
	out := make([]Observation, len(s.observations))
	copy(out, s.observations)
	return out
}

// History returns a copy of every estimate produced so far, starting
// with the initial one. One entry per observation plus the seed.
func (s *Session) History() []irt.Estimate {
	out := make([]irt.Estimate, len(s.history))
	copy(out, s.history)
	return out
}
