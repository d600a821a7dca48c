package assessment

// Status is a session's lifecycle state.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusPaused     Status = "paused"
	StatusCompleted  Status = "completed"
	StatusAborted    Status = "aborted"
)

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusAborted
}

// StopReason records why a session ended.
type StopReason string

const (
	// StopNone means the session has not stopped.
	StopNone StopReason = ""

	// StopMaxItems means the item budget was exhausted.
	StopMaxItems StopReason = "max_items"

	// StopPrecision means the standard error reached the target.
	StopPrecision StopReason = "precision"

	// StopExhausted means no eligible items remained in the pool.
	StopExhausted StopReason = "pool_exhausted"

	// StopAborted means the test-taker (or host) aborted the session.
	StopAborted StopReason = "aborted"
)
