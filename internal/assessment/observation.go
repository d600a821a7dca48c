package assessment

import "time"

// Observation records one administered item and its outcome, stamped
// with the ability estimate as it stood when the response arrived
// (before the update it triggered). Immutable once appended.
type Observation struct {
	// ItemID identifies the administered item.
	ItemID string `json:"item_id"`

	// Correct is the scored response.
	Correct bool `json:"correct"`

	// LatencyMs is the response time in milliseconds. Informational
	// only; it plays no part in the ability update.
	LatencyMs int `json:"latency_ms"`

	// Theta and SE are the estimate at observation time, kept for
	// charting and audit.
	Theta float64 `json:"theta"`
	SE    float64 `json:"se"`

	// At is when the response was recorded.
	At time.Time `json:"at"`
}
