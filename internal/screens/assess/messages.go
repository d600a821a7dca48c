package assess

import "github.com/lexiq/lexiq/internal/assessment"

// startedMsg is sent when the engine has created and started a session.
type startedMsg struct {
	Transition *assessment.Transition
	Err        error
}

// scoredMsg is sent when a submitted response has been scored.
type scoredMsg struct {
	Transition *assessment.Transition
	Correct    bool
	Err        error
}

// abortedMsg is sent when the session has been aborted.
type abortedMsg struct {
	Transition *assessment.Transition
	Err        error
}

// feedbackDoneMsg is sent when the feedback display is dismissed.
type feedbackDoneMsg struct{}
