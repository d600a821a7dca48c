package assess

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/lexiq/lexiq/internal/assessment"
	"github.com/lexiq/lexiq/internal/engine"
	"github.com/lexiq/lexiq/internal/itembank"
	"github.com/lexiq/lexiq/internal/router"
	"github.com/lexiq/lexiq/internal/screen"
	"github.com/lexiq/lexiq/internal/screens/summary"
	"github.com/lexiq/lexiq/internal/ui/components"
	"github.com/lexiq/lexiq/internal/ui/layout"
)

// AssessScreen runs one adaptive placement session.
type AssessScreen struct {
	eng       *engine.Engine
	sessionID string

	item      *itembank.Item
	choice    components.MultiChoice
	typed     components.AnswerInput
	usesTyped bool
	itemStart time.Time
	answered  int

	latest *assessment.Transition

	showingFeedback    bool
	lastCorrect        bool
	showingQuitConfirm bool
	errMsg             string
}

var _ screen.Screen = (*AssessScreen)(nil)
var _ screen.KeyHintProvider = (*AssessScreen)(nil)

// New creates a new AssessScreen backed by the given engine.
func New(eng *engine.Engine) *AssessScreen {
	return &AssessScreen{eng: eng}
}

func (s *AssessScreen) Init() tea.Cmd {
	return func() tea.Msg {
		tr, err := s.eng.Start(context.Background())
		return startedMsg{Transition: tr, Err: err}
	}
}

func (s *AssessScreen) Title() string {
	return "Placement"
}

func (s *AssessScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End placement"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	if s.usesTyped {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓/1-4", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *AssessScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return s.handleStarted(msg)

	case scoredMsg:
		return s.handleScored(msg)

	case abortedMsg:
		return s.handleAborted(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *AssessScreen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.sessionID = msg.Transition.SessionID
	s.latest = msg.Transition

	// An empty pool completes the session before any item is served.
	if msg.Transition.Status == assessment.StatusCompleted {
		return s, s.pushSummary(msg.Transition)
	}

	return s, s.presentItem(msg.Transition.NextItem)
}

func (s *AssessScreen) handleScored(msg scoredMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.latest = msg.Transition
	s.answered++
	s.lastCorrect = msg.Correct
	s.showingFeedback = true
	return s, nil
}

func (s *AssessScreen) handleAborted(msg abortedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	return s, s.pushSummary(msg.Transition)
}

func (s *AssessScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false

	tr := s.latest
	if tr == nil {
		return s, nil
	}
	if tr.Status == assessment.StatusCompleted {
		return s, s.pushSummary(tr)
	}
	return s, s.presentItem(tr.NextItem)
}

func (s *AssessScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, s.abortCmd()
		case "n", "N", "esc":
			s.showingQuitConfirm = false
			return s, nil
		}
		return s, nil
	}

	if s.showingFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	if s.item == nil {
		return s, nil
	}

	if s.usesTyped {
		switch key {
		case "esc":
			s.showingQuitConfirm = true
			return s, nil
		case "enter":
			if s.typed.Value() == "" {
				return s, nil
			}
			return s.submitTyped()
		}
		var cmd tea.Cmd
		s.typed, cmd = s.typed.Update(msg)
		return s, cmd
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(s.choice.Options) {
			s.choice.Selected = idx
			return s.submitAnswer()
		}
		return s, nil
	case "enter":
		return s.submitAnswer()
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

// presentItem swaps in the next item and resets the answer state.
// Cloze items take a typed answer; everything else picks a choice.
func (s *AssessScreen) presentItem(item *itembank.Item) tea.Cmd {
	s.item = item
	if item == nil {
		return nil
	}

	s.usesTyped = item.Content.Type == itembank.TypeCloze && len(item.Content.Choices) > 0
	s.itemStart = time.Now()

	if s.usesTyped {
		s.typed = components.NewAnswerInput("missing word", 32)
		return s.typed.Init()
	}
	s.choice = components.NewMultiChoice(item.Content.Prompt, item.Content.Choices, item.Content.AnswerIndex)
	return nil
}

// submitAnswer scores the selected choice through the engine.
func (s *AssessScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	if s.item == nil {
		return s, nil
	}

	s.choice.Submitted = true
	s.choice.ChosenIndex = s.choice.Selected
	return s.submitResult(s.choice.IsCorrect())
}

// submitTyped scores the typed answer against the keyed choice.
func (s *AssessScreen) submitTyped() (screen.Screen, tea.Cmd) {
	if s.item == nil {
		return s, nil
	}

	keyed := s.item.Content.Choices[s.item.Content.AnswerIndex]
	return s.submitResult(s.typed.Submit(keyed))
}

func (s *AssessScreen) submitResult(correct bool) (screen.Screen, tea.Cmd) {
	latencyMs := int(time.Since(s.itemStart).Milliseconds())

	sessionID := s.sessionID
	itemID := s.item.ID
	eng := s.eng
	return s, func() tea.Msg {
		tr, err := eng.Submit(context.Background(), sessionID, itemID, correct, latencyMs)
		return scoredMsg{Transition: tr, Correct: correct, Err: err}
	}
}

func (s *AssessScreen) abortCmd() tea.Cmd {
	sessionID := s.sessionID
	eng := s.eng
	return func() tea.Msg {
		tr, err := eng.Abort(context.Background(), sessionID)
		return abortedMsg{Transition: tr, Err: err}
	}
}

func (s *AssessScreen) pushSummary(tr *assessment.Transition) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: summary.New(tr.Report),
		}
	}
}
