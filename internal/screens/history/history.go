package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lexiq/lexiq/internal/router"
	"github.com/lexiq/lexiq/internal/screen"
	"github.com/lexiq/lexiq/internal/store"
	"github.com/lexiq/lexiq/internal/ui/layout"
	"github.com/lexiq/lexiq/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []store.SessionSummary
	Err      error
}

type responsesLoadedMsg struct {
	SessionID string
	Records   []store.ResponseRecord
}

// HistoryScreen displays past placement sessions.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionSummary
	responses map[string][]store.ResponseRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.eventRepo.RecentSessions(context.Background(), 50)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Sessions: sessions}
	}
}

// loadResponses fetches one session's detail rows on first expand.
func (s *HistoryScreen) loadResponses(sessionID string) tea.Cmd {
	return func() tea.Msg {
		rr, err := s.eventRepo.SessionResponses(context.Background(), sessionID)
		if err != nil {
			rr = nil
		}
		return responsesLoadedMsg{SessionID: sessionID, Records: rr}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.responses = make(map[string][]store.ResponseRecord)
		}
		s.loaded = true
		return s, nil

	case responsesLoadedMsg:
		s.responses[msg.SessionID] = msg.Records
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected >= len(s.sessions) {
				return s, nil
			}
			s.expanded[s.selected] = !s.expanded[s.selected]
			if !s.expanded[s.selected] {
				return s, nil
			}
			id := s.sessions[s.selected].SessionID
			if _, ok := s.responses[id]; ok {
				return s, nil
			}
			return s, s.loadResponses(id)
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No placements yet. Take your first one!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		dateStr := sess.Timestamp.Format("Jan 02, 2006")
		mins := sess.DurationSecs / 60
		secs := sess.DurationSecs % 60
		durationStr := fmt.Sprintf("%d:%02d", mins, secs)

		levelStr := strings.ToUpper(sess.Level)
		if sess.Action == "aborted" {
			levelStr = "ABORTED"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d questions  θ %+.2f  %s",
			prefix, dateStr, durationStr, sess.ItemsServed, sess.Theta, levelStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		if sess.Action == "aborted" {
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			rr, fetched := s.responses[sess.SessionID]
			if !fetched {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
						Render("    Loading...")))
				b.WriteString("\n")
			} else if len(rr) == 0 {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
						Render("    No responses recorded")))
				b.WriteString("\n")
			}
			for j, r := range rr {
				mark := lipgloss.NewStyle().Foreground(theme.Success).Render("+")
				if !r.Correct {
					mark = lipgloss.NewStyle().Foreground(theme.Error).Render("-")
				}
				detail := fmt.Sprintf("    %2d. %s %s  b %+.1f  θ %+.2f ±%.2f",
					j+1, mark, r.ItemID, r.Difficulty, r.ThetaAfter, r.SEAfter)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
