package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lexiq/lexiq/internal/assessment"
	"github.com/lexiq/lexiq/internal/router"
	"github.com/lexiq/lexiq/internal/screen"
	"github.com/lexiq/lexiq/internal/ui/layout"
	"github.com/lexiq/lexiq/internal/ui/theme"
)

// SummaryScreen displays the placement result.
type SummaryScreen struct {
	report *assessment.Report
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(report *assessment.Report) *SummaryScreen {
	return &SummaryScreen{report: report}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Placement Result"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// Pop both the summary and the finished placement screen.
			pop := func() tea.Msg { return router.PopScreenMsg{} }
			return s, tea.Batch(pop, pop)
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.report
	if r == nil {
		return ""
	}

	var b strings.Builder

	title := "Placement complete!"
	if r.StopReason == assessment.StopAborted {
		title = "Placement ended early"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	// Level.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(strings.ToUpper(string(r.Level))))
	b.WriteString("\n\n")

	// Estimate with confidence interval.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Ability: θ %+.2f  (95%% CI %+.2f to %+.2f)",
			r.Final.Theta, r.ConfidenceLo, r.ConfidenceHi)))
	b.WriteString("\n\n")

	// Stats line.
	correct := 0
	for _, o := range r.Observations {
		if o.Correct {
			correct++
		}
	}
	mins := int(r.Duration.Minutes())
	secs := int(r.Duration.Seconds()) % 60
	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Time: %d:%02d",
		len(r.Observations), correct, mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(stopReasonText(r.StopReason)))
	b.WriteString("\n\n")

	// Estimate trajectory.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Progression")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for i, o := range r.Observations {
		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("+")
		if !o.Correct {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("-")
		}
		line := fmt.Sprintf("  %2d. %s  θ %+.2f  ±%.2f", i+1, mark, o.Theta, o.SE)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func stopReasonText(r assessment.StopReason) string {
	switch r {
	case assessment.StopMaxItems:
		return "Stopped at the question budget"
	case assessment.StopPrecision:
		return "Stopped once the estimate was precise enough"
	case assessment.StopExhausted:
		return "Stopped after running out of questions"
	case assessment.StopAborted:
		return "Ended by the test-taker"
	default:
		return ""
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
