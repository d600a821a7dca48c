package assess

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/lexiq/lexiq/internal/ui/components"
	"github.com/lexiq/lexiq/internal/ui/theme"
)

func (s *AssessScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.item == nil && s.latest == nil {
		return renderLoading(width)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}
	return s.renderItemView(width)
}

// renderItemView renders the current item with the progress header.
func (s *AssessScreen) renderItemView(width int) string {
	if s.item == nil {
		return renderLoading(width)
	}

	var b strings.Builder

	maxItems := s.eng.Policy().MaxItems
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of up to %d", s.answered+1, maxItems))

	var infoRight string
	if s.latest != nil {
		infoRight = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("θ %+.2f  ±%.2f", s.latest.Estimate.Theta, s.latest.Estimate.SE))
	}

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")

	// Progress toward the item budget.
	bar := components.NewProgressBar("", float64(s.answered)/float64(maxItems), false, min(width-8, 60))
	b.WriteString("  " + bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.answerView()))
	b.WriteString("\n")
	hint := "Select (1-4) or use arrows + Enter"
	if s.usesTyped {
		hint = "Type the missing word and press Enter"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(hint))

	return b.String()
}

// answerView renders the question body for the active answer mode.
func (s *AssessScreen) answerView() string {
	if !s.usesTyped {
		return s.choice.View()
	}
	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(s.item.Content.Prompt)
	return prompt + "\n\n" + s.typed.View()
}

// renderFeedback renders the correct/incorrect overlay with the keyed answer.
func (s *AssessScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if s.lastCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
	}
	b.WriteString("\n\n")

	// The submitted answer view highlights the keyed answer.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.answerView()))
	b.WriteString("\n\n")

	if s.latest != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Ability estimate: θ %+.2f  ±%.2f", s.latest.Estimate.Theta, s.latest.Estimate.SE)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End placement early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your estimate so far will be kept."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end placement"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing your placement...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
