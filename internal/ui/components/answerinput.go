package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lexiq/lexiq/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for typed answers. Used for
// cloze items where the test-taker fills the blank instead of picking
// from choices.
type AnswerInput struct {
	Model     textinput.Model
	submitted bool
	correct   bool
	keyed     string
}

// NewAnswerInput creates a focused input for one typed answer.
func NewAnswerInput(placeholder string, maxWidth int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input, with the verdict and keyed answer after
// submission.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if !a.submitted {
		return view
	}
	if a.correct {
		return view + " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}
	wrong := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	answer := lipgloss.NewStyle().Foreground(theme.Success).Render(a.keyed)
	return view + " " + wrong + "  " + answer
}

// Value returns the trimmed input value.
func (a AnswerInput) Value() string {
	return strings.TrimSpace(a.Model.Value())
}

// Submit scores the typed answer against the keyed one, ignoring case
// and surrounding whitespace, and freezes the input for display.
func (a *AnswerInput) Submit(keyed string) bool {
	a.submitted = true
	a.keyed = keyed
	a.correct = strings.EqualFold(a.Value(), strings.TrimSpace(keyed))
	a.Model.Blur()
	return a.correct
}
