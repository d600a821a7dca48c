package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lexiq/lexiq/internal/engine"
	"github.com/lexiq/lexiq/internal/router"
	"github.com/lexiq/lexiq/internal/screen"
	"github.com/lexiq/lexiq/internal/screens/assess"
	"github.com/lexiq/lexiq/internal/screens/history"
	"github.com/lexiq/lexiq/internal/screens/placeholder"
	"github.com/lexiq/lexiq/internal/store"
	"github.com/lexiq/lexiq/internal/ui/components"
	"github.com/lexiq/lexiq/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu          components.Menu
	menuLabels    []string
	sessionsTaken int
	lastLevel     string
	lastTheta     float64
	hasResult     bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(eng *engine.Engine, eventRepo store.EventRepo) *HomeScreen {
	var sessionsTaken int
	var lastLevel string
	var lastTheta float64
	var hasResult bool

	if eventRepo != nil {
		if recent, err := eventRepo.RecentSessions(context.Background(), 50); err == nil {
			for _, s := range recent {
				if s.Action != "completed" {
					continue
				}
				sessionsTaken++
				if !hasResult {
					lastLevel = s.Level
					lastTheta = s.Theta
					hasResult = true
				}
			}
		}
	}

	menuLabels := []string{"START PLACEMENT", "HISTORY", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			if eng == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Placement")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: assess.New(eng)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			if eventRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("History")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:          components.NewMenu(items),
		menuLabels:    menuLabels,
		sessionsTaken: sessionsTaken,
		lastLevel:     lastLevel,
		lastTheta:     lastTheta,
		hasResult:     hasResult,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderBanner(cw, compact))
	if !compact {
		sections = append(sections, renderTagline(cw))
	}
	sections = append(sections, h.renderStatsBar(cw, compact))
	sections = append(sections, h.renderMenu(cw))

	content := strings.Join(sections, "\n\n")

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderStatsBar renders placement stats in a bordered box at content width.
func (h *HomeScreen) renderStatsBar(cw int, compact bool) string {
	countStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	levelStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	switch {
	case !h.hasResult:
		stats = dimStyle.Render("No placements yet")
	case compact:
		stats = fmt.Sprintf("%s %s",
			countStyle.Render(fmt.Sprintf("#%d", h.sessionsTaken)),
			levelStyle.Render(strings.ToUpper(h.lastLevel)),
		)
	default:
		stats = fmt.Sprintf("%s  %s",
			countStyle.Render(fmt.Sprintf("★ %d PLACEMENTS", h.sessionsTaken)),
			levelStyle.Render(fmt.Sprintf("◆ LAST: %s (θ %+.2f)", strings.ToUpper(h.lastLevel), h.lastTheta)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMenu renders the menu as stacked buttons at content width.
func (h *HomeScreen) renderMenu(cw int) string {
	var b strings.Builder
	for i, label := range h.menuLabels {
		b.WriteString(components.ArcadeButton(label, i == h.menu.Selected, cw-4))
		if i < len(h.menuLabels)-1 {
			b.WriteString("\n")
		}
	}
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, b.String())
}
