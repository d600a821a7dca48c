package home

import (
	"charm.land/lipgloss/v2"

	"github.com/lexiq/lexiq/internal/ui/theme"
)

// Block-letter title shown on the home screen.
const bannerFull = ` ██╗     ███████╗██╗  ██╗██╗ ██████╗
 ██║     ██╔════╝╚██╗██╔╝██║██╔═══██╗
 ██║     █████╗   ╚███╔╝ ██║██║   ██║
 ██║     ██╔══╝   ██╔██╗ ██║██║▄▄ ██║
 ███████╗███████╗██╔╝ ██╗██║╚██████╔╝
 ╚══════╝╚══════╝╚═╝  ╚═╝╚═╝ ╚══▀▀═╝`

const bannerCompact = "L · E · X · I · Q"

// renderBanner returns the styled title block or compact fallback.
func renderBanner(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	art := bannerFull
	if compact {
		art = bannerCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderTagline renders the subtitle under the banner.
func renderTagline(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("adaptive language placement")
}
