package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hoot/internal/ui/theme"
)

const bannerArt = `╺┳┓┏━╸┏━╸╻┏┳┓┏━┓╻     ╺┳┓┏━╸╺┳╸┏━╸┏━╸╺┳╸╻╻ ╻┏━╸
 ┃┃┣╸ ┃  ┃┃┃┃┣━┫┃      ┃┃┣╸  ┃ ┣╸ ┃   ┃ ┃┃┏┛┣╸
╺┻┛┗━╸┗━╸╹╹ ╹╹ ╹┗━╸   ╺┻┛┗━╸ ╹ ┗━╸┗━╸ ╹ ╹┗┛ ┗━╸`

const bannerCompact = "D E C I M A L   D E T E C T I V E"

// RenderBanner returns the title banner in the primary color, or a single
// spaced-out line when the terminal is narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < lipgloss.Width(bannerArt)+4 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
