// Package layout draws the frame around every screen: a header with the
// solved count, the screen body, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hoot/internal/ui/theme"
)

// Terminal size limits. Below the minimum only a resize notice is shown;
// below the compact thresholds screens drop decoration.
const (
	MinWidth  = 60
	MinHeight = 20

	CompactWidthThreshold  = 90
	CompactHeightThreshold = 30
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsCompactWidth(width int) bool   { return width < CompactWidthThreshold }
func IsCompactHeight(height int) bool { return height < CompactHeightThreshold }
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks for a bigger terminal.
func RenderMinSizeMessage(width, height int) string {
	body := fmt.Sprintf("Professor Hoot needs more room!\n\nResize to at least %d × %d\n(now %d × %d)",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(body))
}

var barStyle = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border).
	Padding(0, 1)

// RenderHeader shows the product name on the left, title centred and the
// solved count on the right. The title is dropped when the three collide.
func RenderHeader(title string, score int, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Decimal Detective")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Gold).Render(fmt.Sprintf("★ %d solved", score))

	inner := max(width-barStyle.GetHorizontalFrameSize(), 0)
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	var line string
	if lw+cw+rw+2 > inner {
		line = left + gap(inner-lw-rw) + right
	} else {
		leftGap := max((inner-cw)/2-lw, 1)
		line = left + gap(leftGap) + center + gap(inner-lw-leftGap-cw-rw) + right
	}
	return barStyle.Width(width).Render(line)
}

// RenderFooter lays hints out left to right, wrapping onto extra lines
// when they do not fit.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	inner := max(width-barStyle.GetHorizontalFrameSize(), 1)
	var lines []string
	var cur string
	for _, h := range hints {
		part := keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
		switch {
		case cur == "":
			cur = part
		case lipgloss.Width(cur)+3+lipgloss.Width(part) > inner:
			lines = append(lines, cur)
			cur = part
		default:
			cur += "   " + part
		}
	}
	lines = append(lines, cur)
	return barStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// RenderFrame stacks header, content and footer, giving the content all
// the height the bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(bodyHeight).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func gap(n int) string {
	return strings.Repeat(" ", max(n, 1))
}
