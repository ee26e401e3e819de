// Package layout draws the chrome around every screen: the header with the
// breadcrumb and status, the footer with key hints, and a few helpers for
// centering content.
package layout

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/fretwise/internal/ui/theme"
)

const (
	// MinWidth fits a twelve-fret neck with string labels.
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

const crumbSep = " › "

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsCompactWidth(width int) bool   { return width < CompactWidthThreshold }
func IsCompactHeight(height int) bool { return height < CompactHeightThreshold }

// IsTooSmall reports whether the terminal cannot hold a fretboard.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight is what remains for a screen under the header and footer.
func ContentHeight(totalHeight int) int {
	return max(totalHeight-HeaderHeight-FooterHeight, 0)
}

// Centered places a block in the middle of width columns.
func Centered(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// Line is a single centered line of text in fg.
func Line(text string, fg color.Color, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(fg).Render(text)
}

// Divider is a thin rule, at most 60 columns.
func Divider(width int) string {
	n := max(min(width-8, 60), 0)
	return Centered(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", n)), width)
}

// RenderMinSizeMessage asks for a bigger terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("The neck doesn't fit.\n\nfretwise needs at least %d × %d\n(now %d × %d)",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(msg))
}

// Breadcrumb joins the screen trail, dropping the oldest entries until it
// fits in width.
func Breadcrumb(trail []string, width int) string {
	for len(trail) > 1 && lipgloss.Width(strings.Join(trail, crumbSep)) > width {
		trail = trail[1:]
	}
	return strings.Join(trail, crumbSep)
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// RenderHeader draws the brand on the left, the breadcrumb in the middle and
// the active screen's status on the right.
func RenderHeader(trail []string, status string, width int) string {
	inner := max(width-4, 0)
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ♪ fretwise")
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	room := max(inner-lipgloss.Width(brand)-lipgloss.Width(right)-4, 1)
	crumbs := trail
	if len(crumbs) > 1 {
		// Home is implied once a tool is open.
		crumbs = crumbs[1:]
	}
	mid := lipgloss.NewStyle().Foreground(theme.Text).Render(Breadcrumb(crumbs, room))

	gapL := max((inner-lipgloss.Width(mid))/2-lipgloss.Width(brand), 1)
	gapR := max(inner-lipgloss.Width(brand)-gapL-lipgloss.Width(mid)-lipgloss.Width(right), 1)

	return bar.Width(width).Render(brand + strings.Repeat(" ", gapL) + mid + strings.Repeat(" ", gapR) + right)
}

// RenderFooter lays out key hints, leaving off trailing hints that would
// overflow the bar.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	content := " "
	for _, h := range hints {
		part := "  " + keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
		if lipgloss.Width(content+part) > width-4 {
			break
		}
		content += part
	}
	return bar.Width(width).Render(content)
}

// RenderFrame stacks header, content and footer into exactly height rows.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(body).MaxHeight(body).Render(content),
		footer,
	)
}
