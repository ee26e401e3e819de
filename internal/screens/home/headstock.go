package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/fretwise/internal/ui/theme"
)

// headstockRows pairs the pegs of a three-a-side headstock, top row first.
// Indexes are into a high-to-low tuning: the bass side carries strings 4-6
// and the treble side strings 3-1, with the lowest strings nearest the nut.
var headstockRows = [3][2]int{{3, 2}, {4, 1}, {5, 0}}

// renderHeadstock draws the tuning pegs of a six-string guitar. Other
// string counts get a single line instead.
func renderHeadstock(tuning []string, cw int) string {
	pegs := lipgloss.NewStyle().Foreground(theme.ArcadeYellow)
	wood := lipgloss.NewStyle().Foreground(theme.Primary)

	var art string
	if len(tuning) == 6 {
		lines := []string{wood.Render("   ╭───────╮")}
		for _, r := range headstockRows {
			lines = append(lines,
				pegs.Render(fmt.Sprintf("%2s", tuning[r[0]]))+
					wood.Render("─┤ ○   ○ ├─")+
					pegs.Render(fmt.Sprintf("%-2s", tuning[r[1]])))
		}
		lines = append(lines,
			wood.Render("   ╰─┬┬┬┬┬┬╯"),
			wood.Render("     ││││││"))
		art = padBlock(lines)
	} else {
		art = pegs.Render(fmt.Sprintf("%d strings: %s", len(tuning), strings.Join(tuning, " ")))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(art)
}

// padBlock right-pads every line to the widest one so centering keeps the
// drawing intact.
func padBlock(lines []string) string {
	w := 0
	for _, l := range lines {
		w = max(w, lipgloss.Width(l))
	}
	for i, l := range lines {
		lines[i] = l + strings.Repeat(" ", w-lipgloss.Width(l))
	}
	return strings.Join(lines, "\n")
}
