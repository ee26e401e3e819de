package home

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/fretwise/internal/audio"
	"github.com/abhisek/fretwise/internal/ui/layout"
	"github.com/abhisek/fretwise/internal/ui/theme"
)

// Block-letter title.
const arcadeTitleFull = ` ███████╗██████╗ ███████╗████████╗██╗    ██╗██╗███████╗███████╗
 ██╔════╝██╔══██╗██╔════╝╚══██╔══╝██║    ██║██║██╔════╝██╔════╝
 █████╗  ██████╔╝█████╗     ██║   ██║ █╗ ██║██║███████╗█████╗
 ██╔══╝  ██╔══██╗██╔══╝     ██║   ██║███╗██║██║╚════██║██╔══╝
 ██║     ██║  ██║███████╗   ██║   ╚███╔███╔╝██║███████║███████╗
 ╚═╝     ╚═╝  ╚═╝╚══════╝   ╚═╝    ╚══╝╚══╝ ╚═╝╚══════╝╚══════╝`

const arcadeTitleCompact = "F · R · E · T · W · I · S · E"

// renderTitle centers the block title in w columns, falling back to the
// spaced-out name when the art would be cut off.
func renderTitle(w int, compact bool) string {
	title := padBlock(strings.Split(arcadeTitleFull, "\n"))
	if compact || lipgloss.Width(title) > w {
		title = arcadeTitleCompact
	}
	return layout.Centered(theme.Banner.Render(title), w)
}

// chip is one labelled value on the setup bar.
type chip struct {
	icon, full, short string
	fg                color.Color
}

// renderStatsBar shows the instrument setup: tuning, tempo and waveform.
func renderStatsBar(tuning []string, bpm int, wave audio.Waveform, cw int, compact bool) string {
	// Low string first, the way tunings are usually spoken.
	low := slices.Clone(tuning)
	slices.Reverse(low)

	chips := []chip{
		{"♪", strings.Join(low, " "), strings.Join(low, ""), theme.ArcadeYellow},
		{"♩", fmt.Sprintf("%d BPM", bpm), fmt.Sprint(bpm), theme.Accent},
		{"∿", strings.ToUpper(string(wave)), string(wave), theme.ArcadeCyan},
	}
	parts := make([]string, len(chips))
	sep := "  "
	for i, c := range chips {
		text := c.icon + " " + c.full
		if compact {
			text = c.icon + c.short
		}
		parts[i] = lipgloss.NewStyle().Foreground(c.fg).Bold(true).Render(text)
	}
	if compact {
		sep = " "
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2).
		Align(lipgloss.Center).
		Render(strings.Join(parts, sep))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22
