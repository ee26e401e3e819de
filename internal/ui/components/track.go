package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/fretwise/internal/ui/theme"
)

// Mark is the state of one slot on a QuestionTrack.
type Mark int

const (
	MarkPending Mark = iota
	MarkCurrent
	MarkCorrect
	MarkWrong
)

var markGlyphs = map[Mark]struct {
	glyph string
	style lipgloss.Style
}{
	MarkPending: {"○", lipgloss.NewStyle().Foreground(theme.Border)},
	MarkCurrent: {"◉", lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)},
	MarkCorrect: {"●", lipgloss.NewStyle().Foreground(theme.Success)},
	MarkWrong:   {"✗", lipgloss.NewStyle().Foreground(theme.Error).Bold(true)},
}

// QuestionTrack shows a quiz run as one mark per question, like position
// dots along a neck.
type QuestionTrack struct {
	Label string
	Marks []Mark
}

// NewQuestionTrack builds a track of total slots. results holds the
// correctness of the answered questions in order; current is the 1-based
// question on screen, or 0.
func NewQuestionTrack(label string, total int, results []bool, current int) QuestionTrack {
	marks := make([]Mark, total)
	for i := range marks {
		switch {
		case i < len(results) && results[i]:
			marks[i] = MarkCorrect
		case i < len(results):
			marks[i] = MarkWrong
		case i == current-1:
			marks[i] = MarkCurrent
		}
	}
	return QuestionTrack{Label: label, Marks: marks}
}

// View renders the label and the marks. Marks are dropped from the front
// when the track is wider than width.
func (t QuestionTrack) View(width int) string {
	label := ""
	if t.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(t.Label) + "  "
	}
	marks := t.Marks
	if room := (width - lipgloss.Width(label) + 1) / 2; room > 0 && len(marks) > room {
		marks = marks[len(marks)-room:]
	}
	parts := make([]string, len(marks))
	for i, m := range marks {
		g := markGlyphs[m]
		parts[i] = g.style.Render(g.glyph)
	}
	return label + strings.Join(parts, " ")
}
