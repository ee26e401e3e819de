package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fretwise/internal/quiz"
	"github.com/abhisek/fretwise/internal/router"
	"github.com/abhisek/fretwise/internal/screen"
	"github.com/abhisek/fretwise/internal/ui/layout"
	"github.com/abhisek/fretwise/internal/ui/theme"
)

// SummaryScreen displays the result of a finished or abandoned quiz.
type SummaryScreen struct {
	summary *quiz.Summary
	restart func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. restart, when set, builds a fresh quiz
// in the same mode.
func New(summary *quiz.Summary, restart func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, restart: restart}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Back to quizzes"}}
	if s.restart != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Play again"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, router.PopCmd()
		case "r", "R":
			if s.restart != nil {
				next := s.restart()
				return s, router.ReplaceCmd(next)
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(sum.Headline()))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(layout.Line(fmt.Sprintf("%s · %d:%02d", sum.Mode.DisplayName(), mins, secs), theme.TextDim, width))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Answered: %d/%d        Correct: %d        Accuracy: %.0f%%",
		sum.Answered, sum.Total, sum.Correct, sum.Accuracy*100)
	b.WriteString(layout.Line(statsLine, theme.Text, width))
	b.WriteString("\n\n")

	if len(sum.Results) == 0 {
		return b.String()
	}

	b.WriteString(layout.Line("Answers", theme.TextDim, width))
	b.WriteString("\n")
	b.WriteString(layout.Divider(width))
	b.WriteString("\n\n")

	// Only as many rows as fit below the header block.
	rows := max(height-12, 1)
	for i, r := range sum.Results {
		if i >= rows {
			b.WriteString(layout.Line(fmt.Sprintf("… %d more", len(sum.Results)-rows), theme.TextDim, width))
			break
		}
		b.WriteString(layout.Centered(resultLine(r), width))
		b.WriteString("\n")
	}
	return b.String()
}

func resultLine(r quiz.Result) string {
	mark, c := "✓", color.Color(theme.Success)
	detail := r.Expected
	if !r.Correct {
		mark, c = "✗", theme.Error
		given := r.Given
		if given == "" {
			given = "—"
		}
		detail = fmt.Sprintf("%s (you: %s)", r.Expected, given)
	}
	prompt := r.Prompt
	if len(prompt) > 40 {
		prompt = prompt[:39] + "…"
	}
	return lipgloss.NewStyle().Foreground(c).Render(fmt.Sprintf("%s %2d. ", mark, r.Index)) +
		lipgloss.NewStyle().Foreground(theme.Text).Render(prompt) + "  " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)
}
