package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/fretwise/internal/quiz"
	"github.com/abhisek/fretwise/internal/ui/components"
	"github.com/abhisek/fretwise/internal/ui/layout"
	"github.com/abhisek/fretwise/internal/ui/theme"
)

func progressText(st qz.Session) string {
	return fmt.Sprintf("Q %d/%d  ✓ %d", st.Index, st.Total, st.Score)
}

// renderQuestionView renders the live question and its answer widget.
func (s *QuizScreen) renderQuestionView(width int) string {
	q := s.state.Current
	if q == nil {
		return renderLoading(width)
	}

	var b strings.Builder
	b.WriteString(s.renderProgress(width))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	if s.isChoice() {
		b.WriteString(layout.Centered(s.choices.View(), width))
		b.WriteString("\n")
		b.WriteString(layout.Line("Select (1-4) or use arrows + Enter", theme.TextDim, width))
	} else {
		b.WriteString(layout.Centered("Answer: "+s.input.View(), width))
		b.WriteString("\n\n")
		b.WriteString(layout.Line("Separate notes with spaces or commas", theme.TextDim, width))
	}
	return b.String()
}

func (s *QuizScreen) renderProgress(width int) string {
	results := make([]bool, len(s.state.Results))
	for i, r := range s.state.Results {
		results[i] = r.Correct
	}
	track := components.NewQuestionTrack(progressText(s.state), s.state.Total, results, s.state.Index)
	return layout.Centered(track.View(components.ContentWidth(width)), width)
}

// renderFeedback shows the verdict until the delay ends or a key is hit.
func (s *QuizScreen) renderFeedback(width int) string {
	st := s.state
	var b strings.Builder
	b.WriteString(s.renderProgress(width))
	b.WriteString("\n\n")

	if q := st.Current; q != nil {
		b.WriteString(layout.Line(q.Prompt, theme.Text, width))
		b.WriteString("\n\n")
		if s.isChoice() {
			b.WriteString(layout.Centered(s.choices.View(), width))
			b.WriteString("\n")
		}
	}

	if st.Last != nil && st.Last.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		if st.Last != nil {
			b.WriteString("\n")
			b.WriteString(layout.Line(fmt.Sprintf("Correct answer: %s", st.Last.Expected), theme.TextDim, width))
		}
	}

	if q := st.Current; q != nil && q.Hint != "" {
		b.WriteString("\n\n")
		b.WriteString(layout.Line(q.Hint, theme.Secondary, width))
	}
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End quiz early?"))
	b.WriteString("\n")
	b.WriteString(layout.Line("You will see a summary of the answers so far.", theme.TextDim, width))
	b.WriteString("\n\n")
	b.WriteString(layout.Line("[Y] Yes, end quiz", theme.Success, width))
	b.WriteString("\n")
	b.WriteString(layout.Line("[N] No, keep going", theme.Primary, width))
	return b.String()
}

func renderLoading(width int) string {
	return layout.Line("\n\n\n  Tuning up...", theme.TextDim, width)
}

func renderError(width int, errMsg string) string {
	return layout.Line(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg), theme.Error, width)
}
