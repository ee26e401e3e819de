// Package quiz holds the quiz screens: the mode picker and the running
// session with its delayed feedback.
package quiz

import (
	"errors"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/fretwise/internal/quiz"
	"github.com/abhisek/fretwise/internal/router"
	"github.com/abhisek/fretwise/internal/screen"
	"github.com/abhisek/fretwise/internal/screens/summary"
	"github.com/abhisek/fretwise/internal/ui/components"
	"github.com/abhisek/fretwise/internal/ui/layout"
)

// QuizScreen runs one quiz session.
type QuizScreen struct {
	engine  *qz.Engine
	mode    qz.Mode
	state   qz.Session
	input   components.TextInput
	choices components.MultiChoice
	logger  *slog.Logger

	showingQuitConfirm bool
	errMsg             string
}

var (
	_ screen.Screen          = (*QuizScreen)(nil)
	_ screen.KeyHintProvider = (*QuizScreen)(nil)
	_ screen.StatusProvider  = (*QuizScreen)(nil)
	_ screen.EscapeHandler   = (*QuizScreen)(nil)
)

// New creates a quiz screen for mode. prev carries the generation of the
// last run so restarted quizzes never reuse one.
func New(engine *qz.Engine, mode qz.Mode, prev qz.Session, logger *slog.Logger) *QuizScreen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &QuizScreen{
		engine: engine,
		mode:   mode,
		state:  prev,
		logger: logger,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.start()
}

func (s *QuizScreen) start() tea.Cmd {
	next, err := s.engine.Start(s.state, s.mode)
	if err != nil {
		s.logger.Error("quiz start failed", "mode", s.mode, "error", err)
		s.errMsg = err.Error()
		return nil
	}
	s.state = next
	s.showingQuitConfirm = false
	return s.prepareQuestion()
}

// prepareQuestion resets the answer widgets for the live question.
func (s *QuizScreen) prepareQuestion() tea.Cmd {
	q := s.state.Current
	if q == nil {
		return nil
	}
	if q.Format == qz.FormatMultipleChoice {
		s.choices = components.NewMultiChoice(q.Choices)
		return nil
	}
	placeholder := "e.g. C E G"
	if q.Mode == qz.ModeKeyToKeySig {
		placeholder = "e.g. F# C#  (or \"none\")"
	}
	s.input = components.NewTextInput(placeholder, true, 40)
	return s.input.Init()
}

func (s *QuizScreen) Title() string {
	return s.mode.DisplayName()
}

// Status shows progress in the header.
func (s *QuizScreen) Status() string {
	if s.state.Phase == qz.PhaseIdle {
		return ""
	}
	return progressText(s.state)
}

// HandlesEscape keeps Esc for the quit confirmation.
func (s *QuizScreen) HandlesEscape() bool {
	return s.errMsg == ""
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.state.Phase {
	case qz.PhaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case qz.PhaseInProgress:
		if s.state.Current != nil && s.state.Current.Format == qz.FormatMultipleChoice {
			return []layout.KeyHint{
				{Key: "1-4", Description: "Answer"},
				{Key: "↑↓", Description: "Move"},
				{Key: "Ctrl+R", Description: "Restart"},
				{Key: "Esc", Description: "Quit"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+R", Description: "Restart"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	switch s.state.Phase {
	case qz.PhaseFeedback:
		return s.renderFeedback(width)
	case qz.PhaseInProgress:
		return s.renderQuestionView(width)
	}
	return renderLoading(width)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		if msg.SessionID != s.state.ID {
			return s, nil
		}
		return s.advance(msg.Token)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.state.Phase == qz.PhaseInProgress && !s.showingQuitConfirm && !s.isChoice() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) isChoice() bool {
	return s.state.Current != nil && s.state.Current.Format == qz.FormatMultipleChoice
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, router.PopCmd()
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, s.finish()
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "ctrl+r":
		return s, s.start()
	}

	switch s.state.Phase {
	case qz.PhaseFeedback:
		// Any key skips the rest of the delay.
		return s.advance(s.state.Token())

	case qz.PhaseInProgress:
		if s.isChoice() {
			var picked bool
			s.choices, picked = s.choices.Update(msg)
			if picked {
				return s.submit(s.choices.Chosen())
			}
			return s, nil
		}
		if key == "enter" {
			if s.input.Value() == "" {
				return s, nil
			}
			return s.submit(s.input.Value())
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// submit grades the answer and schedules the advance.
func (s *QuizScreen) submit(answer string) (screen.Screen, tea.Cmd) {
	next, verdict, err := s.engine.Answer(s.state, answer)
	if err != nil {
		if errors.Is(err, qz.ErrNoActiveQuestion) {
			return s, nil
		}
		s.errMsg = err.Error()
		return s, nil
	}
	s.state = next

	if s.isChoice() {
		s.choices.Reveal(s.state.Current.CorrectChoice())
	} else {
		s.input.Submit(verdict.Correct)
	}

	return s, advanceAfter(s.engine.Config().FeedbackDelay, s.state.ID, s.state.Token())
}

func (s *QuizScreen) advance(tok qz.AdvanceToken) (screen.Screen, tea.Cmd) {
	next, err := s.engine.Advance(s.state, tok)
	if err != nil {
		s.logger.Error("quiz advance failed", "session_id", s.state.ID, "error", err)
		s.errMsg = err.Error()
		return s, nil
	}
	if next.Index == s.state.Index && next.Phase == s.state.Phase {
		// Stale token.
		return s, nil
	}
	s.state = next
	if s.state.Phase == qz.PhaseFinished {
		return s, s.finish()
	}
	return s, s.prepareQuestion()
}

// finish swaps this screen for the summary.
func (s *QuizScreen) finish() tea.Cmd {
	sum := qz.BuildSummary(s.state)
	last := s.state
	restart := func() screen.Screen {
		return New(s.engine, s.mode, last, s.logger)
	}
	return router.ReplaceCmd(summary.New(sum, restart))
}

func advanceAfter(d time.Duration, sessionID string, tok qz.AdvanceToken) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return advanceMsg{SessionID: sessionID, Token: tok}
	})
}

// Session exposes the current state for tests and the CLI.
func (s *QuizScreen) Session() qz.Session {
	return s.state
}
