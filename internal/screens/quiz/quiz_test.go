package quiz

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/fretwise/internal/quiz"
	"github.com/abhisek/fretwise/internal/router"
	"github.com/abhisek/fretwise/internal/screen"
)

// mockGenerator implements qz.Generator for testing.
type mockGenerator struct {
	question *qz.Question
	err      error
	calls    int
}

func (m *mockGenerator) Generate(mode qz.Mode) (*qz.Question, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	q := *m.question
	q.Mode = mode
	return &q, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func textQuestion() *qz.Question {
	return &qz.Question{
		Prompt: "What are the notes of C M?",
		Format: qz.FormatText,
		Answer: qz.Answer{Sequence: true, Notes: []string{"C", "E", "G"}},
		Hint:   "C M",
	}
}

func choiceQuestion() *qz.Question {
	return &qz.Question{
		Prompt:  "Which scale is C D E F G A B?",
		Format:  qz.FormatMultipleChoice,
		Answer:  qz.Answer{Text: "Major"},
		Choices: []string{"Dorian", "Major", "Lydian", "Locrian"},
	}
}

func testQuizScreen(q *qz.Question, mode qz.Mode, questions int) (*QuizScreen, *mockGenerator) {
	gen := &mockGenerator{question: q}
	cfg := qz.DefaultConfig()
	cfg.Questions = questions
	engine := qz.NewEngine(gen, cfg, nil)
	s := New(engine, mode, qz.Session{}, nil)
	s.Init()
	return s, gen
}

func TestQuizScreen_Init(t *testing.T) {
	s, gen := testQuizScreen(textQuestion(), qz.ModeChordInput, 10)
	if s.Session().Phase != qz.PhaseInProgress || s.Session().Index != 1 {
		t.Errorf("after Init phase=%s index=%d", s.Session().Phase, s.Session().Index)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
	if s.Title() != "Chord tones (type)" {
		t.Errorf("Title = %q", s.Title())
	}
	if s.Status() != "Q 1/10  ✓ 0" {
		t.Errorf("Status = %q", s.Status())
	}
}

func TestQuizScreen_InitError(t *testing.T) {
	gen := &mockGenerator{err: errors.New("boom")}
	s := New(qz.NewEngine(gen, qz.DefaultConfig(), nil), qz.ModeChordInput, qz.Session{}, nil)
	s.Init()
	if !strings.Contains(s.View(80, 24), "boom") {
		t.Error("expected error view")
	}
	if s.HandlesEscape() {
		t.Error("error view should let Esc pop")
	}
	_, cmd := s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected pop on any key")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestQuizScreen_TextAnswer(t *testing.T) {
	s, _ := testQuizScreen(textQuestion(), qz.ModeChordInput, 10)
	s.input.Model.SetValue("g, e c")

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)

	if qs.Session().Phase != qz.PhaseFeedback {
		t.Fatalf("phase = %s, want feedback", qs.Session().Phase)
	}
	if qs.Session().Score != 1 {
		t.Errorf("score = %d, want 1", qs.Session().Score)
	}
	if cmd == nil {
		t.Error("expected a delayed advance command")
	}
	if !strings.Contains(qs.View(80, 24), "Correct!") {
		t.Error("expected Correct! in feedback view")
	}
}

func TestQuizScreen_EmptyAnswerIgnored(t *testing.T) {
	s, _ := testQuizScreen(textQuestion(), qz.ModeChordInput, 10)
	s.Update(specialKey(tea.KeyEnter))
	if s.Session().Phase != qz.PhaseInProgress {
		t.Error("empty input should not be graded")
	}
}

func TestQuizScreen_WrongAnswerShowsExpected(t *testing.T) {
	s, _ := testQuizScreen(textQuestion(), qz.ModeChordInput, 10)
	s.input.Model.SetValue("C E")
	s.Update(specialKey(tea.KeyEnter))

	view := s.View(80, 24)
	if !strings.Contains(view, "Not quite") || !strings.Contains(view, "Correct answer: C E G") {
		t.Errorf("feedback view missing verdict:\n%s", view)
	}
}

func TestQuizScreen_MultipleChoice(t *testing.T) {
	s, _ := testQuizScreen(choiceQuestion(), qz.ModeScaleName, 10)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	qs := scr.(*QuizScreen)

	if qs.Session().Phase != qz.PhaseFeedback {
		t.Fatalf("phase = %s, want feedback", qs.Session().Phase)
	}
	if !qs.Session().Last.Correct {
		t.Error("expected choice 2 to be correct")
	}
	if qs.choices.CorrectIndex != 1 {
		t.Errorf("revealed index = %d, want 1", qs.choices.CorrectIndex)
	}
}

func TestQuizScreen_MultipleChoiceArrows(t *testing.T) {
	s, _ := testQuizScreen(choiceQuestion(), qz.ModeScaleName, 10)
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyUp))
	s.Update(specialKey(tea.KeyEnter))

	if s.Session().Last == nil || !s.Session().Last.Correct {
		t.Error("expected arrows + Enter to pick choice 2")
	}
}

func TestQuizScreen_AdvanceOnTick(t *testing.T) {
	s, _ := testQuizScreen(choiceQuestion(), qz.ModeScaleName, 10)
	s.Update(keyPress('1'))
	tok := s.Session().Token()

	s.Update(advanceMsg{SessionID: s.Session().ID, Token: tok})
	if s.Session().Index != 2 || s.Session().Phase != qz.PhaseInProgress {
		t.Fatalf("after advance index=%d phase=%s", s.Session().Index, s.Session().Phase)
	}

	// The same tick arriving again is stale.
	s.Update(advanceMsg{SessionID: s.Session().ID, Token: tok})
	if s.Session().Index != 2 {
		t.Errorf("stale token advanced to %d", s.Session().Index)
	}
}

func TestQuizScreen_AnyKeySkipsDelay(t *testing.T) {
	s, _ := testQuizScreen(choiceQuestion(), qz.ModeScaleName, 10)
	s.Update(keyPress('3'))
	old := s.Session().Token()

	s.Update(keyPress(' '))
	if s.Session().Index != 2 {
		t.Fatalf("index = %d, want 2", s.Session().Index)
	}

	// The pending tick for question 1 must not skip question 2.
	s.Update(advanceMsg{SessionID: s.Session().ID, Token: old})
	if s.Session().Index != 2 || s.Session().Phase != qz.PhaseInProgress {
		t.Errorf("stale tick changed state: index=%d phase=%s", s.Session().Index, s.Session().Phase)
	}
}

func TestQuizScreen_TickFromOtherSessionIgnored(t *testing.T) {
	s, _ := testQuizScreen(choiceQuestion(), qz.ModeScaleName, 10)
	s.Update(keyPress('2'))
	s.Update(advanceMsg{SessionID: "other", Token: s.Session().Token()})
	if s.Session().Phase != qz.PhaseFeedback {
		t.Error("tick from another session must be ignored")
	}
}

func TestQuizScreen_RestartBumpsGeneration(t *testing.T) {
	s, _ := testQuizScreen(choiceQuestion(), qz.ModeScaleName, 10)
	s.Update(keyPress('2'))
	before := s.Session()

	s.Update(tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	after := s.Session()
	if after.Generation != before.Generation+1 {
		t.Errorf("generation %d -> %d", before.Generation, after.Generation)
	}
	if after.Index != 1 || after.Score != 0 || after.Phase != qz.PhaseInProgress {
		t.Errorf("restart state: %+v", after)
	}

	s.Update(advanceMsg{SessionID: before.ID, Token: before.Token()})
	if s.Session().Phase != qz.PhaseInProgress || s.Session().Index != 1 {
		t.Error("tick from the abandoned run must be ignored")
	}
}

func TestQuizScreen_FinishReplacesWithSummary(t *testing.T) {
	s, _ := testQuizScreen(choiceQuestion(), qz.ModeScaleName, 2)

	s.Update(keyPress('2'))
	s.Update(keyPress(' '))
	s.Update(keyPress('1'))
	_, cmd := s.Update(keyPress(' '))

	if s.Session().Phase != qz.PhaseFinished {
		t.Fatalf("phase = %s, want finished", s.Session().Phase)
	}
	if s.Session().Score != 1 {
		t.Errorf("score = %d, want 1", s.Session().Score)
	}
	if cmd == nil {
		t.Fatal("expected summary command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Quiz Summary" {
		t.Errorf("replaced with %q", msg.Screen.Title())
	}
}

func TestQuizScreen_QuitConfirm(t *testing.T) {
	s, _ := testQuizScreen(textQuestion(), qz.ModeChordInput, 10)
	if !s.HandlesEscape() {
		t.Fatal("quiz should handle Esc")
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	qs := scr.(*QuizScreen)
	if !qs.showingQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}
	if !strings.Contains(qs.View(80, 24), "End quiz early?") {
		t.Error("expected confirm view")
	}

	scr, _ = qs.Update(keyPress('n'))
	qs = scr.(*QuizScreen)
	if qs.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestQuizScreen_QuitConfirm_Yes(t *testing.T) {
	s, _ := testQuizScreen(textQuestion(), qz.ModeChordInput, 10)
	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected summary after quitting")
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s, _ := testQuizScreen(choiceQuestion(), qz.ModeScaleName, 10)
	if hints := s.KeyHints(); len(hints) == 0 || hints[0].Key != "1-4" {
		t.Errorf("choice hints = %v", hints)
	}
	s.Update(keyPress('1'))
	if hints := s.KeyHints(); len(hints) != 1 {
		t.Errorf("feedback hints = %v", hints)
	}
}

func TestAdvanceAfter(t *testing.T) {
	tok := qz.AdvanceToken{Generation: 3, Index: 7}
	cmd := advanceAfter(time.Millisecond, "abc", tok)
	msg, ok := cmd().(advanceMsg)
	if !ok || msg.SessionID != "abc" || msg.Token != tok {
		t.Errorf("advanceAfter produced %#v", msg)
	}
}

func TestModeScreen(t *testing.T) {
	gen := &mockGenerator{question: textQuestion()}
	m := NewModeScreen(qz.NewEngine(gen, qz.DefaultConfig(), nil), nil)
	if len(m.menu.Items) != len(qz.Modes()) {
		t.Fatalf("menu items = %d", len(m.menu.Items))
	}

	m.Update(specialKey(tea.KeyDown))
	if m.SelectedMode() != qz.ModeChordChoice {
		t.Errorf("selected = %s", m.SelectedMode())
	}
	if !strings.Contains(m.View(100, 40), modeBlurbs[qz.ModeChordChoice]) {
		t.Error("expected blurb of the selected mode")
	}

	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected push command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != qz.ModeChordChoice.DisplayName() {
		t.Errorf("pushed %q", msg.Screen.Title())
	}
}
