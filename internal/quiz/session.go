package quiz

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
)

// ErrNoActiveQuestion is returned by Answer outside the InProgress phase.
var ErrNoActiveQuestion = errors.New("no active question")

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseIdle       Phase = iota // No quiz started yet
	PhaseInProgress              // A question is waiting for an answer
	PhaseFeedback                // Answer graded, waiting for Advance
	PhaseFinished                // All questions answered
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInProgress:
		return "in-progress"
	case PhaseFeedback:
		return "feedback"
	case PhaseFinished:
		return "finished"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Session is the full state of one quiz run. It is a value: every
// transition returns a new Session and never mutates its argument.
type Session struct {
	// ID is a fresh UUID per started quiz.
	ID string

	// Generation increases by one on every Start. Delayed callbacks carry
	// the generation they were scheduled under.
	Generation uint64

	Mode  Mode
	Phase Phase

	// Index is the 1-based number of the current question.
	Index int

	// Score counts correct answers so far.
	Score int

	// Total is the number of questions in this session.
	Total int

	// Current is the live question; its answer is consumed once by Answer.
	Current *Question

	// Last is the verdict of the most recent answer.
	Last *Verdict

	Results []Result

	StartedAt  time.Time
	FinishedAt time.Time
}

// AdvanceToken identifies the question a delayed advance was scheduled for.
type AdvanceToken struct {
	Generation uint64
	Index      int
}

// Token returns the advance token for the current question.
func (s Session) Token() AdvanceToken {
	return AdvanceToken{Generation: s.Generation, Index: s.Index}
}

// Check verifies 0 <= Score <= Index <= Total.
func (s Session) Check() error {
	if s.Score < 0 || s.Score > s.Index || s.Index > s.Total {
		return fmt.Errorf("session invariant broken: score=%d index=%d total=%d", s.Score, s.Index, s.Total)
	}
	if s.Phase == PhaseFinished && s.Index != s.Total {
		return fmt.Errorf("session finished after %d of %d questions", s.Index, s.Total)
	}
	return nil
}

// Engine runs sessions. It holds no session state of its own.
type Engine struct {
	gen    Generator
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// NewEngine wires a generator into a session engine.
func NewEngine(gen Generator, cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Questions <= 0 {
		cfg.Questions = DefaultConfig().Questions
	}
	return &Engine{gen: gen, cfg: cfg, logger: logger, now: time.Now}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Start begins a new quiz in mode from any phase. Results of the previous
// session are discarded and the generation is bumped so callbacks scheduled
// for it become stale.
func (e *Engine) Start(prev Session, mode Mode) (Session, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return prev, err
	}
	q, err := e.gen.Generate(mode)
	if err != nil {
		return prev, fmt.Errorf("start %s quiz: %w", mode, err)
	}
	s := Session{
		ID:         uuid.New().String(),
		Generation: prev.Generation + 1,
		Mode:       mode,
		Phase:      PhaseInProgress,
		Index:      1,
		Total:      e.cfg.Questions,
		Current:    q,
		StartedAt:  e.now(),
	}
	e.logger.Info("quiz started", "session_id", s.ID, "mode", mode, "generation", s.Generation)
	return s, nil
}

// Answer grades input against the live question and moves to the feedback
// phase. The question's answer is consumed: a second Answer before Advance
// returns ErrNoActiveQuestion.
func (e *Engine) Answer(s Session, input string) (Session, Verdict, error) {
	if s.Phase != PhaseInProgress || s.Current == nil {
		return s, Verdict{}, fmt.Errorf("%w (phase %s)", ErrNoActiveQuestion, s.Phase)
	}

	v := Grade(input, s.Current.Answer)
	if v.Correct {
		s.Score++
	}
	s.Results = append(slices.Clip(s.Results), Result{
		Index:    s.Index,
		Prompt:   s.Current.Prompt,
		Given:    input,
		Expected: v.Expected,
		Correct:  v.Correct,
	})
	s.Last = &v
	s.Phase = PhaseFeedback

	e.logger.Debug("answer graded", "session_id", s.ID, "index", s.Index, "correct", v.Correct)
	return s, v, nil
}

// Advance moves past the feedback phase. A token from an earlier generation
// or question, or a call outside the feedback phase, is ignored and s is
// returned unchanged.
func (e *Engine) Advance(s Session, tok AdvanceToken) (Session, error) {
	if s.Phase != PhaseFeedback || tok != s.Token() {
		e.logger.Debug("stale advance ignored", "session_id", s.ID,
			"token_generation", tok.Generation, "token_index", tok.Index,
			"generation", s.Generation, "index", s.Index, "phase", s.Phase)
		return s, nil
	}

	if s.Index >= s.Total {
		s.Phase = PhaseFinished
		s.Current = nil
		s.FinishedAt = e.now()
		e.logger.Info("quiz finished", "session_id", s.ID, "score", s.Score, "total", s.Total)
		return s, nil
	}

	q, err := e.gen.Generate(s.Mode)
	if err != nil {
		return s, fmt.Errorf("question %d: %w", s.Index+1, err)
	}
	s.Index++
	s.Current = q
	s.Last = nil
	s.Phase = PhaseInProgress
	return s, nil
}

// Submit grades input and advances immediately, for surfaces without a
// feedback delay.
func (e *Engine) Submit(s Session, input string) (Session, Verdict, error) {
	s, v, err := e.Answer(s, input)
	if err != nil {
		return s, v, err
	}
	s, err = e.Advance(s, s.Token())
	return s, v, err
}
