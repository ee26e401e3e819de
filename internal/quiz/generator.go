package quiz

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/fretwise/internal/pitch"
	"github.com/abhisek/fretwise/internal/randutil"
	"github.com/abhisek/fretwise/internal/theory"
)

// Roots are the root spellings quiz questions are asked in. Both spellings
// of each black key appear so learners see flats as well as sharps.
var Roots = []string{"C", "C#", "Db", "D", "Eb", "E", "F", "F#", "Gb", "G", "Ab", "A", "Bb", "B"}

// Generator produces quiz questions.
type Generator interface {
	// Generate produces a single validated question for mode.
	Generate(mode Mode) (*Question, error)
}

// TheoryGenerator derives questions from the formula library.
type TheoryGenerator struct {
	rng    *rand.Rand
	cfg    Config
	logger *slog.Logger
}

var _ Generator = (*TheoryGenerator)(nil)

// NewGenerator returns a generator drawing from rng.
func NewGenerator(rng *rand.Rand, cfg Config, logger *slog.Logger) *TheoryGenerator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TheoryGenerator{rng: rng, cfg: cfg, logger: logger}
}

// Generate builds a question and retries when validation fails with a
// retryable error.
func (g *TheoryGenerator) Generate(mode Mode) (*Question, error) {
	attempts := max(g.cfg.MaxGenerateAttempts, 1)
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		q, err := g.build(mode)
		if err != nil {
			lastErr = err
			if errors.Is(err, ErrUnknownMode) {
				return nil, err
			}
			g.logger.Warn("question generation failed", "mode", mode, "attempt", attempt+1, "error", err)
			continue
		}
		if verr := Validate(q); verr != nil {
			lastErr = verr
			g.logger.Warn("generated question rejected", "mode", mode, "attempt", attempt+1, "error", verr)
			if !verr.Retryable {
				break
			}
			continue
		}
		return q, nil
	}
	return nil, fmt.Errorf("generate %s question: %w", mode, lastErr)
}

func (g *TheoryGenerator) build(mode Mode) (*Question, error) {
	switch mode {
	case ModeChordInput:
		return g.chordQuestion(false)
	case ModeChordChoice:
		return g.chordQuestion(true)
	case ModeScaleName:
		return g.scaleNameQuestion()
	case ModeScaleNotes:
		return g.scaleNotesQuestion()
	case ModeKeySigToKey:
		return g.keySigToKeyQuestion()
	case ModeKeyToKeySig:
		return g.keyToKeySigQuestion(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

// mustBuild unwraps a build from library names; failure is a bug.
func mustBuild(notes []string, err error) []string {
	if err != nil {
		panic(err)
	}
	return notes
}

func (g *TheoryGenerator) chordQuestion(choice bool) (*Question, error) {
	root := randutil.Pick(g.rng, Roots)
	chordType := randutil.Pick(g.rng, theory.ChordTypes())
	tones := mustBuild(theory.BuildChord(root, chordType))

	q := &Question{
		Mode:   ModeChordInput,
		Prompt: root + " " + chordType,
		Format: FormatText,
		Answer: Answer{Sequence: true, Notes: tones},
		Hint:   fmt.Sprintf("%s %s chord tones", root, chordType),
	}
	if !choice {
		return q, nil
	}

	q.Mode = ModeChordChoice
	q.Format = FormatMultipleChoice
	correct := q.Answer.String()
	chordSet := theory.NewNoteSet(tones...)
	chromatic := pitch.Names()
	// Distractors keep their drawn order. Repeats are keyed by set so
	// "E C# A" and "A C# E" count as one choice.
	seen := map[string]bool{}
	choices, err := BuildChoices(g.rng, correct, g.cfg.MaxChoiceAttempts, func() string {
		drawn := randutil.Sample(g.rng, chromatic, 3)
		set := theory.NewNoteSet(drawn...)
		key := strings.Join(set.Sorted(), " ")
		if seen[key] || sameSet(set, chordSet) {
			return correct
		}
		seen[key] = true
		return strings.Join(drawn, " ")
	})
	if err != nil {
		return nil, err
	}
	q.Choices = choices
	return q, nil
}

func sameSet(a, b theory.NoteSet) bool {
	if a.Len() != b.Len() {
		return false
	}
	for n := range a {
		if !b.Has(n) {
			return false
		}
	}
	return true
}

func (g *TheoryGenerator) scaleNameQuestion() (*Question, error) {
	root := randutil.Pick(g.rng, Roots)
	scales := theory.ScaleTypes()
	scaleType := randutil.Pick(g.rng, scales)
	tones := mustBuild(theory.BuildScale(root, scaleType))

	choices, err := BuildChoices(g.rng, scaleType, g.cfg.MaxChoiceAttempts, FromPool(g.rng, scales))
	if err != nil {
		return nil, err
	}
	return &Question{
		Mode:    ModeScaleName,
		Prompt:  strings.Join(tones, " "),
		Format:  FormatMultipleChoice,
		Answer:  Answer{Text: scaleType},
		Choices: choices,
		Hint:    fmt.Sprintf("%s %s", root, scaleType),
	}, nil
}

func (g *TheoryGenerator) scaleNotesQuestion() (*Question, error) {
	root := randutil.Pick(g.rng, Roots)
	scaleType := randutil.Pick(g.rng, theory.ScaleTypes())
	tones := mustBuild(theory.BuildScale(root, scaleType))
	return &Question{
		Mode:   ModeScaleNotes,
		Prompt: root + " " + scaleType,
		Format: FormatText,
		Answer: Answer{Sequence: true, Notes: tones},
		Hint:   fmt.Sprintf("%s %s scale tones", root, scaleType),
	}, nil
}

func signatureText(accidentals []string) string {
	if len(accidentals) == 0 {
		return NoAccidentals
	}
	return strings.Join(accidentals, " ")
}

func (g *TheoryGenerator) keySigToKeyQuestion() (*Question, error) {
	keys := theory.Keys()
	key := randutil.Pick(g.rng, keys)
	ks := theory.MustKeySignature(key)

	choices, err := BuildChoices(g.rng, key, g.cfg.MaxChoiceAttempts, FromPool(g.rng, keys))
	if err != nil {
		return nil, err
	}
	return &Question{
		Mode:    ModeKeySigToKey,
		Prompt:  signatureText(ks.Accidentals),
		Format:  FormatMultipleChoice,
		Answer:  Answer{Text: key},
		Choices: choices,
		Hint:    key + " major",
	}, nil
}

func (g *TheoryGenerator) keyToKeySigQuestion() *Question {
	key := randutil.Pick(g.rng, theory.Keys())
	ks := theory.MustKeySignature(key)
	return &Question{
		Mode:   ModeKeyToKeySig,
		Prompt: key,
		Format: FormatText,
		Answer: Answer{
			Sequence: true,
			Notes:    ks.Accidentals,
			Ordered:  !g.cfg.LenientKeySignatures,
		},
		Hint: key + " major key signature",
	}
}
