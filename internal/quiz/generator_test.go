package quiz

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/fretwise/internal/pitch"
	"github.com/abhisek/fretwise/internal/randutil"
	"github.com/abhisek/fretwise/internal/theory"
)

func testGenerator(seed uint64) *TheoryGenerator {
	return NewGenerator(randutil.New(seed), DefaultConfig(), nil)
}

func TestGenerate_AllModesValid(t *testing.T) {
	g := testGenerator(1)
	for _, m := range Modes() {
		for i := 0; i < 200; i++ {
			q, err := g.Generate(m)
			if err != nil {
				t.Fatalf("Generate(%s): %v", m, err)
			}
			if q.Mode != m {
				t.Fatalf("Mode = %s, want %s", q.Mode, m)
			}
			if verr := Validate(q); verr != nil {
				t.Fatalf("Validate(%s): %v", m, verr)
			}
			if m.IsChoice() != (q.Format == FormatMultipleChoice) {
				t.Fatalf("%s has format %s", m, q.Format)
			}
		}
	}
}

func TestGenerate_ChoiceSetInvariants(t *testing.T) {
	g := testGenerator(2)
	for _, m := range []Mode{ModeChordChoice, ModeScaleName, ModeKeySigToKey} {
		for i := 0; i < 300; i++ {
			q, err := g.Generate(m)
			if err != nil {
				t.Fatal(err)
			}
			if len(q.Choices) != ChoiceCount {
				t.Fatalf("%s: %d choices", m, len(q.Choices))
			}
			seen := map[string]bool{}
			hits := 0
			for _, c := range q.Choices {
				if seen[c] {
					t.Fatalf("%s: duplicate choice %q in %v", m, c, q.Choices)
				}
				seen[c] = true
				if Grade(c, q.Answer).Correct {
					hits++
				}
			}
			if hits != 1 {
				t.Fatalf("%s: %d choices grade correct in %v (answer %q)", m, hits, q.Choices, q.Answer)
			}
			if q.CorrectChoice() < 0 {
				t.Fatalf("%s: CorrectChoice not found", m)
			}
		}
	}
}

func TestGenerate_ChordChoiceDistractorsAreThreeNotes(t *testing.T) {
	g := testGenerator(3)
	q, err := g.Generate(ModeChordChoice)
	if err != nil {
		t.Fatal(err)
	}
	correct := q.CorrectChoice()
	for i, c := range q.Choices {
		if i == correct {
			continue
		}
		if n := len(strings.Fields(c)); n != 3 {
			t.Errorf("distractor %q has %d notes, want 3", c, n)
		}
	}
}

// climbing reports whether the notes ascend chromatically from C.
func climbing(t *testing.T, notes []string) bool {
	t.Helper()
	prev := -1
	for _, n := range notes {
		c, err := pitch.Parse(n)
		if err != nil {
			t.Fatalf("parse %q: %v", n, err)
		}
		if int(c) <= prev {
			return false
		}
		prev = int(c)
	}
	return true
}

func TestGenerate_ChordChoiceOrderGivesNothingAway(t *testing.T) {
	g := testGenerator(5)
	var climbingDistractors, otherDistractors, oddOneCorrect, oddOneDistractor int
	for i := 0; i < 1000; i++ {
		q, err := g.Generate(ModeChordChoice)
		if err != nil {
			t.Fatal(err)
		}
		correct := q.CorrectChoice()
		sets := map[string]bool{}
		var odd []int
		for j, c := range q.Choices {
			notes := strings.Fields(c)
			if !climbing(t, notes) {
				odd = append(odd, j)
			}
			if j == correct {
				continue
			}
			if climbing(t, notes) {
				climbingDistractors++
			} else {
				otherDistractors++
			}
			key := strings.Join(theory.NewNoteSet(notes...).Sorted(), " ")
			if sets[key] {
				t.Fatalf("%q: two distractors spell %s in %v", q.Prompt, key, q.Choices)
			}
			sets[key] = true
		}
		if len(odd) == 1 {
			if odd[0] == correct {
				oddOneCorrect++
			} else {
				oddOneDistractor++
			}
		}
	}
	if climbingDistractors == 0 || otherDistractors == 0 {
		t.Fatalf("distractor order is fixed: %d climbing, %d other", climbingDistractors, otherDistractors)
	}
	// A lone out-of-order choice must not point at the answer.
	if oddOneDistractor == 0 || oddOneCorrect > 2*oddOneDistractor {
		t.Errorf("out-of-order choice is the answer %d times, a distractor %d times", oddOneCorrect, oddOneDistractor)
	}
}

func TestGenerate_ChordAnswerMatchesLibrary(t *testing.T) {
	g := testGenerator(4)
	for i := 0; i < 50; i++ {
		q, err := g.Generate(ModeChordInput)
		if err != nil {
			t.Fatal(err)
		}
		root, chord, _ := strings.Cut(q.Prompt, " ")
		want, err := theory.BuildChord(root, chord)
		if err != nil {
			t.Fatalf("prompt %q: %v", q.Prompt, err)
		}
		if got := strings.Join(q.Answer.Notes, " "); got != strings.Join(want, " ") {
			t.Errorf("%q: answer %q, want %q", q.Prompt, got, want)
		}
	}
}

func TestGenerate_KeySignatureRoundTrip(t *testing.T) {
	g := testGenerator(5)
	for i := 0; i < 100; i++ {
		q, err := g.Generate(ModeKeyToKeySig)
		if err != nil {
			t.Fatal(err)
		}
		if !q.Answer.Ordered {
			t.Fatal("keyToKeySig should be ordered by default")
		}
		key, ok := theory.KeyForSignature(q.Answer.Notes)
		if !ok || key != q.Prompt {
			t.Errorf("signature %v maps back to %q, want %q", q.Answer.Notes, key, q.Prompt)
		}
	}
}

func TestGenerate_LenientKeySignatures(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LenientKeySignatures = true
	g := NewGenerator(randutil.New(6), cfg, nil)
	q, err := g.Generate(ModeKeyToKeySig)
	if err != nil {
		t.Fatal(err)
	}
	if q.Answer.Ordered {
		t.Error("lenient config should produce unordered answers")
	}
}

func TestGenerate_EmptySignaturePrompt(t *testing.T) {
	g := testGenerator(7)
	for i := 0; i < 500; i++ {
		q, err := g.Generate(ModeKeySigToKey)
		if err != nil {
			t.Fatal(err)
		}
		if q.Answer.Text == "C" {
			if q.Prompt != NoAccidentals {
				t.Errorf("prompt for C = %q, want %q", q.Prompt, NoAccidentals)
			}
			return
		}
	}
	t.Fatal("key of C never drawn")
}

func TestGenerate_UnknownMode(t *testing.T) {
	_, err := testGenerator(8).Generate(Mode("intervals"))
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("err = %v, want ErrUnknownMode", err)
	}
}

func TestBuildChoices_PoolExhausted(t *testing.T) {
	rng := randutil.New(9)
	_, err := BuildChoices(rng, "a", 50, FromPool(rng, []string{"a", "b"}))
	if !errors.Is(err, ErrChoicePoolExhausted) {
		t.Errorf("err = %v, want ErrChoicePoolExhausted", err)
	}
}

func TestBuildChoices_Shuffled(t *testing.T) {
	rng := randutil.New(10)
	pool := []string{"a", "b", "c", "d", "e"}
	positions := map[int]int{}
	for i := 0; i < 400; i++ {
		choices, err := BuildChoices(rng, "a", 100, FromPool(rng, pool))
		if err != nil {
			t.Fatal(err)
		}
		for idx, c := range choices {
			if c == "a" {
				positions[idx]++
			}
		}
	}
	for idx := 0; idx < ChoiceCount; idx++ {
		if positions[idx] < 50 {
			t.Errorf("correct answer landed at position %d only %d/400 times", idx, positions[idx])
		}
	}
}

func TestValidate(t *testing.T) {
	good := &Question{
		Mode:    ModeScaleName,
		Prompt:  "C D E F G A B",
		Format:  FormatMultipleChoice,
		Answer:  Answer{Text: "Major"},
		Choices: []string{"Dorian", "Major", "Blues", "Locrian"},
	}
	if err := Validate(good); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	dup := *good
	dup.Choices = []string{"Dorian", "Major", "Dorian", "Locrian"}
	if Validate(&dup) == nil {
		t.Error("expected duplicate choice error")
	}

	missing := *good
	missing.Choices = []string{"Dorian", "Lydian", "Blues", "Locrian"}
	if Validate(&missing) == nil {
		t.Error("expected missing answer error")
	}

	short := *good
	short.Choices = short.Choices[:3]
	if Validate(&short) == nil {
		t.Error("expected choice count error")
	}
}
