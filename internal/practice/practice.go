// Package practice generates warm-up material for guitar practice: a
// shuffled set of chord shapes and a random sixteenth-note strum pattern.
package practice

import (
	"math/rand/v2"
	"strings"

	"github.com/abhisek/fretwise/internal/pitch"
	"github.com/abhisek/fretwise/internal/randutil"
)

// ChordTypes are the shapes drawn by ChordSet, each exactly once.
var ChordTypes = []string{"M", "m", "7", "M7", "m7", "sus4", "7sus4", "dim7", "m7(b5)", "6", "m6", "mM7", "7(#5)", "M7(#5)"}

// DefaultRestProbability is the chance that a strum slot is silent.
const DefaultRestProbability = 0.35

// Chord is one entry of a practice set.
type Chord struct {
	Root string // display spelling, e.g. "F#/Gb"
	Type string
}

func (c Chord) String() string { return c.Root + c.Type }

// ChordSet shuffles ChordTypes and gives each a random root.
func ChordSet(rng *rand.Rand) []Chord {
	roots := make([]string, pitch.Count)
	for i := range roots {
		roots[i] = pitch.Class(i).Display()
	}
	types := randutil.Shuffle(rng, ChordTypes)
	out := make([]Chord, len(types))
	for i, t := range types {
		out[i] = Chord{Root: randutil.Pick(rng, roots), Type: t}
	}
	return out
}

// FormatChordSet joins a set for one-line display.
func FormatChordSet(set []Chord) string {
	parts := make([]string, len(set))
	for i, c := range set {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Stroke is one sixteenth-note slot of a strum pattern.
type Stroke int

const (
	Rest Stroke = iota
	Down
	Up
)

func (s Stroke) Symbol() string {
	switch s {
	case Down:
		return "↓"
	case Up:
		return "↑"
	}
	return "-"
}

// Counts are the spoken sixteenth-note counts of one 4/4 bar.
var Counts = []string{"1", "e", "&", "a", "2", "e", "&", "a", "3", "e", "&", "a", "4", "e", "&", "a"}

// Pattern is one bar of strokes aligned with Counts.
type Pattern []Stroke

// Strum draws a pattern where each slot rests with probability rest;
// otherwise the "e" and "a" offbeats are up-strokes and the rest down.
func Strum(rng *rand.Rand, rest float64) Pattern {
	p := make(Pattern, len(Counts))
	for i, c := range Counts {
		switch {
		case randutil.Chance(rng, rest):
			p[i] = Rest
		case c == "e" || c == "a":
			p[i] = Up
		default:
			p[i] = Down
		}
	}
	return p
}

// Lines renders the count line and the stroke line, column aligned.
func (p Pattern) Lines() (counts, strokes string) {
	var cb, sb strings.Builder
	for i, s := range p {
		if i > 0 {
			cb.WriteByte(' ')
			sb.WriteByte(' ')
		}
		cb.WriteString(Counts[i])
		sb.WriteString(s.Symbol())
	}
	return cb.String(), sb.String()
}
