// Package theory builds chords, scales and key signatures from the formula
// library, and models the two instruments fretwise draws: a guitar
// fretboard and a piano keyboard.
package theory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/fretwise/internal/pitch"
)

// apply transposes each offset from root and returns canonical names in
// formula order.
func apply(root string, f Formula) ([]string, error) {
	rc, err := pitch.Parse(root)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(f))
	for i, off := range f {
		out[i] = rc.Transpose(off).Name()
	}
	return out, nil
}

// BuildChord returns the chord tones of root + chordType, root first.
func BuildChord(root, chordType string) ([]string, error) {
	f, err := ChordFormula(chordType)
	if err != nil {
		return nil, err
	}
	return apply(root, f)
}

// BuildScale returns the tones of root + scaleType in ascending order.
func BuildScale(root, scaleType string) ([]string, error) {
	f, err := ScaleFormula(scaleType)
	if err != nil {
		return nil, err
	}
	return apply(root, f)
}

// NoteSet is an unordered set of canonical note names.
type NoteSet map[string]struct{}

// NewNoteSet builds a set from canonical names.
func NewNoteSet(names ...string) NoteSet {
	s := make(NoteSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports membership. A nil set contains nothing.
func (s NoteSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s NoteSet) Len() int { return len(s) }

// Sorted returns the members in chromatic order from C.
func (s NoteSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for _, n := range pitch.Names() {
		if s.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// ScaleSet returns the membership set of a scale, used for highlighting.
func ScaleSet(root, scaleType string) (NoteSet, error) {
	notes, err := BuildScale(root, scaleType)
	if err != nil {
		return nil, err
	}
	return NewNoteSet(notes...), nil
}

// Direction selects which way the circle is walked.
type Direction int

const (
	// Up walks in ascending perfect fifths.
	Up Direction = iota
	// Down walks in ascending perfect fourths.
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// ParseDirection accepts "up" or "down" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "up", "fifths":
		return Up, nil
	case "down", "fourths":
		return Down, nil
	}
	return Up, fmt.Errorf("unknown direction %q (want up or down)", s)
}

var (
	circleUp   = []string{"C", "G", "D", "A", "E", "B", "F#/Gb", "Db", "Ab", "Eb", "Bb", "F"}
	circleDown = []string{"C", "F", "Bb", "Eb", "Ab", "Db", "F#/Gb", "B", "E", "A", "D", "G"}
)

// Circle returns the circle of fifths in the given direction using the
// conventional key spellings.
func Circle(d Direction) []string {
	if d == Down {
		return slices.Clone(circleDown)
	}
	return slices.Clone(circleUp)
}
