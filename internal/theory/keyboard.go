package theory

import (
	"github.com/abhisek/fretwise/internal/pitch"
)

const (
	MinStartOctave     = 0
	MaxStartOctave     = 6
	DefaultStartOctave = 3
	DefaultOctaves     = 3
)

// Key is one key of the piano keyboard.
type Key struct {
	MIDI      int
	Class     pitch.Class
	Octave    int
	Black     bool
	Frequency float64
	// Column is the white-key column for white keys, or the white key to the
	// left of a black key.
	Column int
}

// Label renders the key as name plus octave.
func (k Key) Label() string { return pitch.NoteLabel(k.MIDI) }

// Keyboard is a range of whole octaves starting at a C.
type Keyboard struct {
	StartOctave int
	Octaves     int
}

func clamp(n, lo, hi int) int {
	return max(lo, min(hi, n))
}

// NewKeyboard clamps the start octave to 0..6 and requires at least one
// octave.
func NewKeyboard(startOctave, octaves int) Keyboard {
	if octaves < 1 {
		octaves = 1
	}
	return Keyboard{
		StartOctave: clamp(startOctave, MinStartOctave, MaxStartOctave),
		Octaves:     octaves,
	}
}

// DefaultKeyboard spans C3 to B5.
func DefaultKeyboard() Keyboard {
	return NewKeyboard(DefaultStartOctave, DefaultOctaves)
}

// ShiftOctave moves the range and clamps it again.
func (kb Keyboard) ShiftOctave(delta int) Keyboard {
	return NewKeyboard(kb.StartOctave+delta, kb.Octaves)
}

// Keys returns the white keys of each octave followed by its black keys.
func (kb Keyboard) Keys() []Key {
	keys := make([]Key, 0, kb.Octaves*pitch.Count)
	column := -1
	for o := 0; o < kb.Octaves; o++ {
		octave := kb.StartOctave + o
		baseC := pitch.MIDI(0, octave)
		var black []Key
		for semi := 0; semi < pitch.Count; semi++ {
			if pitch.Class(semi).IsNatural() {
				column++
				keys = append(keys, newKey(baseC+semi, octave, false, column))
				continue
			}
			// A black key sits right of the last white key.
			black = append(black, newKey(baseC+semi, octave, true, column))
		}
		keys = append(keys, black...)
	}
	return keys
}

// Lowest and Highest bound the MIDI range of the keyboard.
func (kb Keyboard) Lowest() int  { return pitch.MIDI(0, kb.StartOctave) }
func (kb Keyboard) Highest() int { return pitch.MIDI(11, kb.StartOctave+kb.Octaves-1) }

// Contains reports whether a MIDI note is on the keyboard.
func (kb Keyboard) Contains(midi int) bool {
	return midi >= kb.Lowest() && midi <= kb.Highest()
}

func newKey(midi, octave int, black bool, column int) Key {
	return Key{
		MIDI:      midi,
		Class:     pitch.Wrap(midi),
		Octave:    octave,
		Black:     black,
		Frequency: pitch.Frequency(midi),
		Column:    column,
	}
}
