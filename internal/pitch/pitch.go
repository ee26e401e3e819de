// Package pitch implements the twelve-tone pitch-class arithmetic that the
// rest of fretwise is built on. All computation happens on integer classes
// mod 12; note names only appear at the edges (parsing and display).
package pitch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNote is returned when a name is not one of the twelve canonical
// sharp names or the five accepted flat aliases.
var ErrInvalidNote = errors.New("invalid note name")

// Class is a pitch class in [0, 12). C is 0.
type Class int

// Count is the number of pitch classes in an octave.
const Count = 12

var sharpNames = [Count]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// displayNames shows both spellings for the black keys.
var displayNames = [Count]string{"C", "C#/Db", "D", "D#/Eb", "E", "F", "F#/Gb", "G", "G#/Ab", "A", "A#/Bb", "B"}

// flatAliases is closed on purpose: Cb, Fb, E# and B# are rejected.
var flatAliases = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
}

var classByName = func() map[string]Class {
	m := make(map[string]Class, Count)
	for i, n := range sharpNames {
		m[n] = Class(i)
	}
	return m
}()

// Names returns the canonical sharp names in chromatic order starting at C.
func Names() []string {
	out := make([]string, Count)
	copy(out, sharpNames[:])
	return out
}

// Wrap reduces any integer (including negatives) into [0, 12).
func Wrap(n int) Class {
	return Class(((n % Count) + Count) % Count)
}

// Name returns the canonical sharp spelling.
func (c Class) Name() string {
	return sharpNames[Wrap(int(c))]
}

// Display returns the pair spelling used by visual surfaces, e.g. "F#/Gb".
func (c Class) Display() string {
	return displayNames[Wrap(int(c))]
}

// IsNatural reports whether the class is a white key.
func (c Class) IsNatural() bool {
	return !strings.Contains(c.Name(), "#")
}

// Transpose moves the class up by offset semitones.
func (c Class) Transpose(offset int) Class {
	return Wrap(int(c) + offset)
}

func (c Class) String() string {
	return c.Name()
}

// Normalize maps a note name to its canonical sharp spelling. Canonical names
// are returned unchanged and the flat aliases Db, Eb, Gb, Ab and Bb map to
// their sharp equivalent. Input is matched exactly; use ParseInput for
// free-form text.
func Normalize(name string) (string, error) {
	if _, ok := classByName[name]; ok {
		return name, nil
	}
	if sharp, ok := flatAliases[name]; ok {
		return sharp, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidNote, name)
}

// Parse returns the pitch class for a canonical name or flat alias.
func Parse(name string) (Class, error) {
	canon, err := Normalize(name)
	if err != nil {
		return 0, err
	}
	return classByName[canon], nil
}

// Transpose returns the canonical name offset semitones above root.
func Transpose(root string, offset int) (string, error) {
	c, err := Parse(root)
	if err != nil {
		return "", err
	}
	return c.Transpose(offset).Name(), nil
}

// Display returns the pair spelling for any accepted name.
func Display(name string) (string, error) {
	c, err := Parse(name)
	if err != nil {
		return "", err
	}
	return c.Display(), nil
}
