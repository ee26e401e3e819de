package theory

import (
	"errors"
	"fmt"
	"slices"

	"github.com/abhisek/fretwise/internal/pitch"
)

// ErrUnknownFormula is returned when a chord, scale or key name is not in
// the library.
var ErrUnknownFormula = errors.New("unknown formula")

// Formula is a list of semitone offsets from a root, root first.
type Formula []int

type namedFormula struct {
	name    string
	offsets Formula
}

var chordTable = []namedFormula{
	{"M", Formula{0, 4, 7}},
	{"m", Formula{0, 3, 7}},
	{"dim", Formula{0, 3, 6}},
	{"aug", Formula{0, 4, 8}},
	{"7", Formula{0, 4, 7, 10}},
	{"M7", Formula{0, 4, 7, 11}},
	{"m7", Formula{0, 3, 7, 10}},
	{"dim7", Formula{0, 3, 6, 9}},
	{"m7(b5)", Formula{0, 3, 6, 10}},
	{"sus2", Formula{0, 2, 7}},
	{"sus4", Formula{0, 5, 7}},
	{"7sus4", Formula{0, 5, 7, 10}},
	{"6", Formula{0, 4, 7, 9}},
	{"m6", Formula{0, 3, 7, 9}},
	{"mM7", Formula{0, 3, 7, 11}},
	{"7(#5)", Formula{0, 4, 8, 10}},
	{"M7(#5)", Formula{0, 4, 8, 11}},
	{"add9", Formula{0, 4, 7, 14}},
	{"madd9", Formula{0, 3, 7, 14}},
}

var scaleTable = []namedFormula{
	{"Major", Formula{0, 2, 4, 5, 7, 9, 11}},
	{"Natural Minor", Formula{0, 2, 3, 5, 7, 8, 10}},
	{"Major Pentatonic", Formula{0, 2, 4, 7, 9}},
	{"Minor Pentatonic", Formula{0, 3, 5, 7, 10}},
	{"Blues", Formula{0, 3, 5, 6, 7, 10}},
	{"Dorian", Formula{0, 2, 3, 5, 7, 9, 10}},
	{"Phrygian", Formula{0, 1, 3, 5, 7, 8, 10}},
	{"Lydian", Formula{0, 2, 4, 6, 7, 9, 11}},
	{"Mixolydian", Formula{0, 2, 4, 5, 7, 9, 10}},
	{"Locrian", Formula{0, 1, 3, 5, 6, 8, 10}},
	{"Harmonic Minor", Formula{0, 2, 3, 5, 7, 8, 11}},
	{"Melodic Minor", Formula{0, 2, 3, 5, 7, 9, 11}},
}

// scaleAliases are accepted on lookup but never listed.
var scaleAliases = map[string]string{
	"Ionian":  "Major",
	"Aeolian": "Natural Minor",
}

// KeySignature is the ordered accidental list of a major key.
type KeySignature struct {
	Key         string
	Accidentals []string
}

// Sharps follow F C G D A E B and flats follow B E A D G C F.
var keySignatureTable = []KeySignature{
	{"C", nil},
	{"G", []string{"F#"}},
	{"D", []string{"F#", "C#"}},
	{"A", []string{"F#", "C#", "G#"}},
	{"E", []string{"F#", "C#", "G#", "D#"}},
	{"B", []string{"F#", "C#", "G#", "D#", "A#"}},
	{"F", []string{"Bb"}},
	{"Bb", []string{"Bb", "Eb"}},
	{"Eb", []string{"Bb", "Eb", "Ab"}},
	{"Ab", []string{"Bb", "Eb", "Ab", "Db"}},
}

var (
	chordIndex = indexFormulas(chordTable)
	scaleIndex = indexFormulas(scaleTable)
	keyIndex   = func() map[string]int {
		m := make(map[string]int, len(keySignatureTable))
		for i, ks := range keySignatureTable {
			m[ks.Key] = i
		}
		return m
	}()
)

func indexFormulas(table []namedFormula) map[string]int {
	m := make(map[string]int, len(table))
	for i, f := range table {
		m[f.name] = i
	}
	return m
}

func names(table []namedFormula) []string {
	out := make([]string, len(table))
	for i, f := range table {
		out[i] = f.name
	}
	return out
}

// ChordTypes lists chord names in display order.
func ChordTypes() []string { return names(chordTable) }

// ScaleTypes lists scale names in display order.
func ScaleTypes() []string { return names(scaleTable) }

// Keys lists the keys of the key-signature table in display order.
func Keys() []string {
	out := make([]string, len(keySignatureTable))
	for i, ks := range keySignatureTable {
		out[i] = ks.Key
	}
	return out
}

// ChordFormula returns a copy of the named chord's offsets.
func ChordFormula(name string) (Formula, error) {
	i, ok := chordIndex[name]
	if !ok {
		return nil, fmt.Errorf("%w: chord %q", ErrUnknownFormula, name)
	}
	return slices.Clone(chordTable[i].offsets), nil
}

// ScaleFormula returns a copy of the named scale's offsets. The mode names
// Ionian and Aeolian resolve to Major and Natural Minor.
func ScaleFormula(name string) (Formula, error) {
	if canon, ok := scaleAliases[name]; ok {
		name = canon
	}
	i, ok := scaleIndex[name]
	if !ok {
		return nil, fmt.Errorf("%w: scale %q", ErrUnknownFormula, name)
	}
	return slices.Clone(scaleTable[i].offsets), nil
}

// KeySignatureOf returns the accidentals of a major key. C returns an empty
// list.
func KeySignatureOf(key string) (KeySignature, error) {
	i, ok := keyIndex[key]
	if !ok {
		return KeySignature{}, fmt.Errorf("%w: key %q", ErrUnknownFormula, key)
	}
	ks := keySignatureTable[i]
	return KeySignature{Key: ks.Key, Accidentals: slices.Clone(ks.Accidentals)}, nil
}

// KeyForSignature finds the key whose accidentals match in order. Either
// spelling of an accidental matches, so "A# D#" finds Bb.
func KeyForSignature(accidentals []string) (string, bool) {
	want := make([]pitch.Class, len(accidentals))
	for i, a := range accidentals {
		c, err := pitch.Parse(a)
		if err != nil {
			return "", false
		}
		want[i] = c
	}
	for _, ks := range keySignatureTable {
		if slices.EqualFunc(ks.Accidentals, want, func(name string, c pitch.Class) bool {
			got, err := pitch.Parse(name)
			return err == nil && got == c
		}) {
			return ks.Key, true
		}
	}
	return "", false
}

// MustChordFormula is ChordFormula for names that came from ChordTypes. An
// unknown name here is a bug, so it panics.
func MustChordFormula(name string) Formula {
	f, err := ChordFormula(name)
	if err != nil {
		panic(err)
	}
	return f
}

// MustScaleFormula is ScaleFormula for names that came from ScaleTypes.
func MustScaleFormula(name string) Formula {
	f, err := ScaleFormula(name)
	if err != nil {
		panic(err)
	}
	return f
}

// MustKeySignature is KeySignatureOf for names that came from Keys.
func MustKeySignature(key string) KeySignature {
	ks, err := KeySignatureOf(key)
	if err != nil {
		panic(err)
	}
	return ks
}
