package theory

import (
	"errors"
	"fmt"

	"github.com/abhisek/fretwise/internal/pitch"
)

// MaxFrets is the longest neck the fretboard model supports.
const MaxFrets = 24

// DefaultFrets is the number of frets drawn when nothing else is configured.
const DefaultFrets = 12

// StandardTuning lists open strings from the high E (string 1) down to the
// low E (string 6).
var StandardTuning = []string{"E", "B", "G", "D", "A", "E"}

var dotFrets = map[int]bool{3: true, 5: true, 7: true, 9: true, 12: true, 15: true, 17: true, 19: true, 21: true, 24: true}

// IsDotFret reports whether a position marker is inlaid at fret f.
func IsDotFret(f int) bool { return dotFrets[f] }

// IsDoubleDot reports whether fret f carries the octave double marker.
func IsDoubleDot(f int) bool { return f == 12 || f == 24 }

// NoteAt returns the canonical note sounding at fret on a string tuned to
// open.
func NoteAt(open string, fret int) (string, error) {
	return pitch.Transpose(open, fret)
}

// FilterMode selects which cells are highlighted.
type FilterMode int

const (
	FilterAll FilterMode = iota
	FilterNote
	FilterScale
)

// Filter describes a highlight. Build one with AllNotes, OnlyNote or
// OnlyScale.
type Filter struct {
	Mode  FilterMode
	Note  string
	Root  string
	Scale string
	set   NoteSet
}

// AllNotes highlights nothing and dims nothing.
func AllNotes() Filter { return Filter{Mode: FilterAll} }

// OnlyNote highlights a single pitch class. The name may be typed free-form.
func OnlyNote(raw string) (Filter, error) {
	n, ok := pitch.ParseInput(raw)
	if !ok {
		return Filter{}, fmt.Errorf("%w: %q", pitch.ErrInvalidNote, raw)
	}
	return Filter{Mode: FilterNote, Note: n, set: NewNoteSet(n)}, nil
}

// OnlyScale highlights the members of a scale.
func OnlyScale(root, scaleType string) (Filter, error) {
	set, err := ScaleSet(root, scaleType)
	if err != nil {
		return Filter{}, err
	}
	canon, _ := pitch.Normalize(root)
	return Filter{Mode: FilterScale, Root: canon, Scale: scaleType, set: set}, nil
}

// Describe is a short label for headers.
func (f Filter) Describe() string {
	switch f.Mode {
	case FilterNote:
		return "note " + f.Note
	case FilterScale:
		return f.Root + " " + f.Scale
	default:
		return "all notes"
	}
}

// Cell is one fret position on one string.
type Cell struct {
	String    int // 1-based, 1 is the highest string
	Fret      int
	Note      string
	Display   string
	Highlight bool
	Dimmed    bool
}

// Fretboard is a tuned neck.
type Fretboard struct {
	Tuning []string
	Frets  int
}

// NewFretboard validates the tuning and fret count.
func NewFretboard(tuning []string, frets int) (Fretboard, error) {
	if len(tuning) == 0 {
		return Fretboard{}, errors.New("tuning needs at least one string")
	}
	if frets < 1 || frets > MaxFrets {
		return Fretboard{}, fmt.Errorf("frets must be between 1 and %d, got %d", MaxFrets, frets)
	}
	canon := make([]string, len(tuning))
	for i, n := range tuning {
		c, err := pitch.Normalize(n)
		if err != nil {
			return Fretboard{}, fmt.Errorf("string %d: %w", i+1, err)
		}
		canon[i] = c
	}
	return Fretboard{Tuning: canon, Frets: frets}, nil
}

// StandardFretboard is six strings in standard tuning over twelve frets.
func StandardFretboard() Fretboard {
	fb, _ := NewFretboard(StandardTuning, DefaultFrets)
	return fb
}

// StringLabel names a string the way guitarists do, e.g. "1(E)".
func (fb Fretboard) StringLabel(i int) string {
	return fmt.Sprintf("%d(%s)", i+1, fb.Tuning[i])
}

// Grid returns one row per string, frets 0 through fb.Frets.
func (fb Fretboard) Grid(f Filter) [][]Cell {
	rows := make([][]Cell, len(fb.Tuning))
	for s, open := range fb.Tuning {
		oc, _ := pitch.Parse(open)
		row := make([]Cell, fb.Frets+1)
		for fret := 0; fret <= fb.Frets; fret++ {
			c := oc.Transpose(fret)
			cell := Cell{String: s + 1, Fret: fret, Note: c.Name(), Display: c.Display()}
			if f.Mode != FilterAll {
				cell.Highlight = f.set.Has(cell.Note)
				cell.Dimmed = !cell.Highlight
			}
			row[fret] = cell
		}
		rows[s] = row
	}
	return rows
}

// Positions lists every cell where note sounds.
func (fb Fretboard) Positions(note string) ([]Cell, error) {
	f, err := OnlyNote(note)
	if err != nil {
		return nil, err
	}
	var out []Cell
	for _, row := range fb.Grid(f) {
		for _, c := range row {
			if c.Highlight {
				out = append(out, c)
			}
		}
	}
	return out, nil
}
