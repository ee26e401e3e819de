package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is one of the six quiz kinds.
type Mode string

const (
	ModeChordInput  Mode = "chordInput"
	ModeChordChoice Mode = "chordChoice"
	ModeScaleName   Mode = "scaleName"
	ModeScaleNotes  Mode = "scaleNotes"
	ModeKeySigToKey Mode = "keySigToKey"
	ModeKeyToKeySig Mode = "keyToKeySig"
)

// ErrUnknownMode is returned by ParseMode.
var ErrUnknownMode = errors.New("unknown quiz mode")

// Modes lists every mode in menu order.
func Modes() []Mode {
	return []Mode{ModeChordInput, ModeChordChoice, ModeScaleName, ModeScaleNotes, ModeKeySigToKey, ModeKeyToKeySig}
}

// ParseMode matches a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if strings.EqualFold(string(m), strings.TrimSpace(s)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// IsChoice reports whether the mode is answered by picking one of four
// choices.
func (m Mode) IsChoice() bool {
	switch m {
	case ModeChordChoice, ModeScaleName, ModeKeySigToKey:
		return true
	}
	return false
}

// DisplayName is the menu label.
func (m Mode) DisplayName() string {
	switch m {
	case ModeChordInput:
		return "Chord tones (type)"
	case ModeChordChoice:
		return "Chord tones (choose)"
	case ModeScaleName:
		return "Name that scale"
	case ModeScaleNotes:
		return "Scale tones (type)"
	case ModeKeySigToKey:
		return "Key from signature"
	case ModeKeyToKeySig:
		return "Signature from key"
	}
	return string(m)
}

// AnswerFormat describes how the learner provides an answer.
type AnswerFormat string

const (
	// FormatText means the learner types notes or a name.
	FormatText AnswerFormat = "text"

	// FormatMultipleChoice means the learner picks from 4 choices.
	FormatMultipleChoice AnswerFormat = "multiple_choice"
)

// NoAccidentals is shown in place of an empty key signature.
const NoAccidentals = "(none)"

// Answer is the expected answer of a question: either a single string or
// a note sequence.
type Answer struct {
	// Text is set for single-string answers (scale name, key name).
	Text string

	// Sequence marks a note-list answer. Notes may be empty (key of C).
	Sequence bool

	// Notes holds sequence answers in canonical display order.
	Notes []string

	// Ordered requires the learner to match the order of Notes.
	Ordered bool
}

// String renders the answer the way it is shown after a wrong guess.
func (a Answer) String() string {
	if !a.Sequence {
		return a.Text
	}
	if len(a.Notes) == 0 {
		return NoAccidentals
	}
	return strings.Join(a.Notes, " ")
}

// Question is one generated quiz item.
type Question struct {
	Mode   Mode
	Prompt string
	Format AnswerFormat
	Answer Answer

	// Choices is populated only when Format is FormatMultipleChoice.
	// Contains exactly 4 distinct options, one of which is the answer.
	Choices []string

	// Hint names the concept being tested, e.g. "D Major Pentatonic".
	Hint string
}

// CorrectChoice returns the index of the correct choice, or -1.
func (q *Question) CorrectChoice() int {
	want := q.Answer.String()
	for i, c := range q.Choices {
		if c == want {
			return i
		}
	}
	return -1
}

// Verdict is the result of grading one answer.
type Verdict struct {
	Correct  bool
	Expected string
	Message  string
}

// Result records one answered question.
type Result struct {
	Index    int
	Prompt   string
	Given    string
	Expected string
	Correct  bool
}
