package quiz

import "testing"

func TestGrade_UnorderedSequence(t *testing.T) {
	// D Major Pentatonic.
	ans := Answer{Sequence: true, Notes: []string{"D", "E", "F#", "A", "B"}}

	tests := []struct {
		input string
		want  bool
	}{
		{"D E F# A B", true},
		{"B A F# E D", true},
		{"b,a,f#,e,d", true},
		{"  D  E Gb A B ", true},
		{"D, E, F♯, A, B", true},
		{"B A F# E", false},
		{"D E F# A B C#", false},
		{"D E F A B", false},
		{"D E F# A X", false},
		{"", false},
	}
	for _, tt := range tests {
		v := Grade(tt.input, ans)
		if v.Correct != tt.want {
			t.Errorf("Grade(%q) = %v, want %v", tt.input, v.Correct, tt.want)
		}
	}
}

func TestGrade_OrderedSequence(t *testing.T) {
	ans := Answer{Sequence: true, Notes: []string{"Bb", "Eb", "Ab"}, Ordered: true}

	tests := []struct {
		input string
		want  bool
	}{
		{"Bb Eb Ab", true},
		{"bb eb ab", true},
		{"A# D# G#", true},
		{"Eb Bb Ab", false},
		{"Bb Eb", false},
	}
	for _, tt := range tests {
		if got := Grade(tt.input, ans).Correct; got != tt.want {
			t.Errorf("Grade(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	ans.Ordered = false
	if !Grade("Eb Bb Ab", ans).Correct {
		t.Error("lenient grading should ignore accidental order")
	}
}

func TestGrade_EmptySignature(t *testing.T) {
	ans := Answer{Sequence: true}
	for _, in := range []string{"", "none", "(none)", "NONE", "-"} {
		if !Grade(in, ans).Correct {
			t.Errorf("Grade(%q) for key of C should be correct", in)
		}
	}
	if Grade("F#", ans).Correct {
		t.Error("F# is not the signature of C")
	}
}

func TestGrade_SingleText(t *testing.T) {
	ans := Answer{Text: "Dorian"}
	if !Grade(" Dorian ", ans).Correct {
		t.Error("trimmed exact match should be correct")
	}
	if Grade("dorian", ans).Correct {
		t.Error("single-string answers are compared verbatim")
	}
	if Grade("", ans).Correct {
		t.Error("empty input should be incorrect")
	}
}

func TestGrade_Messages(t *testing.T) {
	ans := Answer{Sequence: true, Notes: []string{"C", "E", "G"}}

	v := Grade("C E G", ans)
	if v.Message != "correct" {
		t.Errorf("Message = %q, want %q", v.Message, "correct")
	}

	v = Grade("C D# G", ans)
	if v.Message != "incorrect, expected: C E G" {
		t.Errorf("Message = %q", v.Message)
	}
	if v.Expected != "C E G" {
		t.Errorf("Expected = %q", v.Expected)
	}

	v = Grade("F#", Answer{Sequence: true})
	if v.Expected != NoAccidentals {
		t.Errorf("Expected = %q, want %q", v.Expected, NoAccidentals)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(string(m))
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %q, %v", m, got, err)
		}
	}
	if got, err := ParseMode("SCALENAME"); err != nil || got != ModeScaleName {
		t.Errorf("ParseMode should be case-insensitive, got %q, %v", got, err)
	}
	if _, err := ParseMode("intervals"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestModeIsChoice(t *testing.T) {
	choice := map[Mode]bool{
		ModeChordInput:  false,
		ModeChordChoice: true,
		ModeScaleName:   true,
		ModeScaleNotes:  false,
		ModeKeySigToKey: true,
		ModeKeyToKeySig: false,
	}
	for m, want := range choice {
		if m.IsChoice() != want {
			t.Errorf("%s.IsChoice() = %v, want %v", m, m.IsChoice(), want)
		}
	}
}
