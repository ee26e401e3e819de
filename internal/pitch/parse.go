package pitch

import (
	"regexp"
	"strings"
)

var inputPattern = regexp.MustCompile(`^([A-G])([#B])?$`)

var glyphReplacer = strings.NewReplacer("♯", "#", "♭", "B")

// ParseInput accepts a note typed by a person: surrounding whitespace is
// ignored, letters are case-insensitive and the ♯/♭ glyphs stand in for
// # and b. It returns the canonical sharp name, or false when the text is
// not a recognizable note. It never errors; callers show their own message.
func ParseInput(raw string) (string, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}
	s = glyphReplacer.Replace(s)

	m := inputPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}

	name := m[1]
	switch m[2] {
	case "#":
		name += "#"
	case "B":
		name += "b"
	}

	canon, err := Normalize(name)
	if err != nil {
		return "", false
	}
	return canon, true
}

// SplitNotes splits free-form note text on whitespace and commas, dropping
// empty tokens.
func SplitNotes(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}
