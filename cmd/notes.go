package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/fretwise/internal/pitch"
	"github.com/abhisek/fretwise/internal/theory"
)

// parseRoot accepts a note the way a person types it ("bb", "F♯").
func parseRoot(raw string) (string, error) {
	n, ok := pitch.ParseInput(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", pitch.ErrInvalidNote, raw)
	}
	return n, nil
}

// formatNotes joins canonical names, or their display pairs when display
// is set.
func formatNotes(notes []string, display bool) string {
	if !display {
		return strings.Join(notes, " ")
	}
	out := make([]string, len(notes))
	for i, n := range notes {
		d, err := pitch.Display(n)
		if err != nil {
			d = n
		}
		out[i] = d
	}
	return strings.Join(out, " ")
}

func formatFormula(f theory.Formula) string {
	parts := make([]string, len(f))
	for i, o := range f {
		parts[i] = fmt.Sprint(o)
	}
	return strings.Join(parts, " ")
}

// vocabularyError adds the valid names to an unknown-formula error.
func vocabularyError(err error, valid []string) error {
	if errors.Is(err, theory.ErrUnknownFormula) {
		return fmt.Errorf("%w (valid: %s)", err, strings.Join(valid, ", "))
	}
	return err
}

// writeFile creates path and hands it to write, reporting the first error.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
