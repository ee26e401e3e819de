package quiz

import (
	"fmt"
	"strings"
)

// ValidationError describes why a generated question is malformed.
type ValidationError struct {
	Mode      Mode
	Message   string
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question %q: %s", e.Mode, e.Message)
}

// Validate checks the structural invariants of a question: a prompt, a
// non-empty answer and, for multiple choice, four distinct options with the
// answer present exactly once.
func Validate(q *Question) *ValidationError {
	if strings.TrimSpace(q.Prompt) == "" {
		return &ValidationError{Mode: q.Mode, Message: "prompt is empty", Retryable: true}
	}
	if !q.Answer.Sequence && q.Answer.Text == "" {
		return &ValidationError{Mode: q.Mode, Message: "answer is empty"}
	}
	if q.Format != FormatMultipleChoice {
		if len(q.Choices) != 0 {
			return &ValidationError{Mode: q.Mode, Message: "text question carries choices"}
		}
		return nil
	}

	if len(q.Choices) != ChoiceCount {
		return &ValidationError{
			Mode:      q.Mode,
			Message:   fmt.Sprintf("multiple choice must have exactly %d choices, got %d", ChoiceCount, len(q.Choices)),
			Retryable: true,
		}
	}
	seen := make(map[string]bool, ChoiceCount)
	hits := 0
	want := q.Answer.String()
	for _, c := range q.Choices {
		if c == "" {
			return &ValidationError{Mode: q.Mode, Message: "empty choice", Retryable: true}
		}
		if seen[c] {
			return &ValidationError{Mode: q.Mode, Message: fmt.Sprintf("duplicate choice %q", c), Retryable: true}
		}
		seen[c] = true
		if c == want {
			hits++
		}
	}
	if hits != 1 {
		return &ValidationError{Mode: q.Mode, Message: fmt.Sprintf("answer %q appears %d times in choices", want, hits), Retryable: true}
	}
	return nil
}
