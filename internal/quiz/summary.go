package quiz

import "time"

// Summary holds the data displayed after a quiz.
type Summary struct {
	Mode     Mode
	Duration time.Duration
	Total    int
	Answered int
	Correct  int
	Accuracy float64
	Results  []Result
}

// BuildSummary creates a Summary from a session in any phase.
func BuildSummary(s Session) *Summary {
	end := s.FinishedAt
	if end.IsZero() {
		end = time.Now()
	}
	var d time.Duration
	if !s.StartedAt.IsZero() {
		d = end.Sub(s.StartedAt)
	}

	var accuracy float64
	if n := len(s.Results); n > 0 {
		accuracy = float64(s.Score) / float64(n)
	}

	results := make([]Result, len(s.Results))
	copy(results, s.Results)

	return &Summary{
		Mode:     s.Mode,
		Duration: d,
		Total:    s.Total,
		Answered: len(s.Results),
		Correct:  s.Score,
		Accuracy: accuracy,
		Results:  results,
	}
}

// Headline is a one-line reaction to the final score.
func (s *Summary) Headline() string {
	switch {
	case s.Answered == 0:
		return "No answers yet"
	case s.Correct == s.Total:
		return "Perfect score!"
	case s.Accuracy >= 0.8:
		return "Great work!"
	case s.Accuracy >= 0.5:
		return "Keep practicing"
	default:
		return "Back to the fretboard"
	}
}
