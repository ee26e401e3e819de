package audio

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultBeatsPerBar is common time.
const DefaultBeatsPerBar = 4

// Metronome counts beats and accents the first beat of each bar.
type Metronome struct {
	BPM         int
	BeatsPerBar int
	beat        int
}

// NewMetronome validates the tempo. beatsPerBar below 1 means no accents.
func NewMetronome(bpm, beatsPerBar int) (*Metronome, error) {
	if _, err := Interval(bpm); err != nil {
		return nil, err
	}
	if beatsPerBar < 0 {
		return nil, fmt.Errorf("beats per bar must not be negative, got %d", beatsPerBar)
	}
	return &Metronome{BPM: bpm, BeatsPerBar: beatsPerBar}, nil
}

// Interval is the time between beats.
func (m *Metronome) Interval() time.Duration {
	d, _ := Interval(m.BPM)
	return d
}

// SetBPM changes the tempo, keeping the beat position.
func (m *Metronome) SetBPM(bpm int) error {
	if _, err := Interval(bpm); err != nil {
		return err
	}
	m.BPM = bpm
	return nil
}

// Next advances one beat. It returns the 1-based beat within the bar and
// whether the beat is accented.
func (m *Metronome) Next() (beat int, accent bool) {
	m.beat++
	if m.BeatsPerBar < 1 {
		return m.beat, false
	}
	pos := (m.beat-1)%m.BeatsPerBar + 1
	return pos, pos == 1
}

// Beats is the number of beats counted since the last Reset.
func (m *Metronome) Beats() int { return m.beat }

// Reset starts counting from the top of a bar.
func (m *Metronome) Reset() { m.beat = 0 }

// Run clicks sink once per beat until ctx is done or, when beats > 0, that
// many beats have sounded. The first click is immediate.
func (m *Metronome) Run(ctx context.Context, sink Sink, beats int, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ticker := time.NewTicker(m.Interval())
	defer ticker.Stop()

	logger.Info("metronome started", "bpm", m.BPM, "beats_per_bar", m.BeatsPerBar)
	for {
		_, accent := m.Next()
		if err := sink.Click(accent); err != nil {
			return fmt.Errorf("click: %w", err)
		}
		if beats > 0 && m.Beats() >= beats {
			logger.Info("metronome finished", "beats", m.Beats())
			return nil
		}
		select {
		case <-ctx.Done():
			logger.Info("metronome stopped", "beats", m.Beats())
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
