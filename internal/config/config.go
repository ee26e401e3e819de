// Package config loads the optional YAML settings file. Every key has a
// default, so a missing file is not an error. The decoded document is
// checked against an embedded JSON Schema before it is applied.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/fretwise/internal/audio"
	"github.com/abhisek/fretwise/internal/logging"
	"github.com/abhisek/fretwise/internal/quiz"
	"github.com/abhisek/fretwise/internal/theory"
)

// EnvPath overrides the default config location.
const EnvPath = "FRETWISE_CONFIG"

//go:embed config.schema.json
var schemaJSON []byte

const schemaURL = "fretwise://config.schema.json"

type Config struct {
	Tuning    []string        `yaml:"tuning"`
	Frets     int             `yaml:"frets"`
	Metronome MetronomeConfig `yaml:"metronome"`
	Quiz      QuizConfig      `yaml:"quiz"`
	Keyboard  KeyboardConfig  `yaml:"keyboard"`
	Log       LogConfig       `yaml:"log"`

	// Path is the file the values came from; empty for defaults.
	Path string `yaml:"-"`
}

type MetronomeConfig struct {
	BPM         int `yaml:"bpm"`
	BeatsPerBar int `yaml:"beats_per_bar"`
}

type QuizConfig struct {
	FeedbackDelay        time.Duration `yaml:"feedback_delay"`
	LenientKeySignatures bool          `yaml:"lenient_key_signatures"`
}

type KeyboardConfig struct {
	StartOctave int    `yaml:"start_octave"`
	Octaves     int    `yaml:"octaves"`
	Waveform    string `yaml:"waveform"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Defaults returns the settings used when no file is present.
func Defaults() *Config {
	return &Config{
		Tuning: append([]string(nil), theory.StandardTuning...),
		Frets:  theory.DefaultFrets,
		Metronome: MetronomeConfig{
			BPM:         audio.DefaultBPM,
			BeatsPerBar: audio.DefaultBeatsPerBar,
		},
		Quiz: QuizConfig{
			FeedbackDelay: quiz.DefaultConfig().FeedbackDelay,
		},
		Keyboard: KeyboardConfig{
			StartOctave: theory.DefaultStartOctave,
			Octaves:     theory.DefaultOctaves,
			Waveform:    string(audio.DefaultWaveform),
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultPath resolves the config file location. Order: $FRETWISE_CONFIG,
// $XDG_CONFIG_HOME/fretwise/config.yaml, ~/.config/fretwise/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "fretwise", "config.yaml"), nil
}

// Load reads path, or the default location when path is empty. A missing
// file yields Defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse validates a YAML document and applies it over Defaults.
func Parse(data []byte) (*Config, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	cfg := Defaults()
	if doc == nil {
		return cfg, nil
	}
	if err := validate(doc); err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// check covers what the schema cannot express.
func (c *Config) check() error {
	if _, err := theory.NewFretboard(c.Tuning, c.Frets); err != nil {
		return fmt.Errorf("fretboard: %w", err)
	}
	if _, err := audio.ParseWaveform(c.Keyboard.Waveform); err != nil {
		return fmt.Errorf("keyboard: %w", err)
	}
	if c.Quiz.FeedbackDelay < 0 {
		return errors.New("quiz: feedback_delay must not be negative")
	}
	return nil
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func schema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// validate round-trips the YAML value through JSON so the validator sees
// plain JSON types.
func validate(doc any) error {
	s, err := schema()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config is not a plain mapping: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("config is not a plain mapping: %w", err)
	}
	if err := s.Validate(inst); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// QuizSettings converts to the engine's settings.
func (c *Config) QuizSettings() quiz.Config {
	q := quiz.DefaultConfig()
	q.FeedbackDelay = c.Quiz.FeedbackDelay
	q.LenientKeySignatures = c.Quiz.LenientKeySignatures
	return q
}

// Fretboard builds the configured neck.
func (c *Config) Fretboard() (theory.Fretboard, error) {
	return theory.NewFretboard(c.Tuning, c.Frets)
}

// KeyboardRange builds the configured keyboard.
func (c *Config) KeyboardRange() theory.Keyboard {
	return theory.NewKeyboard(c.Keyboard.StartOctave, c.Keyboard.Octaves)
}

// Waveform returns the configured oscillator, falling back to the default.
func (c *Config) Waveform() audio.Waveform {
	w, err := audio.ParseWaveform(c.Keyboard.Waveform)
	if err != nil {
		return audio.DefaultWaveform
	}
	return w
}

// Logging converts the log section. Flag values, when set, win.
func (c *Config) Logging(level, file string) logging.Config {
	lc := logging.Config{Level: c.Log.Level, File: c.Log.File, Service: "fretwise"}
	if level != "" {
		lc.Level = level
	}
	if file != "" {
		lc.File = file
	}
	return lc
}
