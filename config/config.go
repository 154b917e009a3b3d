// SPDX-License-Identifier: EPL-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/sigwave/signal"
)

const (
	DefaultLogLevel  = "info"
	DefaultOutputDir = "plots"
	DefaultWidth     = 640
	DefaultHeight    = 480
	DefaultFramerate = 11025
)

type Config struct {
	Log struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`

	Output struct {
		Dir    string `yaml:"dir"`
		Prefix string `yaml:"prefix"`
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
	} `yaml:"output"`

	Signals []SignalSpec `yaml:"signals"`
	Waves   []WaveSpec   `yaml:"waves"`
}

// SignalSpec names a sum of sinusoids. A single component gives a plain
// sinusoid.
type SignalSpec struct {
	Name       string          `yaml:"name"`
	Components []ComponentSpec `yaml:"components"`
}

type ComponentSpec struct {
	Kernel    signal.Kernel `yaml:"kernel"`
	Frequency float64       `yaml:"freq"`
	Amplitude *float64      `yaml:"amp"`
	Offset    float64       `yaml:"offset"`
}

// WaveSpec describes one sampled wave. Exactly one of Duration and Periods
// may be set; with neither, the wave spans signal.DefaultPlotPeriods
// periods.
type WaveSpec struct {
	Signal    string   `yaml:"signal"`
	Label     string   `yaml:"label"`
	Framerate float64  `yaml:"framerate"`
	Duration  float64  `yaml:"duration"`
	Periods   float64  `yaml:"periods"`
	Start     float64  `yaml:"start"`
	Normalize *float64 `yaml:"normalize"`
	WAV       string   `yaml:"wav"`
	Parquet   string   `yaml:"parquet"`
}

// LoadConfig reads and validates the YAML file at filename.
func LoadConfig(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes YAML from r, fills in defaults and validates the result.
// Unknown keys are rejected so that typos do not pass silently.
func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var config Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}

	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Output.Width == 0 {
		c.Output.Width = DefaultWidth
	}
	if c.Output.Height == 0 {
		c.Output.Height = DefaultHeight
	}

	for i := range c.Waves {
		w := &c.Waves[i]
		if w.Framerate == 0 {
			w.Framerate = DefaultFramerate
		}
		if w.Label == "" {
			w.Label = w.Signal
		}
	}
}

// Validate checks the config and builds every signal once to catch bad
// parameters before any wave is sampled.
func (c *Config) Validate() error {
	if c.Output.Width < 0 || c.Output.Height < 0 {
		return fmt.Errorf("%w: output size %dx%d", ErrInvalidConfig, c.Output.Width, c.Output.Height)
	}

	seen := make(map[string]bool, len(c.Signals))
	for i, s := range c.Signals {
		if s.Name == "" {
			return fmt.Errorf("%w: signal %d has no name", ErrInvalidConfig, i)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: signal %q declared twice", ErrInvalidConfig, s.Name)
		}
		seen[s.Name] = true

		if _, err := s.Build(); err != nil {
			return fmt.Errorf("%w: signal %q: %w", ErrInvalidConfig, s.Name, err)
		}
	}

	labels := make(map[string]bool, len(c.Waves))
	for i, w := range c.Waves {
		if !seen[w.Signal] {
			return fmt.Errorf("%w: wave %d: %w %q", ErrInvalidConfig, i, ErrUnknownSignal, w.Signal)
		}
		if w.Framerate <= 0 {
			return fmt.Errorf("%w: wave %q: framerate %v", ErrInvalidConfig, w.Label, w.Framerate)
		}
		if w.Duration != 0 && w.Periods != 0 {
			return fmt.Errorf("%w: wave %q sets both duration and periods", ErrInvalidConfig, w.Label)
		}
		if w.Duration < 0 || w.Periods < 0 {
			return fmt.Errorf("%w: wave %q has a negative span", ErrInvalidConfig, w.Label)
		}
		if w.Normalize != nil && *w.Normalize <= 0 {
			return fmt.Errorf("%w: wave %q: normalize peak %v", ErrInvalidConfig, w.Label, *w.Normalize)
		}
		if labels[w.Label] {
			return fmt.Errorf("%w: wave label %q used twice", ErrInvalidConfig, w.Label)
		}
		labels[w.Label] = true
	}

	return nil
}

// Signal builds the signal declared under name.
func (c *Config) Signal(name string) (signal.Signal, error) {
	for _, s := range c.Signals {
		if s.Name == name {
			return s.Build()
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownSignal, name)
}

// Build returns the sinusoid for a single component and a flattened sum
// otherwise. Amplitude defaults to 1 when omitted.
func (s SignalSpec) Build() (signal.Signal, error) {
	if len(s.Components) == 0 {
		return nil, signal.ErrNoOperands
	}

	parts := make([]signal.Signal, len(s.Components))
	for i, c := range s.Components {
		amp := 1.0
		if c.Amplitude != nil {
			amp = *c.Amplitude
		}

		if c.Kernel == 0 {
			return nil, fmt.Errorf("component %d: %w: kernel is required", i, signal.ErrUnknownKernel)
		}

		sin, err := signal.NewSinusoid(c.Frequency, amp, c.Offset, c.Kernel)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		parts[i] = sin
	}

	if len(parts) == 1 {
		return parts[0], nil
	}

	return signal.NewSum(parts...)
}

// Span returns the wave duration in seconds for s: Duration when set,
// otherwise Periods (default signal.DefaultPlotPeriods) times s.Period().
func (w WaveSpec) Span(s signal.Signal) float64 {
	if w.Duration > 0 {
		return w.Duration
	}

	periods := w.Periods
	if periods == 0 {
		periods = signal.DefaultPlotPeriods
	}

	return periods * s.Period()
}
