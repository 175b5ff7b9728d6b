// Package config loads kolor settings from YAML files.
//
// A complete file looks like this:
//
//	precision: 2
//	random:
//	  size: 5
//	  hue: [0, 360]
//	  saturation: [0.4, 0.9]
//	  lightness: 0.5
//	  alpha: 1
//	  space: rgb
//	  shuffle: true
//
// Ranges are either a single number or a [min, max] pair. Missing keys keep
// their defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/kolor"
)

// EnvPrecision overrides the precision of a loaded file.
const EnvPrecision = "KOLOR_PRECISION"

// Config is the root configuration structure.
type Config struct {
	Precision kolor.Precision `yaml:"precision"`
	Random    RandomConfig    `yaml:"random"`
}

// RandomConfig holds the defaults of palette generation.
type RandomConfig struct {
	Size       int    `yaml:"size"`
	Hue        Range  `yaml:"hue"`
	Saturation Range  `yaml:"saturation"`
	Lightness  Range  `yaml:"lightness"`
	Alpha      Range  `yaml:"alpha"`
	Space      string `yaml:"space"`
	Shuffle    bool   `yaml:"shuffle"`
}

// Range is a value range written as a single number or a [min, max] pair.
type Range struct {
	Min, Max float64
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Range) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := n.Decode(&v); err != nil {
			return err
		}
		r.Min, r.Max = v, v
		return nil
	case yaml.SequenceNode:
		var v []float64
		if err := n.Decode(&v); err != nil {
			return err
		}
		if len(v) != 2 {
			return fmt.Errorf("line %d: range needs 2 values, got %d", n.Line, len(v))
		}
		r.Min, r.Max = v[0], v[1]
		return nil
	}
	return fmt.Errorf("line %d: range must be a number or a [min, max] pair", n.Line)
}

// MarshalYAML implements yaml.Marshaler.
func (r Range) MarshalYAML() (any, error) {
	if r.Min == r.Max {
		return r.Min, nil
	}
	return []float64{r.Min, r.Max}, nil
}

func (r Range) toKolor() kolor.Range {
	return kolor.Between(r.Min, r.Max)
}

// Default returns the settings kolor uses without a configuration file.
func Default() *Config {
	return &Config{
		Precision: kolor.Auto,
		Random: RandomConfig{
			Size:       1,
			Hue:        Range{0, 360},
			Saturation: Range{0, 1},
			Lightness:  Range{0, 1},
			Alpha:      Range{1, 1},
			Space:      "RGB",
			Shuffle:    true,
		},
	}
}

// Load reads configuration from a YAML file. Environment variables in the
// file are expanded.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse([]byte(os.ExpandEnv(string(data))))
}

// Parse decodes YAML on top of Default, applies environment overrides and
// validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	v, ok := os.LookupEnv(EnvPrecision)
	if !ok {
		return nil
	}
	p, err := kolor.ParsePrecision(v)
	if err != nil {
		return fmt.Errorf("%s: %w", EnvPrecision, err)
	}
	cfg.Precision = p
	return nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	var errs []error
	if !c.Precision.Valid() {
		errs = append(errs, fmt.Errorf("precision must be auto or >= 0, got %d", int(c.Precision)))
	}

	r := &c.Random
	if r.Size < 1 {
		errs = append(errs, fmt.Errorf("random.size must be positive, got %d", r.Size))
	}
	if _, err := kolor.ParseSpace(r.Space); err != nil {
		errs = append(errs, fmt.Errorf("random.space: %w", err))
	}
	for _, f := range []struct {
		name string
		r    Range
	}{
		{"saturation", r.Saturation},
		{"lightness", r.Lightness},
		{"alpha", r.Alpha},
	} {
		if f.r.Min < 0 || f.r.Max > 1 || f.r.Min > f.r.Max {
			errs = append(errs, fmt.Errorf("random.%s must be within [0, 1], got [%g, %g]", f.name, f.r.Min, f.r.Max))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Apply sets the process-wide precision of kolor.
func (c *Config) Apply() {
	kolor.SetPrecision(c.Precision)
}

// RandomOptions returns the random settings as options for kolor.Random.
// Options passed to Random after these take precedence.
func (c *Config) RandomOptions() []kolor.RandomOption {
	r := c.Random
	space, err := kolor.ParseSpace(strings.TrimSpace(r.Space))
	if err != nil {
		space = kolor.SpaceRGB
	}
	return []kolor.RandomOption{
		kolor.WithSize(r.Size),
		kolor.WithHueRange(r.Hue.Min, r.Hue.Max),
		kolor.WithSaturation(r.Saturation.toKolor()),
		kolor.WithLightness(r.Lightness.toKolor()),
		kolor.WithAlpha(r.Alpha.toKolor()),
		kolor.WithSpace(space),
		kolor.WithShuffle(r.Shuffle),
	}
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
