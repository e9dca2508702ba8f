// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the resolved configuration.
type Config struct {
	// Asset is a path or URL of the audio file to granulate.
	Asset   string
	Output  Output
	Trigger Trigger
	Log     Log
}

type Output struct {
	SampleRate int
	Channels   int
	Buffer     time.Duration
	// Volume is the master gain.
	Volume float64
}

// Trigger controls the built-in grain trigger: one grain every Interval at
// a random position in [0, MaxPosition) seconds.
type Trigger struct {
	Interval    time.Duration
	MaxPosition float64
	// Seed of the position generator; zero picks a random seed.
	Seed uint64
}

type Log struct {
	Level  string
	Format string
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Output: Output{
			SampleRate: 44100,
			Channels:   2,
			Buffer:     40 * time.Millisecond,
			Volume:     1,
		},
		Trigger: Trigger{
			Interval:    120 * time.Millisecond,
			MaxPosition: 600,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

type hclFile struct {
	Asset   *string     `hcl:"asset,optional"`
	Output  *hclOutput  `hcl:"output,block"`
	Trigger *hclTrigger `hcl:"trigger,block"`
	Log     *hclLog     `hcl:"log,block"`
}

type hclOutput struct {
	SampleRate *int     `hcl:"sample_rate,optional"`
	Channels   *int     `hcl:"channels,optional"`
	Buffer     *string  `hcl:"buffer,optional"`
	Volume     *float64 `hcl:"volume,optional"`
}

type hclTrigger struct {
	Interval    *string  `hcl:"interval,optional"`
	MaxPosition *float64 `hcl:"max_position,optional"`
	Seed        *int64   `hcl:"seed,optional"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return Parse(src, path)
}

// Parse decodes HCL source over the defaults and validates the result.
// filename only labels diagnostics.
func Parse(src []byte, filename string) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: failed to parse %s: %s", ErrInvalidConfig, filename, diags.Error())
	}

	var raw hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: failed to decode %s: %s", ErrInvalidConfig, filename, diags.Error())
	}

	cfg := Default()
	if err := raw.apply(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (f *hclFile) apply(cfg *Config) error {
	set(&cfg.Asset, f.Asset)

	if o := f.Output; o != nil {
		set(&cfg.Output.SampleRate, o.SampleRate)
		set(&cfg.Output.Channels, o.Channels)
		set(&cfg.Output.Volume, o.Volume)

		if err := setDuration(&cfg.Output.Buffer, o.Buffer, "output.buffer"); err != nil {
			return err
		}
	}

	if t := f.Trigger; t != nil {
		set(&cfg.Trigger.MaxPosition, t.MaxPosition)

		if err := setDuration(&cfg.Trigger.Interval, t.Interval, "trigger.interval"); err != nil {
			return err
		}

		if t.Seed != nil {
			if *t.Seed < 0 {
				return fmt.Errorf("%w: trigger.seed must not be negative", ErrInvalidConfig)
			}
			cfg.Trigger.Seed = uint64(*t.Seed)
		}
	}

	if l := f.Log; l != nil {
		set(&cfg.Log.Level, l.Level)
		set(&cfg.Log.Format, l.Format)
	}

	return nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *string, name string) error {
	if v == nil {
		return nil
	}

	d, err := time.ParseDuration(*v)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, name, err)
	}

	*dst = d

	return nil
}

var (
	levels  = []string{"debug", "info", "warn", "error"}
	formats = []string{"text", "json"}
)

// Validate reports the first invalid value.
func (c Config) Validate() error {
	switch {
	case c.Output.SampleRate <= 0:
		return fmt.Errorf("%w: output.sample_rate must be positive", ErrInvalidConfig)
	case c.Output.Channels <= 0:
		return fmt.Errorf("%w: output.channels must be positive", ErrInvalidConfig)
	case c.Output.Buffer < 0:
		return fmt.Errorf("%w: output.buffer must not be negative", ErrInvalidConfig)
	case c.Output.Volume < 0:
		return fmt.Errorf("%w: output.volume must not be negative", ErrInvalidConfig)
	case c.Trigger.Interval <= 0:
		return fmt.Errorf("%w: trigger.interval must be positive", ErrInvalidConfig)
	case c.Trigger.MaxPosition < 0:
		return fmt.Errorf("%w: trigger.max_position must not be negative", ErrInvalidConfig)
	case !slices.Contains(levels, c.Log.Level):
		return fmt.Errorf("%w: log.level %q is not one of %v", ErrInvalidConfig, c.Log.Level, levels)
	case !slices.Contains(formats, c.Log.Format):
		return fmt.Errorf("%w: log.format %q is not one of %v", ErrInvalidConfig, c.Log.Format, formats)
	}

	return nil
}
