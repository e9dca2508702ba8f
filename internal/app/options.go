// SPDX-License-Identifier: EPL-2.0

package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/ik5/granulizer/config"
)

var ErrNoAsset = errors.New("no asset given")

// Options are the command-line inputs. Non-empty values override the
// configuration file.
type Options struct {
	ConfigPath string
	Asset      string
	// RenderPath switches to offline rendering into a WAV file.
	RenderPath string
	Duration   time.Duration
	LogLevel   string
	LogFormat  string
}

// Resolve merges the configuration file, if any, with the options.
func (o Options) Resolve() (config.Config, error) {
	cfg := config.Default()
	if o.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(o.ConfigPath); err != nil {
			return config.Config{}, err
		}
	}

	if o.Asset != "" {
		cfg.Asset = o.Asset
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.Log.Format = o.LogFormat
	}

	if cfg.Asset == "" {
		return config.Config{}, ErrNoAsset
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	if o.RenderPath != "" && o.Duration <= 0 {
		return config.Config{}, fmt.Errorf("%w: render duration must be positive", config.ErrInvalidConfig)
	}

	return cfg, nil
}
