// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/ik5/granulizer/internal/app"
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the options, whether
// the program should exit cleanly (help was requested), or an *ExitError.
func Parse(args []string, output io.Writer) (*app.Options, bool, error) {
	flagSet := flag.NewFlagSet("granulizer", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
granulizer - a granular synthesizer.

Usage:
  granulizer [options] [ASSET]

Arguments:
  ASSET
    Path or http(s) URL of a WAV, AIFF, Ogg Vorbis or MP3 file.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	renderFlag := flagSet.String("render", "", "Render offline into this WAV file instead of playing.")
	durationFlag := flagSet.Duration("duration", 10*time.Second, "Length of an offline render.")
	logLevelFlag := flagSet.String("log-level", "", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "expected at most one ASSET argument"}
	}

	opts := &app.Options{
		ConfigPath: *configFlag,
		Asset:      flagSet.Arg(0),
		RenderPath: *renderFlag,
		Duration:   *durationFlag,
		LogLevel:   strings.ToLower(*logLevelFlag),
		LogFormat:  strings.ToLower(*logFormatFlag),
	}

	if opts.Asset == "" && opts.ConfigPath == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	if opts.LogFormat != "" && !slices.Contains([]string{"text", "json"}, opts.LogFormat) {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	if opts.LogLevel != "" && !slices.Contains([]string{"debug", "info", "warn", "error"}, opts.LogLevel) {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if opts.RenderPath != "" && opts.Duration <= 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid duration: must be positive"}
	}

	return opts, false, nil
}
