// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"log/slog"
	"time"

	"github.com/ik5/granulizer/graph"
)

// OutputFactory creates the output context on the first PlayGrain.
type OutputFactory func() (graph.AudioContext, error)

// Deferrer runs fn once d has elapsed. *eventloop.Loop implements it.
type Deferrer interface {
	After(d time.Duration, fn func())
}

// ClockSource reports the current time in output context seconds.
type ClockSource interface {
	Now() float64
}

// ClockFunc adapts a function to ClockSource.
type ClockFunc func() float64

func (f ClockFunc) Now() float64 { return f() }

type contextClock struct {
	ctx graph.AudioContext
}

func (c contextClock) Now() float64 { return c.ctx.CurrentTime() }

type Option func(*Engine)

// WithClock overrides the output context clock as the source of "now".
func WithClock(c ClockSource) Option {
	return func(e *Engine) { e.clock = c }
}

// WithMasterVolume sets the master gain once when the pipeline is built.
func WithMasterVolume(v float64) Option {
	return func(e *Engine) {
		e.volume = v
		e.hasVolume = true
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}
