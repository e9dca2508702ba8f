// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"time"

	"github.com/ik5/granulizer/graph"
)

// Envelope timing in seconds and peak amplitude, identical for every grain.
const (
	Attack    = 0.1
	Sustain   = 0.4
	Release   = 0.1
	Amplitude = 1.0

	// Duration is the audible length of a grain.
	Duration = Attack + Sustain + Release
	// StopPadding is how long after the envelope ends the source is stopped.
	StopPadding = 0.1
)

// CleanupDelay is the wall-clock time after which a grain's gain node is
// disconnected from the master gain.
const CleanupDelay = time.Duration(Duration*1000)*time.Millisecond + 200*time.Millisecond

// Grain is one scheduled grain. Times are on the output context clock.
type Grain struct {
	ID       uint64
	Position float64
	Start    float64
	Duration float64
	Stop     float64
	Cleanup  time.Duration

	source graph.BufferSource
	gain   graph.GainNode
}

// Source is the buffer source playing the grain.
func (g *Grain) Source() graph.BufferSource { return g.source }

// Gain is the node carrying the grain's envelope.
func (g *Grain) Gain() graph.GainNode { return g.gain }

// envelope schedules the gain automation of a grain starting at now.
func envelope(p graph.AudioParam, now float64) {
	p.SetValueAtTime(0, now)
	p.LinearRampToValueAtTime(Amplitude, now+Attack)
	p.LinearRampToValueAtTime(Amplitude, now+Attack+Sustain)
	p.LinearRampToValueAtTime(0, now+Duration)
}
