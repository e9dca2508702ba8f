// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"fmt"
	"math"

	"github.com/ik5/granulizer/audio"
	"github.com/ik5/granulizer/internal/dsp"
)

// Source is a one-shot buffer player.
type Source struct {
	node

	buf     *audio.Buffer
	started bool
	when    float64
	offset  float64
	end     float64
}

func validTime(vs ...float64) bool {
	for _, v := range vs {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Start schedules playback. A source can be started once.
func (s *Source) Start(when, offset, duration float64) error {
	if !validTime(when, offset, duration) {
		return fmt.Errorf("%w: start(%g, %g, %g)", ErrInvalidTime, when, offset, duration)
	}

	s.ctx.mtx.Lock()
	defer s.ctx.mtx.Unlock()

	if s.started {
		return ErrAlreadyStarted
	}

	s.started = true
	s.when = when
	s.offset = offset
	s.end = when + duration

	return nil
}

// Stop moves the end of playback to when, if that is earlier.
func (s *Source) Stop(when float64) error {
	if !validTime(when) {
		return fmt.Errorf("%w: stop(%g)", ErrInvalidTime, when)
	}

	s.ctx.mtx.Lock()
	defer s.ctx.mtx.Unlock()

	if !s.started {
		return ErrNotStarted
	}

	s.end = math.Min(s.end, when)

	return nil
}

func (s *Source) mix(start int64, out []float32) {
	if !s.started || s.buf == nil {
		return
	}

	ch := s.ctx.channels
	frames := len(out) / ch
	if s.ctx.timeOf(start) >= s.end || s.ctx.timeOf(start+int64(frames)) <= s.when {
		return
	}

	rate := float64(s.buf.SampleRate())
	last := float64(s.buf.Frames())
	bufCh := s.buf.Channels()

	for f := range frames {
		t := s.ctx.timeOf(start + int64(f))
		if t < s.when || t >= s.end {
			continue
		}

		pos := (s.offset + t - s.when) * rate
		if pos >= last {
			continue
		}

		for c := range ch {
			out[f*ch+c] += dsp.CubicAt(s.buf.Channel(c%bufCh), pos)
		}
	}
}
