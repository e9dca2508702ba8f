// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/granulizer/internal/audiotest"
)

func TestSource_StartValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                   string
		when, offset, duration float64
	}{
		{name: "negative offset", offset: -1, duration: 0.6},
		{name: "NaN offset", offset: math.NaN(), duration: 0.6},
		{name: "infinite offset", offset: math.Inf(1), duration: 0.6},
		{name: "negative when", when: -0.1, duration: 0.6},
		{name: "negative duration", duration: -0.6},
	}

	c := newTestContext(t)
	buf := audiotest.ConstantBuffer(100, 1, 10, 1)

	for _, tt := range tests {
		src := c.NewBufferSource(buf)
		if err := src.Start(tt.when, tt.offset, tt.duration); !errors.Is(err, ErrInvalidTime) {
			t.Errorf("%s: Start() error = %v, want ErrInvalidTime", tt.name, err)
		}
	}
}

func TestSource_Lifecycle(t *testing.T) {
	t.Parallel()

	c := newTestContext(t)
	src := c.NewBufferSource(audiotest.ConstantBuffer(100, 1, 10, 1))

	if err := src.Stop(1); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Stop() before Start error = %v, want ErrNotStarted", err)
	}
	if err := src.Start(0, 0, 1); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := src.Start(0, 0, 1); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start() error = %v, want ErrAlreadyStarted", err)
	}
	if err := src.Stop(math.NaN()); !errors.Is(err, ErrInvalidTime) {
		t.Errorf("Stop(NaN) error = %v, want ErrInvalidTime", err)
	}
}

func TestSource_StopTime(t *testing.T) {
	t.Parallel()

	c := newTestContext(t)
	src := c.NewBufferSource(audiotest.ConstantBuffer(100, 1, 1000, 1))
	if err := src.Connect(c.Destination()); err != nil {
		t.Fatal(err)
	}
	if err := src.Start(0, 0, 10); err != nil {
		t.Fatal(err)
	}
	if err := src.Stop(0.25); err != nil {
		t.Fatal(err)
	}

	out := render(t, c, 50)
	if out[24] != 1 {
		t.Errorf("frame 24 = %g, want 1", out[24])
	}
	for i := 25; i < 50; i++ {
		if out[i] != 0 {
			t.Fatalf("frame %d = %g after stop, want 0", i, out[i])
		}
	}
}

func TestSource_DelayedStartAndOffset(t *testing.T) {
	t.Parallel()

	c := newTestContext(t)
	// ramp: sample n holds n/100
	buf := audiotest.Buffer(audiotest.NewMockSource(100, 1, 100, func(frame, _ int) float32 {
		return float32(frame) / 100
	}))

	src := c.NewBufferSource(buf)
	if err := src.Connect(c.Destination()); err != nil {
		t.Fatal(err)
	}
	if err := src.Start(0.2, 0.5, 0.1); err != nil {
		t.Fatal(err)
	}

	out := render(t, c, 40)
	if out[19] != 0 {
		t.Errorf("frame 19 = %g before start, want 0", out[19])
	}
	if !near(float64(out[20]), 0.5) {
		t.Errorf("frame 20 = %g, want 0.5", out[20])
	}
	if !near(float64(out[25]), 0.55) {
		t.Errorf("frame 25 = %g, want 0.55", out[25])
	}
	if out[31] != 0 {
		t.Errorf("frame 31 = %g after duration, want 0", out[31])
	}
}

func TestSource_OffsetPastEndIsSilent(t *testing.T) {
	t.Parallel()

	c := newTestContext(t)
	src := c.NewBufferSource(audiotest.ConstantBuffer(100, 1, 100, 1))
	if err := src.Connect(c.Destination()); err != nil {
		t.Fatal(err)
	}
	if err := src.Start(0, 600, 0.6); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	for i, v := range render(t, c, 60) {
		if v != 0 {
			t.Fatalf("frame %d = %g, want 0", i, v)
		}
	}
}
