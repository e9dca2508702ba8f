// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"math"
	"testing"

	"github.com/ik5/granulizer/audio"
)

const epsilon = 1e-4

func near(a, b float64) bool { return math.Abs(a-b) < epsilon }

// newTestContext is a mono context at 100 Hz so frame n sits at n/100 s.
func newTestContext(t *testing.T) *Context {
	t.Helper()

	c, err := NewContext(Options{
		SampleRate:  100,
		Channels:    1,
		BlockFrames: 16,
		Registry:    audio.NewRegistry(),
	})
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}

	return c
}

func render(t *testing.T, c *Context, frames int) []float32 {
	t.Helper()

	out := make([]float32, frames*c.Channels())
	if err := c.Render(out); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	return out
}
