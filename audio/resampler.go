// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/ik5/granulizer/internal/dsp"
)

// lowPassAlpha is the coefficient of the one-pole filter applied before
// downsampling. It is a rough anti-aliasing stage, not a proper FIR.
const lowPassAlpha = 0.5

// Resample converts b to dstRate using cubic interpolation, keeping the
// channel count and the duration. When dstRate equals the source rate b
// itself is returned.
func Resample(b *Buffer, dstRate int) (*Buffer, error) {
	if dstRate <= 0 {
		return nil, fmt.Errorf("%w: target rate %d", ErrInvalidBuffer, dstRate)
	}
	if dstRate == b.sampleRate {
		return b, nil
	}

	// source frames per output frame
	ratio := float64(b.sampleRate) / float64(dstRate)
	outFrames := max(int(math.Round(float64(b.Frames())/ratio)), 1)

	data := make([][]float32, len(b.data))
	for c, in := range b.data {
		if ratio > 1 {
			in = lowPass(in)
		}

		out := make([]float32, outFrames)
		for i := range out {
			out[i] = dsp.CubicAt(in, float64(i)*ratio)
		}
		data[c] = out
	}

	return NewBuffer(dstRate, data)
}

func lowPass(in []float32) []float32 {
	out := make([]float32, len(in))

	var state float32
	for i, x := range in {
		state = lowPassAlpha*x + (1-lowPassAlpha)*state
		out[i] = state
	}

	return out
}
