// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Remix returns b with exactly channels channels.
//
// Widening repeats the source channels in order (mono becomes dual mono).
// Narrowing averages every source channel k into output channel k%channels,
// so any layout folds down to mono by plain averaging.
func Remix(b *Buffer, channels int) (*Buffer, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidDstSize, channels)
	}

	in := len(b.data)
	if channels == in {
		return b, nil
	}

	data := make([][]float32, channels)

	if channels > in {
		// b is immutable, so the slices can be shared
		for c := range data {
			data[c] = b.data[c%in]
		}

		return NewBuffer(b.sampleRate, data)
	}

	frames := b.Frames()
	counts := make([]int, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}
	for k, src := range b.data {
		dst := data[k%channels]
		counts[k%channels]++
		for f, v := range src {
			dst[f] += v
		}
	}
	for c, dst := range data {
		inv := 1 / float32(counts[c])
		for f := range dst {
			dst[f] *= inv
		}
	}

	return NewBuffer(b.sampleRate, data)
}
