// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

const (
	collectChunkFrames = 4096
	maxEmptyReads      = 64
)

// Buffer is a fully decoded PCM sample: one float32 slice per channel, all of
// the same length, at a fixed sample rate. A Buffer is never modified after
// construction, so it can be shared by any number of readers.
type Buffer struct {
	sampleRate int
	data       [][]float32
}

// NewBuffer wraps planar channel data. Every channel must have the same
// number of frames. The slices are owned by the Buffer from now on.
func NewBuffer(sampleRate int, channels [][]float32) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidBuffer, sampleRate)
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("%w: no channels", ErrInvalidBuffer)
	}

	frames := len(channels[0])
	for c, ch := range channels {
		if len(ch) != frames {
			return nil, fmt.Errorf("%w: channel %d has %d frames, want %d",
				ErrInvalidBuffer, c, len(ch), frames)
		}
	}

	return &Buffer{sampleRate: sampleRate, data: channels}, nil
}

func (b *Buffer) SampleRate() int { return b.sampleRate }
func (b *Buffer) Channels() int   { return len(b.data) }
func (b *Buffer) Frames() int     { return len(b.data[0]) }

// Duration in seconds.
func (b *Buffer) Duration() float64 {
	return float64(b.Frames()) / float64(b.sampleRate)
}

// Channel returns the samples of channel c. Callers must not write to it.
func (b *Buffer) Channel(c int) []float32 {
	return b.data[c]
}

// Collect reads src until io.EOF and returns its content as a Buffer.
// src is closed before returning.
func Collect(src Source) (*Buffer, error) {
	defer src.Close()

	channels := src.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidDstSize, channels)
	}

	var interleaved []float32
	chunk := make([]float32, collectChunkFrames*channels)
	empty := 0

	for {
		n, err := src.ReadSamples(chunk)
		if n > 0 {
			interleaved = append(interleaved, chunk[:n]...)
			empty = 0
		} else if err == nil {
			empty++
			if empty >= maxEmptyReads {
				return nil, fmt.Errorf("collect: %w", io.ErrNoProgress)
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("collect: %w", err)
		}
	}

	frames := len(interleaved) / channels
	if frames == 0 {
		return nil, ErrEmptySource
	}

	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}
	for f := range frames {
		base := f * channels
		for c := range channels {
			data[c][f] = interleaved[base+c]
		}
	}

	return NewBuffer(src.SampleRate(), data)
}
