// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/granulizer/audio"
	"github.com/ik5/granulizer/internal/dsp"
)

// Encoder writes interleaved float32 frames as a 16-bit PCM WAV file.
// The header sizes are only final after Close.
type Encoder struct {
	enc      *gowav.Encoder
	buf      *goaudio.IntBuffer
	channels int
	frames   int
}

// NewEncoder starts a WAV stream on w. w must be seekable so the header can
// be patched on Close.
func NewEncoder(w io.WriteSeeker, sampleRate, channels int) *Encoder {
	return &Encoder{
		enc: gowav.NewEncoder(w, sampleRate, 16, channels, wavFormatPCM),
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: channels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: 16,
		},
		channels: channels,
	}
}

// Write appends interleaved samples. len(samples) must be a multiple of the
// channel count.
func (e *Encoder) Write(samples []float32) error {
	if len(samples)%e.channels != 0 {
		return audio.ErrInvalidDstSize
	}

	if cap(e.buf.Data) < len(samples) {
		e.buf.Data = make([]int, len(samples))
	}
	e.buf.Data = e.buf.Data[:len(samples)]

	for i, x := range samples {
		e.buf.Data[i] = int(dsp.FloatToPCM16(x))
	}

	if err := e.enc.Write(e.buf); err != nil {
		return fmt.Errorf("writing wav frames: %w", err)
	}
	e.frames += len(samples) / e.channels

	return nil
}

// Frames written so far.
func (e *Encoder) Frames() int { return e.frames }

// Close finalises the header. It does not close the underlying writer.
func (e *Encoder) Close() error {
	if err := e.enc.Close(); err != nil {
		return fmt.Errorf("closing wav: %w", err)
	}

	return nil
}
