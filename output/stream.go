// SPDX-License-Identifier: EPL-2.0

package output

import (
	"encoding/binary"
	"io"
	"math"
)

// Renderer produces interleaved float32 frames.
type Renderer interface {
	Channels() int
	Render(dst []float32) error
}

// Stream is an io.Reader of float32 little-endian PCM rendered on demand.
type Stream struct {
	r       Renderer
	scratch []float32
}

func NewStream(r Renderer) *Stream {
	return &Stream{r: r}
}

// Read renders as many whole frames as fit in p.
func (s *Stream) Read(p []byte) (int, error) {
	frameBytes := 4 * s.r.Channels()
	frames := len(p) / frameBytes
	if frames == 0 {
		return 0, io.ErrShortBuffer
	}

	n := frames * s.r.Channels()
	if cap(s.scratch) < n {
		s.scratch = make([]float32, n)
	}

	buf := s.scratch[:n]
	if err := s.r.Render(buf); err != nil {
		return 0, err
	}

	for i, v := range buf {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
	}

	return n * 4, nil
}
