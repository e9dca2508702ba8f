// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"bytes"
	"fmt"

	"github.com/ik5/granulizer/audio"
)

// DecodeAudioData decodes data on a new goroutine into a buffer at the
// context's sample rate and channel count, then calls onSuccess or
// onFailure from that goroutine.
func (c *Context) DecodeAudioData(data []byte, onSuccess func(*audio.Buffer), onFailure func(error)) {
	go func() {
		buf, err := c.Decode(data)
		if err != nil {
			c.log.Warn("decode failed", "bytes", len(data), "error", err)

			if onFailure != nil {
				onFailure(err)
			}

			return
		}

		c.log.Debug("decoded",
			"bytes", len(data),
			"frames", buf.Frames(),
			"duration", buf.Duration(),
		)

		if onSuccess != nil {
			onSuccess(buf)
		}
	}()
}

// Decode is the synchronous part of DecodeAudioData.
func (c *Context) Decode(data []byte) (*audio.Buffer, error) {
	format, dec, err := c.registry.Detect(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
	}

	buf, err := audio.Collect(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
	}

	buf, err = audio.Resample(buf, c.sampleRate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	buf, err = audio.Remix(buf, c.channels)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return buf, nil
}
