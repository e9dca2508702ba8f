// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/ik5/granulizer/audio"
)

// Defaults used when Options leaves a field at zero.
const (
	DefaultSampleRate  = 44100
	DefaultChannels    = 2
	DefaultBlockFrames = 128
)

// Options configure a Context.
type Options struct {
	SampleRate  int
	Channels    int
	BlockFrames int
	// Registry resolves the container of data given to DecodeAudioData.
	Registry *audio.Registry
	Logger   *slog.Logger
}

// Context is the software output context.
type Context struct {
	mtx sync.Mutex

	sampleRate  int
	channels    int
	blockFrames int
	frame       int64

	registry *audio.Registry
	log      *slog.Logger
	dest     *Destination
}

var _ AudioContext = (*Context)(nil)

// NewContext creates an output context. A registry is required.
func NewContext(opts Options) (*Context, error) {
	if opts.SampleRate == 0 {
		opts.SampleRate = DefaultSampleRate
	}

	if opts.Channels == 0 {
		opts.Channels = DefaultChannels
	}

	if opts.BlockFrames == 0 {
		opts.BlockFrames = DefaultBlockFrames
	}

	if opts.SampleRate < 0 || opts.Channels < 0 || opts.BlockFrames < 0 {
		return nil, fmt.Errorf("%w: negative value", ErrInvalidOptions)
	}

	if opts.Registry == nil {
		return nil, fmt.Errorf("%w: no decoder registry", ErrInvalidOptions)
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	c := &Context{
		sampleRate:  opts.SampleRate,
		channels:    opts.Channels,
		blockFrames: opts.BlockFrames,
		registry:    opts.Registry,
		log:         opts.Logger.With("component", "graph"),
	}
	c.dest = &Destination{}
	c.dest.node = node{ctx: c, self: c.dest, sink: true}

	return c, nil
}

func (c *Context) SampleRate() int { return c.sampleRate }

// Channels is the number of interleaved channels Render produces.
func (c *Context) Channels() int { return c.channels }

func (c *Context) CurrentTime() float64 {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return c.timeOf(c.frame)
}

func (c *Context) Destination() Node { return c.dest }

func (c *Context) NewGain() GainNode {
	g := &Gain{}
	g.node = node{ctx: c, self: g, sink: true}
	g.gain = newParam(c, 1)

	return g
}

func (c *Context) NewBufferSource(buf *audio.Buffer) BufferSource {
	s := &Source{buf: buf}
	s.node = node{ctx: c, self: s}

	return s
}

// Render fills dst with interleaved frames and advances the clock by
// len(dst)/Channels frames. Output is clamped to [-1, 1].
func (c *Context) Render(dst []float32) error {
	if len(dst)%c.channels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", ErrFrameSize, len(dst), c.channels)
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()

	block := c.blockFrames * c.channels
	for len(dst) > 0 {
		n := min(block, len(dst))
		out := dst[:n]
		clear(out)

		c.dest.mix(c.frame, out)

		for i, v := range out {
			out[i] = float32(math.Max(-1, math.Min(1, float64(v))))
		}

		c.frame += int64(n / c.channels)
		dst = dst[n:]
	}

	return nil
}

// Voices counts the buffer sources currently reachable from the
// destination, started or not.
func (c *Context) Voices() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	seen := map[*node]bool{}
	var walk func(n *node) int
	walk = func(n *node) int {
		if seen[n] {
			return 0
		}
		seen[n] = true

		count := 0
		if _, ok := n.self.(*Source); ok {
			count++
		}

		for _, in := range n.inputs {
			count += walk(in)
		}

		return count
	}

	return walk(&c.dest.node)
}

func (c *Context) timeOf(frame int64) float64 {
	return float64(frame) / float64(c.sampleRate)
}
