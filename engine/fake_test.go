// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"slices"
	"sync"

	"github.com/ik5/granulizer/audio"
	"github.com/ik5/granulizer/graph"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

type automation struct {
	Kind  string
	Value float64
	Time  float64
}

type fakeNode struct {
	ctx     *fakeContext
	outputs []graph.Node
}

func (n *fakeNode) Connect(dst graph.Node) error {
	n.ctx.mu.Lock()
	defer n.ctx.mu.Unlock()

	n.outputs = append(n.outputs, dst)
	return nil
}

func (n *fakeNode) Disconnect() {
	n.ctx.mu.Lock()
	defer n.ctx.mu.Unlock()

	n.outputs = nil
}

func (n *fakeNode) connectedTo(dst graph.Node) bool {
	n.ctx.mu.Lock()
	defer n.ctx.mu.Unlock()

	return slices.Contains(n.outputs, dst)
}

type fakeParam struct {
	value  float64
	events []automation
}

func (p *fakeParam) Value() float64     { return p.value }
func (p *fakeParam) SetValue(v float64) { p.value = v }
func (p *fakeParam) SetValueAtTime(v, t float64) {
	p.events = append(p.events, automation{Kind: "set", Value: v, Time: t})
}
func (p *fakeParam) LinearRampToValueAtTime(v, t float64) {
	p.events = append(p.events, automation{Kind: "ramp", Value: v, Time: t})
}

type fakeGain struct {
	fakeNode
	param *fakeParam
}

func (g *fakeGain) Gain() graph.AudioParam { return g.param }

type fakeSource struct {
	fakeNode
	buf                    *audio.Buffer
	started                bool
	when, offset, duration float64
	stop                   float64
}

func (s *fakeSource) Start(when, offset, duration float64) error {
	for _, v := range []float64{when, offset, duration} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return graph.ErrInvalidTime
		}
	}

	s.started = true
	s.when, s.offset, s.duration = when, offset, duration

	return nil
}

func (s *fakeSource) Stop(when float64) error {
	s.stop = when
	return nil
}

// fakeContext records everything the engine asks of the output. Decoding
// is held until finishDecode or failDecode is called.
type fakeContext struct {
	mu sync.Mutex

	now     float64
	dest    *fakeNode
	gains   []*fakeGain
	sources []*fakeSource

	decodeCalls int
	decodedData []byte
	onSuccess   func(*audio.Buffer)
	onFailure   func(error)
}

func newFakeContext() *fakeContext {
	c := &fakeContext{}
	c.dest = &fakeNode{ctx: c}

	return c
}

func (c *fakeContext) SampleRate() int         { return 44100 }
func (c *fakeContext) CurrentTime() float64    { return c.now }
func (c *fakeContext) Destination() graph.Node { return c.dest }

func (c *fakeContext) NewGain() graph.GainNode {
	g := &fakeGain{fakeNode: fakeNode{ctx: c}, param: &fakeParam{value: 1}}
	c.gains = append(c.gains, g)

	return g
}

func (c *fakeContext) NewBufferSource(buf *audio.Buffer) graph.BufferSource {
	s := &fakeSource{fakeNode: fakeNode{ctx: c}, buf: buf}
	c.sources = append(c.sources, s)

	return s
}

func (c *fakeContext) DecodeAudioData(data []byte, onSuccess func(*audio.Buffer), onFailure func(error)) {
	c.decodeCalls++
	c.decodedData = data
	c.onSuccess = onSuccess
	c.onFailure = onFailure
}

func (c *fakeContext) finishDecode(buf *audio.Buffer) { c.onSuccess(buf) }
func (c *fakeContext) failDecode(err error)           { c.onFailure(err) }

// grainGains are the gain nodes created for grains, the master excluded.
func (c *fakeContext) grainGains() []*fakeGain { return c.gains[1:] }

func (c *fakeContext) startedSources() int {
	n := 0
	for _, s := range c.sources {
		if s.started {
			n++
		}
	}

	return n
}

func factory(c *fakeContext) OutputFactory {
	return func() (graph.AudioContext, error) { return c, nil }
}

var errOpen = errors.New("no audio device")

func failingFactory() (graph.AudioContext, error) { return nil, errOpen }
