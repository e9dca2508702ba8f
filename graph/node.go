// SPDX-License-Identifier: EPL-2.0

package graph

import "slices"

// mixer adds the node's output for the block that starts at context frame
// start into out. Callers hold the context mutex.
type mixer interface {
	mix(start int64, out []float32)
}

type node struct {
	ctx  *Context
	self mixer
	// sink nodes accept inputs.
	sink    bool
	inputs  []*node
	outputs []*node
}

type based interface {
	base() *node
}

func (n *node) base() *node { return n }

// Connect routes n into dst. Connecting twice is a no-op.
func (n *node) Connect(dst Node) error {
	b, ok := dst.(based)
	if !ok || b.base().ctx != n.ctx {
		return ErrForeignNode
	}

	d := b.base()
	if !d.sink || d == n {
		return ErrInvalidConnection
	}

	n.ctx.mtx.Lock()
	defer n.ctx.mtx.Unlock()

	if slices.Contains(n.outputs, d) {
		return nil
	}

	if feeds(d, n) {
		return ErrInvalidConnection
	}

	n.outputs = append(n.outputs, d)
	d.inputs = append(d.inputs, n)

	return nil
}

func (n *node) Disconnect() {
	n.ctx.mtx.Lock()
	defer n.ctx.mtx.Unlock()

	for _, d := range n.outputs {
		d.inputs = slices.DeleteFunc(d.inputs, func(in *node) bool { return in == n })
	}

	n.outputs = nil
}

// feeds reports whether audio from up already reaches down.
func feeds(up, down *node) bool {
	for _, in := range down.inputs {
		if in == up || feeds(up, in) {
			return true
		}
	}

	return false
}

func (n *node) mixInputs(start int64, out []float32) {
	for _, in := range n.inputs {
		in.self.mix(start, out)
	}
}

// Destination sums its inputs into the rendered output.
type Destination struct {
	node
}

// Connect always fails; the destination has no outputs.
func (d *Destination) Connect(Node) error { return ErrInvalidConnection }

func (d *Destination) mix(start int64, out []float32) {
	d.mixInputs(start, out)
}

// Gain scales the sum of its inputs by an automated gain.
type Gain struct {
	node

	gain    *Param
	scratch []float32
}

func (g *Gain) Gain() AudioParam { return g.gain }

func (g *Gain) mix(start int64, out []float32) {
	if len(g.inputs) == 0 {
		return
	}

	if cap(g.scratch) < len(out) {
		g.scratch = make([]float32, len(out))
	}

	buf := g.scratch[:len(out)]
	clear(buf)
	g.mixInputs(start, buf)

	ch := g.ctx.channels
	for f := range len(out) / ch {
		v := float32(g.gain.valueAt(g.ctx.timeOf(start + int64(f))))
		for c := range ch {
			out[f*ch+c] += buf[f*ch+c] * v
		}
	}
}
