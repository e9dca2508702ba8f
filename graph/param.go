// SPDX-License-Identifier: EPL-2.0

package graph

import "sort"

type eventKind int

const (
	setValue eventKind = iota
	linearRamp
)

type paramEvent struct {
	kind  eventKind
	value float64
	time  float64
}

// Param is an automatable value owned by a node.
//
// Before the first event the intrinsic value applies. A set event holds its
// value from its time on. A linear ramp interpolates from the event before
// it (or from the intrinsic value at time zero) to its own value at its own
// time. After the last event its value is held.
type Param struct {
	ctx          *Context
	defaultValue float64
	events       []paramEvent
}

var _ AudioParam = (*Param)(nil)

func newParam(ctx *Context, v float64) *Param {
	return &Param{ctx: ctx, defaultValue: v}
}

func (p *Param) Value() float64 {
	p.ctx.mtx.Lock()
	defer p.ctx.mtx.Unlock()

	return p.defaultValue
}

func (p *Param) SetValue(v float64) {
	p.ctx.mtx.Lock()
	defer p.ctx.mtx.Unlock()

	p.defaultValue = v
}

func (p *Param) SetValueAtTime(v, t float64) {
	p.insert(paramEvent{kind: setValue, value: v, time: t})
}

func (p *Param) LinearRampToValueAtTime(v, t float64) {
	p.insert(paramEvent{kind: linearRamp, value: v, time: t})
}

// ValueAt evaluates the automation at context time t.
func (p *Param) ValueAt(t float64) float64 {
	p.ctx.mtx.Lock()
	defer p.ctx.mtx.Unlock()

	return p.valueAt(t)
}

// insert keeps events ordered by time; equal times keep insertion order.
func (p *Param) insert(ev paramEvent) {
	p.ctx.mtx.Lock()
	defer p.ctx.mtx.Unlock()

	i := sort.Search(len(p.events), func(i int) bool {
		return p.events[i].time > ev.time
	})

	p.events = append(p.events, paramEvent{})
	copy(p.events[i+1:], p.events[i:])
	p.events[i] = ev
}

func (p *Param) valueAt(t float64) float64 {
	prevT, prevV := 0.0, p.defaultValue

	for _, ev := range p.events {
		if t < ev.time {
			if ev.kind != linearRamp || ev.time <= prevT {
				return prevV
			}

			return prevV + (ev.value-prevV)*(t-prevT)/(ev.time-prevT)
		}

		prevT, prevV = ev.time, ev.value
	}

	return prevV
}
