// SPDX-License-Identifier: EPL-2.0

package graph

import "github.com/ik5/granulizer/audio"

// Node is a vertex of the mixing graph. Audio flows from a node into every
// node it is connected to.
type Node interface {
	// Connect routes the output of this node into dst.
	Connect(dst Node) error
	// Disconnect removes every outgoing connection of this node.
	Disconnect()
}

// AudioParam is an automatable value. Times are in context seconds.
type AudioParam interface {
	// Value is the value used before the first scheduled event.
	Value() float64
	SetValue(v float64)
	SetValueAtTime(v, t float64)
	// LinearRampToValueAtTime ramps linearly from the previous event to v,
	// reaching it at t.
	LinearRampToValueAtTime(v, t float64)
}

// GainNode scales its summed inputs by its gain parameter.
type GainNode interface {
	Node
	Gain() AudioParam
}

// BufferSource plays a slice of a decoded buffer once.
type BufferSource interface {
	Node
	// Start plays duration seconds of the buffer, beginning offset seconds
	// into it, at context time when.
	Start(when, offset, duration float64) error
	// Stop silences the source at context time when.
	Stop(when float64) error
}

// AudioContext is the output service the granular engine drives: a clock,
// node factories, a destination and an asynchronous decoder.
type AudioContext interface {
	SampleRate() int
	// CurrentTime is the context clock in seconds.
	CurrentTime() float64
	Destination() Node
	NewGain() GainNode
	NewBufferSource(buf *audio.Buffer) BufferSource
	// DecodeAudioData decodes data off the calling goroutine and invokes
	// exactly one of the callbacks.
	DecodeAudioData(data []byte, onSuccess func(*audio.Buffer), onFailure func(error))
}
