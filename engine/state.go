// SPDX-License-Identifier: EPL-2.0

package engine

import "github.com/ik5/granulizer/audio"

// Phase of the engine lifecycle. Phases only move forward.
type Phase int

const (
	Uninitialized Phase = iota
	Initializing
	Ready
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// State is the engine lifecycle state. Buffer is set only when Phase is
// Ready.
type State struct {
	Phase  Phase
	Buffer *audio.Buffer
}

// Event drives a Transition.
type Event interface {
	event()
}

// EventPlayRequested is a PlayGrain call.
type EventPlayRequested struct{}

// EventDecoded carries the decoded asset.
type EventDecoded struct {
	Buffer *audio.Buffer
}

// EventDecodeFailed reports that the asset could not be decoded.
type EventDecodeFailed struct {
	Err error
}

func (EventPlayRequested) event() {}
func (EventDecoded) event()       {}
func (EventDecodeFailed) event()  {}

// Transition is the lifecycle transition function. Pairs it does not list
// leave the state unchanged:
//
//	Uninitialized + PlayRequested -> Initializing
//	Initializing  + Decoded(buf)  -> Ready(buf)
//	Initializing  + DecodeFailed  -> Initializing
func Transition(s State, ev Event) State {
	switch s.Phase {
	case Uninitialized:
		if _, ok := ev.(EventPlayRequested); ok {
			return State{Phase: Initializing}
		}
	case Initializing:
		if e, ok := ev.(EventDecoded); ok && e.Buffer != nil {
			return State{Phase: Ready, Buffer: e.Buffer}
		}
	}

	return s
}
