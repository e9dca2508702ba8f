// SPDX-License-Identifier: EPL-2.0

package app

import (
	"github.com/ik5/granulizer/audio"
	"github.com/ik5/granulizer/graph"
)

// observedContext reports decode failures to the app; the engine itself
// only logs them.
type observedContext struct {
	*graph.Context
	failed chan error
}

func observe(c *graph.Context) *observedContext {
	return &observedContext{Context: c, failed: make(chan error, 1)}
}

func (c *observedContext) DecodeAudioData(data []byte, onSuccess func(*audio.Buffer), onFailure func(error)) {
	c.Context.DecodeAudioData(data, onSuccess, func(err error) {
		if onFailure != nil {
			onFailure(err)
		}

		select {
		case c.failed <- err:
		default:
		}
	})
}
