// SPDX-License-Identifier: EPL-2.0

// Package graph is a software audio output service: an output context with a
// sample clock, gain nodes with scheduled automation, one-shot buffer
// sources and a destination that sums everything connected to it.
//
// The engine only sees the interfaces declared in api.go. Context is the
// concrete implementation; it produces interleaved float32 frames through
// Render, which a device (see package output) or an offline writer pulls.
//
// The clock only advances when frames are rendered:
//
//	CurrentTime = framesRendered / sampleRate
//
// Node topology and automation are guarded by a single mutex that Render
// holds for a whole block, so changes never land in the middle of one.
package graph
