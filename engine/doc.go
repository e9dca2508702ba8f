// SPDX-License-Identifier: EPL-2.0

// Package engine is the granular synthesis engine.
//
// An Engine holds the encoded bytes of one audio asset. The first call to
// PlayGrain builds the output pipeline (an output context with a master gain
// routed to its destination) and starts decoding; it produces no sound.
// Calls made while decoding is in progress are dropped. Once the buffer is
// ready every call schedules one grain: a 0.6 s slice of the buffer starting
// at the requested position, shaped by a fixed attack-sustain-release
// envelope.
//
//	gain
//	1.0 |      ____________
//	    |     /            \
//	0.0 |____/              \____
//	    now  +0.1      +0.5 +0.6   (stop at +0.7, cleanup after 800 ms)
//
// A failed decode leaves the engine initializing forever; grains are never
// produced and nothing is reported to the caller beyond a log line.
package engine
