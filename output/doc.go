// SPDX-License-Identifier: EPL-2.0

// Package output plays a graph.Context on the system audio device through
// github.com/ebitengine/oto/v3.
//
// The device pulls float32 little-endian frames from a Stream, which renders
// the graph on demand; the graph clock therefore follows the device.
package output
