// SPDX-License-Identifier: EPL-2.0

// Package dsp holds the small numeric helpers shared by the decoders, the
// resampler and the renderer: Catmull-Rom interpolation and PCM sample
// conversion.
package dsp
