// SPDX-License-Identifier: EPL-2.0

package dsp

const pcm16Scale = 32768.0

// FloatToPCM16 clamps x to [-1, 1] and scales it to a signed 16-bit sample.
func FloatToPCM16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1.0 inside the int16 range
	return int16(x * 32767.0)
}

// PCM16ToFloat converts a signed 16-bit sample to [-1, 1).
func PCM16ToFloat(v int16) float32 {
	return float32(v) / pcm16Scale
}

// IntToFloat normalises an integer PCM sample of the given bit depth.
// Unknown depths are treated as 16-bit.
func IntToFloat(v int, bitDepth int) float32 {
	var full float32

	switch bitDepth {
	case 8:
		full = 128.0
	case 24:
		full = 8388608.0
	case 32:
		full = 2147483648.0
	default:
		full = pcm16Scale
	}

	return float32(v) / full
}
