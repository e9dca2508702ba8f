// SPDX-License-Identifier: EPL-2.0

package dsp

// Cubic returns the Catmull-Rom interpolation between y1 and y2.
// y0 and y3 are the outer neighbours, x is the fractional position in [0, 1].
func Cubic(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}

// CubicAt samples s at the fractional index pos. Indexes outside of s are
// clamped to the nearest edge sample.
func CubicAt(s []float32, pos float64) float32 {
	if len(s) == 0 {
		return 0
	}

	i := int(pos)
	if pos < 0 {
		i--
	}
	x := float32(pos - float64(i))

	return Cubic(at(s, i-1), at(s, i), at(s, i+1), at(s, i+2), x)
}

// Lerp is a linear interpolation from a to b at fraction x.
func Lerp(a, b, x float64) float64 {
	return a + (b-a)*x
}

func at(s []float32, i int) float32 {
	switch {
	case i < 0:
		return s[0]
	case i >= len(s):
		return s[len(s)-1]
	default:
		return s[i]
	}
}
