// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 scales x by 32768, the same full scale the decoders divide
// by, rounds to the nearest step and clamps to the int16 range. Decoded
// 16-bit samples therefore re-encode to the same integer.
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(x) * 32768)
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt16:
		return math.MaxInt16
	case v <= math.MinInt16:
		return math.MinInt16
	}

	return int16(v)
}

// Float32ToInt16Slice converts src into dst, which must be at least len(src) long.
func Float32ToInt16Slice(dst []int, src []float32) {
	for i, x := range src {
		dst[i] = int(Float32ToInt16(x))
	}
}
