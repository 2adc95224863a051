// SPDX-License-Identifier: EPL-2.0

package utils

// FullScale returns the magnitude that maps to 1.0 for signed PCM of the
// given bit depth; unknown depths are treated as 16-bit.
func FullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// IntToFloat32 normalizes a signed PCM sample into [-1, 1).
func IntToFloat32(v int, bitDepth int) float32 {
	return float32(v) / FullScale(bitDepth)
}

// Int16LEToFloat32 decodes little-endian 16-bit PCM bytes from src into dst
// and returns the number of samples written.
func Int16LEToFloat32(dst []float32, src []byte) int {
	n := min(len(src)/2, len(dst))
	for i := range n {
		v := int16(uint16(src[2*i]) | uint16(src[2*i+1])<<8)
		dst[i] = float32(v) / 32768.0
	}

	return n
}
