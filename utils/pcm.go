// SPDX-License-Identifier: EPL-2.0

package utils

// FullScale returns the magnitude that maps to 1.0 for signed PCM of the
// given bit depth. Only 16 and 24-bit PCM is decoded or encoded; any other
// depth is treated as 16-bit.
func FullScale(bitDepth int) float32 {
	if bitDepth == 24 {
		return 8388608.0
	}
	return 32768.0
}

// PCMToFloat normalizes a signed integer sample into [-1, 1).
func PCMToFloat(v int, bitDepth int) float32 {
	return float32(v) / FullScale(bitDepth)
}

// FloatToPCM clamps x to [-1, 1] and scales it to a signed integer sample.
// The positive peak maps to FullScale-1 so it never overflows the word.
func FloatToPCM(x float32, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int(x * (FullScale(bitDepth) - 1))
}
