// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float64ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM, rounding
// to the nearest step. 32767 is used for both signs so the range is symmetric.
func Float64ToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(math.Round(x * math.MaxInt16))
}

// FullScale returns the magnitude that maps an integer PCM sample of the
// given bit depth onto [-1, 1]. Unknown depths fall back to 16 bit.
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

// IntToFloat32 converts integer PCM samples of bitDepth bits into dst as
// float32 values in [-1, 1]. It converts min(len(dst), len(src)) samples and
// returns that count.
func IntToFloat32(dst []float32, src []int, bitDepth int) int {
	n := min(len(dst), len(src))
	scale := FullScale(bitDepth)
	for i := range n {
		dst[i] = float32(src[i]) / scale
	}
	return n
}
