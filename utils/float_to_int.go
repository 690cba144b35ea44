// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 clamps x to [-1, 1] and scales it to signed 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1.0 from overflowing
	return int16(x * 32767.0)
}

// Float32ToUint16 maps x in [-1, 1] onto the full unsigned 16-bit range,
// so -1 becomes 0 and +1 becomes 65535.
func Float32ToUint16(x float32) uint16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return uint16(math.Round((float64(x) + 1) * 32767.5))
}

// UnsignedToFloat32 converts an unsigned sample of the given bit depth
// (8 or 16) to a float centred on the unsigned midpoint. The result is in
// [-1, 1).
func UnsignedToFloat32(s uint16, bitDepth int) float32 {
	if bitDepth <= 8 {
		return (float32(s) - 128) / 128
	}

	return (float32(s) - 32768) / 32768
}
