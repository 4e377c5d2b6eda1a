// SPDX-License-Identifier: EPL-2.0

package utils

// Float is a sample type.
type Float interface {
	~float32 | ~float64
}

// ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM. Full scale is
// 32767 in both directions, so -1 maps to -32767.
func ToInt16[F Float](x F) int16 {
	switch {
	case x > 1:
		x = 1
	case x < -1:
		x = -1
	}

	return int16(x * 32767)
}

func Float32ToInt16(x float32) int16 { return ToInt16(x) }

// Float64ToInt16 converts the float64 samples held by a waveform.
func Float64ToInt16(x float64) int16 { return ToInt16(x) }

// PCMScale returns the divisor that maps a signed integer PCM sample of the
// given bit depth into [-1, 1]. Unknown depths fall back to 16-bit.
func PCMScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 1 << 7
	case 16:
		return 1 << 15
	case 24:
		return 1 << 23
	case 32:
		return 1 << 31
	default:
		return 1 << 15
	}
}
