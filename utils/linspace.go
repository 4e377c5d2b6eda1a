// SPDX-License-Identifier: EPL-2.0

package utils

import "gonum.org/v1/gonum/floats"

// Linspace fills dst with len(dst) evenly spaced values over [lo, hi] and
// returns it. A single element is set to lo, an empty dst is returned as is.
func Linspace(dst []float64, lo, hi float64) []float64 {
	switch len(dst) {
	case 0:
		return dst
	case 1:
		dst[0] = lo
		return dst
	}

	return floats.Span(dst, lo, hi)
}
