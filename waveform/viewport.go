// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"math"
)

// Viewport is the visible time range over a Waveform. The zero value has
// no waveform attached; call ResetToFull first.
type Viewport struct {
	wave *Waveform
	tMin float64
	tMax float64
}

// ResetToFull attaches w and shows all of it.
func (v *Viewport) ResetToFull(w *Waveform) {
	v.wave = w
	v.tMin = 0
	v.tMax = w.Duration()
}

// SetRange clamps [xMin, xMax] to the waveform duration and makes it the
// visible range. A range that ends up empty, or that covers no samples,
// returns ErrEmptyViewport and leaves v untouched.
func (v *Viewport) SetRange(xMin, xMax float64) error {
	tMin, tMax, err := v.clamp(xMin, xMax)
	if err != nil {
		return err
	}

	v.tMin, v.tMax = tMin, tMax

	return nil
}

// Resolve reports what SetRange would do without applying it: the clamped
// range and its index range, or ErrEmptyViewport.
func (v *Viewport) Resolve(xMin, xMax float64) (tMin, tMax float64, i0, i1 int, err error) {
	tMin, tMax, err = v.clamp(xMin, xMax)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	i0, i1 = v.wave.Index(tMin), v.wave.Index(tMax)

	return tMin, tMax, i0, i1, nil
}

func (v *Viewport) clamp(xMin, xMax float64) (float64, float64, error) {
	if v.wave == nil {
		return 0, 0, ErrNoWaveform
	}
	if math.IsNaN(xMin) || math.IsNaN(xMax) {
		return 0, 0, fmt.Errorf("%w: NaN bound", ErrEmptyViewport)
	}

	tMin := math.Max(xMin, 0)
	tMax := math.Min(xMax, v.wave.Duration())
	if tMax <= tMin {
		return 0, 0, fmt.Errorf("%w: [%g, %g]", ErrEmptyViewport, xMin, xMax)
	}
	if v.wave.Index(tMax)-v.wave.Index(tMin) <= 0 {
		return 0, 0, fmt.Errorf("%w: [%g, %g] holds no samples", ErrEmptyViewport, xMin, xMax)
	}

	return tMin, tMax, nil
}

// Range returns the visible bounds in seconds.
func (v *Viewport) Range() (tMin, tMax float64) { return v.tMin, v.tMax }

// Span is the visible width in seconds.
func (v *Viewport) Span() float64 { return v.tMax - v.tMin }

// IndexRange returns [i0, i1), the raw sample indices inside the viewport.
func (v *Viewport) IndexRange() (i0, i1 int) {
	if v.wave == nil {
		return 0, 0
	}

	return v.wave.Index(v.tMin), v.wave.Index(v.tMax)
}

// Pan returns the range shifted by fraction of the current span (negative
// moves left), kept inside [0, duration] without shrinking.
func (v *Viewport) Pan(fraction float64) (xMin, xMax float64) {
	span := v.Span()
	shift := span * fraction
	xMin, xMax = v.tMin+shift, v.tMax+shift

	if v.wave == nil {
		return xMin, xMax
	}
	if xMin < 0 {
		xMin, xMax = 0, span
	}
	if d := v.wave.Duration(); xMax > d {
		xMin, xMax = math.Max(d-span, 0), d
	}

	return xMin, xMax
}

// Zoom returns the range scaled around its centre. factor > 1 zooms in.
// The result never narrows below one sample period.
func (v *Viewport) Zoom(factor float64) (xMin, xMax float64) {
	if factor <= 0 || math.IsNaN(factor) {
		return v.tMin, v.tMax
	}

	centre := (v.tMin + v.tMax) / 2
	half := v.Span() / factor / 2

	if v.wave != nil {
		minHalf := 1 / float64(v.wave.SampleRate())
		half = math.Max(half, minHalf)
	}

	return centre - half, centre + half
}
