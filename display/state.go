// SPDX-License-Identifier: EPL-2.0

package display

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ik5/wavelod/decimate"
)

// Buffer is a read-only snapshot of what should be drawn.
type Buffer struct {
	Times   []float64
	Samples []float64
}

func (b Buffer) Len() int { return len(b.Samples) }

// State pairs the current decimation with the active scale factor.
type State struct {
	raw    decimate.Result
	scale  float64
	scaled []float64
}

// NewState returns an empty state with a scale factor of 1.
func NewState() State {
	return State{scale: 1}
}

// WithResult replaces the decimated series, keeping the scale factor.
func (s State) WithResult(r decimate.Result) State {
	return State{
		raw:    r,
		scale:  s.scale,
		scaled: scale(r.Samples, s.scale),
	}
}

// WithScale applies factor to the current series. On an invalid factor s is
// returned unchanged together with ErrInvalidScale.
func (s State) WithScale(factor float64) (State, error) {
	if err := ValidateScale(factor); err != nil {
		return s, err
	}

	return State{
		raw:    s.raw,
		scale:  factor,
		scaled: scale(s.raw.Samples, factor),
	}, nil
}

// ValidateScale reports whether factor can be used as a scale factor.
func ValidateScale(factor float64) error {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, factor)
	}

	return nil
}

// Current returns the scaled series for rendering.
func (s State) Current() Buffer {
	return Buffer{
		Times:   s.raw.Times,
		Samples: s.scaled,
	}
}

// Raw returns the unscaled decimation.
func (s State) Raw() decimate.Result { return s.raw }

func (s State) Scale() float64 {
	if s.scale == 0 {
		return 1
	}
	return s.scale
}

func (s State) Empty() bool { return len(s.raw.Samples) == 0 }

func scale(src []float64, factor float64) []float64 {
	if len(src) == 0 {
		return nil
	}
	if factor == 0 {
		factor = 1
	}

	return floats.ScaleTo(make([]float64, len(src)), factor, src)
}
