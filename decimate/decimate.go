// SPDX-License-Identifier: EPL-2.0

package decimate

import (
	"fmt"

	"github.com/ik5/wavelod/utils"
)

// TimeAxis selects how output times are assigned.
type TimeAxis int

const (
	// AxisViewport spreads the times evenly over [XMin, XMax].
	AxisViewport TimeAxis = iota
	// AxisSample uses each picked sample's own time, (Start+k*Stride)/SampleRate.
	AxisSample
)

func (a TimeAxis) String() string {
	switch a {
	case AxisViewport:
		return "viewport"
	case AxisSample:
		return "sample"
	default:
		return fmt.Sprintf("TimeAxis(%d)", int(a))
	}
}

// Request describes one decimation.
type Request struct {
	Start     int // first visible index, inclusive
	End       int // last visible index, exclusive
	MaxPoints int

	XMin float64
	XMax float64

	Axis       TimeAxis
	SampleRate int
}

// Result is a decimated series. Times and Samples always have the same length.
type Result struct {
	Times   []float64
	Samples []float64

	Start  int // raw index of Samples[0]
	Stride int
}

func (r Result) Len() int { return len(r.Samples) }

// Indices returns the raw sample index of every output point.
func (r Result) Indices() []int {
	idx := make([]int, len(r.Samples))
	for k := range idx {
		idx[k] = r.Start + k*r.Stride
	}

	return idx
}

// Stride returns the decimation factor for visible samples under a budget of
// maxPoints: max(1, ceil(visible/maxPoints)). maxPoints must be positive.
func Stride(visible, maxPoints int) int {
	if visible <= maxPoints {
		return 1
	}

	return (visible + maxPoints - 1) / maxPoints
}

// Count returns how many points a stride over visible samples produces.
func Count(visible, stride int) int {
	if visible <= 0 {
		return 0
	}

	return (visible + stride - 1) / stride
}

// Decimate picks every Stride-th sample of samples[req.Start:req.End].
// The index range is clamped to the buffer first.
func Decimate(samples []float64, req Request) (Result, error) {
	if req.MaxPoints <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidBudget, req.MaxPoints)
	}
	if req.Axis == AxisSample && req.SampleRate <= 0 {
		return Result{}, ErrInvalidSampleRate
	}

	start := min(max(req.Start, 0), len(samples))
	end := min(max(req.End, 0), len(samples))

	visible := end - start
	if visible <= 0 {
		return Result{}, fmt.Errorf("%w: [%d, %d)", ErrEmptyRange, req.Start, req.End)
	}

	stride := Stride(visible, req.MaxPoints)
	n := Count(visible, stride)

	out := make([]float64, n)
	for k := range n {
		out[k] = samples[start+k*stride]
	}

	times := make([]float64, n)
	switch req.Axis {
	case AxisSample:
		rate := float64(req.SampleRate)
		for k := range n {
			times[k] = float64(start+k*stride) / rate
		}
	default:
		utils.Linspace(times, req.XMin, req.XMax)
	}

	return Result{
		Times:   times,
		Samples: out,
		Start:   start,
		Stride:  stride,
	}, nil
}
