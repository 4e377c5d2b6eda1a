// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"math"
)

// Waveform is an immutable mono sample buffer.
type Waveform struct {
	samples    []float64
	sampleRate int
}

// New wraps samples recorded at sampleRate. The Waveform retains samples
// without copying; the caller must not modify the slice afterwards.
func New(samples []float64, sampleRate int) (*Waveform, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrInvalidAudio)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidAudio, sampleRate)
	}

	return &Waveform{
		samples:    samples,
		sampleRate: sampleRate,
	}, nil
}

func (w *Waveform) Len() int        { return len(w.samples) }
func (w *Waveform) SampleRate() int { return w.sampleRate }

// Samples returns the raw buffer. It is shared, not copied: treat it as read-only.
func (w *Waveform) Samples() []float64 { return w.samples }

// Duration is len(samples)/sampleRate in seconds.
func (w *Waveform) Duration() float64 {
	return float64(len(w.samples)) / float64(w.sampleRate)
}

// Index maps a time in seconds to floor(t*rate), clamped to [0, Len()].
func (w *Waveform) Index(t float64) int {
	if t <= 0 || math.IsNaN(t) {
		return 0
	}
	if t >= w.Duration() {
		return len(w.samples)
	}

	i := int(math.Floor(t * float64(w.sampleRate)))

	return min(max(i, 0), len(w.samples))
}

// Peak returns the largest absolute amplitude in the buffer.
func (w *Waveform) Peak() float64 {
	var peak float64
	for _, s := range w.samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}

	return peak
}
