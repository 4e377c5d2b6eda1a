// SPDX-License-Identifier: EPL-2.0

// Package waveform holds a decoded sample buffer and the time viewport used
// to look at it.
//
// # Waveform
//
// A Waveform is a mono sequence of float64 amplitudes plus its sample rate.
// It is created once per load and never modified afterwards:
//
//	w, err := waveform.New(samples, 44100)
//	if errors.Is(err, waveform.ErrInvalidAudio) {
//	    // empty buffer or non-positive sample rate
//	}
//	fmt.Println(w.Duration()) // len(samples) / 44100 seconds
//
// # Viewport
//
// A Viewport is the visible time range, always clamped to [0, duration], and
// the index range of raw samples it covers:
//
//	var v waveform.Viewport
//	v.ResetToFull(w)
//	if err := v.SetRange(1.5, 2.0); errors.Is(err, waveform.ErrEmptyViewport) {
//	    // nothing visible, v is unchanged
//	}
//	i0, i1 := v.IndexRange() // samples[i0:i1] are visible
//
// Pan and Zoom compute a new requested range from the current one without
// changing the viewport; feed the result back through SetRange.
package waveform
