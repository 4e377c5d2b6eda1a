// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var (
	// ErrInvalidAudio indicates an empty sample buffer or a non-positive sample rate.
	ErrInvalidAudio = errors.New("invalid audio: empty buffer or non-positive sample rate")
	// ErrEmptyViewport indicates a requested range that covers no samples.
	ErrEmptyViewport = errors.New("viewport does not intersect the waveform")
	// ErrNoWaveform indicates a viewport operation before a waveform was attached.
	ErrNoWaveform = errors.New("no waveform loaded")
)
