// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile wraps failures to parse the fLaC signature or STREAMINFO.
	ErrNotFlacFile = errors.New("not a FLAC stream")

	// ErrUnsupportedBitDepth is returned for streams deeper than 32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")

	// ErrChannelMismatch marks a frame whose subframe count disagrees with STREAMINFO.
	ErrChannelMismatch = errors.New("FLAC frame channel count mismatch")
)
