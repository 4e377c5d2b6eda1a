// SPDX-License-Identifier: EPL-2.0

package loader

import "errors"

var (
	// ErrUnsupportedFormat is returned for extensions with no registered decoder.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrDecode wraps failures to open, decode or drain a file.
	ErrDecode = errors.New("audio decode failed")
)
