// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	// ErrAudioLoad wraps every failure of OnLoad.
	ErrAudioLoad = errors.New("audio load failed")
	// ErrNoDecoder indicates OnLoad on an Engine built without a decoder.
	ErrNoDecoder = errors.New("no audio decoder configured")
)
