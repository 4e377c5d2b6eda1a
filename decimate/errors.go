// SPDX-License-Identifier: EPL-2.0

package decimate

import "errors"

var (
	// ErrEmptyRange indicates a request whose index range holds no samples.
	ErrEmptyRange = errors.New("empty sample range")
	// ErrInvalidBudget indicates a non-positive point budget.
	ErrInvalidBudget = errors.New("point budget must be positive")
	// ErrInvalidSampleRate indicates AxisSample without a positive sample rate.
	ErrInvalidSampleRate = errors.New("sample axis requires a positive sample rate")
)
