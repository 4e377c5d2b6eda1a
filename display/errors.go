// SPDX-License-Identifier: EPL-2.0

package display

import "errors"

// ErrInvalidScale indicates a scale factor that is not a finite positive number.
var ErrInvalidScale = errors.New("scale factor must be a finite positive number")
