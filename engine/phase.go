// SPDX-License-Identifier: EPL-2.0

package engine

import "fmt"

// Phase is the Engine lifecycle state.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseLoaded
	PhaseDisplaying
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseLoaded:
		return "loaded"
	case PhaseDisplaying:
		return "displaying"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}
