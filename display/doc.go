// SPDX-License-Identifier: EPL-2.0

// Package display holds the render-ready state derived from a decimated
// series and an amplitude scale factor.
//
// A State is an immutable value. Every change produces a new State, so a
// Buffer handed to a renderer never changes underneath it:
//
//	st := display.NewState()
//	st = st.WithResult(res)         // new decimation, current scale applied
//	st, err := st.WithScale(2.0)    // rescale, no re-decimation
//	buf := st.Current()             // buf.Times, buf.Samples
package display
