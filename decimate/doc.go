// SPDX-License-Identifier: EPL-2.0

// Package decimate reduces a range of raw samples to a bounded number of
// display points.
//
// # Algorithm
//
// For a visible range of n samples and a point budget m, Decimate keeps
// every stride-th sample starting at the first visible one:
//
//	stride = max(1, ceil(n / m))
//
// which never yields more than m points. When n <= m the stride is 1 and the
// visible slice is returned verbatim. When n is an exact multiple of m the
// stride equals n / m.
//
// The picking is naive: no min/max envelope is computed, so short transients
// that fall between picked samples do not appear in the output.
//
// # Time axis
//
// With AxisViewport (the default) the output times are spread evenly over
// the requested viewport bounds, regardless of which samples were picked.
// This relabels the time axis slightly at large strides. AxisSample instead
// reports the true time of every picked sample:
//
//	res, err := decimate.Decimate(samples, decimate.Request{
//	    Start:      i0,
//	    End:        i1,
//	    MaxPoints:  50000,
//	    XMin:       tMin,
//	    XMax:       tMax,
//	    Axis:       decimate.AxisSample,
//	    SampleRate: 44100,
//	})
//
// Decimate is a pure function: it never modifies samples and allocates fresh
// output slices on every call.
package decimate
