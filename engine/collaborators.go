// SPDX-License-Identifier: EPL-2.0

package engine

import "context"

// AudioDecoder turns a file into mono samples and their sample rate.
type AudioDecoder interface {
	Load(ctx context.Context, path string) (samples []float64, sampleRate int, err error)
}

// Renderer draws a series, replacing whatever it drew before. The slices are
// shared snapshots and must not be modified.
type Renderer interface {
	Plot(times, samples []float64)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(times, samples []float64)

func (f RendererFunc) Plot(times, samples []float64) { f(times, samples) }
