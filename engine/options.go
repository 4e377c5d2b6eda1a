// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"go.uber.org/zap"

	"github.com/ik5/wavelod/decimate"
)

// DefaultMaxPoints is the point budget used when none is configured.
const DefaultMaxPoints = 50000

// Option configures an Engine.
type Option func(*Engine)

func WithDecoder(d AudioDecoder) Option {
	return func(e *Engine) { e.decoder = d }
}

func WithRenderer(r Renderer) Option {
	return func(e *Engine) { e.renderer = r }
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMaxPoints sets the point budget. Values below 1 are raised to 1.
func WithMaxPoints(n int) Option {
	return func(e *Engine) { e.maxPoints = max(n, 1) }
}

// WithTimeAxis selects how display times are assigned, see decimate.TimeAxis.
func WithTimeAxis(a decimate.TimeAxis) Option {
	return func(e *Engine) { e.axis = a }
}
