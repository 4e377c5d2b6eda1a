// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"go.uber.org/zap"

	"github.com/ik5/wavelod/audio"
)

const defaultBufferSize = 4096

type Option func(*FileDecoder)

// WithRegistry replaces the built-in decoder set.
func WithRegistry(r *audio.Registry) Option {
	return func(d *FileDecoder) {
		if r != nil {
			d.registry = r
		}
	}
}

// WithTargetRate resamples loaded audio to rate Hz. Zero keeps the native rate.
func WithTargetRate(rate int) Option {
	return func(d *FileDecoder) {
		if rate >= 0 {
			d.targetRate = rate
		}
	}
}

// WithBufferSize sets how many samples are read per decoder call.
func WithBufferSize(n int) Option {
	return func(d *FileDecoder) {
		if n > 0 {
			d.bufSize = n
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(d *FileDecoder) {
		if l != nil {
			d.logger = l
		}
	}
}
