// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/ik5/wavelod/audio"
	"github.com/ik5/wavelod/formats/aiff"
	"github.com/ik5/wavelod/formats/flac"
	"github.com/ik5/wavelod/formats/mp3"
	"github.com/ik5/wavelod/formats/vorbis"
	"github.com/ik5/wavelod/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder under its
// usual file extensions.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("flac", flac.Decoder{})

	return r
}

// FileDecoder loads audio files as mono float64 samples.
type FileDecoder struct {
	registry   *audio.Registry
	targetRate int
	bufSize    int
	logger     *zap.Logger
}

func NewFileDecoder(options ...Option) *FileDecoder {
	d := &FileDecoder{
		bufSize: defaultBufferSize,
		logger:  zap.NewNop(),
	}

	for _, opt := range options {
		opt(d)
	}

	if d.registry == nil {
		d.registry = DefaultRegistry()
	}

	return d
}

// Formats lists the extensions Load accepts.
func (d *FileDecoder) Formats() []string { return d.registry.Formats() }

// Load decodes path and returns its samples mixed down to one channel,
// together with the rate they are at.
func (d *FileDecoder) Load(ctx context.Context, path string) ([]float64, int, error) {
	ext := filepath.Ext(path)

	dec, ok := d.registry.Get(ext)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer f.Close()

	start := time.Now()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer src.Close()

	nativeRate, channels := src.SampleRate(), src.Channels()
	if nativeRate <= 0 || channels <= 0 {
		return nil, 0, fmt.Errorf("%w: bad stream format (%d Hz, %d channels)", ErrDecode, nativeRate, channels)
	}

	var stream audio.Source = audio.NewMonoMixer(src)
	if d.targetRate > 0 && d.targetRate != nativeRate {
		stream = audio.NewResampler(stream, d.targetRate)
	}

	samples, err := audio.Collect(ctx, stream, d.bufSize)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if len(samples) == 0 {
		return nil, 0, fmt.Errorf("%w: no samples", ErrDecode)
	}

	d.logger.Debug("audio decoded",
		zap.String("path", path),
		zap.Int("native_rate", nativeRate),
		zap.Int("rate", stream.SampleRate()),
		zap.Int("channels", channels),
		zap.Int("samples", len(samples)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return samples, stream.SampleRate(), nil
}
