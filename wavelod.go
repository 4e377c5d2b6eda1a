// SPDX-License-Identifier: EPL-2.0

package wavelod

import (
	"context"
	"fmt"

	"github.com/ik5/wavelod/audio"
	"github.com/ik5/wavelod/decimate"
	"github.com/ik5/wavelod/engine"
	"github.com/ik5/wavelod/loader"
	"github.com/ik5/wavelod/waveform"
)

const overviewBufferSize = 4096

// Open decodes path with the default format registry and returns an engine
// showing the whole file. options are applied after the decoder, so
// engine.WithDecoder overrides it.
//
// Example:
//
//	eng, err := wavelod.Open(ctx, "take1.wav", engine.WithMaxPoints(2000))
//	if err != nil {
//	    return err
//	}
//	eng.OnViewportChanged(10, 12)
//	buf := eng.CurrentDisplay()
func Open(ctx context.Context, path string, options ...engine.Option) (*engine.Engine, error) {
	opts := append([]engine.Option{engine.WithDecoder(loader.NewFileDecoder())}, options...)
	eng := engine.New(opts...)

	if err := eng.OnLoad(ctx, path); err != nil {
		return nil, err
	}

	return eng, nil
}

// Overview folds src to mono, optionally resamples it to targetRate
// (0 keeps the source rate) and decimates the whole stream to at most
// maxPoints points. It returns the series and the rate it was read at.
//
// The pipeline is the same one loader.FileDecoder runs before the engine
// sees a file:
//  1. Average channels to mono
//  2. Resample to targetRate when it differs from the source rate
//  3. Collect every sample
//  4. Pick every stride-th sample, with times spread over [0, duration]
//
// Overview does not close src.
func Overview(ctx context.Context, src audio.Source, targetRate, maxPoints int) (decimate.Result, int, error) {
	var stream audio.Source = audio.NewMonoMixer(src)
	if targetRate > 0 && targetRate != src.SampleRate() {
		stream = audio.NewResampler(stream, targetRate)
	}
	rate := stream.SampleRate()

	samples, err := audio.Collect(ctx, stream, overviewBufferSize)
	if err != nil {
		return decimate.Result{}, rate, fmt.Errorf("reading source: %w", err)
	}

	w, err := waveform.New(samples, rate)
	if err != nil {
		return decimate.Result{}, rate, err
	}

	res, err := decimate.Decimate(w.Samples(), decimate.Request{
		Start:      0,
		End:        w.Len(),
		MaxPoints:  maxPoints,
		XMin:       0,
		XMax:       w.Duration(),
		SampleRate: rate,
	})
	if err != nil {
		return decimate.Result{}, rate, err
	}

	return res, rate, nil
}
