// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives behind waveform loading.
//
// A Source yields interleaved float32 samples in [-1.0, 1.0]. Decoders in
// the formats packages produce Sources, and the processors here wrap them:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 16000))
//	samples, err := audio.Collect(ctx, mono, 4096)
//
// The Resampler uses cubic interpolation and a one-pole low-pass when
// downsampling. The MonoMixer averages channels. Collect drains any Source
// into the []float64 a waveform is built from.
//
// # Format Registry
//
// A Registry maps file extensions to decoders. Keys are matched without
// case or a leading dot:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get(".WAV")
//
// # Errors
//
// ReadSamples returns io.EOF once the stream is exhausted, possibly together
// with a final batch of samples. Callers handle n before err.
package audio
