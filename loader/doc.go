// SPDX-License-Identifier: EPL-2.0

// Package loader turns audio files into the mono sample slices a waveform
// is built from.
//
// FileDecoder picks a decoder by file extension from an audio.Registry,
// folds the channels to mono, optionally resamples, and drains the stream:
//
//	dec := loader.NewFileDecoder(loader.WithTargetRate(16000))
//	samples, rate, err := dec.Load(ctx, "take1.flac")
//
// It satisfies engine.AudioDecoder. ReadMetadata reads ID3v2 title and
// artist tags for display.
package loader
