// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC audio with github.com/mewkiz/flac.
//
// Each FLAC frame carries one subframe per channel; the Source interleaves
// them and scales by the stream's bit depth to [-1.0, 1.0]:
//
//	src, err := flac.Decoder{}.Decode(file)
//	if errors.Is(err, flac.ErrNotFlacFile) {
//	    // not FLAC
//	}
//	samples, err := audio.Collect(ctx, audio.NewMonoMixer(src), 4096)
package flac
