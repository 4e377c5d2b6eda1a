// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio with github.com/jfreymuth/oggvorbis.
//
// The decoder already yields float32 samples, so the Source only regroups
// them into whole interleaved frames:
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, vorbis.ErrNotVorbisFile)
//	}
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// Reads shorter than one frame return no samples.
package vorbis
