// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// Signed big-endian PCM at 8, 16, 24 and 32 bits is supported, with any
// channel count and sample rate. AIFF-C (compressed) files are not.
//
//	file, _ := os.Open("audio.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples are interleaved float32 values normalized to [-1.0, 1.0]. Readers
// that cannot seek are buffered into memory before decoding.
//
// # Errors
//
//   - ErrNotAiffFile: the input is not a FORM/AIFF stream
//   - ErrUnsupportedBitDepth: a sample size other than 8, 16, 24 or 32
//   - ErrUnsupportedAiffLayout: the COMM chunk describes no channels
package aiff
