// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Both directions go through github.com/go-audio/wav. The decoder accepts
// integer PCM at 8, 16, 24 or 32 bits (plain or WAVE_FORMAT_EXTENSIBLE) and
// any channel count; IEEE float and compressed files are rejected.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples come back interleaved, normalized to [-1.0, 1.0]. Readers that
// cannot seek are buffered into memory first.
//
// # Writing WAV Files
//
// WriteWAV16 writes mono 16-bit PCM. The encoder patches the header sizes
// when it finishes, so the destination has to be an io.WriteSeeker such as
// an *os.File:
//
//	file, _ := os.Create("clip.wav")
//	defer file.Close()
//	err := wav.WriteWAV16(file, 8000, samples)
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrUnsupportedEncoding: float or compressed data
//   - ErrUnsupportedBitDepth: a depth other than 8, 16, 24 or 32
//   - ErrUnsupportedWavLayout: no usable format chunk
package wav
