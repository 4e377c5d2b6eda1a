// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// writeChunk bounds the int scratch buffer handed to the encoder.
const writeChunk = 8192

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. The encoder seeks
// back to patch the RIFF and data sizes, so w must be seekable; w is not closed.
func WriteWAV16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	enc := wav.NewEncoder(w, sampleRate, 16, 1, formatPCM)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, 0, min(len(samples), writeChunk)),
		SourceBitDepth: 16,
	}

	// At least one Write is needed for the encoder to emit its headers.
	for i := 0; ; {
		end := min(i+writeChunk, len(samples))

		buf.Data = buf.Data[:0]
		for _, s := range samples[i:end] {
			buf.Data = append(buf.Data, int(s))
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing wav samples: %w", err)
		}

		if i = end; i >= len(samples) {
			break
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
