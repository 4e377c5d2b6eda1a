// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"fmt"
	"io"
)

// Collect drains src into a float64 slice, reading bufferSize values at a
// time. The stream is read as-is: wrap it in a MonoMixer (and a Resampler)
// first to get one channel at a chosen rate. ctx is checked between reads so
// long decodes can be abandoned.
//
// Example:
//
//	src, _ := decoder.Decode(file)
//	mono, err := audio.Collect(ctx, audio.NewMonoMixer(src), 4096)
func Collect(ctx context.Context, src Source, bufferSize int) ([]float64, error) {
	if bufferSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBufferSize, bufferSize)
	}

	// Resamplers reject reads that split a frame.
	if ch := src.Channels(); ch > 1 && bufferSize%ch != 0 {
		bufferSize += ch - bufferSize%ch
	}

	buf := make([]float32, bufferSize)
	out := make([]float64, 0, bufferSize)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			out = append(out, float64(v))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		if n == 0 {
			// A source that makes no progress without reporting EOF is done.
			break
		}
	}

	return out, nil
}
