// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the go-audio integer PCM decoders to audio.Source.
package pcm

import (
	"errors"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavelod/utils"
)

// Reader is the part of the go-audio wav and aiff decoders used here.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source converts integer PCM frames to interleaved float32 samples.
type Source struct {
	dec        Reader
	closer     io.Closer
	sampleRate int
	channels   int
	bitDepth   int
	unsigned   bool
	intBuf     *goaudio.IntBuffer
}

// Options describe the stream behind a Reader.
type Options struct {
	SampleRate int
	Channels   int
	BitDepth   int
	// Unsigned marks 8-bit data stored as 0..255 (WAV); it is recentred on 0.
	Unsigned bool
	// Closer, if set, is closed by Close.
	Closer io.Closer
}

func NewSource(dec Reader, opts Options) *Source {
	return &Source{
		dec:        dec,
		closer:     opts.Closer,
		sampleRate: opts.SampleRate,
		channels:   opts.Channels,
		bitDepth:   opts.BitDepth,
		unsigned:   opts.Unsigned && opts.BitDepth == 8,
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BitDepth() int   { return s.bitDepth }

func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	maxVal := utils.PCMScale(s.bitDepth)
	bias := 0
	if s.unsigned {
		bias = 128
	}
	for i := range n {
		dst[i] = float32(s.intBuf.Data[i]-bias) / maxVal
	}

	// A short read means the decoder ran dry; a torn final frame counts too.
	if n < len(dst) && (err == nil || errors.Is(err, io.ErrUnexpectedEOF)) {
		return n, io.EOF
	}

	return n, err
}
