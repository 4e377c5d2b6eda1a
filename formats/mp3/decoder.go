// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/wavelod/audio"
	"github.com/ik5/wavelod/utils"
)

// go-mp3 always decodes to 16-bit little-endian stereo.
const (
	outChannels = 2
	outBytes    = 2
)

// mp3Reader is the part of gomp3.Decoder the source reads from.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	channels   int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / outBytes }

func (s *source) ReadSamples(dst []float32) (int, error) {
	bytesNeeded := len(dst) * outBytes
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		return 0, err
	}

	scale := utils.PCMScale(16)
	samples := n / outBytes
	for i := range samples {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.buf[outBytes*i:]))) / scale
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   outChannels,
		buf:        make([]byte, 8192),
	}, nil
}
