// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests.
package audiotest

import (
	"io"
	"math"
)

// Wave returns the value of channel ch at frame i.
type Wave func(i, ch int) float32

// MockSource plays frames computed by a Wave. It satisfies audio.Source
// without importing it, so the audio package can use it too.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // frames per channel in the stream
	pos        int // next frame
	wave       Wave
}

// NewMockSource streams frames values of wave on each of channels.
func NewMockSource(sampleRate, channels, frames int, wave Wave) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		wave:       wave,
	}
}

// NewSilentSource streams zeros.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewSineSource streams a full-scale sine of frequency Hz on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	step := 2 * math.Pi * frequency / float64(sampleRate)
	return NewMockSource(sampleRate, channels, frames, func(i, _ int) float32 {
		return float32(math.Sin(step * float64(i)))
	})
}

// NewRampSource rises linearly from 0 to 1 across frames, the same on
// every channel. Position is easy to read back from a value.
func NewRampSource(sampleRate, channels, frames int) *MockSource {
	last := float32(max(frames-1, 1))
	return NewMockSource(sampleRate, channels, frames, func(i, _ int) float32 {
		return float32(i) / last
	})
}

// NewConstantSource streams value on every channel.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() { m.pos = 0 }

// ReadSamples writes whole frames only and returns io.EOF together with the
// last of them.
func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.pos)
	for f := range n {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.wave(m.pos+f, ch)
		}
	}
	m.pos += n

	if m.pos >= m.frames {
		return n * m.channels, io.EOF
	}

	return n * m.channels, nil
}
