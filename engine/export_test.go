// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"os"
	"path/filepath"
	"testing"

	gowav "github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/wavelod/utils"
	"github.com/ik5/wavelod/waveform"
)

func tempFile(t *testing.T) *os.File {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "clip.wav"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	return f
}

func TestEngine_ExportRange(t *testing.T) {
	t.Parallel()

	samples := make([]float64, 1000)
	for i := range samples {
		samples[i] = float64(i%100)/50 - 1
	}

	e := New(WithMaxPoints(10))
	require.NoError(t, e.SetWave(samples, 1000))
	require.NoError(t, e.SetScaleFactor(2))

	f := tempFile(t)
	require.NoError(t, e.ExportRange(f, 0.2, 0.45))

	_, err := f.Seek(0, 0)
	require.NoError(t, err)

	dec := gowav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)

	assert.Equal(t, 1000, int(dec.SampleRate))
	assert.Equal(t, 16, int(dec.BitDepth))
	require.Equal(t, 250, buf.NumFrames())

	// Raw samples: neither decimated nor scaled.
	for i, got := range buf.Data {
		want := utils.Float64ToInt16(samples[200+i])
		require.Equal(t, int(want), got, "sample %d", i)
	}
}

func TestEngine_ExportRangeClampsToWaveform(t *testing.T) {
	t.Parallel()

	e := New()
	require.NoError(t, e.SetWave(make([]float64, 100), 100))

	f := tempFile(t)
	require.NoError(t, e.ExportRange(f, -5, 0.5))

	_, err := f.Seek(0, 0)
	require.NoError(t, err)

	buf, err := gowav.NewDecoder(f).FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, 50, buf.NumFrames())
}

func TestEngine_ExportRangeErrors(t *testing.T) {
	t.Parallel()

	empty := New()
	assert.ErrorIs(t, empty.ExportRange(tempFile(t), 0, 1), waveform.ErrNoWaveform)

	e := New()
	require.NoError(t, e.SetWave(make([]float64, 100), 100))
	assert.ErrorIs(t, e.ExportRange(tempFile(t), 2, 3), waveform.ErrEmptyViewport)
}

func TestEngine_ViewCopiesViewport(t *testing.T) {
	t.Parallel()

	e := New()
	require.NoError(t, e.SetWave(make([]float64, 100), 100))

	view := e.View()
	require.NoError(t, view.SetRange(0.1, 0.2))

	tMin, tMax := e.Viewport()
	assert.Equal(t, 0.0, tMin)
	assert.Equal(t, 1.0, tMax)
}
