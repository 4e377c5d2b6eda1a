// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/wavelod/engine"
	wavfmt "github.com/ik5/wavelod/formats/wav"
)

func TestParseFlagsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags([]string{"take1.wav"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "take1.wav", cfg.path)
	assert.Equal(t, engine.DefaultMaxPoints, cfg.maxPoints)
	assert.Zero(t, cfg.rate)
	assert.False(t, cfg.trueTime)
	assert.False(t, cfg.headless)
	assert.Equal(t, "info", cfg.logLevel)
	assert.Equal(t, "clip.wav", cfg.out)
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags([]string{
		"-max-points", "1000",
		"-rate", "8000",
		"-true-time",
		"-log-level", "debug",
		"-profile", "mem",
		"-export", "1.5:2.25",
		"-out", "cut.wav",
		"in.flac",
	}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.maxPoints)
	assert.Equal(t, 8000, cfg.rate)
	assert.True(t, cfg.trueTime)
	assert.Equal(t, "debug", cfg.logLevel)
	assert.Equal(t, "mem", cfg.profile)
	assert.InDelta(t, 1.5, cfg.exportFrom, 1e-12)
	assert.InDelta(t, 2.25, cfg.exportTo, 1e-12)
	assert.Equal(t, "cut.wav", cfg.out)
	assert.Equal(t, "in.flac", cfg.path)
}

func TestParseFlagsErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"no file", nil},
		{"two files", []string{"a.wav", "b.wav"}},
		{"zero max points", []string{"-max-points", "0", "a.wav"}},
		{"negative rate", []string{"-rate", "-1", "a.wav"}},
		{"unknown profile", []string{"-profile", "block", "a.wav"}},
		{"bad range", []string{"-export", "1-2", "a.wav"}},
		{"empty range", []string{"-export", "2:1", "a.wav"}},
		{"bad number", []string{"-export", "x:1", "a.wav"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseFlags(tt.args, io.Discard)
			assert.ErrorIs(t, err, errUsage)
		})
	}
}

func TestParseFlagsHelp(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	_, err := parseFlags([]string{"-h"}, &out)

	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, out.String(), "usage: wavelod")
}

// writeTone writes one second of a 8 kHz mono WAV.
func writeTone(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	samples := make([]int16, 8000)
	for i := range samples {
		samples[i] = int16(i%200*100 - 10000)
	}
	require.NoError(t, wavfmt.WriteWAV16(f, 8000, samples))
	require.NoError(t, f.Close())

	return path
}

func TestRunHeadless(t *testing.T) {
	t.Parallel()

	path := writeTone(t)

	var out bytes.Buffer
	err := run(context.Background(), config{
		path:      path,
		maxPoints: 500,
		headless:  true,
		logLevel:  "error",
	}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "title: tone")
	assert.Contains(t, out.String(), "duration: 1.000s")
	assert.Contains(t, out.String(), "sample rate: 8000 Hz")
	assert.Contains(t, out.String(), "points: 500")
	assert.Contains(t, out.String(), "stride: 16")
}

func TestRunExport(t *testing.T) {
	t.Parallel()

	path := writeTone(t)
	clip := filepath.Join(t.TempDir(), "clip.wav")

	var out bytes.Buffer
	err := run(context.Background(), config{
		path:       path,
		maxPoints:  500,
		logLevel:   "error",
		export:     "0.25:0.5",
		exportFrom: 0.25,
		exportTo:   0.5,
		out:        clip,
	}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "wrote "+clip)

	f, err := os.Open(clip)
	require.NoError(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, 2000, buf.NumFrames())
	assert.Equal(t, 8000, int(dec.SampleRate))
}

func TestRunMissingFile(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), config{
		path:      filepath.Join(t.TempDir(), "missing.wav"),
		maxPoints: 500,
		headless:  true,
		logLevel:  "error",
	}, io.Discard)

	assert.ErrorIs(t, err, engine.ErrAudioLoad)
}
