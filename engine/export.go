// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/ik5/wavelod/formats/wav"
	"github.com/ik5/wavelod/utils"
	"github.com/ik5/wavelod/waveform"
)

// ExportRange writes the raw samples inside [xMin, xMax] as a mono 16-bit
// WAV. The output is neither decimated nor scaled.
func (e *Engine) ExportRange(w io.WriteSeeker, xMin, xMax float64) error {
	e.mu.Lock()
	wave, view := e.wave, e.view
	e.mu.Unlock()

	if wave == nil {
		return waveform.ErrNoWaveform
	}

	_, _, i0, i1, err := view.Resolve(xMin, xMax)
	if err != nil {
		return fmt.Errorf("export [%g, %g]: %w", xMin, xMax, err)
	}

	raw := wave.Samples()[i0:i1]
	pcm := make([]int16, len(raw))
	for i, s := range raw {
		pcm[i] = utils.Float64ToInt16(s)
	}

	if err := wav.WriteWAV16(w, wave.SampleRate(), pcm); err != nil {
		return fmt.Errorf("export [%g, %g]: %w", xMin, xMax, err)
	}

	e.logger.Info("exported range",
		zap.Float64("x_min", xMin),
		zap.Float64("x_max", xMax),
		zap.Int("samples", len(pcm)))

	return nil
}
