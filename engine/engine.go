// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ik5/wavelod/decimate"
	"github.com/ik5/wavelod/display"
	"github.com/ik5/wavelod/waveform"
)

// Engine is the waveform view state machine.
type Engine struct {
	decoder   AudioDecoder
	renderer  Renderer
	logger    *zap.Logger
	maxPoints int
	axis      decimate.TimeAxis

	mu    sync.Mutex
	wave  *waveform.Waveform
	view  waveform.Viewport
	state display.State
	phase Phase
}

func New(options ...Option) *Engine {
	e := &Engine{
		logger:    zap.NewNop(),
		maxPoints: DefaultMaxPoints,
		state:     display.NewState(),
	}

	for _, option := range options {
		option(e)
	}

	return e
}

// OnLoad decodes path and displays it from the full range. On failure the
// returned error wraps ErrAudioLoad and the decoder's error, and the engine
// keeps whatever it showed before.
func (e *Engine) OnLoad(ctx context.Context, path string) error {
	if e.decoder == nil {
		return fmt.Errorf("%w: %w", ErrAudioLoad, ErrNoDecoder)
	}

	samples, rate, err := e.decoder.Load(ctx, path)
	if err != nil {
		e.logger.Warn("decode failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %s: %w", ErrAudioLoad, path, err)
	}

	if err := e.SetWave(samples, rate); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrAudioLoad, path, err)
	}

	return nil
}

// SetWave displays an already decoded buffer. samples is retained, not
// copied. Invalid audio leaves the engine unchanged.
func (e *Engine) SetWave(samples []float64, sampleRate int) error {
	w, err := waveform.New(samples, sampleRate)
	if err != nil {
		e.logger.Warn("rejected waveform",
			zap.Int("samples", len(samples)),
			zap.Int("sample_rate", sampleRate),
			zap.Error(err))
		return err
	}

	var view waveform.Viewport
	view.ResetToFull(w)
	tMin, tMax := view.Range()
	i0, i1 := view.IndexRange()

	res, err := e.decimate(w, i0, i1, tMin, tMax)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.wave = w
	e.view = view
	e.phase = PhaseLoaded

	e.logger.Info("waveform loaded",
		zap.Int("samples", w.Len()),
		zap.Int("sample_rate", w.SampleRate()),
		zap.Float64("duration", w.Duration()))

	e.publish(res)

	return nil
}

// OnViewportChanged re-decimates for [xMin, xMax]. It returns false, and
// leaves the current display in place, when nothing is loaded or the range
// holds no samples.
func (e *Engine) OnViewportChanged(xMin, xMax float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.plan(e.wave, e.view, xMin, xMax)
	if !ok {
		return false
	}

	e.apply(p)

	return true
}

// SetScaleFactor rescales the current display without re-decimating. An
// invalid factor is rejected and the previous one kept. Before the first
// load the factor is stored for later.
func (e *Engine) SetScaleFactor(factor float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next, err := e.state.WithScale(factor)
	if err != nil {
		e.logger.Warn("rejected scale factor", zap.Float64("factor", factor), zap.Error(err))
		return err
	}
	e.state = next

	if e.phase == PhaseDisplaying {
		e.render()
	}

	return nil
}

// CurrentDisplay returns the snapshot last handed to the renderer.
func (e *Engine) CurrentDisplay() display.Buffer {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.Current()
}

func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.phase
}

// Viewport returns the visible range in seconds.
func (e *Engine) Viewport() (tMin, tMax float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.view.Range()
}

// View returns a copy of the viewport, for computing pan and zoom targets.
func (e *Engine) View() waveform.Viewport {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.view
}

// Duration of the loaded waveform, 0 when empty.
func (e *Engine) Duration() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.wave == nil {
		return 0
	}

	return e.wave.Duration()
}

// SampleRate of the loaded waveform, 0 when empty.
func (e *Engine) SampleRate() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.wave == nil {
		return 0
	}

	return e.wave.SampleRate()
}

func (e *Engine) Scale() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.Scale()
}

// Stride of the current display, 0 when nothing is shown.
func (e *Engine) Stride() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.Raw().Stride
}

func (e *Engine) MaxPoints() int { return e.maxPoints }

// viewPlan is a decimation computed for a waveform, ready to be applied.
type viewPlan struct {
	wave *waveform.Waveform
	xMin float64
	xMax float64
	res  decimate.Result
}

// plan resolves and decimates a viewport request against wave. It touches
// no engine state, so callers may run it without holding e.mu.
func (e *Engine) plan(wave *waveform.Waveform, view waveform.Viewport, xMin, xMax float64) (viewPlan, bool) {
	if wave == nil {
		e.logger.Debug("viewport ignored, nothing loaded")
		return viewPlan{}, false
	}

	tMin, tMax, i0, i1, err := view.Resolve(xMin, xMax)
	if err != nil {
		e.logger.Debug("viewport ignored",
			zap.Float64("x_min", xMin),
			zap.Float64("x_max", xMax),
			zap.Error(err))
		return viewPlan{}, false
	}

	res, err := e.decimate(wave, i0, i1, tMin, tMax)
	if err != nil {
		e.logger.Debug("viewport ignored", zap.Error(err))
		return viewPlan{}, false
	}

	return viewPlan{wave: wave, xMin: xMin, xMax: xMax, res: res}, true
}

// apply publishes p. e.mu must be held.
func (e *Engine) apply(p viewPlan) bool {
	if p.wave != e.wave {
		e.logger.Debug("dropped plan for a replaced waveform")
		return false
	}
	if err := e.view.SetRange(p.xMin, p.xMax); err != nil {
		return false
	}

	e.publish(p.res)

	return true
}

func (e *Engine) decimate(w *waveform.Waveform, i0, i1 int, tMin, tMax float64) (decimate.Result, error) {
	res, err := decimate.Decimate(w.Samples(), decimate.Request{
		Start:      i0,
		End:        i1,
		MaxPoints:  e.maxPoints,
		XMin:       tMin,
		XMax:       tMax,
		Axis:       e.axis,
		SampleRate: w.SampleRate(),
	})
	if err != nil {
		return decimate.Result{}, fmt.Errorf("decimating [%d, %d): %w", i0, i1, err)
	}

	return res, nil
}

// publish replaces the display state and renders. e.mu must be held.
func (e *Engine) publish(res decimate.Result) {
	e.state = e.state.WithResult(res)
	e.phase = PhaseDisplaying

	tMin, tMax := e.view.Range()
	e.logger.Debug("display updated",
		zap.Float64("t_min", tMin),
		zap.Float64("t_max", tMax),
		zap.Int("stride", res.Stride),
		zap.Int("points", res.Len()))

	e.render()
}

func (e *Engine) render() {
	if e.renderer == nil {
		return
	}

	buf := e.state.Current()
	e.renderer.Plot(buf.Times, buf.Samples)
}
