// SPDX-License-Identifier: EPL-2.0

// Package engine ties a decoded waveform, its viewport, the decimator and
// the display state together, and tells a Renderer what to draw.
//
// # Lifecycle
//
// An Engine starts in PhaseEmpty. A successful load (OnLoad or SetWave)
// moves it to PhaseLoaded and, once the first decimation is published, to
// PhaseDisplaying. Later viewport and scale events keep it there; a new load
// replaces the waveform and starts again from the full range.
//
//	eng := engine.New(
//	    engine.WithDecoder(loader.NewFileDecoder()),
//	    engine.WithRenderer(plot),
//	    engine.WithMaxPoints(50000),
//	)
//	if err := eng.OnLoad(ctx, "take1.wav"); err != nil {
//	    // errors.Is(err, engine.ErrAudioLoad)
//	}
//	eng.OnViewportChanged(1.0, 1.5)
//	_ = eng.SetScaleFactor(2.0)
//	buf := eng.CurrentDisplay()
//
// # Events
//
// Viewport changes that do not intersect the waveform are ignored: the
// previous display stays on screen and OnViewportChanged returns false.
// Scale changes only rescale the decimated series already on screen.
//
// Every entry point is serialised by a mutex and handled in call order. The
// Renderer is invoked while that mutex is held, so it must not call back into
// the Engine.
//
// # Background decimation
//
// A Dispatcher moves viewport decimation onto a worker goroutine. Only the
// newest request is ever published; requests overtaken while queued or while
// being computed are dropped.
package engine
