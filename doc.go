// SPDX-License-Identifier: EPL-2.0

// Package wavelod draws long audio recordings at interactive speed by
// decimating them to a fixed point budget for whatever time range is on
// screen.
//
// A full-resolution mono buffer is kept in memory. Each time the visible
// range changes, only the samples inside it are considered and every
// stride-th one is kept, where stride is the smallest step that fits the
// budget. Zooming in lowers the stride until every sample is drawn.
//
// # Quick Start
//
// The simplest way to view a file is Open:
//
//	eng, err := wavelod.Open(ctx, "take1.wav", engine.WithMaxPoints(50000))
//	if err != nil {
//	    return err
//	}
//	eng.OnViewportChanged(12.0, 12.5)
//	buf := eng.CurrentDisplay() // buf.Times, buf.Samples
//
// For a stream that is already decoded, Overview runs the same pipeline
// once over the whole thing:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	res, rate, err := wavelod.Overview(ctx, src, 0, 2000)
//
// # Packages
//
//   - waveform: the sample buffer and the viewport over it
//   - decimate: stride selection and point picking
//   - display: the immutable series handed to renderers, with amplitude scale
//   - engine: the state machine tying them together, plus a background Dispatcher
//   - loader: file decoding into mono float64 via the audio and formats packages
//   - audio: streaming Source pipeline (resampling, mono mixing, collecting)
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis, formats/flac: decoders
//
// The wavelod command (cmd/wavelod) is a terminal viewer built on these.
package wavelod
