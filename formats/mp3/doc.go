// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so a Source from this package
// reports two channels even for mono files. Fold it with audio.NewMonoMixer:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, mp3.ErrNotMP3File)
//	}
//	samples, err := audio.Collect(ctx, audio.NewMonoMixer(src), 4096)
//
// ID3v2 tags are skipped by the decoder; read them with loader.ReadMetadata.
package mp3
