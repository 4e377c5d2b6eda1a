// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ik5/wavelod/audio"
	"github.com/ik5/wavelod/formats/vorbis"
)

// ExampleDecoder_Decode_errorHandling shows how a bad stream is reported.
func ExampleDecoder_Decode_errorHandling() {
	_, err := vorbis.Decoder{}.Decode(bytes.NewReader([]byte("definitely not audio")))
	if errors.Is(err, vorbis.ErrNotVorbisFile) {
		fmt.Println("rejected")
	}
	// Output: rejected
}

// ExampleDecoder_Decode_waveform loads a file as one mono channel at 8kHz.
func ExampleDecoder_Decode_waveform() {
	f, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := vorbis.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	mono := audio.NewMonoMixer(audio.NewResampler(src, 8000))
	samples, err := audio.Collect(context.Background(), mono, 4096)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d samples, %.1f seconds\n", len(samples), float64(len(samples))/8000)
}
