// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/sigwave/audio"
	"github.com/ik5/sigwave/internal/audiotest"
)

// Example_channelSelector keeps the right channel of a stereo stream.
func Example_channelSelector() {
	src := audiotest.NewSource(8000,
		[]float32{0.1, 0.2, 0.3},
		[]float32{-0.1, -0.2, -0.3},
	)

	right, err := audio.NewChannelSelector(src, 1)
	if err != nil {
		fmt.Println(err)
		return
	}

	buf := make([]float32, 8)
	n, _ := right.ReadSamples(buf)
	fmt.Println(right.Channels(), buf[:n])

	_, err = audio.NewChannelSelector(src, 2)
	fmt.Println(errors.Is(err, audio.ErrChannelOutOfRange))
	// Output:
	// 1 [-0.1 -0.2 -0.3]
	// true
}

// Example_monoMixer averages a 5.1 stream down to one channel.
func Example_monoMixer() {
	src := audiotest.NewConstant(48000, 4, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5)
	mono := audio.NewMonoMixer(src)

	buf := make([]float32, 1)
	n, _ := mono.ReadSamples(buf)

	fmt.Printf("%d -> %d channel(s), first sample %.1f\n", src.Channels(), mono.Channels(), buf[n-1])
	// Output: 6 -> 1 channel(s), first sample 0.5
}

type silentDecoder struct{}

func (silentDecoder) Decode(io.Reader) (audio.Source, error) {
	return audiotest.NewConstant(8000, 10, 0), nil
}

func Example_registry() {
	reg := audio.NewRegistry()
	reg.Register(".RAW", silentDecoder{})

	if _, ok := reg.Get("raw"); ok {
		fmt.Println("raw registered")
	}

	_, err := reg.Lookup("flac")
	fmt.Println(err, errors.Is(err, audio.ErrUnknownFormat))
	fmt.Println(reg.Formats())
	// Output:
	// raw registered
	// unknown audio format: "flac" true
	// [raw]
}

// Example_readLoop drains a source the way every consumer should: use the
// samples first, then look at the error.
func Example_readLoop() {
	src := audiotest.NewSine(16000, 1000, 440)

	buf := make([]float32, 256)
	total := 0
	for {
		n, err := src.ReadSamples(buf)
		total += n

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Println(err)
			return
		}
	}

	fmt.Println("read", total, "samples")
	// Output: read 1000 samples
}
