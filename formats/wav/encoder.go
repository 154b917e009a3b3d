// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/sigwave/wave"
)

const encodeChunk = 8192

// Encode writes w as a mono 16-bit PCM WAV. Samples are clamped to [-1, 1]
// and the framerate is rounded to whole Hz. The header sizes are patched on
// completion, so out must be seekable.
func Encode(out io.WriteSeeker, w *wave.Wave) error {
	rate := int(math.Round(w.Framerate()))
	if rate < 1 {
		return fmt.Errorf("%w: %v", ErrInvalidFramerate, w.Framerate())
	}

	enc := gowav.NewEncoder(out, rate, 16, 1, formatPCM)

	pcm := w.PCM16()
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: rate},
		SourceBitDepth: 16,
	}

	// The first Write emits the header, so an empty wave still makes one.
	for lo := 0; ; {
		hi := min(lo+encodeChunk, len(pcm))

		buf.Data = buf.Data[:0]
		for _, v := range pcm[lo:hi] {
			buf.Data = append(buf.Data, int(v))
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}

		if hi == len(pcm) {
			break
		}
		lo = hi
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing WAV: %w", err)
	}

	return nil
}
