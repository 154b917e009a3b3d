// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams with github.com/hajimehoshi/go-mp3.
//
// The decoder yields 16-bit stereo converted to float32 in [-1, 1]. Mono
// files come out with the same signal in both channels, so reducing to one
// channel with wave.FromSource loses nothing.
//
//	f, _ := os.Open("audio.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, mp3.ErrNotMP3File)
//	}
//	w, err := wave.FromSource(src)
//
// Encoding is not supported.
package mp3
