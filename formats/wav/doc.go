// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes WAV files on top of
// github.com/go-audio/wav.
//
// # Decoding
//
// Decoder reads integer PCM at 8, 16, 24 or 32 bits with any channel count
// and sample rate:
//
//	f, _ := os.Open("audio.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	defer src.Close() // also closes f
//
// Samples come out interleaved as float32 in [-1, 1]. The go-audio decoder
// needs to seek, so readers that cannot are buffered in memory first.
//
// # Encoding
//
// Encode writes a wave.Wave as mono 16-bit PCM:
//
//	out, _ := os.Create("tone.wav")
//	err := wav.Encode(out, w)
//
// The output must be an io.WriteSeeker because the RIFF sizes are written
// after the samples.
//
// # Errors
//
//   - ErrNotWavFile: no RIFF/WAVE header
//   - ErrUnsupportedEncoding: not integer PCM (for example IEEE float)
//   - ErrUnsupportedBitDepth: depth outside 8/16/24/32
//   - ErrMissingData: no data chunk
//   - ErrInvalidFramerate: the wave's framerate rounds below 1 Hz
//
// All are matched with errors.Is; decoder errors keep the go-audio cause in
// the chain.
package wav
