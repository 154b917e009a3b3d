// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files with
// github.com/go-audio/aiff.
//
// Signed big-endian PCM at 8, 16, 24 and 32 bits is supported, with any
// channel count and sample rate. Samples come out interleaved as float32 in
// [-1, 1].
//
//	f, _ := os.Open("audio.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, aiff.ErrNotAiffFile)
//	}
//	w, err := wave.FromSource(src)
//
// The go-audio decoder seeks between chunks; readers that cannot seek are
// read into memory first.
package aiff
