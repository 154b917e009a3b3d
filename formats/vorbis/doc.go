// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with
// github.com/jfreymuth/oggvorbis.
//
// Samples are delivered interleaved as float32 in [-1, 1], as the library
// produces them; no integer conversion takes place. ReadSamples decodes
// whole frames only, so buffers are trimmed to a multiple of Channels().
//
//	f, _ := os.Open("audio.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, vorbis.ErrNotVorbisFile)
//	}
//	defer src.Close() // also closes f
package vorbis
