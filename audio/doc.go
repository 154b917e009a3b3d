// SPDX-License-Identifier: EPL-2.0

// Package audio defines the contract between codec decoders and the wave
// package.
//
// # Source Interface
//
// A decoder turns an encoded stream into a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1.0, 1.0]. ReadSamples returns
// io.EOF once the stream is exhausted; the final call may return n > 0
// together with io.EOF.
//
// # Channel Handling
//
// A Wave is single channel. Two adapters turn a multi-channel Source into a
// mono one:
//
//	// keep only the first channel (the default used by wave.FromSource)
//	left, err := audio.NewChannelSelector(src, 0)
//
//	// average all channels
//	mono := audio.NewMonoMixer(src)
//
// Both adapters close the wrapped Source when closed.
//
// # Format Registry
//
// The registry maps a format key, usually a file extension, to a Decoder:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.Lookup(".WAV")
//
// Keys are matched case-insensitively and a leading dot is ignored. A miss
// returns an error matching ErrUnknownFormat.
package audio
