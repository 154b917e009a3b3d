// SPDX-License-Identifier: EPL-2.0

// Package wave holds materialized, finite, single-channel sampled signals.
//
// A Wave pairs a time axis (seconds) with amplitudes and a framerate (Hz).
// It is produced either by sampling a signal (see package signal) or by
// draining a decoded audio.Source:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	w, err := wave.FromSource(src) // keeps channel 0, closes src
//
// # Time Axis
//
// For waves built here the i-th time is exactly start + i/framerate, computed
// by TimeAxis. Rebuilding a wave from its own Times, Samples and Framerate
// yields an Equal wave.
//
// # Equality
//
// Equal compares length, framerate and times exactly, and samples within
// SampleTolerance. Samples computed along different code paths, or passed
// through a 16-bit codec, rarely match bit for bit.
//
// # Multi-channel Sources
//
// FromSource keeps channel 0 unless told otherwise:
//
//	wave.FromSource(src, wave.WithChannel(1)) // right channel
//	wave.FromSource(src, wave.WithMonoMix())  // average of all channels
//
// # Transforms
//
// Waves are immutable. Normalize, Add and Segment return new waves.
// Normalize fails with ErrSilentWave when every sample is zero.
package wave
