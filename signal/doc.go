// SPDX-License-Identifier: EPL-2.0

// Package signal models continuous-time periodic signals and samples them
// into waves.
//
// # Signals
//
// A Signal reports a characteristic period and evaluates its amplitude at
// arbitrary instants. Evaluation is pure: there is no playback position, and
// every call states its times explicitly.
//
//	cos, _ := signal.NewCos(440, 1.0, 0)
//	sin, _ := signal.NewSin(880, 0.5, 0)
//	mix, _ := signal.Add(cos, sin)
//
//	ys, _ := mix.Evaluate([]float64{0, 0.001, 0.002})
//
// # Kernels
//
// A Sinusoid applies one of two kernels, Sine or Cosine, to its phase
// 2π·f·t + offset. Kernels are plain values, so sinusoids compare with ==
// and kernels round-trip through text (ParseKernel, MarshalText).
//
// # Composition
//
// Sum holds an ordered list of operands, all evaluated on the same times and
// added. Add flattens nested sums. A Sum's Period is the largest operand
// period, which is exact only for harmonic mixes and otherwise just a
// sensible plotting span.
//
// # Sampling
//
// MakeWave samples a signal into a wave.Wave:
//
//	w, err := signal.MakeWave(mix, 0.5, 0, 11025)
//	// w.Len() == 5513, w.Times()[i] == i/11025
//
// The sample count is round(duration*framerate). A zero or negative
// duration gives an empty wave.
//
// # Errors
//
// Construction and sampling failures are sentinel errors (ErrInvalidFrequency,
// ErrLengthMismatch, ErrInvalidFramerate, ...) wrapped with context; match
// them with errors.Is.
package signal
