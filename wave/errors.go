// SPDX-License-Identifier: EPL-2.0

package wave

import "errors"

var (
	// ErrLengthMismatch indicates two sequences that must align elementwise
	// have different lengths.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrInvalidFramerate indicates a framerate that is not a positive finite number.
	ErrInvalidFramerate = errors.New("framerate must be positive and finite")

	// ErrUnorderedTimes indicates a time axis that decreases somewhere.
	ErrUnorderedTimes = errors.New("times must be non-decreasing")

	// ErrNonFinite indicates a NaN or infinite time or sample.
	ErrNonFinite = errors.New("value must be finite")

	// ErrTimeMismatch indicates two waves sampled on different time axes.
	ErrTimeMismatch = errors.New("time axes differ")

	// ErrSilentWave is returned when normalizing a wave whose samples are all zero.
	ErrSilentWave = errors.New("cannot normalize a silent wave")

	// ErrInvalidPeak indicates a normalization target that is not finite.
	ErrInvalidPeak = errors.New("peak amplitude must be finite")

	// ErrInvalidBufferSize indicates a non-positive read buffer size.
	ErrInvalidBufferSize = errors.New("buffer size must be positive")
)
