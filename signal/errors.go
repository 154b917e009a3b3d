// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"errors"

	"github.com/ik5/sigwave/wave"
)

var (
	// ErrInvalidFrequency indicates a sinusoid frequency that is zero,
	// negative, NaN or infinite.
	ErrInvalidFrequency = errors.New("frequency must be positive and finite")

	// ErrInvalidParameter indicates a non-finite amplitude or phase offset,
	// or an unknown kernel.
	ErrInvalidParameter = errors.New("invalid sinusoid parameter")

	// ErrUnknownKernel indicates a kernel name that is neither sine nor cosine.
	ErrUnknownKernel = errors.New("unknown kernel")

	// ErrNoOperands indicates a sum built from no signals.
	ErrNoOperands = errors.New("sum needs at least one operand")

	// ErrInvalidChunk indicates a non-positive chunk size for parallel evaluation.
	ErrInvalidChunk = errors.New("chunk size must be positive")

	// ErrLengthMismatch and ErrInvalidFramerate are shared with package wave
	// so callers can match either package's failures with one sentinel.
	ErrLengthMismatch   = wave.ErrLengthMismatch
	ErrInvalidFramerate = wave.ErrInvalidFramerate
)
