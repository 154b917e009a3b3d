// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrChannelOutOfRange = errors.New("channel index out of range")
	ErrUnknownFormat     = errors.New("unknown audio format")
)

// UnknownFormatError reports a registry miss. It matches ErrUnknownFormat
// with errors.Is.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownFormat, e.Format)
}

func (e *UnknownFormatError) Unwrap() error { return ErrUnknownFormat }
