// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnknownSignal indicates a wave referring to an undeclared signal.
	ErrUnknownSignal = errors.New("unknown signal")
)
