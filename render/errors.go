// SPDX-License-Identifier: EPL-2.0

package render

import "errors"

var (
	// ErrRender wraps every failure to draw or save a plot.
	ErrRender = errors.New("render failed")

	// ErrLengthMismatch indicates times and samples of different lengths.
	ErrLengthMismatch = errors.New("times and samples differ in length")
)
