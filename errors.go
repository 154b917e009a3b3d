// SPDX-License-Identifier: EPL-2.0

package sigwave

import "errors"

var (
	// ErrDecode wraps failures to open or decode an audio file.
	ErrDecode = errors.New("decoding audio")

	// ErrExport wraps failures writing a wave to WAV or Parquet.
	ErrExport = errors.New("exporting wave")
)
