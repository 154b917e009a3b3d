// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates input without a readable RIFF/WAVE header.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedEncoding indicates a WAV that does not carry integer PCM.
	ErrUnsupportedEncoding = errors.New("only integer PCM WAV is supported")

	// ErrUnsupportedBitDepth indicates a PCM depth other than 8, 16, 24 or 32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")

	// ErrMissingData indicates a WAV without a data chunk.
	ErrMissingData = errors.New("WAV has no data chunk")

	// ErrInvalidFramerate indicates a wave whose framerate cannot be stored
	// as an integer sample rate.
	ErrInvalidFramerate = errors.New("framerate must be at least 1 Hz")
)
