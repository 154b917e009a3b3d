// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/sigwave/audio"
	"github.com/ik5/sigwave/internal/pcmsource"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

type Decoder struct{}

// Decode reads the WAV header from r and returns a source positioned at the
// first PCM sample. WAVE_FORMAT_EXTENSIBLE files are accepted when their
// subformat is integer PCM. r is buffered in memory when it cannot seek. Closing
// the source closes r if it is an io.Closer.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcmsource.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrNotWavFile
	}

	switch dec.WavAudioFormat {
	case formatPCM:
	case formatExtensible:
		sub, err := subFormat(rs)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		if sub != formatPCM {
			return nil, fmt.Errorf("%w: extensible subformat %#x", ErrUnsupportedEncoding, sub)
		}

		// subFormat rewound rs; start over with a fresh header read.
		dec = gowav.NewDecoder(rs)
		dec.ReadInfo()
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
	default:
		return nil, fmt.Errorf("%w: format tag %#x", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingData, err)
	}

	opts := []pcmsource.Option{pcmsource.ClosingWith(pcmsource.Closer(r))}
	if bitDepth == 8 {
		opts = append(opts, pcmsource.Unsigned())
	}

	return pcmsource.NewInt(dec, int(dec.SampleRate), int(dec.NumChans), bitDepth, opts...), nil
}
