// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/sigwave/audio"
	"github.com/ik5/sigwave/internal/pcmsource"
)

type Decoder struct{}

// Decode validates the AIFF header in r and returns a source over its sound
// data. AIFF samples are signed big-endian at every depth. r is buffered in
// memory when it cannot seek.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcmsource.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	return pcmsource.NewInt(dec, format.SampleRate, format.NumChannels, bitDepth,
		pcmsource.SignExtend(),
		pcmsource.ClosingWith(pcmsource.Closer(r))), nil
}
