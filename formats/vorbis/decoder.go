// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/sigwave/audio"
	"github.com/ik5/sigwave/internal/pcmsource"
)

// oggReader is the part of oggvorbis.Reader a source reads from. Read
// returns the number of interleaved values decoded.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec    oggReader
	closer io.Closer
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}

	c := s.closer
	s.closer = nil
	if err := c.Close(); err != nil {
		return fmt.Errorf("closing reader: %w", err)
	}
	return nil
}

// ReadSamples decodes whole frames only, so dst must hold at least one.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	ch := s.dec.Channels()
	usable := len(dst) - len(dst)%ch
	if usable == 0 {
		return 0, fmt.Errorf("%w: %d samples for %d channels", io.ErrShortBuffer, len(dst), ch)
	}

	n, err := s.dec.Read(dst[:usable])
	if n == 0 && err == nil {
		return 0, io.EOF
	}

	return n, err
}

type Decoder struct{}

// Decode parses the Vorbis identification and setup headers from r.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return &source{dec: dec, closer: pcmsource.Closer(r)}, nil
}
