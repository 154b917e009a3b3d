// SPDX-License-Identifier: EPL-2.0

// Package pcmsource adapts go-audio style integer PCM decoders to
// audio.Source.
package pcmsource

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/sigwave/utils"
)

// PCMReader is the part of the go-audio wav and aiff decoders a Source needs.
type PCMReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Int streams interleaved integer PCM from a PCMReader as float32 samples.
type Int struct {
	dec        PCMReader
	sampleRate int
	channels   int
	bitDepth   int
	bias       int
	signed     bool
	closer     io.Closer
	buf        *goaudio.IntBuffer
	done       bool
}

// Option configures an Int source.
type Option func(*Int)

// Unsigned marks samples as offset binary (8-bit WAV), centred on
// 2^(bitDepth-1) instead of zero.
func Unsigned() Option {
	return func(s *Int) {
		s.bias = 1 << (s.bitDepth - 1)
	}
}

// SignExtend treats values at or above 2^(bitDepth-1) as two's complement
// negatives. go-audio/aiff hands 8-bit samples back as raw bytes (0..255)
// even though AIFF stores them signed.
func SignExtend() Option {
	return func(s *Int) {
		s.signed = true
	}
}

// ClosingWith makes Close release c.
func ClosingWith(c io.Closer) Option {
	return func(s *Int) {
		s.closer = c
	}
}

// NewInt wraps dec, which yields bitDepth-bit samples of channels
// interleaved channels at sampleRate Hz.
func NewInt(dec PCMReader, sampleRate, channels, bitDepth int, opts ...Option) *Int {
	s := &Int{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Int) SampleRate() int { return s.sampleRate }
func (s *Int) Channels() int   { return s.channels }
func (s *Int) BitDepth() int   { return s.bitDepth }

// ReadSamples fills dst with samples scaled to [-1, 1]. The decoders signal
// the end of data with an empty read, which is reported as io.EOF.
func (s *Int) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.done {
		return 0, io.EOF
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         &goaudio.Format{NumChannels: s.channels, SampleRate: s.sampleRate},
			SourceBitDepth: s.bitDepth,
		}
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("decoding PCM: %w", err)
	}

	if n == 0 {
		s.done = true
		return 0, io.EOF
	}

	if s.signed {
		half := 1 << (s.bitDepth - 1)
		for i, v := range s.buf.Data[:n] {
			if v >= half {
				s.buf.Data[i] = v - 2*half
			}
		}
	}

	if s.bias != 0 {
		for i := range n {
			s.buf.Data[i] -= s.bias
		}
	}

	n = utils.IntToFloat32(dst, s.buf.Data[:n], s.bitDepth)

	if errors.Is(err, io.EOF) {
		s.done = true
		return n, io.EOF
	}

	return n, nil
}

// Close releases the underlying reader when one was given with ClosingWith.
func (s *Int) Close() error {
	s.done = true

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
