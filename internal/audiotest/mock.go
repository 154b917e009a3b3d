// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides in-memory audio sources for tests.
package audiotest

import (
	"io"
	"math"
)

// Source is an in-memory interleaved PCM stream built from per-channel
// sample slices. It satisfies audio.Source without importing it.
type Source struct {
	rate     int
	channels [][]float32
	pos      int // position in the interleaved stream, in samples

	readErr    error
	errAfter   int
	maxPerRead int
	closed     int
}

// NewSource builds a Source at rate Hz from one slice per channel. All
// channels must have the same length.
func NewSource(rate int, channels ...[]float32) *Source {
	return &Source{rate: rate, channels: channels, errAfter: -1}
}

// NewSine returns a mono source of n samples of a unit sine at freq Hz.
func NewSine(rate, n int, freq float64) *Source {
	ch := make([]float32, n)
	for i := range ch {
		t := float64(i) / float64(rate)
		ch[i] = float32(math.Sin(2 * math.Pi * freq * t))
	}

	return NewSource(rate, ch)
}

// NewConstant returns a source whose channel c holds values[c] for n frames.
func NewConstant(rate, n int, values ...float32) *Source {
	channels := make([][]float32, len(values))
	for c, v := range values {
		channels[c] = make([]float32, n)
		for i := range n {
			channels[c][i] = v
		}
	}

	return NewSource(rate, channels...)
}

// FailAfter makes ReadSamples return err once samples interleaved values
// have been delivered.
func (s *Source) FailAfter(samples int, err error) *Source {
	s.errAfter = samples
	s.readErr = err
	return s
}

// LimitRead caps the number of values returned per ReadSamples call, which
// lets tests split frames across reads.
func (s *Source) LimitRead(n int) *Source {
	s.maxPerRead = n
	return s
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return len(s.channels) }

func (s *Source) Close() error {
	s.closed++
	return nil
}

// Closed reports how many times Close was called.
func (s *Source) Closed() int { return s.closed }

// Reset rewinds the stream.
func (s *Source) Reset() { s.pos = 0 }

func (s *Source) total() int {
	if len(s.channels) == 0 {
		return 0
	}
	return len(s.channels[0]) * len(s.channels)
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.errAfter >= 0 && s.pos >= s.errAfter {
		return 0, s.readErr
	}

	total := s.total()
	if s.pos >= total {
		return 0, io.EOF
	}

	n := min(len(dst), total-s.pos)
	if s.maxPerRead > 0 {
		n = min(n, s.maxPerRead)
	}
	if s.errAfter >= 0 {
		n = min(n, s.errAfter-s.pos)
	}

	nch := len(s.channels)
	for i := range n {
		p := s.pos + i
		dst[i] = s.channels[p%nch][p/nch]
	}
	s.pos += n

	if s.pos >= total {
		return n, io.EOF
	}

	return n, nil
}
