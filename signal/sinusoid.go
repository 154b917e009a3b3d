// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"math"
)

// Sinusoid is amplitude * kernel(2π·frequency·t + offset).
//
// The zero value is not usable; build one with NewSinusoid, NewSin or NewCos.
// Sinusoid is immutable and comparable with ==.
type Sinusoid struct {
	freq   float64
	amp    float64
	offset float64
	kernel Kernel
}

// NewSinusoid builds a sinusoid of freq Hz, amplitude amp and phase offset
// radians using kernel.
func NewSinusoid(freq, amp, offset float64, kernel Kernel) (Sinusoid, error) {
	if freq <= 0 || math.IsInf(freq, 0) || math.IsNaN(freq) {
		return Sinusoid{}, fmt.Errorf("%w: %v", ErrInvalidFrequency, freq)
	}

	if !finite(amp) {
		return Sinusoid{}, fmt.Errorf("%w: amplitude %v", ErrInvalidParameter, amp)
	}

	if !finite(offset) {
		return Sinusoid{}, fmt.Errorf("%w: offset %v", ErrInvalidParameter, offset)
	}

	if !kernel.Valid() {
		return Sinusoid{}, fmt.Errorf("%w: %v", ErrInvalidParameter, kernel)
	}

	return Sinusoid{freq: freq, amp: amp, offset: offset, kernel: kernel}, nil
}

// NewSin is NewSinusoid with the Sine kernel.
func NewSin(freq, amp, offset float64) (Sinusoid, error) {
	return NewSinusoid(freq, amp, offset, Sine)
}

// NewCos is NewSinusoid with the Cosine kernel.
func NewCos(freq, amp, offset float64) (Sinusoid, error) {
	return NewSinusoid(freq, amp, offset, Cosine)
}

func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

func (s Sinusoid) Frequency() float64 { return s.freq }
func (s Sinusoid) Amplitude() float64 { return s.amp }
func (s Sinusoid) Offset() float64    { return s.offset }
func (s Sinusoid) Kernel() Kernel     { return s.kernel }

// Period is 1/frequency.
func (s Sinusoid) Period() float64 {
	return 1 / s.freq
}

func (s Sinusoid) Evaluate(ts []float64) ([]float64, error) {
	ys := make([]float64, len(ts))
	s.evaluateInto(ys, ts)
	return ys, nil
}

func (s Sinusoid) evaluateInto(dst, ts []float64) {
	w := 2 * math.Pi * s.freq
	for i, t := range ts {
		dst[i] = s.amp * s.kernel.Apply(w*t+s.offset)
	}
}

func (s Sinusoid) String() string {
	return fmt.Sprintf("%s(freq=%g amp=%g offset=%g)", s.kernel, s.freq, s.amp, s.offset)
}
