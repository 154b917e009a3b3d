// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"
	"math"
	"slices"
)

// Wave is a finite sequence of (time, amplitude) samples taken at a fixed
// framerate. A Wave owns its slices; constructors and accessors copy.
type Wave struct {
	times     []float64
	samples   []float64
	framerate float64
}

// New builds a Wave from a time axis in seconds, the matching samples and
// the framerate in Hz. times must be non-decreasing, and every time and
// sample must be finite.
func New(times, samples []float64, framerate float64) (*Wave, error) {
	if err := checkFramerate(framerate); err != nil {
		return nil, err
	}

	if len(times) != len(samples) {
		return nil, fmt.Errorf("%w: %d times, %d samples", ErrLengthMismatch, len(times), len(samples))
	}

	if err := checkFinite("times", times); err != nil {
		return nil, err
	}
	if err := checkFinite("samples", samples); err != nil {
		return nil, err
	}

	for i := 1; i < len(times); i++ {
		if times[i] < times[i-1] {
			return nil, fmt.Errorf("%w: times[%d]=%v < times[%d]=%v", ErrUnorderedTimes, i, times[i], i-1, times[i-1])
		}
	}

	return &Wave{
		times:     slices.Clone(times),
		samples:   slices.Clone(samples),
		framerate: framerate,
	}, nil
}

// FromSamples builds a Wave starting at t=0 whose i-th sample sits at
// i/framerate seconds.
func FromSamples(samples []float64, framerate float64) (*Wave, error) {
	if err := checkFramerate(framerate); err != nil {
		return nil, err
	}

	if err := checkFinite("samples", samples); err != nil {
		return nil, err
	}

	return &Wave{
		times:     TimeAxis(len(samples), 0, framerate),
		samples:   slices.Clone(samples),
		framerate: framerate,
	}, nil
}

// TimeAxis returns n instants start + i/framerate. It is the single place
// sample times are derived so that independently built waves compare equal.
func TimeAxis(n int, start, framerate float64) []float64 {
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = start + float64(i)/framerate
	}
	return ts
}

func checkFinite(name string, xs []float64) error {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: %s[%d]=%v", ErrNonFinite, name, i, x)
		}
	}
	return nil
}

func checkFramerate(framerate float64) error {
	if framerate <= 0 || math.IsInf(framerate, 0) || math.IsNaN(framerate) {
		return fmt.Errorf("%w: %v", ErrInvalidFramerate, framerate)
	}
	return nil
}

// Len returns the number of samples.
func (w *Wave) Len() int { return len(w.samples) }

// Framerate returns the sample rate in Hz.
func (w *Wave) Framerate() float64 { return w.framerate }

// Times returns a copy of the time axis, in seconds.
func (w *Wave) Times() []float64 { return slices.Clone(w.times) }

// Samples returns a copy of the amplitudes.
func (w *Wave) Samples() []float64 { return slices.Clone(w.samples) }

// At returns the i-th (time, amplitude) pair.
func (w *Wave) At(i int) (float64, float64) { return w.times[i], w.samples[i] }

// Start is the time of the first sample, or 0 for an empty wave.
func (w *Wave) Start() float64 {
	if len(w.times) == 0 {
		return 0
	}
	return w.times[0]
}

// Duration is Len()/Framerate() seconds.
func (w *Wave) Duration() float64 {
	return float64(len(w.samples)) / w.framerate
}

func (w *Wave) String() string {
	return fmt.Sprintf("Wave(len=%d framerate=%g start=%g)", w.Len(), w.framerate, w.Start())
}
