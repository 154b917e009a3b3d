// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/ik5/sigwave/utils"
)

// SampleTolerance is the absolute difference under which two samples are
// considered equal by Equal.
const SampleTolerance = 1e-3

// Equal reports whether w and other have the same length, framerate and time
// axis, and samples that agree within SampleTolerance. Times and framerate
// are compared exactly.
func (w *Wave) Equal(other *Wave) bool {
	if w == nil || other == nil {
		return w == other
	}

	if w.Len() != other.Len() || w.framerate != other.framerate {
		return false
	}

	if !floats.Equal(w.times, other.times) {
		return false
	}

	return floats.EqualFunc(w.samples, other.samples, func(a, b float64) bool {
		return math.Abs(a-b) <= SampleTolerance
	})
}

// Normalize returns a copy of w scaled so that the largest absolute sample
// equals peak. Sign and shape are preserved.
func (w *Wave) Normalize(peak float64) (*Wave, error) {
	if math.IsNaN(peak) || math.IsInf(peak, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeak, peak)
	}

	magnitude := w.Peak()
	if magnitude == 0 {
		return nil, ErrSilentWave
	}

	samples := slices.Clone(w.samples)
	floats.Scale(peak/magnitude, samples)

	return &Wave{
		times:     slices.Clone(w.times),
		samples:   samples,
		framerate: w.framerate,
	}, nil
}

// Peak returns the largest absolute sample, or 0 for an empty wave.
func (w *Wave) Peak() float64 {
	if len(w.samples) == 0 {
		return 0
	}
	return math.Max(math.Abs(floats.Max(w.samples)), math.Abs(floats.Min(w.samples)))
}

// Add returns the elementwise sum of w and other. Both waves must share the
// same framerate and time axis.
func (w *Wave) Add(other *Wave) (*Wave, error) {
	if w.Len() != other.Len() {
		return nil, fmt.Errorf("%w: %d and %d samples", ErrLengthMismatch, w.Len(), other.Len())
	}

	if w.framerate != other.framerate || !floats.Equal(w.times, other.times) {
		return nil, ErrTimeMismatch
	}

	samples := slices.Clone(w.samples)
	floats.Add(samples, other.samples)

	return &Wave{
		times:     slices.Clone(w.times),
		samples:   samples,
		framerate: w.framerate,
	}, nil
}

// Segment returns the samples whose time falls in [start, start+duration).
// The result may be empty.
func (w *Wave) Segment(start, duration float64) *Wave {
	end := start + duration

	lo, _ := slices.BinarySearch(w.times, start)
	hi, _ := slices.BinarySearch(w.times, end)
	if hi < lo {
		hi = lo
	}

	return &Wave{
		times:     slices.Clone(w.times[lo:hi]),
		samples:   slices.Clone(w.samples[lo:hi]),
		framerate: w.framerate,
	}
}

// PCM16 converts the samples to 16-bit PCM, clamping to [-1, 1] first.
func (w *Wave) PCM16() []int16 {
	out := make([]int16, len(w.samples))
	for i, s := range w.samples {
		out[i] = utils.Float64ToInt16(s)
	}
	return out
}
