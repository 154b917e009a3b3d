// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"context"
	"fmt"
	"math"

	"github.com/ik5/sigwave/wave"
)

// DefaultPlotPeriods is how many periods PlotSpan covers.
const DefaultPlotPeriods = 3

// Signal is a continuous-time amplitude function.
//
// Evaluate must be deterministic and free of side effects: the same time
// always yields the same amplitude, and the result has one sample per input
// time, in order.
type Signal interface {
	// Period is the characteristic repetition interval in seconds. For
	// composite signals it is a plotting hint, not an exact period.
	Period() float64

	// Evaluate returns the amplitude at each of ts (seconds).
	Evaluate(ts []float64) ([]float64, error)
}

// MakeWave samples s for duration seconds starting at start, at framerate
// samples per second. The wave has round(duration*framerate) samples at
// start + i/framerate. A zero or negative duration gives an empty wave.
func MakeWave(s Signal, duration, start, framerate float64) (*wave.Wave, error) {
	ts, err := sampleTimes(duration, start, framerate)
	if err != nil {
		return nil, err
	}

	ys, err := s.Evaluate(ts)
	if err != nil {
		return nil, fmt.Errorf("evaluating signal: %w", err)
	}

	return buildWave(ts, ys, framerate)
}

// MakeWaveContext is MakeWave with the evaluation split across goroutines
// by EvaluateParallel, chunk times at a time.
func MakeWaveContext(ctx context.Context, s Signal, duration, start, framerate float64, chunk int) (*wave.Wave, error) {
	ts, err := sampleTimes(duration, start, framerate)
	if err != nil {
		return nil, err
	}

	ys, err := EvaluateParallel(ctx, s, ts, chunk)
	if err != nil {
		return nil, fmt.Errorf("evaluating signal: %w", err)
	}

	return buildWave(ts, ys, framerate)
}

func sampleTimes(duration, start, framerate float64) ([]float64, error) {
	if framerate <= 0 || math.IsInf(framerate, 0) || math.IsNaN(framerate) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFramerate, framerate)
	}

	n := 0
	if duration > 0 {
		n = int(math.Round(duration * framerate))
	}

	return wave.TimeAxis(n, start, framerate), nil
}

func buildWave(ts, ys []float64, framerate float64) (*wave.Wave, error) {
	if len(ys) != len(ts) {
		return nil, fmt.Errorf("%w: evaluated %d samples for %d times", ErrLengthMismatch, len(ys), len(ts))
	}

	return wave.New(ts, ys, framerate)
}

// PlotSpan returns the duration covering DefaultPlotPeriods periods of s.
func PlotSpan(s Signal) float64 {
	return DefaultPlotPeriods * s.Period()
}

// AddSamples returns the elementwise sum of a and b.
func AddSamples(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d and %d samples", ErrLengthMismatch, len(a), len(b))
	}

	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out, nil
}
