// SPDX-License-Identifier: EPL-2.0

package sigwave

import (
	"github.com/ik5/sigwave/render"
	"github.com/ik5/sigwave/signal"
	"github.com/ik5/sigwave/wave"
)

// Plot hands the times and samples of w to r.
func Plot(r render.Renderer, w *wave.Wave, label string) error {
	return r.Render(w.Times(), w.Samples(), label)
}

// PlotSignal samples s over signal.PlotSpan(s) at framerate and plots the
// resulting wave.
func PlotSignal(r render.Renderer, s signal.Signal, framerate float64, label string) error {
	w, err := signal.MakeWave(s, signal.PlotSpan(s), 0, framerate)
	if err != nil {
		return err
	}

	return Plot(r, w, label)
}
