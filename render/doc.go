// SPDX-License-Identifier: EPL-2.0

// Package render draws sampled series.
//
// Renderer is the seam between waves and whatever displays them. PNG is the
// implementation backed by gonum.org/v1/plot; it writes one 640x480 image
// per call:
//
//	r := render.NewPNG("plots", "chap01")
//	err := r.Render(w.Times(), w.Samples(), "mix") // plots/chap01_mix.png
//
// Failures are wrapped with ErrRender, except mismatched inputs which
// report ErrLengthMismatch.
package render
