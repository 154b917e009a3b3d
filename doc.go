// SPDX-License-Identifier: EPL-2.0

// Package sigwave ties signals, waves, decoders and renderers together.
//
// The building blocks live in subpackages:
//   - signal: sinusoids and sums of signals, sampled into waves
//   - wave: materialized single-channel waves (times, samples, framerate)
//   - audio: the decoded Source contract, the decoder Registry, and
//     channel selection and mixing
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff: decoders
//   - formats/wav and formats/parquet: wave exporters
//   - render: drawing waves as PNG line plots
//   - config: YAML description of signals and the waves to draw
//
// # Loading Audio
//
// LoadFile picks a decoder by file extension and drains it into a wave,
// keeping channel 0 unless told otherwise:
//
//	w, err := sigwave.LoadFile("voice.ogg")
//	w, err = sigwave.LoadFile("voice.ogg", sigwave.WithSourceOptions(wave.WithMonoMix()))
//
// # Plotting
//
//	cos, _ := signal.NewCos(440, 1, 0)
//	r := render.NewPNG("plots", "demo")
//	err := sigwave.PlotSignal(r, cos, 11025, "cos440") // plots/demo_cos440.png
//
// # Batch Runs
//
// Run renders every wave listed in a config.Config, and optionally exports
// each one as WAV or Parquet next to the plots. The cmd/sigwave binary is a
// thin wrapper around LoadConfig and Run.
package sigwave
