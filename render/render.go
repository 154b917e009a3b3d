// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DefaultLabel names plots rendered without a label.
const DefaultLabel = "wave"

const (
	defaultWidth  = 640
	defaultHeight = 480
)

// Renderer turns a sampled series into some visual artifact.
type Renderer interface {
	Render(times, samples []float64, label string) error
}

// PNG draws a line plot of amplitude against time and saves it as
// <dir>/<prefix>_<label>.png.
type PNG struct {
	dir    string
	prefix string
	width  int
	height int
	logger *zap.Logger
}

// Option configures a PNG renderer.
type Option func(*PNG)

// WithSize sets the image size in pixels.
func WithSize(width, height int) Option {
	return func(p *PNG) {
		p.width = width
		p.height = height
	}
}

// WithLogger logs each saved file at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(p *PNG) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPNG returns a renderer writing into dir. An empty prefix drops the
// "<prefix>_" part of the file name.
func NewPNG(dir, prefix string, opts ...Option) *PNG {
	p := &PNG{
		dir:    dir,
		prefix: prefix,
		width:  defaultWidth,
		height: defaultHeight,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Path returns the file a plot with label is saved to.
func (p *PNG) Path(label string) string {
	if label == "" {
		label = DefaultLabel
	}

	name := label + ".png"
	if p.prefix != "" {
		name = p.prefix + "_" + name
	}

	return filepath.Join(p.dir, name)
}

// Render plots samples against times. The output directory is created when
// missing and an existing file is overwritten.
func (p *PNG) Render(times, samples []float64, label string) error {
	if len(times) != len(samples) {
		return fmt.Errorf("%w: %d times, %d samples", ErrLengthMismatch, len(times), len(samples))
	}

	if p.width <= 0 || p.height <= 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrRender, p.width, p.height)
	}

	if label == "" {
		label = DefaultLabel
	}

	pl := plot.New()
	pl.Title.Text = label
	pl.X.Label.Text = "time (s)"
	pl.Y.Label.Text = "amplitude"
	pl.Add(plotter.NewGrid())

	// An empty plot keeps its default axes.
	if len(times) > 0 {
		pts := make(plotter.XYs, len(times))
		for i := range times {
			pts[i].X = times[i]
			pts[i].Y = samples[i]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRender, err)
		}
		pl.Add(line)
	}

	// 72 dpi makes one point one pixel.
	canvas := vgimg.NewWith(
		vgimg.UseWH(vg.Length(p.width), vg.Length(p.height)),
		vgimg.UseDPI(72),
	)
	pl.Draw(draw.New(canvas))

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}

	path := p.Path(label)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}

	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: writing %s: %w", ErrRender, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}

	p.logger.Debug("saved plot",
		zap.String("path", path),
		zap.Int("points", len(times)),
	)

	return nil
}
