// SPDX-License-Identifier: EPL-2.0

package sigwave

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/sigwave/config"
	"github.com/ik5/sigwave/formats/parquet"
	"github.com/ik5/sigwave/formats/wav"
	"github.com/ik5/sigwave/render"
	"github.com/ik5/sigwave/signal"
)

const defaultChunk = 16384

func defaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// WithChunk sets how many samples one goroutine evaluates when Run samples
// a signal.
func WithChunk(n int) Option {
	return func(o *options) {
		o.chunk = n
	}
}

// WithWorkers bounds how many waves Run processes at once. Zero or less
// means no bound.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// Run samples, renders and exports every wave listed in cfg. Waves are
// processed concurrently, so r must be safe for concurrent use (render.PNG
// is). Export paths are relative to cfg.Output.Dir. The first failure
// cancels the waves not yet started and is returned.
func Run(ctx context.Context, cfg *config.Config, r render.Renderer, opts ...Option) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	o := newOptions(opts)

	g, ctx := errgroup.WithContext(ctx)
	if o.workers > 0 {
		g.SetLimit(o.workers)
	}

	for _, spec := range cfg.Waves {
		g.Go(func() error {
			if err := runWave(ctx, cfg, spec, r, o); err != nil {
				return fmt.Errorf("wave %q: %w", spec.Label, err)
			}
			return nil
		})
	}

	return g.Wait()
}

func runWave(ctx context.Context, cfg *config.Config, spec config.WaveSpec, r render.Renderer, o options) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s, err := cfg.Signal(spec.Signal)
	if err != nil {
		return err
	}

	w, err := signal.MakeWaveContext(ctx, s, spec.Span(s), spec.Start, spec.Framerate, o.chunk)
	if err != nil {
		return err
	}

	if spec.Normalize != nil {
		if w, err = w.Normalize(*spec.Normalize); err != nil {
			return err
		}
	}

	if err := Plot(r, w, spec.Label); err != nil {
		return err
	}

	log := o.logger.With(zap.String("label", spec.Label), zap.String("signal", spec.Signal))
	log.Info("rendered wave",
		zap.Int("samples", w.Len()),
		zap.Float64("framerate", w.Framerate()),
		zap.Float64("duration", w.Duration()),
	)

	if spec.WAV != "" {
		path, err := export(cfg.Output.Dir, spec.WAV, func(f *os.File) error {
			return wav.Encode(f, w)
		})
		if err != nil {
			return err
		}
		log.Info("exported wave", zap.String("path", path), zap.String("format", "wav"))
	}

	if spec.Parquet != "" {
		path, err := export(cfg.Output.Dir, spec.Parquet, func(f *os.File) error {
			return parquet.WriteWave(f, w)
		})
		if err != nil {
			return err
		}
		log.Info("exported wave", zap.String("path", path), zap.String("format", "parquet"))
	}

	return nil
}

// export creates dir/name (or name itself when absolute) and hands it to
// write. The file is closed on every path.
func export(dir, name string, write func(*os.File) error) (path string, err error) {
	path = name
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, name)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExport, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExport, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %s: %w", ErrExport, path, cerr)
		}
	}()

	if err := write(f); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrExport, path, err)
	}

	return path, nil
}
