// SPDX-License-Identifier: EPL-2.0

package sigwave

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ik5/sigwave/audio"
	"github.com/ik5/sigwave/formats/aiff"
	"github.com/ik5/sigwave/formats/mp3"
	"github.com/ik5/sigwave/formats/vorbis"
	"github.com/ik5/sigwave/formats/wav"
	"github.com/ik5/sigwave/internal/logging"
	"github.com/ik5/sigwave/wave"
)

// DefaultRegistry returns a registry with every bundled decoder, keyed by
// the file extensions it handles.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

type options struct {
	registry *audio.Registry
	logger   *zap.Logger
	source   []wave.SourceOption
	chunk    int
	workers  int
}

// Option configures LoadFile, Inspect and Run.
type Option func(*options)

// WithRegistry replaces DefaultRegistry as the source of decoders.
func WithRegistry(reg *audio.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithSourceOptions forwards opts to wave.FromSource, e.g. to pick another
// channel or to mix all channels down.
func WithSourceOptions(opts ...wave.SourceOption) Option {
	return func(o *options) {
		o.source = append(o.source, opts...)
	}
}

func newOptions(opts []Option) options {
	o := options{
		chunk:   defaultChunk,
		workers: defaultWorkers(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.registry == nil {
		o.registry = DefaultRegistry()
	}
	o.logger = logging.OrNop(o.logger)

	return o
}

// Info describes a decoded audio file.
type Info struct {
	Path       string
	Format     string
	SampleRate int
	Channels   int
	// Wave is the channel (or mix) selected by the source options.
	Wave *wave.Wave
}

// LoadFile decodes the file at path into a wave. The decoder is chosen by
// extension. Channel 0 is kept unless WithSourceOptions says otherwise.
func LoadFile(path string, opts ...Option) (*wave.Wave, error) {
	info, err := Inspect(path, opts...)
	if err != nil {
		return nil, err
	}

	return info.Wave, nil
}

// Inspect is LoadFile that also reports the stream layout before channel
// selection.
func Inspect(path string, opts ...Option) (*Info, error) {
	o := newOptions(opts)

	format := filepath.Ext(path)
	dec, err := o.registry.Lookup(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	info := &Info{
		Path:       path,
		Format:     normalizeExt(format),
		SampleRate: src.SampleRate(),
		Channels:   src.Channels(),
	}

	// FromSource closes src, and src owns f.
	info.Wave, err = wave.FromSource(src, o.source...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	o.logger.Debug("loaded audio file",
		zap.String("path", path),
		zap.String("format", info.Format),
		zap.Int("sample_rate", info.SampleRate),
		zap.Int("channels", info.Channels),
		zap.Int("samples", info.Wave.Len()),
	)

	return info, nil
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
