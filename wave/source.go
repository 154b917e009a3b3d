// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/sigwave/audio"
)

const defaultBufferSize = 4096

// ChannelMode selects how a multi-channel source becomes a single channel.
type ChannelMode int

const (
	// SelectChannel keeps one channel and drops the others.
	SelectChannel ChannelMode = iota
	// MixChannels averages all channels.
	MixChannels
)

type sourceOptions struct {
	mode       ChannelMode
	channel    int
	bufferSize int
}

// SourceOption configures FromSource.
type SourceOption func(*sourceOptions)

// WithChannel keeps channel ch. The default is channel 0.
func WithChannel(ch int) SourceOption {
	return func(o *sourceOptions) {
		o.mode = SelectChannel
		o.channel = ch
	}
}

// WithMonoMix averages all channels instead of keeping one.
func WithMonoMix() SourceOption {
	return func(o *sourceOptions) {
		o.mode = MixChannels
	}
}

// WithBufferSize sets the number of samples requested per read.
func WithBufferSize(n int) SourceOption {
	return func(o *sourceOptions) {
		o.bufferSize = n
	}
}

// FromChannels builds a Wave from decoded per-channel buffers. Only channel 0
// is kept; further channels are ignored. An empty channel list yields an
// empty Wave.
func FromChannels(channels [][]float32, framerate float64) (*Wave, error) {
	var first []float32
	if len(channels) > 0 {
		first = channels[0]
	}

	samples := make([]float64, len(first))
	for i, s := range first {
		samples[i] = float64(s)
	}

	return FromSamples(samples, framerate)
}

// FromSource drains src into a Wave at src.SampleRate(). By default only
// channel 0 is kept. src is closed before FromSource returns, on every path.
func FromSource(src audio.Source, opts ...SourceOption) (w *Wave, err error) {
	o := sourceOptions{mode: SelectChannel, bufferSize: defaultBufferSize}
	for _, opt := range opts {
		opt(&o)
	}

	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			w, err = nil, fmt.Errorf("closing source: %w", cerr)
		}
	}()

	if o.bufferSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBufferSize, o.bufferSize)
	}

	framerate := float64(src.SampleRate())
	if err := checkFramerate(framerate); err != nil {
		return nil, err
	}

	mono, err := monoView(src, o)
	if err != nil {
		return nil, err
	}

	samples, err := readAll(mono, o.bufferSize)
	if err != nil {
		return nil, err
	}

	if err := checkFinite("samples", samples); err != nil {
		return nil, err
	}

	return &Wave{
		times:     TimeAxis(len(samples), 0, framerate),
		samples:   samples,
		framerate: framerate,
	}, nil
}

// monoView wraps src so that it yields one channel. The wrapper does not
// own src: FromSource closes src itself.
func monoView(src audio.Source, o sourceOptions) (audio.Source, error) {
	if o.mode == MixChannels {
		if src.Channels() < 1 {
			return nil, fmt.Errorf("%w: source has %d channels", audio.ErrChannelOutOfRange, src.Channels())
		}
		return audio.NewMonoMixer(src), nil
	}

	sel, err := audio.NewChannelSelector(src, o.channel)
	if err != nil {
		return nil, err
	}

	return sel, nil
}

func readAll(src audio.Source, bufferSize int) ([]float64, error) {
	buf := make([]float32, bufferSize)
	var samples []float64

	for {
		n, err := src.ReadSamples(buf)
		for _, s := range buf[:n] {
			samples = append(samples, float64(s))
		}

		if errors.Is(err, io.EOF) {
			return samples, nil
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}
}
