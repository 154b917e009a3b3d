// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelSelector exposes a single channel of an interleaved Source as mono.
// Other channels are read and dropped.
type ChannelSelector struct {
	frames  frameReader
	channel int
}

// NewChannelSelector returns a mono view of channel ch of src.
func NewChannelSelector(src Source, ch int) (*ChannelSelector, error) {
	if ch < 0 || ch >= src.Channels() {
		return nil, fmt.Errorf("%w: %d of %d", ErrChannelOutOfRange, ch, src.Channels())
	}

	return &ChannelSelector{frames: newFrameReader(src), channel: ch}, nil
}

func (s *ChannelSelector) SampleRate() int { return s.frames.src.SampleRate() }
func (s *ChannelSelector) Channels() int   { return 1 }
func (s *ChannelSelector) Close() error    { return s.frames.close() }

func (s *ChannelSelector) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := s.frames.src.Channels()
	if channels == 1 {
		return s.frames.src.ReadSamples(dst)
	}

	interleaved, frames, err := s.frames.read(len(dst))
	for f := range frames {
		dst[f] = interleaved[f*channels+s.channel]
	}

	return frames, err
}

// frameReader reads whole interleaved frames from a Source into a reusable buffer.
type frameReader struct {
	src Source
	tmp []float32
	// carry holds samples of a frame split across two reads.
	carry []float32
}

func newFrameReader(src Source) frameReader {
	return frameReader{src: src, tmp: make([]float32, 4096)}
}

// read returns up to maxFrames complete frames. A partial trailing frame is
// kept and prepended to the next read.
func (fr *frameReader) read(maxFrames int) ([]float32, int, error) {
	channels := fr.src.Channels()
	need := maxFrames * channels

	if cap(fr.tmp) < need {
		fr.tmp = make([]float32, max(need, 8192))
	}
	fr.tmp = fr.tmp[:need]

	pending := copy(fr.tmp, fr.carry)
	fr.carry = fr.carry[:0]

	n, err := fr.src.ReadSamples(fr.tmp[pending:])
	total := pending + n
	frames := total / channels

	if rest := total - frames*channels; rest > 0 {
		fr.carry = append(fr.carry, fr.tmp[frames*channels:total]...)
	}

	if err != nil {
		return fr.tmp, frames, err
	}

	return fr.tmp, frames, nil
}

func (fr *frameReader) close() error {
	if err := fr.src.Close(); err != nil {
		return fmt.Errorf("closing source: %w", err)
	}

	return nil
}
