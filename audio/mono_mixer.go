// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer folds every channel of src into one by averaging.
type MonoMixer struct {
	frames frameReader
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{frames: newFrameReader(src)}
}

func (m *MonoMixer) SampleRate() int { return m.frames.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) Close() error    { return m.frames.close() }

// ReadSamples writes at most len(dst) mono samples.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.frames.src.Channels()
	if channels < 1 {
		return 0, fmt.Errorf("%w: source has %d channels", ErrChannelOutOfRange, channels)
	}
	if channels == 1 {
		return m.frames.src.ReadSamples(dst)
	}

	interleaved, frames, err := m.frames.read(len(dst))
	if frames == 0 {
		return 0, err
	}

	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			dst[f] = (interleaved[idx] + interleaved[idx+1]) * 0.5
		}
	default:
		inv := float32(1.0) / float32(channels)
		for f := range frames {
			var sum float32
			base := f * channels
			for c := range channels {
				sum += interleaved[base+c]
			}
			dst[f] = sum * inv
		}
	}

	return frames, err
}
