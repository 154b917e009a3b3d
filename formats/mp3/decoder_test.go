// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate   int
	samples      []int16 // PCM samples (16-bit)
	offset       int
	returnErrors bool
}

func (m *mockMP3Reader) SampleRate() int {
	return m.sampleRate
}

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	samplesToRead := min(len(buf)/2, len(m.samples)-m.offset)
	for i := range samplesToRead {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(m.samples[m.offset+i]))
	}

	m.offset += samplesToRead

	if m.offset >= len(m.samples) {
		return samplesToRead * 2, io.EOF
	}

	return samplesToRead * 2, nil
}

type closeCounter struct{ n int }

func (c *closeCounter) Close() error {
	c.n++
	return nil
}

func newMockSource(rate int, samples []int16) (*source, *mockMP3Reader) {
	m := &mockMP3Reader{sampleRate: rate, samples: samples}
	return newSource(m, nil), m
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	inputs := map[string][]byte{
		"text":  []byte("This is not MP3 data"),
		"empty": {},
	}

	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(data))
			if !errors.Is(err, ErrNotMP3File) {
				t.Errorf("Decode() error = %v, want ErrNotMP3File", err)
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(44100, make([]int16, 100))

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}

func TestSource_ReadSamples_ConversionAccuracy(t *testing.T) {
	t.Parallel()

	testSamples := []int16{0, 1, -1, 32767, -32768, 16384, -16384, 8192}
	src, _ := newMockSource(44100, testSamples)

	dst := make([]float32, len(testSamples))
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != len(testSamples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(testSamples))
	}

	expected := []float32{0.0, 1.0 / 32768.0, -1.0 / 32768.0, 32767.0 / 32768.0, -1.0, 0.5, -0.5, 0.25}
	for i := range n {
		if diff := math.Abs(float64(dst[i] - expected[i])); diff > 1e-7 {
			t.Errorf("dst[%d] = %v, want %v (diff = %v)", i, dst[i], expected[i], diff)
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(8000, make([]int16, 100))

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(8000, []int16{100, 200, 300, 400})

	dst := make([]float32, 4)
	n1, err1 := src.ReadSamples(dst)

	if err1 != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err1)
	}

	if n1 != 4 {
		t.Errorf("ReadSamples() n = %d, want 4", n1)
	}

	n2, err2 := src.ReadSamples(dst)

	if err2 != io.EOF {
		t.Errorf("Second ReadSamples() error = %v, want io.EOF", err2)
	}

	if n2 != 0 {
		t.Errorf("Second ReadSamples() n = %d, want 0", n2)
	}
}

func TestSource_ReadSamples_PartialRead(t *testing.T) {
	t.Parallel()

	testSamples := make([]int16, 10)
	for i := range testSamples {
		testSamples[i] = int16(i * 1000)
	}

	src, _ := newMockSource(8000, testSamples)
	dst := make([]float32, 4)

	for i, want := range []int{4, 4, 2} {
		n, err := src.ReadSamples(dst)
		if err != nil && err != io.EOF {
			t.Fatalf("ReadSamples() #%d error = %v", i, err)
		}

		if n != want {
			t.Errorf("ReadSamples() #%d n = %d, want %d", i, n, want)
		}
	}
}

func TestSource_ReadSamples_DecoderError(t *testing.T) {
	t.Parallel()

	m := &mockMP3Reader{sampleRate: 8000, returnErrors: true}
	src := newSource(m, nil)

	_, err := src.ReadSamples(make([]float32, 8))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_StereoInterleaving(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(44100, []int16{1000, 2000, 3000, 4000, 5000, 6000})

	dst := make([]float32, 6)
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	for i := range n {
		want := float32((i+1)*1000) / 32768.0
		if dst[i] != want {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	c := &closeCounter{}
	src := newSource(&mockMP3Reader{sampleRate: 44100}, c)

	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}

	if err := src.Close(); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}

	if c.n != 1 {
		t.Errorf("underlying reader closed %d times, want 1", c.n)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 44100*10)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	src, m := newMockSource(44100, samples)
	dst := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		m.offset = 0
		_, _ = src.ReadSamples(dst)
	}
}
