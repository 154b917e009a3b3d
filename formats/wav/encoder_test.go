// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/sigwave/wave"
)

func encodeToFile(t *testing.T, w *wave.Wave) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}

	if err := Encode(f, w); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	return path
}

func mustFromSamples(t *testing.T, samples []float64, framerate float64) *wave.Wave {
	t.Helper()

	w, err := wave.FromSamples(samples, framerate)
	if err != nil {
		t.Fatalf("wave.FromSamples() error = %v", err)
	}
	return w
}

func decodeWave(t *testing.T, path string) *wave.Wave {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("os.Open() error = %v", err)
	}

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	w, err := wave.FromSource(src)
	if err != nil {
		t.Fatalf("wave.FromSource() error = %v", err)
	}
	return w
}

func TestEncode_Header(t *testing.T) {
	t.Parallel()

	w := mustFromSamples(t, []float64{0, 0.5, -0.5}, 8000)

	data, err := os.ReadFile(encodeToFile(t, w))
	if err != nil {
		t.Fatalf("os.ReadFile() error = %v", err)
	}
	if len(data) < 44 {
		t.Fatalf("encoded file is %d bytes, want at least 44", len(data))
	}

	if got := string(data[0:4]); got != "RIFF" {
		t.Errorf("chunk ID = %q, want RIFF", got)
	}
	if got := string(data[8:12]); got != "WAVE" {
		t.Errorf("format = %q, want WAVE", got)
	}
	if got, want := binary.LittleEndian.Uint32(data[4:8]), uint32(len(data)-8); got != want {
		t.Errorf("RIFF size = %d, want %d", got, want)
	}

	idx := bytes.Index(data, []byte("data"))
	if idx <= 0 {
		t.Fatal("data chunk not found")
	}
	if got := binary.LittleEndian.Uint32(data[idx+4 : idx+8]); got != 6 {
		t.Errorf("data size = %d, want 6", got)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	original := mustFromSamples(t, []float64{0, 0.5, -0.5, 1, -1, 0.25}, 8000)

	decoded := decodeWave(t, encodeToFile(t, original))

	if decoded.Framerate() != 8000 {
		t.Errorf("framerate = %v, want 8000", decoded.Framerate())
	}
	if !original.Equal(decoded) {
		t.Errorf("decoded %v differs from %v", decoded.Samples(), original.Samples())
	}
}

func TestEncode_ClampsAndRoundsRate(t *testing.T) {
	t.Parallel()

	w := mustFromSamples(t, []float64{2, -3}, 11025.4)

	f, err := os.Open(encodeToFile(t, w))
	if err != nil {
		t.Fatalf("os.Open() error = %v", err)
	}

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 11025 {
		t.Errorf("SampleRate() = %d, want 11025", src.SampleRate())
	}

	buf := make([]float32, 4)
	n, _ := src.ReadSamples(buf)
	if n != 2 {
		t.Fatalf("ReadSamples() n = %d, want 2", n)
	}
	for i, want := range []float32{1, -1} {
		if math.Abs(float64(buf[i]-want)) > 1e-4 {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want)
		}
	}
}

func TestEncode_EmptyWave(t *testing.T) {
	t.Parallel()

	w := mustFromSamples(t, nil, 8000)

	data, err := os.ReadFile(encodeToFile(t, w))
	if err != nil {
		t.Fatalf("os.ReadFile() error = %v", err)
	}
	if len(data) < 4 || string(data[0:4]) != "RIFF" {
		t.Errorf("empty wave did not produce a RIFF header")
	}
}

func TestEncode_LongWave(t *testing.T) {
	t.Parallel()

	samples := make([]float64, 3*encodeChunk+17)
	for i := range samples {
		samples[i] = float64(i%200-100) / 100
	}

	w := mustFromSamples(t, samples, 44100)

	decoded := decodeWave(t, encodeToFile(t, w))
	if decoded.Len() != len(samples) {
		t.Errorf("decoded %d samples, want %d", decoded.Len(), len(samples))
	}
	if !w.Equal(decoded) {
		t.Error("decoded wave differs from the encoded one")
	}
}

func TestEncode_InvalidFramerate(t *testing.T) {
	t.Parallel()

	w := mustFromSamples(t, []float64{0}, 0.25)

	f, err := os.Create(filepath.Join(t.TempDir(), "bad.wav"))
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}
	defer f.Close()

	if err := Encode(f, w); !errors.Is(err, ErrInvalidFramerate) {
		t.Errorf("Encode() error = %v, want %v", err, ErrInvalidFramerate)
	}
}
