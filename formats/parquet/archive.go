// SPDX-License-Identifier: EPL-2.0

package parquet

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	parquet "github.com/parquet-go/parquet-go"

	"github.com/ik5/sigwave/wave"
)

// FramerateKey is the file metadata key holding the wave's framerate.
const FramerateKey = "sigwave.framerate"

const readBatch = 1024

// row is one sample of an archived wave.
type row struct {
	Time   float64 `parquet:"time"`
	Sample float64 `parquet:"sample"`
}

type writeOptions struct {
	compression parquet.WriterOption
}

// Option configures WriteWave.
type Option func(*writeOptions) error

// WithCompression selects the column codec: "snappy" (the default), "zstd",
// "gzip" or "none".
func WithCompression(name string) Option {
	return func(o *writeOptions) error {
		switch strings.ToLower(name) {
		case "", "snappy":
			o.compression = parquet.Compression(&parquet.Snappy)
		case "zstd":
			o.compression = parquet.Compression(&parquet.Zstd)
		case "gzip", "gz":
			o.compression = parquet.Compression(&parquet.Gzip)
		case "none", "uncompressed":
			o.compression = parquet.Compression(&parquet.Uncompressed)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownCompression, name)
		}
		return nil
	}
}

// WriteWave stores w as a two-column (time, sample) parquet file, with the
// framerate in the file metadata so that empty waves round-trip too.
func WriteWave(out io.Writer, w *wave.Wave, opts ...Option) error {
	o := writeOptions{compression: parquet.Compression(&parquet.Snappy)}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return err
		}
	}

	pw := parquet.NewGenericWriter[row](out,
		o.compression,
		parquet.KeyValueMetadata(FramerateKey, strconv.FormatFloat(w.Framerate(), 'g', -1, 64)),
	)

	rows := make([]row, w.Len())
	for i := range rows {
		rows[i].Time, rows[i].Sample = w.At(i)
	}

	if _, err := pw.Write(rows); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}

	if err := pw.Close(); err != nil {
		return fmt.Errorf("closing parquet writer: %w", err)
	}

	return nil
}

// ReadWave loads a wave written by WriteWave. The whole archive is read
// into memory since parquet footers sit at the end of the file.
func ReadWave(r io.Reader) (*wave.Wave, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading archive: %w", err)
	}

	f, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArchive, err)
	}

	value, ok := f.Lookup(FramerateKey)
	if !ok {
		return nil, ErrMissingFramerate
	}

	framerate, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingFramerate, value)
	}

	gr := parquet.NewGenericReader[row](bytes.NewReader(data))
	defer gr.Close()

	times := make([]float64, 0, gr.NumRows())
	samples := make([]float64, 0, gr.NumRows())
	batch := make([]row, readBatch)

	for {
		n, err := gr.Read(batch)
		for _, rw := range batch[:n] {
			times = append(times, rw.Time)
			samples = append(samples, rw.Sample)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading rows: %w", err)
		}
	}

	return wave.New(times, samples, framerate)
}
