// SPDX-License-Identifier: EPL-2.0

// Package parquet archives waves as parquet files with
// github.com/parquet-go/parquet-go.
//
// Each sample becomes a (time, sample) row and the framerate is kept in the
// file's key/value metadata under FramerateKey. The format is meant for
// dumping sampled waves to be cross-checked numerically by other tools.
//
//	var buf bytes.Buffer
//	err := parquet.WriteWave(&buf, w, parquet.WithCompression("zstd"))
//	back, err := parquet.ReadWave(&buf)
//	// back.Equal(w) == true
package parquet
