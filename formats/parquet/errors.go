// SPDX-License-Identifier: EPL-2.0

package parquet

import "errors"

var (
	// ErrInvalidArchive indicates input that is not a readable parquet file.
	ErrInvalidArchive = errors.New("not a parquet wave archive")

	// ErrMissingFramerate indicates an archive without a usable framerate
	// entry in its key/value metadata.
	ErrMissingFramerate = errors.New("wave archive has no framerate")

	// ErrUnknownCompression indicates a compression name other than snappy,
	// zstd, gzip or none.
	ErrUnknownCompression = errors.New("unknown parquet compression")
)
