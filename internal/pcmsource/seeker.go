// SPDX-License-Identifier: EPL-2.0

package pcmsource

import (
	"bytes"
	"fmt"
	"io"
)

// ReadSeeker returns r itself when it can seek, and otherwise buffers the
// whole stream in memory. The go-audio decoders need to seek between chunks.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return bytes.NewReader(data), nil
}

// Closer returns r as an io.Closer, or nil when it has no Close method.
func Closer(r io.Reader) io.Closer {
	if c, ok := r.(io.Closer); ok {
		return c
	}
	return nil
}
