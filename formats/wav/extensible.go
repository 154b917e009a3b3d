// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// The subformat GUID of WAVE_FORMAT_EXTENSIBLE starts 24 bytes into the fmt
// chunk; its first two bytes are the plain format tag (1 for integer PCM,
// 3 for IEEE float).
const (
	subFormatOffset  = 24
	extensibleFmtLen = subFormatOffset + 16
)

var errNoFmtChunk = errors.New("no fmt chunk")

// subFormat returns the format tag embedded in the extensible fmt chunk of
// the RIFF stream in rs. rs is rewound before and after the scan.
func subFormat(rs io.ReadSeeker) (uint16, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	defer func() { _, _ = rs.Seek(0, io.SeekStart) }()

	p := riff.New(rs)
	if err := p.ParseHeaders(); err != nil {
		return 0, err
	}

	for {
		ch, err := p.NextChunk()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, errNoFmtChunk
			}
			return 0, err
		}

		if ch.ID != riff.FmtID {
			ch.Drain()
			continue
		}

		if ch.Size < extensibleFmtLen {
			return 0, fmt.Errorf("extensible fmt chunk is %d bytes, want %d", ch.Size, extensibleFmtLen)
		}

		body := make([]byte, extensibleFmtLen)
		if _, err := io.ReadFull(ch, body); err != nil {
			return 0, err
		}

		return binary.LittleEndian.Uint16(body[subFormatOffset:]), nil
	}
}
