// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMP3File indicates input go-mp3 could not find a frame header in.
var ErrNotMP3File = errors.New("not an MP3 stream")
