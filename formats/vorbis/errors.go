// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNotVorbisFile indicates input without a readable Ogg Vorbis header.
var ErrNotVorbisFile = errors.New("not an Ogg Vorbis stream")
