// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// Channel layout and sample rate are taken from the stream header and
// preserved. Samples are float32 in [-1.0, 1.0]:
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	buf, err := audio.Collect(src)
//
// Reads are rounded down to whole frames so interleaving is never broken
// between calls.
package vorbis
