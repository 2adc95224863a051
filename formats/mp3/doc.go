// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// The decoder always reports two channels: go-mp3 upmixes mono streams to
// interleaved stereo. Samples are delivered as float32 in [-1.0, 1.0].
//
//	src, err := mp3.Decoder{}.Decode(file)
//	buf, err := audio.Collect(src)
//
// MP3 is accepted as an input format for voice and noise recordings; augmented
// output is always written as WAV.
package mp3
