// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the integer PCM readers of go-audio codecs to
// audio.Source.
package pcm

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/wakeaug/utils"
)

const defaultBufSize = 4096

// Reader is what *wav.Decoder and *aiff.Decoder from go-audio have in
// common.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source converts integer samples of a fixed bit depth to float32 in
// [-1, 1).
type Source struct {
	r          Reader
	sampleRate int
	channels   int
	bitDepth   int
	ints       *goaudio.IntBuffer
}

// NewSource wraps r, whose samples are bitDepth wide.
func NewSource(r Reader, sampleRate, channels, bitDepth int) *Source {
	return &Source{
		r:          r,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

// BufSize is the size of the last read, or a default before the first.
func (s *Source) BufSize() int {
	if s.ints == nil {
		return defaultBufSize
	}
	return cap(s.ints.Data)
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.ints == nil || cap(s.ints.Data) < len(dst) {
		s.ints = &goaudio.IntBuffer{Data: make([]int, len(dst)), Format: s.r.Format()}
	}
	s.ints.Data = s.ints.Data[:len(dst)]

	n, err := s.r.PCMBuffer(s.ints)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("pcm: %w", err)
		}
		return 0, io.EOF
	}

	for i, v := range s.ints.Data[:n] {
		dst[i] = utils.IntToFloat32(v, s.bitDepth)
	}

	// go-audio signals the end of the data chunk with a short read
	if n < len(dst) && err == nil {
		err = io.EOF
	}

	return n, err
}
