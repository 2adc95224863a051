// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/wakeaug/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is what source uses of *oggvorbis.Reader. Read fills p with
// interleaved samples and reports how many values it wrote.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read(p []float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	dst = dst[:len(dst)-len(dst)%s.channels]
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst)
	switch {
	case err == nil && n == 0:
		return 0, io.EOF
	case err != nil && err != io.EOF:
		return n, fmt.Errorf("vorbis: %w", err)
	}

	return n, err
}

// Decoder reads Ogg Vorbis streams of any channel count.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("vorbis: %w", err)
	}

	ch := dec.Channels()
	if ch < 1 {
		return nil, ErrNoChannels
	}

	return &source{dec: dec, sampleRate: dec.SampleRate(), channels: ch}, nil
}
