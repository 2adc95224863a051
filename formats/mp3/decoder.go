// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/wakeaug/audio"
	"github.com/ik5/wakeaug/utils"
)

// go-mp3 decodes to interleaved 16-bit little-endian stereo regardless of
// the channel mode of the stream.
const (
	outputChannels = 2
	bytesPerSample = 2
)

// mp3Reader is what source uses of *gomp3.Decoder.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	pending    []byte // odd trailing byte of the previous read
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return outputChannels }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	size := len(dst) * bytesPerSample
	if cap(s.buf) < size {
		s.buf = make([]byte, size)
	}
	s.buf = s.buf[:size]
	head := copy(s.buf, s.pending)

	n, err := s.dec.Read(s.buf[head:])
	raw := s.buf[:head+n]

	got := utils.Int16LEToFloat32(dst, raw)
	s.pending = append(s.pending[:0], raw[got*bytesPerSample:]...)

	if err != nil && err != io.EOF {
		return got, fmt.Errorf("mp3: %w", err)
	}
	return got, err
}

// Decoder reads MPEG-1/2 Layer III streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
