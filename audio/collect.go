// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

const defaultReadSize = 4096

// Collect drains src into a Buffer. The source is not closed.
func Collect(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	size := src.BufSize()
	if size <= 0 {
		size = defaultReadSize
	}
	// Round the read size to whole frames so no frame is split between reads.
	size -= size % channels
	if size == 0 {
		size = channels
	}

	out := &Buffer{
		SampleRate: src.SampleRate(),
		Channels:   channels,
	}
	buf := make([]float32, size)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out.Samples = append(out.Samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("collect: %w", err)
		}

		if n == 0 {
			// A decoder that reports neither data nor EOF is exhausted.
			break
		}
	}

	// Drop a trailing partial frame from a truncated stream.
	if extra := len(out.Samples) % channels; extra != 0 {
		out.Samples = out.Samples[:len(out.Samples)-extra]
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}

	return out, nil
}

// BufferSource streams a Buffer through the Source interface so in-memory
// audio can be fed to stream processors such as MonoMixer.
type BufferSource struct {
	buf *Buffer
	pos int
}

func NewBufferSource(buf *Buffer) *BufferSource {
	return &BufferSource{buf: buf}
}

func (s *BufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *BufferSource) Channels() int   { return s.buf.Channels }
func (s *BufferSource) BufSize() int    { return defaultReadSize }
func (s *BufferSource) Close() error    { return nil }

func (s *BufferSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.buf.Channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if s.pos >= len(s.buf.Samples) {
		return 0, io.EOF
	}

	n := copy(dst, s.buf.Samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.buf.Samples) {
		return n, io.EOF
	}

	return n, nil
}
