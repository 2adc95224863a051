// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// Buffer is a fully decoded, in-memory block of interleaved samples.
//
// Lengths are measured in frames: one frame holds one sample per channel.
// Functions that transform a Buffer return a new one and leave the input
// untouched.
type Buffer struct {
	Samples    []float32
	SampleRate int
	Channels   int
}

// NewBuffer allocates a zeroed buffer of the given number of frames.
func NewBuffer(sampleRate, channels, frames int) *Buffer {
	return &Buffer{
		Samples:    make([]float32, frames*channels),
		SampleRate: sampleRate,
		Channels:   channels,
	}
}

// Validate reports whether the buffer metadata is consistent.
func (b *Buffer) Validate() error {
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, b.SampleRate)
	}
	if b.Channels <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, b.Channels)
	}
	if len(b.Samples)%b.Channels != 0 {
		return fmt.Errorf("%w: %d samples, %d channels", ErrInvalidBuffer, len(b.Samples), b.Channels)
	}

	return nil
}

// Frames returns the buffer length in frames.
func (b *Buffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// Duration of the buffer at its sample rate.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.SampleRate)
}

// Frame returns the samples of frame i. The slice aliases the buffer.
func (b *Buffer) Frame(i int) []float32 {
	return b.Samples[i*b.Channels : (i+1)*b.Channels]
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	samples := make([]float32, len(b.Samples))
	copy(samples, b.Samples)

	return &Buffer{
		Samples:    samples,
		SampleRate: b.SampleRate,
		Channels:   b.Channels,
	}
}

// Slice returns a copy of frames [start, end).
func (b *Buffer) Slice(start, end int) *Buffer {
	out := NewBuffer(b.SampleRate, b.Channels, end-start)
	copy(out.Samples, b.Samples[start*b.Channels:end*b.Channels])

	return out
}
