// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
)

// mockSource generates frames from a waveform function.
type mockSource struct {
	sampleRate int
	channels   int
	frames     int // frames to generate
	generated  int // frames generated so far
	waveform   func(frame int, channel int) float32
}

func newMockSource(sampleRate, channels, frames int, waveform func(frame int, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

func newSilentSource(sampleRate, channels, frames int) *mockSource {
	return newConstantSource(sampleRate, channels, frames, 0)
}

func newSineSource(sampleRate, channels, frames int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, frames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func newConstantSource(sampleRate, channels, frames int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }
func (m *mockSource) Close() error    { return nil }
func (m *mockSource) Reset()          { m.generated = 0 }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	toWrite := min(len(dst)/m.channels, m.frames-m.generated)
	for f := range toWrite {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += toWrite

	if m.generated >= m.frames {
		return toWrite * m.channels, io.EOF
	}

	return toWrite * m.channels, nil
}

// errSource fails after delivering its samples.
type errSource struct {
	mockSource
	err error
}

func (e *errSource) ReadSamples(dst []float32) (int, error) {
	n, _ := e.mockSource.ReadSamples(dst)
	return n, e.err
}
