// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"
)

func TestMonoMixer_ReadSamples(t *testing.T) {
	t.Parallel()

	// channel c of every frame carries c/10
	byChannel := func(_ int, c int) float32 { return float32(c) / 10 }

	tests := []struct {
		name     string
		channels int
		want     float32
	}{
		{"mono passthrough", 1, 0},
		{"stereo", 2, 0.05},
		{"quad", 4, 0.15},
		{"5.1", 6, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mixer := NewMonoMixer(newMockSource(8000, tt.channels, 100, byChannel))
			if mixer.Channels() != 1 || mixer.SampleRate() != 8000 {
				t.Fatalf("format = %d Hz/%d ch, want 8000 Hz/1 ch", mixer.SampleRate(), mixer.Channels())
			}

			dst := make([]float32, 10)
			n, err := mixer.ReadSamples(dst)
			if n != 10 || err != nil {
				t.Fatalf("ReadSamples() = %d, %v, want 10, nil", n, err)
			}
			for i, v := range dst {
				if math.Abs(float64(v-tt.want)) > 1e-6 {
					t.Errorf("dst[%d] = %v, want %v", i, v, tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_Drain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		frames int
		size   int
	}{
		{"short source", 5, 10},
		{"many reads", 20000, 16384},
		{"exact multiple", 300, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mixer := NewMonoMixer(newSineSource(16000, 2, tt.frames, 440))
			dst := make([]float32, tt.size)

			total := 0
			for {
				n, err := mixer.ReadSamples(dst)
				total += n
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("ReadSamples() error = %v", err)
				}
			}
			if total != tt.frames {
				t.Errorf("read %d frames, want %d", total, tt.frames)
			}

			if n, err := mixer.ReadSamples(dst); n != 0 || err != io.EOF {
				t.Errorf("ReadSamples() after end = %d, %v, want 0, io.EOF", n, err)
			}
		})
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(newSilentSource(8000, 2, 100))
	if n, err := mixer.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestMonoMixer_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("decoder broke")
	src := &errSource{mockSource: *newConstantSource(8000, 2, 4, 0.5), err: boom}

	dst := make([]float32, 8)
	n, err := NewMonoMixer(src).ReadSamples(dst)
	if !errors.Is(err, boom) {
		t.Fatalf("ReadSamples() error = %v, want %v", err, boom)
	}
	if n != 4 || dst[0] != 0.5 {
		t.Errorf("ReadSamples() = %d frames, first %v, want 4 frames of 0.5", n, dst[0])
	}
}

func BenchmarkMonoMixer_StereoToMono(b *testing.B) {
	src := newSineSource(8000, 2, 100000, 440.0)
	mixer := NewMonoMixer(src)
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		src.Reset()
		for {
			if _, err := mixer.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
