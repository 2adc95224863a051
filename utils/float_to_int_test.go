// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"zero", 0.0, 0},
		{"max positive", 1.0, math.MaxInt16},
		{"max negative", -1.0, math.MinInt16},
		{"half positive", 0.5, 16384},
		{"half negative", -0.5, -16384},
		{"one step", 1.0 / 32768, 1},
		{"rounds to nearest", 1.6 / 32768, 2},
		{"largest positive step", 32767.0 / 32768, math.MaxInt16},
		{"clamp boosted sample", 1.3, math.MaxInt16},
		{"clamp boosted negative", -1.3, math.MinInt16},
		{"clamp noisy overshoot", 100.0, math.MaxInt16},
		{"not a number", float32(math.NaN()), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)
	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16 not monotonic: f=%v gives %v, previous %v", f, curr, prev)
		}
		prev = curr
	}
}

func TestFloat32ToInt16Slice(t *testing.T) {
	t.Parallel()

	src := []float32{0, 0.5, -2, 2}
	dst := make([]int, len(src))
	Float32ToInt16Slice(dst, src)

	want := []int{0, 16384, -32768, 32767}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func BenchmarkFloat32ToInt16Slice(b *testing.B) {
	src := make([]float32, 16000)
	for i := range src {
		src[i] = float32(math.Sin(float64(i) * 0.1))
	}
	dst := make([]int, len(src))

	b.ReportAllocs()

	for b.Loop() {
		Float32ToInt16Slice(dst, src)
	}
}

func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt16(0.5)
	})
	if allocs > 0 {
		t.Errorf("Float32ToInt16 allocated %v times, want 0", allocs)
	}
}
