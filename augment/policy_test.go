// SPDX-License-Identifier: EPL-2.0

package augment

import (
	"errors"
	"math"
	"testing"
)

func TestFormatFactor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0.7, "0.7"},
		{1.3, "1.3"},
		{0.9, "0.9"},
		{1.1, "1.1"},
		{1, "1.0"},
		{2, "2.0"},
		{0.25, "0.25"},
		{1e-5, "1e-05"},
	}

	for _, tt := range tests {
		if got := FormatFactor(tt.in); got != tt.want {
			t.Errorf("FormatFactor(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		got, want string
	}{
		{VolumeTag(0.7), "vol0.7"},
		{VolumeTag(1.3), "vol1.3"},
		{SpeedTag(0.9), "speed0.9"},
		{SpeedTag(1.1), "speed1.1"},
		{NoiseTag(0), "noise0"},
		{NoiseTag(2), "noise2"},
		{OutputName("aug", "hey_computer", OriginalTag), "aug_hey_computer_original.wav"},
		{OutputName("aug", "s1", VolumeTag(0.7)), "aug_s1_vol0.7.wav"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestPolicy_Variants(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	tests := []struct {
		noise, want int
	}{
		{0, 5},
		{1, 6},
		{3, 8},
		{50, 8},
	}

	for _, tt := range tests {
		if got := p.Variants(tt.noise); got != tt.want {
			t.Errorf("Variants(%d) = %d, want %d", tt.noise, got, tt.want)
		}
	}

	p.IncludeOriginal = false
	if got := p.Variants(3); got != 7 {
		t.Errorf("Variants(3) without original = %d, want 7", got)
	}
}

func TestPolicy_Validate(t *testing.T) {
	t.Parallel()

	if err := DefaultPolicy().Validate(); err != nil {
		t.Fatalf("DefaultPolicy().Validate() error = %v", err)
	}

	tests := []struct {
		name   string
		modify func(*Policy)
	}{
		{"empty prefix", func(p *Policy) { p.Prefix = "" }},
		{"prefix with separator", func(p *Policy) { p.Prefix = "a/b" }},
		{"zero speed", func(p *Policy) { p.SpeedRates = []float64{0} }},
		{"NaN volume", func(p *Policy) { p.VolumeFactors = []float64{math.NaN()} }},
		{"negative noise count", func(p *Policy) { p.NoiseVariants = -1 }},
		{"infinite SNR", func(p *Policy) { p.SNRdB = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := DefaultPolicy()
			tt.modify(&p)
			if err := p.Validate(); err == nil {
				t.Error("Validate() error = nil, want an error")
			}
		})
	}

	p := DefaultPolicy()
	p.SpeedRates = []float64{-1}
	if err := p.Validate(); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("Validate() error = %v, want ErrInvalidRate", err)
	}
}
