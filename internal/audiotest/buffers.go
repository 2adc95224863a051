// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"
	"math/rand/v2"

	"github.com/ik5/wakeaug/audio"
)

// Sine returns a buffer holding a sine wave of the given amplitude on every
// channel.
func Sine(sampleRate, channels, frames int, frequency, amplitude float64) *audio.Buffer {
	buf := audio.NewBuffer(sampleRate, channels, frames)
	for f := range frames {
		t := float64(f) / float64(sampleRate)
		v := float32(amplitude * math.Sin(2*math.Pi*frequency*t))
		for ch := range channels {
			buf.Samples[f*channels+ch] = v
		}
	}

	return buf
}

// Ramp returns a mono buffer whose frame i holds float32(i) * step.
// Distinct values make slices and tiles easy to recognize.
func Ramp(sampleRate, frames int, step float32) *audio.Buffer {
	buf := audio.NewBuffer(sampleRate, 1, frames)
	for i := range buf.Samples {
		buf.Samples[i] = float32(i) * step
	}

	return buf
}

// Noise returns uniform white noise in [-amplitude, amplitude] drawn from a
// seeded generator, so fixtures are reproducible.
func Noise(sampleRate, channels, frames int, amplitude float64, seed uint64) *audio.Buffer {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	buf := audio.NewBuffer(sampleRate, channels, frames)
	for i := range buf.Samples {
		buf.Samples[i] = float32(amplitude * (2*rng.Float64() - 1))
	}

	return buf
}

// Silence returns an all-zero buffer.
func Silence(sampleRate, channels, frames int) *audio.Buffer {
	return audio.NewBuffer(sampleRate, channels, frames)
}
