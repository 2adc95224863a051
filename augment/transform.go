// SPDX-License-Identifier: EPL-2.0

package augment

import (
	"fmt"
	"math"

	"github.com/ik5/wakeaug/audio"
)

// ScaleVolume multiplies every sample by factor. Nothing is clamped.
func ScaleVolume(signal *audio.Buffer, factor float64) *audio.Buffer {
	out := audio.NewBuffer(signal.SampleRate, signal.Channels, signal.Frames())
	f := float32(factor)
	for i, s := range signal.Samples {
		out.Samples[i] = s * f
	}

	return out
}

// TimeStretch gathers the frames at positions 0, rate, 2*rate, ... below
// the frame count, truncating each position to an integer.
//
// Rates above 1 shorten the signal and rates below 1 lengthen it by
// repeating frames. Pitch shifts along with duration and no filtering is
// applied. The sample rate is unchanged.
func TimeStretch(signal *audio.Buffer, rate float64) (*audio.Buffer, error) {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRate, rate)
	}
	if rate == 1 {
		return signal.Clone(), nil
	}

	n := signal.Frames()
	ch := signal.Channels
	m := int(math.Ceil(float64(n) / rate))
	samples := make([]float32, 0, m*ch)

	for i := 0; ; i++ {
		idx := int(float64(i) * rate)
		if idx >= n {
			break
		}
		samples = append(samples, signal.Frame(idx)...)
	}

	return &audio.Buffer{
		Samples:    samples,
		SampleRate: signal.SampleRate,
		Channels:   ch,
	}, nil
}
