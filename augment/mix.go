// SPDX-License-Identifier: EPL-2.0

package augment

import (
	"fmt"
	"math"

	"github.com/ik5/wakeaug/audio"
)

// Power returns the mean square of all samples in buf. An empty buffer has
// zero power.
func Power(buf *audio.Buffer) float64 {
	if len(buf.Samples) == 0 {
		return 0
	}

	var sum float64
	for _, s := range buf.Samples {
		v := float64(s)
		sum += v * v
	}

	return sum / float64(len(buf.Samples))
}

// Gain returns the factor that brings noise of power noisePower to snrDB
// below a signal of power signalPower.
func Gain(signalPower, noisePower, snrDB float64) (float64, error) {
	if noisePower == 0 {
		return 0, fmt.Errorf("%w: silent noise", ErrAlignmentPrecondition)
	}

	snr := math.Pow(10, snrDB/10)
	g := math.Sqrt(signalPower / (snr * noisePower))
	if math.IsNaN(g) || math.IsInf(g, 0) {
		return 0, fmt.Errorf("%w: gain %v at %.1f dB", ErrAlignmentPrecondition, g, snrDB)
	}

	return g, nil
}

// Mix adds noise to signal at the given signal-to-noise ratio. noise must
// already be aligned to the signal: same frame count and channel layout.
//
// The result is not clipped or normalized and may exceed [-1, 1].
func Mix(signal, noise *audio.Buffer, snrDB float64) (*audio.Buffer, error) {
	if signal.Channels != noise.Channels || signal.Frames() != noise.Frames() {
		return nil, fmt.Errorf("%w: signal %dx%d, noise %dx%d", ErrShapeMismatch,
			signal.Frames(), signal.Channels, noise.Frames(), noise.Channels)
	}
	if len(signal.Samples) == 0 {
		return nil, fmt.Errorf("%w: empty signal", ErrAlignmentPrecondition)
	}

	g, err := Gain(Power(signal), Power(noise), snrDB)
	if err != nil {
		return nil, err
	}

	out := audio.NewBuffer(signal.SampleRate, signal.Channels, signal.Frames())
	for i, s := range signal.Samples {
		out.Samples[i] = float32(float64(s) + g*float64(noise.Samples[i]))
	}

	return out, nil
}
