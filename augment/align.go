// SPDX-License-Identifier: EPL-2.0

package augment

import (
	"fmt"
	"math/rand/v2"

	"github.com/ik5/wakeaug/audio"
)

// Align returns a copy of noise that is exactly frames long.
//
// Shorter noise is repeated end to end and truncated. There is no
// cross-fade at the seams, so tile boundaries may click. Longer noise is
// cropped to a window whose start is drawn uniformly from
// [0, noise.Frames()-frames] using rng.
func Align(noise *audio.Buffer, frames int, rng *rand.Rand) (*audio.Buffer, error) {
	if frames < 0 {
		return nil, fmt.Errorf("%w: negative target length %d", ErrAlignmentPrecondition, frames)
	}

	n := noise.Frames()
	switch {
	case n == frames:
		return noise.Clone(), nil
	case n > frames:
		start := rng.IntN(n - frames + 1)
		return noise.Slice(start, start+frames), nil
	case n == 0:
		return nil, fmt.Errorf("%w: empty noise for %d frames", ErrAlignmentPrecondition, frames)
	}

	out := audio.NewBuffer(noise.SampleRate, noise.Channels, frames)
	for off := 0; off < len(out.Samples); off += len(noise.Samples) {
		copy(out.Samples[off:], noise.Samples)
	}

	return out, nil
}

// Resample retimes noise to targetRate by linear interpolation.
//
// The output holds int(N*targetRate/sourceRate) frames, and output frame i
// reads the input at position i*N/(M-1), so the grid spans the whole input
// and its last point is clamped to the final frame. There is no
// anti-aliasing filter. Equal rates return a copy.
func Resample(noise *audio.Buffer, targetRate int) (*audio.Buffer, error) {
	if targetRate <= 0 {
		return nil, fmt.Errorf("%w: target sample rate %d", ErrInvalidRate, targetRate)
	}
	if noise.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: source sample rate %d", ErrInvalidRate, noise.SampleRate)
	}
	if noise.SampleRate == targetRate {
		return noise.Clone(), nil
	}

	n := noise.Frames()
	m := int(int64(n) * int64(targetRate) / int64(noise.SampleRate))
	ch := noise.Channels
	out := audio.NewBuffer(targetRate, ch, m)

	if n == 0 || m == 0 {
		return out, nil
	}

	step := 0.0
	if m > 1 {
		step = float64(n) / float64(m-1)
	}

	last := n - 1
	for i := range m {
		pos := float64(i) * step
		idx := int(pos)
		if idx >= last {
			copy(out.Samples[i*ch:(i+1)*ch], noise.Samples[last*ch:])
			continue
		}

		frac := float32(pos - float64(idx))
		for c := range ch {
			a := noise.Samples[idx*ch+c]
			b := noise.Samples[(idx+1)*ch+c]
			out.Samples[i*ch+c] = a + (b-a)*frac
		}
	}

	return out, nil
}
