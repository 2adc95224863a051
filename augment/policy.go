// SPDX-License-Identifier: EPL-2.0

package augment

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind groups variants by the transform that produced them.
type Kind string

const (
	KindOriginal Kind = "original"
	KindVolume   Kind = "volume"
	KindSpeed    Kind = "speed"
	KindNoise    Kind = "noise"
)

// Policy decides which variants are produced for every positive sample.
type Policy struct {
	// Prefix starts every output file name.
	Prefix string

	// IncludeOriginal writes an unmodified copy of each sample.
	IncludeOriginal bool

	VolumeFactors []float64
	SpeedRates    []float64

	// NoiseVariants caps the number of distinct noise files mixed into each
	// sample. Fewer are used when the library is smaller.
	NoiseVariants int
	SNRdB         float64
}

// DefaultPolicy returns one original copy, volume 0.7 and 1.3, speed 0.9
// and 1.1, and up to three noise mixes at 15 dB.
func DefaultPolicy() Policy {
	return Policy{
		Prefix:          "aug",
		IncludeOriginal: true,
		VolumeFactors:   []float64{0.7, 1.3},
		SpeedRates:      []float64{0.9, 1.1},
		NoiseVariants:   3,
		SNRdB:           15,
	}
}

// Validate checks the settings that would otherwise fail every sample.
func (p Policy) Validate() error {
	var errs []error

	if p.Prefix == "" {
		errs = append(errs, errors.New("empty output prefix"))
	}
	if strings.ContainsAny(p.Prefix, `/\`) {
		errs = append(errs, fmt.Errorf("output prefix %q contains a path separator", p.Prefix))
	}
	for _, r := range p.SpeedRates {
		if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			errs = append(errs, fmt.Errorf("%w: speed %v", ErrInvalidRate, r))
		}
	}
	for _, f := range p.VolumeFactors {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			errs = append(errs, fmt.Errorf("volume factor %v is not finite", f))
		}
	}
	if p.NoiseVariants < 0 {
		errs = append(errs, fmt.Errorf("negative noise variant count %d", p.NoiseVariants))
	}
	if math.IsNaN(p.SNRdB) || math.IsInf(p.SNRdB, 0) {
		errs = append(errs, fmt.Errorf("SNR %v dB is not finite", p.SNRdB))
	}

	return errors.Join(errs...)
}

// Variants returns how many outputs one sample yields when every write
// succeeds and noiseFiles background recordings are available.
func (p Policy) Variants(noiseFiles int) int {
	n := len(p.VolumeFactors) + len(p.SpeedRates) + min(max(p.NoiseVariants, 0), noiseFiles)
	if p.IncludeOriginal {
		n++
	}

	return n
}

// FormatFactor renders f the shortest way that still reads as a decimal:
// 0.7 stays "0.7" and 1 becomes "1.0".
func FormatFactor(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}

	return s + ".0"
}

// VolumeTag names a volume variant, e.g. "vol0.7".
func VolumeTag(factor float64) string { return "vol" + FormatFactor(factor) }

// SpeedTag names a speed variant, e.g. "speed1.1".
func SpeedTag(rate float64) string { return "speed" + FormatFactor(rate) }

// NoiseTag names the noise variant at position i of the noise draw.
func NoiseTag(i int) string { return "noise" + strconv.Itoa(i) }

// OriginalTag names the unmodified copy.
const OriginalTag = "original"

// OutputName returns "{prefix}_{base}_{tag}.wav".
func OutputName(prefix, base, tag string) string {
	return prefix + "_" + base + "_" + tag + ".wav"
}
