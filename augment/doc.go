// SPDX-License-Identifier: EPL-2.0

// Package augment expands a small set of recorded wake-word samples into a
// larger training set.
//
// The building blocks are pure functions over audio.Buffer values:
//
//   - ScaleVolume multiplies samples by a factor.
//   - TimeStretch decimates or repeats frames, changing duration and pitch.
//   - Resample and Align bring a noise recording to the rate and length of
//     a sample.
//   - Mix adds aligned noise at a signal-to-noise ratio given in dB.
//
// None of them clip their output, so louder variants may exceed [-1, 1];
// the WAV encoder clamps when the result is written.
//
// An Augmenter applies a Policy to every sample. With DefaultPolicy one
// sample yields up to eight files:
//
//	aug_hello_original.wav
//	aug_hello_vol0.7.wav   aug_hello_vol1.3.wav
//	aug_hello_speed0.9.wav aug_hello_speed1.1.wav
//	aug_hello_noise0.wav   aug_hello_noise1.wav   aug_hello_noise2.wav
//
// A variant that fails is logged and skipped; the others are still
// written. Noise files and crop offsets are drawn from a seeded generator,
// so a run can be repeated exactly with WithSeed.
package augment
