// SPDX-License-Identifier: EPL-2.0

// Package wakeaug prepares training data for wake-word detection models.
//
// It downloads background and negative speech corpora and expands a small
// set of hand-recorded positive samples into a larger, more varied dataset
// by writing volume, speed and noise-mixed variants of every recording.
//
// # Packages
//
//   - audio: buffers, streaming sources, decoder registry, channel mixing
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff: decoders (and the WAV encoder)
//   - audiofile: load and save buffers by path
//   - augment: noise alignment, SNR mixing, transforms and the augmentation run
//   - prepare: dataset download, extraction and directory layout
//   - cmd/wakeaug: command line entry point
//
// # Quick Start
//
//	loader := audiofile.NewLoader()
//	aug := augment.NewAugmenter(loader, "data/augmented",
//	    augment.WithSeed(42))
//	report, err := aug.AugmentAll(ctx, "data/positive", "data/background")
//
// Every positive sample yields an unmodified copy, two volume variants, two
// speed variants and up to three variants mixed with random background noise
// at 15 dB SNR.
package wakeaug
