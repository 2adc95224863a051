// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory and streaming audio primitives the
// rest of the module is built on.
//
//   - Buffer: a fully decoded block of interleaved float32 samples
//   - Source / Decoder: streaming decode interfaces implemented by formats/*
//   - Registry: decoders keyed by file extension
//   - Collect / BufferSource: move between streams and buffers
//   - MonoMixer, Downmix, ConvertChannels: channel layout changes
//
// # Sample Format
//
// Samples are float32, nominally in [-1.0, 1.0]. Buffers produced by gain or
// noise mixing may exceed that range; clamping happens only when a buffer is
// encoded to PCM.
//
// # Frames
//
// Lengths are counted in frames. A stereo buffer of 100 frames holds 200
// samples laid out L R L R ...
//
// # Reading Streams
//
// Sources return io.EOF once the stream is drained; Collect handles the loop:
//
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	buf, err := audio.Collect(src)
package audio
