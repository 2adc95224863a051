// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files on top of github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts integer PCM at 16, 24 or 32 bits, any channel count and
// any sample rate. Unknown RIFF chunks (LIST, fact, ...) are skipped by
// go-audio:
//
//	src, err := wav.Decoder{}.Decode(file)
//	buf, err := audio.Collect(src)
//
// # Encoding
//
// Encode always writes 16-bit PCM and keeps the buffer's sample rate and
// channel layout. The writer must be seekable because the RIFF sizes are
// patched once all samples are written:
//
//	f, _ := os.Create("out.wav")
//	err := wav.Encode(f, buf)
//
// Samples outside [-1, 1] are clamped during conversion; nothing upstream
// normalizes augmented audio, so loud variants saturate here.
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrUnsupportedEncoding: float or compressed WAV
//   - ErrUnsupportedBitDepth: 8-bit or exotic sample sizes
//   - ErrEmptyBuffer: Encode was given zero frames
package wav
