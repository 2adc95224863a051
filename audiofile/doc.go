// SPDX-License-Identifier: EPL-2.0

// Package audiofile moves audio buffers between disk and memory.
//
// Loading picks a decoder by extension (wav, mp3, ogg, aiff, aif) and decodes
// the whole file. Saving always writes 16-bit PCM WAV. Failures come back as
// *ReadError or *WriteError so callers can skip one file and keep going:
//
//	buf, err := loader.Load(path)
//	var re *audiofile.ReadError
//	if errors.As(err, &re) {
//	    // log and skip
//	}
package audiofile
