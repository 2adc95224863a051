// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/wakeaug/audio"
	"github.com/ik5/wakeaug/formats/internal/pcm"
)

const wavFormatPCM = 1

// Decoder reads integer PCM WAV files (16, 24 or 32 bit) of any channel
// count and sample rate, skipping unknown RIFF chunks.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := seekable(r)
	if err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	dec.ReadInfo()

	if dec.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	bits := int(dec.BitDepth)
	if bits != 16 && bits != 24 && bits != 32 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}

	f := dec.Format()
	if f == nil || f.NumChannels < 1 || f.SampleRate < 1 {
		return nil, ErrUnsupportedWavLayout
	}

	return pcm.NewSource(dec, f.SampleRate, f.NumChannels, bits), nil
}

// seekable buffers r in memory unless it can already seek, which the
// go-audio RIFF parser needs.
func seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}
	return bytes.NewReader(data), nil
}
