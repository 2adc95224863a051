// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/wakeaug/audio"
	"github.com/ik5/wakeaug/formats/internal/pcm"
)

// Decoder reads 16 and 24-bit PCM AIFF files.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	bits := int(dec.BitDepth)
	if bits != 16 && bits != 24 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}

	f := dec.Format()
	if f == nil || f.NumChannels < 1 || f.SampleRate < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	return pcm.NewSource(dec, f.SampleRate, f.NumChannels, bits), nil
}
