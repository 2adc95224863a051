// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/wakeaug/audio"
	"github.com/ik5/wakeaug/utils"
)

const encodeChunkFrames = 8192

// Encode writes buf as a 16-bit PCM WAV, keeping its sample rate and
// channel layout. Samples outside [-1, 1] are clamped.
func Encode(w io.WriteSeeker, buf *audio.Buffer) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("wav encode: %w", err)
	}
	if len(buf.Samples) == 0 {
		return ErrEmptyBuffer
	}

	enc := gowav.NewEncoder(w, buf.SampleRate, 16, buf.Channels, wavFormatPCM)
	format := &goaudio.Format{NumChannels: buf.Channels, SampleRate: buf.SampleRate}

	chunk := encodeChunkFrames * buf.Channels
	intBuf := &goaudio.IntBuffer{
		Format:         format,
		Data:           make([]int, min(chunk, len(buf.Samples))),
		SourceBitDepth: 16,
	}

	for i := 0; i < len(buf.Samples); i += chunk {
		end := min(i+chunk, len(buf.Samples))
		intBuf.Data = intBuf.Data[:end-i]
		utils.Float32ToInt16Slice(intBuf.Data, buf.Samples[i:end])

		if err := enc.Write(intBuf); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing header: %w", err)
	}

	return nil
}
