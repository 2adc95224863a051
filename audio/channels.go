// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Downmix averages all channels of buf into a mono buffer.
func Downmix(buf *Buffer) (*Buffer, error) {
	if buf.Channels == 1 {
		return buf.Clone(), nil
	}

	mono, err := Collect(NewMonoMixer(NewBufferSource(buf)))
	if err != nil {
		return nil, fmt.Errorf("downmix: %w", err)
	}

	return mono, nil
}

// ConvertChannels returns buf laid out with the requested channel count.
// Layouts that differ are downmixed to mono first, and the mono signal is
// then copied into every output channel.
func ConvertChannels(buf *Buffer, channels int) (*Buffer, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}
	if buf.Channels == channels {
		return buf.Clone(), nil
	}

	mono, err := Downmix(buf)
	if err != nil {
		return nil, err
	}
	if channels == 1 {
		return mono, nil
	}

	out := NewBuffer(mono.SampleRate, channels, mono.Frames())
	for f, v := range mono.Samples {
		for c := range channels {
			out.Samples[f*channels+c] = v
		}
	}

	return out, nil
}
