// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/wakeaug/audio"
	"github.com/ik5/wakeaug/formats/wav"
)

// Example_roundTrip writes a buffer to disk and reads it back.
func Example_roundTrip() {
	dir, _ := os.MkdirTemp("", "wav-example")
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "tone.wav")

	in := &audio.Buffer{
		Samples:    []float32{0, 0.5, -0.5, 0.25},
		SampleRate: 16000,
		Channels:   1,
	}

	out, _ := os.Create(path)
	if err := wav.Encode(out, in); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	out.Close()

	f, _ := os.Open(path)
	defer f.Close()

	src, err := wav.Decoder{}.Decode(f)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	buf, _ := audio.Collect(src)

	fmt.Printf("Rate: %d Hz, channels: %d, frames: %d\n", buf.SampleRate, buf.Channels, buf.Frames())
	fmt.Printf("Samples: %.2f\n", buf.Samples)
	// Output:
	// Rate: 16000 Hz, channels: 1, frames: 4
	// Samples: [0.00 0.50 -0.50 0.25]
}
