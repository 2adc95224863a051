// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

// createWAVFile builds a canonical 16-bit PCM WAV. Extra chunks are placed
// between the fmt and data chunks.
func createWAVFile(sampleRate, channels int, samples []int16, extra ...[]byte) []byte {
	return createWAVWithFormat(1, 16, sampleRate, channels, samplesToBytes(samples), extra...)
}

func createWAVWithFormat(formatTag, bits, sampleRate, channels int, data []byte, extra ...[]byte) []byte {
	buf := new(bytes.Buffer)

	blockAlign := channels * bits / 8
	byteRate := sampleRate * blockAlign
	extraSize := 0
	for _, e := range extra {
		extraSize += len(e)
	}

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+extraSize+len(data)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(formatTag))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(bits))

	for _, e := range extra {
		buf.Write(e)
	}

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	return buf.Bytes()
}

func samplesToBytes(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

func readAll(t *testing.T, src interface {
	ReadSamples([]float32) (int, error)
}, size int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, size)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestDecoder_Metadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   int
	}{
		{"mono 8kHz", 8000, 1},
		{"mono 16kHz", 16000, 1},
		{"stereo 44.1kHz", 44100, 2},
		{"stereo 48kHz", 48000, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := createWAVFile(tt.sampleRate, tt.channels, make([]int16, 100*tt.channels))
			src, err := Decoder{}.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode() error = %v, want nil", err)
			}
			if src.SampleRate() != tt.sampleRate {
				t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), tt.sampleRate)
			}
			if src.Channels() != tt.channels {
				t.Errorf("Channels() = %d, want %d", src.Channels(), tt.channels)
			}
			if err := src.Close(); err != nil {
				t.Errorf("Close() error = %v", err)
			}
		})
	}
}

func TestDecoder_SampleValues(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, 32767, -16384, -32768}
	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(16000, 1, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got := readAll(t, src, 2)
	want := []float32{0.0, 0.5, 1.0, -0.5, -1.0}
	if len(got) != len(want) {
		t.Fatalf("read %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 0.001 {
			t.Errorf("sample %d = %v, want ≈%v", i, got[i], want[i])
		}
	}
}

func TestDecoder_SkipsUnknownChunks(t *testing.T) {
	t.Parallel()

	list := new(bytes.Buffer)
	list.WriteString("LIST")
	binary.Write(list, binary.LittleEndian, uint32(4))
	list.WriteString("INFO")

	data := createWAVFile(16000, 1, []int16{100, 200, 300}, list.Bytes())
	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if got := readAll(t, src, 16); len(got) != 3 {
		t.Errorf("read %d samples, want 3", len(got))
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	data := createWAVFile(8000, 1, []int16{1, 2, 3, 4})
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got := readAll(t, src, 3); len(got) != 4 {
		t.Errorf("read %d samples, want 4", len(got))
	}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"garbage", []byte("NOT A WAV FILE DATA"), ErrNotWavFile},
		{"empty", nil, ErrNotWavFile},
		{"truncated header", []byte("RIFF\x00"), ErrNotWavFile},
		{"8-bit PCM", createWAVWithFormat(1, 8, 8000, 1, make([]byte, 16)), nil},
		{"IEEE float", createWAVWithFormat(3, 32, 8000, 1, make([]byte, 16)), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if err == nil {
				t.Fatal("Decode() error = nil, want error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func BenchmarkDecoder_Decode(b *testing.B) {
	data := createWAVFile(16000, 1, make([]int16, 16000))
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		src, err := Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			b.Fatal(err)
		}
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
