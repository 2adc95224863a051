// SPDX-License-Identifier: EPL-2.0

package audio

// MonoMixer downmixes a multi-channel Source to mono by averaging channels.
// Mono sources pass straight through.
type MonoMixer struct {
	src     Source
	scratch []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{src: src}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }
func (m *MonoMixer) Close() error    { return m.src.Close() }

// ReadSamples writes up to len(dst) mono frames.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	ch := m.src.Channels()
	if ch == 1 {
		return m.src.ReadSamples(dst)
	}

	want := len(dst) * ch
	if cap(m.scratch) < want {
		m.scratch = make([]float32, want)
	}
	in := m.scratch[:want]

	n, err := m.src.ReadSamples(in)
	frames := n / ch
	w := 1 / float32(ch)
	for f := range frames {
		var sum float32
		for _, v := range in[f*ch : (f+1)*ch] {
			sum += v
		}
		dst[f] = sum * w
	}

	return frames, err
}
