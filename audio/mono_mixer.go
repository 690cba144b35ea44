// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer averages the channels of src into a single channel.
type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("closing mono source: %w", err)
	}

	return nil
}

// ReadSamples fills dst with up to len(dst) mono frames.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * channels
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	frames := n / channels
	inv := 1 / float32(channels)

	for f := range frames {
		base := f * channels
		var sum float32
		for c := range channels {
			sum += m.tmp[base+c]
		}
		dst[f] = sum * inv
	}

	return frames, err
}
