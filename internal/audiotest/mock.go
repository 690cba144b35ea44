// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds deterministic sources for tests. The types satisfy
// audio.Source and audio.SampleGenerator without importing the audio package.
package audiotest

import (
	"io"
	"math"
)

// MockSource plays totalFrames frames computed by a waveform callback.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame, channel int) float32

	// Err, when set, is returned by ReadSamples instead of data.
	Err error
	// Closed records whether Close was called.
	Closed bool
}

func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalFrames, 0)
}

func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewCycleSource plays exactly one period of a sine over totalFrames frames,
// which is what wavetable import expects.
func NewCycleSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * float64(frame) / float64(totalFrames)))
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.Closed = true
	return m.Err
}

// Reset rewinds the source.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalFrames-m.generated)
	for f := range frames {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.generated+f, c)
		}
	}

	m.generated += frames
	n := frames * m.channels

	if m.generated >= m.totalFrames {
		return n, io.EOF
	}

	return n, nil
}

// CountingGenerator yields 0, 1, 2, ... wrapping at the bit depth.
type CountingGenerator struct {
	Depth int
	next  uint16
}

func (g *CountingGenerator) BitDepth() int { return g.Depth }

func (g *CountingGenerator) NextSample() uint16 {
	s := g.next
	g.next++
	if g.Depth <= 8 {
		g.next &= 0xFF
	}

	return s
}
