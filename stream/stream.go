// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"github.com/faiface/beep"
	"github.com/ik5/ddsgen/audio"
	"github.com/ik5/ddsgen/utils"
)

// ResampleQuality is the beep.Resample quality used by NewResampled.
const ResampleQuality = 4

// Streamer plays a sample generator through beep. Each tick becomes one
// stereo frame with the same value on both channels. The stream never
// ends; bound it with beep.Take.
type Streamer struct {
	gen audio.SampleGenerator
}

var _ beep.Streamer = (*Streamer)(nil)

// New wraps gen, typically an *oscillator.Oscillator. The bit depth is read
// on every call so resolution changes apply to the next Stream.
func New(gen audio.SampleGenerator) *Streamer {
	return &Streamer{gen: gen}
}

// Stream fills samples and always reports ok.
func (s *Streamer) Stream(samples [][2]float64) (int, bool) {
	depth := s.gen.BitDepth()
	for i := range samples {
		v := float64(utils.UnsignedToFloat32(s.gen.NextSample(), depth))
		samples[i][0] = v
		samples[i][1] = v
	}

	return len(samples), true
}

// Err is always nil; generators cannot fail.
func (s *Streamer) Err() error { return nil }

// NewResampled wraps gen ticking at genRate and converts it to outRate for
// a speaker or mixer running at a different rate.
func NewResampled(gen audio.SampleGenerator, genRate, outRate int) beep.Streamer {
	return beep.Resample(ResampleQuality, beep.SampleRate(genRate), beep.SampleRate(outRate), New(gen))
}

// Format describes the streams produced here at sampleRate: stereo, with
// 16-bit precision for encoders.
func Format(sampleRate int) beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 2,
		Precision:   2,
	}
}
