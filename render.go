// SPDX-License-Identifier: EPL-2.0

package ddsgen

import (
	"github.com/ik5/ddsgen/audio"
	"github.com/ik5/ddsgen/oscillator"
)

// DefaultBufferSize is the read size RenderPCM16 uses when none is given.
const DefaultBufferSize = 4096

// Render fills dst with consecutive samples of o and returns len(dst).
// A nil oscillator renders silence.
func Render(o *oscillator.Oscillator, dst []uint16) int {
	for i := range dst {
		dst[i] = o.NextSample()
	}

	return len(dst)
}

// RenderPCM16 ticks o n times at oscRate, resamples the result to
// targetRate and returns it as signed 16-bit mono PCM centred on zero.
// Resampling preserves duration, so about n*targetRate/oscRate samples are
// returned. When oscRate equals targetRate the samples are not altered
// beyond the unsigned to signed conversion.
func RenderPCM16(o *oscillator.Oscillator, oscRate, targetRate, n, bufferSize int) ([]int16, int, error) {
	if oscRate <= 0 || targetRate <= 0 {
		return nil, targetRate, ErrInvalidRate
	}
	if n <= 0 {
		return nil, targetRate, ErrInvalidLength
	}
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	gen := audio.NewGenerator(o, oscRate, n)
	return ResampleToMono16(gen, targetRate, bufferSize)
}
