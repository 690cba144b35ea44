// SPDX-License-Identifier: EPL-2.0

package ddsgen

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/ik5/ddsgen/audio"
	"github.com/ik5/ddsgen/utils"
)

// ResampleToMono16 drains src through a resampler to targetRate and a mono
// mixer, and collects the result as signed 16-bit PCM. bufferSize is the
// read size in mono samples; values <= 0 use src.BufSize().
//
// The returned rate is always targetRate. io.EOF from the pipeline is the
// normal end and is not returned.
//
//	src, _ := wav.Decoder{}.Decode(f)
//	pcm16, rate, err := ddsgen.ResampleToMono16(src, 8000, 4096)
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	if targetRate <= 0 {
		return nil, targetRate, ErrInvalidRate
	}
	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}

	mono := audio.NewMonoMixer(audio.NewResampler(src, targetRate))

	pcm16 := make([]int16, 0, targetRate)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			pcm16 = slices.Grow(pcm16, n)
			for _, x := range buf[:n] {
				pcm16 = append(pcm16, utils.Float32ToInt16(x))
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, targetRate, fmt.Errorf("resampling to %d Hz: %w", targetRate, err)
		}
	}

	return pcm16, targetRate, nil
}
