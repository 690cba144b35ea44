// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. The encoder seeks
// back to patch the RIFF and data chunk sizes, so w must support seeking;
// Buffer provides an in-memory target.
func WriteWAV16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	enc := gowav.NewEncoder(w, sampleRate, 16, 1, formatPCM)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}

	return nil
}
