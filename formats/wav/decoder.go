// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/ddsgen/audio"
	"github.com/ik5/ddsgen/internal/pcm"
)

// formatPCM is the WAVE_FORMAT_PCM tag of the fmt chunk.
const formatPCM = 1

type Decoder struct{}

// Decode reads the RIFF headers of r and returns a source positioned at the
// start of the data chunk. Readers that cannot seek are buffered in memory.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.Seekable(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedWavLayout, dec.WavAudioFormat)
	}

	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: got %d bits", ErrOnlyPCM16bitSupported, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedWavLayout
	}

	return pcm.NewSource(dec, format.SampleRate, format.NumChannels, int(dec.BitDepth)), nil
}
