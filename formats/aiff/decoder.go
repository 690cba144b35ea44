// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/ddsgen/audio"
	"github.com/ik5/ddsgen/internal/pcm"
)

type Decoder struct{}

// Decode parses the COMM chunk of r and returns a source over the SSND
// samples. go-audio needs to seek, so plain readers are buffered in memory.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.Seekable(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: got %d bits", ErrOnlyPCM16bitSupported, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	return pcm.NewSource(dec, format.SampleRate, format.NumChannels, int(dec.BitDepth)), nil
}
