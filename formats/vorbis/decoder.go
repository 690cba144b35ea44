// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/ddsgen/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader the source depends on.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

// ReadSamples decodes straight into dst. oggvorbis counts values, not
// frames, and truncates dst to a whole number of frames.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst) < s.channels {
		return 0, audio.ErrInvalidDstSize
	}

	n, err := s.dec.Read(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("decoding vorbis packet: %w", err)
	}
	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening ogg stream: %w", err)
	}

	return newSource(dec), nil
}

func newSource(dec oggReader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}
}
