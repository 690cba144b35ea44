// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/ddsgen/audio"
)

// mp3Reader is the part of gomp3.Decoder the source depends on.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// go-mp3 always produces interleaved stereo.
const outputChannels = 2

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return outputChannels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	// ReadFull keeps reads aligned to whole 16-bit samples.
	n, err := io.ReadFull(s.dec, s.buf)
	samples := n / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = float32(v) / 32768.0
	}

	switch {
	case err == nil:
		return samples, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return samples, io.EOF
	default:
		return samples, fmt.Errorf("decoding mp3 frame: %w", err)
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return newSource(dec), nil
}

func newSource(dec mp3Reader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}
}
