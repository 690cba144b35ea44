// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer PCM decoders to audio.Source.
package pcm

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// DefaultBufSize is the read size reported before the first read.
const DefaultBufSize = 4096

// Reader is the subset of the go-audio wav and aiff decoders used here.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source converts integer PCM from a Reader to float32 in [-1,1].
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	scale      float32
	intBuf     *goaudio.IntBuffer
}

// NewSource wraps dec. bitDepth selects the full-scale value used for
// normalization; unknown depths fall back to 16 bits.
func NewSource(dec Reader, sampleRate, channels, bitDepth int) *Source {
	return &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		scale:      FullScale(bitDepth),
	}
}

// FullScale returns the magnitude of the most negative sample at bitDepth.
func FullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }
func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return DefaultBufSize
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("reading PCM data: %w", err)
		}
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = float32(s.intBuf.Data[i]) / s.scale
	}

	// a short read without an error is the end of the data chunk
	if n < len(dst) && err == nil {
		return n, io.EOF
	}
	return n, err
}

// Seekable returns r itself when it can seek, otherwise an in-memory copy
// of its remaining content. The go-audio decoders require io.ReadSeeker.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}
