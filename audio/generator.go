// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/ik5/ddsgen/utils"
)

// SampleGenerator produces one unsigned sample per call. BitDepth reports
// how many bits of the sample are significant (8 or 16).
type SampleGenerator interface {
	NextSample() uint16
	BitDepth() int
}

// Generator exposes a SampleGenerator as a mono Source. Unsigned samples are
// centred on the midpoint of their bit depth before conversion to float.
type Generator struct {
	gen        SampleGenerator
	sampleRate int
	remaining  int
	bounded    bool
}

// NewGenerator wraps gen, which is assumed to be ticked at sampleRate.
// A totalSamples <= 0 yields an endless stream.
func NewGenerator(gen SampleGenerator, sampleRate, totalSamples int) *Generator {
	return &Generator{
		gen:        gen,
		sampleRate: sampleRate,
		remaining:  totalSamples,
		bounded:    totalSamples > 0,
	}
}

func (g *Generator) SampleRate() int { return g.sampleRate }
func (g *Generator) Channels() int   { return 1 }
func (g *Generator) BufSize() int    { return 4096 }
func (g *Generator) Close() error    { return nil }

func (g *Generator) ReadSamples(dst []float32) (int, error) {
	if g.bounded && g.remaining == 0 {
		return 0, io.EOF
	}

	n := len(dst)
	if g.bounded && n > g.remaining {
		n = g.remaining
	}

	depth := g.gen.BitDepth()
	for i := range n {
		dst[i] = utils.UnsignedToFloat32(g.gen.NextSample(), depth)
	}

	if g.bounded {
		g.remaining -= n
		if g.remaining == 0 {
			return n, io.EOF
		}
	}

	return n, nil
}
