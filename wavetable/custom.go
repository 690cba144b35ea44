// SPDX-License-Identifier: EPL-2.0

package wavetable

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/ddsgen/audio"
	"github.com/ik5/ddsgen/utils"
)

// MaxImportSamples bounds how much audio FromSource will buffer.
const MaxImportSamples = 1 << 22

// Custom is a 16-bit, 1024-entry table built from caller audio. Its Sample
// method has the shape of a user waveform function.
type Custom struct {
	table [LongLen]uint16
}

// FromSource reads src to the end, mixes it to mono and treats the whole
// stream as one period of the waveform.
func FromSource(src audio.Source) (*Custom, error) {
	mono := audio.NewMonoMixer(src)
	buf := make([]float32, src.BufSize())
	var cycle []float32

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			if len(cycle)+n > MaxImportSamples {
				return nil, ErrSourceTooLong
			}
			cycle = append(cycle, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading wavetable source: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return FromSamples(cycle)
}

// FromSamples resamples one period given as floats in [-1, 1] onto the
// table, using cubic interpolation that wraps around the period ends.
func FromSamples(cycle []float32) (*Custom, error) {
	n := len(cycle)
	if n == 0 {
		return nil, ErrEmptySource
	}

	c := &Custom{}
	step := float64(n) / LongLen

	for i := range LongLen {
		pos := float64(i) * step
		j := int(pos)
		x := float32(pos - float64(j))

		y0 := cycle[(j-1+n)%n]
		y1 := cycle[j%n]
		y2 := cycle[(j+1)%n]
		y3 := cycle[(j+2)%n]

		c.table[i] = utils.Float32ToUint16(utils.CubicInterpolate(y0, y1, y2, y3, x))
	}

	return c, nil
}

// Table returns the generated table.
func (c *Custom) Table() *[LongLen]uint16 { return &c.table }

// Sample maps a 32-bit phase onto the table: the top 10 bits pick the
// entry and the next 10 bits interpolate linearly towards its neighbour.
func (c *Custom) Sample(phase uint32) uint16 {
	i := phase >> 22
	frac := int32((phase >> 12) & 0x3FF)

	a := int32(c.table[i])
	b := int32(c.table[(i+1)&(LongLen-1)])

	return uint16(a + (((b - a) * frac) >> 10))
}
