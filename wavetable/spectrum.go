// SPDX-License-Identifier: EPL-2.0

package wavetable

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Harmonics returns the magnitudes of harmonics 1..n of a single period,
// relative to the strongest of them. The DC offset of unsigned tables is
// ignored. n is capped at len(period)/2; an empty period or n <= 0 gives nil.
func Harmonics[E uint8 | uint16](period []E, n int) []float64 {
	n = min(n, len(period)/2)
	if n <= 0 {
		return nil
	}

	x := make([]float64, len(period))
	for i, v := range period {
		x[i] = float64(v)
	}

	bins := fft.FFTReal(x)

	out := make([]float64, n)
	var peak float64
	for h := range n {
		out[h] = cmplx.Abs(bins[h+1])
		peak = max(peak, out[h])
	}

	if peak == 0 {
		return out
	}
	for h := range out {
		out[h] /= peak
	}

	return out
}

// Harmonics reports the harmonic content of the imported table.
func (c *Custom) Harmonics(n int) []float64 {
	return Harmonics(c.table[:], n)
}
