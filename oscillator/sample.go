// SPDX-License-Identifier: EPL-2.0

package oscillator

import (
	"math"

	"github.com/ik5/ddsgen/wavetable"
)

const (
	longMask = wavetable.LongLen - 1
	fracMask = 0x3FF
)

// NextSample advances the phase by one tick and returns the amplitude
// scaled sample. 8-bit classes yield values in [0, 255], Res16x1024 in
// [0, 65535].
//
// A User waveform without a function produces 0; there is no fallback to
// the tables.
func (o *Oscillator) NextSample() uint16 {
	if o == nil {
		return 0
	}

	o.phaseAcc += o.phaseInc
	amp := uint32(o.amplitude)

	if o.waveform == User && o.user != nil {
		return uint16((uint32(o.user(o.phaseAcc)) * amp) >> 8)
	}

	kind, ok := o.waveform.kind()
	if !ok {
		return 0
	}

	tables := o.tables
	if tables == nil {
		tables = wavetable.Default()
	}

	if o.resolution == Res8x256 {
		t := tables.Table8x256(kind)
		if t == nil {
			return 0
		}
		return uint16((uint32(t[o.phaseAcc>>24]) * amp) >> 8)
	}

	i := o.phaseAcc >> 22
	frac := int32((o.phaseAcc >> 12) & fracMask)

	var y int32
	switch o.resolution {
	case Res16x1024:
		t := tables.Table16x1024(kind)
		if t == nil {
			return 0
		}
		y = readTable(t, i, frac, o.interp, math.MaxUint16)
	default:
		t := tables.Table8x1024(kind)
		if t == nil {
			return 0
		}
		y = readTable(t, i, frac, o.interp, math.MaxUint8)
	}

	return uint16((uint32(y) * amp) >> 8)
}

// readTable returns entry i of t, or a value between entries i and i+1 with
// frac in [0, 1023] as the Q10 position. Results lie in [0, peak].
func readTable[E uint8 | uint16](t *[wavetable.LongLen]E, i uint32, frac int32, mode Interpolation, peak int32) int32 {
	switch mode {
	case InterpLinear:
		return lerp(int32(t[i]), int32(t[(i+1)&longMask]), frac)
	case InterpQuadratic:
		return quadratic(int32(t[i]), int32(t[(i+1)&longMask]), int32(t[(i+2)&longMask]), frac, peak)
	default:
		return int32(t[i])
	}
}

func lerp(a, b, frac int32) int32 {
	return a + (((b - a) * frac) >> 10)
}

// quadratic fits a parabola through p0, p1, p2 in Newton form and clamps
// the overshoot to [0, peak]. The shifts are arithmetic, so negative
// terms round towards minus infinity.
func quadratic(p0, p1, p2, frac, peak int32) int32 {
	t2 := (frac * frac) >> 10
	d1 := p2 - p0
	d2 := p0 - 2*p1 + p2

	y := p1 + ((d1 * frac) >> 11) + ((d2 * t2) >> 11)

	return min(max(y, 0), peak)
}
