// SPDX-License-Identifier: EPL-2.0

package wavetable

import "math"

// Table lengths for the supported resolution classes.
const (
	ShortLen = 256
	LongLen  = 1024
)

// Kind selects one of the built-in table waveforms.
type Kind uint8

const (
	Sine Kind = iota
	Square
	Triangle
	Sawtooth

	numKinds
)

func (k Kind) String() string {
	switch k {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	case Sawtooth:
		return "sawtooth"
	default:
		return "unknown"
	}
}

// Provider hands out read-only single-period tables. Implementations
// return nil for a Kind they do not carry. Callers must not modify the
// returned arrays.
type Provider interface {
	Table8x256(k Kind) *[ShortLen]uint8
	Table8x1024(k Kind) *[LongLen]uint8
	Table16x1024(k Kind) *[LongLen]uint16
}

// Bank is a Provider backed by fixed arrays, one set per Kind.
type Bank struct {
	short8 [numKinds][ShortLen]uint8
	long8  [numKinds][LongLen]uint8
	long16 [numKinds][LongLen]uint16
}

var _ Provider = (*Bank)(nil)

func (b *Bank) Table8x256(k Kind) *[ShortLen]uint8 {
	if b == nil || k >= numKinds {
		return nil
	}
	return &b.short8[k]
}

func (b *Bank) Table8x1024(k Kind) *[LongLen]uint8 {
	if b == nil || k >= numKinds {
		return nil
	}
	return &b.long8[k]
}

func (b *Bank) Table16x1024(k Kind) *[LongLen]uint16 {
	if b == nil || k >= numKinds {
		return nil
	}
	return &b.long16[k]
}

var defaultBank = NewBank()

// Default returns the shared bank generated at package initialization.
func Default() *Bank { return defaultBank }

// NewBank generates a fresh bank. Most callers want Default.
func NewBank() *Bank {
	b := &Bank{}

	for k := range numKinds {
		for i := range ShortLen {
			b.short8[k][i] = uint8(Value(k, i, ShortLen, math.MaxUint8))
		}
		for i := range LongLen {
			b.long8[k][i] = uint8(Value(k, i, LongLen, math.MaxUint8))
			b.long16[k][i] = uint16(Value(k, i, LongLen, math.MaxUint16))
		}
	}

	return b
}

// Value computes entry i of an n-entry table of kind k whose samples span
// [0, peak]. Unknown kinds produce 0.
func Value(k Kind, i, n int, peak uint32) uint32 {
	m := float64(peak)
	half := n / 2

	var v float64
	switch k {
	case Sine:
		v = m/2 + m/2*math.Sin(2*math.Pi*float64(i)/float64(n))
	case Square:
		if i < half {
			v = m
		}
	case Triangle:
		if i < half {
			v = 2 * m * float64(i) / float64(n)
		} else {
			v = 2 * m * float64(n-i) / float64(n)
		}
	case Sawtooth:
		v = m * float64(i) / float64(n-1)
	default:
		return 0
	}

	v = math.Round(v)
	if v > m {
		v = m
	} else if v < 0 {
		v = 0
	}

	return uint32(v)
}
