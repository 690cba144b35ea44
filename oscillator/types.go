// SPDX-License-Identifier: EPL-2.0

package oscillator

import (
	"strings"

	"github.com/ik5/ddsgen/wavetable"
)

// Waveform selects what NextSample produces.
type Waveform uint8

const (
	Sine Waveform = iota
	Square
	Triangle
	Sawtooth
	// User routes every sample through the function given to
	// SetUserWaveform.
	User
)

func (w Waveform) Valid() bool { return w <= User }

func (w Waveform) String() string {
	if w == User {
		return "user"
	}
	if k, ok := w.kind(); ok {
		return k.String()
	}
	return "unknown"
}

// kind maps the table waveforms onto the wavetable bank.
func (w Waveform) kind() (wavetable.Kind, bool) {
	switch w {
	case Sine:
		return wavetable.Sine, true
	case Square:
		return wavetable.Square, true
	case Triangle:
		return wavetable.Triangle, true
	case Sawtooth:
		return wavetable.Sawtooth, true
	default:
		return 0, false
	}
}

// Resolution is the table length and bit depth consulted by NextSample.
type Resolution uint8

const (
	Res8x256 Resolution = iota
	Res8x1024
	Res16x1024
)

func (r Resolution) Valid() bool { return r <= Res16x1024 }

func (r Resolution) String() string {
	switch r {
	case Res8x256:
		return "8x256"
	case Res8x1024:
		return "8x1024"
	case Res16x1024:
		return "16x1024"
	default:
		return "unknown"
	}
}

// BitDepth is 16 for Res16x1024 and 8 otherwise.
func (r Resolution) BitDepth() int {
	if r == Res16x1024 {
		return 16
	}
	return 8
}

// Interpolation selects how 1024-entry tables are read between entries.
type Interpolation uint8

const (
	InterpOff Interpolation = iota
	InterpLinear
	InterpQuadratic
)

func (m Interpolation) Valid() bool { return m <= InterpQuadratic }

func (m Interpolation) String() string {
	switch m {
	case InterpOff:
		return "off"
	case InterpLinear:
		return "linear"
	case InterpQuadratic:
		return "quadratic"
	default:
		return "unknown"
	}
}

// ParseWaveform, ParseResolution and ParseInterpolation invert String.
func ParseWaveform(s string) (Waveform, bool) {
	for w := Sine; w <= User; w++ {
		if strings.EqualFold(s, w.String()) {
			return w, true
		}
	}
	return 0, false
}

func ParseResolution(s string) (Resolution, bool) {
	for r := Res8x256; r <= Res16x1024; r++ {
		if strings.EqualFold(s, r.String()) {
			return r, true
		}
	}
	return 0, false
}

func ParseInterpolation(s string) (Interpolation, bool) {
	for m := InterpOff; m <= InterpQuadratic; m++ {
		if strings.EqualFold(s, m.String()) {
			return m, true
		}
	}
	return 0, false
}
