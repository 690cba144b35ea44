// SPDX-License-Identifier: EPL-2.0

package oscillator

import (
	"math"

	"github.com/ik5/ddsgen/wavetable"
)

// phaseScale is one full cycle of the 32-bit accumulator.
const phaseScale = 1 << 32

// UserFunc maps a phase (the full uint32 range is one cycle) to a sample.
// It is called once per NextSample and must not block.
type UserFunc func(phase uint32) uint16

// Oscillator is a phase-accumulator synthesizer. The zero value must be
// initialized with Init before use; New returns an initialized one.
//
// An Oscillator is not safe for concurrent use. Every method accepts a nil
// receiver and does nothing.
type Oscillator struct {
	phaseAcc uint32
	phaseInc uint32

	amplitude uint8

	waveform   Waveform
	resolution Resolution
	interp     Interpolation

	user   UserFunc
	tables wavetable.Provider
}

// New returns an initialized Oscillator.
func New() *Oscillator {
	o := &Oscillator{}
	o.Init()
	return o
}

// Init resets the oscillator: silent phase, full amplitude, sine wave,
// 8-bit/256 tables without interpolation, built-in table bank.
func (o *Oscillator) Init() {
	if o == nil {
		return
	}

	*o = Oscillator{
		amplitude:  math.MaxUint8,
		waveform:   Sine,
		resolution: Res8x256,
		interp:     InterpOff,
		tables:     wavetable.Default(),
	}
}

// SetTables replaces the table provider. nil restores the built-in bank.
func (o *Oscillator) SetTables(p wavetable.Provider) {
	if o == nil {
		return
	}
	if p == nil {
		p = wavetable.Default()
	}
	o.tables = p
}

// SetFrequency sets the phase increment to round(freqHz * 2^32 / sampleRate),
// reduced modulo 2^32. sampleRate must be positive.
func (o *Oscillator) SetFrequency(freqHz float64, sampleRate uint32) {
	if o == nil {
		return
	}
	o.phaseInc = phaseIncrement(freqHz, sampleRate)
}

// SetNote is SetFrequency for a Note (hertz x 100).
func (o *Oscillator) SetNote(note Note, sampleRate uint32) {
	o.SetFrequency(float64(note)/100.0, sampleRate)
}

// SetPhaseIncrement overrides the increment directly.
func (o *Oscillator) SetPhaseIncrement(inc uint32) {
	if o == nil {
		return
	}
	o.phaseInc = inc
}

// SetAmplitude sets the raw 8-bit gain; 255 is just under unity.
func (o *Oscillator) SetAmplitude(v uint8) {
	if o == nil {
		return
	}
	o.amplitude = v
}

// SetAmplitudePercent clamps percent to [0, 100] and maps it onto 0-255.
func (o *Oscillator) SetAmplitudePercent(percent float64) {
	if o == nil {
		return
	}

	if !(percent >= 0) {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}

	o.amplitude = uint8(math.Round(percent * 2.55))
}

// SetWaveform reports false and keeps the current waveform when w is not
// one of the defined values.
func (o *Oscillator) SetWaveform(w Waveform) bool {
	if o == nil || !w.Valid() {
		return false
	}
	o.waveform = w
	return true
}

// SetResolution switches table class and restarts the phase at 0. Invalid
// values are rejected.
func (o *Oscillator) SetResolution(r Resolution) bool {
	if o == nil || !r.Valid() {
		return false
	}
	o.resolution = r
	o.phaseAcc = 0
	return true
}

// SetInterpolation only affects the 1024-entry classes. Invalid values are
// rejected.
func (o *Oscillator) SetInterpolation(m Interpolation) bool {
	if o == nil || !m.Valid() {
		return false
	}
	o.interp = m
	return true
}

// SetUserWaveform installs fn and selects the User waveform.
func (o *Oscillator) SetUserWaveform(fn UserFunc) {
	if o == nil {
		return
	}
	o.user = fn
	o.waveform = User
}

// ClearUserWaveform drops the user function and falls back to Sine.
func (o *Oscillator) ClearUserWaveform() {
	if o == nil {
		return
	}
	o.user = nil
	o.waveform = Sine
}

// Silence zeroes phase and increment. Output then holds at the value of
// table entry 0 scaled by the amplitude.
func (o *Oscillator) Silence() {
	if o == nil {
		return
	}
	o.phaseAcc = 0
	o.phaseInc = 0
}

func (o *Oscillator) Phase() uint32 {
	if o == nil {
		return 0
	}
	return o.phaseAcc
}

func (o *Oscillator) PhaseIncrement() uint32 {
	if o == nil {
		return 0
	}
	return o.phaseInc
}

func (o *Oscillator) Amplitude() uint8 {
	if o == nil {
		return 0
	}
	return o.amplitude
}

func (o *Oscillator) Waveform() Waveform {
	if o == nil {
		return Sine
	}
	return o.waveform
}

func (o *Oscillator) Resolution() Resolution {
	if o == nil {
		return Res8x256
	}
	return o.resolution
}

func (o *Oscillator) Interpolation() Interpolation {
	if o == nil {
		return InterpOff
	}
	return o.interp
}

// HasUserWaveform reports whether a user function is installed.
func (o *Oscillator) HasUserWaveform() bool {
	return o != nil && o.user != nil
}

// BitDepth is the number of significant bits in NextSample's result. An
// installed user function always produces 16-bit samples; otherwise the
// resolution decides.
func (o *Oscillator) BitDepth() int {
	if o.Waveform() == User && o.HasUserWaveform() {
		return 16
	}
	return o.Resolution().BitDepth()
}

func phaseIncrement(freqHz float64, sampleRate uint32) uint32 {
	inc := math.Mod(math.Round(freqHz*phaseScale/float64(sampleRate)), phaseScale)
	if inc < 0 {
		inc += phaseScale
	}

	return uint32(inc)
}
