// SPDX-License-Identifier: EPL-2.0

// Package oscillator implements a direct digital synthesis (DDS) engine.
//
// An Oscillator keeps a 32-bit phase accumulator in which the full uint32
// range is one waveform cycle. Every call to NextSample adds the phase
// increment (wrapping modulo 2^32) and reads the current wave table:
//
//	osc := oscillator.New()
//	osc.SetWaveform(oscillator.Triangle)
//	osc.SetNote(oscillator.A4, 48000)
//	for i := range buf {
//	    buf[i] = osc.NextSample()
//	}
//
// # Frequency
//
// The increment is round(f * 2^32 / sampleRate). SetNote takes a Note, a
// frequency multiplied by 100, and the package defines C0 through B8.
// SetPhaseIncrement bypasses the conversion.
//
// # Resolution and Interpolation
//
// Res8x256 indexes a 256 entry, 8-bit table with the top 8 phase bits.
// Res8x1024 and Res16x1024 use the top 10 bits as the index and the next
// 10 bits as a Q10 fraction for interpolation:
//
//   - InterpOff reads the entry as is
//   - InterpLinear blends towards the next entry
//   - InterpQuadratic fits a parabola through three entries and clamps
//     the result to the bit depth
//
// Changing the resolution restarts the phase at 0.
//
// # Amplitude
//
// Every sample is scaled by (s * amplitude) >> 8, so 255 is slightly under
// unity gain.
//
// # User Waveforms
//
// SetUserWaveform installs a func(phase uint32) uint16 that replaces the
// tables. Selecting User without a function produces silence.
//
// # Real-time Use
//
// NextSample and all setters run in constant time and never allocate. An
// Oscillator has no internal locking; share one between goroutines only
// behind your own mutex.
package oscillator
