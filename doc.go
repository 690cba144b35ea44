// SPDX-License-Identifier: EPL-2.0

// Package ddsgen is a direct digital synthesis (DDS) tone generator.
//
// The engine lives in the oscillator subpackage: a 32-bit phase accumulator
// advanced by a frequency dependent increment, indexing precomputed
// single-cycle wavetables (sine, square, triangle, sawtooth) at one of three
// resolutions, with optional linear or quadratic interpolation and 8-bit
// amplitude scaling. A user supplied function can replace the tables.
//
// This package adds rendering helpers on top of it:
//
//	osc := oscillator.New()
//	osc.SetNote(oscillator.A4, 48000)
//
//	raw := make([]uint16, 480)
//	ddsgen.Render(osc, raw) // unsigned samples as the oscillator emits them
//
//	pcm, rate, err := ddsgen.RenderPCM16(osc, 48000, 44100, 48000, 0)
//	if err != nil {
//	    return err
//	}
//	f, _ := os.Create("a4.wav")
//	defer f.Close()
//	err = wav.WriteWAV16(f, rate, pcm)
//
// RenderPCM16 wraps the oscillator in an audio.Generator and runs it through
// the same resampling pipeline as ResampleToMono16, which accepts any
// decoded audio.Source.
//
// # Subpackages
//
//   - oscillator: the DDS engine, waveform and resolution selectors, notes
//   - wavetable: built-in table bank and custom tables imported from audio
//   - audio: Source, Generator, Resampler and MonoMixer
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: decoders, and
//     a 16-bit WAV writer
//   - stream: the oscillator as a github.com/faiface/beep Streamer
package ddsgen
