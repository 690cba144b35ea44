// SPDX-License-Identifier: EPL-2.0

// Package wavetable supplies the single-period lookup tables read by the
// oscillator.
//
// A Provider hands out immutable arrays per waveform Kind for three
// resolution classes: 256 entries of 8 bits, 1024 entries of 8 bits and
// 1024 entries of 16 bits. Samples are unsigned and span [0, 255] or
// [0, 65535]. Default returns the bank generated once at package
// initialization:
//
//	sine := wavetable.Default().Table16x1024(wavetable.Sine)
//
// # Custom Tables
//
// FromSource turns any audio.Source into a 1024 entry, 16-bit table by
// treating the whole stream as one period. Decoders from the formats
// packages can feed it:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	custom, err := wavetable.FromSource(src)
//	osc.SetUserWaveform(custom.Sample)
package wavetable
