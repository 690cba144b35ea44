// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into audio.Source using
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always emits 16-bit little-endian interleaved stereo, so the source
// reports two channels regardless of the file; run it through
// audio.NewMonoMixer for a single channel. Samples are scaled by 1/32768
// into [-1, 1).
//
// The decoder exists so that a recorded waveform cycle can be imported as a
// custom wavetable:
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	table, err := wavetable.FromSource(src)
//
// Encoding is not supported.
package mp3
