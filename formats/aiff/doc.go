// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into audio.Source using
// github.com/go-audio/aiff.
//
// The decoder accepts 16-bit PCM in any channel count and sample rate and
// yields interleaved float32 samples in [-1, 1]. It is used to import a
// recorded single cycle as a custom wavetable:
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	table, err := wavetable.FromSource(src)
//
// AIFF stores samples big-endian and the sample rate as an 80-bit extended
// float; go-audio handles both. AIFF-C and sample sizes other than 16 bits
// are rejected with ErrOnlyPCM16bitSupported or ErrNotAiffFile.
package aiff
