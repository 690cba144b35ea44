// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into audio.Source using
// github.com/jfreymuth/oggvorbis.
//
// The source keeps the stream's channel layout and sample rate. oggvorbis
// already yields float32 values clamped to [-1, 1], so samples are copied
// through without conversion. Reads are truncated to whole frames; dst
// shorter than one frame fails with audio.ErrInvalidDstSize.
//
// Like the other decoders it is registered under the "ogg" key for custom
// wavetable import.
package vorbis
