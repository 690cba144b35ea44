// SPDX-License-Identifier: EPL-2.0

// Package stream adapts oscillators to github.com/faiface/beep.
//
// A Streamer ticks its generator once per frame and duplicates the sample on
// both channels, so it can feed any beep consumer:
//
//	osc := oscillator.New()
//	osc.SetNote(oscillator.C4, 44100)
//	tone := beep.Take(44100, stream.New(osc))
//
// Use NewResampled when the oscillator runs at a rate other than the
// consumer's. Streamers do no locking; retune the oscillator only from the
// goroutine that drives the stream, or under beep's speaker.Lock.
package stream
