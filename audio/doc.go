// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives that carry oscillator
// output and imported wavetables through the rest of the module.
//
//   - Source, the float32 stream interface every stage implements
//   - Generator, which turns any SampleGenerator (such as an oscillator)
//     into a Source
//   - Resampler for sample rate conversion
//   - MonoMixer for channel mixing
//   - Registry for decoders keyed by format
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]. Generator maps unsigned oscillator
// output onto that range by centring it on the midpoint of its bit depth,
// so an 8-bit sample of 128 becomes 0.0.
//
// # Pipelines
//
//	gen := audio.NewGenerator(osc, 48000, 48000)
//	mono := audio.NewMonoMixer(audio.NewResampler(gen, 8000))
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// The Resampler uses Catmull-Rom interpolation over a four frame window and
// repeats the last frame once the source is exhausted.
//
// # Error Handling
//
// Stages return io.EOF when no more data is available; other errors are
// wrapped with %w:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // use buf[:n]
//	}
package audio
