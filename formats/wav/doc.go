// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files with github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts PCM 16-bit files with any channel count and sample rate
// and returns an audio.Source producing interleaved float32 samples in
// [-1, 1). Other sample sizes fail with ErrOnlyPCM16bitSupported, non-PCM
// format tags with ErrUnsupportedWavLayout and anything that is not RIFF/WAVE
// with ErrNotWavFile.
//
//	src, err := wav.Decoder{}.Decode(f)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    ...
//	}
//
// # Encoding
//
// WriteWAV16 writes mono 16-bit PCM. The encoder patches the chunk sizes
// after the samples are written, so the target must be an io.WriteSeeker
// such as *os.File or the in-memory Buffer:
//
//	pcm, rate, err := ddsgen.RenderPCM16(osc, 48000, 44100, 44100, 4096)
//	if err != nil {
//	    return err
//	}
//	f, _ := os.Create("tone.wav")
//	defer f.Close()
//	err = wav.WriteWAV16(f, rate, pcm)
package wav
