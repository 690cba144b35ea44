// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ik5/ddsgen"
	"github.com/ik5/ddsgen/formats/wav"
	"github.com/ik5/ddsgen/oscillator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	app := newApp()
	var logs bytes.Buffer
	app.Writer = io.Discard
	app.ErrWriter = &logs

	err := app.Run(append([]string{"ddsgen"}, args...))
	return logs.String(), err
}

// readWAV decodes a mono file written by the command back to int16.
func readWAV(t *testing.T, path string) ([]int16, int) {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	src, err := wav.Decoder{}.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 1, src.Channels())

	var out []int16
	buf := make([]float32, 1024)
	for {
		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			out = append(out, int16(v*32768))
		}
		if n == 0 || errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
	}

	return out, src.SampleRate()
}

func TestApp_Square(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "square.wav")
	_, err := runApp(t,
		"--wave", "square", "--freq", "1000", "--rate", "8000",
		"--duration", "2ms", "--output", out)
	require.NoError(t, err)

	pcm, rate := readWAV(t, out)
	assert.Equal(t, 8000, rate)

	const hi, lo = 32255, -32767
	period := []int16{hi, hi, hi, lo, lo, lo, lo, hi}
	require.Len(t, pcm, 16)
	for i, s := range pcm {
		assert.Equal(t, period[i%8], s, "sample %d", i)
	}
}

func TestApp_NoteAndResample(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "a4.wav")
	logs, err := runApp(t,
		"--note", "A4", "--rate", "48000", "--out-rate", "8000",
		"--resolution", "16x1024", "--interp", "quadratic",
		"--duration", "500ms", "--amplitude", "50", "--verbose",
		"--output", out)
	require.NoError(t, err)

	pcm, rate := readWAV(t, out)
	assert.Equal(t, 8000, rate)
	assert.InDelta(t, 4000, len(pcm), 10)

	// half amplitude keeps the 16-bit sine below the midpoint
	for _, s := range pcm {
		assert.Less(t, s, int16(512))
	}

	assert.Contains(t, logs, "Using note")
	assert.Contains(t, logs, "Wrote tone")
}

func TestApp_UserTable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	// one sine cycle as the wavetable source
	cycle := make([]int16, 64)
	for i := range cycle {
		cycle[i] = int16(30000 * math.Sin(2*math.Pi*float64(i)/64))
	}
	var table wav.Buffer
	require.NoError(t, wav.WriteWAV16(&table, 8000, cycle))
	tablePath := filepath.Join(dir, "cycle.WAV")
	require.NoError(t, os.WriteFile(tablePath, table.Bytes(), 0o600))

	// the user function is 16-bit whatever table class is selected
	for _, res := range []string{"", "8x256", "8x1024", "16x1024"} {
		name := res
		if name == "" {
			name = "default"
		}
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out := filepath.Join(t.TempDir(), "user.wav")
			args := []string{
				"--table", tablePath, "--freq", "250", "--rate", "8000",
				"--duration", "100ms", "--output", out,
			}
			if res != "" {
				args = append(args, "--resolution", res)
			}
			_, err := runApp(t, args...)
			require.NoError(t, err)

			pcm, _ := readWAV(t, out)
			require.Len(t, pcm, 800)

			lowest, highest := pcm[0], pcm[0]
			for _, s := range pcm {
				lowest = min(lowest, s)
				highest = max(highest, s)
			}
			assert.Less(t, lowest, int16(-20000))
			assert.Greater(t, highest, int16(20000))
			assert.Greater(t, lowest, int16(-31000))
			assert.Less(t, highest, int16(31000))
		})
	}
}

func TestApp_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	unsupported := filepath.Join(dir, "table.flac")
	require.NoError(t, os.WriteFile(unsupported, []byte("fLaC"), 0o600))

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"waveform", []string{"--wave", "noise"}, errUnknownWaveform},
		{"resolution", []string{"--resolution", "4x64"}, errUnknownResolution},
		{"interpolation", []string{"--interp", "sinc"}, errUnknownInterpolation},
		{"note", []string{"--note", "H2"}, errUnknownNote},
		{"duration", []string{"--duration", "0s"}, errInvalidDuration},
		{"table format", []string{"--table", unsupported}, errUnsupportedTable},
		{"table with table waveform", []string{"--table", unsupported, "--wave", "sine"}, errTableNeedsUserWave},
		{"zero rate", []string{"--rate", "0"}, ddsgen.ErrInvalidRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := filepath.Join(t.TempDir(), "out.wav")
			_, err := runApp(t, append(tt.args, "--output", out)...)
			assert.ErrorIs(t, err, tt.want)
			assert.NoFileExists(t, out)
		})
	}
}

func TestApp_Environment(t *testing.T) {
	out := filepath.Join(t.TempDir(), "env.wav")
	t.Setenv("DDSGEN_WAVE", "sawtooth")
	t.Setenv("DDSGEN_RATE", "8000")
	t.Setenv("DDSGEN_FREQ", "2000")
	t.Setenv("DDSGEN_DURATION", "1ms")
	t.Setenv("DDSGEN_OUTPUT", out)

	_, err := runApp(t)
	require.NoError(t, err)

	pcm, rate := readWAV(t, out)
	assert.Equal(t, 8000, rate)
	require.Len(t, pcm, 8)

	// sawtooth at a quarter of the rate: table entries 63, 127, 191, 0
	want := []int16{-16639, -255, 16127, -32767}
	for i, s := range pcm {
		assert.Equal(t, want[i%4], s, "sample %d", i)
	}
}

func TestBuildOscillator_UserWithoutTable(t *testing.T) {
	t.Parallel()

	cfg := config{
		Wave:          "user",
		Freq:          100,
		Rate:          8000,
		Amplitude:     100,
		Resolution:    "8x256",
		Interpolation: "off",
	}

	osc, err := buildOscillator(cfg, newRegistry(), newLogger(io.Discard, false))
	require.NoError(t, err)
	assert.Equal(t, oscillator.User, osc.Waveform())
	assert.False(t, osc.HasUserWaveform())
	assert.Equal(t, uint8(255), osc.Amplitude())
}

func TestGenerate_RateOutOfRange(t *testing.T) {
	t.Parallel()

	tooFast := uint64(math.MaxUint32) + 1

	for _, rate := range []int{-8000, int(tooFast)} {
		out := filepath.Join(t.TempDir(), "out.wav")
		cfg := config{
			Wave:          "sine",
			Freq:          440,
			Rate:          rate,
			Amplitude:     100,
			Resolution:    "8x256",
			Interpolation: "off",
			Duration:      time.Millisecond,
			Output:        out,
		}

		err := generate(cfg, newRegistry(), newLogger(io.Discard, false))
		assert.ErrorIs(t, err, ddsgen.ErrInvalidRate, "rate %d", rate)
		assert.NoFileExists(t, out)
	}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"aif", "aiff", "mp3", "ogg", "wav"}, newRegistry().Formats())
}
