// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockMP3Reader serves little-endian int16 PCM like gomp3.Decoder, at most
// chunk bytes per call.
type mockMP3Reader struct {
	sampleRate int
	data       []byte
	chunk      int
	err        error
}

func newMockMP3Reader(sampleRate, chunk int, samples ...int16) *mockMP3Reader {
	data := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}
	return &mockMP3Reader{sampleRate: sampleRate, data: data, chunk: chunk}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.data) == 0 {
		return 0, io.EOF
	}
	if m.chunk > 0 && len(buf) > m.chunk {
		buf = buf[:m.chunk]
	}
	n := copy(buf, m.data)
	m.data = m.data[n:]
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("this is not an mp3 stream")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			assert.Nil(t, src)
			assert.Error(t, err)
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newSource(newMockMP3Reader(44100, 0))
	assert.Equal(t, 44100, src.SampleRate())
	assert.Equal(t, 2, src.Channels())
	assert.Equal(t, 4096, src.BufSize())
	assert.NoError(t, src.Close())
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := newSource(newMockMP3Reader(48000, 0, 0, 16384, -16384, -32768))

	buf := make([]float32, 2)
	n, err := src.ReadSamples(buf)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	assert.Equal(t, []float32{0, 0.5}, buf)

	n, err = src.ReadSamples(buf)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	assert.Equal(t, []float32{-0.5, -1}, buf)

	n, err = src.ReadSamples(buf)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSource_ReadSamples_OddChunks(t *testing.T) {
	t.Parallel()

	// three-byte reads split samples across calls
	src := newSource(newMockMP3Reader(8000, 3, 100, -100, 200, -200, 300))

	buf := make([]float32, 4)
	n, err := src.ReadSamples(buf)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	for i, want := range []int16{100, -100, 200, -200} {
		assert.Equal(t, float32(want)/32768, buf[i])
	}

	n, err = src.ReadSamples(buf)
	assert.Equal(t, 1, n)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, float32(300)/32768, buf[0])
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newSource(newMockMP3Reader(8000, 0, 1, 2))
	n, err := src.ReadSamples(nil)
	assert.Zero(t, n)
	assert.NoError(t, err)
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	mock := newMockMP3Reader(8000, 0, 1, 2)
	mock.err = io.ErrClosedPipe
	src := newSource(mock)

	n, err := src.ReadSamples(make([]float32, 4))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.ErrClosedPipe)
	assert.NotErrorIs(t, err, io.EOF)
}

func TestSource_BufferResize(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 10000)
	src := newSource(newMockMP3Reader(8000, 0, samples...))

	n, err := src.ReadSamples(make([]float32, 6000))
	require.NoError(t, err)
	assert.Equal(t, 6000, n)
	assert.Equal(t, 6000, src.BufSize())
}
