// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	data   []int
	offset int
	err    error
}

func (f *fakeReader) Format() *goaudio.Format {
	return &goaudio.Format{NumChannels: 1, SampleRate: 8000}
}

func (f *fakeReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := copy(buf.Data, f.data[f.offset:])
	f.offset += n
	return n, nil
}

func TestFullScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		depth int
		want  float32
	}{
		{8, 128},
		{16, 32768},
		{24, 8388608},
		{32, 2147483648},
		{12, 32768},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FullScale(tt.depth), "depth %d", tt.depth)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	dec := &fakeReader{data: []int{-32768, 0, 16384, 32767}}
	src := NewSource(dec, 8000, 1, 16)

	assert.Equal(t, 8000, src.SampleRate())
	assert.Equal(t, 1, src.Channels())
	assert.Equal(t, DefaultBufSize, src.BufSize())

	buf := make([]float32, 3)
	n, err := src.ReadSamples(buf)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	assert.Equal(t, []float32{-1, 0, 0.5}, buf)
	assert.Equal(t, 3, src.BufSize())

	n, err = src.ReadSamples(buf)
	assert.Equal(t, 1, n)
	assert.ErrorIs(t, err, io.EOF)
	assert.InDelta(t, 32767.0/32768.0, buf[0], 1e-7)

	n, err = src.ReadSamples(buf)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSource_ReadSamples_EmptyDst(t *testing.T) {
	t.Parallel()

	src := NewSource(&fakeReader{data: []int{1}}, 8000, 1, 16)
	n, err := src.ReadSamples(nil)
	assert.Zero(t, n)
	assert.NoError(t, err)
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := NewSource(&fakeReader{err: boom}, 8000, 1, 16)

	n, err := src.ReadSamples(make([]float32, 4))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, boom)
}

func TestSource_EightBit(t *testing.T) {
	t.Parallel()

	src := NewSource(&fakeReader{data: []int{-128, 64}}, 8000, 1, 8)
	buf := make([]float32, 2)
	n, _ := src.ReadSamples(buf)
	require.Equal(t, 2, n)
	assert.Equal(t, []float32{-1, 0.5}, buf)
}

func TestSeekable(t *testing.T) {
	t.Parallel()

	br := bytes.NewReader([]byte("abc"))
	rs, err := Seekable(br)
	require.NoError(t, err)
	assert.Same(t, br, rs)

	rs, err = Seekable(io.LimitReader(strings.NewReader("xyz"), 16))
	require.NoError(t, err)
	got, err := io.ReadAll(rs)
	require.NoError(t, err)
	assert.Equal(t, "xyz", string(got))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("unreadable") }

func TestSeekable_Error(t *testing.T) {
	t.Parallel()

	_, err := Seekable(failingReader{})
	assert.ErrorContains(t, err, "unreadable")
}
