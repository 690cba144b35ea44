// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"io"
)

var errNegativeOffset = errors.New("wav: negative buffer offset")

// Buffer is an in-memory io.WriteSeeker for WriteWAV16. The zero value is
// an empty buffer ready for use.
type Buffer struct {
	data []byte
	pos  int
}

func (b *Buffer) Write(p []byte) (int, error) {
	end := b.pos + len(p)
	if end > len(b.data) {
		b.data = append(b.data, make([]byte, end-len(b.data))...)
	}
	copy(b.data[b.pos:end], p)
	b.pos = end
	return len(p), nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = int64(b.pos) + offset
	case io.SeekEnd:
		next = int64(len(b.data)) + offset
	default:
		return 0, errors.New("wav: invalid whence")
	}

	if next < 0 {
		return 0, errNegativeOffset
	}

	b.pos = int(next)
	return next, nil
}

// Bytes returns the written content. The slice aliases the buffer.
func (b *Buffer) Bytes() []byte { return b.data }

func (b *Buffer) Len() int { return len(b.data) }
