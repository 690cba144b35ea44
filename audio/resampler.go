// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/ddsgen/utils"
)

// Resampler converts src to dstRate with Catmull-Rom interpolation over a
// four frame window. Channel count is preserved. Past the end of the source
// the last frame is repeated so the window stays full.
type Resampler struct {
	src      Source
	channels int
	dstRate  int
	step     float64 // source frames per output frame

	// hist[1] is source frame base, hist[0] the one before it and
	// hist[2], hist[3] the two after.
	hist  [4][]float32
	frame []float32
	base  int
	pos   float64

	frames int // real frames read so far
	primed bool
	eof    bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		channels: channels,
		dstRate:  dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		frame:    make([]float32, channels),
	}
	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampled source: %w", err)
	}

	return nil
}

// pull reads the next source frame into dst, or copies prev once the
// source is exhausted.
func (r *Resampler) pull(dst, prev []float32) error {
	if !r.eof {
		n, err := r.src.ReadSamples(r.frame)
		got := n >= r.channels
		if got {
			copy(dst, r.frame)
			r.frames++
		}

		switch {
		case errors.Is(err, io.EOF), err == nil && !got:
			r.eof = true
		case err != nil:
			return fmt.Errorf("resampling: %w", err)
		}

		if got {
			return nil
		}
	}

	copy(dst, prev)
	return nil
}

func (r *Resampler) prime() error {
	r.primed = true

	if err := r.pull(r.hist[1], r.hist[1]); err != nil {
		return err
	}
	if r.frames == 0 {
		return io.EOF
	}
	copy(r.hist[0], r.hist[1])

	if err := r.pull(r.hist[2], r.hist[1]); err != nil {
		return err
	}

	return r.pull(r.hist[3], r.hist[2])
}

func (r *Resampler) advance() error {
	oldest := r.hist[0]
	r.hist[0], r.hist[1], r.hist[2] = r.hist[1], r.hist[2], r.hist[3]
	r.hist[3] = oldest
	r.base++

	return r.pull(r.hist[3], r.hist[2])
}

// ReadSamples produces interleaved samples at the destination rate.
// len(dst) must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for written < len(dst) {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written, err
			}
		}

		if r.eof && float64(r.base)+r.pos > float64(r.frames-1) {
			return written, io.EOF
		}

		x := float32(r.pos)
		for c := range r.channels {
			dst[written+c] = utils.CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], x)
		}

		written += r.channels
		r.pos += r.step
	}

	return written, nil
}
