// Package bits provides a sequential MSB-first bit reader over a fixed byte buffer.
package bits

import (
	"errors"
	"fmt"
)

// ErrBufferExhausted is returned when a read would pass the end of the buffer.
var ErrBufferExhausted = errors.New("bits: buffer exhausted")

// Reader reads bit fields from a byte buffer, most significant bit first.
// The position only moves forward; a failed read does not advance it.
type Reader struct {
	buf []byte
	pos int // bit position, 0..len(buf)*8
}

// NewReader creates a Reader over data. The reader does not copy data and
// must not outlive it.
func NewReader(data []byte) *Reader {
	return &Reader{buf: data}
}

// ReadBits reads n bits (1..32) and returns them right-aligned.
func (r *Reader) ReadBits(n int) (v uint, err error) {
	const maxWidth = 32
	if n < 1 || n > maxWidth {
		return 0, fmt.Errorf("bits: invalid read width %d", n)
	}
	if r.pos+n > len(r.buf)*8 {
		return 0, ErrBufferExhausted
	}
	for i := 0; i < n; i++ {
		b := r.buf[r.pos>>3] >> (7 - uint(r.pos&7)) & 1 //nolint:mnd
		v = v<<1 | uint(b)
		r.pos++
	}
	return v, nil
}

// SkipBits discards n bits with the same bounds contract as ReadBits.
func (r *Reader) SkipBits(n int) error {
	if n < 0 {
		return fmt.Errorf("bits: invalid skip width %d", n)
	}
	if r.pos+n > len(r.buf)*8 {
		return ErrBufferExhausted
	}
	r.pos += n
	return nil
}

// BitsRead returns the number of bits consumed so far.
func (r *Reader) BitsRead() int {
	return r.pos
}

// BitsLeft returns the number of unread bits remaining in the buffer.
func (r *Reader) BitsLeft() int {
	return len(r.buf)*8 - r.pos
}
