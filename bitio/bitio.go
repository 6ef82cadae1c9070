// Package bitio provides the bit-granular stream used by the huffman codec.
// Both directions work most-significant-bit first: the first bit written or
// read is the most significant of the low n bits of the value.
package bitio

import (
	"io"

	"github.com/chronos-tachyon/assert"
)

// Writer assembles a bit stream in memory, packing bits into bytes from the
// high end.  The zero value is not ready for use; call NewWriter.
type Writer struct {
	buf   []byte
	accum byte
	nbits int // valid bits in accum, always 0..7
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteBits writes the low n bits of v, most significant of those n bits
// first.  n may be 0, which writes nothing.
func (w *Writer) WriteBits(n int, v uint64) error {
	assert.Assertf(n >= 0 && n <= 64, "bit count %d out of range 0..64", n)
	for n > 0 {
		take := 8 - w.nbits
		if take > n {
			take = n
		}
		chunk := byte(v>>uint(n-take)) & byte(1<<uint(take)-1)
		w.accum = w.accum<<uint(take) | chunk
		w.nbits += take
		n -= take
		if w.nbits == 8 {
			w.buf = append(w.buf, w.accum)
			w.accum, w.nbits = 0, 0
		}
	}
	return nil
}

// Len returns the number of bits written so far.
func (w *Writer) Len() int {
	return len(w.buf)*8 + w.nbits
}

// Bytes flushes any partial byte, padding the tail of the last byte with
// zero bits, and returns the assembled stream.  The Writer must not be
// written to after Bytes is called.
func (w *Writer) Bytes() []byte {
	if w.nbits > 0 {
		w.buf = append(w.buf, w.accum<<uint(8-w.nbits))
		w.accum, w.nbits = 0, 0
	}
	return w.buf
}

// Reader reads a bit stream from an in-memory byte slice, which makes Reset
// a plain cursor rewind.
type Reader struct {
	data []byte
	pos  int // next bit index
}

// NewReader returns a Reader over data.  The Reader does not copy data; the
// caller must not mutate it while reading.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// NewReaderFrom reads r to its end and returns a Reader over its contents.
func NewReaderFrom(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewReader(data), nil
}

// ReadBits returns the next n bits as an unsigned integer, most significant
// bit first.  If fewer than n bits remain, ReadBits consumes nothing and
// returns io.EOF.
func (r *Reader) ReadBits(n int) (uint64, error) {
	assert.Assertf(n >= 0 && n <= 64, "bit count %d out of range 0..64", n)
	if r.pos+n > len(r.data)*8 {
		return 0, io.EOF
	}
	var v uint64
	for n > 0 {
		byteIndex, bitIndex := r.pos>>3, r.pos&7
		take := 8 - bitIndex
		if take > n {
			take = n
		}
		chunk := r.data[byteIndex] >> uint(8-bitIndex-take) & byte(1<<uint(take)-1)
		v = v<<uint(take) | uint64(chunk)
		r.pos += take
		n -= take
	}
	return v, nil
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return len(r.data)*8 - r.pos
}

// Reset rewinds the cursor to the start of content.
func (r *Reader) Reset() {
	r.pos = 0
}
