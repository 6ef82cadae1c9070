package huffman

// BitReader is the read side of the bit-granular stream the codec consumes.
// The concrete implementation lives in package bitio; anything satisfying
// the same contract works.
type BitReader interface {
	// ReadBits returns the next n bits as an unsigned integer, most
	// significant bit first.  Once fewer than n bits remain it consumes
	// nothing and returns io.EOF.
	ReadBits(n int) (uint64, error)

	// Reset rewinds the cursor to the start of content.
	Reset()
}

// BitWriter is the write side.
type BitWriter interface {
	// WriteBits writes the low n bits of v, most significant of those n
	// bits first.  n may be 0, which writes nothing.
	WriteBits(n int, v uint64) error
}
