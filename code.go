package huffman

import (
	"fmt"
	"strconv"
)

// Code represents the sequence of bits assigned to one Symbol.  The first
// bit of the sequence is the most significant of the low Size bits of Bits,
// so a Code with leading zero bits is distinct from any shorter Code with
// the same numeric value, and Codes compare exactly as map keys.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one trailing bit.
func (hc Code) Append(bit uint64) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | (bit & 1)}
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
