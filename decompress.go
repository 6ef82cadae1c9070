package huffman

import (
	"fmt"

	"github.com/huffpack/huffman/bitio"
)

// Decompress verifies the magic constant, rebuilds the code tree from the
// header, and decodes the body into 8-bit words written to dst until
// PseudoEOF's code is seen.  Failures are fatal for the call: ErrFormat
// means dst received nothing, ErrTruncated means whatever was already
// written stays written.
func Decompress(src BitReader, dst BitWriter) error {
	magic, err := src.ReadBits(magicBits)
	if err != nil || magic != magicNumber {
		return fmt.Errorf("huffman: missing magic %#x: %w", uint64(magicNumber), ErrFormat)
	}
	root, err := readTree(src)
	if err != nil {
		return err
	}
	return decodeBody(src, dst, buildCodeTable(root))
}

// decodeBody grows a candidate code one bit at a time, probing the table
// after every change.  Codes are prefix-free, so the first hit is
// unambiguous and final; no backtracking happens.  The empty candidate is
// probed before the first read: the degenerate single-leaf tree assigns
// PseudoEOF the zero-length code, and that stream's body holds no bits at
// all.
func decodeBody(src BitReader, dst BitWriter, ct *CodeTable) error {
	var candidate Code
	for {
		if symbol, found := ct.SymbolFor(candidate); found {
			if symbol == PseudoEOF {
				return nil
			}
			if candidate.Size == 0 {
				// A single-leaf tree whose leaf is not PseudoEOF can never
				// terminate the body.
				return fmt.Errorf("huffman: tree has no end-of-content leaf: %w", ErrFormat)
			}
			if err := dst.WriteBits(bitsPerWord, uint64(symbol)); err != nil {
				return err
			}
			candidate = Code{}
			continue
		}
		bit, err := src.ReadBits(1)
		if err != nil {
			return fmt.Errorf("huffman: stream ended before end-of-content code: %w", ErrTruncated)
		}
		candidate = candidate.Append(bit)
	}
}

// Decode decompresses data in one call and returns the original bytes.
func Decode(data []byte) ([]byte, error) {
	dst := bitio.NewWriter()
	if err := Decompress(bitio.NewReader(data), dst); err != nil {
		return nil, err
	}
	return dst.Bytes(), nil
}
