package huffman

import (
	"io"

	"github.com/huffpack/huffman/bitio"
)

// Compress reads the whole of src, builds a Huffman code from the observed
// word frequencies, and writes the magic constant, the serialized code tree,
// the coded body, and finally PseudoEOF's code to dst.  src must be
// rewindable between passes and is left rewound on return.  An empty src is
// valid and produces the degenerate single-leaf stream with an empty body.
func Compress(src BitReader, dst BitWriter) error {
	freqs, err := countFrequencies(src)
	if err != nil {
		return err
	}
	root := buildTree(freqs)
	if err := dst.WriteBits(magicBits, magicNumber); err != nil {
		return err
	}
	if err := writeTree(dst, root); err != nil {
		return err
	}
	return encodeBody(src, dst, buildCodeTable(root))
}

// encodeBody writes each source word's code at that code's exact width, so
// leading zero bits survive, then rewinds src and appends PseudoEOF's code.
func encodeBody(src BitReader, dst BitWriter, ct *CodeTable) error {
	for {
		word, err := src.ReadBits(bitsPerWord)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		hc, _ := ct.CodeFor(Symbol(word))
		if err := dst.WriteBits(int(hc.Size), hc.Bits); err != nil {
			return err
		}
	}
	src.Reset()
	hc, _ := ct.CodeFor(PseudoEOF)
	return dst.WriteBits(int(hc.Size), hc.Bits)
}

// Encode compresses data in one call and returns the compressed bytes, with
// the final partial byte zero-padded.
func Encode(data []byte) ([]byte, error) {
	dst := bitio.NewWriter()
	if err := Compress(bitio.NewReader(data), dst); err != nil {
		return nil, err
	}
	return dst.Bytes(), nil
}
