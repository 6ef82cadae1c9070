package huffman

import "fmt"

// The tree header is a preorder traversal: one flag bit per node, 0 for an
// internal node followed by its left then its right subtree, 1 for a leaf
// followed by the leaf's symbol as a bitsPerSymbol-wide value.  Encode and
// decode visit nodes in identical preorder, so the structure is
// self-terminating and the reader's cursor lands exactly on the first body
// bit; no count or length field exists.

func writeTree(dst BitWriter, n *node) error {
	if n.leaf() {
		if err := dst.WriteBits(1, 1); err != nil {
			return err
		}
		return dst.WriteBits(bitsPerSymbol, uint64(n.symbol))
	}
	if err := dst.WriteBits(1, 0); err != nil {
		return err
	}
	if err := writeTree(dst, n.left); err != nil {
		return err
	}
	return writeTree(dst, n.right)
}

func readTree(src BitReader) (*node, error) {
	return readSubtree(src, 0)
}

func readSubtree(src BitReader, depth int) (*node, error) {
	if depth > maxBitsPerCode {
		return nil, fmt.Errorf("huffman: tree deeper than %d: %w", maxBitsPerCode, ErrFormat)
	}
	flag, err := src.ReadBits(1)
	if err != nil {
		return nil, fmt.Errorf("huffman: stream ended inside tree header: %w", ErrTruncated)
	}
	if flag == 1 {
		symbol, err := src.ReadBits(bitsPerSymbol)
		if err != nil {
			return nil, fmt.Errorf("huffman: stream ended inside tree header: %w", ErrTruncated)
		}
		if symbol >= uint64(numSymbols) {
			return nil, fmt.Errorf("huffman: leaf symbol %d out of range: %w", symbol, ErrFormat)
		}
		return &node{symbol: Symbol(symbol)}, nil
	}
	left, err := readSubtree(src, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readSubtree(src, depth+1)
	if err != nil {
		return nil, err
	}
	return &node{left: left, right: right}, nil
}
