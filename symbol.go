package huffman

// Symbol represents one 8-bit input word, or the reserved end-of-content
// marker PseudoEOF.  Negative symbols are not valid.
type Symbol int32

const (
	// bitsPerWord is the width of one input word read from the source.
	bitsPerWord = 8

	// bitsPerSymbol is the width of a leaf's symbol value in the tree
	// header.  One bit wider than bitsPerWord so it covers PseudoEOF.
	bitsPerSymbol = 9

	// maxBitsPerCode bounds the length of a single code.  Trees whose
	// header implies a longer code are rejected as malformed.
	maxBitsPerCode = 64
)

// PseudoEOF is the out-of-band symbol whose code trails every encoded body,
// marking the logical end of content.  It never occurs as input.
const PseudoEOF = Symbol(1 << bitsPerWord)

// numSymbols counts the full alphabet: 256 byte values plus PseudoEOF.
const numSymbols = int(PseudoEOF) + 1

// magicNumber identifies a compressed stream.  It occupies the first
// magicBits bits of every stream and is verified before any tree decoding.
const (
	magicNumber = 0xface8200
	magicBits   = 32
)
