package huffman

import "io"

// countFrequencies scans src once, counting occurrences of each 8-bit word,
// then rewinds src so the body encoder can make an independent second pass.
// PseudoEOF's count stays 0 regardless of content.  An empty source yields
// an all-zero table, which is a valid state, not an error.
func countFrequencies(src BitReader) (*[numSymbols]uint64, error) {
	var freqs [numSymbols]uint64
	for {
		word, err := src.ReadBits(bitsPerWord)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		freqs[word]++
	}
	src.Reset()
	return &freqs, nil
}
