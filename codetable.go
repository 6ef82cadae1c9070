package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable is the bidirectional Symbol ↔ Code mapping derived from one code
// tree.  The tree shape guarantees prefix-freeness: no symbol's code is a
// prefix of any other's.
type CodeTable struct {
	codes   [numSymbols]Code
	present [numSymbols]bool
	symbols map[Code]Symbol
}

// buildCodeTable walks the tree depth-first, appending a 0 bit for each left
// descent and a 1 bit for each right descent; the accumulated path at a leaf
// is that leaf's code.  A tree that is a single leaf assigns the empty code,
// so the degenerate empty-input tree gives PseudoEOF a zero-bit code: write
// and read zero bits to signal end of content.
func buildCodeTable(root *node) *CodeTable {
	ct := &CodeTable{symbols: make(map[Code]Symbol)}
	ct.walk(root, Code{})
	return ct
}

func (ct *CodeTable) walk(n *node, path Code) {
	if n.leaf() {
		ct.codes[n.symbol] = path
		ct.present[n.symbol] = true
		ct.symbols[path] = n.symbol
		return
	}
	ct.walk(n.left, path.Append(0))
	ct.walk(n.right, path.Append(1))
}

// CodeFor returns the code assigned to symbol, if any.
func (ct *CodeTable) CodeFor(symbol Symbol) (Code, bool) {
	return ct.codes[symbol], ct.present[symbol]
}

// SymbolFor returns the symbol a code decodes to.  Lookups are exact-match
// by (length, value); a proper prefix of a known code does not match.
func (ct *CodeTable) SymbolFor(code Code) (Symbol, bool) {
	symbol, found := ct.symbols[code]
	return symbol, found
}

// Len returns the number of symbols carrying a code.
func (ct *CodeTable) Len() int {
	return len(ct.symbols)
}

// Dump writes a programmer-readable debugging dump of the CodeTable's
// current state to the given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for symbol := Symbol(0); symbol < Symbol(numSymbols); symbol++ {
		if !ct.present[symbol] {
			continue
		}
		fmt.Fprintf(&buf, "\tCodeFor(%d) = %s\n", symbol, ct.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
