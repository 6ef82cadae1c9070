package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func freqTableOf(data []byte) *[numSymbols]uint64 {
	var freqs [numSymbols]uint64
	for _, b := range data {
		freqs[b]++
	}
	return &freqs
}

func TestBuildTree(t *testing.T) {
	t.Run("SkewedAAAB", func(t *testing.T) {
		root := buildTree(freqTableOf([]byte("AAAB")))

		require.False(t, root.leaf())
		require.EqualValues(t, 4, root.weight)

		// The zero-weight PseudoEOF leaf and B merge first, so the
		// high-frequency A sits directly under the root.
		require.True(t, root.right.leaf())
		require.Equal(t, Symbol('A'), root.right.symbol)

		inner := root.left
		require.False(t, inner.leaf())
		require.Equal(t, PseudoEOF, inner.left.symbol)
		require.Equal(t, Symbol('B'), inner.right.symbol)
	})

	t.Run("EmptyInputYieldsSingleLeaf", func(t *testing.T) {
		root := buildTree(freqTableOf(nil))
		require.True(t, root.leaf())
		require.Equal(t, PseudoEOF, root.symbol)
		require.EqualValues(t, 0, root.weight)
	})

	t.Run("TieBreakIsSymbolOrder", func(t *testing.T) {
		// Three symbols of weight 1 plus the zero-weight PseudoEOF leaf.
		// Equal weights pop lowest ordinal first: PseudoEOF+'a' merge,
		// then 'b'+'c', then the two internal nodes.
		root := buildTree(freqTableOf([]byte("abc")))

		require.Equal(t, PseudoEOF, root.left.left.symbol)
		require.Equal(t, Symbol('a'), root.left.right.symbol)
		require.Equal(t, Symbol('b'), root.right.left.symbol)
		require.Equal(t, Symbol('c'), root.right.right.symbol)
	})

	t.Run("EveryNodeHasZeroOrTwoChildren", func(t *testing.T) {
		root := buildTree(freqTableOf([]byte("abracadabra")))

		var check func(n *node)
		check = func(n *node) {
			both := n.left != nil && n.right != nil
			neither := n.left == nil && n.right == nil
			require.True(t, both || neither)
			if both {
				require.Equal(t, n.weight, n.left.weight+n.right.weight)
				check(n.left)
				check(n.right)
			}
		}
		check(root)
	})
}
