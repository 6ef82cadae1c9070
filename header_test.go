package huffman

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/huffpack/huffman/bitio"
)

func TestHeaderRoundTrip(t *testing.T) {
	t.Run("SingleLeaf", func(t *testing.T) {
		w := bitio.NewWriter()
		require.NoError(t, writeTree(w, &node{symbol: PseudoEOF}))
		require.Equal(t, 1+bitsPerSymbol, w.Len())

		got, err := readTree(bitio.NewReader(w.Bytes()))
		require.NoError(t, err)
		require.True(t, got.leaf())
		require.Equal(t, PseudoEOF, got.symbol)
	})

	t.Run("SkewedAAAB", func(t *testing.T) {
		root := buildTree(freqTableOf([]byte("AAAB")))

		w := bitio.NewWriter()
		require.NoError(t, writeTree(w, root))
		// 5 nodes: 3 leaves at 10 bits each, 2 internal at 1 bit each.
		require.Equal(t, 3*(1+bitsPerSymbol)+2, w.Len())

		got, err := readTree(bitio.NewReader(w.Bytes()))
		require.NoError(t, err)
		requireSameShape(t, root, got)
	})

	t.Run("RandomTrees", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 50; i++ {
			var freqs [numSymbols]uint64
			for j := 0; j < 1+rng.Intn(256); j++ {
				freqs[rng.Intn(256)] += uint64(1 + rng.Intn(1000))
			}
			root := buildTree(&freqs)

			w := bitio.NewWriter()
			require.NoError(t, writeTree(w, root))
			r := bitio.NewReader(w.Bytes())
			got, err := readTree(r)
			require.NoError(t, err)
			requireSameShape(t, root, got)

			// The reader's cursor must land exactly past the header;
			// only the flush padding may remain.
			require.Less(t, r.Remaining(), 8)
		}
	})
}

// requireSameShape asserts two trees carry identical leaf symbols at
// identical positions, which implies identical code lengths everywhere.
func requireSameShape(t *testing.T, want, got *node) {
	t.Helper()
	require.Equal(t, want.leaf(), got.leaf())
	if want.leaf() {
		require.Equal(t, want.symbol, got.symbol)
		return
	}
	requireSameShape(t, want.left, got.left)
	requireSameShape(t, want.right, got.right)
}

func TestReadTreeRejectsBadInput(t *testing.T) {
	t.Run("LeafSymbolOutOfRange", func(t *testing.T) {
		w := bitio.NewWriter()
		require.NoError(t, w.WriteBits(1, 1))
		require.NoError(t, w.WriteBits(bitsPerSymbol, 300))

		_, err := readTree(bitio.NewReader(w.Bytes()))
		require.ErrorIs(t, err, ErrFormat)
	})

	t.Run("TruncatedHeader", func(t *testing.T) {
		w := bitio.NewWriter()
		require.NoError(t, w.WriteBits(1, 1))
		require.NoError(t, w.WriteBits(3, 0))

		_, err := readTree(bitio.NewReader(w.Bytes()))
		require.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("TooDeep", func(t *testing.T) {
		// A run of zero flag bits descends one level per bit; a long
		// enough run must be rejected rather than recursed into.
		w := bitio.NewWriter()
		for i := 0; i <= maxBitsPerCode; i++ {
			require.NoError(t, w.WriteBits(1, 0))
		}

		_, err := readTree(bitio.NewReader(w.Bytes()))
		require.ErrorIs(t, err, ErrFormat)
	})
}
