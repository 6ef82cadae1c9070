// Package huffman implements a per-file static Huffman codec.  Each
// compressed stream is self-describing: it carries its own code tree in a
// compact preorder header, and the body ends with the code of an out-of-band
// end-of-content symbol instead of a length field.
//
// Wire format:
//
//     [32-bit magic constant]
//     [tree header: 1 flag bit per node, preorder; each leaf adds 9 symbol bits]
//     [body: the code of each input word, in original order]
//     [the code of the end-of-content symbol]
//
package huffman
