package huffman

import "errors"

// ErrFormat reports that a stream is not a compressed stream this package
// can read: the leading magic constant did not match, or the tree header is
// malformed.  Nothing has been written to the destination.
var ErrFormat = errors.New("huffman: bad stream format")

// ErrTruncated reports that a compressed stream ran out before the
// end-of-content code was fully decoded.  Output already written to the
// destination stays written; no rollback is attempted.
var ErrTruncated = errors.New("huffman: truncated stream")
