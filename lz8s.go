// The lz8s package implements a byte-aligned LZ77 codec designed so that
// the decompressor can be a few dozen machine instructions on an 8-bit
// CPU.
//
// A compressed stream is a sequence of alternating literal and match
// blocks, always starting with a literal block:
//
//	literal block: length field, then that many raw bytes
//	match block:   length field, then an offset field (unless the
//	               length is zero and ZeroOffset is off)
//
// Length fields are one byte, or two bytes when the configured maximum
// exceeds 255 and the value exceeds 127. Offset fields are zero, one or
// two bytes depending on BitsMOff. A zero-length block of either kind is
// a boundary marker that lets two blocks of the same kind follow each
// other, which is how runs longer than the configured maximums are
// split.
//
// The encoder chooses blocks with a backward dynamic program over the
// whole input, minimizing the emitted byte count under this cost model,
// so the output is optimal for the configured parameters. There is no
// in-band header: encoder and decoder must be configured identically.
// The Frame functions provide an optional container that carries the
// configuration and a content checksum for callers that want one.
package lz8s

// A Searcher finds back-references for the parser. Search returns the
// length and distance of the longest match for data[pos:] within the
// window, with ties broken toward the smallest distance. A length of 0
// means no match was found.
type Searcher interface {
	Search(data []byte, pos, maxLen, maxDist int) (length, distance int)

	// Reset clears any internal state, preparing the Searcher to be
	// used with a new buffer.
	Reset()
}
