package lz8s

import (
	"fmt"
	"io"
)

// An Encoder compresses whole buffers. It is not safe for concurrent
// use; independent Encoders are.
type Encoder struct {
	// Stats, if non-nil, accumulates encoding statistics across calls
	// to Encode.
	Stats *Stats

	// Trace, if non-nil, receives a line per emitted block describing
	// the walk over the parse table.
	Trace io.Writer

	cfg      Config
	searcher Searcher
}

// NewEncoder returns an Encoder for the given configuration.
func NewEncoder(cfg Config) (*Encoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Encoder{cfg: cfg}
	if cfg.FastSearch {
		e.searcher = &HashChain{}
	} else {
		e.searcher = windowSearcher{}
	}
	return e, nil
}

// Encode appends the compressed form of src to dst and returns the
// resulting slice. The stream starts with a literal block and
// alternates literal and match blocks; a final zero-length match block
// completes the last pair when the input ends inside a literal run.
func (e *Encoder) Encode(dst, src []byte) ([]byte, error) {
	if len(src) > MaxInputSize {
		return dst, fmt.Errorf("%w (%d > %d)", ErrInputTooLarge, len(src), MaxInputSize)
	}
	e.searcher.Reset()
	table := parse(&e.cfg, e.searcher, src)
	if e.Stats != nil {
		e.Stats.init(&e.cfg)
		if len(src) > 0 {
			if table[0].lbits < table[0].mbits {
				e.Stats.EstimatedBits += table[0].lbits
			} else {
				e.Stats.EstimatedBits += table[0].mbits
			}
		}
	}

	inLiteral := false
	for pos := 0; pos < len(src); {
		cur := &table[pos]
		if cur.lbits >= infCost && cur.mbits >= infCost {
			// The parser leaves at least one feasible continuation at
			// every position; hitting this means the table is corrupt.
			panic("lz8s: no feasible encoding at position")
		}
		extra := 0
		if inLiteral {
			extra = e.cfg.zeroMatchCost()
		}
		if cur.lbits+extra <= cur.mbits {
			l := cur.llen
			if l > e.cfg.MaxLLen {
				l = e.cfg.MaxLLen
			}
			e.trace(pos, cur, inLiteral, true, l)
			if inLiteral {
				// Terminate the open literal run so a new length
				// header can follow.
				dst = e.appendMatchBlock(dst, 0, 0)
			}
			dst = e.appendLiteralHeader(dst, l)
			dst = append(dst, src[pos:pos+l]...)
			if e.Stats != nil {
				e.Stats.LLen[l]++
				e.Stats.BytesLiteral += l
			}
			inLiteral = true
			pos += l
		} else {
			mlen, mpos := cur.mlen, cur.mpos
			e.trace(pos, cur, inLiteral, false, mlen)
			if e.Stats != nil {
				e.Stats.MLen[mlen]++
				e.Stats.MOff[mpos]++
				e.Stats.BytesMatch += mlen
			}
			var off int
			if e.cfg.OffsetRel < 0 {
				off = (mpos - 1) & 0xFFFF
			} else {
				off = (pos + e.cfg.OffsetRel - mpos) & 0xFFFF
			}
			if !inLiteral {
				// Two matches in a row need an empty literal block in
				// between.
				dst = append(dst, 0)
				if e.Stats != nil {
					e.Stats.LLen[0]++
					e.Stats.BitsMatch += 8
				}
			}
			dst = e.appendMatchBlock(dst, mlen, off)
			inLiteral = false
			pos += mlen
		}
	}
	if inLiteral {
		// Complete the final pair so the stream ends on a match block.
		dst = e.appendMatchBlock(dst, 0, 0)
	}
	return dst, nil
}

// appendLiteralHeader appends the length field of a literal block.
func (e *Encoder) appendLiteralHeader(dst []byte, l int) []byte {
	if e.cfg.MaxLLen > 255 && l > 127 {
		dst = append(dst, byte(0x80|l&0x7F), byte(l>>7-1))
		if e.Stats != nil {
			e.Stats.BitsLiteral += 16
		}
	} else {
		dst = append(dst, byte(l))
		if e.Stats != nil {
			e.Stats.BitsLiteral += 8
		}
	}
	return dst
}

// appendMatchBlock appends a match block: the length field, then the
// offset field unless it is omitted. off is the already-converted wire
// offset; the complement, when configured, is applied here. Overhead
// bits of zero-length matches count as literal overhead, since they
// only ever punctuate literal runs.
func (e *Encoder) appendMatchBlock(dst []byte, l, off int) []byte {
	bits := 0
	if e.cfg.MaxMLen > 255 && l > 127 {
		dst = append(dst, byte(0x80|l&0x7F), byte(l>>7-1))
		bits += 16
	} else {
		dst = append(dst, byte(l))
		bits += 8
	}
	if l > 0 || e.cfg.ZeroOffset {
		if e.cfg.XorOffset {
			off ^= e.cfg.mask()
		}
		if e.cfg.BitsMOff > 0 {
			dst = append(dst, byte(off))
			bits += 8
		}
		if e.cfg.BitsMOff > 8 {
			dst = append(dst, byte(off>>8))
			bits += 8
		}
	}
	if e.Stats != nil {
		if l > 0 {
			e.Stats.BitsMatch += bits
		} else {
			e.Stats.BitsLiteral += bits
		}
	}
	return dst
}

// trace writes one walk line: position, both costs, and the chosen
// block.
func (e *Encoder) trace(pos int, cur *cell, inLiteral, literal bool, l int) {
	if e.Trace == nil {
		return
	}
	mbits := -1
	if cur.mbits < infCost {
		mbits = cur.mbits
	}
	fmt.Fprintf(e.Trace, "[%04X]: (%6d:%6d) ", pos, cur.lbits, mbits)
	if literal {
		if inLiteral {
			fmt.Fprintf(e.Trace, "M0 (%4d) ", e.cfg.zeroMatchCost()/8)
		}
		fmt.Fprintf(e.Trace, "L %3d %4d\n", l, e.cfg.llenCost(l)/8+l)
	} else {
		if !inLiteral {
			fmt.Fprintf(e.Trace, "L0 (%4d) ", e.cfg.llenCost(0))
		}
		fmt.Fprintf(e.Trace, "M %3d %4d\n", l, (e.cfg.mlenCost(l)+e.cfg.moffCost(cur.mpos))/8)
	}
}
