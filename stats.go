package lz8s

import (
	"fmt"
	"io"
)

// Stats collects encoding statistics: how many input bytes were covered
// by literals vs matches, the overhead spent on headers, and value
// histograms for the emitted fields. Attach one to an Encoder to enable
// collection; a nil Stats costs nothing.
type Stats struct {
	BytesLiteral int // input bytes emitted as literal data
	BytesMatch   int // input bytes covered by matches

	BitsLiteral int // header bits spent on literal blocks (incl. zero-length matches)
	BitsMatch   int // header bits spent on match blocks (incl. zero-length literals)

	// EstimatedBits is the parser's cost prediction for the streams
	// encoded so far. It differs from the real size only by the
	// pair-completing zero-length match blocks.
	EstimatedBits int

	LLen []int // histogram of literal block lengths
	MLen []int // histogram of match block lengths
	MOff []int // histogram of match distances (1-based)
}

func (s *Stats) init(cfg *Config) {
	if len(s.LLen) < cfg.MaxLLen+1 {
		s.LLen = append(s.LLen, make([]int, cfg.MaxLLen+1-len(s.LLen))...)
	}
	if len(s.MLen) < cfg.MaxMLen+1 {
		s.MLen = append(s.MLen, make([]int, cfg.MaxMLen+1-len(s.MLen))...)
	}
	if len(s.MOff) < cfg.maxOff()+1 {
		s.MOff = append(s.MOff, make([]int, cfg.maxOff()+1-len(s.MOff))...)
	}
}

// Report writes a summary: the estimated size, the literal/match byte
// split, and the header overhead, all as fractions of inSize input and
// outSize output bytes.
func (s *Stats) Report(w io.Writer, inSize, outSize int) {
	if inSize == 0 || outSize == 0 {
		return
	}
	total1 := 100.0 / float64(inSize)
	total2 := 100.0 / float64(outSize)
	fmt.Fprintf(w, " Total size estimated %d bits", s.EstimatedBits)
	if d := outSize*8 - s.EstimatedBits; d != 0 {
		fmt.Fprintf(w, " (difference of %d with real)", d)
	}
	fmt.Fprintf(w, "\n"+
		" Compression Information:                Input  Output\n"+
		" Bytes encoded as matches: %5d bytes,  %4.1f%%     -\n"+
		" Bytes encoded as literal: %5d bytes,  %4.1f%%   %4.1f%%\n"+
		" Total matches overhead: %7d bits,     -     %4.1f%%\n"+
		" Total literal overhead: %7d bits,     -     %4.1f%%\n",
		s.BytesMatch, total1*float64(s.BytesMatch),
		s.BytesLiteral, total1*float64(s.BytesLiteral), total2*float64(s.BytesLiteral),
		s.BitsMatch, total2*0.125*float64(s.BitsMatch),
		s.BitsLiteral, total2*0.125*float64(s.BitsLiteral))
}

// ReportHistograms writes the per-value distribution of match offsets,
// match lengths and literal lengths.
func (s *Stats) ReportHistograms(w io.Writer) {
	fmt.Fprintf(w, "\nvalue\t  MPOS\t  MLEN\t  LLEN\n")
	for i := 0; i < len(s.MOff) || i < len(s.MLen) || i < len(s.LLen); i++ {
		var moff, mlen, llen int
		if i < len(s.MOff) {
			moff = s.MOff[i]
		}
		if i < len(s.MLen) {
			mlen = s.MLen[i]
		}
		if i < len(s.LLen) {
			llen = s.LLen[i]
		}
		fmt.Fprintf(w, "%2d\t%5d\t%5d\t%5d\n", i, moff, mlen, llen)
	}
}
