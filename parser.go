package lz8s

// A cell holds the best continuation from one input position, for both
// possible entry states: lbits/llen assume the next block emitted is a
// literal, mbits/mlen/mpos assume it is a match.
type cell struct {
	lbits int // bits to encode the rest, continuing with a literal
	llen  int // literal run length chosen at this position
	mbits int // bits to encode the rest, continuing with a match
	mlen  int // match length chosen at this position
	mpos  int // match distance (1-based) for mlen
}

// literalFanOut bounds how many following positions the literal pass
// joins with. Runs grow by at most one byte per position, so this
// small fixed window reaches every run length worth joining.
const literalFanOut = 5

// parse fills the table from the end of the input backward. table[p]
// describes the optimal encoding of data[p:]; table[len(data)] is the
// sentinel: an empty literal, with a match marked infeasible.
func parse(cfg *Config, s Searcher, data []byte) []cell {
	table := make([]cell, len(data)+1)
	table[len(data)] = cell{mbits: infCost}
	if len(data) == 0 {
		return table
	}

	maxOff := cfg.maxOff()

	for pos := len(data) - 1; pos >= 0; pos-- {
		cur := &table[pos]

		// Literal continued by a literal: prepend i bytes to the run
		// that starts at pos+i, replacing its length header with one
		// covering the joined run. ml tracks the longest run reachable
		// this way.
		ml := 0
		cur.lbits = infCost
		cur.llen = 0
		for i := 1; i <= literalFanOut && pos+i <= len(data); i++ {
			nxt := &table[pos+i]
			if ml < nxt.llen+i {
				ml = nxt.llen + i
			}
			lbits := nxt.lbits + 8*i - cfg.llenCost(nxt.llen) + cfg.llenCost(nxt.llen+i)
			if lbits < cur.lbits {
				cur.lbits = lbits
				cur.llen = nxt.llen + i
			}
		}

		// Literal followed by a match: i literal bytes, then the match
		// starting at pos+i. Any length below the longest reachable run
		// is a valid split point.
		for i := 1; i <= ml-1; i++ {
			mbits := table[pos+i].mbits + 8*i + cfg.llenCost(i)
			if mbits < cur.lbits {
				cur.llen = i
				cur.lbits = mbits
			}
		}

		// Match: try every length up to the longest available. The
		// continuation is either a literal block, or another match,
		// which costs an extra zero-length literal header in between.
		// On equal cost the match continuation wins.
		maxLen := cfg.MaxMLen
		if n := len(data) - pos; maxLen > n {
			maxLen = n
		}
		mlen, mpos := s.Search(data, pos, maxLen, maxOff)
		best := infCost
		cur.mbits = infCost
		cur.mpos = mpos
		for l := 1; l <= mlen; l++ {
			nxt := &table[pos+l]
			mbits := nxt.mbits + cfg.llenCost(1) + cfg.moffCost(mpos) + cfg.mlenCost(l)
			lbits := nxt.lbits + cfg.moffCost(mpos) + cfg.mlenCost(l)
			if lbits <= best {
				best = lbits
				cur.mlen = l
				cur.mbits = best
			}
			if mbits <= best {
				best = mbits
				cur.mlen = l
				cur.mbits = best
			}
		}
	}
	return table
}
