package lz8s

// windowSearcher is the reference match finder: an exhaustive scan of
// the window at every position. O(window) per call, which is fine for
// the small inputs this format targets.
type windowSearcher struct{}

func (windowSearcher) Reset() {}

// Search scans from the nearest candidate outward so that among equal
// lengths the smallest distance wins, and stops early once a match
// reaches maxLen.
func (windowSearcher) Search(data []byte, pos, maxLen, maxDist int) (length, distance int) {
	min := pos - maxDist
	if min < 0 {
		min = 0
	}
	for i := pos - 1; i >= min; i-- {
		ml := matchLen(data[i:], data[pos:], maxLen)
		if ml > length {
			length = ml
			distance = pos - i
			if length >= maxLen {
				return length, distance
			}
		}
	}
	return length, distance
}

// matchLen returns the length of the common prefix of a and b, at most
// max. a may overlap b; the comparison is byte by byte, so a repeating
// prefix extends into b itself the way the decoder's overlapping copy
// does.
func matchLen(a, b []byte, max int) int {
	for i := 0; i < max; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return max
}
