package lz8s

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestMatchLen(t *testing.T) {
	if got := matchLen([]byte("abcd"), []byte("abce"), 4); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	if got := matchLen([]byte("abcd"), []byte("abcd"), 2); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
	// Overlapping slices extend like the decoder's copy does.
	data := []byte("aaaaaaa")
	if got := matchLen(data[0:], data[1:], 6); got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
}

func TestSearchTieBreak(t *testing.T) {
	// "abc" occurs at 0 and 4; the match at 8 must bind to the nearer
	// copy.
	data := []byte("abc_abc_abc")
	length, distance := windowSearcher{}.Search(data, 8, 3, 256)
	if length != 3 || distance != 4 {
		t.Fatalf("got length %d distance %d, want 3 and 4", length, distance)
	}
}

func TestSearchWindowLimit(t *testing.T) {
	data := []byte("abcd____________abcd")
	length, distance := windowSearcher{}.Search(data, 16, 4, 8)
	if length != 0 {
		t.Fatalf("got length %d distance %d, want no match inside the window", length, distance)
	}
	length, distance = windowSearcher{}.Search(data, 16, 4, 16)
	if length != 4 || distance != 16 {
		t.Fatalf("got length %d distance %d, want 4 and 16", length, distance)
	}
}

// searchData is random enough to have misses and repetitive enough to
// have matches of many lengths.
func searchData(n int) []byte {
	rng := rand.New(rand.NewSource(3))
	b := make([]byte, n)
	for i := range b {
		if i > 16 && rng.Intn(3) > 0 {
			b[i] = b[i-1-rng.Intn(16)]
		} else {
			b[i] = byte(rng.Intn(8))
		}
	}
	return b
}

func TestHashChainAgrees(t *testing.T) {
	data := searchData(4096)
	hc := &HashChain{}
	for _, maxDist := range []int{1, 16, 256, 2048} {
		hc.Reset()
		for pos := 1; pos < len(data); pos++ {
			maxLen := len(data) - pos
			if maxLen > 255 {
				maxLen = 255
			}
			wl, wd := windowSearcher{}.Search(data, pos, maxLen, maxDist)
			hl, hd := hc.Search(data, pos, maxLen, maxDist)
			if wl != hl || wd != hd {
				t.Fatalf("window %d pos %d: scan found (%d,%d), chain found (%d,%d)",
					maxDist, pos, wl, wd, hl, hd)
			}
		}
	}
}

func TestFastSearchSameOutput(t *testing.T) {
	datas := [][]byte{
		testText(4096),
		searchData(8192),
		bytes.Repeat([]byte{0xAA}, 1000),
	}
	for _, cfg := range []Config{
		DefaultConfig(),
		{BitsMOff: 11, MaxMLen: 255, MaxLLen: 255, OffsetRel: -1},
		{BitsMOff: 16, MaxMLen: 1000, MaxLLen: 1000, OffsetRel: -1},
	} {
		fastCfg := cfg
		fastCfg.FastSearch = true
		slow, err := NewEncoder(cfg)
		if err != nil {
			t.Fatal(err)
		}
		fast, err := NewEncoder(fastCfg)
		if err != nil {
			t.Fatal(err)
		}
		for i, data := range datas {
			a, err := slow.Encode(nil, data)
			if err != nil {
				t.Fatal(err)
			}
			b, err := fast.Encode(nil, data)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(a, b) {
				t.Fatalf("cfg %+v data %d: hash chain output differs from the exhaustive scan", cfg, i)
			}
		}
	}
}
