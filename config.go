package lz8s

import "fmt"

// MaxInputSize is the largest input buffer the encoder accepts. The
// parser needs the whole input in memory for its backward pass; callers
// with more data must chunk it themselves.
const MaxInputSize = 128 * 1024

// maxRunLen is the largest value the two-byte length field can carry:
// 127 + (255 << 7) + 128.
const maxRunLen = 32895

// A Config holds the parameters shared by the encoder and the decoder.
// The two sides must use identical values; the raw stream carries no
// header to check them against.
type Config struct {
	// BitsMOff is the width of the match offset field in bits, 0 to 16.
	// 0 emits no offset field and makes every match copy from the last
	// output byte (pure RLE). 1..8 emit one offset byte, 9..16 two.
	BitsMOff int

	// MaxMLen is the largest match length one block can carry, 1 to
	// 32895. Values above 255 switch the length field to the two-byte
	// form for lengths over 127.
	MaxMLen int

	// MaxLLen is the largest literal run one block can carry, 1 to
	// 32895.
	MaxLLen int

	// ZeroOffset makes the encoder emit, and the decoder read, the
	// offset field even for zero-length matches.
	ZeroOffset bool

	// OffsetRel selects address-relative offsets: instead of a backward
	// delta, the offset field holds the match source index relative to
	// a decoder buffer at this base address. -1 (the default) keeps
	// delta offsets. Only valid with BitsMOff 8 or 16, and the base
	// must fit in the offset field.
	OffsetRel int

	// XorOffset complements the offset bytes under the window mask on
	// both ends. Some target loaders expect inverted offsets.
	XorOffset bool

	// FastSearch replaces the exhaustive window scan with a hash-chain
	// searcher. Output is identical as long as the chain depth reaches
	// every candidate; see HashChain.
	FastSearch bool
}

// DefaultConfig returns the default parameters: one offset byte,
// single-byte lengths up to 255, delta offsets.
func DefaultConfig() Config {
	return Config{
		BitsMOff:  8,
		MaxMLen:   255,
		MaxLLen:   255,
		OffsetRel: -1,
	}
}

// Validate checks that the parameters are within the format's bounds.
func (c *Config) Validate() error {
	if c.MaxMLen < 1 || c.MaxMLen > maxRunLen {
		return fmt.Errorf("%w: max match run length should be from 1 to %d", ErrBadConfig, maxRunLen)
	}
	if c.MaxLLen < 1 || c.MaxLLen > maxRunLen {
		return fmt.Errorf("%w: max literal run length should be from 1 to %d", ErrBadConfig, maxRunLen)
	}
	if c.BitsMOff < 0 || c.BitsMOff > 16 {
		return fmt.Errorf("%w: match offset bits should be from 0 to 16", ErrBadConfig)
	}
	switch {
	case c.BitsMOff == 8:
		if c.OffsetRel > 0xFF {
			return fmt.Errorf("%w: relative address should be less than 256 with 8 bit offsets", ErrBadConfig)
		}
	case c.BitsMOff == 16:
		if c.OffsetRel > 0xFFFF {
			return fmt.Errorf("%w: relative address should be less than 65536", ErrBadConfig)
		}
	default:
		if c.OffsetRel >= 0 {
			return fmt.Errorf("%w: relative address works only with 8 or 16 bit offsets", ErrBadConfig)
		}
	}
	return nil
}

// maxOff is the window size implied by the offset width.
func (c *Config) maxOff() int {
	return 1 << uint(c.BitsMOff)
}

// mask is the ring buffer index mask used by the decoder, and the mask
// XorOffset complements under.
func (c *Config) mask() int {
	if c.BitsMOff > 8 {
		return 0xFFFF
	}
	return 0xFF
}

// zeroMatchCost is the bit cost of the zero-length match that separates
// two adjacent literal blocks.
func (c *Config) zeroMatchCost() int {
	cost := c.mlenCost(0)
	if c.ZeroOffset {
		cost += c.moffCost(1)
	}
	return cost
}
