package lz8s

import (
	"encoding/binary"
	"fmt"

	"github.com/pierrec/xxHash/xxHash32"
)

// The raw stream carries no header: encoder and decoder have to agree on
// the configuration out of band. The frame format wraps a raw stream
// with a small header that carries the configuration, the decompressed
// size, and an xxHash32 checksum of the content, for callers that want
// a self-describing file:
//
//	magic     uint32le "LZ8S"
//	flags     1 byte (zero-offset, xor-offset, offset-rel present)
//	bitsMOff  1 byte
//	maxLLen   uint16le
//	maxMLen   uint16le
//	offsetRel uint16le, present iff flagged
//	size      uint32le, decompressed length
//	payload   raw stream
//	checksum  uint32le, xxHash32 of the decompressed content
const frameMagic = 0x53385A4C

const (
	frameZeroOffset = 1 << 0
	frameXorOffset  = 1 << 1
	frameOffsetRel  = 1 << 2
)

// EncodeFrame appends the framed compressed form of src to dst.
func (e *Encoder) EncodeFrame(dst, src []byte) ([]byte, error) {
	dst = binary.LittleEndian.AppendUint32(dst, frameMagic)

	flags := byte(0)
	if e.cfg.ZeroOffset {
		flags |= frameZeroOffset
	}
	if e.cfg.XorOffset {
		flags |= frameXorOffset
	}
	if e.cfg.OffsetRel >= 0 {
		flags |= frameOffsetRel
	}
	dst = append(dst, flags, byte(e.cfg.BitsMOff))
	dst = binary.LittleEndian.AppendUint16(dst, uint16(e.cfg.MaxLLen))
	dst = binary.LittleEndian.AppendUint16(dst, uint16(e.cfg.MaxMLen))
	if e.cfg.OffsetRel >= 0 {
		dst = binary.LittleEndian.AppendUint16(dst, uint16(e.cfg.OffsetRel))
	}
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(src)))

	dst, err := e.Encode(dst, src)
	if err != nil {
		return dst, err
	}
	return binary.LittleEndian.AppendUint32(dst, xxHash32.Checksum(src, 0)), nil
}

// DecodeFrame appends the decompressed content of a framed stream to
// dst. The configuration comes from the frame header; the checksum and
// size are verified after decoding.
func DecodeFrame(dst, src []byte) ([]byte, error) {
	if len(src) < 14 {
		return dst, ErrFrameTruncated
	}
	if binary.LittleEndian.Uint32(src) != frameMagic {
		return dst, ErrFrameMagic
	}
	flags := src[4]
	cfg := Config{
		BitsMOff:   int(src[5]),
		MaxLLen:    int(binary.LittleEndian.Uint16(src[6:])),
		MaxMLen:    int(binary.LittleEndian.Uint16(src[8:])),
		ZeroOffset: flags&frameZeroOffset != 0,
		XorOffset:  flags&frameXorOffset != 0,
		OffsetRel:  -1,
	}
	hdr := 10
	if flags&frameOffsetRel != 0 {
		if len(src) < 16 {
			return dst, ErrFrameTruncated
		}
		cfg.OffsetRel = int(binary.LittleEndian.Uint16(src[hdr:]))
		hdr += 2
	}
	size := int(binary.LittleEndian.Uint32(src[hdr:]))
	hdr += 4
	if len(src) < hdr+4 {
		return dst, ErrFrameTruncated
	}
	payload := src[hdr : len(src)-4]
	want := binary.LittleEndian.Uint32(src[len(src)-4:])

	d, err := NewDecoder(cfg)
	if err != nil {
		return dst, err
	}
	start := len(dst)
	dst, err = d.Decode(dst, payload)
	if err != nil {
		return dst, err
	}
	content := dst[start:]
	if len(content) != size {
		return dst, fmt.Errorf("%w: decoded %d bytes, header says %d",
			ErrFrameTruncated, len(content), size)
	}
	if sum := xxHash32.Checksum(content, 0); sum != want {
		return dst, fmt.Errorf("%w: got %08x, want %08x", ErrFrameChecksum, sum, want)
	}
	return dst, nil
}
