package lz8s

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// A Decoder decompresses streams produced with the same Config. It
// keeps a ring buffer of 256 bytes (BitsMOff up to 8) or 64 KiB between
// blocks, so one Decoder handles one stream at a time.
type Decoder struct {
	cfg Config
	buf []byte // ring buffer, mask()+1 bytes
}

// NewDecoder returns a Decoder for the given configuration.
func NewDecoder(cfg Config) (*Decoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Decoder{
		cfg: cfg,
		buf: make([]byte, cfg.mask()+1),
	}, nil
}

// Decode appends the decompressed form of src to dst and returns the
// resulting slice. On a truncated stream it returns the bytes decoded
// so far along with the error; clean EOF at a block boundary is not an
// error.
func (d *Decoder) Decode(dst, src []byte) ([]byte, error) {
	return d.DecodeFrom(dst, &sliceReader{data: src})
}

// DecodeFrom reads a compressed stream from r until EOF, appending the
// decompressed bytes to dst.
func (d *Decoder) DecodeFrom(dst []byte, r io.ByteReader) ([]byte, error) {
	mask := d.cfg.mask()
	pos := 0
	// Start from a zeroed window so streams that reference unwritten
	// cells (possible in address-relative mode) decode the same way
	// every time.
	for i := range d.buf {
		d.buf[i] = 0
	}

	for {
		// Literal block.
		n, err := d.readLen(r, d.cfg.MaxLLen)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return dst, nil
			}
			return dst, fmt.Errorf("%w at output position %d", err, pos)
		}
		for i := 0; i < n; i++ {
			x, err := r.ReadByte()
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = ErrShortLiteral
				}
				return dst, fmt.Errorf("%w at output position %d", err, pos)
			}
			d.buf[pos&mask] = x
			dst = append(dst, x)
			pos++
		}

		// Match block.
		n, err = d.readLen(r, d.cfg.MaxMLen)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return dst, nil
			}
			return dst, fmt.Errorf("%w at output position %d", err, pos)
		}
		if n == 0 && !d.cfg.ZeroOffset {
			continue
		}

		off := 0
		if d.cfg.BitsMOff > 0 {
			x, err := r.ReadByte()
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = ErrShortOffset
				}
				return dst, fmt.Errorf("%w at output position %d", err, pos)
			}
			off = int(x)
		}
		if d.cfg.BitsMOff > 8 {
			x, err := r.ReadByte()
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = ErrShortOffset
				}
				return dst, fmt.Errorf("%w at output position %d", err, pos)
			}
			off |= int(x) << 8
		}
		if d.cfg.XorOffset {
			off ^= mask
		}
		// Convert the wire offset to a source index in the ring. For
		// delta offsets, 0 means one byte back from the current
		// position; in address-relative mode the field already holds
		// the source index under the configured base.
		if d.cfg.OffsetRel < 0 {
			off = pos - off + mask
		} else {
			off = off + mask + 1 - d.cfg.OffsetRel
		}
		// Byte-at-a-time so overlapping copies repeat the bytes just
		// written, which is what gives short offsets RLE semantics.
		for i := 0; i < n; i++ {
			x := d.buf[off&mask]
			d.buf[pos&mask] = x
			dst = append(dst, x)
			pos++
			off++
		}
	}
}

// readLen reads a length field. The second byte is present only when
// the configured maximum needs it and the first byte has the high bit
// set. io.EOF is returned as-is on the first byte (a clean boundary);
// inside the field it becomes ErrShortLength.
func (d *Decoder) readLen(r io.ByteReader, max int) (int, error) {
	c, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	if max < 256 || c < 128 {
		return int(c), nil
	}
	c2, err := r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrShortLength
		}
		return 0, err
	}
	return int(c) + int(c2)<<7, nil
}

// DecodeReader decompresses everything from r using cfg, buffering the
// input. It is a convenience for stream callers; Decode is the
// allocation-friendly form.
func DecodeReader(cfg Config, r io.Reader) ([]byte, error) {
	d, err := NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return d.DecodeFrom(nil, br)
}

// sliceReader is an io.ByteReader over a slice.
type sliceReader struct {
	data []byte
	pos  int
}

func (r *sliceReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}
