package lz8s

import "errors"

// Sentinel errors. Decode errors are wrapped with the output position;
// use errors.Is to test for them.
var (
	// ErrInputTooLarge is returned by the encoder when the input exceeds
	// MaxInputSize.
	ErrInputTooLarge = errors.New("lz8s: input exceeds maximum size")

	// ErrShortLiteral is returned when the stream ends inside the data
	// bytes of a literal block.
	ErrShortLiteral = errors.New("lz8s: short file reading literal")

	// ErrShortLength is returned when the stream ends after the first
	// byte of a two-byte length field.
	ErrShortLength = errors.New("lz8s: short file reading second byte of length")

	// ErrShortOffset is returned when the stream ends inside a match
	// offset field.
	ErrShortOffset = errors.New("lz8s: short file reading match offset")

	// ErrBadConfig is returned when a Config fails validation. The
	// wrapped message names the offending field.
	ErrBadConfig = errors.New("lz8s: invalid configuration")

	// ErrFrameMagic is returned by DecodeFrame when the input does not
	// start with the frame magic number.
	ErrFrameMagic = errors.New("lz8s: not a framed stream")

	// ErrFrameTruncated is returned by DecodeFrame when the input ends
	// inside the frame header or before the declared content size is
	// reached.
	ErrFrameTruncated = errors.New("lz8s: framed stream truncated")

	// ErrFrameChecksum is returned by DecodeFrame when the decoded
	// content does not match the frame's checksum.
	ErrFrameChecksum = errors.New("lz8s: frame content checksum mismatch")
)
