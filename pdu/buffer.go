package pdu

import (
	"bytes"

	smpperrors "github.com/relaysmpp/smppcodec/errors"
)

// ByteBuffer is the cursor-tracking read/write primitive every field and
// TLV codec in this package builds on. Writes append; reads advance an
// internal cursor and fail with ErrUnexpectedEOF once exhausted.
type ByteBuffer struct {
	buf bytes.Buffer
	rd  []byte
	pos int
}

// NewByteBuffer wraps raw for decoding.
func NewByteBuffer(raw []byte) *ByteBuffer {
	return &ByteBuffer{rd: raw}
}

// Grow pre-allocates n bytes of write capacity.
func (b *ByteBuffer) Grow(n int) {
	b.buf.Grow(n)
}

// Bytes returns the bytes written so far.
func (b *ByteBuffer) Bytes() []byte {
	return b.buf.Bytes()
}

// Remaining reports how many unread bytes remain in a decode buffer.
func (b *ByteBuffer) Remaining() int {
	return len(b.rd) - b.pos
}

// WriteByte appends a single byte.
func (b *ByteBuffer) WriteByte(v byte) error {
	return b.buf.WriteByte(v)
}

// Write appends p.
func (b *ByteBuffer) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

// WriteUint16 appends v in network byte order.
func (b *ByteBuffer) WriteUint16(v uint16) {
	_ = b.buf.WriteByte(byte(v >> 8))
	_ = b.buf.WriteByte(byte(v))
}

// WriteUint32 appends v in network byte order.
func (b *ByteBuffer) WriteUint32(v uint32) {
	_ = b.buf.WriteByte(byte(v >> 24))
	_ = b.buf.WriteByte(byte(v >> 16))
	_ = b.buf.WriteByte(byte(v >> 8))
	_ = b.buf.WriteByte(byte(v))
}

// WriteCString appends s followed by a null terminator. Fails with
// ErrFieldTooLong if len(s)+1 exceeds maxLen.
func (b *ByteBuffer) WriteCString(s string, maxLen int) error {
	if len(s)+1 > maxLen {
		return smpperrors.ErrFieldTooLong
	}
	_, _ = b.buf.WriteString(s)
	return b.buf.WriteByte(0)
}

// ReadByte consumes and returns the next byte.
func (b *ByteBuffer) ReadByte() (byte, error) {
	if b.pos >= len(b.rd) {
		return 0, smpperrors.ErrUnexpectedEOF
	}
	v := b.rd[b.pos]
	b.pos++
	return v, nil
}

// ReadN consumes and returns the next n bytes.
func (b *ByteBuffer) ReadN(n int) ([]byte, error) {
	if n < 0 || b.pos+n > len(b.rd) {
		return nil, smpperrors.ErrUnexpectedEOF
	}
	v := b.rd[b.pos : b.pos+n]
	b.pos += n
	return v, nil
}

// ReadUint16 consumes a network-byte-order uint16.
func (b *ByteBuffer) ReadUint16() (uint16, error) {
	raw, err := b.ReadN(2)
	if err != nil {
		return 0, err
	}
	return uint16(raw[0])<<8 | uint16(raw[1]), nil
}

// ReadUint32 consumes a network-byte-order uint32.
func (b *ByteBuffer) ReadUint32() (uint32, error) {
	raw, err := b.ReadN(4)
	if err != nil {
		return 0, err
	}
	return uint32(raw[0])<<24 | uint32(raw[1])<<16 | uint32(raw[2])<<8 | uint32(raw[3]), nil
}

// ReadCString consumes bytes up to and including the next null terminator,
// failing with ErrTruncatedField if none is found within maxLen bytes
// (including the terminator).
func (b *ByteBuffer) ReadCString(maxLen int) (string, error) {
	start := b.pos
	for i := 0; i < maxLen; i++ {
		c, err := b.ReadByte()
		if err != nil {
			return "", smpperrors.ErrUnexpectedEOF
		}
		if c == 0 {
			return string(b.rd[start : b.pos-1]), nil
		}
	}
	return "", smpperrors.ErrTruncatedField
}
