package pdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	smpperrors "github.com/relaysmpp/smppcodec/errors"
)

func TestByteBufferCStringRoundTrip(t *testing.T) {
	b := &ByteBuffer{}
	require.NoError(t, b.WriteCString("hello", 16))

	rb := NewByteBuffer(b.Bytes())
	s, err := rb.ReadCString(16)
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestByteBufferCStringTooLong(t *testing.T) {
	b := &ByteBuffer{}
	err := b.WriteCString("toolongforthefield", 8)
	assert.ErrorIs(t, err, smpperrors.ErrFieldTooLong)
}

func TestByteBufferCStringMissingTerminator(t *testing.T) {
	rb := NewByteBuffer([]byte("nonullhere"))
	_, err := rb.ReadCString(5)
	assert.ErrorIs(t, err, smpperrors.ErrTruncatedField)
}

func TestByteBufferReadPastEnd(t *testing.T) {
	rb := NewByteBuffer([]byte{0x01})
	_, err := rb.ReadByte()
	require.NoError(t, err)
	_, err = rb.ReadByte()
	assert.ErrorIs(t, err, smpperrors.ErrUnexpectedEOF)
}

func TestByteBufferUint32RoundTrip(t *testing.T) {
	b := &ByteBuffer{}
	b.WriteUint32(0x12345678)
	rb := NewByteBuffer(b.Bytes())
	v, err := rb.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), v)
}
