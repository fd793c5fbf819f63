package pdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaysmpp/smppcodec/data"
)

func TestTLVRoundTrip(t *testing.T) {
	tlvs := []TLV{
		NewTLVUint8(data.TagScInterfaceVersion, 0x50),
		NewTLVUint16(data.TagSarTotalSegments, 3),
		NewTLV(data.TagNetworkErrorCode, []byte{3, 0, 0}),
	}

	b := &ByteBuffer{}
	marshalTLVs(b, tlvs)

	decoded, err := decodeTLVs(NewByteBuffer(b.Bytes()))
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	assert.Equal(t, tlvs, decoded)
}

func TestTLVOrderPreserved(t *testing.T) {
	tlvs := []TLV{
		NewTLVUint8(data.TagBroadcastRepNum, 1),
		NewTLVUint8(data.TagDisplayTime, 2),
		NewTLVUint8(data.TagSmsSignal, 3),
	}
	b := &ByteBuffer{}
	marshalTLVs(b, tlvs)
	decoded, err := decodeTLVs(NewByteBuffer(b.Bytes()))
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	for i, tlv := range tlvs {
		assert.Equal(t, tlv.Tag, decoded[i].Tag)
	}
}

func TestDecodeTLVsMalformedLength(t *testing.T) {
	// tag=0x0001, length=0x0010 (16), but no value bytes follow
	raw := []byte{0x00, 0x01, 0x00, 0x10}
	_, err := decodeTLVs(NewByteBuffer(raw))
	assert.Error(t, err)
}

func TestFindTLV(t *testing.T) {
	tlvs := []TLV{NewTLVUint8(data.TagScInterfaceVersion, 0x34)}
	tlv, ok := findTLV(tlvs, data.TagScInterfaceVersion)
	require.True(t, ok)
	assert.Equal(t, uint8(0x34), tlv.Uint8())

	_, ok = findTLV(tlvs, data.TagDisplayTime)
	assert.False(t, ok)
}
