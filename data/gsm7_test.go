package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGSM7EncodeDecodeRoundTrip(t *testing.T) {
	septets, ok := GSM7EncodeSeptets("Hello, World!")
	require.True(t, ok)
	assert.Equal(t, "Hello, World!", GSM7DecodeSeptets(septets))
}

func TestGSM7ExtensionCharRoundTrip(t *testing.T) {
	septets, ok := GSM7EncodeSeptets("a{b}c")
	require.True(t, ok)
	// each extension char costs two septets: escape + payload
	assert.Equal(t, 7, len(septets))
	assert.Equal(t, "a{b}c", GSM7DecodeSeptets(septets))
}

func TestGSM7EncodeRejectsUnencodable(t *testing.T) {
	_, ok := GSM7EncodeSeptets("emoji \U0001F600")
	assert.False(t, ok)
}

func TestGSM7PackUnpackRoundTrip(t *testing.T) {
	septets, ok := GSM7EncodeSeptets("Hello, World!")
	require.True(t, ok)

	packed := GSM7Pack(septets)
	// 13 chars * 7 bits = 91 bits -> 12 octets (with 5 padding bits)
	assert.Equal(t, 12, len(packed))

	unpacked := GSM7Unpack(packed, len(septets))
	assert.Equal(t, septets, unpacked)
}

func TestGSM7PackUnpackEmpty(t *testing.T) {
	assert.Empty(t, GSM7Pack(nil))
	assert.Empty(t, GSM7Unpack(nil, 0))
}
