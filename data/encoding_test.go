package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	smpperrors "github.com/relaysmpp/smppcodec/errors"
)

func TestGSM7BITEncodeDecode(t *testing.T) {
	raw, err := GSM7BIT.Encode("Hello, World!")
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), GSM7BIT.DataCoding())

	text, err := GSM7BIT.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", text)
}

func TestGSM7BITEncodeFailsOnUnencodable(t *testing.T) {
	_, err := GSM7BIT.Encode("\U0001F600")
	assert.ErrorIs(t, err, smpperrors.ErrEncoding)
}

func TestUCS2RoundTrip(t *testing.T) {
	raw, err := UCS2Coding.Encode("héllo 世界")
	require.NoError(t, err)
	assert.Equal(t, byte(0x08), UCS2Coding.DataCoding())

	text, err := UCS2Coding.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "héllo 世界", text)
}

func TestUCS2HandlesSurrogatePairs(t *testing.T) {
	// U+1F600 requires a UTF-16 surrogate pair (4 bytes on the wire).
	raw, err := UCS2Coding.Encode("\U0001F600")
	require.NoError(t, err)
	assert.Len(t, raw, 4)

	text, err := UCS2Coding.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "\U0001F600", text)
}

func TestBinary8BitPassthrough(t *testing.T) {
	raw, err := BINARY8BIT2Coding.Encode("\x00\x01\xff")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0xff}, raw)
	assert.Equal(t, byte(0x04), BINARY8BIT2Coding.DataCoding())
}

func TestFromDataCoding(t *testing.T) {
	assert.Equal(t, GSM7BIT, FromDataCoding(0x00))
	assert.Equal(t, UCS2Coding, FromDataCoding(0x08))
	assert.Equal(t, BINARY8BIT2Coding, FromDataCoding(0x04))
	// unrecognized codings fall back to binary passthrough
	assert.Equal(t, BINARY8BIT2Coding, FromDataCoding(0x7F))
}
