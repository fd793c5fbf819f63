package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaysmpp/smppcodec/data"
)

func TestSplitSingleSegmentGSM7(t *testing.T) {
	out := Split("Hello, World!", GSM7BIT, UDH)
	require.Len(t, out.Parts, 1)
	assert.Equal(t, data.GSM7BIT.DataCoding(), out.DataCoding)
}

// the scenario from the test-plan: a 197-character ASCII message split under
// GSM_7BIT/UDH must produce two parts, each carrying a 6-byte UDH with a
// shared reference byte and increasing sequence numbers.
func TestSplitLongMessageUDH(t *testing.T) {
	text := strings.Repeat("a", 197)
	out := Split(text, GSM7BIT, UDH)
	require.Len(t, out.Parts, 2)
	assert.Equal(t, data.GSM7BIT.DataCoding(), out.DataCoding)

	p0, p1 := out.Parts[0], out.Parts[1]
	require.True(t, len(p0) >= 6 && len(p1) >= 6)
	assert.Equal(t, []byte{0x05, 0x00, 0x03}, p0[:3])
	assert.Equal(t, []byte{0x05, 0x00, 0x03}, p1[:3])
	assert.Equal(t, p0[3], p1[3], "reference byte must match across segments")
	assert.Equal(t, byte(2), p0[4])
	assert.Equal(t, byte(1), p0[5])
	assert.Equal(t, byte(2), p1[4])
	assert.Equal(t, byte(2), p1[5])
}

func TestSplitLongMessageSARHasNoUDH(t *testing.T) {
	text := strings.Repeat("a", 197)
	out := Split(text, GSM7BIT, SAR)
	require.Len(t, out.Parts, 2)

	septets, ok := data.GSM7EncodeSeptets(text)
	require.True(t, ok)
	wholePacked := data.GSM7Pack(septets)

	var reassembled []byte
	for _, p := range out.Parts {
		reassembled = append(reassembled, p...)
	}
	// SAR segments carry no header, and the first chunk's 160 septets pack
	// into exactly 140 octets, so the packed octets of each chunk
	// concatenate back to the full packed-septet sequence.
	assert.Equal(t, wholePacked, reassembled)
}

func TestSegmentationSizingUDH(t *testing.T) {
	text := strings.Repeat("a", 400)
	out := Split(text, GSM7BIT, UDH)
	for _, p := range out.Parts {
		// payload octets after the 6-byte UDH (7 bits per char for 'a')
		assert.LessOrEqual(t, len(p)-6, 134) // 153 septets packed is <=134 octets
	}
}

func TestSegmentationSizingUCS2(t *testing.T) {
	text := strings.Repeat("日", 200)
	out := Split(text, UCS2, UDH)
	for _, p := range out.Parts {
		assert.LessOrEqual(t, len(p), 140)
	}
}

func TestEncodingFallbackToUCS2(t *testing.T) {
	out := Split("emoji \U0001F600", GSM7BIT, UDH)
	assert.Equal(t, data.UCS2Coding.DataCoding(), out.DataCoding)
}

func TestSplitNeverBreaksEscapePair(t *testing.T) {
	// pad with extension characters right at the chunk boundary to force
	// the escape-pair-safe chunker to back off by one septet.
	text := strings.Repeat("a", 152) + "{{"
	septets, ok := data.GSM7EncodeSeptets(text)
	require.True(t, ok)

	chunks := chunkGSM7(septets, gsm7UDHLimit)
	for _, c := range chunks {
		if len(c) > 0 {
			assert.NotEqual(t, data.GSM7Escape, c[len(c)-1], "chunk must not end on a lone escape byte")
		}
	}
}
