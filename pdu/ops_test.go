package pdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaysmpp/smppcodec/data"
)

func TestDataSmRoundTrip(t *testing.T) {
	d := &DataSm{
		SequenceNumber:     5,
		Source:             Address{Value: "from"},
		Dest:               Address{Value: "to"},
		EsmClass:           0x03,
		RegisteredDelivery: 1,
		DataCoding:         0x08,
		OptionalParams:     []TLV{NewTLVUint32(data.TagMessagePayload, 0)},
	}
	raw, err := Encode(d)
	require.NoError(t, err)
	decoded, err := Parse(raw)
	require.NoError(t, err)
	got, ok := decoded.(*DataSm)
	require.True(t, ok)
	assert.Equal(t, d.Source, got.Source)
	assert.Equal(t, d.Dest, got.Dest)
	assert.Equal(t, d.DataCoding, got.DataCoding)
}

func TestQuerySmRoundTrip(t *testing.T) {
	q := &QuerySm{SequenceNumber: 9, MessageID: "abc123", Source: Address{Value: "src"}}
	raw, err := Encode(q)
	require.NoError(t, err)
	decoded, err := Parse(raw)
	require.NoError(t, err)
	got, ok := decoded.(*QuerySm)
	require.True(t, ok)
	assert.Equal(t, "abc123", got.MessageID)
	assert.Equal(t, "src", got.Source.Value)

	resp := &QuerySmResp{SequenceNumber: 9, MessageID: "abc123", FinalDate: "", MessageState: 2, ErrorCode: 0}
	respRaw, err := Encode(resp)
	require.NoError(t, err)
	respDecoded, err := Parse(respRaw)
	require.NoError(t, err)
	gotResp, ok := respDecoded.(*QuerySmResp)
	require.True(t, ok)
	assert.Equal(t, byte(2), gotResp.MessageState)
}

func TestCancelSmRoundTrip(t *testing.T) {
	c := &CancelSm{SequenceNumber: 4, MessageID: "m1", Source: Address{Value: "a"}, Dest: Address{Value: "b"}}
	raw, err := Encode(c)
	require.NoError(t, err)
	decoded, err := Parse(raw)
	require.NoError(t, err)
	got, ok := decoded.(*CancelSm)
	require.True(t, ok)
	assert.Equal(t, "m1", got.MessageID)
	assert.Equal(t, "a", got.Source.Value)
	assert.Equal(t, "b", got.Dest.Value)
}

func TestReplaceSmRoundTrip(t *testing.T) {
	r := &ReplaceSm{
		SequenceNumber:     6,
		MessageID:          "m2",
		Source:             Address{Value: "src"},
		RegisteredDelivery: 1,
		ShortMessage:       []byte("new text"),
	}
	raw, err := Encode(r)
	require.NoError(t, err)
	decoded, err := Parse(raw)
	require.NoError(t, err)
	got, ok := decoded.(*ReplaceSm)
	require.True(t, ok)
	assert.Equal(t, []byte("new text"), got.ShortMessage)
}

func TestQueryBroadcastSmRoundTrip(t *testing.T) {
	q := &QueryBroadcastSm{SequenceNumber: 8, MessageID: "b1", Source: Address{Value: "src"}}
	raw, err := Encode(q)
	require.NoError(t, err)
	decoded, err := Parse(raw)
	require.NoError(t, err)
	got, ok := decoded.(*QueryBroadcastSm)
	require.True(t, ok)
	assert.Equal(t, "b1", got.MessageID)

	resp := &QueryBroadcastSmResp{
		SequenceNumber:           8,
		MessageID:                "b1",
		MessageState:             1,
		BroadcastAreaIdentifiers: [][]byte{{1, 2}, {3, 4}},
	}
	respRaw, err := Encode(resp)
	require.NoError(t, err)
	respDecoded, err := Parse(respRaw)
	require.NoError(t, err)
	gotResp, ok := respDecoded.(*QueryBroadcastSmResp)
	require.True(t, ok)
	assert.Equal(t, resp.BroadcastAreaIdentifiers, gotResp.BroadcastAreaIdentifiers)
}

func TestCancelBroadcastSmRoundTrip(t *testing.T) {
	c := &CancelBroadcastSm{SequenceNumber: 11, MessageID: "b2", Source: Address{Value: "src"}}
	raw, err := Encode(c)
	require.NoError(t, err)
	decoded, err := Parse(raw)
	require.NoError(t, err)
	got, ok := decoded.(*CancelBroadcastSm)
	require.True(t, ok)
	assert.Equal(t, "b2", got.MessageID)
}

func TestAlertNotificationRoundTrip(t *testing.T) {
	a := &AlertNotification{
		SequenceNumber: 12,
		Source:         Address{Value: "src"},
		Esme:           Address{Value: "esme"},
	}
	raw, err := Encode(a)
	require.NoError(t, err)
	decoded, err := Parse(raw)
	require.NoError(t, err)
	got, ok := decoded.(*AlertNotification)
	require.True(t, ok)
	assert.Equal(t, "esme", got.Esme.Value)
}

func TestGenericNackRoundTrip(t *testing.T) {
	g := &GenericNack{SequenceNumber: 1, CommandStatus: data.StatusInvalidCommandID}
	raw, err := Encode(g)
	require.NoError(t, err)
	decoded, err := Parse(raw)
	require.NoError(t, err)
	got, ok := decoded.(*GenericNack)
	require.True(t, ok)
	assert.Equal(t, data.StatusInvalidCommandID, got.CommandStatus)
}

func TestSplitTextUDHSetsUDHIBit(t *testing.T) {
	text := make([]byte, 0, 200)
	for i := 0; i < 200; i++ {
		text = append(text, 'a')
	}
	segs := SplitText(string(text), 0, 0, 0x00)
	require.True(t, len(segs) > 1)
	for _, s := range segs {
		assert.Equal(t, byte(esmClassUDHI), s.EsmClass&esmClassUDHI)
	}
}
