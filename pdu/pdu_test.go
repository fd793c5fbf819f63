package pdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaysmpp/smppcodec/data"
	smpperrors "github.com/relaysmpp/smppcodec/errors"
)

// S1: SubmitSm round-trip.
func TestSubmitSmRoundTrip(t *testing.T) {
	s := &SubmitSm{
		SequenceNumber: 1,
		smFields: smFields{
			Source:             Address{Ton: data.TonUnknown, Npi: data.NpiUnknown, Value: "123456"},
			Dest:               Address{Ton: data.TonInternational, Npi: data.NpiISDN, Value: "9876543210"},
			RegisteredDelivery: 1,
			DataCoding:         0,
			ShortMessage:       []byte("Hello, World!"),
		},
	}

	raw, err := Encode(s)
	require.NoError(t, err)
	assert.Equal(t, uint32(len(raw)), uint32(raw[0])<<24|uint32(raw[1])<<16|uint32(raw[2])<<8|uint32(raw[3]))
	assert.Equal(t, uint32(data.SubmitSmID), uint32(raw[4])<<24|uint32(raw[5])<<16|uint32(raw[6])<<8|uint32(raw[7]))

	decoded, err := Parse(raw)
	require.NoError(t, err)
	got, ok := decoded.(*SubmitSm)
	require.True(t, ok)
	assert.Equal(t, s.SequenceNumber, got.SequenceNumber)
	assert.Equal(t, s.Source, got.Source)
	assert.Equal(t, s.Dest, got.Dest)
	assert.Equal(t, s.RegisteredDelivery, got.RegisteredDelivery)
	assert.Equal(t, s.ShortMessage, got.ShortMessage)
	assert.Equal(t, byte(13), byte(len(got.ShortMessage)))
}

// S4: BindTransceiver round-trip, response command_id carries the high bit.
func TestBindTransceiverRoundTrip(t *testing.T) {
	b := &BindRequest{
		SequenceNumber: 7,
		Mode:           data.BindTransceiver,
		SystemID:       "my_system_id",
		Password:       "password",
	}
	assert.Equal(t, data.BindTransceiverID, b.CommandID())

	raw, err := Encode(b)
	require.NoError(t, err)

	decoded, err := Parse(raw)
	require.NoError(t, err)
	got, ok := decoded.(*BindRequest)
	require.True(t, ok)
	assert.Equal(t, "my_system_id", got.SystemID)
	assert.Equal(t, "password", got.Password)

	resp := &BindResponse{SequenceNumber: b.SequenceNumber, Mode: data.BindTransceiver, SystemID: "my_system_id"}
	assert.Equal(t, data.CommandID(0x80000009), resp.CommandID())
	assert.Equal(t, b.CommandID().Resp(), resp.CommandID())

	respRaw, err := Encode(resp)
	require.NoError(t, err)
	respDecoded, err := Parse(respRaw)
	require.NoError(t, err)
	gotResp, ok := respDecoded.(*BindResponse)
	require.True(t, ok)
	assert.Equal(t, "my_system_id", gotResp.SystemID)
}

// S5: SubmitMulti with two heterogeneous destinations.
func TestSubmitMultiTwoDestinations(t *testing.T) {
	sm := &SubmitMulti{
		SequenceNumber: 2,
		Source:         Address{Value: "123456"},
		Destinations: []Destination{
			{SmeAddress: Address{Ton: data.TonInternational, Npi: data.NpiISDN, Value: "111111"}},
			{IsDistList: true, DistList: "MyList"},
		},
		ShortMessage: []byte("hi"),
	}

	raw, err := Encode(sm)
	require.NoError(t, err)

	decoded, err := Parse(raw)
	require.NoError(t, err)
	got, ok := decoded.(*SubmitMulti)
	require.True(t, ok)
	require.Len(t, got.Destinations, 2)
	assert.False(t, got.Destinations[0].IsDistList)
	assert.Equal(t, "111111", got.Destinations[0].SmeAddress.Value)
	assert.True(t, got.Destinations[1].IsDistList)
	assert.Equal(t, "MyList", got.Destinations[1].DistList)
}

// S6: BroadcastSm round-trip preserving the four mandatory TLVs into their
// named fields alongside an optional TLV that follows them on the wire.
func TestBroadcastSmRoundTrip(t *testing.T) {
	b := &BroadcastSm{
		SequenceNumber:             3,
		Source:                     Address{Value: "1"},
		MessageID:                  "msg1",
		BroadcastAreaIdentifiers:   [][]byte{{0x00, 0x01, 0x02}},
		BroadcastContentType:       []byte{0x00, 0x00},
		BroadcastRepNum:            5,
		BroadcastFrequencyInterval: []byte{0x0A, 0x00, 0x01},
		OptionalParams:             []TLV{NewTLVUint8(data.TagAlertOnMessageDelivery, 1)},
	}

	raw, err := Encode(b)
	require.NoError(t, err)

	decoded, err := Parse(raw)
	require.NoError(t, err)
	got, ok := decoded.(*BroadcastSm)
	require.True(t, ok)
	assert.Equal(t, b.BroadcastAreaIdentifiers, got.BroadcastAreaIdentifiers)
	assert.Equal(t, b.BroadcastContentType, got.BroadcastContentType)
	assert.Equal(t, b.BroadcastRepNum, got.BroadcastRepNum)
	assert.Equal(t, b.BroadcastFrequencyInterval, got.BroadcastFrequencyInterval)
	require.Len(t, got.OptionalParams, 1)
	assert.Equal(t, data.TagAlertOnMessageDelivery, got.OptionalParams[0].Tag)
}

// Header length law (property 2): command_length equals total buffer length.
func TestHeaderLengthLaw(t *testing.T) {
	e := &EnquireLink{SequenceNumber: 42}
	raw, err := Encode(e)
	require.NoError(t, err)
	length := uint32(raw[0])<<24 | uint32(raw[1])<<16 | uint32(raw[2])<<8 | uint32(raw[3])
	assert.Equal(t, uint32(len(raw)), length)
}

// Response command_id law (property 3).
func TestResponseCommandIDLaw(t *testing.T) {
	assert.Equal(t, data.CommandID(0x80000004), data.SubmitSmID.Resp())
	assert.Equal(t, data.SubmitSmRespID, data.SubmitSmID.Resp())
}

// Malformed input (property 8): truncating a valid PDU never decodes
// partially; it surfaces an error.
func TestTruncatedPDUNeverPartiallyDecodes(t *testing.T) {
	e := &EnquireLink{SequenceNumber: 1}
	raw, err := Encode(e)
	require.NoError(t, err)

	_, err = Parse(raw[:len(raw)-1])
	assert.Error(t, err)
}

func TestParseUnknownCommandID(t *testing.T) {
	raw := []byte{0, 0, 0, 16, 0xFF, 0xFF, 0xFF, 0xFF, 0, 0, 0, 0, 0, 0, 0, 1}
	_, err := Parse(raw)
	assert.ErrorIs(t, err, smpperrors.ErrUnknownCommandID)
}

func TestParseInvalidHeaderShortLength(t *testing.T) {
	raw := []byte{0, 0, 0, 10, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	_, err := Parse(raw)
	assert.ErrorIs(t, err, smpperrors.ErrInvalidHeader)
}

func TestEnquireLinkAndUnbindHaveEmptyBodies(t *testing.T) {
	for _, p := range []PDU{
		&EnquireLink{SequenceNumber: 1},
		&EnquireLinkResp{SequenceNumber: 1},
		&Unbind{SequenceNumber: 1},
		&UnbindResp{SequenceNumber: 1},
	} {
		raw, err := Encode(p)
		require.NoError(t, err)
		assert.Equal(t, HeaderLen, len(raw))
	}
}

func TestShortMessageTooLongRejectedOnEncode(t *testing.T) {
	s := &SubmitSm{
		SequenceNumber: 1,
		smFields: smFields{
			Source:       Address{},
			Dest:         Address{},
			ShortMessage: make([]byte, 255),
		},
	}
	_, err := Encode(s)
	assert.ErrorIs(t, err, smpperrors.ErrShortMessageTooLong)
}
