package pdu

import (
	"github.com/relaysmpp/smppcodec/data"
)

// CancelBroadcastSm withdraws a previously submitted, still-active broadcast
// message.
type CancelBroadcastSm struct {
	SequenceNumber uint32
	ServiceType    string
	MessageID      string
	Source         Address
	OptionalParams []TLV
}

// CommandID implements PDU.
func (c *CancelBroadcastSm) CommandID() data.CommandID { return data.CancelBroadcastSmID }

// SeqNum implements PDU.
func (c *CancelBroadcastSm) SeqNum() uint32 { return c.SequenceNumber }

// Status implements PDU.
func (c *CancelBroadcastSm) Status() data.CommandStatus { return data.StatusOK }

func (c *CancelBroadcastSm) marshalBody(b *ByteBuffer) error {
	if err := b.WriteCString(c.ServiceType, serviceTypeLen); err != nil {
		return err
	}
	if err := b.WriteCString(c.MessageID, messageIDLen); err != nil {
		return err
	}
	if err := c.Source.marshal(b); err != nil {
		return err
	}
	marshalTLVs(b, c.OptionalParams)
	return nil
}

func decodeCancelBroadcastSmBody(h Header, b *ByteBuffer) (PDU, error) {
	c := &CancelBroadcastSm{SequenceNumber: h.SequenceNumber}
	var err error
	if c.ServiceType, err = b.ReadCString(serviceTypeLen); err != nil {
		return nil, err
	}
	if c.MessageID, err = b.ReadCString(messageIDLen); err != nil {
		return nil, err
	}
	if c.Source, err = decodeAddress(b); err != nil {
		return nil, err
	}
	if c.OptionalParams, err = decodeTLVs(b); err != nil {
		return nil, err
	}
	return c, nil
}

// CancelBroadcastSmResp carries no body of its own.
type CancelBroadcastSmResp struct {
	SequenceNumber uint32
	CommandStatus  data.CommandStatus
}

// CommandID implements PDU.
func (c *CancelBroadcastSmResp) CommandID() data.CommandID { return data.CancelBroadcastSmRespID }

// SeqNum implements PDU.
func (c *CancelBroadcastSmResp) SeqNum() uint32 { return c.SequenceNumber }

// Status implements PDU.
func (c *CancelBroadcastSmResp) Status() data.CommandStatus { return c.CommandStatus }

func (c *CancelBroadcastSmResp) marshalBody(b *ByteBuffer) error { return nil }

func decodeCancelBroadcastSmRespBody(h Header, b *ByteBuffer) (PDU, error) {
	return &CancelBroadcastSmResp{SequenceNumber: h.SequenceNumber, CommandStatus: h.CommandStatus}, nil
}

func init() {
	register(data.CancelBroadcastSmID, decodeCancelBroadcastSmBody)
	register(data.CancelBroadcastSmRespID, decodeCancelBroadcastSmRespBody)
}
