package pdu

import (
	"github.com/relaysmpp/smppcodec/data"
)

// CancelSm withdraws a previously submitted, not-yet-delivered short message.
type CancelSm struct {
	SequenceNumber uint32
	ServiceType    string
	MessageID      string
	Source         Address
	Dest           Address
}

// CommandID implements PDU.
func (c *CancelSm) CommandID() data.CommandID { return data.CancelSmID }

// SeqNum implements PDU.
func (c *CancelSm) SeqNum() uint32 { return c.SequenceNumber }

// Status implements PDU.
func (c *CancelSm) Status() data.CommandStatus { return data.StatusOK }

func (c *CancelSm) marshalBody(b *ByteBuffer) error {
	if err := b.WriteCString(c.ServiceType, serviceTypeLen); err != nil {
		return err
	}
	if err := b.WriteCString(c.MessageID, messageIDLen); err != nil {
		return err
	}
	if err := c.Source.marshal(b); err != nil {
		return err
	}
	return c.Dest.marshal(b)
}

func decodeCancelSmBody(h Header, b *ByteBuffer) (PDU, error) {
	c := &CancelSm{SequenceNumber: h.SequenceNumber}
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
	if c.Dest, err = decodeAddress(b); err != nil {
		return nil, err
	}
	return c, nil
}

// CancelSmResp carries no body of its own.
type CancelSmResp struct {
	SequenceNumber uint32
	CommandStatus  data.CommandStatus
}

// CommandID implements PDU.
func (c *CancelSmResp) CommandID() data.CommandID { return data.CancelSmRespID }

// SeqNum implements PDU.
func (c *CancelSmResp) SeqNum() uint32 { return c.SequenceNumber }

// Status implements PDU.
func (c *CancelSmResp) Status() data.CommandStatus { return c.CommandStatus }

func (c *CancelSmResp) marshalBody(b *ByteBuffer) error { return nil }

func decodeCancelSmRespBody(h Header, b *ByteBuffer) (PDU, error) {
	return &CancelSmResp{SequenceNumber: h.SequenceNumber, CommandStatus: h.CommandStatus}, nil
}

func init() {
	register(data.CancelSmID, decodeCancelSmBody)
	register(data.CancelSmRespID, decodeCancelSmRespBody)
}
