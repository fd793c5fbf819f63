package pdu

import (
	"github.com/relaysmpp/smppcodec/data"
)

// Unbind requests an orderly close of a bound session.
type Unbind struct {
	SequenceNumber uint32
}

// CommandID implements PDU.
func (u *Unbind) CommandID() data.CommandID { return data.UnbindID }

// SeqNum implements PDU.
func (u *Unbind) SeqNum() uint32 { return u.SequenceNumber }

// Status implements PDU.
func (u *Unbind) Status() data.CommandStatus { return data.StatusOK }

func (u *Unbind) marshalBody(b *ByteBuffer) error { return nil }

func decodeUnbindBody(h Header, b *ByteBuffer) (PDU, error) {
	return &Unbind{SequenceNumber: h.SequenceNumber}, nil
}

// UnbindResp acknowledges an Unbind.
type UnbindResp struct {
	SequenceNumber uint32
	CommandStatus  data.CommandStatus
}

// CommandID implements PDU.
func (u *UnbindResp) CommandID() data.CommandID { return data.UnbindRespID }

// SeqNum implements PDU.
func (u *UnbindResp) SeqNum() uint32 { return u.SequenceNumber }

// Status implements PDU.
func (u *UnbindResp) Status() data.CommandStatus { return u.CommandStatus }

func (u *UnbindResp) marshalBody(b *ByteBuffer) error { return nil }

func decodeUnbindRespBody(h Header, b *ByteBuffer) (PDU, error) {
	return &UnbindResp{SequenceNumber: h.SequenceNumber, CommandStatus: h.CommandStatus}, nil
}

// EnquireLink is a session-liveness probe; either side may send one at any
// time once bound.
type EnquireLink struct {
	SequenceNumber uint32
}

// CommandID implements PDU.
func (e *EnquireLink) CommandID() data.CommandID { return data.EnquireLinkID }

// SeqNum implements PDU.
func (e *EnquireLink) SeqNum() uint32 { return e.SequenceNumber }

// Status implements PDU.
func (e *EnquireLink) Status() data.CommandStatus { return data.StatusOK }

func (e *EnquireLink) marshalBody(b *ByteBuffer) error { return nil }

func decodeEnquireLinkBody(h Header, b *ByteBuffer) (PDU, error) {
	return &EnquireLink{SequenceNumber: h.SequenceNumber}, nil
}

// EnquireLinkResp acknowledges an EnquireLink.
type EnquireLinkResp struct {
	SequenceNumber uint32
	CommandStatus  data.CommandStatus
}

// CommandID implements PDU.
func (e *EnquireLinkResp) CommandID() data.CommandID { return data.EnquireLinkRespID }

// SeqNum implements PDU.
func (e *EnquireLinkResp) SeqNum() uint32 { return e.SequenceNumber }

// Status implements PDU.
func (e *EnquireLinkResp) Status() data.CommandStatus { return e.CommandStatus }

func (e *EnquireLinkResp) marshalBody(b *ByteBuffer) error { return nil }

func decodeEnquireLinkRespBody(h Header, b *ByteBuffer) (PDU, error) {
	return &EnquireLinkResp{SequenceNumber: h.SequenceNumber, CommandStatus: h.CommandStatus}, nil
}

// GenericNack signals that a PDU could not be decoded or otherwise rejected
// before its specific command_id could be established.
type GenericNack struct {
	SequenceNumber uint32
	CommandStatus  data.CommandStatus
}

// CommandID implements PDU.
func (g *GenericNack) CommandID() data.CommandID { return data.GenericNackID }

// SeqNum implements PDU.
func (g *GenericNack) SeqNum() uint32 { return g.SequenceNumber }

// Status implements PDU.
func (g *GenericNack) Status() data.CommandStatus { return g.CommandStatus }

func (g *GenericNack) marshalBody(b *ByteBuffer) error { return nil }

func decodeGenericNackBody(h Header, b *ByteBuffer) (PDU, error) {
	return &GenericNack{SequenceNumber: h.SequenceNumber, CommandStatus: h.CommandStatus}, nil
}

func init() {
	register(data.UnbindID, decodeUnbindBody)
	register(data.UnbindRespID, decodeUnbindRespBody)
	register(data.EnquireLinkID, decodeEnquireLinkBody)
	register(data.EnquireLinkRespID, decodeEnquireLinkRespBody)
	register(data.GenericNackID, decodeGenericNackBody)
}
