package pdu

import (
	"github.com/relaysmpp/smppcodec/data"
)

const finalDateLen = 17

// QuerySm asks the SMSC for the current state of a previously submitted
// short message.
type QuerySm struct {
	SequenceNumber uint32
	MessageID      string
	Source         Address
}

// CommandID implements PDU.
func (q *QuerySm) CommandID() data.CommandID { return data.QuerySmID }

// SeqNum implements PDU.
func (q *QuerySm) SeqNum() uint32 { return q.SequenceNumber }

// Status implements PDU.
func (q *QuerySm) Status() data.CommandStatus { return data.StatusOK }

func (q *QuerySm) marshalBody(b *ByteBuffer) error {
	if err := b.WriteCString(q.MessageID, messageIDLen); err != nil {
		return err
	}
	return q.Source.marshal(b)
}

func decodeQuerySmBody(h Header, b *ByteBuffer) (PDU, error) {
	q := &QuerySm{SequenceNumber: h.SequenceNumber}
	var err error
	if q.MessageID, err = b.ReadCString(messageIDLen); err != nil {
		return nil, err
	}
	if q.Source, err = decodeAddress(b); err != nil {
		return nil, err
	}
	return q, nil
}

// QuerySmResp reports a submitted short message's final disposition.
type QuerySmResp struct {
	SequenceNumber uint32
	CommandStatus  data.CommandStatus
	MessageID      string
	FinalDate      string
	MessageState   byte
	ErrorCode      byte
}

// CommandID implements PDU.
func (q *QuerySmResp) CommandID() data.CommandID { return data.QuerySmRespID }

// SeqNum implements PDU.
func (q *QuerySmResp) SeqNum() uint32 { return q.SequenceNumber }

// Status implements PDU.
func (q *QuerySmResp) Status() data.CommandStatus { return q.CommandStatus }

func (q *QuerySmResp) marshalBody(b *ByteBuffer) error {
	if err := b.WriteCString(q.MessageID, messageIDLen); err != nil {
		return err
	}
	if err := b.WriteCString(q.FinalDate, finalDateLen); err != nil {
		return err
	}
	_ = b.WriteByte(q.MessageState)
	_ = b.WriteByte(q.ErrorCode)
	return nil
}

func decodeQuerySmRespBody(h Header, b *ByteBuffer) (PDU, error) {
	q := &QuerySmResp{SequenceNumber: h.SequenceNumber, CommandStatus: h.CommandStatus}
	var err error
	if q.MessageID, err = b.ReadCString(messageIDLen); err != nil {
		return nil, err
	}
	if q.FinalDate, err = b.ReadCString(finalDateLen); err != nil {
		return nil, err
	}
	if q.MessageState, err = b.ReadByte(); err != nil {
		return nil, err
	}
	if q.ErrorCode, err = b.ReadByte(); err != nil {
		return nil, err
	}
	return q, nil
}

func init() {
	register(data.QuerySmID, decodeQuerySmBody)
	register(data.QuerySmRespID, decodeQuerySmRespBody)
}
