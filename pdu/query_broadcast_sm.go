package pdu

import (
	"github.com/relaysmpp/smppcodec/data"
)

// QueryBroadcastSm asks the SMSC for the current state of a previously
// submitted broadcast message.
type QueryBroadcastSm struct {
	SequenceNumber uint32
	MessageID      string
	Source         Address
}

// CommandID implements PDU.
func (q *QueryBroadcastSm) CommandID() data.CommandID { return data.QueryBroadcastSmID }

// SeqNum implements PDU.
func (q *QueryBroadcastSm) SeqNum() uint32 { return q.SequenceNumber }

// Status implements PDU.
func (q *QueryBroadcastSm) Status() data.CommandStatus { return data.StatusOK }

func (q *QueryBroadcastSm) marshalBody(b *ByteBuffer) error {
	if err := b.WriteCString(q.MessageID, messageIDLen); err != nil {
		return err
	}
	return q.Source.marshal(b)
}

func decodeQueryBroadcastSmBody(h Header, b *ByteBuffer) (PDU, error) {
	q := &QueryBroadcastSm{SequenceNumber: h.SequenceNumber}
	var err error
	if q.MessageID, err = b.ReadCString(messageIDLen); err != nil {
		return nil, err
	}
	if q.Source, err = decodeAddress(b); err != nil {
		return nil, err
	}
	return q, nil
}

// QueryBroadcastSmResp reports a broadcast message's state and, per area, its
// delivery outcome.
type QueryBroadcastSmResp struct {
	SequenceNumber           uint32
	CommandStatus            data.CommandStatus
	MessageID                string
	MessageState             byte
	BroadcastAreaIdentifiers [][]byte
	BroadcastAreaSuccess     []byte
	OptionalParams           []TLV
}

// CommandID implements PDU.
func (q *QueryBroadcastSmResp) CommandID() data.CommandID { return data.QueryBroadcastSmRespID }

// SeqNum implements PDU.
func (q *QueryBroadcastSmResp) SeqNum() uint32 { return q.SequenceNumber }

// Status implements PDU.
func (q *QueryBroadcastSmResp) Status() data.CommandStatus { return q.CommandStatus }

func (q *QueryBroadcastSmResp) marshalBody(b *ByteBuffer) error {
	if err := b.WriteCString(q.MessageID, messageIDLen); err != nil {
		return err
	}
	NewTLVUint8(data.TagMessageStateOption, q.MessageState).marshal(b)
	for _, area := range q.BroadcastAreaIdentifiers {
		NewTLV(data.TagBroadcastAreaIdentifier, area).marshal(b)
	}
	if q.BroadcastAreaSuccess != nil {
		NewTLV(data.TagBroadcastAreaSuccess, q.BroadcastAreaSuccess).marshal(b)
	}
	marshalTLVs(b, q.OptionalParams)
	return nil
}

func decodeQueryBroadcastSmRespBody(h Header, b *ByteBuffer) (PDU, error) {
	q := &QueryBroadcastSmResp{SequenceNumber: h.SequenceNumber, CommandStatus: h.CommandStatus}
	var err error
	if q.MessageID, err = b.ReadCString(messageIDLen); err != nil {
		return nil, err
	}
	tlvs, err := decodeTLVs(b)
	if err != nil {
		return nil, err
	}
	var rest []TLV
	for _, t := range tlvs {
		switch t.Tag {
		case data.TagMessageStateOption:
			q.MessageState = t.Uint8()
		case data.TagBroadcastAreaIdentifier:
			q.BroadcastAreaIdentifiers = append(q.BroadcastAreaIdentifiers, t.Value)
		case data.TagBroadcastAreaSuccess:
			q.BroadcastAreaSuccess = t.Value
		default:
			rest = append(rest, t)
		}
	}
	q.OptionalParams = rest
	return q, nil
}

func init() {
	register(data.QueryBroadcastSmID, decodeQueryBroadcastSmBody)
	register(data.QueryBroadcastSmRespID, decodeQueryBroadcastSmRespBody)
}
