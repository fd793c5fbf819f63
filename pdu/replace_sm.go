package pdu

import (
	"github.com/relaysmpp/smppcodec/data"
	smpperrors "github.com/relaysmpp/smppcodec/errors"
)

// ReplaceSm replaces the content and delivery parameters of a previously
// submitted, not-yet-delivered short message.
type ReplaceSm struct {
	SequenceNumber       uint32
	MessageID            string
	Source               Address
	ScheduleDeliveryTime string
	ValidityPeriod       string
	RegisteredDelivery   byte
	SmDefaultMsgID       byte
	ShortMessage         []byte
}

// CommandID implements PDU.
func (r *ReplaceSm) CommandID() data.CommandID { return data.ReplaceSmID }

// SeqNum implements PDU.
func (r *ReplaceSm) SeqNum() uint32 { return r.SequenceNumber }

// Status implements PDU.
func (r *ReplaceSm) Status() data.CommandStatus { return data.StatusOK }

func (r *ReplaceSm) marshalBody(b *ByteBuffer) error {
	if err := b.WriteCString(r.MessageID, messageIDLen); err != nil {
		return err
	}
	if err := r.Source.marshal(b); err != nil {
		return err
	}
	if err := b.WriteCString(r.ScheduleDeliveryTime, scheduleTimeLen); err != nil {
		return err
	}
	if err := b.WriteCString(r.ValidityPeriod, scheduleTimeLen); err != nil {
		return err
	}
	_ = b.WriteByte(r.RegisteredDelivery)
	_ = b.WriteByte(r.SmDefaultMsgID)
	if len(r.ShortMessage) > maxShortMessage {
		return smpperrors.ErrShortMessageTooLong
	}
	_ = b.WriteByte(byte(len(r.ShortMessage)))
	_, _ = b.Write(r.ShortMessage)
	return nil
}

func decodeReplaceSmBody(h Header, b *ByteBuffer) (PDU, error) {
	r := &ReplaceSm{SequenceNumber: h.SequenceNumber}
	var err error
	if r.MessageID, err = b.ReadCString(messageIDLen); err != nil {
		return nil, err
	}
	if r.Source, err = decodeAddress(b); err != nil {
		return nil, err
	}
	if r.ScheduleDeliveryTime, err = b.ReadCString(scheduleTimeLen); err != nil {
		return nil, err
	}
	if r.ValidityPeriod, err = b.ReadCString(scheduleTimeLen); err != nil {
		return nil, err
	}
	if r.RegisteredDelivery, err = b.ReadByte(); err != nil {
		return nil, err
	}
	if r.SmDefaultMsgID, err = b.ReadByte(); err != nil {
		return nil, err
	}
	smLen, err := b.ReadByte()
	if err != nil {
		return nil, err
	}
	if r.ShortMessage, err = b.ReadN(int(smLen)); err != nil {
		return nil, smpperrors.NewDecodeError(smpperrors.ErrLengthMismatch, "short_message", -1)
	}
	r.ShortMessage = append([]byte(nil), r.ShortMessage...)
	return r, nil
}

// ReplaceSmResp carries no body of its own.
type ReplaceSmResp struct {
	SequenceNumber uint32
	CommandStatus  data.CommandStatus
}

// CommandID implements PDU.
func (r *ReplaceSmResp) CommandID() data.CommandID { return data.ReplaceSmRespID }

// SeqNum implements PDU.
func (r *ReplaceSmResp) SeqNum() uint32 { return r.SequenceNumber }

// Status implements PDU.
func (r *ReplaceSmResp) Status() data.CommandStatus { return r.CommandStatus }

func (r *ReplaceSmResp) marshalBody(b *ByteBuffer) error { return nil }

func decodeReplaceSmRespBody(h Header, b *ByteBuffer) (PDU, error) {
	return &ReplaceSmResp{SequenceNumber: h.SequenceNumber, CommandStatus: h.CommandStatus}, nil
}

func init() {
	register(data.ReplaceSmID, decodeReplaceSmBody)
	register(data.ReplaceSmRespID, decodeReplaceSmRespBody)
}
