package pdu

import (
	"github.com/relaysmpp/smppcodec/data"
	smpperrors "github.com/relaysmpp/smppcodec/errors"
)

const (
	serviceTypeLen  = 6  // service_type, C-Octet field max 6 octets including terminator
	scheduleTimeLen = 17 // schedule_delivery_time / validity_period, empty-or-16 chars + terminator
	maxShortMessage = 254
	messageIDLen    = 65 // message_id, C-Octet <= 64 chars + terminator
)

// smFields is the schema shared, field-for-field, by SubmitSm and DeliverSm
// (spec §4.4: "identical schema, different command_id").
type smFields struct {
	ServiceType           string
	Source                Address
	Dest                  Address
	EsmClass              byte
	ProtocolID            byte
	PriorityFlag          byte
	ScheduleDeliveryTime  string
	ValidityPeriod        string
	RegisteredDelivery    byte
	ReplaceIfPresentFlag  byte
	DataCoding            byte
	SmDefaultMsgID        byte
	ShortMessage          []byte
	OptionalParams        []TLV
}

func (f smFields) marshal(b *ByteBuffer) error {
	if err := b.WriteCString(f.ServiceType, serviceTypeLen); err != nil {
		return err
	}
	if err := f.Source.marshal(b); err != nil {
		return err
	}
	if err := f.Dest.marshal(b); err != nil {
		return err
	}
	_ = b.WriteByte(f.EsmClass)
	_ = b.WriteByte(f.ProtocolID)
	_ = b.WriteByte(f.PriorityFlag)
	if err := b.WriteCString(f.ScheduleDeliveryTime, scheduleTimeLen); err != nil {
		return err
	}
	if err := b.WriteCString(f.ValidityPeriod, scheduleTimeLen); err != nil {
		return err
	}
	_ = b.WriteByte(f.RegisteredDelivery)
	_ = b.WriteByte(f.ReplaceIfPresentFlag)
	_ = b.WriteByte(f.DataCoding)
	_ = b.WriteByte(f.SmDefaultMsgID)

	if len(f.ShortMessage) > maxShortMessage {
		return smpperrors.ErrShortMessageTooLong
	}
	_ = b.WriteByte(byte(len(f.ShortMessage)))
	_, _ = b.Write(f.ShortMessage)

	marshalTLVs(b, f.OptionalParams)
	return nil
}

func decodeSmFields(b *ByteBuffer) (smFields, error) {
	var f smFields
	var err error

	if f.ServiceType, err = b.ReadCString(serviceTypeLen); err != nil {
		return f, err
	}
	if f.Source, err = decodeAddress(b); err != nil {
		return f, err
	}
	if f.Dest, err = decodeAddress(b); err != nil {
		return f, err
	}
	if f.EsmClass, err = b.ReadByte(); err != nil {
		return f, err
	}
	if f.ProtocolID, err = b.ReadByte(); err != nil {
		return f, err
	}
	if f.PriorityFlag, err = b.ReadByte(); err != nil {
		return f, err
	}
	if f.ScheduleDeliveryTime, err = b.ReadCString(scheduleTimeLen); err != nil {
		return f, err
	}
	if f.ValidityPeriod, err = b.ReadCString(scheduleTimeLen); err != nil {
		return f, err
	}
	if f.RegisteredDelivery, err = b.ReadByte(); err != nil {
		return f, err
	}
	if f.ReplaceIfPresentFlag, err = b.ReadByte(); err != nil {
		return f, err
	}
	if f.DataCoding, err = b.ReadByte(); err != nil {
		return f, err
	}
	if f.SmDefaultMsgID, err = b.ReadByte(); err != nil {
		return f, err
	}

	smLen, err := b.ReadByte()
	if err != nil {
		return f, err
	}
	if f.ShortMessage, err = b.ReadN(int(smLen)); err != nil {
		return f, smpperrors.NewDecodeError(smpperrors.ErrLengthMismatch, "short_message", -1)
	}
	f.ShortMessage = append([]byte(nil), f.ShortMessage...)

	if f.OptionalParams, err = decodeTLVs(b); err != nil {
		return f, err
	}
	return f, nil
}

// SubmitSm is a request to submit a short message for delivery to one
// destination.
type SubmitSm struct {
	SequenceNumber uint32
	smFields
}

// CommandID implements PDU.
func (s *SubmitSm) CommandID() data.CommandID { return data.SubmitSmID }

// SeqNum implements PDU.
func (s *SubmitSm) SeqNum() uint32 { return s.SequenceNumber }

// Status implements PDU.
func (s *SubmitSm) Status() data.CommandStatus { return data.StatusOK }

func (s *SubmitSm) marshalBody(b *ByteBuffer) error { return s.smFields.marshal(b) }

func decodeSubmitSmBody(h Header, b *ByteBuffer) (PDU, error) {
	f, err := decodeSmFields(b)
	if err != nil {
		return nil, err
	}
	return &SubmitSm{SequenceNumber: h.SequenceNumber, smFields: f}, nil
}

// SubmitSmResp answers a SubmitSm with the SMSC-assigned message_id.
type SubmitSmResp struct {
	SequenceNumber uint32
	CommandStatus  data.CommandStatus
	MessageID      string
	OptionalParams []TLV
}

// CommandID implements PDU.
func (s *SubmitSmResp) CommandID() data.CommandID { return data.SubmitSmRespID }

// SeqNum implements PDU.
func (s *SubmitSmResp) SeqNum() uint32 { return s.SequenceNumber }

// Status implements PDU.
func (s *SubmitSmResp) Status() data.CommandStatus { return s.CommandStatus }

func (s *SubmitSmResp) marshalBody(b *ByteBuffer) error {
	if err := b.WriteCString(s.MessageID, messageIDLen); err != nil {
		return err
	}
	marshalTLVs(b, s.OptionalParams)
	return nil
}

func decodeSubmitSmRespBody(h Header, b *ByteBuffer) (PDU, error) {
	msgID, err := b.ReadCString(messageIDLen)
	if err != nil {
		return nil, err
	}
	tlvs, err := decodeTLVs(b)
	if err != nil {
		return nil, err
	}
	return &SubmitSmResp{SequenceNumber: h.SequenceNumber, CommandStatus: h.CommandStatus, MessageID: msgID, OptionalParams: tlvs}, nil
}

// DeliverSm is a notification of a mobile-originated message, or a delivery
// receipt, pushed from the SMSC to the ESME. Identical schema to SubmitSm.
type DeliverSm struct {
	SequenceNumber uint32
	smFields
}

// CommandID implements PDU.
func (s *DeliverSm) CommandID() data.CommandID { return data.DeliverSmID }

// SeqNum implements PDU.
func (s *DeliverSm) SeqNum() uint32 { return s.SequenceNumber }

// Status implements PDU.
func (s *DeliverSm) Status() data.CommandStatus { return data.StatusOK }

func (s *DeliverSm) marshalBody(b *ByteBuffer) error { return s.smFields.marshal(b) }

func decodeDeliverSmBody(h Header, b *ByteBuffer) (PDU, error) {
	f, err := decodeSmFields(b)
	if err != nil {
		return nil, err
	}
	return &DeliverSm{SequenceNumber: h.SequenceNumber, smFields: f}, nil
}

// DeliverSmResp answers a DeliverSm; message_id is conventionally empty.
type DeliverSmResp struct {
	SequenceNumber uint32
	CommandStatus  data.CommandStatus
	MessageID      string
	OptionalParams []TLV
}

// CommandID implements PDU.
func (s *DeliverSmResp) CommandID() data.CommandID { return data.DeliverSmRespID }

// SeqNum implements PDU.
func (s *DeliverSmResp) SeqNum() uint32 { return s.SequenceNumber }

// Status implements PDU.
func (s *DeliverSmResp) Status() data.CommandStatus { return s.CommandStatus }

func (s *DeliverSmResp) marshalBody(b *ByteBuffer) error {
	if err := b.WriteCString(s.MessageID, messageIDLen); err != nil {
		return err
	}
	marshalTLVs(b, s.OptionalParams)
	return nil
}

func decodeDeliverSmRespBody(h Header, b *ByteBuffer) (PDU, error) {
	msgID, err := b.ReadCString(messageIDLen)
	if err != nil {
		return nil, err
	}
	tlvs, err := decodeTLVs(b)
	if err != nil {
		return nil, err
	}
	return &DeliverSmResp{SequenceNumber: h.SequenceNumber, CommandStatus: h.CommandStatus, MessageID: msgID, OptionalParams: tlvs}, nil
}

func init() {
	register(data.SubmitSmID, decodeSubmitSmBody)
	register(data.SubmitSmRespID, decodeSubmitSmRespBody)
	register(data.DeliverSmID, decodeDeliverSmBody)
	register(data.DeliverSmRespID, decodeDeliverSmRespBody)
}
