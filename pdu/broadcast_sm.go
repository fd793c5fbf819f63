package pdu

import (
	"github.com/relaysmpp/smppcodec/data"
)

// BroadcastSm submits a message for cell broadcast. Unlike SubmitSm, message
// content travels only as an optional message_payload TLV; the four
// broadcast_area_identifier/content_type/rep_num/frequency_interval
// parameters are mandatory even though they're carried as TLVs, and
// broadcast_area_identifier may repeat once per target area.
type BroadcastSm struct {
	SequenceNumber         uint32
	ServiceType            string
	Source                 Address
	MessageID              string
	PriorityFlag           byte
	ScheduleDeliveryTime   string
	ValidityPeriod         string
	ReplaceIfPresentFlag   byte
	DataCoding             byte
	SmDefaultMsgID         byte
	BroadcastAreaIdentifiers [][]byte
	BroadcastContentType   []byte
	BroadcastRepNum        uint16
	BroadcastFrequencyInterval []byte
	OptionalParams         []TLV
}

// CommandID implements PDU.
func (s *BroadcastSm) CommandID() data.CommandID { return data.BroadcastSmID }

// SeqNum implements PDU.
func (s *BroadcastSm) SeqNum() uint32 { return s.SequenceNumber }

// Status implements PDU.
func (s *BroadcastSm) Status() data.CommandStatus { return data.StatusOK }

func (s *BroadcastSm) marshalBody(b *ByteBuffer) error {
	if err := b.WriteCString(s.ServiceType, serviceTypeLen); err != nil {
		return err
	}
	if err := s.Source.marshal(b); err != nil {
		return err
	}
	if err := b.WriteCString(s.MessageID, messageIDLen); err != nil {
		return err
	}
	_ = b.WriteByte(s.PriorityFlag)
	if err := b.WriteCString(s.ScheduleDeliveryTime, scheduleTimeLen); err != nil {
		return err
	}
	if err := b.WriteCString(s.ValidityPeriod, scheduleTimeLen); err != nil {
		return err
	}
	_ = b.WriteByte(s.ReplaceIfPresentFlag)
	_ = b.WriteByte(s.DataCoding)
	_ = b.WriteByte(s.SmDefaultMsgID)

	for _, area := range s.BroadcastAreaIdentifiers {
		NewTLV(data.TagBroadcastAreaIdentifier, area).marshal(b)
	}
	NewTLV(data.TagBroadcastContentType, s.BroadcastContentType).marshal(b)
	NewTLVUint16(data.TagBroadcastRepNum, s.BroadcastRepNum).marshal(b)
	NewTLV(data.TagBroadcastFrequencyInterval, s.BroadcastFrequencyInterval).marshal(b)
	marshalTLVs(b, s.OptionalParams)
	return nil
}

func decodeBroadcastSmBody(h Header, b *ByteBuffer) (PDU, error) {
	s := &BroadcastSm{SequenceNumber: h.SequenceNumber}
	var err error
	if s.ServiceType, err = b.ReadCString(serviceTypeLen); err != nil {
		return nil, err
	}
	if s.Source, err = decodeAddress(b); err != nil {
		return nil, err
	}
	if s.MessageID, err = b.ReadCString(messageIDLen); err != nil {
		return nil, err
	}
	if s.PriorityFlag, err = b.ReadByte(); err != nil {
		return nil, err
	}
	if s.ScheduleDeliveryTime, err = b.ReadCString(scheduleTimeLen); err != nil {
		return nil, err
	}
	if s.ValidityPeriod, err = b.ReadCString(scheduleTimeLen); err != nil {
		return nil, err
	}
	if s.ReplaceIfPresentFlag, err = b.ReadByte(); err != nil {
		return nil, err
	}
	if s.DataCoding, err = b.ReadByte(); err != nil {
		return nil, err
	}
	if s.SmDefaultMsgID, err = b.ReadByte(); err != nil {
		return nil, err
	}

	tlvs, err := decodeTLVs(b)
	if err != nil {
		return nil, err
	}
	var rest []TLV
	for _, t := range tlvs {
		switch t.Tag {
		case data.TagBroadcastAreaIdentifier:
			s.BroadcastAreaIdentifiers = append(s.BroadcastAreaIdentifiers, t.Value)
		case data.TagBroadcastContentType:
			s.BroadcastContentType = t.Value
		case data.TagBroadcastRepNum:
			s.BroadcastRepNum = t.Uint16()
		case data.TagBroadcastFrequencyInterval:
			s.BroadcastFrequencyInterval = t.Value
		default:
			rest = append(rest, t)
		}
	}
	s.OptionalParams = rest
	return s, nil
}

// BroadcastSmResp answers a BroadcastSm with the SMSC-assigned message_id.
type BroadcastSmResp struct {
	SequenceNumber uint32
	CommandStatus  data.CommandStatus
	MessageID      string
	OptionalParams []TLV
}

// CommandID implements PDU.
func (s *BroadcastSmResp) CommandID() data.CommandID { return data.BroadcastSmRespID }

// SeqNum implements PDU.
func (s *BroadcastSmResp) SeqNum() uint32 { return s.SequenceNumber }

// Status implements PDU.
func (s *BroadcastSmResp) Status() data.CommandStatus { return s.CommandStatus }

func (s *BroadcastSmResp) marshalBody(b *ByteBuffer) error {
	if err := b.WriteCString(s.MessageID, messageIDLen); err != nil {
		return err
	}
	marshalTLVs(b, s.OptionalParams)
	return nil
}

func decodeBroadcastSmRespBody(h Header, b *ByteBuffer) (PDU, error) {
	msgID, err := b.ReadCString(messageIDLen)
	if err != nil {
		return nil, err
	}
	tlvs, err := decodeTLVs(b)
	if err != nil {
		return nil, err
	}
	return &BroadcastSmResp{SequenceNumber: h.SequenceNumber, CommandStatus: h.CommandStatus, MessageID: msgID, OptionalParams: tlvs}, nil
}

func init() {
	register(data.BroadcastSmID, decodeBroadcastSmBody)
	register(data.BroadcastSmRespID, decodeBroadcastSmRespBody)
}
