package pdu

import (
	"github.com/relaysmpp/smppcodec/data"
	smpperrors "github.com/relaysmpp/smppcodec/errors"
)

const (
	distListNameLen = 21
	destFlagSmeAddr = 1
	destFlagDistList = 2
)

// Destination is one entry of a SubmitMulti destination list: either an SME
// address or a pre-defined distribution list name, distinguished on the wire
// by a leading dest_flag byte.
type Destination struct {
	IsDistList bool
	SmeAddress Address
	DistList   string
}

func (d Destination) marshal(b *ByteBuffer) error {
	if d.IsDistList {
		_ = b.WriteByte(destFlagDistList)
		return b.WriteCString(d.DistList, distListNameLen)
	}
	_ = b.WriteByte(destFlagSmeAddr)
	return d.SmeAddress.marshal(b)
}

func decodeDestination(b *ByteBuffer) (Destination, error) {
	var d Destination
	flag, err := b.ReadByte()
	if err != nil {
		return d, err
	}
	switch flag {
	case destFlagDistList:
		d.IsDistList = true
		if d.DistList, err = b.ReadCString(distListNameLen); err != nil {
			return d, err
		}
	case destFlagSmeAddr:
		if d.SmeAddress, err = decodeAddress(b); err != nil {
			return d, err
		}
	default:
		return d, smpperrors.NewDecodeError(smpperrors.ErrMalformedTLV, "dest_flag", -1)
	}
	return d, nil
}

// SubmitMulti submits a short message for delivery to multiple destinations
// in a single request.
type SubmitMulti struct {
	SequenceNumber       uint32
	ServiceType          string
	Source               Address
	Destinations         []Destination
	EsmClass             byte
	ProtocolID           byte
	PriorityFlag         byte
	ScheduleDeliveryTime string
	ValidityPeriod       string
	RegisteredDelivery   byte
	ReplaceIfPresentFlag byte
	DataCoding           byte
	SmDefaultMsgID       byte
	ShortMessage         []byte
	OptionalParams       []TLV
}

// CommandID implements PDU.
func (s *SubmitMulti) CommandID() data.CommandID { return data.SubmitMultiID }

// SeqNum implements PDU.
func (s *SubmitMulti) SeqNum() uint32 { return s.SequenceNumber }

// Status implements PDU.
func (s *SubmitMulti) Status() data.CommandStatus { return data.StatusOK }

func (s *SubmitMulti) marshalBody(b *ByteBuffer) error {
	if err := b.WriteCString(s.ServiceType, serviceTypeLen); err != nil {
		return err
	}
	if err := s.Source.marshal(b); err != nil {
		return err
	}
	_ = b.WriteByte(byte(len(s.Destinations)))
	for _, d := range s.Destinations {
		if err := d.marshal(b); err != nil {
			return err
		}
	}
	_ = b.WriteByte(s.EsmClass)
	_ = b.WriteByte(s.ProtocolID)
	_ = b.WriteByte(s.PriorityFlag)
	if err := b.WriteCString(s.ScheduleDeliveryTime, scheduleTimeLen); err != nil {
		return err
	}
	if err := b.WriteCString(s.ValidityPeriod, scheduleTimeLen); err != nil {
		return err
	}
	_ = b.WriteByte(s.RegisteredDelivery)
	_ = b.WriteByte(s.ReplaceIfPresentFlag)
	_ = b.WriteByte(s.DataCoding)
	_ = b.WriteByte(s.SmDefaultMsgID)
	if len(s.ShortMessage) > maxShortMessage {
		return smpperrors.ErrShortMessageTooLong
	}
	_ = b.WriteByte(byte(len(s.ShortMessage)))
	_, _ = b.Write(s.ShortMessage)
	marshalTLVs(b, s.OptionalParams)
	return nil
}

func decodeSubmitMultiBody(h Header, b *ByteBuffer) (PDU, error) {
	s := &SubmitMulti{SequenceNumber: h.SequenceNumber}
	var err error
	if s.ServiceType, err = b.ReadCString(serviceTypeLen); err != nil {
		return nil, err
	}
	if s.Source, err = decodeAddress(b); err != nil {
		return nil, err
	}
	count, err := b.ReadByte()
	if err != nil {
		return nil, err
	}
	s.Destinations = make([]Destination, 0, count)
	for i := 0; i < int(count); i++ {
		d, err := decodeDestination(b)
		if err != nil {
			return nil, err
		}
		s.Destinations = append(s.Destinations, d)
	}
	if s.EsmClass, err = b.ReadByte(); err != nil {
		return nil, err
	}
	if s.ProtocolID, err = b.ReadByte(); err != nil {
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
	if s.RegisteredDelivery, err = b.ReadByte(); err != nil {
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
	smLen, err := b.ReadByte()
	if err != nil {
		return nil, err
	}
	if s.ShortMessage, err = b.ReadN(int(smLen)); err != nil {
		return nil, smpperrors.NewDecodeError(smpperrors.ErrLengthMismatch, "short_message", -1)
	}
	s.ShortMessage = append([]byte(nil), s.ShortMessage...)
	if s.OptionalParams, err = decodeTLVs(b); err != nil {
		return nil, err
	}
	return s, nil
}

// UnsuccessSme reports one destination SubmitMulti failed to queue.
type UnsuccessSme struct {
	Address      Address
	ErrorStatus  data.CommandStatus
}

// SubmitMultiResp answers a SubmitMulti with the SMSC message_id and the list
// of destinations that could not be queued.
type SubmitMultiResp struct {
	SequenceNumber uint32
	CommandStatus  data.CommandStatus
	MessageID      string
	Unsuccess      []UnsuccessSme
	OptionalParams []TLV
}

// CommandID implements PDU.
func (s *SubmitMultiResp) CommandID() data.CommandID { return data.SubmitMultiRespID }

// SeqNum implements PDU.
func (s *SubmitMultiResp) SeqNum() uint32 { return s.SequenceNumber }

// Status implements PDU.
func (s *SubmitMultiResp) Status() data.CommandStatus { return s.CommandStatus }

func (s *SubmitMultiResp) marshalBody(b *ByteBuffer) error {
	if err := b.WriteCString(s.MessageID, messageIDLen); err != nil {
		return err
	}
	_ = b.WriteByte(byte(len(s.Unsuccess)))
	for _, u := range s.Unsuccess {
		if err := u.Address.marshal(b); err != nil {
			return err
		}
		b.WriteUint32(uint32(u.ErrorStatus))
	}
	marshalTLVs(b, s.OptionalParams)
	return nil
}

func decodeSubmitMultiRespBody(h Header, b *ByteBuffer) (PDU, error) {
	s := &SubmitMultiResp{SequenceNumber: h.SequenceNumber, CommandStatus: h.CommandStatus}
	var err error
	if s.MessageID, err = b.ReadCString(messageIDLen); err != nil {
		return nil, err
	}
	count, err := b.ReadByte()
	if err != nil {
		return nil, err
	}
	s.Unsuccess = make([]UnsuccessSme, 0, count)
	for i := 0; i < int(count); i++ {
		addr, err := decodeAddress(b)
		if err != nil {
			return nil, err
		}
		status, err := b.ReadUint32()
		if err != nil {
			return nil, err
		}
		s.Unsuccess = append(s.Unsuccess, UnsuccessSme{Address: addr, ErrorStatus: data.CommandStatus(status)})
	}
	if s.OptionalParams, err = decodeTLVs(b); err != nil {
		return nil, err
	}
	return s, nil
}

func init() {
	register(data.SubmitMultiID, decodeSubmitMultiBody)
	register(data.SubmitMultiRespID, decodeSubmitMultiRespBody)
}
