package pdu

import (
	"github.com/relaysmpp/smppcodec/data"
)

// DataSm transfers data between an ESME and the SMSC without the
// scheduling/validity/replace fields carried by SubmitSm; message content, if
// any, travels in the message_payload optional parameter instead of an
// in-body short_message.
type DataSm struct {
	SequenceNumber     uint32
	ServiceType        string
	Source             Address
	Dest               Address
	EsmClass           byte
	RegisteredDelivery byte
	DataCoding         byte
	OptionalParams     []TLV
}

// CommandID implements PDU.
func (d *DataSm) CommandID() data.CommandID { return data.DataSmID }

// SeqNum implements PDU.
func (d *DataSm) SeqNum() uint32 { return d.SequenceNumber }

// Status implements PDU.
func (d *DataSm) Status() data.CommandStatus { return data.StatusOK }

func (d *DataSm) marshalBody(b *ByteBuffer) error {
	if err := b.WriteCString(d.ServiceType, serviceTypeLen); err != nil {
		return err
	}
	if err := d.Source.marshal(b); err != nil {
		return err
	}
	if err := d.Dest.marshal(b); err != nil {
		return err
	}
	_ = b.WriteByte(d.EsmClass)
	_ = b.WriteByte(d.RegisteredDelivery)
	_ = b.WriteByte(d.DataCoding)
	marshalTLVs(b, d.OptionalParams)
	return nil
}

func decodeDataSmBody(h Header, b *ByteBuffer) (PDU, error) {
	d := &DataSm{SequenceNumber: h.SequenceNumber}
	var err error
	if d.ServiceType, err = b.ReadCString(serviceTypeLen); err != nil {
		return nil, err
	}
	if d.Source, err = decodeAddress(b); err != nil {
		return nil, err
	}
	if d.Dest, err = decodeAddress(b); err != nil {
		return nil, err
	}
	if d.EsmClass, err = b.ReadByte(); err != nil {
		return nil, err
	}
	if d.RegisteredDelivery, err = b.ReadByte(); err != nil {
		return nil, err
	}
	if d.DataCoding, err = b.ReadByte(); err != nil {
		return nil, err
	}
	if d.OptionalParams, err = decodeTLVs(b); err != nil {
		return nil, err
	}
	return d, nil
}

// DataSmResp answers a DataSm with the SMSC-assigned message_id.
type DataSmResp struct {
	SequenceNumber uint32
	CommandStatus  data.CommandStatus
	MessageID      string
	OptionalParams []TLV
}

// CommandID implements PDU.
func (d *DataSmResp) CommandID() data.CommandID { return data.DataSmRespID }

// SeqNum implements PDU.
func (d *DataSmResp) SeqNum() uint32 { return d.SequenceNumber }

// Status implements PDU.
func (d *DataSmResp) Status() data.CommandStatus { return d.CommandStatus }

func (d *DataSmResp) marshalBody(b *ByteBuffer) error {
	if err := b.WriteCString(d.MessageID, messageIDLen); err != nil {
		return err
	}
	marshalTLVs(b, d.OptionalParams)
	return nil
}

func decodeDataSmRespBody(h Header, b *ByteBuffer) (PDU, error) {
	msgID, err := b.ReadCString(messageIDLen)
	if err != nil {
		return nil, err
	}
	tlvs, err := decodeTLVs(b)
	if err != nil {
		return nil, err
	}
	return &DataSmResp{SequenceNumber: h.SequenceNumber, CommandStatus: h.CommandStatus, MessageID: msgID, OptionalParams: tlvs}, nil
}

func init() {
	register(data.DataSmID, decodeDataSmBody)
	register(data.DataSmRespID, decodeDataSmRespBody)
}
