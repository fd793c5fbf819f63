package pdu

import (
	"github.com/relaysmpp/smppcodec/data"
)

const (
	systemIDLen     = 16
	passwordLen     = 9
	systemTypeLen   = 13
	addressRangeLen = 41
)

// BindRequest is the common schema for bind_receiver, bind_transmitter and
// bind_transceiver; Mode selects which command_id it encodes as.
type BindRequest struct {
	SequenceNumber   uint32
	Mode             data.BindMode
	SystemID         string
	Password         string
	SystemType       string
	InterfaceVersion byte
	AddrTon          data.Ton
	AddrNpi          data.Npi
	AddressRange     string
}

// CommandID implements PDU.
func (b *BindRequest) CommandID() data.CommandID {
	switch b.Mode {
	case data.BindTransmitter:
		return data.BindTransmitterID
	case data.BindTransceiver:
		return data.BindTransceiverID
	default:
		return data.BindReceiverID
	}
}

// SeqNum implements PDU.
func (b *BindRequest) SeqNum() uint32 { return b.SequenceNumber }

// Status implements PDU; bind requests always carry status 0.
func (b *BindRequest) Status() data.CommandStatus { return data.StatusOK }

func (b *BindRequest) marshalBody(buf *ByteBuffer) error {
	if err := buf.WriteCString(b.SystemID, systemIDLen); err != nil {
		return err
	}
	if err := buf.WriteCString(b.Password, passwordLen); err != nil {
		return err
	}
	if err := buf.WriteCString(b.SystemType, systemTypeLen); err != nil {
		return err
	}
	_ = buf.WriteByte(b.InterfaceVersion)
	_ = buf.WriteByte(byte(b.AddrTon))
	_ = buf.WriteByte(byte(b.AddrNpi))
	return buf.WriteCString(b.AddressRange, addressRangeLen)
}

func decodeBindRequestBody(mode data.BindMode) decodeFunc {
	return func(h Header, buf *ByteBuffer) (PDU, error) {
		b := &BindRequest{SequenceNumber: h.SequenceNumber, Mode: mode}
		var err error
		if b.SystemID, err = buf.ReadCString(systemIDLen); err != nil {
			return nil, err
		}
		if b.Password, err = buf.ReadCString(passwordLen); err != nil {
			return nil, err
		}
		if b.SystemType, err = buf.ReadCString(systemTypeLen); err != nil {
			return nil, err
		}
		if b.InterfaceVersion, err = buf.ReadByte(); err != nil {
			return nil, err
		}
		ton, err := buf.ReadByte()
		if err != nil {
			return nil, err
		}
		b.AddrTon = data.Ton(ton)
		npi, err := buf.ReadByte()
		if err != nil {
			return nil, err
		}
		b.AddrNpi = data.Npi(npi)
		if b.AddressRange, err = buf.ReadCString(addressRangeLen); err != nil {
			return nil, err
		}
		return b, nil
	}
}

// BindResponse answers a BindRequest: system_id followed by the optional
// SC_INTERFACE_VERSION TLV.
type BindResponse struct {
	SequenceNumber    uint32
	Mode              data.BindMode
	CommandStatus     data.CommandStatus
	SystemID          string
	ScInterfaceVersion *byte
}

// CommandID implements PDU.
func (b *BindResponse) CommandID() data.CommandID {
	switch b.Mode {
	case data.BindTransmitter:
		return data.BindTransmitterRespID
	case data.BindTransceiver:
		return data.BindTransceiverRespID
	default:
		return data.BindReceiverRespID
	}
}

// SeqNum implements PDU.
func (b *BindResponse) SeqNum() uint32 { return b.SequenceNumber }

// Status implements PDU.
func (b *BindResponse) Status() data.CommandStatus { return b.CommandStatus }

func (b *BindResponse) marshalBody(buf *ByteBuffer) error {
	if err := buf.WriteCString(b.SystemID, systemIDLen); err != nil {
		return err
	}
	if b.ScInterfaceVersion != nil {
		NewTLVUint8(data.TagScInterfaceVersion, *b.ScInterfaceVersion).marshal(buf)
	}
	return nil
}

func decodeBindResponseBody(mode data.BindMode) decodeFunc {
	return func(h Header, buf *ByteBuffer) (PDU, error) {
		b := &BindResponse{SequenceNumber: h.SequenceNumber, Mode: mode, CommandStatus: h.CommandStatus}
		var err error
		if b.SystemID, err = buf.ReadCString(systemIDLen); err != nil {
			return nil, err
		}
		tlvs, err := decodeTLVs(buf)
		if err != nil {
			return nil, err
		}
		if t, ok := findTLV(tlvs, data.TagScInterfaceVersion); ok {
			v := t.Uint8()
			b.ScInterfaceVersion = &v
		}
		return b, nil
	}
}

func init() {
	register(data.BindReceiverID, decodeBindRequestBody(data.BindReceiver))
	register(data.BindTransmitterID, decodeBindRequestBody(data.BindTransmitter))
	register(data.BindTransceiverID, decodeBindRequestBody(data.BindTransceiver))

	register(data.BindReceiverRespID, decodeBindResponseBody(data.BindReceiver))
	register(data.BindTransmitterRespID, decodeBindResponseBody(data.BindTransmitter))
	register(data.BindTransceiverRespID, decodeBindResponseBody(data.BindTransceiver))
}
