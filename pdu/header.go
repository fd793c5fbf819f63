package pdu

import (
	"github.com/relaysmpp/smppcodec/data"
	smpperrors "github.com/relaysmpp/smppcodec/errors"
)

// HeaderLen is the fixed size, in bytes, of every PDU header.
const HeaderLen = 16

// Header is the fixed 16-byte frame every PDU carries: command_length,
// command_id, command_status, sequence_number, all network byte order.
type Header struct {
	CommandLength   uint32
	CommandID       data.CommandID
	CommandStatus   data.CommandStatus
	SequenceNumber  uint32
}

// marshal writes the four header fields to b as they are set on h; frame
// fills in CommandLength from the body length before calling it.
func (h Header) marshal(b *ByteBuffer) {
	b.WriteUint32(h.CommandLength)
	b.WriteUint32(uint32(h.CommandID))
	b.WriteUint32(uint32(h.CommandStatus))
	b.WriteUint32(h.SequenceNumber)
}

// decodeHeader reads the fixed 16-byte header from b.
func decodeHeader(b *ByteBuffer) (Header, error) {
	var h Header
	length, err := b.ReadUint32()
	if err != nil {
		return h, smpperrors.NewDecodeError(smpperrors.ErrUnexpectedEOF, "command_length", 0)
	}
	if length < HeaderLen {
		return h, smpperrors.NewDecodeError(smpperrors.ErrInvalidHeader, "command_length", 0)
	}
	h.CommandLength = length

	id, err := b.ReadUint32()
	if err != nil {
		return h, smpperrors.NewDecodeError(smpperrors.ErrUnexpectedEOF, "command_id", 4)
	}
	h.CommandID = data.CommandID(id)

	status, err := b.ReadUint32()
	if err != nil {
		return h, smpperrors.NewDecodeError(smpperrors.ErrUnexpectedEOF, "command_status", 8)
	}
	h.CommandStatus = data.CommandStatus(status)

	seq, err := b.ReadUint32()
	if err != nil {
		return h, smpperrors.NewDecodeError(smpperrors.ErrUnexpectedEOF, "sequence_number", 12)
	}
	h.SequenceNumber = seq

	return h, nil
}

// frame prepends the 16-byte header computed from body's length to body
// itself, returning the complete encoded PDU.
func frame(h Header, body []byte) []byte {
	h.CommandLength = uint32(HeaderLen + len(body))
	out := make([]byte, 0, h.CommandLength)
	hb := &ByteBuffer{}
	hb.Grow(HeaderLen)
	h.marshal(hb)
	out = append(out, hb.Bytes()...)
	out = append(out, body...)
	return out
}
