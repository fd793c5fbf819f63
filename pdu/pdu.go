// Package pdu implements the SMPP v3.4/v5.0 Protocol Data Unit codec: the
// 16-byte header framing, the TLV primitives, and the per-operation body
// schemas. Every PDU value is encoded and decoded through this package;
// the package itself performs no I/O.
package pdu

import (
	"github.com/relaysmpp/smppcodec/data"
	smpperrors "github.com/relaysmpp/smppcodec/errors"
)

// PDU is implemented by every operation's request/response value.
type PDU interface {
	// CommandID returns the fixed command_id for this operation.
	CommandID() data.CommandID
	// SeqNum returns the sequence_number to encode in the header.
	SeqNum() uint32
	// Status returns the command_status to encode in the header; always
	// zero for requests.
	Status() data.CommandStatus

	marshalBody(b *ByteBuffer) error
}

type decodeFunc func(h Header, b *ByteBuffer) (PDU, error)

var registry = map[data.CommandID]decodeFunc{}

func register(id data.CommandID, fn decodeFunc) {
	registry[id] = fn
}

// Encode marshals p into a complete, framed PDU: header followed by body.
// Encode errors never emit partial output.
func Encode(p PDU) ([]byte, error) {
	b := &ByteBuffer{}
	if err := p.marshalBody(b); err != nil {
		return nil, err
	}
	return frame(Header{
		CommandID:      p.CommandID(),
		CommandStatus:  p.Status(),
		SequenceNumber: p.SeqNum(),
	}, b.Bytes()), nil
}

// Parse decodes a single, complete PDU from raw, which must contain exactly
// command_length bytes (the caller is responsible for delivering exactly
// that many bytes, per the wire framing rule in §4.3).
func Parse(raw []byte) (PDU, error) {
	b := NewByteBuffer(raw)
	h, err := decodeHeader(b)
	if err != nil {
		return nil, err
	}
	if int(h.CommandLength) != len(raw) {
		return nil, smpperrors.NewDecodeError(smpperrors.ErrInvalidHeader, "command_length", 0)
	}

	fn, ok := registry[h.CommandID]
	if !ok {
		return nil, smpperrors.NewDecodeError(smpperrors.ErrUnknownCommandID, "command_id", 4)
	}
	return fn(h, b)
}
