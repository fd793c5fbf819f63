package pdu

import (
	"github.com/relaysmpp/smppcodec/data"
	smpperrors "github.com/relaysmpp/smppcodec/errors"
)

// TLV is an optional Tag-Length-Value parameter. Length is implied by
// len(Value) and is never carried as a separate field on the Go side.
type TLV struct {
	Tag   data.Tag
	Value []byte
}

// NewTLV builds a TLV from raw octets.
func NewTLV(tag data.Tag, octets []byte) TLV {
	return TLV{Tag: tag, Value: octets}
}

// NewTLVUint8 builds a single-byte TLV.
func NewTLVUint8(tag data.Tag, v uint8) TLV {
	return TLV{Tag: tag, Value: []byte{v}}
}

// NewTLVUint16 builds a 2-byte, network-byte-order TLV.
func NewTLVUint16(tag data.Tag, v uint16) TLV {
	return TLV{Tag: tag, Value: []byte{byte(v >> 8), byte(v)}}
}

// NewTLVUint32 builds a 4-byte, network-byte-order TLV.
func NewTLVUint32(tag data.Tag, v uint32) TLV {
	return TLV{Tag: tag, Value: []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}}
}

// Uint8 interprets Value as a single byte.
func (t TLV) Uint8() uint8 {
	if len(t.Value) < 1 {
		return 0
	}
	return t.Value[0]
}

// Uint16 interprets Value as a network-byte-order 2-byte integer.
func (t TLV) Uint16() uint16 {
	if len(t.Value) < 2 {
		return 0
	}
	return uint16(t.Value[0])<<8 | uint16(t.Value[1])
}

// Uint32 interprets Value as a network-byte-order 4-byte integer.
func (t TLV) Uint32() uint32 {
	if len(t.Value) < 4 {
		return 0
	}
	return uint32(t.Value[0])<<24 | uint32(t.Value[1])<<16 | uint32(t.Value[2])<<8 | uint32(t.Value[3])
}

func (t TLV) marshal(b *ByteBuffer) {
	b.WriteUint16(uint16(t.Tag))
	b.WriteUint16(uint16(len(t.Value)))
	_, _ = b.Write(t.Value)
}

func marshalTLVs(b *ByteBuffer, tlvs []TLV) {
	for _, t := range tlvs {
		t.marshal(b)
	}
}

// decodeTLVs consumes the remaining bytes of a PDU body as a TLV list,
// preserving wire order. A TLV whose declared length would read beyond the
// end of the body fails with ErrMalformedTLV.
func decodeTLVs(b *ByteBuffer) ([]TLV, error) {
	var tlvs []TLV
	for b.Remaining() > 0 {
		tag, err := b.ReadUint16()
		if err != nil {
			return nil, smpperrors.NewDecodeError(smpperrors.ErrMalformedTLV, "tlv.tag", -1)
		}
		length, err := b.ReadUint16()
		if err != nil {
			return nil, smpperrors.NewDecodeError(smpperrors.ErrMalformedTLV, "tlv.length", -1)
		}
		if int(length) > b.Remaining() {
			return nil, smpperrors.NewDecodeError(smpperrors.ErrMalformedTLV, "tlv.value", -1)
		}
		value, err := b.ReadN(int(length))
		if err != nil {
			return nil, smpperrors.NewDecodeError(smpperrors.ErrMalformedTLV, "tlv.value", -1)
		}
		// copy so the slice doesn't alias the caller's decode buffer
		v := append([]byte(nil), value...)
		tlvs = append(tlvs, TLV{Tag: data.Tag(tag), Value: v})
	}
	return tlvs, nil
}

// findTLV returns the first TLV with the given tag, if present.
func findTLV(tlvs []TLV, tag data.Tag) (TLV, bool) {
	for _, t := range tlvs {
		if t.Tag == tag {
			return t, true
		}
	}
	return TLV{}, false
}

// withoutTLV returns tlvs with every entry matching any of excl removed,
// preserving relative order of the rest.
func withoutTLV(tlvs []TLV, excl ...data.Tag) []TLV {
	out := make([]TLV, 0, len(tlvs))
	for _, t := range tlvs {
		skip := false
		for _, e := range excl {
			if t.Tag == e {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, t)
		}
	}
	return out
}
