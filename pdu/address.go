package pdu

import (
	"github.com/relaysmpp/smppcodec/data"
)

// AddressLen is the wire cap (including the null terminator) for an
// Address's value field.
const AddressLen = 21

// Address is SME address metadata: type-of-number, numbering-plan-indicator
// and the address value itself.
type Address struct {
	Ton   data.Ton
	Npi   data.Npi
	Value string
}

func (a Address) marshal(b *ByteBuffer) error {
	_ = b.WriteByte(byte(a.Ton))
	_ = b.WriteByte(byte(a.Npi))
	return b.WriteCString(a.Value, AddressLen)
}

func decodeAddress(b *ByteBuffer) (Address, error) {
	var a Address
	ton, err := b.ReadByte()
	if err != nil {
		return a, err
	}
	npi, err := b.ReadByte()
	if err != nil {
		return a, err
	}
	value, err := b.ReadCString(AddressLen)
	if err != nil {
		return a, err
	}
	a.Ton = data.Ton(ton)
	a.Npi = data.Npi(npi)
	a.Value = value
	return a, nil
}
