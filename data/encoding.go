package data

import (
	"unicode/utf16"

	smpperrors "github.com/relaysmpp/smppcodec/errors"
)

// SM_MSG_LEN is the maximum number of octets a short_message field may
// carry (sm_length is a single byte, but the SMPP spec further caps it at
// 254 to leave one byte for a following TLV length check on some SMSCs).
const SM_MSG_LEN = 254

// Encoding converts between a Go string and the wire bytes for one
// data_coding value. Mirrors the teacher's data.Encoding contract used
// throughout ShortMessage.
type Encoding interface {
	// Encode converts text to wire bytes.
	Encode(text string) ([]byte, error)
	// Decode converts wire bytes back to text.
	Decode(raw []byte) (string, error)
	// DataCoding returns the data_coding octet this Encoding represents.
	DataCoding() byte
}

type gsm7Encoding struct{}

// GSM7BIT is the GSM 03.38 default-alphabet encoding (data_coding 0x00).
var GSM7BIT Encoding = gsm7Encoding{}

func (gsm7Encoding) DataCoding() byte { return 0x00 }

func (gsm7Encoding) Encode(text string) ([]byte, error) {
	septets, ok := GSM7EncodeSeptets(text)
	if !ok {
		return nil, smpperrors.ErrEncoding
	}
	return GSM7Pack(septets), nil
}

func (gsm7Encoding) Decode(raw []byte) (string, error) {
	septets := GSM7Unpack(raw, (len(raw)*8)/7)
	return GSM7DecodeSeptets(septets), nil
}

type ucs2Encoding struct{}

// UCS2Coding is the UTF-16BE encoding SMPP calls UCS-2 (data_coding 0x08).
var UCS2Coding Encoding = ucs2Encoding{}

func (ucs2Encoding) DataCoding() byte { return 0x08 }

func (ucs2Encoding) Encode(text string) ([]byte, error) {
	return UTF16BEEncode(text), nil
}

func (ucs2Encoding) Decode(raw []byte) (string, error) {
	return UTF16BEDecode(raw), nil
}

type binary8BitEncoding struct{}

// BINARY8BIT2Coding is a pass-through encoding for raw octet payloads
// (data_coding 0x04, "8-bit binary").
var BINARY8BIT2Coding Encoding = binary8BitEncoding{}

func (binary8BitEncoding) DataCoding() byte { return 0x04 }

func (binary8BitEncoding) Encode(text string) ([]byte, error) {
	return []byte(text), nil
}

func (binary8BitEncoding) Decode(raw []byte) (string, error) {
	return string(raw), nil
}

// FromDataCoding maps a data_coding octet back to its Encoding. Unrecognized
// values fall back to binary pass-through rather than failing, consistent
// with the forward-compatibility stance on enum decoding (spec §7).
func FromDataCoding(coding byte) Encoding {
	switch coding {
	case GSM7BIT.DataCoding():
		return GSM7BIT
	case UCS2Coding.DataCoding():
		return UCS2Coding
	default:
		return BINARY8BIT2Coding
	}
}

// UTF16BEEncode encodes text as big-endian UTF-16, the wire form SMPP calls
// UCS-2.
func UTF16BEEncode(text string) []byte {
	units := utf16.Encode([]rune(text))
	out := make([]byte, len(units)*2)
	for i, u := range units {
		out[i*2] = byte(u >> 8)
		out[i*2+1] = byte(u)
	}
	return out
}

// UTF16BEDecode is the inverse of UTF16BEEncode.
func UTF16BEDecode(raw []byte) string {
	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = uint16(raw[i*2])<<8 | uint16(raw[i*2+1])
	}
	return string(utf16.Decode(units))
}
