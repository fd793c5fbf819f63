package data

// gsm7Default is the GSM 03.38 default alphabet, indexed by septet value.
var gsm7Default = [128]rune{
	'@', '£', '$', '¥', 'è', 'é', 'ù', 'ì', 'ò', 'Ç', '\n', 'Ø', 'ø', '\r', 'Å', 'å',
	'Δ', '_', 'Φ', 'Γ', 'Λ', 'Ω', 'Π', 'Ψ', 'Σ', 'Θ', 'Ξ', 0x1B, 'Æ', 'æ', 'ß', 'É',
	' ', '!', '"', '#', '¤', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?',
	'¡', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', 'Ä', 'Ö', 'Ñ', 'Ü', '§',
	'¿', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', 'ä', 'ö', 'ñ', 'ü', 'à',
}

// gsm7Extension is the GSM 03.38 extension table: each entry occupies two
// septets on the wire (an escape septet 0x1B followed by the listed septet).
var gsm7Extension = map[rune]byte{
	'\f':  0x0A,
	'^':   0x14,
	'{':   0x28,
	'}':   0x29,
	'\\':  0x2F,
	'[':   0x3C,
	'~':   0x3D,
	']':   0x3E,
	'|':   0x40,
	'€':   0x65,
}

var (
	gsm7DefaultRev   = make(map[rune]byte, len(gsm7Default))
	gsm7ExtensionRev = make(map[byte]rune, len(gsm7Extension))
)

func init() {
	for i, r := range gsm7Default {
		gsm7DefaultRev[r] = byte(i)
	}
	for r, b := range gsm7Extension {
		gsm7ExtensionRev[b] = r
	}
}

// GSM7Escape is the septet value that introduces a two-septet extension
// table character; the escape itself and the following septet must never
// be split across segments.
const GSM7Escape = 0x1B

// GSM7EncodeSeptets maps text to its septet sequence (one byte per septet,
// unpacked). Returns ok=false on the first character absent from both the
// default and extension tables.
func GSM7EncodeSeptets(text string) (septets []byte, ok bool) {
	for _, r := range text {
		if b, found := gsm7DefaultRev[r]; found {
			septets = append(septets, b)
			continue
		}
		if b, found := gsm7Extension[r]; found {
			septets = append(septets, GSM7Escape, b)
			continue
		}
		return nil, false
	}
	return septets, true
}

// GSM7DecodeSeptets is the inverse of GSM7EncodeSeptets.
func GSM7DecodeSeptets(septets []byte) string {
	out := make([]rune, 0, len(septets))
	for i := 0; i < len(septets); i++ {
		b := septets[i]
		if b == GSM7Escape && i+1 < len(septets) {
			if r, found := gsm7ExtensionRev[septets[i+1]]; found {
				out = append(out, r)
				i++
				continue
			}
		}
		out = append(out, gsm7Default[b])
	}
	return string(out)
}

// GSM7Pack bit-packs a septet sequence (7 bits used per byte) into octets,
// per 3GPP TS 23.038 §6.1.2.1.
func GSM7Pack(septets []byte) []byte {
	if len(septets) == 0 {
		return nil
	}
	packed := make([]byte, 0, (len(septets)*7+7)/8)
	var acc uint16
	var bits int
	for _, s := range septets {
		acc |= uint16(s&0x7F) << bits
		bits += 7
		if bits >= 8 {
			packed = append(packed, byte(acc))
			acc >>= 8
			bits -= 8
		}
	}
	if bits > 0 {
		packed = append(packed, byte(acc))
	}
	return packed
}

// GSM7Unpack is the inverse of GSM7Pack; septetCount bounds the number of
// septets extracted so trailing padding bits are dropped.
func GSM7Unpack(packed []byte, septetCount int) []byte {
	septets := make([]byte, 0, septetCount)
	var acc uint16
	var bits int
	pi := 0
	for len(septets) < septetCount {
		for bits < 7 && pi < len(packed) {
			acc |= uint16(packed[pi]) << bits
			bits += 8
			pi++
		}
		septets = append(septets, byte(acc&0x7F))
		acc >>= 7
		bits -= 7
	}
	return septets
}
