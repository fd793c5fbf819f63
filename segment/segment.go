// Package segment implements the text-to-PDU message segmentation engine:
// GSM 7-bit / UCS-2 encoding-aware splitting of long messages into
// short_message payloads, in both UDH and SAR mode.
package segment

import (
	"sync/atomic"

	"github.com/relaysmpp/smppcodec/data"
)

// Encoding selects the character encoding requested for a split_message
// call.
type Encoding uint8

const (
	// GSM7BIT requests the GSM 03.38 default alphabet, falling back to
	// UCS2 when the text contains a character neither table can encode.
	GSM7BIT Encoding = iota
	// UCS2 requests UTF-16BE encoding unconditionally.
	UCS2
)

// Mode selects how a multi-part message signals concatenation.
type Mode uint8

const (
	// UDH prepends a 6-byte User Data Header to each part's payload.
	UDH Mode = iota
	// SAR carries no in-payload header; the caller attaches
	// SAR_MSG_REF_NUM / SAR_TOTAL_SEGMENTS / SAR_SEGMENT_SEQNUM TLVs.
	SAR
)

const (
	gsm7SingleLimit = 160 // septets
	gsm7UDHLimit    = 153 // septets, after reserving 7 septets for the UDH
	gsm7SARLimit    = 160 // septets; SAR carries no in-payload header

	ucs2SingleLimit = 140 // bytes
	ucs2UDHLimit    = 134 // bytes, after reserving the 6-byte UDH
	ucs2SARLimit    = 140 // bytes; SAR carries no in-payload header
)

// Output is the result of a split_message call: the list of opaque
// short_message payloads and the data_coding the caller must set on each
// resulting SubmitSm.
type Output struct {
	Parts      [][]byte
	DataCoding byte
	// Ref and Total are populated whenever Parts has more than one entry;
	// SAR-mode callers need them to build the SAR_MSG_REF_NUM /
	// SAR_TOTAL_SEGMENTS TLVs themselves, since Split doesn't attach TLVs.
	Ref   byte
	Total byte
}

var udhRef uint32

func nextRef() byte {
	return byte(atomic.AddUint32(&udhRef, 1))
}

// Split segments text for transmission as one or more short_message
// payloads under the requested encoding and concatenation mode.
func Split(text string, enc Encoding, mode Mode) Output {
	useUCS2 := enc == UCS2
	var septets []byte
	if !useUCS2 {
		var ok bool
		septets, ok = data.GSM7EncodeSeptets(text)
		if !ok {
			useUCS2 = true
		}
	}

	if useUCS2 {
		return splitUCS2(text, mode)
	}
	return splitGSM7(septets, mode)
}

func splitGSM7(septets []byte, mode Mode) Output {
	if len(septets) <= gsm7SingleLimit {
		return Output{Parts: [][]byte{data.GSM7Pack(septets)}, DataCoding: data.GSM7BIT.DataCoding()}
	}

	limit := gsm7UDHLimit
	if mode == SAR {
		limit = gsm7SARLimit
	}
	chunks := chunkGSM7(septets, limit)

	ref := nextRef()
	total := byte(len(chunks))
	parts := make([][]byte, len(chunks))
	if mode == UDH {
		for i, c := range chunks {
			parts[i] = append(udh(ref, total, byte(i+1)), data.GSM7Pack(c)...)
		}
	} else {
		for i, c := range chunks {
			parts[i] = data.GSM7Pack(c)
		}
	}
	return Output{Parts: parts, DataCoding: data.GSM7BIT.DataCoding(), Ref: ref, Total: total}
}

func splitUCS2(text string, mode Mode) Output {
	raw := data.UTF16BEEncode(text)
	if len(raw) <= ucs2SingleLimit {
		return Output{Parts: [][]byte{raw}, DataCoding: data.UCS2Coding.DataCoding()}
	}

	limit := ucs2UDHLimit
	if mode == SAR {
		limit = ucs2SARLimit
	}
	chunks := chunkUCS2(raw, limit)

	ref := nextRef()
	total := byte(len(chunks))
	parts := make([][]byte, len(chunks))
	if mode == UDH {
		for i, c := range chunks {
			parts[i] = append(udh(ref, total, byte(i+1)), c...)
		}
	} else {
		copy(parts, chunks)
	}
	return Output{Parts: parts, DataCoding: data.UCS2Coding.DataCoding(), Ref: ref, Total: total}
}

// udh builds the 6-byte concatenated-short-message User Data Header
// (IEI=0x00, 8-bit reference): [0x05, 0x00, 0x03, ref, total, seq].
func udh(ref, total, seq byte) []byte {
	return []byte{0x05, 0x00, 0x03, ref, total, seq}
}

// chunkGSM7 splits an unpacked septet sequence into chunks of at most limit
// septets each, never splitting an escape+extension pair across chunks.
func chunkGSM7(septets []byte, limit int) [][]byte {
	var chunks [][]byte
	start := 0
	for start < len(septets) {
		end := start + limit
		if end >= len(septets) {
			chunks = append(chunks, septets[start:])
			break
		}
		if septets[end-1] == data.GSM7Escape {
			end--
		}
		chunks = append(chunks, septets[start:end])
		start = end
	}
	return chunks
}

// chunkUCS2 splits UTF-16BE bytes into chunks of at most limit bytes each,
// never splitting a surrogate pair across chunks.
func chunkUCS2(raw []byte, limit int) [][]byte {
	limit &^= 1
	var chunks [][]byte
	start := 0
	for start < len(raw) {
		end := start + limit
		if end >= len(raw) {
			chunks = append(chunks, raw[start:])
			break
		}
		unit := uint16(raw[end-2])<<8 | uint16(raw[end-1])
		if unit >= 0xD800 && unit < 0xDC00 {
			end -= 2
		}
		chunks = append(chunks, raw[start:end])
		start = end
	}
	return chunks
}
