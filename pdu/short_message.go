package pdu

import (
	"github.com/relaysmpp/smppcodec/data"
	"github.com/relaysmpp/smppcodec/segment"
)

// esmClassUDHI is the esm_class bit that marks short_message as carrying a
// User Data Header; it must be set on every segment of a UDH-mode split.
const esmClassUDHI = 0x40

// Segment is one piece of a split message, carrying everything a SubmitSm or
// DeliverSm needs beyond the shared address/schedule fields.
type Segment struct {
	EsmClass       byte
	DataCoding     byte
	ShortMessage   []byte
	OptionalParams []TLV
}

// SplitText segments text for submission as a series of SubmitSm/DeliverSm
// short_message payloads. baseEsmClass is the esm_class the caller would
// otherwise use (e.g. to request a delivery receipt); SplitText adds the
// UDHI bit to it for UDH-mode segments, never for SAR-mode ones, since SAR
// carries its segmentation info out of band.
func SplitText(text string, enc segment.Encoding, mode segment.Mode, baseEsmClass byte) []Segment {
	out := segment.Split(text, enc, mode)
	segments := make([]Segment, 0, len(out.Parts))

	multi := len(out.Parts) > 1
	for i, part := range out.Parts {
		s := Segment{DataCoding: out.DataCoding, ShortMessage: part, EsmClass: baseEsmClass}
		switch {
		case mode == segment.UDH && multi:
			s.EsmClass |= esmClassUDHI
		case mode == segment.SAR && multi:
			s.OptionalParams = []TLV{
				NewTLVUint16(data.TagSarMsgRefNum, uint16(out.Ref)),
				NewTLVUint8(data.TagSarTotalSegments, out.Total),
				NewTLVUint8(data.TagSarSegmentSeqnum, uint8(i+1)),
			}
		}
		segments = append(segments, s)
	}
	return segments
}
