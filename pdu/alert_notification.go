package pdu

import (
	"github.com/relaysmpp/smppcodec/data"
)

// AlertNotification tells an ESME bound as a receiver or transceiver that a
// mobile subscriber it previously tried to reach has become available. It
// has no response.
type AlertNotification struct {
	SequenceNumber uint32
	Source         Address
	Esme           Address
	OptionalParams []TLV
}

// CommandID implements PDU.
func (a *AlertNotification) CommandID() data.CommandID { return data.AlertNotificationID }

// SeqNum implements PDU.
func (a *AlertNotification) SeqNum() uint32 { return a.SequenceNumber }

// Status implements PDU.
func (a *AlertNotification) Status() data.CommandStatus { return data.StatusOK }

func (a *AlertNotification) marshalBody(b *ByteBuffer) error {
	if err := a.Source.marshal(b); err != nil {
		return err
	}
	if err := a.Esme.marshal(b); err != nil {
		return err
	}
	marshalTLVs(b, a.OptionalParams)
	return nil
}

func decodeAlertNotificationBody(h Header, b *ByteBuffer) (PDU, error) {
	a := &AlertNotification{SequenceNumber: h.SequenceNumber}
	var err error
	if a.Source, err = decodeAddress(b); err != nil {
		return nil, err
	}
	if a.Esme, err = decodeAddress(b); err != nil {
		return nil, err
	}
	if a.OptionalParams, err = decodeTLVs(b); err != nil {
		return nil, err
	}
	return a, nil
}

func init() {
	register(data.AlertNotificationID, decodeAlertNotificationBody)
}
