// Package data holds the enumeration catalog (TON, NPI, command IDs, tag
// IDs, bind modes, status codes) and the encoding catalog shared by every
// PDU schema.
package data

// Ton is Type-Of-Number, address metadata carried alongside every Address.
//
// Unknown wire values are preserved as the raw byte rather than rejected:
// the SMPP spec has grown this enumeration over revisions, and the codec
// stays forward-compatible by round-tripping values it doesn't recognize.
type Ton uint8

const (
	TonUnknown         Ton = 0x00
	TonInternational   Ton = 0x01
	TonNational        Ton = 0x02
	TonNetworkSpecific Ton = 0x03
	TonSubscriber      Ton = 0x04
	TonAlphanumeric    Ton = 0x05
	TonAbbreviated     Ton = 0x06
)

// Npi is Numbering-Plan-Indicator.
type Npi uint8

const (
	NpiUnknown      Npi = 0x00
	NpiISDN         Npi = 0x01
	NpiData         Npi = 0x03
	NpiTelex        Npi = 0x04
	NpiLandMobile   Npi = 0x06
	NpiNational     Npi = 0x08
	NpiPrivate      Npi = 0x09
	NpiERMES        Npi = 0x0A
	NpiInternet     Npi = 0x0E
	NpiWapClientID  Npi = 0x12
)

// BindMode selects which of the three bind operations a BindRequest encodes
// as; all three share a schema and differ only by command_id.
type BindMode uint8

const (
	BindReceiver BindMode = iota
	BindTransmitter
	BindTransceiver
)

// CommandID is the 32-bit SMPP operation identifier carried in every PDU
// header.
type CommandID uint32

// The authoritative command_id catalog, per spec §6.1.
const (
	GenericNackID CommandID = 0x80000000

	BindReceiverID         CommandID = 0x00000001
	BindReceiverRespID     CommandID = 0x80000001
	BindTransmitterID      CommandID = 0x00000002
	BindTransmitterRespID  CommandID = 0x80000002
	QuerySmID              CommandID = 0x00000003
	QuerySmRespID          CommandID = 0x80000003
	SubmitSmID             CommandID = 0x00000004
	SubmitSmRespID         CommandID = 0x80000004
	DeliverSmID            CommandID = 0x00000005
	DeliverSmRespID        CommandID = 0x80000005
	UnbindID               CommandID = 0x00000006
	UnbindRespID           CommandID = 0x80000006
	ReplaceSmID            CommandID = 0x00000007
	ReplaceSmRespID        CommandID = 0x80000007
	CancelSmID             CommandID = 0x00000008
	CancelSmRespID         CommandID = 0x80000008
	BindTransceiverID      CommandID = 0x00000009
	BindTransceiverRespID  CommandID = 0x80000009
	EnquireLinkID          CommandID = 0x00000015
	EnquireLinkRespID      CommandID = 0x80000015
	SubmitMultiID          CommandID = 0x00000021
	SubmitMultiRespID      CommandID = 0x80000021
	AlertNotificationID    CommandID = 0x00000102
	DataSmID               CommandID = 0x00000103
	DataSmRespID           CommandID = 0x80000103
	BroadcastSmID          CommandID = 0x00000111
	BroadcastSmRespID      CommandID = 0x80000111
	QueryBroadcastSmID     CommandID = 0x00000112
	QueryBroadcastSmRespID CommandID = 0x80000112
	CancelBroadcastSmID    CommandID = 0x00000113
	CancelBroadcastSmRespID CommandID = 0x80000113
)

// RespMask is the bit set on a request's command_id to produce its
// response's command_id.
const RespMask CommandID = 0x80000000

// Resp returns the command_id of the response to a request with this
// command_id.
func (c CommandID) Resp() CommandID {
	return c | RespMask
}

// CommandStatus is the 32-bit status code carried in response PDU headers.
type CommandStatus uint32

const (
	StatusOK                  CommandStatus = 0x00000000
	StatusInvalidMsgLength    CommandStatus = 0x00000001
	StatusInvalidCommandID    CommandStatus = 0x00000003
	StatusInvalidBindStatus   CommandStatus = 0x00000004
	StatusSystemError         CommandStatus = 0x00000008
	StatusInvalidSourceAddr   CommandStatus = 0x0000000A
	StatusInvalidDestAddr     CommandStatus = 0x0000000B
	StatusInvalidMsgID        CommandStatus = 0x0000000C
	StatusBindFailed          CommandStatus = 0x0000000D
	StatusInvalidPassword     CommandStatus = 0x0000000E
	StatusInvalidSystemID     CommandStatus = 0x0000000F
	StatusThrottled           CommandStatus = 0x00000058
)

// Tag is the 16-bit TLV tag identifier.
type Tag uint16

// The optional-parameter tag catalog, per spec §3.
const (
	TagDestAddrSubunit           Tag = 0x0005
	TagDestNetworkType           Tag = 0x0006
	TagDestBearerType            Tag = 0x0007
	TagDestTelematicsID          Tag = 0x0008
	TagSourceAddrSubunit         Tag = 0x000D
	TagSourceNetworkType         Tag = 0x000E
	TagSourceBearerType          Tag = 0x000F
	TagSourceTelematicsID        Tag = 0x0010
	TagQosTimeToLive             Tag = 0x0017
	TagPayloadType                Tag = 0x0019
	TagAdditionalStatusInfoText  Tag = 0x001D
	TagReceiptedMessageID        Tag = 0x001E
	TagMsMsgWaitFacilities       Tag = 0x0030
	TagPrivacyIndicator          Tag = 0x0201
	TagSourceSubaddress          Tag = 0x0202
	TagDestSubaddress            Tag = 0x0203
	TagUserMessageReference      Tag = 0x0204
	TagUserResponseCode          Tag = 0x0205
	TagSourcePort                Tag = 0x020A
	TagDestinationPort           Tag = 0x020B
	TagSarMsgRefNum              Tag = 0x020C
	TagLanguageIndicator         Tag = 0x020D
	TagSarTotalSegments          Tag = 0x020E
	TagSarSegmentSeqnum          Tag = 0x020F
	TagScInterfaceVersion        Tag = 0x0210
	TagCallbackNumPresInd        Tag = 0x0302
	TagCallbackNumAtag           Tag = 0x0303
	TagNumberOfMessages          Tag = 0x0304
	TagCallbackNum               Tag = 0x0381
	TagDpfResult                 Tag = 0x0420
	TagSetDpf                    Tag = 0x0421
	TagMsAvailabilityStatus      Tag = 0x0422
	TagNetworkErrorCode          Tag = 0x0423
	TagMessagePayload            Tag = 0x0424
	TagDeliveryFailureReason     Tag = 0x0425
	TagMoreMessagesToSend        Tag = 0x0426
	TagMessageStateOption        Tag = 0x0427
	TagUssdServiceOp             Tag = 0x0501
	TagBroadcastChannelIndicator Tag = 0x0600
	TagBroadcastContentType      Tag = 0x0601
	TagBroadcastContentTypeInfo  Tag = 0x0602
	TagBroadcastMessageClass     Tag = 0x0603
	TagBroadcastRepNum           Tag = 0x0604
	TagBroadcastFrequencyInterval Tag = 0x0605
	TagBroadcastAreaIdentifier   Tag = 0x0606
	TagBroadcastErrorStatus      Tag = 0x0607
	TagBroadcastAreaSuccess      Tag = 0x0608
	TagBroadcastEndTime          Tag = 0x0609
	TagBroadcastServiceGroup     Tag = 0x060A
	TagBillingIdentification     Tag = 0x060B
	TagSourceNetworkID           Tag = 0x060D
	TagDestNetworkID             Tag = 0x060E
	TagSourceNodeID              Tag = 0x060F
	TagDestNodeID                Tag = 0x0610
	TagDestAddrNpResolution      Tag = 0x0611
	TagDestAddrNpInformation     Tag = 0x0612
	TagDestAddrNpCountry         Tag = 0x0613
	TagDisplayTime               Tag = 0x1201
	TagSmsSignal                 Tag = 0x1203
	TagMsValidity                Tag = 0x1204
	TagAlertOnMessageDelivery    Tag = 0x130C
	TagItsReplyType              Tag = 0x1380
	TagItsSessionInfo            Tag = 0x1383
)
