// Package codec implements the mboot wire format: frame construction and
// parsing, CRC-16/XMODEM, and the command/response header layout shared by
// every transport.
package codec

// Version identifies the codec revision implemented by this package.
const Version = "0.1.0"

// Frame type bytes (the second byte of every frame, after the 0x5A start byte).
const (
	TypeCmd      byte = 0xA4
	TypeData     byte = 0xA5
	TypePing     byte = 0xA6
	TypePingResp byte = 0xA7
	TypeAck      byte = 0xA1
	TypeNack     byte = 0xA2
	TypeAckAbort byte = 0xA3
	StartByte    byte = 0x5A
	HeaderSize        = 4 // start, type, len_lo, len_hi (CRC bytes are appended separately)
	MaxPingDummy      = 50
)
