package codec

import (
	"encoding/binary"
	"errors"
)

// Errors surfaced by frame construction and parsing. Transports wrap these
// with their own Timeout/IOError kinds; the codec itself never blocks.
var (
	ErrInvalidHeader = errors.New("codec: invalid frame header")
	ErrInvalidCrc    = errors.New("codec: CRC mismatch")
	ErrInvalidData   = errors.New("codec: malformed frame payload")
	ErrAborted       = errors.New("codec: sender aborted data phase")
)

// ConstructFrame builds a complete wire frame: start byte, frame type,
// little-endian length, little-endian CRC-16/XMODEM, and payload. The CRC
// covers the start byte, type, and length bytes along with the payload.
func ConstructFrame(frameType byte, payload []byte) []byte {
	frame := make([]byte, 0, HeaderSize+2+len(payload))
	frame = append(frame, StartByte, frameType)
	frame = binary.LittleEndian.AppendUint16(frame, uint16(len(payload)))
	crc := CRC16(append(append([]byte{}, frame...), payload...))
	frame = binary.LittleEndian.AppendUint16(frame, crc)
	frame = append(frame, payload...)
	return frame
}

// VerifyCRC recomputes the CRC over start+type+lenLE+payload and compares
// it against crc, the value read off the wire.
func VerifyCRC(frameType byte, payload []byte, crc uint16) error {
	header := []byte{StartByte, frameType, byte(len(payload)), byte(len(payload) >> 8)}
	if CRC16(append(header, payload...)) != crc {
		return ErrInvalidCrc
	}
	return nil
}
