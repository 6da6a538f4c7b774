package codec

import (
	"bytes"
	"testing"

	"mboot/taxonomy"
)

func TestConstructFrameMatchesKnownVectors(t *testing.T) {
	getProp := EncodeCommandHeader(CommandHeader{Code: 0x07, Flag: byte(taxonomy.FlagNoData), ParamCount: 2, Params: []uint32{0x01, 0x00}})
	frame := ConstructFrame(TypeCmd, getProp)
	want := []byte{
		0x5A, TypeCmd, 0x0C, 0x00, 0x4B, 0x33,
		0x07, 0x00, 0x00, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	if !bytes.Equal(frame, want) {
		t.Errorf("ConstructFrame = % X, want % X", frame, want)
	}
}

func TestVerifyCRCAcceptsOwnFrame(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04}
	frame := ConstructFrame(TypeData, payload)
	crc := uint16(frame[4]) | uint16(frame[5])<<8
	if err := VerifyCRC(TypeData, payload, crc); err != nil {
		t.Errorf("VerifyCRC rejected a self-constructed frame: %v", err)
	}
}

func TestVerifyCRCRejectsTamperedPayload(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04}
	frame := ConstructFrame(TypeData, payload)
	crc := uint16(frame[4]) | uint16(frame[5])<<8
	tampered := []byte{0x01, 0x02, 0x03, 0x05}
	if err := VerifyCRC(TypeData, tampered, crc); err != ErrInvalidCrc {
		t.Errorf("VerifyCRC(tampered) = %v, want ErrInvalidCrc", err)
	}
}
