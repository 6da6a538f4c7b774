package codec

import (
	"reflect"
	"testing"

	"mboot/taxonomy"
)

func TestEncodeDecodeCommandHeaderRoundTrip(t *testing.T) {
	h := CommandHeader{Code: 0x03, Flag: byte(taxonomy.FlagHasDataPhase), ParamCount: 2, Params: []uint32{0x1000, 0x20}}
	payload := EncodeCommandHeader(h)

	got, err := DecodeCommandHeader(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, h) {
		t.Errorf("DecodeCommandHeader roundtrip = %+v, want %+v", got, h)
	}
}

func TestDecodeCommandHeaderFlashProgramOnceVector(t *testing.T) {
	// FlashProgramOnce{index=0x51,count=4,data=0x12345678}
	payload := []byte{0x0E, 0x00, 0x00, 0x03, 0x51, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x78, 0x56, 0x34, 0x12}
	h, err := DecodeCommandHeader(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint32{0x51, 0x04, 0x12345678}
	if !reflect.DeepEqual(h.Params, want) {
		t.Errorf("Params = %v, want %v", h.Params, want)
	}
}

func TestDecodeCommandHeaderRejectsShortPayload(t *testing.T) {
	if _, err := DecodeCommandHeader([]byte{0x01, 0x02}); err != ErrInvalidData {
		t.Errorf("DecodeCommandHeader(short) = %v, want ErrInvalidData", err)
	}
}

func TestDecodeCommandHeaderRejectsParamCountMismatch(t *testing.T) {
	payload := []byte{0x03, 0x00, 0x00, 0x02, 0x01, 0x00, 0x00, 0x00}
	if _, err := DecodeCommandHeader(payload); err != ErrInvalidData {
		t.Errorf("DecodeCommandHeader(count mismatch) = %v, want ErrInvalidData", err)
	}
}
