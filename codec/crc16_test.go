package codec

import "testing"

func TestCRC16KnownVectors(t *testing.T) {
	testCases := []struct {
		name     string
		data     []byte
		expected uint16
	}{
		{"empty", []byte{}, 0x0000},
		{"single zero byte", []byte{0x00}, 0x0000},
		{
			"getProperty(CurrentVersion, 0)",
			[]byte{0x5A, TypeCmd, 0x0C, 0x00, 0x07, 0x00, 0x00, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			0x334B,
		},
		{
			"FlashProgramOnce{index=0x51,count=4,data=0x12345678}",
			[]byte{
				0x5A, TypeCmd, 0x10, 0x00,
				0x0E, 0x00, 0x00, 0x03, 0x51, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x78, 0x56, 0x34, 0x12,
			},
			0x601B,
		},
	}

	for _, tc := range testCases {
		if got := CRC16(tc.data); got != tc.expected {
			t.Errorf("%s: CRC16(%v) = 0x%04X, want 0x%04X", tc.name, tc.data, got, tc.expected)
		}
	}
}

func TestCRC16Consistency(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}

	crc1 := CRC16(data)
	crc2 := CRC16(data)

	if crc1 != crc2 {
		t.Errorf("CRC16 not consistent: first=%04X, second=%04X", crc1, crc2)
	}
}

func TestCRC16Different(t *testing.T) {
	data1 := []byte{0x01, 0x02, 0x03}
	data2 := []byte{0x01, 0x02, 0x04}

	crc1 := CRC16(data1)
	crc2 := CRC16(data2)

	if crc1 == crc2 {
		t.Errorf("CRC16 collision: both inputs produced %04X", crc1)
	}
}
