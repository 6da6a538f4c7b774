package link

import (
	"bufio"
	"bytes"
	"testing"

	"mboot/codec"
)

// fakePort is an in-memory serial.Port: writes accumulate in Written,
// reads are served from Incoming.
type fakePort struct {
	Written  bytes.Buffer
	Incoming bytes.Buffer
}

func (p *fakePort) Read(b []byte) (int, error)  { return p.Incoming.Read(b) }
func (p *fakePort) Write(b []byte) (int, error) { return p.Written.Write(b) }
func (p *fakePort) Close() error                { return nil }
func (p *fakePort) Flush() error                { return nil }

func newUARTLinkForTest(port *fakePort) *UARTLink {
	return &UARTLink{port: port, r: bufio.NewReader(&port.Incoming), timeout: 0, interval: 0, device: "test"}
}

func TestUARTWriteFrameReadsAck(t *testing.T) {
	port := &fakePort{}
	port.Incoming.Write([]byte{codec.StartByte, codec.TypeAck})
	l := newUARTLinkForTest(port)

	if err := l.WriteFrame(codec.TypeCmd, []byte{0x01, 0x02}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := codec.ConstructFrame(codec.TypeCmd, []byte{0x01, 0x02})
	if !bytes.Equal(port.Written.Bytes(), want) {
		t.Errorf("written = % X, want % X", port.Written.Bytes(), want)
	}
}

func TestUARTWriteFrameReportsNACKSent(t *testing.T) {
	port := &fakePort{}
	port.Incoming.Write([]byte{codec.StartByte, codec.TypeNack})
	l := newUARTLinkForTest(port)

	if err := l.WriteFrame(codec.TypeCmd, []byte{0x01}); err != ErrNACKSent {
		t.Errorf("WriteFrame err = %v, want ErrNACKSent", err)
	}
}

func TestUARTReadFrameAcknowledgesAndReturnsPayload(t *testing.T) {
	port := &fakePort{}
	payload := []byte{0x00, 0x00, 0x00, 0x05}
	port.Incoming.Write(codec.ConstructFrame(codec.TypeCmd, payload))
	l := newUARTLinkForTest(port)

	got, err := l.ReadFrame(codec.TypeCmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload = % X, want % X", got, payload)
	}
	if !bytes.Equal(port.Written.Bytes(), []byte{codec.StartByte, codec.TypeAck}) {
		t.Errorf("ack written = % X, want ACK", port.Written.Bytes())
	}
}

func TestUARTReadFrameZeroLengthCmdIsAborted(t *testing.T) {
	port := &fakePort{}
	port.Incoming.Write(codec.ConstructFrame(codec.TypeCmd, nil))
	l := newUARTLinkForTest(port)

	if _, err := l.ReadFrame(codec.TypeCmd); err != codec.ErrAborted {
		t.Errorf("ReadFrame err = %v, want ErrAborted", err)
	}
}

func TestUARTPingParsesVersionAndOptions(t *testing.T) {
	port := &fakePort{}
	body := []byte{0, 0, 0x01, 0x02, 0x00, 0x50, 0x34, 0x12}
	crc := codec.CRC16(body)
	port.Incoming.Write([]byte{codec.StartByte, codec.TypePingResp})
	port.Incoming.Write(body)
	port.Incoming.Write([]byte{byte(crc), byte(crc >> 8)})
	l := newUARTLinkForTest(port)

	v, options, err := l.Ping()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Major != 0x02 || v.Minor != 0x00 || v.Fix != 0x50 {
		t.Errorf("version = %+v", v)
	}
	if options != 0x1234 {
		t.Errorf("options = 0x%04X, want 0x1234", options)
	}
}
