package link

import (
	"bytes"
	"testing"

	"mboot/codec"
)

type fakeHIDConn struct {
	sent    [][]byte
	incoming [][]byte
}

func (c *fakeHIDConn) Send(b []byte) error {
	cp := make([]byte, len(b))
	copy(cp, b)
	c.sent = append(c.sent, cp)
	return nil
}

func (c *fakeHIDConn) Receive() ([]byte, error) {
	r := c.incoming[0]
	c.incoming = c.incoming[1:]
	return r, nil
}

func (c *fakeHIDConn) Close() error { return nil }

func TestParseUSBHIDIdentifierColonDecimal(t *testing.T) {
	vid, pid, err := ParseUSBHIDIdentifier("1003:1234")
	if err != nil || vid != 1003 || pid != 1234 {
		t.Errorf("ParseUSBHIDIdentifier = (%d, %d, %v)", vid, pid, err)
	}
}

func TestParseUSBHIDIdentifierAmbiguousHex(t *testing.T) {
	vid, _, err := ParseUSBHIDIdentifier("1fc9")
	if err != nil || vid != 0x1FC9 {
		t.Errorf("ParseUSBHIDIdentifier(ambiguous hex) = (%d, %v)", vid, err)
	}
}

func TestUSBHIDWriteFrameWrapsCmdReport(t *testing.T) {
	conn := &fakeHIDConn{}
	l := NewUSBHIDLink(conn, "test")

	if err := l.WriteFrame(codec.TypeCmd, []byte{0xAA, 0xBB}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{reportCmdOut, 0, 2, 0, 0xAA, 0xBB}
	if !bytes.Equal(conn.sent[0], want) {
		t.Errorf("sent report = % X, want % X", conn.sent[0], want)
	}
}

func TestUSBHIDReadFrameUnwrapsDataReport(t *testing.T) {
	conn := &fakeHIDConn{incoming: [][]byte{{reportDataIn, 0, 3, 0, 0x01, 0x02, 0x03}}}
	l := NewUSBHIDLink(conn, "test")

	got, err := l.ReadFrame(codec.TypeData)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("payload = % X", got)
	}
}

func TestUSBHIDReadFrameZeroLengthCmdIsAborted(t *testing.T) {
	conn := &fakeHIDConn{incoming: [][]byte{{reportCmdIn, 0, 0, 0}}}
	l := NewUSBHIDLink(conn, "test")

	if _, err := l.ReadFrame(codec.TypeCmd); err != codec.ErrAborted {
		t.Errorf("ReadFrame err = %v, want ErrAborted", err)
	}
}
