package link

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"mboot/codec"
	"mboot/taxonomy"
)

// Conn is the raw HID report conduit a USB-HID link drives. Implementations
// are expected to pad Send reports to the device's fixed report size and to
// return Receive reports already stripped to that same size; USBHIDLink
// only concerns itself with the reportId/length/data envelope inside it.
type Conn interface {
	Receive() ([]byte, error)
	Send([]byte) error
	Close() error
}

const (
	reportCmdOut  byte = 0x01
	reportDataOut byte = 0x02
	reportCmdIn   byte = 0x03
	reportDataIn  byte = 0x04
)

// USBHIDLink speaks the report-structured variant of the wire protocol: it
// sends each payload inside a HID report instead of a UART-style outer
// frame, and returns the payload of each incoming report to the caller.
// There are no explicit ACK frames on this transport.
type USBHIDLink struct {
	conn     Conn
	ident    string
	timeout  time.Duration
	interval time.Duration
}

// ParseUSBHIDIdentifier accepts "vid[:pid]" or "vid,pid" with decimal,
// 0x-prefixed, or ambiguous hex integers (ambiguous hex is recognized by
// the presence of a-f letters).
func ParseUSBHIDIdentifier(identifier string) (vid, pid uint16, err error) {
	sep := ":"
	if strings.Contains(identifier, ",") {
		sep = ","
	}
	parts := strings.SplitN(identifier, sep, 2)

	v, err := parseUSBHIDInt(parts[0])
	if err != nil {
		return 0, 0, err
	}
	vid = uint16(v)
	if len(parts) == 2 {
		p, err := parseUSBHIDInt(parts[1])
		if err != nil {
			return 0, 0, err
		}
		pid = uint16(p)
	}
	return vid, pid, nil
}

func parseUSBHIDInt(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return strconv.ParseUint(s[2:], 16, 32)
	}
	if strings.ContainsAny(s, "abcdefABCDEF") {
		return strconv.ParseUint(s, 16, 32)
	}
	return strconv.ParseUint(s, 10, 32)
}

// NewUSBHIDLink wraps an already-opened Conn. It does not ping on open;
// callers drive Ping explicitly once the device has enumerated.
func NewUSBHIDLink(conn Conn, ident string) *USBHIDLink {
	return &USBHIDLink{conn: conn, ident: ident, timeout: 5 * time.Second, interval: time.Millisecond}
}

func (l *USBHIDLink) Identifier() string            { return l.ident }
func (l *USBHIDLink) Timeout() time.Duration         { return l.timeout }
func (l *USBHIDLink) PollingInterval() time.Duration { return l.interval }
func (l *USBHIDLink) Close() error                   { return l.conn.Close() }

func (l *USBHIDLink) WriteFrame(frameType byte, payload []byte) error {
	reportID := reportDataOut
	if frameType == codec.TypeCmd {
		reportID = reportCmdOut
	}
	report := make([]byte, 0, 4+len(payload))
	report = append(report, reportID, 0, byte(len(payload)), byte(len(payload)>>8))
	report = append(report, payload...)
	if err := l.conn.Send(report); err != nil {
		return errors.Wrap(ErrIOError, err.Error())
	}
	return nil
}

func (l *USBHIDLink) ReadFrame(expectedType byte) ([]byte, error) {
	report, err := l.conn.Receive()
	if err != nil {
		return nil, errors.Wrap(ErrIOError, err.Error())
	}
	if len(report) < 4 {
		return nil, codec.ErrInvalidData
	}
	reportID := report[0]
	wantID := reportDataIn
	if expectedType == codec.TypeCmd {
		wantID = reportCmdIn
	}
	if reportID != wantID {
		return nil, ErrUnexpectedFrameType
	}
	length := int(report[2]) | int(report[3])<<8
	if length == 0 && expectedType == codec.TypeCmd {
		return nil, codec.ErrAborted
	}
	if len(report) < 4+length {
		return nil, codec.ErrInvalidData
	}
	return report[4 : 4+length], nil
}

// Ping has no on-wire ACK-polling counterpart here; USB-HID reports are
// framed but still carry the same PING/PINGR exchange, travelling inside
// CMD-class reports with the packet type as the payload's leading byte.
func (l *USBHIDLink) Ping() (taxonomy.Version, uint16, error) {
	if err := l.WriteFrame(codec.TypeCmd, []byte{codec.TypePing}); err != nil {
		return taxonomy.Version{}, 0, err
	}
	payload, err := l.ReadFrame(codec.TypeCmd)
	if err != nil {
		return taxonomy.Version{}, 0, err
	}
	if len(payload) < 11 {
		return taxonomy.Version{}, 0, codec.ErrInvalidData
	}
	if payload[0] != codec.TypePingResp {
		return taxonomy.Version{}, 0, codec.ErrInvalidHeader
	}
	body := payload[1:9]
	crc := uint16(payload[9]) | uint16(payload[10])<<8
	if codec.CRC16(body) != crc {
		return taxonomy.Version{}, 0, codec.ErrInvalidCrc
	}
	version := taxonomy.ParseVersion(uint32(body[2])<<24 | uint32(body[3])<<16 | uint32(body[4])<<8 | uint32(body[5]))
	options := uint16(body[6]) | uint16(body[7])<<8
	return version, options, nil
}
