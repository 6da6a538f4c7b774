package link

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"mboot/codec"
	"mboot/taxonomy"
)

const defaultI2CSlave = 0x10

// i2cConn is the raw byte conduit an I2C link drives; OpenI2C supplies the
// platform-specific implementation (ioctl-based on Unix, unsupported
// elsewhere).
type i2cConn interface {
	io.ReadWriteCloser
}

// I2CLink drives the same ACK-class byte-stream framing as UART, but
// treats a 0x00 byte or any other non-start byte during ACK reads as
// "device busy" rather than a protocol error, polling until Timeout.
type I2CLink struct {
	conn     i2cConn
	r        *bufio.Reader
	timeout  time.Duration
	interval time.Duration
	ident    string
}

// parseI2CIdentifier splits "path[:slave]" into a bus path and a 7-bit
// slave address, defaulting to 0x10 when no address is given.
func parseI2CIdentifier(identifier string) (path string, slave uint8, err error) {
	parts := strings.SplitN(identifier, ":", 2)
	path = parts[0]
	if len(parts) == 1 {
		return path, defaultI2CSlave, nil
	}
	v, err := strconv.ParseUint(parts[1], 0, 8)
	if err != nil {
		return "", 0, errors.Wrapf(codec.ErrInvalidData, "i2c: bad slave address %q", parts[1])
	}
	return path, uint8(v), nil
}

func newI2CLink(conn i2cConn, ident string) *I2CLink {
	return &I2CLink{
		conn:     conn,
		r:        bufio.NewReader(conn),
		timeout:  5 * time.Second,
		interval: time.Millisecond,
		ident:    ident,
	}
}

func (l *I2CLink) Identifier() string            { return l.ident }
func (l *I2CLink) Timeout() time.Duration         { return l.timeout }
func (l *I2CLink) PollingInterval() time.Duration { return l.interval }
func (l *I2CLink) Close() error                   { return l.conn.Close() }

func (l *I2CLink) WriteFrame(frameType byte, payload []byte) error {
	frame := codec.ConstructFrame(frameType, payload)
	if _, err := l.conn.Write(frame); err != nil {
		return errors.Wrap(ErrIOError, err.Error())
	}
	return l.readAck()
}

// readAck polls for the device's ACK-class reply, treating 0x00 and any
// other non-start byte as "busy, keep polling" until Timeout elapses.
func (l *I2CLink) readAck() error {
	deadline := time.Now().Add(l.timeout)
	for {
		b, err := l.r.ReadByte()
		if err != nil {
			return errors.Wrap(ErrIOError, err.Error())
		}
		if b != codec.StartByte {
			if time.Now().After(deadline) {
				return ErrTimeout
			}
			time.Sleep(l.interval)
			continue
		}
		kind, err := l.r.ReadByte()
		if err != nil {
			return errors.Wrap(ErrIOError, err.Error())
		}
		switch kind {
		case codec.TypeAck:
			return nil
		case codec.TypeNack:
			return ErrNACKSent
		case codec.TypeAckAbort:
			return ErrAckAbort
		default:
			if time.Now().After(deadline) {
				return ErrTimeout
			}
			time.Sleep(l.interval)
		}
	}
}

func (l *I2CLink) sendAck(kind byte) error {
	if _, err := l.conn.Write([]byte{codec.StartByte, kind}); err != nil {
		return errors.Wrap(ErrIOError, err.Error())
	}
	return nil
}

func (l *I2CLink) ReadFrame(expectedType byte) ([]byte, error) {
	start, err := l.r.ReadByte()
	if err != nil {
		return nil, errors.Wrap(ErrIOError, err.Error())
	}
	if start != codec.StartByte {
		return nil, errors.Wrap(codec.ErrInvalidHeader, "i2c: frame missing start byte")
	}
	frameType, err := l.r.ReadByte()
	if err != nil {
		return nil, errors.Wrap(ErrIOError, err.Error())
	}
	if frameType != expectedType {
		return nil, ErrUnexpectedFrameType
	}
	header := make([]byte, 4)
	for i := range header {
		header[i], err = l.r.ReadByte()
		if err != nil {
			return nil, errors.Wrap(ErrIOError, err.Error())
		}
	}
	length := int(header[0]) | int(header[1])<<8
	crc := uint16(header[2]) | uint16(header[3])<<8

	payload := make([]byte, length)
	for i := range payload {
		payload[i], err = l.r.ReadByte()
		if err != nil {
			return nil, errors.Wrap(ErrIOError, err.Error())
		}
	}

	if length == 0 && frameType == codec.TypeCmd {
		l.sendAck(codec.TypeAck)
		return nil, codec.ErrAborted
	}
	if err := codec.VerifyCRC(frameType, payload, crc); err != nil {
		l.sendAck(codec.TypeNack)
		return nil, err
	}
	if err := l.sendAck(codec.TypeAck); err != nil {
		return nil, err
	}
	return payload, nil
}

func (l *I2CLink) Ping() (taxonomy.Version, uint16, error) {
	if _, err := l.conn.Write([]byte{codec.StartByte, codec.TypePing}); err != nil {
		return taxonomy.Version{}, 0, errors.Wrap(ErrIOError, err.Error())
	}
	return performPing(l.r)
}
