package link

import (
	"bufio"
	"time"

	"github.com/pkg/errors"

	"mboot/codec"
	"mboot/host/serial"
	"mboot/taxonomy"
)

// UARTLink drives the byte-stream framing used over a serial connection:
// every frame the host writes is followed by a single ACK-class byte pair
// from the device, and every frame the host reads is followed by one the
// host must emit itself.
type UARTLink struct {
	port     serial.Port
	r        *bufio.Reader
	timeout  time.Duration
	interval time.Duration
	device   string
}

// OpenUART opens device at baud and performs the ping handshake.
func OpenUART(device string, baud int) (*UARTLink, error) {
	cfg := serial.DefaultConfig(device)
	if baud > 0 {
		cfg.Baud = baud
	}
	port, err := serial.Open(cfg)
	if err != nil {
		return nil, errors.Wrapf(ErrIOError, "open %s: %v", device, err)
	}
	l := &UARTLink{
		port:     port,
		r:        bufio.NewReader(port),
		timeout:  time.Duration(cfg.ReadTimeout) * time.Millisecond,
		interval: time.Millisecond,
		device:   device,
	}
	if _, _, err := l.Ping(); err != nil {
		port.Close()
		return nil, err
	}
	return l, nil
}

func (l *UARTLink) Identifier() string         { return l.device }
func (l *UARTLink) Timeout() time.Duration      { return l.timeout }
func (l *UARTLink) PollingInterval() time.Duration { return l.interval }

func (l *UARTLink) Close() error { return l.port.Close() }

// WriteFrame writes a full frame and consumes the device's ACK-class reply.
func (l *UARTLink) WriteFrame(frameType byte, payload []byte) error {
	frame := codec.ConstructFrame(frameType, payload)
	if _, err := l.port.Write(frame); err != nil {
		return errors.Wrap(ErrIOError, err.Error())
	}
	return l.readAck()
}

// readAck reads the two-byte ACK-class reply that follows every write.
func (l *UARTLink) readAck() error {
	start, err := l.r.ReadByte()
	if err != nil {
		return errors.Wrap(ErrIOError, err.Error())
	}
	if start != codec.StartByte {
		return errors.Wrap(codec.ErrInvalidHeader, "uart: ack missing start byte")
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
		return errors.Wrap(codec.ErrInvalidHeader, "uart: unrecognized ack kind")
	}
}

// sendAck emits the host-side acknowledgment for a frame just read.
func (l *UARTLink) sendAck(kind byte) error {
	if _, err := l.port.Write([]byte{codec.StartByte, kind}); err != nil {
		return errors.Wrap(ErrIOError, err.Error())
	}
	return nil
}

// ReadFrame reads one frame of expectedType, acknowledging it immediately
// after its body is read and before the CRC is checked against it, matching
// the on-wire ordering of ack-then-validate.
func (l *UARTLink) ReadFrame(expectedType byte) ([]byte, error) {
	start, err := l.r.ReadByte()
	if err != nil {
		return nil, errors.Wrap(ErrIOError, err.Error())
	}
	if start != codec.StartByte {
		return nil, errors.Wrap(codec.ErrInvalidHeader, "uart: frame missing start byte")
	}
	frameType, err := l.r.ReadByte()
	if err != nil {
		return nil, errors.Wrap(ErrIOError, err.Error())
	}
	if frameType != expectedType {
		return nil, ErrUnexpectedFrameType
	}
	lenLo, err := l.r.ReadByte()
	if err != nil {
		return nil, errors.Wrap(ErrIOError, err.Error())
	}
	lenHi, err := l.r.ReadByte()
	if err != nil {
		return nil, errors.Wrap(ErrIOError, err.Error())
	}
	length := int(lenLo) | int(lenHi)<<8

	crcLo, err := l.r.ReadByte()
	if err != nil {
		return nil, errors.Wrap(ErrIOError, err.Error())
	}
	crcHi, err := l.r.ReadByte()
	if err != nil {
		return nil, errors.Wrap(ErrIOError, err.Error())
	}
	crc := uint16(crcLo) | uint16(crcHi)<<8

	payload := make([]byte, length)
	for i := range payload {
		b, err := l.r.ReadByte()
		if err != nil {
			return nil, errors.Wrap(ErrIOError, err.Error())
		}
		payload[i] = b
	}

	if length == 0 && frameType == codec.TypeCmd {
		l.sendAck(codec.TypeAck)
		return nil, codec.ErrAborted
	}

	if err := l.sendAck(codec.TypeAck); err != nil {
		return nil, err
	}
	if err := codec.VerifyCRC(frameType, payload, crc); err != nil {
		return nil, err
	}
	return payload, nil
}

func (l *UARTLink) Ping() (taxonomy.Version, uint16, error) {
	if _, err := l.port.Write([]byte{codec.StartByte, codec.TypePing}); err != nil {
		return taxonomy.Version{}, 0, errors.Wrap(ErrIOError, err.Error())
	}
	return performPing(l.r)
}
