// Package link implements the transport layer beneath the mboot command
// engine: UART, I2C and USB-HID variants of the same frame-level contract.
// A Link owns exactly one physical connection; callers are responsible for
// never issuing a second command before the first has completed, since
// a Link keeps no internal queueing or locking of its own.
package link

import (
	"time"

	"github.com/pkg/errors"

	"mboot/taxonomy"
)

// Link is the contract the command engine drives every transport through.
// Implementations translate their wire quirks (ACK polling, HID report
// wrapping, UART dummy bytes) into this uniform shape.
type Link interface {
	// WriteFrame sends a complete CMD, DATA or PING frame.
	WriteFrame(frameType byte, payload []byte) error

	// ReadFrame blocks for the next frame and returns its payload. A
	// zero-length CMD frame is reported as codec.ErrAborted, and a frame
	// of a type other than expectedType as ErrUnexpectedFrameType.
	ReadFrame(expectedType byte) ([]byte, error)

	// Ping performs the handshake described in the protocol's ping
	// exchange and returns the device's reported version and options.
	Ping() (taxonomy.Version, uint16, error)

	// Identifier names the underlying connection (device path, bus
	// address, HID path) for logging.
	Identifier() string

	Timeout() time.Duration
	PollingInterval() time.Duration

	Close() error
}

// Errors every Link implementation returns in place of Go's usual io
// sentinels, matching the taxonomy the protocol documents for
// communication failures.
var (
	ErrNACKSent            = errors.New("link: device sent NACK")
	ErrAckAbort            = errors.New("link: device sent ACK_ABORT")
	ErrTimeout             = errors.New("link: operation timed out")
	ErrIOError             = errors.New("link: I/O error")
	ErrUnsupportedPlatform = errors.New("link: transport not supported on this platform")
	ErrUnexpectedFrameType = errors.New("link: unexpected frame type")
)
