// Package engine implements the mboot command/response state machine on
// top of a link.Link: it serializes typed commands into parameters and an
// optional data phase, drives that data phase in either direction chunked
// by the device-reported maximum packet size, and reconciles the final
// status into typed results.
package engine

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"mboot/codec"
	"mboot/link"
	"mboot/taxonomy"
)

// Session exclusively owns a Link for its lifetime; callers must not issue
// a second operation before the previous one has returned, since a Session
// keeps no internal locking of its own.
type Session struct {
	link link.Link

	// maskReadDataPhase forces readCommand to ignore the HasDataPhase flag
	// on the next response, used around key-provisioning exchanges whose
	// intermediate generic response incorrectly reports a data phase.
	maskReadDataPhase bool
}

// Open wraps l in a ready Session. It does not ping; OpenUART and OpenI2C
// have already done so when they return.
func Open(l link.Link) *Session {
	logrus.Debugf("session opened on %s", l.Identifier())
	return &Session{link: l}
}

// Close releases the underlying transport.
func (s *Session) Close() error {
	return s.link.Close()
}

// sendCommand serializes code/flag/params into a CMD frame and, when data
// is non-nil, drives the outbound data phase chunked by the device's
// reported MaxPacketSize. NoCommand sends bypass the wrapping command
// frame and its intermediate response entirely.
func (s *Session) sendCommand(code taxonomy.CommandCode, params []uint32, data []byte) error {
	flag := taxonomy.FlagNoData
	if data != nil {
		flag = taxonomy.FlagHasDataPhase
	}
	header := codec.EncodeCommandHeader(codec.CommandHeader{
		Code:       byte(code),
		Flag:       byte(flag),
		ParamCount: byte(len(params)),
		Params:     params,
	})

	if data == nil {
		return s.link.WriteFrame(codec.TypeCmd, header)
	}

	maxPacketSize, err := s.maxPacketSize()
	if err != nil {
		return errors.Wrap(err, "query max packet size")
	}

	if code != taxonomy.CmdNoCommand {
		if err := s.link.WriteFrame(codec.TypeCmd, header); err != nil {
			return err
		}
		if _, err := s.readCommandResponse(); err != nil {
			return errors.Wrap(err, "intermediate response")
		}
	}

	logrus.Debugf("sending data phase: %d bytes in %d-byte chunks", len(data), maxPacketSize)
	for len(data) > 0 {
		n := int(maxPacketSize)
		if n > len(data) || n == 0 {
			n = len(data)
		}
		if err := s.link.WriteFrame(codec.TypeData, data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// maxPacketSize queries PropMaxPacketSize without recursing into a data
// phase of its own.
func (s *Session) maxPacketSize() (uint32, error) {
	resp, err := s.getPropertyRaw(taxonomy.PropMaxPacketSize, 0)
	if err != nil {
		return 0, err
	}
	if len(resp.Words) == 0 {
		return 0, codec.ErrInvalidData
	}
	return resp.Words[0], nil
}

// readCommand reads one CMD-frame response, driving the inbound data phase
// when the response declares one. maskReadDataPhase forces a NoData
// interpretation regardless of the wire flag.
func (s *Session) readCommand() (response, error) {
	payload, err := s.link.ReadFrame(codec.TypeCmd)
	if err != nil {
		return response{}, err
	}
	code, flag, status, words, err := decodeResponseHeader(payload)
	if err != nil {
		return response{}, err
	}

	if s.maskReadDataPhase || flag == byte(taxonomy.FlagNoData) {
		return response{Code: code, Status: status, Words: words}, nil
	}

	if len(words) == 0 {
		return response{}, codec.ErrInvalidData
	}
	length := words[0]

	var dataPhase []byte
	for uint32(len(dataPhase)) != length {
		chunk, err := s.link.ReadFrame(codec.TypeData)
		if err != nil {
			if errors.Is(err, codec.ErrAborted) {
				break
			}
			return response{}, err
		}
		if len(chunk) == 0 {
			break
		}
		dataPhase = append(dataPhase, chunk...)
	}

	finalPayload, err := s.link.ReadFrame(codec.TypeCmd)
	if err != nil {
		return response{}, err
	}
	_, _, finalStatus, _, err := decodeResponseHeader(finalPayload)
	if err != nil {
		return response{}, err
	}

	return response{Code: code, Status: finalStatus, Words: words, DataPhase: dataPhase}, nil
}

// readCommandResponse reads a response and converts a non-success status
// into an error, mirroring how every operation but readMemory/fuseRead
// treats the status.
func (s *Session) readCommandResponse() (response, error) {
	resp, err := s.readCommand()
	if err != nil {
		return response{}, err
	}
	if !resp.Status.IsSuccess() {
		return resp, errors.Errorf("mboot: command 0x%02X failed: %s", resp.Code, resp.Status)
	}
	return resp, nil
}
