package link

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"mboot/codec"
	"mboot/taxonomy"
)

// byteSource is the minimal read primitive every transport's ping exchange
// is built on top of.
type byteSource interface {
	ReadByte() (byte, error)
}

// performPing runs the shared ping handshake: it assumes the PING frame has
// already been written, then scans for the start byte, the PINGR packet
// type, the 8-byte version/options body and its trailing CRC.
func performPing(r byteSource) (taxonomy.Version, uint16, error) {
	found := false
	for i := 0; i < codec.MaxPingDummy; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return taxonomy.Version{}, 0, errors.Wrap(ErrIOError, err.Error())
		}
		if b == codec.StartByte {
			found = true
			break
		}
	}
	if !found {
		return taxonomy.Version{}, 0, errors.Wrap(codec.ErrInvalidHeader, "ping: no start byte within dummy window")
	}

	kind, err := r.ReadByte()
	if err != nil {
		return taxonomy.Version{}, 0, errors.Wrap(ErrIOError, err.Error())
	}
	if kind != codec.TypePingResp {
		return taxonomy.Version{}, 0, errors.Wrap(codec.ErrInvalidHeader, "ping: expected PINGR packet type")
	}

	body := make([]byte, 8)
	for i := range body {
		b, err := r.ReadByte()
		if err != nil {
			return taxonomy.Version{}, 0, errors.Wrap(ErrIOError, err.Error())
		}
		body[i] = b
	}
	crcBytes := make([]byte, 2)
	for i := range crcBytes {
		b, err := r.ReadByte()
		if err != nil {
			return taxonomy.Version{}, 0, errors.Wrap(ErrIOError, err.Error())
		}
		crcBytes[i] = b
	}

	wantCRC := binary.LittleEndian.Uint16(crcBytes)
	if codec.CRC16(body) != wantCRC {
		return taxonomy.Version{}, 0, codec.ErrInvalidCrc
	}

	version := taxonomy.ParseVersion(binary.BigEndian.Uint32(body[2:6]))
	options := binary.LittleEndian.Uint16(body[6:8])
	return version, options, nil
}
