package engine

import (
	"encoding/binary"

	"mboot/codec"
	"mboot/taxonomy"
)

// response is the decoded shape of a CMD-frame response: the command code
// being answered, its final status, the metadata words that followed the
// status word, and any data-phase bytes collected along the way.
type response struct {
	Code      byte
	Status    taxonomy.StatusCode
	Words     []uint32
	DataPhase []byte
}

// decodeResponseHeader splits a CMD frame payload into its code/flag byte
// pair, the fixed-position status word, and the metadata words that follow
// it. Unlike a command header's params, a response's first word is always
// the status rather than application data.
func decodeResponseHeader(payload []byte) (code, flag byte, status taxonomy.StatusCode, words []uint32, err error) {
	if len(payload) < 8 {
		return 0, 0, 0, nil, codec.ErrInvalidData
	}
	code, flag = payload[0], payload[1]
	paramCount := payload[3]
	rest := payload[4:]
	if len(rest)%4 != 0 || len(rest)/4 != int(paramCount) {
		return 0, 0, 0, nil, codec.ErrInvalidData
	}
	status = taxonomy.ParseStatusCode(binary.LittleEndian.Uint32(rest[0:4]))
	tail := rest[4:]
	words = make([]uint32, len(tail)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(tail[i*4 : i*4+4])
	}
	return code, flag, status, words, nil
}
