package codec

import "encoding/binary"

// CommandHeader is the payload layout shared by CMD-type frames in both
// directions: a command/response code, a data-phase flag, a reserved byte,
// and a parameter count followed by that many little-endian u32 params.
type CommandHeader struct {
	Code       byte
	Flag       byte
	ParamCount byte
	Params     []uint32
}

// EncodeCommandHeader serializes h into a CMD frame payload.
func EncodeCommandHeader(h CommandHeader) []byte {
	out := make([]byte, 4, 4+4*len(h.Params))
	out[0] = h.Code
	out[1] = h.Flag
	out[2] = 0
	out[3] = byte(len(h.Params))
	for _, p := range h.Params {
		out = binary.LittleEndian.AppendUint32(out, p)
	}
	return out
}

// DecodeCommandHeader parses a CMD frame payload into a CommandHeader. It
// rejects a payload whose trailing bytes don't divide evenly into u32 params
// or whose count disagrees with the declared ParamCount byte.
func DecodeCommandHeader(payload []byte) (CommandHeader, error) {
	if len(payload) < 4 {
		return CommandHeader{}, ErrInvalidData
	}
	h := CommandHeader{Code: payload[0], Flag: payload[1], ParamCount: payload[3]}
	rest := payload[4:]
	if len(rest)%4 != 0 {
		return CommandHeader{}, ErrInvalidData
	}
	if len(rest)/4 != int(h.ParamCount) {
		return CommandHeader{}, ErrInvalidData
	}
	h.Params = make([]uint32, h.ParamCount)
	for i := range h.Params {
		h.Params[i] = binary.LittleEndian.Uint32(rest[i*4 : i*4+4])
	}
	return h, nil
}
