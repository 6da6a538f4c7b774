package engine_test

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"mboot/codec"
	"mboot/engine"
	"mboot/link"
	"mboot/taxonomy"
)

// scriptedLink is a link.Link whose reads are served from a fixed queue and
// whose writes are recorded for later inspection, letting each engine test
// assert exactly which frames a Session emits without a real transport.
type scriptedLink struct {
	writes    []writtenFrame
	writeErrs []error
	reads     []scriptedRead
}

type writtenFrame struct {
	Type    byte
	Payload []byte
}

type scriptedRead struct {
	Payload []byte
	Err     error
}

func (l *scriptedLink) WriteFrame(frameType byte, payload []byte) error {
	cp := append([]byte{}, payload...)
	l.writes = append(l.writes, writtenFrame{Type: frameType, Payload: cp})
	if len(l.writeErrs) > 0 {
		err := l.writeErrs[0]
		l.writeErrs = l.writeErrs[1:]
		return err
	}
	return nil
}

func (l *scriptedLink) ReadFrame(expectedType byte) ([]byte, error) {
	if len(l.reads) == 0 {
		panic("scriptedLink: ReadFrame called with no scripted reads remaining")
	}
	r := l.reads[0]
	l.reads = l.reads[1:]
	return r.Payload, r.Err
}

func (l *scriptedLink) Ping() (taxonomy.Version, uint16, error) { return taxonomy.Version{}, 0, nil }
func (l *scriptedLink) Identifier() string                      { return "scripted" }
func (l *scriptedLink) Timeout() time.Duration                  { return time.Second }
func (l *scriptedLink) PollingInterval() time.Duration          { return time.Millisecond }
func (l *scriptedLink) Close() error                            { return nil }

var _ link.Link = (*scriptedLink)(nil)

// responsePayload builds a CMD-frame response payload: code, flag byte,
// reserved, paramCount, then the little-endian params (params[0] is always
// the status word, matching the response header layout).
func responsePayload(code taxonomy.CommandCode, flag taxonomy.CommandFlag, params ...uint32) []byte {
	out := make([]byte, 4, 4+4*len(params))
	out[0] = byte(code)
	out[1] = byte(flag)
	out[3] = byte(len(params))
	for _, p := range params {
		out = binary.LittleEndian.AppendUint32(out, p)
	}
	return out
}

func TestGetPropertyDecodesCurrentVersion(t *testing.T) {
	l := &scriptedLink{reads: []scriptedRead{
		{Payload: responsePayload(taxonomy.CmdGetProperty, taxonomy.FlagNoData, uint32(taxonomy.StatusSuccess), 0x00030150)},
	}}
	s := engine.Open(l)

	result, err := s.GetProperty(taxonomy.PropCurrentVersion, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Property.Version.Major != 3 || result.Property.Version.Minor != 1 || result.Property.Version.Fix != 0x50 {
		t.Errorf("decoded version = %+v", result.Property.Version)
	}

	wantHeader := codec.EncodeCommandHeader(codec.CommandHeader{
		Code: byte(taxonomy.CmdGetProperty), Flag: byte(taxonomy.FlagNoData), ParamCount: 2,
		Params: []uint32{uint32(taxonomy.PropCurrentVersion), 0},
	})
	if len(l.writes) != 1 || !bytes.Equal(l.writes[0].Payload, wantHeader) {
		t.Errorf("written = %+v, want single header % X", l.writes, wantHeader)
	}
}

func TestWriteMemoryChunksByMaxPacketSize(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	l := &scriptedLink{reads: []scriptedRead{
		{Payload: responsePayload(taxonomy.CmdGetProperty, taxonomy.FlagNoData, uint32(taxonomy.StatusSuccess), 4)},
		{Payload: responsePayload(taxonomy.CmdWriteMemory, taxonomy.FlagNoData, uint32(taxonomy.StatusSuccess))},
		{Payload: responsePayload(taxonomy.CmdWriteMemory, taxonomy.FlagNoData, uint32(taxonomy.StatusSuccess))},
	}}
	s := engine.Open(l)

	status, err := s.WriteMemory(0x1000, taxonomy.MemIDInternal, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != taxonomy.StatusSuccess {
		t.Errorf("status = %v, want Success", status)
	}

	var dataWrites []writtenFrame
	for _, w := range l.writes {
		if w.Type == codec.TypeData {
			dataWrites = append(dataWrites, w)
		}
	}
	if len(dataWrites) != 3 {
		t.Fatalf("data frames = %d, want 3 (ceil(10/4))", len(dataWrites))
	}
	var reassembled []byte
	for i, w := range dataWrites {
		if i < 2 && len(w.Payload) != 4 {
			t.Errorf("chunk %d length = %d, want 4", i, len(w.Payload))
		}
		reassembled = append(reassembled, w.Payload...)
	}
	if !bytes.Equal(reassembled, data) {
		t.Errorf("reassembled = % X, want % X", reassembled, data)
	}
}

func TestWriteMemoryPropagatesNACKWithoutDataFrames(t *testing.T) {
	l := &scriptedLink{
		reads: []scriptedRead{
			{Payload: responsePayload(taxonomy.CmdGetProperty, taxonomy.FlagNoData, uint32(taxonomy.StatusSuccess), 4)},
		},
		writeErrs: []error{nil, link.ErrNACKSent},
	}
	s := engine.Open(l)

	if _, err := s.WriteMemory(0, taxonomy.MemIDInternal, []byte{1, 2, 3, 4, 5}); err != link.ErrNACKSent {
		t.Errorf("err = %v, want ErrNACKSent", err)
	}
	for _, w := range l.writes {
		if w.Type == codec.TypeData {
			t.Errorf("unexpected DATA frame written after NACK: %+v", w)
		}
	}
}

func TestReadMemoryCollectsDataPhase(t *testing.T) {
	l := &scriptedLink{reads: []scriptedRead{
		{Payload: responsePayload(taxonomy.CmdReadMemory, taxonomy.FlagHasDataPhase, uint32(taxonomy.StatusSuccess), 3)},
		{Payload: []byte{0x12, 0x34, 0x56}},
		{Payload: responsePayload(taxonomy.CmdReadMemory, taxonomy.FlagNoData, uint32(taxonomy.StatusSuccess))},
	}}
	s := engine.Open(l)

	result, err := s.ReadMemory(0, 3, taxonomy.MemIDInternal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(result.Bytes, []byte{0x12, 0x34, 0x56}) {
		t.Errorf("bytes = % X, want 12 34 56", result.Bytes)
	}
	if result.Status != taxonomy.StatusSuccess {
		t.Errorf("status = %v, want Success", result.Status)
	}
}

func TestReadMemoryStopsOnZeroLengthChunk(t *testing.T) {
	l := &scriptedLink{reads: []scriptedRead{
		{Payload: responsePayload(taxonomy.CmdReadMemory, taxonomy.FlagHasDataPhase, uint32(taxonomy.StatusSuccess), 5)},
		{Payload: []byte{0x01, 0x02}},
		{Payload: []byte{}},
		{Payload: responsePayload(taxonomy.CmdReadMemory, taxonomy.FlagNoData, uint32(taxonomy.StatusSuccess))},
	}}
	s := engine.Open(l)

	result, err := s.ReadMemory(0, 5, taxonomy.MemIDInternal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(result.Bytes, []byte{0x01, 0x02}) {
		t.Errorf("bytes = % X, want partial 01 02 after early stop", result.Bytes)
	}
}

func TestReadMemoryAcceptsBlankPageStatus(t *testing.T) {
	l := &scriptedLink{reads: []scriptedRead{
		{Payload: responsePayload(taxonomy.CmdReadMemory, taxonomy.FlagHasDataPhase, uint32(taxonomy.StatusSuccess), 2)},
		{Payload: []byte{0xFF, 0xFF}},
		{Payload: responsePayload(taxonomy.CmdReadMemory, taxonomy.FlagNoData, uint32(taxonomy.StatusMemoryBlankPageReadDisallowed))},
	}}
	s := engine.Open(l)

	result, err := s.ReadMemory(0, 2, taxonomy.MemIDInternal)
	if err != nil {
		t.Fatalf("unexpected error for blank-page status: %v", err)
	}
	if result.Status != taxonomy.StatusMemoryBlankPageReadDisallowed {
		t.Errorf("status = %v, want MemoryBlankPageReadDisallowed", result.Status)
	}
}

func TestKeyProvisioningMasksIncorrectDataPhaseFlag(t *testing.T) {
	// The device's intermediate response for SetKey incorrectly reports
	// HasDataPhase; maskReadDataPhase must force a no-data interpretation
	// so the engine doesn't block trying to read DATA frames that never
	// arrive.
	l := &scriptedLink{reads: []scriptedRead{
		{Payload: responsePayload(taxonomy.CmdKeyProvisioning, taxonomy.FlagHasDataPhase, uint32(taxonomy.StatusSuccess))},
	}}
	s := engine.Open(l)

	result, err := s.KeyProvisioning(taxonomy.KeyProvOperation{Kind: taxonomy.KeyProvSetKey, KeyType: taxonomy.KeyUserKek, KeySize: 32})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != taxonomy.StatusSuccess {
		t.Errorf("status = %v, want Success", result.Status)
	}
}

func TestKeyProvisioningReadKeyStoreCollectsDataPhase(t *testing.T) {
	l := &scriptedLink{reads: []scriptedRead{
		{Payload: responsePayload(taxonomy.CmdKeyProvisioning, taxonomy.FlagHasDataPhase, uint32(taxonomy.StatusSuccess), 4)},
		{Payload: []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		{Payload: responsePayload(taxonomy.CmdKeyProvisioning, taxonomy.FlagNoData, uint32(taxonomy.StatusSuccess))},
	}}
	s := engine.Open(l)

	result, err := s.KeyProvisioning(taxonomy.KeyProvOperation{Kind: taxonomy.KeyProvReadKeyStore})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(result.Bytes, []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Errorf("bytes = % X, want DE AD BE EF", result.Bytes)
	}
}

func TestFlashProgramOnceVerifyFailureYieldsOtpVerifyFail(t *testing.T) {
	l := &scriptedLink{reads: []scriptedRead{
		{Payload: responsePayload(taxonomy.CmdFlashProgramOnce, taxonomy.FlagNoData, uint32(taxonomy.StatusSuccess))},
		{Payload: responsePayload(taxonomy.CmdFlashReadOnce, taxonomy.FlagNoData, uint32(taxonomy.StatusSuccess), 0x12340678)},
	}}
	s := engine.Open(l)

	status, err := s.FlashProgramOnce(0x51, 4, 0x12345678, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != taxonomy.StatusOtpVerifyFail {
		t.Errorf("status = %v, want OtpVerifyFail", status)
	}
}

func TestFlashProgramOnceVerifySuccess(t *testing.T) {
	l := &scriptedLink{reads: []scriptedRead{
		{Payload: responsePayload(taxonomy.CmdFlashProgramOnce, taxonomy.FlagNoData, uint32(taxonomy.StatusSuccess))},
		{Payload: responsePayload(taxonomy.CmdFlashReadOnce, taxonomy.FlagNoData, uint32(taxonomy.StatusSuccess), 0xFFFFFFFF)},
	}}
	s := engine.Open(l)

	status, err := s.FlashProgramOnce(0x51, 4, 0x12345678, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != taxonomy.StatusSuccess {
		t.Errorf("status = %v, want Success", status)
	}
}

func TestReceiveSBFileTreatsAckAbortAsNonFatal(t *testing.T) {
	l := &scriptedLink{
		reads: []scriptedRead{
			{Payload: responsePayload(taxonomy.CmdGetProperty, taxonomy.FlagNoData, uint32(taxonomy.StatusSuccess), 4)},
			{Payload: responsePayload(taxonomy.CmdReceiveSBFile, taxonomy.FlagNoData, uint32(taxonomy.StatusSuccess))},
			{Payload: responsePayload(taxonomy.CmdReceiveSBFile, taxonomy.FlagNoData, uint32(taxonomy.StatusSuccess))},
		},
		writeErrs: []error{nil, nil, link.ErrAckAbort},
	}
	s := engine.Open(l)

	status, err := s.ReceiveSBFile([]byte{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != taxonomy.StatusSuccess {
		t.Errorf("status = %v, want Success", status)
	}
}
