package engine

import (
	"github.com/pkg/errors"

	"mboot/link"
	"mboot/taxonomy"
)

// GetPropertyResult is the decoded outcome of a GetProperty exchange.
type GetPropertyResult struct {
	Status        taxonomy.StatusCode
	ResponseWords []uint32
	Property      taxonomy.Property
}

// GetProperty queries tag for memoryIndex (an external memory ID or
// internal memory region index) and decodes the response into its typed
// Property form.
func (s *Session) GetProperty(tag taxonomy.PropertyTag, memoryIndex uint32) (GetPropertyResult, error) {
	resp, err := s.getPropertyRaw(tag, memoryIndex)
	if err != nil {
		return GetPropertyResult{}, err
	}
	prop, err := taxonomy.DecodeProperty(tag, resp.Words)
	if err != nil {
		return GetPropertyResult{}, err
	}
	return GetPropertyResult{Status: resp.Status, ResponseWords: resp.Words, Property: prop}, nil
}

// getPropertyRaw performs the exchange without decoding the property,
// used internally by GetProperty and by maxPacketSize.
func (s *Session) getPropertyRaw(tag taxonomy.PropertyTag, memoryIndex uint32) (response, error) {
	if err := s.sendCommand(taxonomy.CmdGetProperty, []uint32{uint32(tag), memoryIndex}, nil); err != nil {
		return response{}, err
	}
	return s.readCommandResponse()
}

// SetProperty sets tag to value.
func (s *Session) SetProperty(tag taxonomy.PropertyTag, value uint32) (taxonomy.StatusCode, error) {
	if err := s.sendCommand(taxonomy.CmdSetProperty, []uint32{uint32(tag), value}, nil); err != nil {
		return 0, err
	}
	resp, err := s.readCommandResponse()
	return resp.Status, err
}

// Reset resets the device. The link may be lost immediately after a
// successful reset; a NoResponse status from the device is not treated
// specially here, matching the device's own reporting.
func (s *Session) Reset() (taxonomy.StatusCode, error) {
	if err := s.sendCommand(taxonomy.CmdReset, nil, nil); err != nil {
		return 0, err
	}
	resp, err := s.readCommandResponse()
	return resp.Status, err
}

// Call invokes the function at startAddress with argument.
func (s *Session) Call(startAddress, argument uint32) (taxonomy.StatusCode, error) {
	if err := s.sendCommand(taxonomy.CmdCall, []uint32{startAddress, argument}, nil); err != nil {
		return 0, err
	}
	resp, err := s.readCommandResponse()
	return resp.Status, err
}

// Execute jumps to startAddress with argument and stack pointer sp.
func (s *Session) Execute(startAddress, argument, sp uint32) (taxonomy.StatusCode, error) {
	if err := s.sendCommand(taxonomy.CmdExecute, []uint32{startAddress, argument, sp}, nil); err != nil {
		return 0, err
	}
	resp, err := s.readCommandResponse()
	return resp.Status, err
}

// FillMemory fills byteCount bytes starting at startAddress with pattern.
func (s *Session) FillMemory(startAddress, byteCount, pattern uint32) (taxonomy.StatusCode, error) {
	if err := s.sendCommand(taxonomy.CmdFillMemory, []uint32{startAddress, byteCount, pattern}, nil); err != nil {
		return 0, err
	}
	resp, err := s.readCommandResponse()
	return resp.Status, err
}

// WriteMemory writes bytes to startAddress in memoryID, chunked by the
// device's reported maximum packet size.
func (s *Session) WriteMemory(startAddress, memoryID uint32, bytes []byte) (taxonomy.StatusCode, error) {
	params := []uint32{startAddress, uint32(len(bytes)), memoryID}
	if err := s.sendCommand(taxonomy.CmdWriteMemory, params, bytes); err != nil {
		return 0, err
	}
	resp, err := s.readCommandResponse()
	return resp.Status, err
}

// ReadMemoryResult is the decoded outcome of a ReadMemory exchange.
type ReadMemoryResult struct {
	Status        taxonomy.StatusCode
	ResponseWords []uint32
	Bytes         []byte
}

// ReadMemory reads byteCount bytes from startAddress in memoryID. A
// MemoryBlankPageReadDisallowed status is accepted alongside Success; every
// other non-success status is an error.
func (s *Session) ReadMemory(startAddress, byteCount, memoryID uint32) (ReadMemoryResult, error) {
	params := []uint32{startAddress, byteCount, memoryID}
	if err := s.sendCommand(taxonomy.CmdReadMemory, params, nil); err != nil {
		return ReadMemoryResult{}, err
	}
	resp, err := s.readCommand()
	if err != nil {
		return ReadMemoryResult{}, err
	}
	if !resp.Status.IsSuccess() && !resp.Status.IsMemoryBlankPageReadDisallowed() {
		return ReadMemoryResult{}, errors.Errorf("mboot: readMemory failed: %s", resp.Status)
	}
	return ReadMemoryResult{
		Status:        resp.Status,
		ResponseWords: []uint32{uint32(len(resp.DataPhase))},
		Bytes:         resp.DataPhase,
	}, nil
}

// ConfigureMemory configures external memory memoryID using the
// configuration block found at address.
func (s *Session) ConfigureMemory(memoryID, address uint32) (taxonomy.StatusCode, error) {
	if err := s.sendCommand(taxonomy.CmdConfigureMemory, []uint32{memoryID, address}, nil); err != nil {
		return 0, err
	}
	resp, err := s.readCommandResponse()
	return resp.Status, err
}

// FlashEraseAll erases all of memoryID's flash.
func (s *Session) FlashEraseAll(memoryID uint32) (taxonomy.StatusCode, error) {
	if err := s.sendCommand(taxonomy.CmdFlashEraseAll, []uint32{memoryID}, nil); err != nil {
		return 0, err
	}
	resp, err := s.readCommandResponse()
	return resp.Status, err
}

// FlashEraseRegion erases byteCount bytes starting at startAddress in
// memoryID.
func (s *Session) FlashEraseRegion(startAddress, byteCount, memoryID uint32) (taxonomy.StatusCode, error) {
	params := []uint32{startAddress, byteCount, memoryID}
	if err := s.sendCommand(taxonomy.CmdFlashEraseRegion, params, nil); err != nil {
		return 0, err
	}
	resp, err := s.readCommandResponse()
	return resp.Status, err
}

// FlashEraseAllUnsecure erases all flash and recovers the flash security
// section, unsecuring the device.
func (s *Session) FlashEraseAllUnsecure() (taxonomy.StatusCode, error) {
	if err := s.sendCommand(taxonomy.CmdFlashEraseAllUnsecure, nil, nil); err != nil {
		return 0, err
	}
	resp, err := s.readCommandResponse()
	return resp.Status, err
}

// ReceiveSBFile streams a Secure Binary file to the device. The device may
// abort the data phase early (e.g. it already holds a newer SB file version
// cached); that AckAbort is tolerated and the final status is still read
// and returned rather than propagated as a failure.
func (s *Session) ReceiveSBFile(bytes []byte) (taxonomy.StatusCode, error) {
	params := []uint32{uint32(len(bytes))}
	err := s.sendCommand(taxonomy.CmdReceiveSBFile, params, bytes)
	if err != nil && !errors.Is(err, link.ErrAckAbort) {
		return 0, err
	}
	resp, err := s.readCommandResponse()
	return resp.Status, err
}

// TrustProvisioning executes a trust-provisioning sub-operation and
// returns its status and response words.
func (s *Session) TrustProvisioning(op taxonomy.TrustProvOperation) (taxonomy.StatusCode, []uint32, error) {
	if err := s.sendCommand(taxonomy.CmdTrustProvisioning, op.ToParams(), nil); err != nil {
		return 0, nil, err
	}
	resp, err := s.readCommandResponse()
	if err != nil {
		return resp.Status, nil, err
	}
	return resp.Status, resp.Words, nil
}

// KeyProvisioningResult is the decoded outcome of a KeyProvisioning
// exchange. Bytes and ResponseWords are only populated for ReadKeyStore.
type KeyProvisioningResult struct {
	Status        taxonomy.StatusCode
	ResponseWords []uint32
	Bytes         []byte
}

// KeyProvisioning executes a key-provisioning sub-operation. ReadKeyStore
// carries an inbound data phase; every other sub-operation's intermediate
// generic response incorrectly reports a data phase, so maskReadDataPhase
// is set around its single exchange to force a no-data interpretation.
func (s *Session) KeyProvisioning(op taxonomy.KeyProvOperation) (KeyProvisioningResult, error) {
	params, data := op.ToParams()

	if op.Kind == taxonomy.KeyProvReadKeyStore {
		if err := s.sendCommand(taxonomy.CmdKeyProvisioning, params, data); err != nil {
			return KeyProvisioningResult{}, err
		}
		resp, err := s.readCommandResponse()
		if err != nil {
			return KeyProvisioningResult{}, err
		}
		return KeyProvisioningResult{Status: resp.Status, ResponseWords: resp.Words, Bytes: resp.DataPhase}, nil
	}

	s.maskReadDataPhase = true
	defer func() { s.maskReadDataPhase = false }()
	err := s.sendCommand(taxonomy.CmdKeyProvisioning, params, data)
	if err != nil {
		return KeyProvisioningResult{}, err
	}
	resp, err := s.readCommandResponse()
	if err != nil {
		return KeyProvisioningResult{}, err
	}
	return KeyProvisioningResult{Status: resp.Status}, nil
}

// FlashReadOnce reads a count-byte value from the OTP/eFuse region
// starting at index. count must be 4.
func (s *Session) FlashReadOnce(index, count uint32) (uint32, error) {
	if err := s.sendCommand(taxonomy.CmdFlashReadOnce, []uint32{index, count}, nil); err != nil {
		return 0, err
	}
	resp, err := s.readCommandResponse()
	if err != nil {
		return 0, err
	}
	if len(resp.Words) == 0 {
		return 0, errors.New("mboot: flashReadOnce: response carried no value")
	}
	return resp.Words[0], nil
}

// FlashProgramOnce programs data into the count-byte OTP/eFuse region
// starting at index. When verify is true, the written bits are read back
// via FlashReadOnce and checked with a bitwise AND (OTP bits only ever
// move from 0 to 1); a failed verification yields StatusOtpVerifyFail
// rather than a Go error, matching the device's own non-fatal reporting
// of the condition.
func (s *Session) FlashProgramOnce(index, count, data uint32, verify bool) (taxonomy.StatusCode, error) {
	if err := s.sendCommand(taxonomy.CmdFlashProgramOnce, []uint32{index, count, data}, nil); err != nil {
		return 0, err
	}
	resp, err := s.readCommandResponse()
	if err != nil {
		return resp.Status, err
	}
	if !verify || !resp.Status.IsSuccess() {
		return resp.Status, nil
	}

	readBack, err := s.FlashReadOnce(index&0xFFFFFF, count)
	if err != nil {
		return 0, err
	}
	if readBack&data == data {
		return resp.Status, nil
	}
	return taxonomy.StatusOtpVerifyFail, nil
}

// FuseRead reads byteCount bytes from the fuse region starting at
// startAddress in memoryID. Like ReadMemory, it accepts a
// MemoryBlankPageReadDisallowed status alongside Success.
func (s *Session) FuseRead(startAddress, byteCount, memoryID uint32) (ReadMemoryResult, error) {
	params := []uint32{startAddress, byteCount, memoryID}
	if err := s.sendCommand(taxonomy.CmdFuseRead, params, nil); err != nil {
		return ReadMemoryResult{}, err
	}
	resp, err := s.readCommand()
	if err != nil {
		return ReadMemoryResult{}, err
	}
	if !resp.Status.IsSuccess() && !resp.Status.IsMemoryBlankPageReadDisallowed() {
		return ReadMemoryResult{}, errors.Errorf("mboot: fuseRead failed: %s", resp.Status)
	}
	return ReadMemoryResult{
		Status:        resp.Status,
		ResponseWords: []uint32{uint32(len(resp.DataPhase))},
		Bytes:         resp.DataPhase,
	}, nil
}

// FuseProgram writes bytes to the fuse region starting at startAddress in
// memoryID. This is a permanent, irreversible operation.
func (s *Session) FuseProgram(startAddress, memoryID uint32, bytes []byte) (taxonomy.StatusCode, error) {
	params := []uint32{startAddress, uint32(len(bytes)), memoryID}
	if err := s.sendCommand(taxonomy.CmdFuseProgram, params, bytes); err != nil {
		return 0, err
	}
	resp, err := s.readCommandResponse()
	return resp.Status, err
}

// LoadImage sends raw image bytes with no wrapping command, used to push
// data directly to a device already expecting it (e.g. after Execute).
// There is no device response to read; success is reported locally.
func (s *Session) LoadImage(bytes []byte) (taxonomy.StatusCode, error) {
	params := []uint32{uint32(len(bytes))}
	if err := s.sendCommand(taxonomy.CmdNoCommand, params, bytes); err != nil {
		return 0, err
	}
	return taxonomy.StatusSuccess, nil
}
