package taxonomy

import "testing"

func TestParseVersion(t *testing.T) {
	v := ParseVersion(0x00030150)
	if v.Mark != 0x00 || v.Major != 3 || v.Minor != 1 || v.Fix != 0x50 {
		t.Errorf("ParseVersion(0x00030150) = %+v", v)
	}
}

func TestDecodePropertyCurrentVersion(t *testing.T) {
	p, err := DecodeProperty(PropCurrentVersion, []uint32{0x00030150})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Version.Major != 3 || p.Version.Minor != 1 {
		t.Errorf("decoded version = %+v", p.Version)
	}
}

func TestDecodePropertyAvailableCommandsBitmask(t *testing.T) {
	// Bit c-1 set for ReadMemory (code 0x03) and WriteMemory (code 0x04).
	word := uint32(1<<(uint32(CmdReadMemory)-1) | 1<<(uint32(CmdWriteMemory)-1))
	p, err := DecodeProperty(PropAvailableCommands, []uint32{word})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := map[CommandCode]bool{}
	for _, c := range p.Commands {
		found[c] = true
	}
	if !found[CmdReadMemory] || !found[CmdWriteMemory] {
		t.Errorf("decoded commands = %v, want ReadMemory and WriteMemory", p.Commands)
	}
	if found[CmdFillMemory] {
		t.Errorf("decoded commands unexpectedly include FillMemory: %v", p.Commands)
	}
}

func TestDecodePropertyExternalMemoryAttributesFixedPosition(t *testing.T) {
	// Only SizeInKBytes and BlockSize flags set; start/page/sector slots
	// stay populated in the word array but must not be surfaced.
	words := []uint32{
		ExtMemSizeInKBytes | ExtMemBlockSize,
		0xAAAAAAAA, // start_address slot (unused, must be ignored)
		2048,       // size slot
		0xBBBBBBBB, // page slot (unused, must be ignored)
		0xCCCCCCCC, // sector slot (unused, must be ignored)
		64,         // block slot
	}
	p, err := DecodeProperty(PropExternalMemoryAttributes, words)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ExternalMem.StartAddress != nil {
		t.Error("StartAddress should be nil when flag bit is unset")
	}
	if p.ExternalMem.TotalSizeKiB == nil || *p.ExternalMem.TotalSizeKiB != 2048 {
		t.Errorf("TotalSizeKiB = %v, want 2048", p.ExternalMem.TotalSizeKiB)
	}
	if p.ExternalMem.BlockSize == nil || *p.ExternalMem.BlockSize != 64 {
		t.Errorf("BlockSize = %v, want 64", p.ExternalMem.BlockSize)
	}
}

func TestDecodePropertyUnimplementedReturnsError(t *testing.T) {
	if _, err := DecodeProperty(PropFuseLockedStatus, []uint32{0}); err == nil {
		t.Error("expected error for FuseLockedStatus decode")
	}
	if _, err := DecodeProperty(PropLastError, []uint32{0}); err == nil {
		t.Error("expected error for LastError decode")
	}
}

func TestDecodePropertyLifeCycleAndSecurityState(t *testing.T) {
	p, err := DecodeProperty(PropFlashSecurityState, []uint32{0x5AA55AA5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Bool {
		t.Error("FlashSecurityState(0x5AA55AA5) should decode true")
	}
	p2, _ := DecodeProperty(PropFlashSecurityState, []uint32{0x12345678})
	if p2.Bool {
		t.Error("FlashSecurityState(arbitrary) should decode false")
	}
}

func TestParseReservedRegionsRejectsOddLength(t *testing.T) {
	if _, err := ParseReservedRegions([]uint32{1, 2, 3}); err == nil {
		t.Error("expected error for odd-length reserved regions data")
	}
}
