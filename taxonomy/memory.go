package taxonomy

// Memory identifiers accepted by memory-addressed commands (ReadMemory,
// WriteMemory, FlashEraseRegion, ConfigureMemory, FuseRead/Program, ...).
// 0 always means internal memory; non-zero values select an external
// memory device by class.
const (
	MemIDInternal     uint32 = 0
	MemIDQuadSPI0     uint32 = 1
	MemIDIFR          uint32 = 4 // shared with MemIDFuse; only used by the SB loader
	MemIDFuse         uint32 = 4
	MemIDSemcNor      uint32 = 8
	MemIDFlexSPINor   uint32 = 9
	MemIDSpifiNor     uint32 = 10
	MemIDFlashExecOnly uint32 = 16
	MemIDSemcNand     uint32 = 256
	MemIDSpiNand      uint32 = 257
	MemIDSpiNorEeprom uint32 = 272
	MemIDI2CNorEeprom uint32 = 273
	MemIDSDCard       uint32 = 288
	MemIDMMCCard      uint32 = 289
)

// ExtMemPropTag is a bit of the ExternalMemoryAttributes flag word
// indicating which fixed-position word slots are populated.
const (
	ExtMemStartAddress uint32 = 0x00000001
	ExtMemSizeInKBytes uint32 = 0x00000002
	ExtMemPageSize     uint32 = 0x00000004
	ExtMemSectorSize   uint32 = 0x00000008
	ExtMemBlockSize    uint32 = 0x00000010
)

// ReservedRegion is one (start, end) address pair in a device's reserved
// memory map.
type ReservedRegion struct {
	Start, End uint32
}

// ParseReservedRegions decodes pairs of words into reserved regions. The
// slice length must be even.
func ParseReservedRegions(words []uint32) ([]ReservedRegion, error) {
	if len(words)%2 != 0 {
		return nil, errOddReservedRegions
	}
	regions := make([]ReservedRegion, 0, len(words)/2)
	for i := 0; i < len(words); i += 2 {
		regions = append(regions, ReservedRegion{Start: words[i], End: words[i+1]})
	}
	return regions, nil
}

// ExternalMemoryAttributes describes an external memory device's layout.
// Each field is present only if its corresponding flag bit was set in
// words[0]; the word slots are fixed-position regardless of which flags
// are set (words[1]=start, words[2]=size, words[3]=page, words[4]=sector,
// words[5]=block).
type ExternalMemoryAttributes struct {
	StartAddress *uint32
	TotalSizeKiB *uint32
	PageSize     *uint32
	SectorSize   *uint32
	BlockSize    *uint32
}

// ParseExternalMemoryAttributes decodes the fixed-position word layout.
func ParseExternalMemoryAttributes(words []uint32) ExternalMemoryAttributes {
	flags := words[0]
	var attrs ExternalMemoryAttributes
	if flags&ExtMemStartAddress != 0 {
		v := words[1]
		attrs.StartAddress = &v
	}
	if flags&ExtMemSizeInKBytes != 0 {
		v := words[2]
		attrs.TotalSizeKiB = &v
	}
	if flags&ExtMemPageSize != 0 {
		v := words[3]
		attrs.PageSize = &v
	}
	if flags&ExtMemSectorSize != 0 {
		v := words[4]
		attrs.SectorSize = &v
	}
	if flags&ExtMemBlockSize != 0 {
		v := words[5]
		attrs.BlockSize = &v
	}
	return attrs
}
