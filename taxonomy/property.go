package taxonomy

import "fmt"

// PropertyTag identifies a queryable/settable device property.
type PropertyTag uint8

const (
	PropCurrentVersion           PropertyTag = 0x01
	PropAvailablePeripherals     PropertyTag = 0x02
	PropFlashStartAddress        PropertyTag = 0x03
	PropFlashSize                PropertyTag = 0x04
	PropFlashSectorSize          PropertyTag = 0x05
	PropFlashBlockCount          PropertyTag = 0x06
	PropAvailableCommands        PropertyTag = 0x07
	PropCRCCheckStatus           PropertyTag = 0x08
	PropLastError                PropertyTag = 0x09
	PropVerifyWrites             PropertyTag = 0x0A
	PropMaxPacketSize            PropertyTag = 0x0B
	PropReservedRegions          PropertyTag = 0x0C
	PropValidateRegions          PropertyTag = 0x0D
	PropRAMStartAddress          PropertyTag = 0x0E
	PropRAMSize                  PropertyTag = 0x0F
	PropSystemDeviceId           PropertyTag = 0x10
	PropFlashSecurityState       PropertyTag = 0x11
	PropUniqueDeviceId           PropertyTag = 0x12
	PropFlashFacSupport          PropertyTag = 0x13
	PropFlashAccessSegmentSize   PropertyTag = 0x14
	PropFlashAccessSegmentCount  PropertyTag = 0x15
	PropFlashReadMargin          PropertyTag = 0x16
	PropQSPIInitStatus           PropertyTag = 0x17
	PropTargetVersion            PropertyTag = 0x18
	PropExternalMemoryAttributes PropertyTag = 0x19
	PropReliableUpdateStatus     PropertyTag = 0x1A
	PropFlashPageSize            PropertyTag = 0x1B
	PropIrqNotifierPin           PropertyTag = 0x1C
	PropPFRKeystoreUpdateOpt     PropertyTag = 0x1D
	PropByteWriteTimeoutMs       PropertyTag = 0x1E
	PropFuseLockedStatus         PropertyTag = 0x1F
	PropBootStatusRegister       PropertyTag = 0x20
	PropFirmwareVersion          PropertyTag = 0x21
	PropFuseProgramVoltage       PropertyTag = 0x22
	PropVerifyErase              PropertyTag = 0x23
	PropSHEFlashPartition        PropertyTag = 0x24
	PropSHEBootMode              PropertyTag = 0x25
	PropLifeCycleState           PropertyTag = 0x26
)

var propertyNames = map[PropertyTag]string{
	PropCurrentVersion:           "CurrentVersion",
	PropAvailablePeripherals:     "AvailablePeripherals",
	PropFlashStartAddress:        "FlashStartAddress",
	PropFlashSize:                "FlashSize",
	PropFlashSectorSize:          "FlashSectorSize",
	PropFlashBlockCount:          "FlashBlockCount",
	PropAvailableCommands:        "AvailableCommands",
	PropCRCCheckStatus:           "CRCCheckStatus",
	PropLastError:                "LastError",
	PropVerifyWrites:             "VerifyWrites",
	PropMaxPacketSize:            "MaxPacketSize",
	PropReservedRegions:          "ReservedRegions",
	PropValidateRegions:          "ValidateRegions",
	PropRAMStartAddress:          "RAMStartAddress",
	PropRAMSize:                  "RAMSize",
	PropSystemDeviceId:           "SystemDeviceId",
	PropFlashSecurityState:       "FlashSecurityState",
	PropUniqueDeviceId:           "UniqueDeviceId",
	PropFlashFacSupport:          "FlashFacSupport",
	PropFlashAccessSegmentSize:   "FlashAccessSegmentSize",
	PropFlashAccessSegmentCount:  "FlashAccessSegmentCount",
	PropFlashReadMargin:          "FlashReadMargin",
	PropQSPIInitStatus:           "QSPIInitStatus",
	PropTargetVersion:            "TargetVersion",
	PropExternalMemoryAttributes: "ExternalMemoryAttributes",
	PropReliableUpdateStatus:     "ReliableUpdateStatus",
	PropFlashPageSize:            "FlashPageSize",
	PropIrqNotifierPin:           "IrqNotifierPin",
	PropPFRKeystoreUpdateOpt:     "PFRKeystoreUpdateOpt",
	PropByteWriteTimeoutMs:       "ByteWriteTimeoutMs",
	PropFuseLockedStatus:         "FuseLockedStatus",
	PropBootStatusRegister:       "BootStatusRegister",
	PropFirmwareVersion:          "FirmwareVersion",
	PropFuseProgramVoltage:       "FuseProgramVoltage",
	PropVerifyErase:              "VerifyErase",
	PropSHEFlashPartition:        "SHEFlashPartition",
	PropSHEBootMode:              "SHEBootMode",
	PropLifeCycleState:           "LifeCycleState",
}

func (p PropertyTag) String() string {
	if name, ok := propertyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PropertyTag(0x%02X)", uint8(p))
}

// Version is the bootloader version packed into a big-endian u32: mark
// character, major, minor, fixation.
type Version struct {
	Mark              byte
	Major, Minor, Fix uint8
}

func (v Version) String() string {
	return fmt.Sprintf("%c%d.%d.%d", v.Mark, v.Major, v.Minor, v.Fix)
}

// ParseVersion extracts the four big-endian bytes of a packed version word.
func ParseVersion(word uint32) Version {
	b := [4]byte{byte(word >> 24), byte(word >> 16), byte(word >> 8), byte(word)}
	return Version{Mark: b[0], Major: b[1], Minor: b[2], Fix: b[3]}
}

// IrqNotifierPin decodes PropIrqNotifierPin.
type IrqNotifierPin struct {
	Pin, Port uint8
	Enabled   bool
}

func ParseIrqNotifierPin(word uint32) IrqNotifierPin {
	return IrqNotifierPin{
		Pin:     uint8(word & 0xFF),
		Port:    uint8((word >> 8) & 0xFF),
		Enabled: word&(1<<31) != 0,
	}
}

// PfrKeystoreUpdateOpt selects how a PFR keystore update is delivered.
type PfrKeystoreUpdateOpt uint32

const (
	PfrKeyProvisioning PfrKeystoreUpdateOpt = 0
	PfrWriteMemory     PfrKeystoreUpdateOpt = 1
)

func ParsePfrKeystoreUpdateOpt(word uint32) PfrKeystoreUpdateOpt {
	if word == 1 {
		return PfrWriteMemory
	}
	return PfrKeyProvisioning
}

// FlashReadMargin selects the margin level used for flash reads.
type FlashReadMargin uint32

const (
	FlashReadMarginNormal  FlashReadMargin = 0
	FlashReadMarginUser    FlashReadMargin = 1
	FlashReadMarginFactory FlashReadMargin = 2
)

func ParseFlashReadMargin(word uint32) FlashReadMargin {
	switch word {
	case 1:
		return FlashReadMarginUser
	case 2:
		return FlashReadMarginFactory
	default:
		return FlashReadMarginNormal
	}
}

// SHEFlashPartition decodes the SHE EEPROM emulation partition layout.
type SHEFlashPartition struct {
	MaxKeys   uint8
	FlashSize uint8
}

func ParseSHEFlashPartition(word uint32) SHEFlashPartition {
	return SHEFlashPartition{
		MaxKeys:   uint8(word & 0x03),
		FlashSize: uint8((word >> 8) & 0x03),
	}
}

// SHEBootMode decodes the SHE boot size/mode word.
type SHEBootMode struct {
	Size uint32
	Mode uint8
}

func ParseSHEBootMode(word uint32) SHEBootMode {
	return SHEBootMode{
		Size: word & 0x3FFFFFFF,
		Mode: uint8((word >> 30) & 0x03),
	}
}

// boolFromLifecycleWord interprets {0, 0x5AA55AA5} as the documented "set"
// pole and every other value as the complementary pole, matching
// FlashSecurityState and LifeCycleState wire semantics.
func boolFromLifecycleWord(word uint32) bool {
	return word == 0x0 || word == 0x5AA55AA5
}

// Property is the decoded value of a property query, tagged by which
// PropertyTag produced it. Exactly one field is populated per Tag.
type Property struct {
	Tag PropertyTag

	U32     uint32 // single-word numeric properties
	Bool    bool   // VerifyWrites, ValidateRegions, FlashFacSupport, VerifyErase, FuseProgramVoltage, FlashSecurityState, LifeCycleState
	Version Version
	Peripherals   []PeripheryTag
	Commands      []CommandCode
	Status        StatusCode
	DeviceId      []byte
	Regions       []ReservedRegion
	ExternalMem   ExternalMemoryAttributes
	IrqPin        IrqNotifierPin
	PfrOpt        PfrKeystoreUpdateOpt
	ReadMargin    FlashReadMargin
	SHEPartition  SHEFlashPartition
	SHEBoot       SHEBootMode
}

// DecodeProperty decodes a GetProperty response's words according to tag.
// FuseLockedStatus and LastError are documented but not decoded by any
// known tooling; they return an error rather than a guessed value.
func DecodeProperty(tag PropertyTag, words []uint32) (Property, error) {
	if len(words) == 0 {
		return Property{}, errShortPropertyData
	}
	p := Property{Tag: tag}
	switch tag {
	case PropCurrentVersion:
		p.Version = ParseVersion(words[0])
	case PropTargetVersion:
		p.Version = ParseVersion(words[0])
	case PropUniqueDeviceId:
		for _, w := range words {
			p.DeviceId = append(p.DeviceId, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
		}
	case PropAvailablePeripherals:
		p.Peripherals = DecodePeripherals(words[0])
	case PropFlashStartAddress, PropFlashSize, PropFlashSectorSize, PropFlashBlockCount,
		PropRAMStartAddress, PropRAMSize, PropSystemDeviceId, PropFlashAccessSegmentSize,
		PropFlashAccessSegmentCount, PropByteWriteTimeoutMs, PropBootStatusRegister,
		PropFirmwareVersion, PropMaxPacketSize, PropFlashPageSize:
		p.U32 = words[0]
	case PropAvailableCommands:
		for _, c := range AllCommandCodes {
			if BitSetInAvailableCommands(c, words[0]) {
				p.Commands = append(p.Commands, c)
			}
		}
	case PropCRCCheckStatus:
		p.Status = ParseStatusCode(words[0])
	case PropQSPIInitStatus:
		p.Status = ParseStatusCode(words[0])
	case PropReliableUpdateStatus:
		p.Status = ParseStatusCode(words[0])
	case PropVerifyWrites, PropValidateRegions, PropFlashFacSupport, PropVerifyErase:
		p.Bool = words[0] != 0
	case PropReservedRegions:
		if len(words) < 3 {
			return Property{}, errShortPropertyData
		}
		regions, err := ParseReservedRegions(words[2:])
		if err != nil {
			return Property{}, err
		}
		p.Regions = regions
	case PropFlashSecurityState, PropLifeCycleState:
		p.Bool = boolFromLifecycleWord(words[0])
	case PropExternalMemoryAttributes:
		if len(words) < 6 {
			return Property{}, errShortPropertyData
		}
		p.ExternalMem = ParseExternalMemoryAttributes(words)
	case PropIrqNotifierPin:
		p.IrqPin = ParseIrqNotifierPin(words[0])
	case PropPFRKeystoreUpdateOpt:
		p.PfrOpt = ParsePfrKeystoreUpdateOpt(words[0])
	case PropFlashReadMargin:
		p.ReadMargin = ParseFlashReadMargin(words[0])
	case PropFuseProgramVoltage:
		p.Bool = words[0] != 0
	case PropSHEFlashPartition:
		p.SHEPartition = ParseSHEFlashPartition(words[0])
	case PropSHEBootMode:
		p.SHEBoot = ParseSHEBootMode(words[0])
	case PropFuseLockedStatus, PropLastError:
		return Property{}, errUnimplementedDecode
	default:
		return Property{}, fmt.Errorf("taxonomy: unknown property tag 0x%02X", uint8(tag))
	}
	return p, nil
}
