package taxonomy

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyProvUserKeyType names the key the device should operate on for
// SetUserKey / SetKey key-provisioning operations.
type KeyProvUserKeyType uint32

const (
	KeyOtfadKek      KeyProvUserKeyType = 2
	KeySbKek         KeyProvUserKeyType = 3
	KeyPrinceRegion0 KeyProvUserKeyType = 7
	KeyPrinceRegion1 KeyProvUserKeyType = 8
	KeyPrinceRegion2 KeyProvUserKeyType = 9
	KeyPrinceRegion3 KeyProvUserKeyType = 10
	KeyUserKek       KeyProvUserKeyType = 11
	KeyUds           KeyProvUserKeyType = 12
)

var keyProvUserKeyTypeNames = map[KeyProvUserKeyType]string{
	KeyOtfadKek:      "OTFADKEK",
	KeySbKek:         "SBKEK",
	KeyPrinceRegion0: "PRINCE0",
	KeyPrinceRegion1: "PRINCE1",
	KeyPrinceRegion2: "PRINCE2",
	KeyPrinceRegion3: "PRINCE3",
	KeyUserKek:       "USERKEK",
	KeyUds:           "UDS",
}

func (k KeyProvUserKeyType) String() string {
	if name, ok := keyProvUserKeyTypeNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KeyProvUserKeyType(%d)", uint32(k))
}

// ParseKeyProvUserKeyType accepts either a decimal/hex numeric value or one
// of the documented key names (case insensitive).
func ParseKeyProvUserKeyType(s string) (KeyProvUserKeyType, error) {
	if n, err := strconv.ParseUint(s, 0, 32); err == nil {
		return KeyProvUserKeyType(n), nil
	}
	upper := strings.ToUpper(s)
	for k, name := range keyProvUserKeyTypeNames {
		if name == upper {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key provisioning key type %q", s)
}

// KeyProvOperation is a tagged variant over the key-provisioning
// sub-operations. Exactly one field group is meaningful per Kind.
type KeyProvOperation struct {
	Kind KeyProvOpKind

	KeyType      KeyProvUserKeyType // SetUserKey, SetKey
	KeyData      []byte             // SetUserKey (data phase)
	KeySize      uint32             // SetKey
	MemoryID     uint32             // WriteKeyNonvolatile, ReadKeyNonvolatile
	KeystoreData []byte             // WriteKeyStore (data phase)
}

// KeyProvOpKind enumerates the sub-operation discriminant (the first
// parameter word sent on the wire).
type KeyProvOpKind uint32

const (
	KeyProvEnroll               KeyProvOpKind = 0
	KeyProvSetUserKey           KeyProvOpKind = 1
	KeyProvSetKey               KeyProvOpKind = 2
	KeyProvWriteKeyNonvolatile  KeyProvOpKind = 3
	KeyProvReadKeyNonvolatile   KeyProvOpKind = 4
	KeyProvWriteKeyStore        KeyProvOpKind = 5
	KeyProvReadKeyStore         KeyProvOpKind = 6
)

// ToParams converts the operation to its command parameter words and an
// optional outbound data-phase payload.
func (op KeyProvOperation) ToParams() ([]uint32, []byte) {
	switch op.Kind {
	case KeyProvEnroll:
		return []uint32{uint32(KeyProvEnroll)}, nil
	case KeyProvSetUserKey:
		return []uint32{uint32(KeyProvSetUserKey), uint32(op.KeyType), uint32(len(op.KeyData))}, op.KeyData
	case KeyProvSetKey:
		return []uint32{uint32(KeyProvSetKey), uint32(op.KeyType), op.KeySize}, nil
	case KeyProvWriteKeyNonvolatile:
		return []uint32{uint32(KeyProvWriteKeyNonvolatile), op.MemoryID}, nil
	case KeyProvReadKeyNonvolatile:
		return []uint32{uint32(KeyProvReadKeyNonvolatile), op.MemoryID}, nil
	case KeyProvWriteKeyStore:
		return []uint32{uint32(KeyProvWriteKeyStore), 0, uint32(len(op.KeystoreData))}, op.KeystoreData
	case KeyProvReadKeyStore:
		return []uint32{uint32(KeyProvReadKeyStore)}, nil
	default:
		return nil, nil
	}
}
