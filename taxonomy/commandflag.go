package taxonomy

import "fmt"

// CommandFlag indicates whether a command or response header is followed
// by a data phase.
type CommandFlag uint8

const (
	FlagNoData       CommandFlag = 0
	FlagHasDataPhase CommandFlag = 1
)

func (f CommandFlag) String() string {
	switch f {
	case FlagNoData:
		return "no data"
	case FlagHasDataPhase:
		return "has data phase"
	default:
		return fmt.Sprintf("CommandFlag(%d)", uint8(f))
	}
}

// ParseCommandFlag converts a raw header byte into a CommandFlag, rejecting
// any value outside the two documented ones.
func ParseCommandFlag(raw uint8) (CommandFlag, error) {
	switch raw {
	case 0:
		return FlagNoData, nil
	case 1:
		return FlagHasDataPhase, nil
	default:
		return 0, fmt.Errorf("invalid command flag 0x%02X", raw)
	}
}
