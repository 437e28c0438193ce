package model

import "time"

// Opcodes for the line types the engine consumes. The leading field of
// every raw line names its record type.
const (
	OpChat       = "00"
	OpZone       = "01"
	OpRoster     = "03"
	OpCast       = "15"
	OpCastAOE    = "16"
	OpAbility    = "21"
	OpAbilityAOE = "22"
	OpStatus     = "26"
	OpEffect     = "38"
	OpHP         = "39"
)

// Line is one tokenized log line: an ordered field list split on '|'.
// Field 0 is the opcode, field 1 the timestamp string; the remaining
// fields vary by opcode. Lines are ephemeral and never persisted.
type Line struct {
	Raw    string
	Fields []string
	Ts     time.Time
	TsOK   bool
}

func (l Line) Opcode() string {
	if len(l.Fields) == 0 {
		return ""
	}
	return l.Fields[0]
}

// Field returns field i, or "" when the line has no such field.
func (l Line) Field(i int) string {
	if i < 0 || i >= len(l.Fields) {
		return ""
	}
	return l.Fields[i]
}
