package logger

import (
	"fmt"
	"strings"

	"github.com/user-none/go-flex6809/m6809"
	"github.com/user-none/go-flex6809/mask"
)

// FormatCC renders cc as the 8-character "EFHINZVC" string §4.5 specifies:
// each position is its letter when the bit is set, '-' when clear, ordered
// MSB ('E') to LSB ('C'). Built directly on the teacher's mask package bit
// extraction (mask.IsSet), generalized from the teacher's one-off
// `debugger.go` status string into a reusable, tested formatter.
func FormatCC(cc byte) string {
	const letters = "EFHINZVC"
	set := [8]bool{
		mask.IsSet(cc, mask.CCE),
		mask.IsSet(cc, mask.CCF),
		mask.IsSet(cc, mask.CCH),
		mask.IsSet(cc, mask.CCI),
		mask.IsSet(cc, mask.CCN),
		mask.IsSet(cc, mask.CCZ),
		mask.IsSet(cc, mask.CCV),
		mask.IsSet(cc, mask.CCC),
	}
	buf := make([]byte, 8)
	for i, isSet := range set {
		if isSet {
			buf[i] = letters[i]
		} else {
			buf[i] = '-'
		}
	}
	return string(buf)
}

// record is one buffered instruction observation, augmented with the
// rendered field text the Config asks for. Kept separate from
// m6809.InstructionSnapshot so loop-matching (PC + Bytes only) stays
// decoupled from what gets printed.
type record struct {
	snap m6809.InstructionSnapshot
}

// matches reports whether two records represent the same instruction byte
// sequence at the same address — the loop detector's sole equality test,
// per §4.5 ("same PC, same instruction bytes").
func (r record) matches(o record) bool {
	if r.snap.PC != o.snap.PC {
		return false
	}
	if len(r.snap.Bytes) != len(o.snap.Bytes) {
		return false
	}
	for i := range r.snap.Bytes {
		if r.snap.Bytes[i] != o.snap.Bytes[i] {
			return false
		}
	}
	return true
}

// line renders r as one output record's field list, honoring the
// Config's register mask and logCycleCount flag, in the fixed left-to-right
// field order §4.5 describes: PC, mnemonic+operand, [cycles], [registers].
func (c Config) line(r record) []string {
	s := r.snap
	fields := []string{fmt.Sprintf("%04X", s.PC)}

	text := s.Mnemonic
	if s.OperandText != "" {
		text += " " + s.OperandText
	}
	fields = append(fields, text)

	if c.LogCycleCount {
		fields = append(fields, fmt.Sprintf("%d", s.Cycles))
	}

	reg := s.Reg
	if c.RegisterMask&RegCC != 0 {
		fields = append(fields, FormatCC(reg.CC))
	}
	if c.RegisterMask&RegA != 0 {
		fields = append(fields, fmt.Sprintf("%02X", reg.A))
	}
	if c.RegisterMask&RegB != 0 {
		fields = append(fields, fmt.Sprintf("%02X", reg.B))
	}
	if c.RegisterMask&RegDP != 0 {
		fields = append(fields, fmt.Sprintf("%02X", reg.DP))
	}
	if c.RegisterMask&RegX != 0 {
		fields = append(fields, fmt.Sprintf("%04X", reg.X))
	}
	if c.RegisterMask&RegY != 0 {
		fields = append(fields, fmt.Sprintf("%04X", reg.Y))
	}
	if c.RegisterMask&RegU != 0 {
		fields = append(fields, fmt.Sprintf("%04X", reg.U))
	}
	if c.RegisterMask&RegS != 0 {
		fields = append(fields, fmt.Sprintf("%04X", reg.S))
	}
	return fields
}

// textLine renders r as one space-separated text-format line.
func (c Config) textLine(r record) string {
	return strings.Join(c.line(r), " ")
}

// header returns the CSV column header row for the configured field set.
func (c Config) header() []string {
	fields := []string{"PC", "Instruction"}
	if c.LogCycleCount {
		fields = append(fields, "Cycles")
	}
	for _, f := range []struct {
		bit  RegisterMask
		name string
	}{
		{RegCC, "CC"}, {RegA, "A"}, {RegB, "B"}, {RegDP, "DP"},
		{RegX, "X"}, {RegY, "Y"}, {RegU, "U"}, {RegS, "S"},
	} {
		if c.RegisterMask&f.bit != 0 {
			fields = append(fields, f.name)
		}
	}
	return fields
}
