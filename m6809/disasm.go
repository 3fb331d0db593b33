package m6809

import "fmt"

// FormatOperand renders the operand bytes of one instruction as the short
// hex text a status display shows next to the mnemonic (e.g. "#$06",
// "$1234", "<$42"). This is deliberately not a full disassembler — the
// FLEX-file address-range reader and symbolic disassembly are named
// out-of-scope collaborators in §1 — it exists only to fill the
// "disassembled operand text" field of CPUStatus (§3) for the reference
// TUI.
func FormatOperand(mode AddressingMode, operandBytes []byte) string {
	switch mode {
	case amInherent:
		return ""
	case amImmediate:
		if len(operandBytes) == 1 {
			return fmt.Sprintf("#$%02X", operandBytes[0])
		}
		if len(operandBytes) == 2 {
			return fmt.Sprintf("#$%02X%02X", operandBytes[0], operandBytes[1])
		}
	case amDirect:
		if len(operandBytes) == 1 {
			return fmt.Sprintf("<$%02X", operandBytes[0])
		}
	case amExtended:
		if len(operandBytes) == 2 {
			return fmt.Sprintf("$%02X%02X", operandBytes[0], operandBytes[1])
		}
	case amIndexed:
		if len(operandBytes) > 0 {
			return fmt.Sprintf(",X(%02X)", operandBytes[0])
		}
	case amRelative8:
		if len(operandBytes) == 1 {
			return fmt.Sprintf("$%02X", operandBytes[0])
		}
	case amRelative16:
		if len(operandBytes) == 2 {
			return fmt.Sprintf("$%02X%02X", operandBytes[0], operandBytes[1])
		}
	}
	out := ""
	for _, b := range operandBytes {
		out += fmt.Sprintf("%02X", b)
	}
	return out
}
