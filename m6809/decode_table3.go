package m6809

// decode_table3.go registers the $11-prefixed opcodes: SWI3 and the CMPU/
// CMPS comparisons, the only page-3 instructions a real MC6809 defines.

func init() {
	reg(3, 0x3F, "SWI3", amInherent, Byte, 0, false, swi3Op)

	reg(3, 0x83, "CMPU", amImmediate, Word, 5, false, alu16(getU, setU, amImmediate, false, sub16Fn))
	reg(3, 0x93, "CMPU", amDirect, Word, 7, false, alu16(getU, setU, amDirect, false, sub16Fn))
	reg(3, 0xA3, "CMPU", amIndexed, Word, 7, false, alu16(getU, setU, amIndexed, false, sub16Fn))
	reg(3, 0xB3, "CMPU", amExtended, Word, 8, false, alu16(getU, setU, amExtended, false, sub16Fn))

	reg(3, 0x8C, "CMPS", amImmediate, Word, 5, false, alu16(getS, setS, amImmediate, false, sub16Fn))
	reg(3, 0x9C, "CMPS", amDirect, Word, 7, false, alu16(getS, setS, amDirect, false, sub16Fn))
	reg(3, 0xAC, "CMPS", amIndexed, Word, 7, false, alu16(getS, setS, amIndexed, false, sub16Fn))
	reg(3, 0xBC, "CMPS", amExtended, Word, 8, false, alu16(getS, setS, amExtended, false, sub16Fn))
}
