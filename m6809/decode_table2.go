package m6809

// decode_table2.go registers the $10-prefixed opcodes: long conditional
// branches, SWI2, and the Y/D/S register variants that share the base
// page's column layout one level removed (CMPD, CMPY, LDY/STY, LDS/STS).

func init() {
	reg(2, 0x21, "LBRN", amRelative16, Word, 5, false, branch16(condNever))
	reg(2, 0x22, "LBHI", amRelative16, Word, 5, false, branch16cc(condHi))
	reg(2, 0x23, "LBLS", amRelative16, Word, 5, false, branch16cc(condLs))
	reg(2, 0x24, "LBCC", amRelative16, Word, 5, false, branch16cc(condCC))
	reg(2, 0x25, "LBCS", amRelative16, Word, 5, false, branch16cc(condCS))
	reg(2, 0x26, "LBNE", amRelative16, Word, 5, false, branch16cc(condNE))
	reg(2, 0x27, "LBEQ", amRelative16, Word, 5, false, branch16cc(condEQ))
	reg(2, 0x28, "LBVC", amRelative16, Word, 5, false, branch16cc(condVC))
	reg(2, 0x29, "LBVS", amRelative16, Word, 5, false, branch16cc(condVS))
	reg(2, 0x2A, "LBPL", amRelative16, Word, 5, false, branch16cc(condPL))
	reg(2, 0x2B, "LBMI", amRelative16, Word, 5, false, branch16cc(condMI))
	reg(2, 0x2C, "LBGE", amRelative16, Word, 5, false, branch16cc(condGE))
	reg(2, 0x2D, "LBLT", amRelative16, Word, 5, false, branch16cc(condLT))
	reg(2, 0x2E, "LBGT", amRelative16, Word, 5, false, branch16cc(condGT))
	reg(2, 0x2F, "LBLE", amRelative16, Word, 5, false, branch16cc(condLE))

	reg(2, 0x3F, "SWI2", amInherent, Byte, 0, false, swi2Op)

	reg(2, 0x83, "CMPD", amImmediate, Word, 5, false, alu16(getD, setD, amImmediate, false, sub16Fn))
	reg(2, 0x93, "CMPD", amDirect, Word, 7, false, alu16(getD, setD, amDirect, false, sub16Fn))
	reg(2, 0xA3, "CMPD", amIndexed, Word, 7, false, alu16(getD, setD, amIndexed, false, sub16Fn))
	reg(2, 0xB3, "CMPD", amExtended, Word, 8, false, alu16(getD, setD, amExtended, false, sub16Fn))

	reg(2, 0x8C, "CMPY", amImmediate, Word, 5, false, alu16(getY, setY, amImmediate, false, sub16Fn))
	reg(2, 0x9C, "CMPY", amDirect, Word, 7, false, alu16(getY, setY, amDirect, false, sub16Fn))
	reg(2, 0xAC, "CMPY", amIndexed, Word, 7, false, alu16(getY, setY, amIndexed, false, sub16Fn))
	reg(2, 0xBC, "CMPY", amExtended, Word, 8, false, alu16(getY, setY, amExtended, false, sub16Fn))

	reg(2, 0x8E, "LDY", amImmediate, Word, 4, false, ld16(setY, amImmediate, false))
	reg(2, 0x9E, "LDY", amDirect, Word, 7, false, ld16(setY, amDirect, false))
	reg(2, 0xAE, "LDY", amIndexed, Word, 7, false, ld16(setY, amIndexed, false))
	reg(2, 0xBE, "LDY", amExtended, Word, 8, false, ld16(setY, amExtended, false))

	reg(2, 0x9F, "STY", amDirect, Word, 7, false, st16(getY, amDirect))
	reg(2, 0xAF, "STY", amIndexed, Word, 7, false, st16(getY, amIndexed))
	reg(2, 0xBF, "STY", amExtended, Word, 8, false, st16(getY, amExtended))

	reg(2, 0xCE, "LDS", amImmediate, Word, 4, false, ld16(setS, amImmediate, true))
	reg(2, 0xDE, "LDS", amDirect, Word, 7, false, ld16(setS, amDirect, true))
	reg(2, 0xEE, "LDS", amIndexed, Word, 7, false, ld16(setS, amIndexed, true))
	reg(2, 0xFE, "LDS", amExtended, Word, 8, false, ld16(setS, amExtended, true))

	reg(2, 0xDF, "STS", amDirect, Word, 7, false, st16(getS, amDirect))
	reg(2, 0xEF, "STS", amIndexed, Word, 7, false, st16(getS, amIndexed))
	reg(2, 0xFF, "STS", amExtended, Word, 8, false, st16(getS, amExtended))
}
