package m6809

// decode_table1.go registers every unprefixed (page 1) opcode. Unlisted
// slots stay nil and yield ErrInvalidInstruction, which is the correct
// behavior for the illegal/reserved opcodes in this page.

func init() {
	// Direct-page read-modify-write column (0x00-0x0F).
	reg(1, 0x00, "NEG", amDirect, Byte, 6, false, negMem(amDirect))
	reg(1, 0x03, "COM", amDirect, Byte, 6, false, comMem(amDirect))
	reg(1, 0x04, "LSR", amDirect, Byte, 6, false, shiftMem(amDirect, (*CPU).shiftRightLogicalFlags))
	reg(1, 0x06, "ROR", amDirect, Byte, 6, false, shiftMem(amDirect, (*CPU).rorFlags))
	reg(1, 0x07, "ASR", amDirect, Byte, 6, false, shiftMem(amDirect, (*CPU).shiftRightArithmeticFlags))
	reg(1, 0x08, "ASL", amDirect, Byte, 6, false, shiftMem(amDirect, (*CPU).shiftLeftFlags))
	reg(1, 0x09, "ROL", amDirect, Byte, 6, false, shiftMem(amDirect, (*CPU).rolFlags))
	reg(1, 0x0A, "DEC", amDirect, Byte, 6, false, decMem(amDirect))
	reg(1, 0x0C, "INC", amDirect, Byte, 6, false, incMem(amDirect))
	reg(1, 0x0D, "TST", amDirect, Byte, 6, false, tstMem(amDirect))
	reg(1, 0x0E, "JMP", amDirect, Word, 3, false, jmpOp(amDirect))
	reg(1, 0x0F, "CLR", amDirect, Byte, 6, false, clrMem(amDirect))

	// Inherent/misc (0x12-0x1F).
	reg(1, 0x12, "NOP", amInherent, Byte, 2, false, nopOp)
	reg(1, 0x13, "SYNC", amInherent, Byte, 2, false, syncOp)
	reg(1, 0x16, "LBRA", amRelative16, Word, 5, false, branch16(condAlways))
	reg(1, 0x17, "LBSR", amRelative16, Word, 9, true, lbsrOp)
	reg(1, 0x19, "DAA", amInherent, Byte, 2, false, daaOp)
	reg(1, 0x1A, "ORCC", amImmediate, Byte, 3, false, orccOp)
	reg(1, 0x1C, "ANDCC", amImmediate, Byte, 3, false, andccOp)
	reg(1, 0x1D, "SEX", amInherent, Byte, 2, false, sexOp)
	reg(1, 0x1E, "EXG", amImmediate, Byte, 8, false, exgOp)
	reg(1, 0x1F, "TFR", amImmediate, Byte, 6, false, tfrOp)

	// Short branches (0x20-0x2F).
	reg(1, 0x20, "BRA", amRelative8, Byte, 3, false, branch8(condAlways))
	reg(1, 0x21, "BRN", amRelative8, Byte, 3, false, branch8(condNever))
	reg(1, 0x22, "BHI", amRelative8, Byte, 3, false, branch8(condHi))
	reg(1, 0x23, "BLS", amRelative8, Byte, 3, false, branch8(condLs))
	reg(1, 0x24, "BCC", amRelative8, Byte, 3, false, branch8(condCC))
	reg(1, 0x25, "BCS", amRelative8, Byte, 3, false, branch8(condCS))
	reg(1, 0x26, "BNE", amRelative8, Byte, 3, false, branch8(condNE))
	reg(1, 0x27, "BEQ", amRelative8, Byte, 3, false, branch8(condEQ))
	reg(1, 0x28, "BVC", amRelative8, Byte, 3, false, branch8(condVC))
	reg(1, 0x29, "BVS", amRelative8, Byte, 3, false, branch8(condVS))
	reg(1, 0x2A, "BPL", amRelative8, Byte, 3, false, branch8(condPL))
	reg(1, 0x2B, "BMI", amRelative8, Byte, 3, false, branch8(condMI))
	reg(1, 0x2C, "BGE", amRelative8, Byte, 3, false, branch8(condGE))
	reg(1, 0x2D, "BLT", amRelative8, Byte, 3, false, branch8(condLT))
	reg(1, 0x2E, "BGT", amRelative8, Byte, 3, false, branch8(condGT))
	reg(1, 0x2F, "BLE", amRelative8, Byte, 3, false, branch8(condLE))

	// LEA / stack (0x30-0x3F).
	reg(1, 0x30, "LEAX", amIndexed, Word, 4, false, leaOp(setX, true))
	reg(1, 0x31, "LEAY", amIndexed, Word, 4, false, leaOp(setY, true))
	reg(1, 0x32, "LEAS", amIndexed, Word, 4, false, leaOp(setS, false))
	reg(1, 0x33, "LEAU", amIndexed, Word, 4, false, leaOp(setU, false))
	reg(1, 0x34, "PSHS", amImmediate, Byte, 5, false, pshs)
	reg(1, 0x35, "PULS", amImmediate, Byte, 5, false, puls)
	reg(1, 0x36, "PSHU", amImmediate, Byte, 5, false, pshu)
	reg(1, 0x37, "PULU", amImmediate, Byte, 5, false, pulu)
	reg(1, 0x39, "RTS", amInherent, Byte, 5, false, rtsOp)
	reg(1, 0x3A, "ABX", amInherent, Byte, 3, false, abxOp)
	reg(1, 0x3B, "RTI", amInherent, Byte, 0, false, rtiOp)
	reg(1, 0x3C, "CWAI", amImmediate, Byte, 0, false, cwaiOp)
	reg(1, 0x3D, "MUL", amInherent, Byte, 11, false, mulOp)
	reg(1, 0x3F, "SWI", amInherent, Byte, 0, false, swiOp)

	// Accumulator-A inherent ops (0x40-0x4F).
	reg(1, 0x40, "NEGA", amInherent, Byte, 2, false, negAcc(accA, setAccA))
	reg(1, 0x43, "COMA", amInherent, Byte, 2, false, comAcc(accA, setAccA))
	reg(1, 0x44, "LSRA", amInherent, Byte, 2, false, shiftAcc(accA, setAccA, (*CPU).shiftRightLogicalFlags))
	reg(1, 0x46, "RORA", amInherent, Byte, 2, false, shiftAcc(accA, setAccA, (*CPU).rorFlags))
	reg(1, 0x47, "ASRA", amInherent, Byte, 2, false, shiftAcc(accA, setAccA, (*CPU).shiftRightArithmeticFlags))
	reg(1, 0x48, "ASLA", amInherent, Byte, 2, false, shiftAcc(accA, setAccA, (*CPU).shiftLeftFlags))
	reg(1, 0x49, "ROLA", amInherent, Byte, 2, false, shiftAcc(accA, setAccA, (*CPU).rolFlags))
	reg(1, 0x4A, "DECA", amInherent, Byte, 2, false, decAcc(accA, setAccA))
	reg(1, 0x4C, "INCA", amInherent, Byte, 2, false, incAcc(accA, setAccA))
	reg(1, 0x4D, "TSTA", amInherent, Byte, 2, false, tstAcc(accA))
	reg(1, 0x4F, "CLRA", amInherent, Byte, 2, false, clrAcc(setAccA))

	// Accumulator-B inherent ops (0x50-0x5F).
	reg(1, 0x50, "NEGB", amInherent, Byte, 2, false, negAcc(accB, setAccB))
	reg(1, 0x53, "COMB", amInherent, Byte, 2, false, comAcc(accB, setAccB))
	reg(1, 0x54, "LSRB", amInherent, Byte, 2, false, shiftAcc(accB, setAccB, (*CPU).shiftRightLogicalFlags))
	reg(1, 0x56, "RORB", amInherent, Byte, 2, false, shiftAcc(accB, setAccB, (*CPU).rorFlags))
	reg(1, 0x57, "ASRB", amInherent, Byte, 2, false, shiftAcc(accB, setAccB, (*CPU).shiftRightArithmeticFlags))
	reg(1, 0x58, "ASLB", amInherent, Byte, 2, false, shiftAcc(accB, setAccB, (*CPU).shiftLeftFlags))
	reg(1, 0x59, "ROLB", amInherent, Byte, 2, false, shiftAcc(accB, setAccB, (*CPU).rolFlags))
	reg(1, 0x5A, "DECB", amInherent, Byte, 2, false, decAcc(accB, setAccB))
	reg(1, 0x5C, "INCB", amInherent, Byte, 2, false, incAcc(accB, setAccB))
	reg(1, 0x5D, "TSTB", amInherent, Byte, 2, false, tstAcc(accB))
	reg(1, 0x5F, "CLRB", amInherent, Byte, 2, false, clrAcc(setAccB))

	// Indexed read-modify-write column (0x60-0x6F).
	reg(1, 0x60, "NEG", amIndexed, Byte, 6, false, negMem(amIndexed))
	reg(1, 0x63, "COM", amIndexed, Byte, 6, false, comMem(amIndexed))
	reg(1, 0x64, "LSR", amIndexed, Byte, 6, false, shiftMem(amIndexed, (*CPU).shiftRightLogicalFlags))
	reg(1, 0x66, "ROR", amIndexed, Byte, 6, false, shiftMem(amIndexed, (*CPU).rorFlags))
	reg(1, 0x67, "ASR", amIndexed, Byte, 6, false, shiftMem(amIndexed, (*CPU).shiftRightArithmeticFlags))
	reg(1, 0x68, "ASL", amIndexed, Byte, 6, false, shiftMem(amIndexed, (*CPU).shiftLeftFlags))
	reg(1, 0x69, "ROL", amIndexed, Byte, 6, false, shiftMem(amIndexed, (*CPU).rolFlags))
	reg(1, 0x6A, "DEC", amIndexed, Byte, 6, false, decMem(amIndexed))
	reg(1, 0x6C, "INC", amIndexed, Byte, 6, false, incMem(amIndexed))
	reg(1, 0x6D, "TST", amIndexed, Byte, 6, false, tstMem(amIndexed))
	reg(1, 0x6E, "JMP", amIndexed, Word, 3, false, jmpOp(amIndexed))
	reg(1, 0x6F, "CLR", amIndexed, Byte, 6, false, clrMem(amIndexed))

	// Extended read-modify-write column (0x70-0x7F).
	reg(1, 0x70, "NEG", amExtended, Byte, 7, false, negMem(amExtended))
	reg(1, 0x73, "COM", amExtended, Byte, 7, false, comMem(amExtended))
	reg(1, 0x74, "LSR", amExtended, Byte, 7, false, shiftMem(amExtended, (*CPU).shiftRightLogicalFlags))
	reg(1, 0x76, "ROR", amExtended, Byte, 7, false, shiftMem(amExtended, (*CPU).rorFlags))
	reg(1, 0x77, "ASR", amExtended, Byte, 7, false, shiftMem(amExtended, (*CPU).shiftRightArithmeticFlags))
	reg(1, 0x78, "ASL", amExtended, Byte, 7, false, shiftMem(amExtended, (*CPU).shiftLeftFlags))
	reg(1, 0x79, "ROL", amExtended, Byte, 7, false, shiftMem(amExtended, (*CPU).rolFlags))
	reg(1, 0x7A, "DEC", amExtended, Byte, 7, false, decMem(amExtended))
	reg(1, 0x7C, "INC", amExtended, Byte, 7, false, incMem(amExtended))
	reg(1, 0x7D, "TST", amExtended, Byte, 7, false, tstMem(amExtended))
	reg(1, 0x7E, "JMP", amExtended, Word, 4, false, jmpOp(amExtended))
	reg(1, 0x7F, "CLR", amExtended, Byte, 7, false, clrMem(amExtended))

	registerAccumulatorAColumn()
	registerAccumulatorBColumn()
}

// registerAccumulatorAColumn fills the four addressing-mode rows (immediate,
// direct, indexed, extended) for every column-indexed A-accumulator op:
// SUBA,CMPA,SBCA,SUBD,ANDA,BITA,LDA,STA,EORA,ADCA,ORA,ADDA,CMPX,BSR/JSR,LDX,STX.
func registerAccumulatorAColumn() {
	type variant struct {
		opcode byte
		mode   AddressingMode
		cycles int
	}
	rows := []variant{
		{0x80, amImmediate, 2},
		{0x90, amDirect, 4},
		{0xA0, amIndexed, 4},
		{0xB0, amExtended, 5},
	}
	for _, row := range rows {
		reg(1, row.opcode+0x00, "SUBA", row.mode, Byte, row.cycles, false, alu8(accA, setAccA, row.mode, true, subFn))
		reg(1, row.opcode+0x01, "CMPA", row.mode, Byte, row.cycles, false, alu8(accA, setAccA, row.mode, false, subFn))
		reg(1, row.opcode+0x02, "SBCA", row.mode, Byte, row.cycles, false, alu8(accA, setAccA, row.mode, true, sbcFn))
		reg(1, row.opcode+0x04, "ANDA", row.mode, Byte, row.cycles, false, alu8(accA, setAccA, row.mode, true, andFn))
		reg(1, row.opcode+0x05, "BITA", row.mode, Byte, row.cycles, false, alu8(accA, setAccA, row.mode, false, bitFn))
		reg(1, row.opcode+0x06, "LDA", row.mode, Byte, row.cycles, false, ld8(setAccA, row.mode))
		reg(1, row.opcode+0x08, "EORA", row.mode, Byte, row.cycles, false, alu8(accA, setAccA, row.mode, true, eorFn))
		reg(1, row.opcode+0x09, "ADCA", row.mode, Byte, row.cycles, false, alu8(accA, setAccA, row.mode, true, adcFn))
		reg(1, row.opcode+0x0A, "ORA", row.mode, Byte, row.cycles, false, alu8(accA, setAccA, row.mode, true, orFn))
		reg(1, row.opcode+0x0B, "ADDA", row.mode, Byte, row.cycles, false, alu8(accA, setAccA, row.mode, true, addFn))
		reg(1, row.opcode+0x0C, "CMPX", row.mode, Word, row.cycles+2, false, alu16(getX, setX, row.mode, false, sub16Fn))
		reg(1, row.opcode+0x0E, "LDX", row.mode, Word, row.cycles+2, false, ld16(setX, row.mode, false))
	}
	// SUBD is the column-3 op for the A rows specifically; STA/STX have no
	// immediate form, and immediate-row column 3 is SUBD immediate while
	// column D is BSR (relative), not JSR.
	reg(1, 0x83, "SUBD", amImmediate, Word, 4, false, alu16(getD, setD, amImmediate, true, sub16Fn))
	reg(1, 0x93, "SUBD", amDirect, Word, 6, false, alu16(getD, setD, amDirect, true, sub16Fn))
	reg(1, 0xA3, "SUBD", amIndexed, Word, 6, false, alu16(getD, setD, amIndexed, true, sub16Fn))
	reg(1, 0xB3, "SUBD", amExtended, Word, 7, false, alu16(getD, setD, amExtended, true, sub16Fn))

	reg(1, 0x8D, "BSR", amRelative8, Byte, 7, true, bsrOp)
	reg(1, 0x9D, "JSR", amDirect, Word, 7, true, jsrOp(amDirect))
	reg(1, 0xAD, "JSR", amIndexed, Word, 7, true, jsrOp(amIndexed))
	reg(1, 0xBD, "JSR", amExtended, Word, 8, true, jsrOp(amExtended))

	reg(1, 0x97, "STA", amDirect, Byte, 4, false, st8(accA, amDirect))
	reg(1, 0xA7, "STA", amIndexed, Byte, 4, false, st8(accA, amIndexed))
	reg(1, 0xB7, "STA", amExtended, Byte, 5, false, st8(accA, amExtended))

	reg(1, 0x9F, "STX", amDirect, Word, 6, false, st16(getX, amDirect))
	reg(1, 0xAF, "STX", amIndexed, Word, 6, false, st16(getX, amIndexed))
	reg(1, 0xBF, "STX", amExtended, Word, 7, false, st16(getX, amExtended))
}

// registerAccumulatorBColumn mirrors registerAccumulatorAColumn for the B
// accumulator: column 3 is ADDD (not SUBD), column C is LDD, column D is
// STD, columns E/F are LDU/STU.
func registerAccumulatorBColumn() {
	type variant struct {
		opcode byte
		mode   AddressingMode
		cycles int
	}
	rows := []variant{
		{0xC0, amImmediate, 2},
		{0xD0, amDirect, 4},
		{0xE0, amIndexed, 4},
		{0xF0, amExtended, 5},
	}
	for _, row := range rows {
		reg(1, row.opcode+0x00, "SUBB", row.mode, Byte, row.cycles, false, alu8(accB, setAccB, row.mode, true, subFn))
		reg(1, row.opcode+0x01, "CMPB", row.mode, Byte, row.cycles, false, alu8(accB, setAccB, row.mode, false, subFn))
		reg(1, row.opcode+0x02, "SBCB", row.mode, Byte, row.cycles, false, alu8(accB, setAccB, row.mode, true, sbcFn))
		reg(1, row.opcode+0x03, "ADDD", row.mode, Word, row.cycles+2, false, alu16(getD, setD, row.mode, true, add16Fn))
		reg(1, row.opcode+0x04, "ANDB", row.mode, Byte, row.cycles, false, alu8(accB, setAccB, row.mode, true, andFn))
		reg(1, row.opcode+0x05, "BITB", row.mode, Byte, row.cycles, false, alu8(accB, setAccB, row.mode, false, bitFn))
		reg(1, row.opcode+0x06, "LDB", row.mode, Byte, row.cycles, false, ld8(setAccB, row.mode))
		reg(1, row.opcode+0x08, "EORB", row.mode, Byte, row.cycles, false, alu8(accB, setAccB, row.mode, true, eorFn))
		reg(1, row.opcode+0x09, "ADCB", row.mode, Byte, row.cycles, false, alu8(accB, setAccB, row.mode, true, adcFn))
		reg(1, row.opcode+0x0A, "ORB", row.mode, Byte, row.cycles, false, alu8(accB, setAccB, row.mode, true, orFn))
		reg(1, row.opcode+0x0B, "ADDB", row.mode, Byte, row.cycles, false, alu8(accB, setAccB, row.mode, true, addFn))
		reg(1, row.opcode+0x0C, "LDD", row.mode, Word, row.cycles+2, false, ld16(setD, row.mode, false))
	}
	reg(1, 0xD7, "STB", amDirect, Byte, 4, false, st8(accB, amDirect))
	reg(1, 0xE7, "STB", amIndexed, Byte, 4, false, st8(accB, amIndexed))
	reg(1, 0xF7, "STB", amExtended, Byte, 5, false, st8(accB, amExtended))

	reg(1, 0xDD, "STD", amDirect, Word, 6, false, st16(getD, amDirect))
	reg(1, 0xED, "STD", amIndexed, Word, 6, false, st16(getD, amIndexed))
	reg(1, 0xFD, "STD", amExtended, Word, 7, false, st16(getD, amExtended))

	reg(1, 0xCE, "LDU", amImmediate, Word, 3, false, ld16(setU, amImmediate, false))
	reg(1, 0xDE, "LDU", amDirect, Word, 6, false, ld16(setU, amDirect, false))
	reg(1, 0xEE, "LDU", amIndexed, Word, 6, false, ld16(setU, amIndexed, false))
	reg(1, 0xFE, "LDU", amExtended, Word, 7, false, ld16(setU, amExtended, false))

	reg(1, 0xDF, "STU", amDirect, Word, 6, false, st16(getU, amDirect))
	reg(1, 0xEF, "STU", amIndexed, Word, 6, false, st16(getU, amIndexed))
	reg(1, 0xFF, "STU", amExtended, Word, 7, false, st16(getU, amExtended))
}
