package m6809

// This file resolves the MC6809 indexed-addressing postbyte and builds the
// 256-entry indexedCycles/pshPulCycles lookup tables at package
// initialization, the way go-chip-m68k's ea.go computes an effective
// address from a mode/register pair and timing.go tabulates per-mode
// extra cycles, generalized to the MC6809's richer postbyte-driven scheme
// (§4.2's "Indexed postbyte format" table).

// indexedSubmode is the low nibble (bits 3-0) of a postbyte with bit 7 set.
type indexedSubmode byte

const (
	subPostInc1 indexedSubmode = 0x0
	subPostInc2 indexedSubmode = 0x1
	subPreDec1  indexedSubmode = 0x2
	subPreDec2  indexedSubmode = 0x3
	subNoOffset indexedSubmode = 0x4
	subOffsetB  indexedSubmode = 0x5
	subOffsetA  indexedSubmode = 0x6
	subOffset8  indexedSubmode = 0x8
	subOffset16 indexedSubmode = 0x9
	subOffsetD  indexedSubmode = 0xB
	subPCR8     indexedSubmode = 0xC
	subPCR16    indexedSubmode = 0xD
	subExtInd   indexedSubmode = 0xF
)

// indexedCycles[postbyte] is the extra cycle cost of each indexed-mode
// postbyte variant, built once at init like the teacher's Opcodes map is
// built once as a package-level literal.
var indexedCycles [256]int

// pshPulCycles[mask] is the extra cycle cost of a PSHS/PSHU/PULS/PULU for
// the given register bitmask (bit7=PC,bit6=U/S,bit5=Y,bit4=X,bit3=DP,
// bit2=B,bit1=A,bit0=CC).
var pshPulCycles [256]int

func init() {
	for pb := 0; pb < 256; pb++ {
		indexedCycles[pb] = computeIndexedCycles(byte(pb))
	}
	for mask := 0; mask < 256; mask++ {
		pshPulCycles[mask] = computePshPulCycles(byte(mask))
	}
}

func computeIndexedCycles(pb byte) int {
	if pb&0x80 == 0 {
		return 1 // 5-bit constant offset
	}
	indirect := pb&0x10 != 0
	base := 0
	switch indexedSubmode(pb & 0x0F) {
	case subPostInc1:
		base = 2
	case subPostInc2:
		base = 3
	case subPreDec1:
		base = 2
	case subPreDec2:
		base = 3
	case subNoOffset:
		base = 0
	case subOffsetB, subOffsetA:
		base = 1
	case subOffset8:
		base = 1
	case subOffset16:
		base = 4
	case subOffsetD:
		base = 4
	case subPCR8:
		base = 1
	case subPCR16:
		base = 5
	case subExtInd:
		return 5
	default:
		return 0 // reserved/illegal postbyte; caught by resolveIndexed
	}
	if indirect {
		base += 3
	}
	return base
}

func computePshPulCycles(mask byte) int {
	cycles := 0
	for bit, cost := range [8]int{1, 1, 1, 1, 2, 2, 2, 2} { // CC,A,B,DP,X,Y,U/S,PC
		if mask&(1<<uint(bit)) != 0 {
			cycles += cost
		}
	}
	return cycles
}

// indexedRegister selects which of X/Y/U/S a postbyte's RR field names.
type indexedRegister byte

const (
	idxX indexedRegister = 0
	idxY indexedRegister = 1
	idxU indexedRegister = 2
	idxS indexedRegister = 3
)

func (c *CPU) indexedRegValue(r indexedRegister) uint16 {
	switch r {
	case idxX:
		return c.Reg.X
	case idxY:
		return c.Reg.Y
	case idxU:
		return c.Reg.U
	case idxS:
		return c.Reg.S
	}
	return 0
}

func (c *CPU) setIndexedReg(r indexedRegister, v uint16) {
	switch r {
	case idxX:
		c.Reg.X = v
	case idxY:
		c.Reg.Y = v
	case idxU:
		c.Reg.U = v
	case idxS:
		c.Reg.S = v
	}
}

// resolveIndexed consumes the postbyte (and any extension bytes) at PC and
// returns the effective address. Illegal postbytes return an error; per
// §7 the caller rewinds PC by one so the bad byte remains visible.
func (c *CPU) resolveIndexed() (uint16, error) {
	pb := c.fetchPC8()
	c.cycles += uint64(indexedCycles[pb])

	reg := indexedRegister((pb >> 5) & 0x3)

	if pb&0x80 == 0 {
		// 0RRnnnnn: 5-bit signed constant offset from R.
		offset := int32(int8(pb<<3) >> 3) // sign-extend low 5 bits
		return uint16(int32(c.indexedRegValue(reg)) + offset), nil
	}

	indirect := pb&0x10 != 0
	sub := indexedSubmode(pb & 0x0F)

	var addr uint16
	switch sub {
	case subPostInc1:
		if indirect {
			return 0, ErrInvalidPostbyte
		}
		addr = c.indexedRegValue(reg)
		c.setIndexedReg(reg, addr+1)
	case subPostInc2:
		addr = c.indexedRegValue(reg)
		c.setIndexedReg(reg, addr+2)
	case subPreDec1:
		if indirect {
			return 0, ErrInvalidPostbyte
		}
		v := c.indexedRegValue(reg) - 1
		c.setIndexedReg(reg, v)
		addr = v
	case subPreDec2:
		v := c.indexedRegValue(reg) - 2
		c.setIndexedReg(reg, v)
		addr = v
	case subNoOffset:
		addr = c.indexedRegValue(reg)
	case subOffsetB:
		addr = uint16(int32(c.indexedRegValue(reg)) + int32(int8(c.Reg.B)))
	case subOffsetA:
		addr = uint16(int32(c.indexedRegValue(reg)) + int32(int8(c.Reg.A)))
	case subOffset8:
		disp := int8(c.fetchPC8())
		addr = uint16(int32(c.indexedRegValue(reg)) + int32(disp))
	case subOffset16:
		disp := int16(c.fetchPC16())
		addr = uint16(int32(c.indexedRegValue(reg)) + int32(disp))
	case subOffsetD:
		addr = uint16(int32(c.indexedRegValue(reg)) + int32(int16(c.Reg.D())))
	case subPCR8:
		disp := int8(c.fetchPC8())
		addr = uint16(int32(c.Reg.PC) + int32(disp))
	case subPCR16:
		disp := int16(c.fetchPC16())
		addr = uint16(int32(c.Reg.PC) + int32(disp))
	case subExtInd:
		if !indirect {
			// 0x8F/0xAF/0xCF/0xEF: same low nibble as 0x9F but with the
			// indirect bit clear, reserved/illegal on the real chip.
			return 0, ErrInvalidPostbyte
		}
		addr = c.fetchPC16()
		return c.readBusWord(addr), nil
	default:
		return 0, ErrInvalidPostbyte
	}

	if indirect {
		return c.readBusWord(addr), nil
	}
	return addr, nil
}
