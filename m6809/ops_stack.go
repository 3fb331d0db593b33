package m6809

// ops_stack.go implements PSHS/PULS/PSHU/PULU, TFR/EXG and the four LEA
// instructions.
//
// PSHS/PULS operate on S and push/pull U (not S) when bit 6 of the mask is
// set; PSHU/PULU operate on U and push/pull S (not U) — a register can
// never push/pull its own stack pointer. Push order is PC,U/S,Y,X,DP,B,A,CC
// (CC ends up on top); pull order is the reverse.

func pshs(c *CPU) error { return pushMask(c, &c.Reg.S, c.Reg.U) }
func pshu(c *CPU) error { return pushMask(c, &c.Reg.U, c.Reg.S) }
func puls(c *CPU) error { return pullMask(c, &c.Reg.S, func(v uint16) { c.Reg.U = v }) }
func pulu(c *CPU) error { return pullMask(c, &c.Reg.U, func(v uint16) { c.Reg.S = v }) }

func pushMask(c *CPU, sp *uint16, other uint16) error {
	mask := c.fetchPC8()
	c.cycles += uint64(pshPulCycles[mask])
	if mask&0x80 != 0 {
		c.pushWord(sp, c.Reg.PC)
	}
	if mask&0x40 != 0 {
		c.pushWord(sp, other)
	}
	if mask&0x20 != 0 {
		c.pushWord(sp, c.Reg.Y)
	}
	if mask&0x10 != 0 {
		c.pushWord(sp, c.Reg.X)
	}
	if mask&0x08 != 0 {
		c.pushByte(sp, c.Reg.DP)
	}
	if mask&0x04 != 0 {
		c.pushByte(sp, c.Reg.B)
	}
	if mask&0x02 != 0 {
		c.pushByte(sp, c.Reg.A)
	}
	if mask&0x01 != 0 {
		c.pushByte(sp, c.Reg.CC)
	}
	return nil
}

func pullMask(c *CPU, sp *uint16, setOther func(uint16)) error {
	mask := c.fetchPC8()
	c.cycles += uint64(pshPulCycles[mask])
	if mask&0x01 != 0 {
		c.Reg.CC = c.pullByte(sp)
	}
	if mask&0x02 != 0 {
		c.Reg.A = c.pullByte(sp)
	}
	if mask&0x04 != 0 {
		c.Reg.B = c.pullByte(sp)
	}
	if mask&0x08 != 0 {
		c.Reg.DP = c.pullByte(sp)
	}
	if mask&0x10 != 0 {
		c.Reg.X = c.pullWord(sp)
	}
	if mask&0x20 != 0 {
		c.Reg.Y = c.pullWord(sp)
	}
	if mask&0x40 != 0 {
		setOther(c.pullWord(sp))
	}
	if mask&0x80 != 0 {
		c.Reg.PC = c.pullWord(sp)
	}
	return nil
}

// tfrOp implements TFR: postbyte nibbles select source (high) and
// destination (low) registers. Mismatched widths are not possible on real
// hardware (the chip just truncates/extends); per the resolved design
// question, an 8-bit source transferred to a 16-bit destination is
// zero-extended with the high byte forced to $FF, matching the documented
// undefined-but-consistent chip behavior.
func tfrOp(c *CPU) error {
	pb := c.fetchPC8()
	src := registerSelector(pb >> 4)
	dst := registerSelector(pb & 0x0F)
	if !src.valid() || !dst.valid() {
		return ErrInvalidExchangeTransferRegister
	}
	switch {
	case src.is16Bit() && dst.is16Bit():
		c.set16(dst, c.get16(src))
	case !src.is16Bit() && !dst.is16Bit():
		c.set8(dst, c.get8(src))
	case !src.is16Bit() && dst.is16Bit():
		c.set16(dst, 0xFF00|uint16(c.get8(src)))
	default: // 16-bit source to 8-bit destination: low byte only
		c.set8(dst, byte(c.get16(src)))
	}
	return nil
}

// exgOp implements EXG: swaps the two named registers, same width rules as
// TFR for mismatched pairs (the larger register is truncated/extended on
// both sides of the swap).
func exgOp(c *CPU) error {
	pb := c.fetchPC8()
	r1 := registerSelector(pb >> 4)
	r2 := registerSelector(pb & 0x0F)
	if !r1.valid() || !r2.valid() {
		return ErrInvalidExchangeTransferRegister
	}
	switch {
	case r1.is16Bit() && r2.is16Bit():
		a, b := c.get16(r1), c.get16(r2)
		c.set16(r1, b)
		c.set16(r2, a)
	case !r1.is16Bit() && !r2.is16Bit():
		a, b := c.get8(r1), c.get8(r2)
		c.set8(r1, b)
		c.set8(r2, a)
	case r1.is16Bit() && !r2.is16Bit():
		a, b := c.get16(r1), c.get8(r2)
		c.set16(r1, 0xFF00|uint16(b))
		c.set8(r2, byte(a))
	default:
		a, b := c.get8(r1), c.get16(r2)
		c.set8(r1, byte(b))
		c.set16(r2, 0xFF00|uint16(a))
	}
	return nil
}

// leaOp implements LEAX/LEAY/LEAS/LEAU: the effective address itself (not
// the memory it points at) is loaded into the destination register.
// LEAX/LEAY affect Z; LEAS/LEAU affect no flags.
func leaOp(set func(c *CPU, v uint16), affectsZ bool) opFunc {
	return func(c *CPU) error {
		addr, err := c.resolveIndexed()
		if err != nil {
			return err
		}
		set(c, addr)
		if affectsZ {
			c.Reg.SetZ(addr == 0)
		}
		return nil
	}
}
