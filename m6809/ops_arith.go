package m6809

// ops_arith.go implements the additive/subtractive ALU instructions (ADD,
// ADC, SUB, SBC, CMP for both 8-bit accumulators and the 16-bit register
// pairs) plus NEG, DAA, MUL, SEX and ABX, each built from the flags.go
// contracts rather than re-deriving carry/overflow inline, matching
// go-chip-m68k's split between "compute effective address" and "apply the
// documented flag formula."

func accA(r *Registers) byte      { return r.A }
func setAccA(r *Registers, v byte) { r.A = v }
func accB(r *Registers) byte      { return r.B }
func setAccB(r *Registers, v byte) { r.B = v }

// alu8 builds an 8-bit accumulator op that fetches an operand with mode,
// combines it with the accumulator via fn, and stores the result back
// (store=false for CMP, which only sets flags).
func alu8(get func(*Registers) byte, set func(*Registers, byte), mode AddressingMode, store bool,
	fn func(c *CPU, a, b uint32) uint32) opFunc {
	return func(c *CPU) error {
		op, err := c.fetchOperand(mode, Byte)
		if err != nil {
			return err
		}
		a := uint32(get(&c.Reg))
		b := uint32(op.read8(c))
		res := fn(c, a, b)
		if store {
			set(&c.Reg, byte(res))
		}
		return nil
	}
}

func addFn(c *CPU, a, b uint32) uint32 { return c.addFlags(a, b, Byte, 0) }
func adcFn(c *CPU, a, b uint32) uint32 {
	carry := uint32(0)
	if c.Reg.C() {
		carry = 1
	}
	return c.addFlags(a, b, Byte, carry)
}
func subFn(c *CPU, a, b uint32) uint32 { return c.subFlags(a, b, Byte, 0) }
func sbcFn(c *CPU, a, b uint32) uint32 {
	borrow := uint32(0)
	if c.Reg.C() {
		borrow = 1
	}
	return c.subFlags(a, b, Byte, borrow)
}

// alu16 is alu8's 16-bit counterpart, used for ADDD/SUBD/CMPD/CMPX/CMPY/
// CMPS/CMPU, all of which read a 16-bit operand and combine it with a
// 16-bit register.
func alu16(get func(c *CPU) uint16, set func(c *CPU, v uint16), mode AddressingMode, store bool,
	fn func(c *CPU, a, b uint32) uint32) opFunc {
	return func(c *CPU) error {
		op, err := c.fetchOperand(mode, Word)
		if err != nil {
			return err
		}
		a := uint32(get(c))
		b := uint32(op.read16(c))
		res := fn(c, a, b)
		if store {
			set(c, uint16(res))
		}
		return nil
	}
}

func add16Fn(c *CPU, a, b uint32) uint32 { return c.addFlags(a, b, Word, 0) }
func sub16Fn(c *CPU, a, b uint32) uint32 { return c.subFlags(a, b, Word, 0) }

// negAcc and negMem implement NEG for an accumulator (get/set) or memory
// (mode).
func negAcc(get func(*Registers) byte, set func(*Registers, byte)) opFunc {
	return func(c *CPU) error {
		a := uint32(get(&c.Reg))
		set(&c.Reg, byte(c.negFlags(a, Byte)))
		return nil
	}
}

func negMem(mode AddressingMode) opFunc {
	return func(c *CPU) error {
		op, err := c.fetchOperand(mode, Byte)
		if err != nil {
			return err
		}
		a := uint32(op.read8(c))
		op.write8(c, byte(c.negFlags(a, Byte)))
		return nil
	}
}

// daaOp implements DAA: decimal-adjusts A after a BCD addition, using H and
// C from the preceding ADD/ADC plus A's own nibbles to decide the two
// correction nibbles, per the documented DAA truth table.
func daaOp(c *CPU) error {
	a := c.Reg.A
	hiNibble := a >> 4
	loNibble := a & 0x0F

	correction := byte(0)
	carryOut := c.Reg.C()

	if c.Reg.H() || loNibble > 9 {
		correction |= 0x06
	}
	if carryOut || hiNibble > 9 || (hiNibble == 9 && loNibble > 9) {
		correction |= 0x60
		carryOut = true
	}

	result := uint32(a) + uint32(correction)
	c.Reg.A = byte(result)
	c.Reg.SetN(c.Reg.A&0x80 != 0)
	c.Reg.SetZ(c.Reg.A == 0)
	c.Reg.SetC(carryOut || result > 0xFF)
	return nil
}

// mulOp implements MUL: D = A * B, unsigned, Z set from D, C set from bit 7
// of the result (i.e. the high bit of the new B, per the datasheet).
func mulOp(c *CPU) error {
	product := uint16(c.Reg.A) * uint16(c.Reg.B)
	c.Reg.SetD(product)
	c.Reg.SetZ(product == 0)
	c.Reg.SetC(product&0x80 != 0)
	return nil
}

// sexOp sign-extends B into A, forming D = sign-extended B.
func sexOp(c *CPU) error {
	c.Reg.SetD(uint16(int16(int8(c.Reg.B))))
	c.Reg.SetN(c.Reg.D()&0x8000 != 0)
	c.Reg.SetZ(c.Reg.D() == 0)
	return nil
}

// abxOp adds B (unsigned) into X, unconditionally, affecting no flags.
func abxOp(c *CPU) error {
	c.Reg.X += uint16(c.Reg.B)
	return nil
}
