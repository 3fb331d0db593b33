package m6809

// ops_logic.go implements AND, OR, EOR, BIT, COM, CLR and TST, all of which
// reduce to logicalFlags/comFlags/clrFlags from flags.go.

func andFn(c *CPU, a, b uint32) uint32 { return c.logicalFlags(a&b, Byte) }
func orFn(c *CPU, a, b uint32) uint32  { return c.logicalFlags(a|b, Byte) }
func eorFn(c *CPU, a, b uint32) uint32 { return c.logicalFlags(a^b, Byte) }
func bitFn(c *CPU, a, b uint32) uint32 { return c.logicalFlags(a&b, Byte) }

func comAcc(get func(*Registers) byte, set func(*Registers, byte)) opFunc {
	return func(c *CPU) error {
		set(&c.Reg, byte(c.comFlags(uint32(get(&c.Reg)), Byte)))
		return nil
	}
}

func comMem(mode AddressingMode) opFunc {
	return func(c *CPU) error {
		op, err := c.fetchOperand(mode, Byte)
		if err != nil {
			return err
		}
		op.write8(c, byte(c.comFlags(uint32(op.read8(c)), Byte)))
		return nil
	}
}

func clrAcc(set func(*Registers, byte)) opFunc {
	return func(c *CPU) error {
		set(&c.Reg, 0)
		c.clrFlags()
		return nil
	}
}

func clrMem(mode AddressingMode) opFunc {
	return func(c *CPU) error {
		op, err := c.fetchOperand(mode, Byte)
		if err != nil {
			return err
		}
		op.write8(c, 0)
		c.clrFlags()
		return nil
	}
}

func tstAcc(get func(*Registers) byte) opFunc {
	return func(c *CPU) error {
		v := get(&c.Reg)
		c.Reg.SetN(v&0x80 != 0)
		c.Reg.SetZ(v == 0)
		c.Reg.SetV(false)
		return nil
	}
}

func tstMem(mode AddressingMode) opFunc {
	return func(c *CPU) error {
		op, err := c.fetchOperand(mode, Byte)
		if err != nil {
			return err
		}
		v := op.read8(c)
		c.Reg.SetN(v&0x80 != 0)
		c.Reg.SetZ(v == 0)
		c.Reg.SetV(false)
		return nil
	}
}

func incAcc(get func(*Registers) byte, set func(*Registers, byte)) opFunc {
	return func(c *CPU) error {
		set(&c.Reg, byte(c.incFlags(uint32(get(&c.Reg)), Byte)))
		return nil
	}
}

func incMem(mode AddressingMode) opFunc {
	return func(c *CPU) error {
		op, err := c.fetchOperand(mode, Byte)
		if err != nil {
			return err
		}
		op.write8(c, byte(c.incFlags(uint32(op.read8(c)), Byte)))
		return nil
	}
}

func decAcc(get func(*Registers) byte, set func(*Registers, byte)) opFunc {
	return func(c *CPU) error {
		set(&c.Reg, byte(c.decFlags(uint32(get(&c.Reg)), Byte)))
		return nil
	}
}

func decMem(mode AddressingMode) opFunc {
	return func(c *CPU) error {
		op, err := c.fetchOperand(mode, Byte)
		if err != nil {
			return err
		}
		op.write8(c, byte(c.decFlags(uint32(op.read8(c)), Byte)))
		return nil
	}
}

// andccOp ANDs the immediate operand into CC (clearing flags), orccOp ORs
// it in (setting flags); both can mask/unmask I and F, including across an
// interrupt boundary.
func andccOp(c *CPU) error {
	v := c.fetchPC8()
	c.Reg.CC &= v
	return nil
}

func orccOp(c *CPU) error {
	v := c.fetchPC8()
	c.Reg.CC |= v
	return nil
}
