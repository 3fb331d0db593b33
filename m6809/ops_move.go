package m6809

// ops_move.go implements LD/ST for A, B, D, X, Y, S and U.

func ld8(set func(*Registers, byte), mode AddressingMode) opFunc {
	return func(c *CPU) error {
		op, err := c.fetchOperand(mode, Byte)
		if err != nil {
			return err
		}
		v := op.read8(c)
		set(&c.Reg, v)
		c.Reg.SetN(v&0x80 != 0)
		c.Reg.SetZ(v == 0)
		c.Reg.SetV(false)
		return nil
	}
}

func st8(get func(*Registers) byte, mode AddressingMode) opFunc {
	return func(c *CPU) error {
		op, err := c.fetchOperand(mode, Byte)
		if err != nil {
			return err
		}
		v := get(&c.Reg)
		op.write8(c, v)
		c.Reg.SetN(v&0x80 != 0)
		c.Reg.SetZ(v == 0)
		c.Reg.SetV(false)
		return nil
	}
}

func ld16(set func(c *CPU, v uint16), mode AddressingMode, armsNMI bool) opFunc {
	return func(c *CPU) error {
		op, err := c.fetchOperand(mode, Word)
		if err != nil {
			return err
		}
		v := op.read16(c)
		set(c, v)
		if armsNMI {
			c.nmiArmed = true
		}
		c.Reg.SetN(v&0x8000 != 0)
		c.Reg.SetZ(v == 0)
		c.Reg.SetV(false)
		return nil
	}
}

func st16(get func(c *CPU) uint16, mode AddressingMode) opFunc {
	return func(c *CPU) error {
		op, err := c.fetchOperand(mode, Word)
		if err != nil {
			return err
		}
		v := get(c)
		op.write16(c, v)
		c.Reg.SetN(v&0x8000 != 0)
		c.Reg.SetZ(v == 0)
		c.Reg.SetV(false)
		return nil
	}
}
