package m6809

// ops_shift.go implements ASL/LSL, LSR, ASR, ROL and ROR for both
// accumulator and memory operands, each a thin wrapper around the
// corresponding flags.go contract.

func shiftAcc(get func(*Registers) byte, set func(*Registers, byte), fn func(c *CPU, a uint32, sz Size) uint32) opFunc {
	return func(c *CPU) error {
		set(&c.Reg, byte(fn(c, uint32(get(&c.Reg)), Byte)))
		return nil
	}
}

func shiftMem(mode AddressingMode, fn func(c *CPU, a uint32, sz Size) uint32) opFunc {
	return func(c *CPU) error {
		op, err := c.fetchOperand(mode, Byte)
		if err != nil {
			return err
		}
		op.write8(c, byte(fn(c, uint32(op.read8(c)), Byte)))
		return nil
	}
}
