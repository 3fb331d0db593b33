package m6809

// ops_branch.go implements the short (8-bit) and long (16-bit) conditional
// branches, BSR/LBSR/JMP/JSR/RTS/RTI, built from a single condition-table
// dispatch the way the teacher's branch handlers share one relative-offset
// helper rather than sixteen near-duplicate functions.

// condition evaluates a branch condition against the current CC.
type condition func(r *Registers) bool

func condAlways(r *Registers) bool  { return true }
func condNever(r *Registers) bool   { return false }
func condHi(r *Registers) bool      { return !r.C() && !r.Z() }
func condLs(r *Registers) bool      { return r.C() || r.Z() }
func condCC(r *Registers) bool      { return !r.C() }
func condCS(r *Registers) bool      { return r.C() }
func condNE(r *Registers) bool      { return !r.Z() }
func condEQ(r *Registers) bool      { return r.Z() }
func condVC(r *Registers) bool      { return !r.V() }
func condVS(r *Registers) bool      { return r.V() }
func condPL(r *Registers) bool      { return !r.N() }
func condMI(r *Registers) bool      { return r.N() }
func condGE(r *Registers) bool      { return r.N() == r.V() }
func condLT(r *Registers) bool      { return r.N() != r.V() }
func condGT(r *Registers) bool      { return !r.Z() && r.N() == r.V() }
func condLE(r *Registers) bool      { return r.Z() || r.N() != r.V() }

// branch8 builds a short-branch handler: always consumes the displacement
// byte (so PC advances correctly even when not taken), applies it only
// when cond holds.
func branch8(cond condition) opFunc {
	return func(c *CPU) error {
		disp := int8(c.fetchPC8())
		if cond(&c.Reg) {
			c.Reg.PC = uint16(int32(c.Reg.PC) + int32(disp))
		}
		return nil
	}
}

// branch16 is branch8's long-branch counterpart, for LBRA (page 1) and
// LBRN (page 2): unlike every other long branch, their cost doesn't depend on
// whether the branch is taken.
func branch16(cond condition) opFunc {
	return func(c *CPU) error {
		disp := int16(c.fetchPC16())
		if cond(&c.Reg) {
			c.Reg.PC = uint16(int32(c.Reg.PC) + int32(disp))
		}
		return nil
	}
}

// branch16cc is the long conditional branch handler for every LBcc other
// than LBRA/LBRN: those cost one cycle more when taken than when not.
func branch16cc(cond condition) opFunc {
	return func(c *CPU) error {
		disp := int16(c.fetchPC16())
		if cond(&c.Reg) {
			c.Reg.PC = uint16(int32(c.Reg.PC) + int32(disp))
			c.cycles++
		}
		return nil
	}
}

// bsrOp implements BSR: push the return address, then branch.
func bsrOp(c *CPU) error {
	disp := int8(c.fetchPC8())
	c.pushWord(&c.Reg.S, c.Reg.PC)
	c.Reg.PC = uint16(int32(c.Reg.PC) + int32(disp))
	return nil
}

// lbsrOp implements LBSR: identical to BSR with a 16-bit displacement.
func lbsrOp(c *CPU) error {
	disp := int16(c.fetchPC16())
	c.pushWord(&c.Reg.S, c.Reg.PC)
	c.Reg.PC = uint16(int32(c.Reg.PC) + int32(disp))
	return nil
}

// jmpOp implements JMP: fetches an address per mode and jumps there.
func jmpOp(mode AddressingMode) opFunc {
	return func(c *CPU) error {
		op, err := c.fetchOperand(mode, Word)
		if err != nil {
			return err
		}
		c.Reg.PC = op.addr
		return nil
	}
}

// jsrOp implements JSR: like JMP but pushes the return address first.
func jsrOp(mode AddressingMode) opFunc {
	return func(c *CPU) error {
		op, err := c.fetchOperand(mode, Word)
		if err != nil {
			return err
		}
		c.pushWord(&c.Reg.S, c.Reg.PC)
		c.Reg.PC = op.addr
		return nil
	}
}

// rtsOp implements RTS: pop PC from the hardware stack.
func rtsOp(c *CPU) error {
	c.Reg.PC = c.pullWord(&c.Reg.S)
	return nil
}

// rtiOp implements RTI, delegating to the shared interrupt-return helper
// in interrupt.go.
func rtiOp(c *CPU) error {
	c.rti()
	return nil
}

// nopOp does nothing.
func nopOp(c *CPU) error { return nil }
