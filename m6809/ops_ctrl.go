package m6809

// ops_ctrl.go implements the control-flow/interrupt-adjacent instructions
// that don't fit ops_branch.go: SWI/SWI2/SWI3, CWAI and SYNC.

func swiOp(c *CPU) error {
	c.softwareInterrupt(vecSWI, true)
	return nil
}

func swi2Op(c *CPU) error {
	c.softwareInterrupt(vecSWI2, false)
	return nil
}

func swi3Op(c *CPU) error {
	c.softwareInterrupt(vecSWI3, false)
	return nil
}

// cwaiOp implements CWAI: AND the immediate mask into CC, then stack the
// full register file (as if for an interrupt) and halt fetch/execute until
// NMI, FIRQ or IRQ arrives — matching the real chip's "pre-stack so the
// interrupt's own stacking is skipped" optimization. The event loop in
// cpu.go's run notices c.stopped and, on serviceInterrupts, vectors
// directly without re-stacking.
func cwaiOp(c *CPU) error {
	mask := c.fetchPC8()
	c.Reg.CC &= mask
	c.Reg.SetE(true)
	c.pushWord(&c.Reg.S, c.Reg.PC)
	c.pushWord(&c.Reg.S, c.Reg.U)
	c.pushWord(&c.Reg.S, c.Reg.Y)
	c.pushWord(&c.Reg.S, c.Reg.X)
	c.pushByte(&c.Reg.S, c.Reg.DP)
	c.pushByte(&c.Reg.S, c.Reg.B)
	c.pushByte(&c.Reg.S, c.Reg.A)
	c.pushByte(&c.Reg.S, c.Reg.CC)
	c.stopped = true
	c.events.Set(EventCwai)
	return nil
}

// syncOp implements SYNC: halt fetch/execute until any interrupt line
// becomes active (the condition is not masked by I/F — SYNC always wakes,
// masking only decides whether the CPU then services it).
func syncOp(c *CPU) error {
	c.stopped = true
	c.events.Set(EventSync)
	return nil
}
