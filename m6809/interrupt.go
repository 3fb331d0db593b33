package m6809

// Interrupt vector addresses, fixed in the top of the address space exactly
// as wired on real hardware (§6 "Vector table").
const (
	vecSWI3  uint16 = 0xFFF2
	vecSWI2  uint16 = 0xFFF4
	vecFIRQ  uint16 = 0xFFF6
	vecIRQ   uint16 = 0xFFF8
	vecSWI   uint16 = 0xFFFA
	vecNMI   uint16 = 0xFFFC
	vecReset uint16 = 0xFFFE
)

// serviceInterrupts checks pending NMI/FIRQ/IRQ in priority order and
// services at most one per call, per §6's "only the highest-priority
// pending line is serviced" rule, once per instruction boundary of the run
// loop. It returns true if
// an interrupt was serviced (so the caller knows a Step-equivalent amount
// of work, and cycles, were consumed).
func (c *CPU) serviceInterrupts() bool {
	cwaiPreStacked := c.events.Test(EventCwai)

	if c.events.Test(EventNmi) {
		if !c.nmiArmed {
			// NMI is ignored until the first write to S after reset,
			// matching the real chip's power-on behavior (§6).
			c.events.Clear(EventNmi)
			return false
		}
		c.events.Clear(EventNmi)
		c.irqCounts.NMI++
		c.vectorInterrupt(vecNMI, true, true, cwaiPreStacked)
		return true
	}
	if c.events.Test(EventFirq) && !c.Reg.F() {
		c.events.Clear(EventFirq)
		c.irqCounts.FIRQ++
		c.vectorInterrupt(vecFIRQ, false, true, cwaiPreStacked)
		return true
	}
	if c.events.Test(EventIrq) && !c.Reg.I() {
		c.events.Clear(EventIrq)
		c.irqCounts.IRQ++
		c.vectorInterrupt(vecIRQ, true, false, cwaiPreStacked)
		return true
	}
	return false
}

// InterruptCounts is a value-copy of the per-line serviced-interrupt
// tallies, returned by the CPU's InterruptCounts method and re-exported
// by the Scheduler's GetInterruptStatus per §6.
type InterruptCounts struct {
	NMI, FIRQ, IRQ uint64
}

// InterruptCounts returns how many times each interrupt line has actually
// been serviced (vectored), not merely requested. Safe to call from any
// goroutine only while serialized against the CPU goroutine by the caller
// (the Scheduler copies this under its own irqStatusMu, per §5).
func (c *CPU) InterruptCounts() InterruptCounts { return c.irqCounts }

// vectorInterrupt stacks state (unless CWAI already did so), masks the
// appropriate CC bits and jumps PC to vector. full/setF follow the
// hardwired per-line rule: NMI stacks the full register file and masks
// both I and F; FIRQ stacks only PC+CC and masks both; IRQ stacks the full
// file and masks only I.
func (c *CPU) vectorInterrupt(vector uint16, full, setF, alreadyStacked bool) {
	c.stopped = false
	c.events.Clear(EventCwai)
	c.events.Clear(EventSync)
	if !alreadyStacked {
		c.enterInterrupt(vector, full, setF)
		return
	}
	c.Reg.SetI(true)
	if setF {
		c.Reg.SetF(true)
	}
	c.Reg.PC = c.readBusWord(vector)
	c.cycles += 3
}

// enterInterrupt stacks state and vectors PC. full selects whether the
// entire register file is pushed (NMI/IRQ/SWI) or only PC+CC (FIRQ),
// setting E in CC accordingly so RTI knows how much to restore (§6).
func (c *CPU) enterInterrupt(vector uint16, full bool, setF bool) {
	if full {
		c.Reg.SetE(true)
		c.pushWord(&c.Reg.S, c.Reg.PC)
		c.pushWord(&c.Reg.S, c.Reg.U)
		c.pushWord(&c.Reg.S, c.Reg.Y)
		c.pushWord(&c.Reg.S, c.Reg.X)
		c.pushByte(&c.Reg.S, c.Reg.DP)
		c.pushByte(&c.Reg.S, c.Reg.B)
		c.pushByte(&c.Reg.S, c.Reg.A)
		c.pushByte(&c.Reg.S, c.Reg.CC)
		c.cycles += 19
	} else {
		c.Reg.SetE(false)
		c.pushWord(&c.Reg.S, c.Reg.PC)
		c.pushByte(&c.Reg.S, c.Reg.CC)
		c.cycles += 10
	}
	c.Reg.SetI(true)
	if setF {
		c.Reg.SetF(true)
	}
	c.Reg.PC = c.readBusWord(vector)
}

// rti restores state from the stack, using the E bit to decide whether the
// full register file or just PC+CC was stacked. Shared by RTI's handler.
func (c *CPU) rti() {
	cc := c.pullByte(&c.Reg.S)
	c.Reg.CC = cc
	if c.Reg.E() {
		c.Reg.A = c.pullByte(&c.Reg.S)
		c.Reg.B = c.pullByte(&c.Reg.S)
		c.Reg.DP = c.pullByte(&c.Reg.S)
		c.Reg.X = c.pullWord(&c.Reg.S)
		c.Reg.Y = c.pullWord(&c.Reg.S)
		c.Reg.U = c.pullWord(&c.Reg.S)
		c.Reg.PC = c.pullWord(&c.Reg.S)
		c.cycles += 15
	} else {
		c.Reg.PC = c.pullWord(&c.Reg.S)
		c.cycles += 6
	}
}

// softwareInterrupt implements SWI/SWI2/SWI3: always a full-state stack,
// always sets I (and F, for SWI only), per §6.
func (c *CPU) softwareInterrupt(vector uint16, setF bool) {
	c.Reg.SetE(true)
	c.pushWord(&c.Reg.S, c.Reg.PC)
	c.pushWord(&c.Reg.S, c.Reg.U)
	c.pushWord(&c.Reg.S, c.Reg.Y)
	c.pushWord(&c.Reg.S, c.Reg.X)
	c.pushByte(&c.Reg.S, c.Reg.DP)
	c.pushByte(&c.Reg.S, c.Reg.B)
	c.pushByte(&c.Reg.S, c.Reg.A)
	c.pushByte(&c.Reg.S, c.Reg.CC)
	c.Reg.SetI(true)
	if setF {
		c.Reg.SetF(true)
	}
	c.Reg.PC = c.readBusWord(vector)
}
