// Package m6809 implements a Motorola MC6809 CPU emulator.
//
// The MC6809 is an 8-bit accumulator processor with:
//   - Two 8-bit accumulators A, B, which double as the 16-bit accumulator D
//   - Two 16-bit index registers X, Y
//   - Two 16-bit stack pointers S (hardware) and U (user)
//   - A 16-bit program counter PC
//   - An 8-bit direct-page register DP
//   - An 8-bit condition-code register CC (bits E F H I N Z V C)
package m6809

import (
	"log"

	"github.com/user-none/go-flex6809/bus"
)

// State is both the Scheduler's run-mode state machine value and the CPU's
// Run/Step return value — the same small enum serves both roles, the way
// the distilled design calls for a single CpuState shared across the
// CPU↔Scheduler boundary.
type State int

const (
	StateRun State = iota
	StateStop
	StateStep
	StateNext
	StateReset
	StateResetRun
	StateExit
	StateSuspend
	StateSchedule
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StateRun:
		return "Run"
	case StateStop:
		return "Stop"
	case StateStep:
		return "Step"
	case StateNext:
		return "Next"
	case StateReset:
		return "Reset"
	case StateResetRun:
		return "ResetRun"
	case StateExit:
		return "Exit"
	case StateSuspend:
		return "Suspend"
	case StateSchedule:
		return "Schedule"
	case StateInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// RunMode selects how Run treats instruction boundaries.
type RunMode int

const (
	// ModeRun executes until the cycle budget or an event ends the quantum.
	ModeRun RunMode = iota
	// ModeSingleStepInto executes exactly one instruction then stops.
	ModeSingleStepInto
	// ModeSingleStepOver executes until the internal "next" breakpoint
	// (armed by PrepareStepOver) is hit.
	ModeSingleStepOver
)

// Observer is notified at each instruction boundary, the way the CPU
// "notifies the Logger" per §2's data-flow description. Implemented by the
// logger package; nil by default.
type Observer interface {
	OnInstruction(snap InstructionSnapshot)
}

// CPU is the MC6809 processor. Register state is owned exclusively by the
// goroutine driving Run/Step; the only cross-thread exposure is Status(),
// which copies under the caller-supplied mutex (see the scheduler package).
type CPU struct {
	Bus bus.Bus
	Reg Registers

	events eventWord
	bp     breakpoints

	cycles uint64 // total_cycles: monotonic, zeroed only by Reset

	nmiArmed bool // set on the first write to S following reset

	stopped bool // true while waiting in CWAI or SYNC

	irqCounts InterruptCounts // per-line serviced-interrupt tallies

	observer Observer

	lastState       State
	lastMnemonic    string
	lastOperandText string

	// prevPC is the address of the most recently fetched instruction.
	prevPC uint16
}

// New creates a CPU wired to bus b and performs a hardware reset.
func New(b bus.Bus) *CPU {
	c := &CPU{Bus: b}
	c.Reset()
	return c
}

// Reset performs a hardware reset: clears registers, sets CC = I|F (mask
// both interrupt lines), and loads PC from $FFFE. Reset is idempotent: two
// successive calls produce identical state.
func (c *CPU) Reset() {
	c.Reg = Registers{CC: ccI | ccF}
	c.Reg.PC = c.readBusWordVec(vecReset)
	c.cycles = 0
	c.nmiArmed = false
	c.stopped = false
	c.bp = breakpoints{}
	c.events = eventWord{}
}

// SetObserver installs the instruction-boundary observer (typically a
// logger.Logger). Passing nil disables notification.
func (c *CPU) SetObserver(o Observer) { c.observer = o }

// Cycles returns the monotonic total cycle count. It never decreases
// except when Reset zeroes it.
func (c *CPU) Cycles() uint64 { return c.cycles }

// Events exposes the pending-event word so producers on any goroutine
// (peripheral signal lines, the Scheduler's timer) can set bits. See
// SetNMI/SetFIRQ/SetIRQ for the documented entry points of §6.
func (c *CPU) SetNMI()  { c.events.Set(EventNmi) }
func (c *CPU) SetFIRQ() { c.events.Set(EventFirq) }
func (c *CPU) SetIRQ()  { c.events.Set(EventIrq) }

// RequestExit asks the CPU to stop at the next instruction or quantum
// boundary. Polled, never used for mid-instruction cancellation, per §5.
func (c *CPU) RequestExit() { c.events.Set(EventDoSchedule) }

// readBusWord reads a big-endian word, matching the real chip's two
// sequential byte accesses (so memory-mapped peripherals see identical
// traffic, per §4.1).
func (c *CPU) readBusWord(addr uint16) uint16 {
	return c.Bus.ReadWord(addr)
}

func (c *CPU) writeBusWord(addr uint16, v uint16) {
	c.Bus.WriteWord(addr, v)
}

func (c *CPU) readBusWordVec(vector uint16) uint16 {
	return c.readBusWord(vector)
}

// fetchPC8 reads one byte at PC and advances PC (mod 65536).
func (c *CPU) fetchPC8() byte {
	v := c.Bus.ReadByte(c.Reg.PC)
	c.Reg.PC++
	return v
}

// fetchPC16 reads a big-endian word at PC and advances PC by two.
func (c *CPU) fetchPC16() uint16 {
	hi := c.fetchPC8()
	lo := c.fetchPC8()
	return uint16(hi)<<8 | uint16(lo)
}

// pushByte pushes v onto the stack pointed to by sp, predecrementing it
// (mod 65536, so S=0x0000 wraps to a write at 0xFFFF per §8).
func (c *CPU) pushByte(sp *uint16, v byte) {
	*sp--
	c.Bus.WriteByte(*sp, v)
}

func (c *CPU) pushWord(sp *uint16, v uint16) {
	c.pushByte(sp, byte(v))
	c.pushByte(sp, byte(v>>8))
}

func (c *CPU) pullByte(sp *uint16) byte {
	v := c.Bus.ReadByte(*sp)
	*sp++
	return v
}

func (c *CPU) pullWord(sp *uint16) uint16 {
	hi := c.pullByte(sp)
	lo := c.pullByte(sp)
	return uint16(hi)<<8 | uint16(lo)
}

// Step executes exactly one instruction (honoring the page-2/page-3
// prefixes transparently) and returns the instruction's total cycle cost.
// The page flag is reset at the start of every outer fetch, per §4.2.
func (c *CPU) Step() (int, error) {
	before := c.cycles

	if c.stopped {
		c.cycles++
		return 1, nil
	}

	c.prevPC = c.Reg.PC
	opcodePC := c.Reg.PC

	b0 := c.fetchPC8()
	page := 1
	opByte := b0
	if b0 == 0x10 || b0 == 0x11 {
		if b0 == 0x10 {
			page = 2
		} else {
			page = 3
		}
		opByte = c.fetchPC8()
	}

	table := pageTable(page)
	entry := table[opByte]
	if entry == nil {
		c.Reg.PC = opcodePC
		c.events.Set(EventInvalid)
		log.Printf("m6809: invalid opcode %#02x (page %d) at pc=%#04x", opByte, page, opcodePC)
		return 0, ErrInvalidInstruction
	}

	// Capture the raw encoded bytes before execution, since execution may
	// advance PC arbitrarily (branches/jumps) or, for self-modifying code,
	// rewrite the very bytes just fetched. This is what the logger's
	// loop detector compares across iterations (§4.5).
	pageBytes := uint16(c.Reg.PC - opcodePC)
	instrLen := pageBytes + uint16(entry.operandLen(c, c.Reg.PC))
	instrBytes := make([]byte, instrLen)
	for i := range instrBytes {
		instrBytes[i] = c.Bus.ReadByte(opcodePC + uint16(i))
	}

	if err := entry.exec(c); err != nil {
		// InvalidPostbyte/InvalidExchangeTransferRegister are raised right
		// after the offending byte is fetched: rewind PC by one onto it,
		// per §7.
		c.Reg.PC--
		c.events.Set(EventInvalid)
		log.Printf("m6809: %v at pc=%#04x", err, opcodePC)
		return 0, err
	}

	c.cycles += uint64(entry.cycles)

	c.lastMnemonic = entry.mnemonic
	c.lastOperandText = FormatOperand(entry.mode, instrBytes[pageBytes:])

	if c.observer != nil {
		c.observer.OnInstruction(InstructionSnapshot{
			PC:          opcodePC,
			Mnemonic:    entry.mnemonic,
			OperandText: c.lastOperandText,
			Bytes:       instrBytes,
			OperandLen:  instrLen,
			Cycles:      c.cycles,
			Reg:         c.Reg,
		})
	}

	return int(c.cycles - before), nil
}

// PrepareStepOver arms the internal breakpoint for SingleStepOver: for
// subroutine-call opcodes (BSR/LBSR/JSR), the fall-through address (the
// instruction following the call); for every other opcode, the normal
// next-instruction address. For a non-call that falls through this stops
// where step-into would; a taken branch or jump keeps running until
// execution reaches that fall-through address.
func (c *CPU) PrepareStepOver() {
	savedPC := c.Reg.PC
	length, _ := c.peekInstructionShape()
	c.armNext(savedPC + uint16(length))
}

// Run drives instruction execution until one of: the cycle budget is
// exhausted (StateRun, so the Scheduler can requeue another quantum), a
// breakpoint is hit (StateStop for a user breakpoint, StateNext for the
// internal step-over breakpoint), an exit or reschedule request
// (RequestExit) is observed (StateSchedule), or a fault occurs
// (StateInvalid plus the error). ModeSingleStepInto always executes
// exactly one instruction and returns StateStep.
func (c *CPU) Run(mode RunMode, cycleBudget uint64) (State, error) {
	state, err := c.run(mode, cycleBudget)
	c.lastState = state
	return state, err
}

func (c *CPU) run(mode RunMode, cycleBudget uint64) (State, error) {
	if mode == ModeSingleStepInto {
		if _, err := c.Step(); err != nil {
			return StateInvalid, err
		}
		return StateStep, nil
	}

	start := c.cycles
	for c.cycles-start < cycleBudget {
		if c.events.Test(EventDoSchedule) {
			c.events.Clear(EventDoSchedule)
			return StateSchedule, nil
		}

		// EventIgnoreBP is a one-shot: the Scheduler sets it only when
		// deliberately resuming off the breakpoint PC just stopped on, so
		// that exact resume doesn't immediately re-trip the same
		// breakpoint. Every other instruction boundary, armed or not,
		// checks the breakpoint table unconditionally.
		if c.events.TestAndClear(EventIgnoreBP) {
			// skip this one check
		} else {
			switch c.breakpointHitAt(c.Reg.PC) {
			case bpUser:
				return StateStop, nil
			case bpNext:
				c.disarmNext()
				return StateNext, nil
			}
		}

		if c.serviceInterrupts() {
			continue
		}

		if c.stopped {
			// SYNC wakes on any pending line regardless of mask; CWAI
			// only proceeds once serviceInterrupts actually vectors.
			if c.events.Test(EventSync) && (c.events.Test(EventNmi) || c.events.Test(EventFirq) || c.events.Test(EventIrq)) {
				c.events.Clear(EventSync)
				c.stopped = false
			}
		}

		if _, err := c.Step(); err != nil {
			return StateInvalid, err
		}
	}
	return StateRun, nil
}

// peekInstructionShape decodes (without executing) the instruction at PC
// to determine its encoded length and whether it is a subroutine call.
func (c *CPU) peekInstructionShape() (length int, isCall bool) {
	pc := c.Reg.PC
	b0 := c.Bus.ReadByte(pc)
	page := 1
	idx := 1
	opByte := b0
	if b0 == 0x10 || b0 == 0x11 {
		page = 2
		if b0 == 0x11 {
			page = 3
		}
		opByte = c.Bus.ReadByte(pc + 1)
		idx = 2
	}
	entry := pageTable(page)[opByte]
	if entry == nil {
		return idx, false
	}
	opLen := entry.operandLen(c, pc+uint16(idx))
	return idx + opLen, entry.isCall
}
