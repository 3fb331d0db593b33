package m6809

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// statusVersion is bumped whenever the wire layout of CPUStatus changes, the
// way go-chip-m68k's serialize.go guards deserialization with a leading
// version byte instead of trusting the blob blindly.
const statusVersion = 1

// memAroundSRows/memAroundSCols give the "6x8 bytes of memory around S"
// CPUStatus carries for a memory-inspection panel (§3): six rows of eight
// bytes, starting one row (eight bytes) before S.
const (
	memAroundSRows = 6
	memAroundSCols = 8
)

// CPUStatus is an immutable snapshot of the CPU's programmer-visible state,
// safe to hand across goroutines (e.g. from the Scheduler's status mutex to
// a TUI frame) without racing the CPU goroutine's live registers.
type CPUStatus struct {
	Reg      Registers
	Cycles   uint64
	Stopped  bool
	NMIArmed bool

	// MemAroundS holds memAroundSRows*memAroundSCols bytes of memory
	// starting memAroundSCols bytes before S, for a stack-inspection
	// display.
	MemAroundS [memAroundSRows * memAroundSCols]byte

	Mnemonic    string
	OperandText string
	RunState    State
}

// Status copies the current register file, cycle count, and a window of
// memory around S. Callers on another goroutine must only invoke this
// while holding whatever mutex serializes it against the CPU goroutine
// (see scheduler.Scheduler).
func (c *CPU) Status() CPUStatus {
	s := CPUStatus{
		Reg:         c.Reg,
		Cycles:      c.cycles,
		Stopped:     c.stopped,
		NMIArmed:    c.nmiArmed,
		Mnemonic:    c.lastMnemonic,
		OperandText: c.lastOperandText,
		RunState:    c.lastState,
	}
	start := c.Reg.S - memAroundSCols
	for i := range s.MemAroundS {
		s.MemAroundS[i] = c.Bus.ReadByte(start + uint16(i))
	}
	return s
}

// Serialize encodes s as a small versioned binary blob, mirroring
// go-chip-m68k's fixed-width state dump used for save states.
func (s CPUStatus) Serialize() []byte {
	var buf bytes.Buffer
	buf.WriteByte(statusVersion)
	binary.Write(&buf, binary.BigEndian, s.Reg.A)
	binary.Write(&buf, binary.BigEndian, s.Reg.B)
	binary.Write(&buf, binary.BigEndian, s.Reg.X)
	binary.Write(&buf, binary.BigEndian, s.Reg.Y)
	binary.Write(&buf, binary.BigEndian, s.Reg.S)
	binary.Write(&buf, binary.BigEndian, s.Reg.U)
	binary.Write(&buf, binary.BigEndian, s.Reg.PC)
	binary.Write(&buf, binary.BigEndian, s.Reg.DP)
	binary.Write(&buf, binary.BigEndian, s.Reg.CC)
	binary.Write(&buf, binary.BigEndian, s.Cycles)
	flags := byte(0)
	if s.Stopped {
		flags |= 0x01
	}
	if s.NMIArmed {
		flags |= 0x02
	}
	buf.WriteByte(flags)
	return buf.Bytes()
}

// DeserializeCPUStatus decodes a blob written by Serialize, rejecting
// anything with a version it doesn't recognize.
func DeserializeCPUStatus(data []byte) (CPUStatus, error) {
	r := bytes.NewReader(data)
	version, err := r.ReadByte()
	if err != nil {
		return CPUStatus{}, fmt.Errorf("m6809: status blob too short: %w", err)
	}
	if version != statusVersion {
		return CPUStatus{}, fmt.Errorf("m6809: unsupported status version %d", version)
	}
	var s CPUStatus
	for _, field := range []any{
		&s.Reg.A, &s.Reg.B, &s.Reg.X, &s.Reg.Y, &s.Reg.S, &s.Reg.U,
		&s.Reg.PC, &s.Reg.DP, &s.Reg.CC, &s.Cycles,
	} {
		if err := binary.Read(r, binary.BigEndian, field); err != nil {
			return CPUStatus{}, fmt.Errorf("m6809: decoding status: %w", err)
		}
	}
	flags, err := r.ReadByte()
	if err != nil {
		return CPUStatus{}, fmt.Errorf("m6809: decoding status flags: %w", err)
	}
	s.Stopped = flags&0x01 != 0
	s.NMIArmed = flags&0x02 != 0
	return s, nil
}
