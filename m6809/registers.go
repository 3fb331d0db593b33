package m6809

// Condition-code bits, MSB-to-LSB as "EFHINZVC". Modeled as a single packed
// byte with bit-test/bit-set helper methods — not as a parallel set of
// bools — so there is exactly one representation of CC state, the way
// go-chip-m68k keeps SR flags as bit constants on a uint16 rather than a
// bool struct.
const (
	ccC byte = 1 << iota // Carry
	ccV                  // Overflow
	ccZ                  // Zero
	ccN                  // Negative
	ccI                  // IRQ mask
	ccH                  // Half-carry
	ccF                  // FIRQ mask
	ccE                  // Entire
)

// Registers holds the programmer-visible state of the MC6809. D is
// intentionally absent as a stored field: it is a view over A/B, computed
// by the D/SetD methods below, so a write to A or B is observable via D and
// vice versa with no duplicated storage.
type Registers struct {
	A, B byte
	X, Y uint16
	S, U uint16
	PC   uint16
	DP   byte
	CC   byte
}

// D returns the 16-bit accumulator formed by A (high) and B (low).
func (r *Registers) D() uint16 {
	return uint16(r.A)<<8 | uint16(r.B)
}

// SetD writes the 16-bit accumulator, splitting it across A (high) and B
// (low).
func (r *Registers) SetD(v uint16) {
	r.A = byte(v >> 8)
	r.B = byte(v)
}

func (r *Registers) flag(bit byte) bool { return r.CC&bit != 0 }

func (r *Registers) setFlag(bit byte, v bool) {
	if v {
		r.CC |= bit
	} else {
		r.CC &^= bit
	}
}

func (r *Registers) C() bool         { return r.flag(ccC) }
func (r *Registers) SetC(v bool)     { r.setFlag(ccC, v) }
func (r *Registers) V() bool         { return r.flag(ccV) }
func (r *Registers) SetV(v bool)     { r.setFlag(ccV, v) }
func (r *Registers) Z() bool         { return r.flag(ccZ) }
func (r *Registers) SetZ(v bool)     { r.setFlag(ccZ, v) }
func (r *Registers) N() bool         { return r.flag(ccN) }
func (r *Registers) SetN(v bool)     { r.setFlag(ccN, v) }
func (r *Registers) I() bool         { return r.flag(ccI) }
func (r *Registers) SetI(v bool)     { r.setFlag(ccI, v) }
func (r *Registers) H() bool         { return r.flag(ccH) }
func (r *Registers) SetH(v bool)     { r.setFlag(ccH, v) }
func (r *Registers) F() bool         { return r.flag(ccF) }
func (r *Registers) SetF(v bool)     { r.setFlag(ccF, v) }
func (r *Registers) E() bool         { return r.flag(ccE) }
func (r *Registers) SetE(v bool)     { r.setFlag(ccE, v) }

// setNZ sets N and Z from result, the common tail of nearly every ALU op.
func (r *Registers) setNZ(result uint32, sz Size) {
	r.SetN(result&sz.MSB() != 0)
	r.SetZ(result&sz.Mask() == 0)
}

// registerSelector maps the TFR/EXG postbyte nibble encoding to a
// register, per §4.2: 0=D, 1=X, 2=Y, 3=U, 4=S, 5=PC, 8=A, 9=B, 10=CC, 11=DP.
type registerSelector byte

const (
	regD  registerSelector = 0x0
	regX  registerSelector = 0x1
	regY  registerSelector = 0x2
	regU  registerSelector = 0x3
	regS  registerSelector = 0x4
	regPC registerSelector = 0x5
	regA  registerSelector = 0x8
	regB  registerSelector = 0x9
	regCC registerSelector = 0xA
	regDP registerSelector = 0xB
)

// is16Bit reports whether the selector names a 16-bit register.
func (s registerSelector) is16Bit() bool {
	switch s {
	case regD, regX, regY, regU, regS, regPC:
		return true
	case regA, regB, regCC, regDP:
		return false
	default:
		return false
	}
}

// valid reports whether the nibble names one of the ten legal TFR/EXG
// registers.
func (s registerSelector) valid() bool {
	switch s {
	case regD, regX, regY, regU, regS, regPC, regA, regB, regCC, regDP:
		return true
	default:
		return false
	}
}

// get16 reads the selector's register as a 16-bit value.
func (c *CPU) get16(s registerSelector) uint16 {
	switch s {
	case regD:
		return c.Reg.D()
	case regX:
		return c.Reg.X
	case regY:
		return c.Reg.Y
	case regU:
		return c.Reg.U
	case regS:
		return c.Reg.S
	case regPC:
		return c.Reg.PC
	}
	return 0
}

// set16 writes a 16-bit value into the selector's register.
func (c *CPU) set16(s registerSelector, v uint16) {
	switch s {
	case regD:
		c.Reg.SetD(v)
	case regX:
		c.Reg.X = v
	case regY:
		c.Reg.Y = v
	case regU:
		c.Reg.U = v
	case regS:
		c.Reg.S = v
		c.nmiArmed = true
	case regPC:
		c.Reg.PC = v
	}
}

// get8 reads the selector's register as an 8-bit value.
func (c *CPU) get8(s registerSelector) byte {
	switch s {
	case regA:
		return c.Reg.A
	case regB:
		return c.Reg.B
	case regCC:
		return c.Reg.CC
	case regDP:
		return c.Reg.DP
	}
	return 0
}

// set8 writes an 8-bit value into the selector's register.
func (c *CPU) set8(s registerSelector, v byte) {
	switch s {
	case regA:
		c.Reg.A = v
	case regB:
		c.Reg.B = v
	case regCC:
		c.Reg.CC = v
	case regDP:
		c.Reg.DP = v
	}
}
