package m6809

// decode.go builds the three opcode tables (unprefixed, $10-prefixed,
// $11-prefixed) once at package init, the same way the teacher's Opcodes
// map is a package-level table of {name, mode, cycles, handler} built by a
// literal, generalized here to three pages and a handler that can return an
// error (ErrInvalidPostbyte, ErrInvalidExchangeTransferRegister) instead of
// always succeeding.

type opFunc func(c *CPU) error

// opcodeEntry is one slot in a page table.
type opcodeEntry struct {
	mnemonic   string
	mode       AddressingMode
	cycles     int
	isCall     bool
	exec       opFunc
	operandLen func(c *CPU, pc uint16) int
}

var (
	table1 [256]*opcodeEntry
	table2 [256]*opcodeEntry
	table3 [256]*opcodeEntry
)

func pageTable(page int) *[256]*opcodeEntry {
	switch page {
	case 2:
		return &table2
	case 3:
		return &table3
	default:
		return &table1
	}
}

// indexedOperandLen reports how many operand bytes, the postbyte included,
// an indexed addressing mode consumes, purely from the postbyte's shape —
// independent of register contents, per §4.2's postbyte format table.
func indexedOperandLen(pb byte) int {
	if pb&0x80 == 0 {
		return 1
	}
	switch indexedSubmode(pb & 0x0F) {
	case subOffset8, subPCR8:
		return 2
	case subOffset16, subPCR16, subExtInd:
		return 3
	default:
		return 1
	}
}

func operandLenFor(mode AddressingMode, sz Size) func(c *CPU, pc uint16) int {
	switch mode {
	case amImmediate:
		if sz == Word {
			return func(c *CPU, pc uint16) int { return 2 }
		}
		return func(c *CPU, pc uint16) int { return 1 }
	case amDirect:
		return func(c *CPU, pc uint16) int { return 1 }
	case amExtended:
		return func(c *CPU, pc uint16) int { return 2 }
	case amRelative8:
		return func(c *CPU, pc uint16) int { return 1 }
	case amRelative16:
		return func(c *CPU, pc uint16) int { return 2 }
	case amIndexed:
		return func(c *CPU, pc uint16) int { return indexedOperandLen(c.Bus.ReadByte(pc)) }
	default:
		return func(c *CPU, pc uint16) int { return 0 }
	}
}

// reg registers one opcode slot in the given page's table.
func reg(page int, opcode byte, mnemonic string, mode AddressingMode, sz Size, cycles int, isCall bool, exec opFunc) {
	e := &opcodeEntry{
		mnemonic:   mnemonic,
		mode:       mode,
		cycles:     cycles,
		isCall:     isCall,
		exec:       exec,
		operandLen: operandLenFor(mode, sz),
	}
	pageTable(page)[opcode] = e
}

// InstructionSnapshot is the per-instruction boundary notification payload
// delivered to an Observer (the logger package), modeled on what the
// teacher's debugger view pulls from the CPU each frame: PC, mnemonic,
// cycle count, and the register file, but pushed rather than polled.
type InstructionSnapshot struct {
	PC          uint16
	Mnemonic    string
	OperandText string
	Bytes       []byte
	OperandLen  uint16
	Cycles      uint64
	Reg         Registers
}
