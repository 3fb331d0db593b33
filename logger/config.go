// Package logger implements the per-instruction trace of the MC6809 core:
// a filtered, optionally loop-compressed stream of "PC mnemonic operand"
// records in a text or CSV format. It attaches to a *m6809.CPU as an
// m6809.Observer, the way the teacher's debugger pulled CPU state each
// frame — generalized here to a push notification the CPU fires at every
// instruction boundary instead of a UI polling loop.
package logger

import "fmt"

// Format selects the on-disk record shape.
type Format int

const (
	FormatText Format = iota
	FormatCSV
)

// Config carries everything §3 describes for the logger: an address
// range filter, optional start/stop activation addresses, a register
// mask, the destination path, the output format, and the two behavioral
// flags.
type Config struct {
	MinAddr, MaxAddr uint16

	// StartAddr/HasStartAddr and StopAddr/HasStopAddr model the spec's
	// "optional" activation addresses as an explicit presence flag
	// rather than a sentinel value, since 0x0000 is a legitimate address.
	StartAddr    uint16
	HasStartAddr bool
	StopAddr     uint16
	HasStopAddr  bool

	RegisterMask RegisterMask

	Path      string
	Format    Format
	Separator rune // CSV field separator: ';', ',', ' ', or '\t'

	LogCycleCount     bool
	IsLoopOptimization bool
}

// NewConfig returns a Config with the teacher's preferred construction
// style (a plain struct populated by a constructor function, not a
// framework): the full address space, no start/stop gating, every
// register logged, text format, no loop compression.
func NewConfig() Config {
	return Config{
		MinAddr:      0x0000,
		MaxAddr:      0xFFFF,
		RegisterMask: RegAll,
		Format:       FormatText,
		Separator:    ';',
	}
}

// RegisterMask selects which registers a log record includes.
type RegisterMask uint16

const (
	RegCC RegisterMask = 1 << iota
	RegA
	RegB
	RegDP
	RegX
	RegY
	RegU
	RegS

	RegAll = RegCC | RegA | RegB | RegDP | RegX | RegY | RegU | RegS
)

func (c Config) validSeparator() rune {
	switch c.Separator {
	case ';', ',', ' ', '\t':
		return c.Separator
	default:
		return ';'
	}
}

// ErrLogFileOpen is returned by Open (wrapped with the OS error) when the
// configured path cannot be created. Per §7, this disables the logger
// silently rather than being treated as fatal.
var ErrLogFileOpen = fmt.Errorf("logger: could not open log file")
