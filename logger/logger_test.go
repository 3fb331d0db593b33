package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user-none/go-flex6809/m6809"
)

func TestFormatCC(t *testing.T) {
	assert.Equal(t, "-F-I-Z-C", FormatCC(0x55))
	assert.Equal(t, "E-H-N-V-", FormatCC(0xAA))
}

func rec(pc uint16, mnemonic string, bytes []byte) m6809.InstructionSnapshot {
	return m6809.InstructionSnapshot{
		PC:       pc,
		Mnemonic: mnemonic,
		Bytes:    bytes,
		Reg:      m6809.Registers{PC: pc},
	}
}

func newTestLogger(t *testing.T, cfg Config) (*Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.log")
	cfg.Path = path
	l, err := Open(cfg)
	require.NoError(t, err)
	return l, path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// TestLoggerFlatTrace confirms that with loop compression disabled every
// record is written verbatim, in order.
func TestLoggerFlatTrace(t *testing.T) {
	cfg := NewConfig()
	cfg.RegisterMask = 0
	l, path := newTestLogger(t, cfg)

	l.OnInstruction(rec(0x1000, "LDA", []byte{0x86, 0x05}))
	l.OnInstruction(rec(0x1002, "DECA", []byte{0x4A}))
	require.NoError(t, l.Close())

	lines := strings.Split(strings.TrimRight(readFile(t, path), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1000 LDA", lines[0])
	assert.Equal(t, "1002 DECA", lines[1])
}

// TestLoggerCompressesLongLoop reproduces a six-iteration counted loop
// (LDA lead-in, DECA/BNE body, JMP tail) and expects the body collapsed to
// a single DO/REPEAT=5 block.
func TestLoggerCompressesLongLoop(t *testing.T) {
	cfg := NewConfig()
	cfg.RegisterMask = 0
	cfg.IsLoopOptimization = true
	l, path := newTestLogger(t, cfg)

	decaBytes := []byte{0x4A}
	bneBytes := []byte{0x26, 0xFD}

	l.OnInstruction(rec(0x1000, "LDA", []byte{0x86, 0x06}))
	for i := 0; i < 6; i++ {
		l.OnInstruction(rec(0x1002, "DECA", decaBytes))
		l.OnInstruction(rec(0x1003, "BNE", bneBytes))
	}
	l.OnInstruction(rec(0x1005, "JMP", []byte{0x7E, 0x20, 0x00}))
	require.NoError(t, l.Close())

	lines := strings.Split(strings.TrimRight(readFile(t, path), "\n"), "\n")
	assert.Equal(t, []string{
		"1000 LDA",
		"DO",
		"1002 DECA",
		"1003 BNE",
		"REPEAT=5",
		"1005 JMP",
	}, lines)
}

// TestLoggerUnrollsShortLoop reproduces a two-iteration loop, below the
// compression threshold, and expects it emitted in full (no DO/REPEAT).
func TestLoggerUnrollsShortLoop(t *testing.T) {
	cfg := NewConfig()
	cfg.RegisterMask = 0
	cfg.IsLoopOptimization = true
	l, path := newTestLogger(t, cfg)

	decaBytes := []byte{0x4A}
	bneBytes := []byte{0x26, 0xFD}

	for i := 0; i < 2; i++ {
		l.OnInstruction(rec(0x1000, "DECA", decaBytes))
		l.OnInstruction(rec(0x1001, "BNE", bneBytes))
	}
	l.OnInstruction(rec(0x1003, "JMP", []byte{0x7E, 0x20, 0x00}))
	require.NoError(t, l.Close())

	lines := strings.Split(strings.TrimRight(readFile(t, path), "\n"), "\n")
	assert.Equal(t, []string{
		"1000 DECA",
		"1001 BNE",
		"1000 DECA",
		"1001 BNE",
		"1003 JMP",
	}, lines)
}

// TestLoggerPartialIterationOnEarlyExit confirms that when a loop body
// runs three full times then deviates partway through a fourth attempt,
// the compressed block still reports the genuinely-executed partial
// prefix before the deviating instruction.
func TestLoggerPartialIterationOnEarlyExit(t *testing.T) {
	cfg := NewConfig()
	cfg.RegisterMask = 0
	cfg.IsLoopOptimization = true
	l, path := newTestLogger(t, cfg)

	b1 := []byte{0x01}
	b2 := []byte{0x02}
	b3 := []byte{0x03}

	for i := 0; i < 3; i++ {
		l.OnInstruction(rec(0x2000, "OP1", b1))
		l.OnInstruction(rec(0x2001, "OP2", b2))
		l.OnInstruction(rec(0x2002, "OP3", b3))
	}
	// A fourth attempt that only gets through the first two body
	// instructions before diverging.
	l.OnInstruction(rec(0x2000, "OP1", b1))
	l.OnInstruction(rec(0x2001, "OP2", b2))
	l.OnInstruction(rec(0x3000, "OPX", []byte{0xFF}))
	require.NoError(t, l.Close())

	lines := strings.Split(strings.TrimRight(readFile(t, path), "\n"), "\n")
	assert.Equal(t, []string{
		"DO",
		"2000 OP1",
		"2001 OP2",
		"2002 OP3",
		"REPEAT=2",
		"2000 OP1",
		"2001 OP2",
		"3000 OPX",
	}, lines)
}

// TestLoggerAddressRangeFilter confirms records outside [MinAddr, MaxAddr]
// are dropped.
func TestLoggerAddressRangeFilter(t *testing.T) {
	cfg := NewConfig()
	cfg.RegisterMask = 0
	cfg.MinAddr = 0x2000
	cfg.MaxAddr = 0x2FFF
	l, path := newTestLogger(t, cfg)

	l.OnInstruction(rec(0x1000, "LDA", []byte{0x86, 0x01}))
	l.OnInstruction(rec(0x2000, "STA", []byte{0xB7, 0x30, 0x00}))
	l.OnInstruction(rec(0x3000, "NOP", []byte{0x12}))
	require.NoError(t, l.Close())

	lines := strings.Split(strings.TrimRight(readFile(t, path), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "2000 STA", lines[0])
}

// TestLoggerStartStopGating confirms the logger stays inactive until
// StartAddr is seen and goes inactive again once StopAddr is seen.
func TestLoggerStartStopGating(t *testing.T) {
	cfg := NewConfig()
	cfg.RegisterMask = 0
	cfg.HasStartAddr = true
	cfg.StartAddr = 0x2000
	cfg.HasStopAddr = true
	cfg.StopAddr = 0x2002
	l, path := newTestLogger(t, cfg)

	l.OnInstruction(rec(0x1000, "LDA", []byte{0x86, 0x01}))
	l.OnInstruction(rec(0x2000, "STA", []byte{0xB7, 0x30, 0x00}))
	l.OnInstruction(rec(0x2002, "STB", []byte{0xF7, 0x30, 0x01}))
	l.OnInstruction(rec(0x2005, "NOP", []byte{0x12}))
	require.NoError(t, l.Close())

	lines := strings.Split(strings.TrimRight(readFile(t, path), "\n"), "\n")
	assert.Equal(t, []string{
		"2000 STA",
		"2002 STB",
	}, lines)
}

// TestLoggerOpenFailure confirms Open surfaces ErrLogFileOpen for an
// unwritable path instead of panicking.
func TestLoggerOpenFailure(t *testing.T) {
	cfg := NewConfig()
	cfg.Path = filepath.Join(t.TempDir(), "nonexistent-dir", "trace.log")
	_, err := Open(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLogFileOpen)
}

func TestLoggerCSVFormat(t *testing.T) {
	cfg := NewConfig()
	cfg.Format = FormatCSV
	cfg.RegisterMask = RegA
	l, path := newTestLogger(t, cfg)

	l.OnInstruction(rec(0x1000, "LDA", []byte{0x86, 0x05}))
	require.NoError(t, l.Close())

	content := readFile(t, path)
	assert.Contains(t, content, "PC;Instruction;A")
	assert.Contains(t, content, "1000;LDA;00")
}
