package printstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeText(t *testing.T, in string) []Line {
	t.Helper()
	d := NewDecoder()
	_, err := d.Write([]byte(in))
	require.NoError(t, err)
	d.Flush()
	return d.Lines()
}

func textOf(l Line) string {
	s := ""
	for _, c := range l.Chars {
		if c.Rune == 0 {
			s += " "
		} else {
			s += string(c.Rune)
		}
	}
	return s
}

// TestPlainTextPassesThrough confirms a text file with no ESC codes passes
// through unchanged: one character per printable input byte, LF emits a
// line.
func TestPlainTextPassesThrough(t *testing.T) {
	lines := decodeText(t, "HELLO\nWORLD\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "HELLO", textOf(lines[0]))
	assert.Equal(t, "WORLD", textOf(lines[1]))
	for _, c := range lines[0].Chars {
		assert.Equal(t, Style(0), c.Style)
	}
}

func TestFlushEmitsTrailingLineWithoutLF(t *testing.T) {
	lines := decodeText(t, "NOLF")
	require.Len(t, lines, 1)
	assert.Equal(t, "NOLF", textOf(lines[0]))
}

func TestEscEmphasizedOnOff(t *testing.T) {
	lines := decodeText(t, "\x1bEBOLD\x1bFplain\n")
	require.Len(t, lines, 1)
	chars := lines[0].Chars
	for _, c := range chars[:4] {
		assert.True(t, c.Style.Has(Bold), "expected bold: %q", string(c.Rune))
	}
	for _, c := range chars[4:] {
		assert.False(t, c.Style.Has(Bold))
	}
}

func TestEscItalicAndDoubleWidth(t *testing.T) {
	lines := decodeText(t, "\x1b4I\x1b5\x0eW\x14N\n")
	require.Len(t, lines, 1)
	chars := lines[0].Chars
	require.Len(t, chars, 3)
	assert.True(t, chars[0].Style.Has(Italic))
	assert.True(t, chars[1].Style.Has(DoubleWidth))
	assert.False(t, chars[2].Style.Has(DoubleWidth))
}

func TestEscUnderlineParam(t *testing.T) {
	lines := decodeText(t, "\x1b-1U\x1b-0N\n")
	require.Len(t, lines, 1)
	chars := lines[0].Chars
	require.Len(t, chars, 2)
	assert.True(t, chars[0].Style.Has(Underline))
	assert.False(t, chars[1].Style.Has(Underline))
}

// TestOverlayDoubleStrike reproduces two CR-overprinted passes over the
// same character and expects DoubleStrike inferred.
func TestOverlayDoubleStrike(t *testing.T) {
	lines := decodeText(t, "X\rX\n")
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Chars, 1)
	assert.Equal(t, 'X', lines[0].Chars[0].Rune)
	assert.True(t, lines[0].Chars[0].Style.Has(DoubleStrike))
}

// TestOverlayEmphasizedByTriplePrint reproduces three CR-overprinted passes
// and expects Bold (emphasized) inferred.
func TestOverlayEmphasizedByTriplePrint(t *testing.T) {
	lines := decodeText(t, "X\rX\rX\n")
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Chars, 1)
	assert.True(t, lines[0].Chars[0].Style.Has(Bold))
}

// TestOverlayUnderlineMark reproduces the classic underline-via-overprint
// trick: print the character, CR, print an underscore at the same column.
func TestOverlayUnderlineMark(t *testing.T) {
	lines := decodeText(t, "A\r_\n")
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Chars, 1)
	assert.Equal(t, 'A', lines[0].Chars[0].Rune)
	assert.True(t, lines[0].Chars[0].Style.Has(Underline))
}

// TestOverlayStrikeThroughMark mirrors TestOverlayUnderlineMark with a
// dash overlay instead of an underscore.
func TestOverlayStrikeThroughMark(t *testing.T) {
	lines := decodeText(t, "A\r-\n")
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Chars, 1)
	assert.True(t, lines[0].Chars[0].Style.Has(StrikeThrough))
}

func TestFormFeedMarksNextLine(t *testing.T) {
	lines := decodeText(t, "ONE\n\x0cTWO\n")
	require.Len(t, lines, 2)
	assert.False(t, lines[0].PageBreak)
	assert.True(t, lines[1].PageBreak)
}

func TestBackspaceOverprintsWithinPass(t *testing.T) {
	lines := decodeText(t, "AB\x08X\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "AX", textOf(lines[0]))
}

func TestVerticalTabSequenceConsumedUntilNUL(t *testing.T) {
	lines := decodeText(t, "\x1bB\x01\x02\x03\x00AFTER\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "AFTER", textOf(lines[0]))
}

func TestLineSpacingParamConsumedNoStyleEffect(t *testing.T) {
	lines := decodeText(t, "\x1bA\x12TEXT\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "TEXT", textOf(lines[0]))
	assert.Equal(t, Style(0), lines[0].Chars[0].Style)
}

func TestIgnoredControlCharsDoNotAppear(t *testing.T) {
	lines := decodeText(t, "A\x00\x07\x09\x0b\x0f\x11\x12\x13\x18\x7fB\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "AB", textOf(lines[0]))
}
