package printstream

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func blankLine() Line         { return Line{} }
func textLine(s string) Line {
	chars := make([]StyledChar, len(s))
	for i, r := range s {
		chars[i] = StyledChar{Rune: r}
	}
	return Line{Chars: chars}
}

func buildPagedDocument(pages int, linesPerPage int) []Line {
	var lines []Line
	for p := 0; p < pages; p++ {
		lines = append(lines, textLine("REPORT HEADER"))
		for i := 0; i < linesPerPage-3; i++ {
			lines = append(lines, textLine(fmt.Sprintf("row %d", i)))
		}
		lines = append(lines, textLine(fmt.Sprintf("%d", p+1)))
		lines = append(lines, blankLine())
	}
	return lines
}

func TestDetectLinesPerPageFindsRegularPagination(t *testing.T) {
	doc := buildPagedDocument(8, 40)
	cfg := DefaultPageBreakConfig()
	n, ok := DetectLinesPerPage(doc, cfg)
	if assert.True(t, ok) {
		assert.Equal(t, 40, n)
	}
}

func TestDetectLinesPerPageRejectsShortDocument(t *testing.T) {
	doc := buildPagedDocument(1, 40)
	_, ok := DetectLinesPerPage(doc, DefaultPageBreakConfig())
	assert.False(t, ok)
}

func TestDetectLinesPerPageRejectsUnstructuredText(t *testing.T) {
	var doc []Line
	for i := 0; i < 200; i++ {
		doc = append(doc, textLine(fmt.Sprintf("line of free text number %d", i)))
	}
	_, ok := DetectLinesPerPage(doc, DefaultPageBreakConfig())
	assert.False(t, ok)
}

func TestStripTrailingBlankLines(t *testing.T) {
	lines := []Line{
		textLine("A"),
		textLine("B"),
		blankLine(),
		blankLine(),
		textLine("C"),
		blankLine(),
	}
	// Page 1 is lines[0:3] = A,B,blank -> trailing blank stripped to A,B.
	// Page 2 is lines[3:6] = blank,C,blank -> trailing blank stripped to
	// blank,C (the leading blank is not a *trailing* blank of its page).
	stripped := StripTrailingBlankLines(lines, 3)
	require := assert.New(t)
	require.Len(stripped, 4)
	require.Equal("A", lineText(stripped[0]))
	require.Equal("B", lineText(stripped[1]))
	require.Equal("", lineText(stripped[2]))
	require.Equal("C", lineText(stripped[3]))
}

func TestIsNumberOnly(t *testing.T) {
	assert.True(t, isNumberOnly(textLine("42")))
	assert.False(t, isNumberOnly(textLine("42a")))
	assert.False(t, isNumberOnly(blankLine()))
}
