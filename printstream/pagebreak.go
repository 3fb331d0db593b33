package printstream

import (
	"strconv"
	"strings"
)

const (
	minLinesPerPage = 30
	maxLinesPerPage = 90
)

// PageBreakConfig tunes the page-length detection heuristic: the minimum
// variance of the scores across all candidates, and the minimum
// number of pages the candidate must imply the document spans.
type PageBreakConfig struct {
	MinVariance   float64
	MinPagesRatio float64
}

// DefaultPageBreakConfig returns the thresholds the heuristic was designed
// against.
func DefaultPageBreakConfig() PageBreakConfig {
	return PageBreakConfig{MinVariance: 50000, MinPagesRatio: 2.0}
}

// DetectLinesPerPage scores every candidate page length in
// [minLinesPerPage, maxLinesPerPage) by how uniformly blank top/bottom
// lines, repeated header lines, and number-only trailer lines recur at
// that spacing. It accepts the highest-scoring candidate only if the
// variance of all candidates' scores reaches cfg.MinVariance and the
// candidate implies at least
// cfg.MinPagesRatio pages of content; otherwise ok is false and the
// document should be left unformatted.
func DetectLinesPerPage(lines []Line, cfg PageBreakConfig) (linesPerPage int, ok bool) {
	if len(lines) < minLinesPerPage*2 {
		return 0, false
	}

	scores := make(map[int]float64, maxLinesPerPage-minLinesPerPage)
	best, bestScore := 0, -1.0
	for n := minLinesPerPage; n < maxLinesPerPage; n++ {
		score := scorePageLength(lines, n)
		scores[n] = score
		if score > bestScore {
			best, bestScore = n, score
		}
	}
	if best == 0 {
		return 0, false
	}

	variance := scoreVariance(scores)
	pages := float64(len(lines)) / float64(best)
	if variance < cfg.MinVariance || pages < cfg.MinPagesRatio {
		return 0, false
	}
	return best, true
}

func scorePageLength(lines []Line, n int) float64 {
	headers := map[string]int{}
	var blankTop, blankBottom, numberBottom float64
	pageCount := 0

	for start := 0; start < len(lines); start += n {
		end := start + n
		if end > len(lines) {
			end = len(lines)
		}
		page := lines[start:end]
		if len(page) == 0 {
			continue
		}
		pageCount++

		if isBlank(page[0]) {
			blankTop++
		}
		last := page[len(page)-1]
		if isBlank(last) {
			blankBottom++
		}
		if isNumberOnly(last) {
			numberBottom++
		}
		headers[lineText(page[0])]++
	}
	if pageCount == 0 {
		return 0
	}

	uniformity := (blankTop + blankBottom + numberBottom) / float64(3*pageCount)

	// Only the most frequent repeated first line counts, so a spacing
	// whose page starts hit several different lines a few times each does
	// not outscore the spacing where every page starts on the same header.
	repeats := 0
	for _, count := range headers {
		if count > 1 && count > repeats {
			repeats = count
		}
	}
	headerScore := float64(repeats) / float64(pageCount)

	// The 1000x factor calibrates this heuristic's score magnitude against
	// the default MinVariance of 50000: a handful of well-aligned pages
	// should clear that bar comfortably, while noise-level candidates stay
	// near zero.
	return (uniformity + headerScore) * float64(pageCount) * float64(pageCount) * 1000
}

func scoreVariance(scores map[int]float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum, sumSq float64
	for _, s := range scores {
		sum += s
		sumSq += s * s
	}
	n := float64(len(scores))
	mean := sum / n
	return sumSq/n - mean*mean
}

func isBlank(l Line) bool {
	for _, c := range l.Chars {
		if c.Rune != ' ' && c.Rune != 0 {
			return false
		}
	}
	return true
}

func isNumberOnly(l Line) bool {
	t := strings.TrimSpace(lineText(l))
	if t == "" {
		return false
	}
	_, err := strconv.Atoi(t)
	return err == nil
}

func lineText(l Line) string {
	var b strings.Builder
	for _, c := range l.Chars {
		if c.Rune == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteRune(c.Rune)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// StripTrailingBlankLines elides trailing blank lines from each
// linesPerPage-sized page, the cleanup a caller applies once
// DetectLinesPerPage accepts a candidate.
func StripTrailingBlankLines(lines []Line, linesPerPage int) []Line {
	if linesPerPage <= 0 {
		return lines
	}
	out := make([]Line, 0, len(lines))
	for start := 0; start < len(lines); start += linesPerPage {
		end := start + linesPerPage
		if end > len(lines) {
			end = len(lines)
		}
		page := lines[start:end]
		last := len(page)
		for last > 0 && isBlank(page[last-1]) {
			last--
		}
		out = append(out, page[:last]...)
	}
	return out
}
