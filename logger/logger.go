package logger

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/user-none/go-flex6809/m6809"
)

// Logger implements m6809.Observer: it receives every instruction boundary,
// filters it against its Config, and writes either a flat trace or a
// loop-compressed one. Construction mirrors the teacher's plain
// struct-plus-constructor style; there is no framework to register with,
// just SetObserver(logger) on the CPU.
type Logger struct {
	cfg Config

	file   io.WriteCloser
	csvW   *csv.Writer
	active bool // true once StartAddr has been seen (or there is none)

	// pendingWindow buffers not-yet-emitted records while a repeating
	// sequence is being confirmed. See onRecordCompressed for the state
	// machine.
	pendingWindow []record
	matchPos      int
	candidate     bool
	confirmed     int // confirmed repeat count beyond the first occurrence

	wroteHeader bool
}

// Open creates a Logger writing to cfg.Path. Per §7, a failure to create
// the file is reported but never fatal: callers that get ErrLogFileOpen
// should proceed without a logger rather than aborting the run.
func Open(cfg Config) (*Logger, error) {
	f, err := os.Create(cfg.Path)
	if err != nil {
		log.Printf("logger: %v: %v", ErrLogFileOpen, err)
		return nil, fmt.Errorf("%w: %v", ErrLogFileOpen, err)
	}
	l := &Logger{
		cfg:    cfg,
		file:   f,
		active: !cfg.HasStartAddr,
	}
	if cfg.Format == FormatCSV {
		l.csvW = csv.NewWriter(f)
		l.csvW.Comma = cfg.validSeparator()
	}
	return l, nil
}

// Close flushes and closes the underlying file, flushing any held
// candidate window first so a mid-loop trace isn't silently dropped.
func (l *Logger) Close() error {
	l.flushCandidate()
	if l.csvW != nil {
		l.csvW.Flush()
	}
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// OnInstruction implements m6809.Observer. It applies the start/stop and
// address-range filters, then feeds surviving records into the
// loop-compression engine (or emits them immediately when
// cfg.IsLoopOptimization is false).
func (l *Logger) OnInstruction(snap m6809.InstructionSnapshot) {
	if l.cfg.HasStartAddr && !l.active && snap.PC == l.cfg.StartAddr {
		l.active = true
	}
	if !l.active {
		return
	}
	if snap.PC < l.cfg.MinAddr || snap.PC > l.cfg.MaxAddr {
		return
	}

	r := record{snap: snap}

	if l.cfg.IsLoopOptimization {
		l.onRecordCompressed(r)
	} else {
		l.emit(r)
	}

	if l.cfg.HasStopAddr && snap.PC == l.cfg.StopAddr {
		l.active = false
		l.flushCandidate()
	}
}

// emit writes one record in the configured output format.
func (l *Logger) emit(r record) {
	switch l.cfg.Format {
	case FormatCSV:
		if !l.wroteHeader {
			l.csvW.Write(l.cfg.header())
			l.wroteHeader = true
		}
		l.csvW.Write(l.cfg.line(r))
	default:
		fmt.Fprintln(l.file, l.cfg.textLine(r))
	}
}

// emitRepeat writes the "DO ... REPEAT=n" two-line marker §4.5 specifies:
// the literal body lines of one iteration, bracketed by a DO header and a
// REPEAT trailer naming how many additional times it ran.
func (l *Logger) emitRepeat(body []record, n int) {
	switch l.cfg.Format {
	case FormatCSV:
		if !l.wroteHeader {
			l.csvW.Write(l.cfg.header())
			l.wroteHeader = true
		}
		l.csvW.Write([]string{"DO"})
		for _, r := range body {
			l.csvW.Write(l.cfg.line(r))
		}
		l.csvW.Write([]string{fmt.Sprintf("REPEAT=%d", n)})
	default:
		fmt.Fprintln(l.file, "DO")
		for _, r := range body {
			fmt.Fprintln(l.file, l.cfg.textLine(r))
		}
		fmt.Fprintf(l.file, "REPEAT=%d\n", n)
	}
}

// onRecordCompressed is the loop-compression state machine.
//
// While not holding a candidate loop body, every new record is searched for
// in pendingWindow by (PC, Bytes) equality (the same test record.matches
// uses). A match at index i means the sequence pendingWindow[i:] followed by
// r is the *start* of a second iteration of a loop whose body is
// pendingWindow[i:]: everything before i is unrelated lead-in and is emitted
// immediately, the candidate body becomes pendingWindow[i:], and matching
// resumes at position 1 (position 0 — the record equal to r itself — is
// already accounted for by r's arrival).
//
// While holding a candidate, each new record is compared against
// window[matchPos]. A match advances matchPos; wrapping back to 0 means one
// full additional iteration completed, so confirmed is incremented. A
// mismatch ends the loop: once confirmed reaches compressThreshold the
// buffered iterations collapse into one DO/REPEAT pair; below that they are
// unrolled verbatim, confirmed+1 times. Either way, any partial prefix of
// the body covered by window[0:matchPos] at the moment of mismatch
// represents a real partial extra iteration and is re-emitted after the
// (possibly compressed) block, since a mismatch inside iteration 2+ does
// not erase the instructions that genuinely executed.
func (l *Logger) onRecordCompressed(r record) {
	if !l.candidate {
		idx := -1
		for i, p := range l.pendingWindow {
			if p.matches(r) {
				idx = i
				break
			}
		}
		if idx < 0 {
			l.pendingWindow = append(l.pendingWindow, r)
			return
		}

		for _, p := range l.pendingWindow[:idx] {
			l.emit(p)
		}
		l.pendingWindow = append([]record{}, l.pendingWindow[idx:]...)
		// r is the genuinely-executed second-iteration record for position
		// 0; overwrite the buffered copy so the window holds real state,
		// not the first iteration's.
		l.pendingWindow[0] = r
		l.candidate = true
		l.matchPos = 1 // r matched window[0]; next expected is window[1]
		l.confirmed = 0
		if l.matchPos == len(l.pendingWindow) {
			// Single-instruction body: r alone already completed a second
			// full iteration.
			l.matchPos = 0
			l.confirmed++
		}
		return
	}

	window := l.pendingWindow
	pos := l.matchPos
	expect := window[pos]
	if expect.matches(r) {
		// Overwrite with the record that actually just executed: window
		// must hold the latest confirmed iteration's state, not the
		// first occurrence's, so emitRepeat/flushCandidate report real
		// cycle counts and register values.
		window[pos] = r
		l.matchPos++
		if l.matchPos == len(window) {
			l.matchPos = 0
			l.confirmed++
		}
		return
	}

	l.breakCandidate(window, r)
}

// compressThreshold is the minimum number of confirmed full repeats (beyond
// the first occurrence) required to collapse a body into "DO ... REPEAT=n"
// rather than unrolling it. A body seen only twice total (one confirmed
// repeat) reads better unrolled; three or more (two confirmed) is worth
// compressing.
const compressThreshold = 2

// breakCandidate ends the current candidate loop because r deviated from
// the expected next body record. It emits the buffered iterations
// (compressed or unrolled, depending on compressThreshold), then the
// partial trailing iteration that was in progress when r deviated, then
// starts a fresh buffer with r as its first entry.
func (l *Logger) breakCandidate(window []record, r record) {
	body := append([]record{}, window...)
	partial := append([]record{}, window[:l.matchPos]...)
	confirmed := l.confirmed

	l.candidate = false
	l.matchPos = 0
	l.confirmed = 0

	if confirmed >= compressThreshold {
		l.emitRepeat(body, confirmed)
	} else {
		for i := 0; i <= confirmed; i++ {
			for _, p := range body {
				l.emit(p)
			}
		}
	}

	for _, p := range partial {
		l.emit(p)
	}

	l.pendingWindow = []record{r}
}

// flushCandidate emits whatever is buffered (candidate or not) without
// waiting for a future deviating record — called on Close or on a stop
// address so a trace in the middle of a loop isn't lost.
func (l *Logger) flushCandidate() {
	if l.candidate {
		body := append([]record{}, l.pendingWindow...)
		partial := append([]record{}, l.pendingWindow[:l.matchPos]...)
		confirmed := l.confirmed
		l.candidate = false
		l.pendingWindow = nil
		l.matchPos = 0
		l.confirmed = 0

		if confirmed >= compressThreshold {
			l.emitRepeat(body, confirmed)
		} else {
			for i := 0; i <= confirmed; i++ {
				for _, p := range body {
					l.emit(p)
				}
			}
		}
		for _, p := range partial {
			l.emit(p)
		}
		return
	}
	for _, p := range l.pendingWindow {
		l.emit(p)
	}
	l.pendingWindow = nil
}
