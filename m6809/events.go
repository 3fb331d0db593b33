package m6809

import "sync/atomic"

// Event is a bit in the pending-event word. Producers on any goroutine set
// bits; the CPU goroutine clears the ones it has handled. Generalized from
// the teacher's byte-wide Flags struct to a concurrent 32-bit bitset, since
// here multiple goroutines (timer, UI, peripheral signal lines) race to set
// bits that a single CPU goroutine drains.
type Event uint32

const (
	EventNmi Event = 1 << iota
	EventFirq
	EventIrq
	EventInvalid
	EventBreakPoint
	EventSingleStep
	EventSingleStepFinished
	EventSyncExec
	EventTimer
	EventSetStatus
	EventFrequencyControl
	EventDoSchedule
	EventCwai
	EventSync
	EventIgnoreBP
)

// eventWord is a concurrent bitset of pending Events, accessed only through
// atomic read-modify-write.
type eventWord struct {
	bits atomic.Uint32
}

// Set atomically ORs ev into the word. Safe from any goroutine.
func (w *eventWord) Set(ev Event) {
	w.bits.Or(uint32(ev))
}

// Clear atomically clears ev from the word.
func (w *eventWord) Clear(ev Event) {
	w.bits.And(^uint32(ev))
}

// Test reports whether ev is currently set.
func (w *eventWord) Test(ev Event) bool {
	return w.bits.Load()&uint32(ev) != 0
}

// TestAndClear atomically reports whether ev was set and clears it.
func (w *eventWord) TestAndClear(ev Event) bool {
	old := w.bits.And(^uint32(ev))
	return old&uint32(ev) != 0
}

// Snapshot returns the full word as a plain value, for diagnostics.
func (w *eventWord) Snapshot() Event {
	return Event(w.bits.Load())
}

// SetEvent lets an external producer (the Scheduler's timer goroutine, a
// UI command enqueue) raise an event bit that Step/Run itself does not
// interpret — Timer, SetStatus, SyncExec, FrequencyControl — leaving the
// Scheduler to test and clear it at the next quantum boundary, per §4.3.
func (c *CPU) SetEvent(ev Event) { c.events.Set(ev) }

// ClearEvent clears ev, typically called by the Scheduler once it has
// handled the condition the bit represented.
func (c *CPU) ClearEvent(ev Event) { c.events.Clear(ev) }

// TestEvent reports whether ev is currently pending.
func (c *CPU) TestEvent(ev Event) bool { return c.events.Test(ev) }

// Events returns the full pending-event word, for diagnostics or for a
// Scheduler that wants to inspect several bits without repeated atomic
// loads.
func (c *CPU) Events() Event { return c.events.Snapshot() }
