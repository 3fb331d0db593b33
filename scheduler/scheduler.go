// Package scheduler drives a *m6809.CPU on its own goroutine in fixed
// wall-clock quanta, the way the teacher's Cpu.loop() paces a 6502 core
// against real time, generalized to a configurable target frequency, a
// command queue for cross-goroutine mutation, and a published status
// snapshot for a UI thread to poll.
package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/user-none/go-flex6809/logger"
	"github.com/user-none/go-flex6809/m6809"
)

// quantum is the wall-clock tick used to recompute the cycle budget and
// drain the command queue, matching §5's TIME_BASE.
const quantum = 10 * time.Millisecond

// Command is a polymorphic unit of work run on the CPU goroutine at a
// quantum boundary, grounded on the teacher's Opcode.Instruction
// function-pointer-table idiom lifted one level to an interface.
type Command interface {
	Execute(s *Scheduler)
}

// SetFrequency sets the target emulation frequency in Hz. Zero means
// unthrottled: the CPU runs as many cycles per quantum as the host can
// manage.
type SetFrequency struct {
	Hz float64
}

func (c SetFrequency) Execute(s *Scheduler) {
	s.statusMu.Lock()
	s.targetHz = c.Hz
	s.statusMu.Unlock()
}

// SetLoggerConfig swaps the logger's configuration: it closes any open
// logger and, when Config.Path is non-empty, opens that path again, even
// when it is unchanged. A failure to open is logged and leaves the
// scheduler running without a logger, per §7.
type SetLoggerConfig struct {
	Config logger.Config
}

func (c SetLoggerConfig) Execute(s *Scheduler) {
	if s.log != nil {
		s.log.Close()
		s.log = nil
	}
	if c.Config.Path == "" {
		s.cpu.SetObserver(nil)
		return
	}
	l, err := logger.Open(c.Config)
	if err != nil {
		log.Printf("scheduler: logger disabled: %v", err)
		s.cpu.SetObserver(nil)
		return
	}
	s.log = l
	s.cpu.SetObserver(l)
}

// PIALine names a PIA control line, carried only as a payload — the PIA
// device itself is out of scope; ActiveTransition exists so a front end
// can notify the emulated machine of a keyboard-latch-style edge without
// the scheduler needing to know what a PIA is.
type PIALine int

// ActiveTransition records a control-line transition. Consumers that
// model a PIA device would observe this through a future hook; today it
// is a no-op payload carrier, matching §4.3's framing of the PIA as an
// out-of-scope collaborator.
type ActiveTransition struct {
	Line PIALine
}

func (c ActiveTransition) Execute(s *Scheduler) {}

// Scheduler owns one *m6809.CPU and runs it on a dedicated goroutine,
// exposing a thread-safe status/command surface to any number of UI
// goroutines.
type Scheduler struct {
	cpu *m6809.CPU
	log *logger.Logger

	commandMu sync.Mutex
	commands  []Command

	statusMu    sync.Mutex
	lastStatus  m6809.CPUStatus
	statusDirty bool
	targetHz    float64
	observedHz  float64

	irqStatusMu sync.Mutex
	irqCounts   m6809.InterruptCounts

	// cond (over condLock) is the single suspend/resume point of §5: the
	// CPU goroutine waits on it while stopped, and it is broadcast both by
	// RequestNewState and by a background quantum ticker, so a stopped
	// scheduler still wakes at least once per quantum to notice state
	// changes without a second signaling path.
	cond      *sync.Cond
	condLock  sync.Mutex
	userState m6809.State

	done chan struct{}
}

// New creates a Scheduler driving cpu. The scheduler starts in StateStop;
// call RequestNewState(m6809.StateRun) to start execution.
func New(cpu *m6809.CPU) *Scheduler {
	s := &Scheduler{
		cpu:       cpu,
		userState: m6809.StateStop,
		done:      make(chan struct{}),
	}
	s.cond = sync.NewCond(&s.condLock)
	return s
}

// RequestNewState asks the scheduler to transition to state at the next
// quantum boundary (§6's "Scheduler ← UI" RequestNewState), waking a
// stopped scheduler immediately.
func (s *Scheduler) RequestNewState(state m6809.State) {
	s.condLock.Lock()
	s.userState = state
	s.condLock.Unlock()
	s.cond.Broadcast()
}

// SyncExec enqueues cmd to run on the CPU goroutine at the next quantum
// boundary, in FIFO order relative to other enqueued commands (§6's
// "Scheduler ← UI" SyncExec).
func (s *Scheduler) SyncExec(cmd Command) {
	s.commandMu.Lock()
	s.commands = append(s.commands, cmd)
	s.commandMu.Unlock()
	s.cpu.SetEvent(m6809.EventSyncExec)
}

// GetStatus returns the latest published CPU snapshot and whether it is
// new since the last call (§6's "Scheduler → UI" GetStatus).
func (s *Scheduler) GetStatus() (m6809.CPUStatus, bool) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	fresh := s.statusDirty
	s.statusDirty = false
	return s.lastStatus, fresh
}

// ObservedFrequency returns the measured execution rate in Hz over the
// most recent timer quantum, independent of any configured target.
func (s *Scheduler) ObservedFrequency() float64 {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	return s.observedHz
}

// GetInterruptStatus returns a value-copy of the per-line serviced
// interrupt counters (§6's "Scheduler → UI" GetInterruptStatus).
func (s *Scheduler) GetInterruptStatus() m6809.InterruptCounts {
	s.irqStatusMu.Lock()
	defer s.irqStatusMu.Unlock()
	return s.irqCounts
}

// Done returns a channel closed once Run's loop has exited (state
// StateExit reached), so callers can wait for clean shutdown.
func (s *Scheduler) Done() <-chan struct{} { return s.done }

// Run drives the quantum loop until the user requests StateExit. It is
// meant to be the body of the dedicated CPU goroutine; callers typically
// do `go scheduler.Run()`.
func (s *Scheduler) Run() {
	defer close(s.done)

	ticker := time.NewTicker(quantum)
	defer ticker.Stop()
	// The ticker goroutine is the sole reader of ticker.C: it marks the
	// CPU's Timer event and wakes the cond, so a scheduler parked in
	// Stop/Suspend still notices the quantum boundary, per §5's periodic
	// wall-clock timer.
	go s.tickerLoop(ticker)

	var lastTick time.Time
	var cyclesAtLastTick uint64
	requiredCycles := uint64(1 << 20) // unthrottled default: large per-quantum budget
	throttled := false

	// atBreakpoint is true only when the previous cpu.Run call returned
	// because PC landed on an armed breakpoint (StateStop/StateNext),
	// never because a quantum's cycle budget simply ran out there by
	// chance. It drives the one-shot EventIgnoreBP below, so resuming
	// execution from a deliberate breakpoint stop doesn't immediately
	// re-trip the same breakpoint, per §3's "skip the breakpoint at the
	// next instruction."
	atBreakpoint := false

	for {
		s.condLock.Lock()
		for s.userState == m6809.StateStop || s.userState == m6809.StateSuspend {
			s.publishStatus(m6809.StateStop)
			s.cond.Wait()
		}
		userState := s.userState
		s.condLock.Unlock()

		switch userState {
		case m6809.StateExit:
			return
		case m6809.StateReset:
			s.cpu.Reset()
			atBreakpoint = false
			s.setUserState(m6809.StateStop)
			continue
		case m6809.StateResetRun:
			s.cpu.Reset()
			atBreakpoint = false
			s.setUserState(m6809.StateRun)
			userState = m6809.StateRun
		}

		mode := m6809.ModeRun
		if userState == m6809.StateStep {
			mode = m6809.ModeSingleStepInto
		} else if userState == m6809.StateNext {
			mode = m6809.ModeSingleStepOver
			s.cpu.PrepareStepOver()
		}

		if atBreakpoint && (userState == m6809.StateRun || userState == m6809.StateNext) {
			s.cpu.SetEvent(m6809.EventIgnoreBP)
		}
		atBreakpoint = false

		state, err := s.cpu.Run(mode, requiredCycles)
		if err != nil {
			log.Printf("scheduler: %v", err)
		}

		if s.cpu.TestEvent(m6809.EventTimer) {
			s.cpu.ClearEvent(m6809.EventTimer)
			now := time.Now()
			nowCycles := s.cpu.Cycles()
			if !lastTick.IsZero() {
				elapsed := now.Sub(lastTick).Seconds()
				if elapsed > 0 {
					observedHz := float64(nowCycles-cyclesAtLastTick) / elapsed
					s.statusMu.Lock()
					s.observedHz = observedHz
					targetHz := s.targetHz
					s.statusMu.Unlock()
					if targetHz > 0 {
						requiredCycles = uint64(targetHz * elapsed)
						if requiredCycles == 0 {
							requiredCycles = 1
						}
					} else {
						requiredCycles = 1 << 20
					}
					throttled = targetHz > 0
				}
			}
			lastTick = now
			cyclesAtLastTick = nowCycles

			s.irqStatusMu.Lock()
			s.irqCounts = s.cpu.InterruptCounts()
			s.irqStatusMu.Unlock()
		}

		if s.cpu.TestEvent(m6809.EventSyncExec) {
			s.cpu.ClearEvent(m6809.EventSyncExec)
			s.drainCommands()
		}

		s.publishStatus(state)

		atBreakpoint = state == m6809.StateStop || state == m6809.StateNext

		switch state {
		case m6809.StateStop, m6809.StateNext, m6809.StateInvalid:
			s.setUserState(m6809.StateStop)
		case m6809.StateStep:
			s.setUserState(m6809.StateStop)
		}

		if state == m6809.StateRun && throttled {
			// Throttled and this quantum's budget is spent: wait for the
			// next tick rather than run ahead of the target frequency.
			time.Sleep(quantum)
		}
	}
}

func (s *Scheduler) setUserState(state m6809.State) {
	s.condLock.Lock()
	s.userState = state
	s.condLock.Unlock()
	s.cond.Broadcast()
}

// tickerLoop is the sole consumer of ticker.C: every quantum it raises
// the CPU's Timer event and wakes the cond, so a goroutine parked in
// cond.Wait (Stop/Suspend) periodically re-checks state even without an
// explicit RequestNewState call.
func (s *Scheduler) tickerLoop(ticker *time.Ticker) {
	for {
		select {
		case <-ticker.C:
			s.cpu.SetEvent(m6809.EventTimer)
			s.cond.Broadcast()
		case <-s.done:
			return
		}
	}
}

// drainCommands moves the pending command slice out from under
// commandMu and executes each in FIFO order, matching §4.3 step 3's
// "SyncExec" handling.
func (s *Scheduler) drainCommands() {
	s.commandMu.Lock()
	cmds := s.commands
	s.commands = nil
	s.commandMu.Unlock()

	for _, cmd := range cmds {
		cmd.Execute(s)
	}
}

// publishStatus copies the current CPU snapshot into the status buffer
// under statusMu, the way §4.3's "SetStatus" event handling is described.
func (s *Scheduler) publishStatus(runState m6809.State) {
	status := s.cpu.Status()
	status.RunState = runState
	s.statusMu.Lock()
	s.lastStatus = status
	s.statusDirty = true
	s.statusMu.Unlock()
}
