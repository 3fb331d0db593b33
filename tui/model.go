// Package tui is a minimal Bubble Tea front end for a *scheduler.Scheduler.
// It holds no CPU state of its own; every register or cycle value it draws
// comes from scheduler.GetStatus, and every action a keypress takes is
// dispatched through RequestNewState or SyncExec — the model never reaches
// past the scheduler into the CPU or bus directly.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/user-none/go-flex6809/logger"
	"github.com/user-none/go-flex6809/m6809"
	"github.com/user-none/go-flex6809/scheduler"
)

// pollInterval is how often the model asks the scheduler for a fresh
// status snapshot, the UI-thread analogue of the scheduler's own quantum.
const pollInterval = 50 * time.Millisecond

// tickMsg drives the poll loop.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the Bubble Tea model driving a Scheduler. Every field is a copy
// of scheduler-reported state or local UI state (cursor position, input
// buffer); there is no package-level global anywhere in this model, per
// the "explicit context, no globals" rule this module follows throughout.
type Model struct {
	sched *scheduler.Scheduler

	status     m6809.CPUStatus
	haveStatus bool
	irqs       m6809.InterruptCounts
	observedHz float64

	memOffset uint16
	err       error
}

// New returns a Model driving sched. Call tea.NewProgram(New(sched)).Run()
// to start the interactive session.
func New(sched *scheduler.Scheduler) Model {
	return Model{sched: sched}
}

// Init starts the poll loop; the scheduler itself is started independently
// (its Run must already be executing on its own goroutine).
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles both keypresses and the periodic status poll.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if status, fresh := m.sched.GetStatus(); fresh {
			m.status = status
			m.haveStatus = true
		}
		m.irqs = m.sched.GetInterruptStatus()
		m.observedHz = m.sched.ObservedFrequency()
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.sched.RequestNewState(m6809.StateExit)
			return m, tea.Quit
		case "r":
			m.sched.RequestNewState(m6809.StateRun)
		case "s":
			m.sched.RequestNewState(m6809.StateStop)
		case "n":
			m.sched.RequestNewState(m6809.StateNext)
		case "i":
			m.sched.RequestNewState(m6809.StateStep)
		case "R":
			m.sched.RequestNewState(m6809.StateResetRun)
		case "up":
			m.memOffset -= 16
		case "down":
			m.memOffset += 16
		case "+":
			m.sched.SyncExec(scheduler.SetFrequency{Hz: 1_000_000})
		case "0":
			m.sched.SyncExec(scheduler.SetFrequency{Hz: 0})
		case "L":
			cfg := logger.NewConfig()
			cfg.Path = "trace.log"
			m.sched.SyncExec(scheduler.SetLoggerConfig{Config: cfg})
		}
	}
	return m, nil
}

// View renders register, flag, and memory panels side by side, the way
// the teacher's debugger View() joins a page table and a status block.
func (m Model) View() string {
	if !m.haveStatus {
		return "waiting for status...\n"
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.registerPanel(),
			m.memPanel(),
		),
		m.helpLine(),
	)
}

func (m Model) registerPanel() string {
	r := m.status.Reg
	return fmt.Sprintf(`PC: %04X   S: %04X   U: %04X
A:  %02X     B: %02X     D: %04X
X:  %04X   Y: %04X   DP: %02X
CC: %s (%02X)
Cycles: %d   Hz: %.0f
State: %v   %s
NMI: %d FIRQ: %d IRQ: %d
`,
		r.PC, r.S, r.U,
		r.A, r.B, r.D(),
		r.X, r.Y, r.DP,
		logger.FormatCC(r.CC), r.CC,
		m.status.Cycles, m.observedHz,
		m.status.RunState, m.status.Mnemonic+" "+m.status.OperandText,
		m.irqs.NMI, m.irqs.FIRQ, m.irqs.IRQ,
	)
}

func (m Model) memPanel() string {
	var b strings.Builder
	b.WriteString("stack @ S-8:\n")
	for row := 0; row < 6; row++ {
		fmt.Fprintf(&b, "%04X | ", m.memOffset+uint16(row*8))
		for col := 0; col < 8; col++ {
			idx := row*8 + col
			if idx < len(m.status.MemAroundS) {
				fmt.Fprintf(&b, "%02X ", m.status.MemAroundS[idx])
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) helpLine() string {
	line := "r:run s:stop n:step-over i:step-into R:reset+run L:log +:1MHz 0:unthrottled q:quit"
	if m.err != nil {
		line += fmt.Sprintf("\nerror: %v\n%s", m.err, spew.Sdump(m.status))
	}
	return line
}
