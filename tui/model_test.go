package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user-none/go-flex6809/bus"
	"github.com/user-none/go-flex6809/m6809"
	"github.com/user-none/go-flex6809/scheduler"
)

func newTestScheduler(t *testing.T) *scheduler.Scheduler {
	t.Helper()
	mem := bus.NewMemory()
	mem.LoadAt(0x0000, []byte{0x12, 0x20, 0xFE}) // NOP; BRA $0001 (branches to itself)
	mem.WriteWord(0xFFFE, 0x0000)
	cpu := m6809.New(mem)
	s := scheduler.New(cpu)
	go s.Run()
	t.Cleanup(func() {
		s.RequestNewState(m6809.StateExit)
		<-s.Done()
	})
	return s
}

func TestModelInitReturnsTickCmd(t *testing.T) {
	m := New(newTestScheduler(t))
	cmd := m.Init()
	require.NotNil(t, cmd)
}

func TestModelTickRefreshesStatus(t *testing.T) {
	s := newTestScheduler(t)
	m := New(s)
	time.Sleep(20 * time.Millisecond)

	next, cmd := m.Update(tickMsg(time.Now()))
	nm := next.(Model)
	assert.True(t, nm.haveStatus)
	assert.NotNil(t, cmd)
}

func TestModelQuitKeyRequestsExitAndQuits(t *testing.T) {
	s := newTestScheduler(t)
	m := New(s)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not exit after quit key requested StateExit")
	}
}

func TestModelRunKeyStartsExecution(t *testing.T) {
	s := newTestScheduler(t)
	m := New(s)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	time.Sleep(30 * time.Millisecond)
	status, _ := s.GetStatus()
	assert.Greater(t, status.Cycles, uint64(0))
}

func TestViewWithoutStatusDoesNotPanic(t *testing.T) {
	m := New(newTestScheduler(t))
	assert.NotPanics(t, func() {
		_ = m.View()
	})
}

func TestViewWithStatusRendersRegisters(t *testing.T) {
	s := newTestScheduler(t)
	m := New(s)
	time.Sleep(20 * time.Millisecond)
	next, _ := m.Update(tickMsg(time.Now()))
	nm := next.(Model)

	view := nm.View()
	assert.Contains(t, view, "PC:")
	assert.Contains(t, view, "Cycles:")
}
