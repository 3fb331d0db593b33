package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user-none/go-flex6809/bus"
	"github.com/user-none/go-flex6809/m6809"
)

// newTestCPU assembles a tiny NOP-forever loop at $0000, with RESET vectored
// there, so Run can be exercised without a real assembler.
func newTestCPU(t *testing.T) *m6809.CPU {
	t.Helper()
	mem := bus.NewMemory()
	// $0000: NOP ($12), $0001: BRA $0001 ($20 $FE)
	mem.LoadAt(0x0000, []byte{0x12, 0x20, 0xFE})
	mem.WriteWord(0xFFFE, 0x0000)
	return m6809.New(mem)
}

func TestSchedulerStartsStopped(t *testing.T) {
	cpu := newTestCPU(t)
	s := New(cpu)
	go s.Run()
	defer s.RequestNewState(m6809.StateExit)

	time.Sleep(30 * time.Millisecond)
	status, _ := s.GetStatus()
	assert.Equal(t, uint16(0x0000), status.Reg.PC)
}

func TestSchedulerRunsAndStops(t *testing.T) {
	cpu := newTestCPU(t)
	s := New(cpu)
	go s.Run()
	defer s.RequestNewState(m6809.StateExit)

	s.RequestNewState(m6809.StateRun)
	time.Sleep(30 * time.Millisecond)
	s.RequestNewState(m6809.StateStop)
	time.Sleep(15 * time.Millisecond)

	status, _ := s.GetStatus()
	assert.Greater(t, status.Cycles, uint64(0))
}

func TestSchedulerExitStopsRunLoop(t *testing.T) {
	cpu := newTestCPU(t)
	s := New(cpu)
	go s.Run()

	s.RequestNewState(m6809.StateExit)
	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not exit")
	}
}

func TestSchedulerSyncExecSetFrequency(t *testing.T) {
	cpu := newTestCPU(t)
	s := New(cpu)
	go s.Run()
	defer s.RequestNewState(m6809.StateExit)

	s.SyncExec(SetFrequency{Hz: 1000})
	s.RequestNewState(m6809.StateRun)
	time.Sleep(50 * time.Millisecond)
	s.RequestNewState(m6809.StateStop)

	status, _ := s.GetStatus()
	assert.Greater(t, status.Cycles, uint64(0))
}

func TestSchedulerReset(t *testing.T) {
	cpu := newTestCPU(t)
	s := New(cpu)
	go s.Run()
	defer s.RequestNewState(m6809.StateExit)

	s.RequestNewState(m6809.StateRun)
	time.Sleep(20 * time.Millisecond)
	s.RequestNewState(m6809.StateReset)
	time.Sleep(20 * time.Millisecond)

	status, ok := s.GetStatus()
	require.True(t, ok)
	assert.Equal(t, uint16(0x0000), status.Reg.PC)
}

func TestSchedulerInterruptStatusInitiallyZero(t *testing.T) {
	cpu := newTestCPU(t)
	s := New(cpu)
	counts := s.GetInterruptStatus()
	assert.Equal(t, m6809.InterruptCounts{}, counts)
}
