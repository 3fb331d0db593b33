package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWriteWord(t *testing.T) {
	m := NewMemory()
	m.WriteWord(0x2000, 0xCAFE)
	assert.Equal(t, byte(0xCA), m.ReadByte(0x2000))
	assert.Equal(t, byte(0xFE), m.ReadByte(0x2001))
	assert.Equal(t, uint16(0xCAFE), m.ReadWord(0x2000))
}

func TestWordWrapsAtTopOfAddressSpace(t *testing.T) {
	m := NewMemory()
	m.WriteWord(0xFFFF, 0x1234)
	assert.Equal(t, byte(0x12), m.ReadByte(0xFFFF))
	assert.Equal(t, byte(0x34), m.ReadByte(0x0000))
	assert.Equal(t, uint16(0x1234), m.ReadWord(0xFFFF))
}

func TestDirtyTracking(t *testing.T) {
	m := NewMemory()
	assert.False(t, m.HasChanged(0x2000))
	m.WriteByte(0x2005, 1)
	assert.True(t, m.HasChanged(0x2000))
	assert.False(t, m.HasChanged(0x3000))
	m.ResetChanged(0x2000)
	assert.False(t, m.HasChanged(0x2005))
}

func TestLoadAt(t *testing.T) {
	m := NewMemory()
	m.LoadAt(0x0100, []byte{0x86, 0x2A})
	assert.Equal(t, byte(0x86), m.ReadByte(0x0100))
	assert.Equal(t, byte(0x2A), m.ReadByte(0x0101))
}
