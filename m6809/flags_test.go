package m6809

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddFlagsHalfCarry(t *testing.T) {
	c := &CPU{}
	res := c.addFlags(0x0F, 0x01, Byte, 0)
	assert.Equal(t, uint32(0x10), res)
	assert.True(t, c.Reg.H())
	assert.False(t, c.Reg.C())
}

func TestAddFlagsCarryOut(t *testing.T) {
	c := &CPU{}
	res := c.addFlags(0xFF, 0x01, Byte, 0)
	assert.Equal(t, uint32(0x00), res)
	assert.True(t, c.Reg.C())
	assert.True(t, c.Reg.Z())
}

func TestSubFlagsBorrow(t *testing.T) {
	c := &CPU{}
	res := c.subFlags(0x00, 0x01, Byte, 0)
	assert.Equal(t, uint32(0xFF), res)
	assert.True(t, c.Reg.C())
	assert.True(t, c.Reg.N())
}

func TestSubFlagsOverflow(t *testing.T) {
	c := &CPU{}
	// -128 - 1 overflows the signed 8-bit range.
	res := c.subFlags(0x80, 0x01, Byte, 0)
	assert.Equal(t, uint32(0x7F), res)
	assert.True(t, c.Reg.V())
}

func TestNegFlagsZeroInputHasNoOverflow(t *testing.T) {
	c := &CPU{}
	res := c.negFlags(0x00, Byte)
	assert.Equal(t, uint32(0x00), res)
	assert.False(t, c.Reg.V())
	assert.False(t, c.Reg.C())
	assert.True(t, c.Reg.Z())
}

func TestNegFlagsMinValueOverflows(t *testing.T) {
	c := &CPU{}
	res := c.negFlags(0x80, Byte)
	assert.Equal(t, uint32(0x80), res)
	assert.True(t, c.Reg.V())
	assert.True(t, c.Reg.C())
}

func TestIncFlagsOverflowAtMSB(t *testing.T) {
	c := &CPU{}
	res := c.incFlags(0x7F, Byte)
	assert.Equal(t, uint32(0x80), res)
	assert.True(t, c.Reg.V())
	assert.True(t, c.Reg.N())
}

func TestDecFlagsOverflowAtMSB(t *testing.T) {
	c := &CPU{}
	res := c.decFlags(0x80, Byte)
	assert.Equal(t, uint32(0x7F), res)
	assert.True(t, c.Reg.V())
}

func TestShiftLeftFlagsCarryFromBit7(t *testing.T) {
	c := &CPU{}
	res := c.shiftLeftFlags(0x80, Byte)
	assert.Equal(t, uint32(0x00), res)
	assert.True(t, c.Reg.C())
	assert.True(t, c.Reg.Z())
}

func TestShiftRightLogicalClearsNegative(t *testing.T) {
	c := &CPU{}
	res := c.shiftRightLogicalFlags(0x81, Byte)
	assert.Equal(t, uint32(0x40), res)
	assert.True(t, c.Reg.C())
	assert.False(t, c.Reg.N())
}

func TestShiftRightArithmeticPreservesSign(t *testing.T) {
	c := &CPU{}
	res := c.shiftRightArithmeticFlags(0x81, Byte)
	assert.Equal(t, uint32(0xC0), res)
	assert.True(t, c.Reg.C())
	assert.True(t, c.Reg.N())
}

func TestRolCyclesCarryThroughBit0(t *testing.T) {
	c := &CPU{}
	c.Reg.SetC(true)
	res := c.rolFlags(0x00, Byte)
	assert.Equal(t, uint32(0x01), res)
	assert.False(t, c.Reg.C())
}

func TestRorCyclesCarryIntoMSB(t *testing.T) {
	c := &CPU{}
	c.Reg.SetC(true)
	res := c.rorFlags(0x00, Byte)
	assert.Equal(t, uint32(0x80), res)
	assert.False(t, c.Reg.C())
}

func TestComFlagsAlwaysSetsCarry(t *testing.T) {
	c := &CPU{}
	c.Reg.SetC(false)
	res := c.comFlags(0x0F, Byte)
	assert.Equal(t, uint32(0xF0), res)
	assert.True(t, c.Reg.C())
	assert.False(t, c.Reg.V())
}

func TestClrFlagsFixedPattern(t *testing.T) {
	c := &CPU{}
	c.Reg.CC = 0xFF
	c.clrFlags()
	assert.False(t, c.Reg.N())
	assert.False(t, c.Reg.V())
	assert.False(t, c.Reg.C())
	assert.True(t, c.Reg.Z())
}

func TestWordSizeFlags(t *testing.T) {
	c := &CPU{}
	res := c.addFlags(0xFFFF, 0x0001, Word, 0)
	assert.Equal(t, uint32(0x0000), res)
	assert.True(t, c.Reg.C())
	assert.True(t, c.Reg.Z())
}
