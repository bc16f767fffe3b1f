package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPHAWritesToStackPageAndDecrementsSP(t *testing.T) {
	c, bus := newTestCpu(0x8000)
	c.A = 0x42
	sp := c.SP
	bus.load(0x8000, 0x48)

	for i := 0; i < 3; i++ {
		require.NoError(t, c.Tick())
	}

	assert.Equal(t, byte(0x42), bus.ram[0x0100|uint16(sp)])
	assert.Equal(t, sp-1, c.SP)
}

func TestPLAIncrementsSPFirstThenReadsAndSetsFlags(t *testing.T) {
	c, bus := newTestCpu(0x8000)
	c.SP = 0xFE
	bus.ram[0x01FF] = 0x00
	bus.load(0x8000, 0x68)

	for i := 0; i < 4; i++ {
		require.NoError(t, c.Tick())
	}

	assert.Equal(t, byte(0xFF), c.SP)
	assert.Equal(t, byte(0x00), c.A)
	assert.True(t, c.Flag(FlagZero))
}

func TestPHPSetsBreakAndUnusedInPushedByte(t *testing.T) {
	c, bus := newTestCpu(0x8000)
	c.SetStatus(byte(FlagCarry)) // B and Unused both clear going in
	sp := c.SP
	bus.load(0x8000, 0x08)

	for i := 0; i < 3; i++ {
		require.NoError(t, c.Tick())
	}

	pushed := bus.ram[0x0100|uint16(sp)]
	assert.Equal(t, byte(FlagCarry)|byte(FlagBreak)|byte(FlagUnused), pushed)
	assert.True(t, c.Flag(FlagCarry)) // live status unaffected by push
}

func TestPLPDropsPushedBreakButKeepsLiveOne(t *testing.T) {
	c, bus := newTestCpu(0x8000)
	c.SP = 0xFE
	bus.ram[0x01FF] = byte(FlagCarry) | byte(FlagBreak) | byte(FlagNegative)
	c.SetFlag(FlagBreak, false)
	bus.load(0x8000, 0x28)

	for i := 0; i < 4; i++ {
		require.NoError(t, c.Tick())
	}

	assert.True(t, c.Flag(FlagCarry))
	assert.True(t, c.Flag(FlagNegative))
	assert.False(t, c.Flag(FlagBreak))
	assert.True(t, c.Flag(FlagUnused))
}

func TestStackPointerWrapsModulo256(t *testing.T) {
	c, bus := newTestCpu(0x8000)
	c.SP = 0x00
	c.A = 0x01
	bus.load(0x8000, 0x48)

	for i := 0; i < 3; i++ {
		require.NoError(t, c.Tick())
	}

	assert.Equal(t, byte(0xFF), c.SP)
	assert.Equal(t, byte(0x01), bus.ram[0x0100])
}
