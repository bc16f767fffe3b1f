package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestASLAccumulator(t *testing.T) {
	c, bus := newTestCpu(0x8000)
	c.A = 0x81 // 1000_0001 -> carry=1, result=0000_0010
	bus.load(0x8000, 0x0A)

	for i := 0; i < 2; i++ {
		require.NoError(t, c.Tick())
	}

	assert.Equal(t, byte(0x02), c.A)
	assert.True(t, c.Flag(FlagCarry))
	assert.False(t, c.Flag(FlagZero))
	assert.False(t, c.Flag(FlagNegative))
}

func TestASLMemoryZeroPageSetsZero(t *testing.T) {
	c, bus := newTestCpu(0x8000)
	bus.load(0x8000, 0x06, 0x10)
	bus.ram[0x10] = 0x00

	for i := 0; i < 5; i++ {
		require.NoError(t, c.Tick())
	}

	assert.Equal(t, byte(0x00), bus.ram[0x10])
	assert.False(t, c.Flag(FlagCarry))
	assert.True(t, c.Flag(FlagZero))
}

func TestASLZeroPageXAndAbsoluteXCycles(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(c *Cpu, bus *fakeBus)
		cycles byte
		addr   uint16
	}{
		{
			name: "zero page,X",
			setup: func(c *Cpu, bus *fakeBus) {
				c.X = 0x01
				bus.load(0x8000, 0x16, 0x10)
				bus.ram[0x11] = 0x01
			},
			cycles: 6,
			addr:   0x11,
		},
		{
			name: "absolute,X",
			setup: func(c *Cpu, bus *fakeBus) {
				c.X = 0x01
				bus.load(0x8000, 0x1E, 0xFF, 0x20)
				bus.ram[0x2100] = 0x01
			},
			cycles: 7,
			addr:   0x2100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, bus := newTestCpu(0x8000)
			tt.setup(c, bus)

			for i := byte(0); i < tt.cycles; i++ {
				require.NoError(t, c.Tick())
			}

			assert.Equal(t, byte(0x02), bus.ram[tt.addr])
			assert.Equal(t, byte(0), c.CyclesRemaining)
		})
	}
}

func TestLSRAccumulatorNeverSetsNegative(t *testing.T) {
	c, bus := newTestCpu(0x8000)
	c.A = 0x01 // carry=1, result=0
	bus.load(0x8000, 0x4A)

	for i := 0; i < 2; i++ {
		require.NoError(t, c.Tick())
	}

	assert.Equal(t, byte(0x00), c.A)
	assert.True(t, c.Flag(FlagCarry))
	assert.True(t, c.Flag(FlagZero))
	assert.False(t, c.Flag(FlagNegative))
}

func TestLSRMemoryAbsolute(t *testing.T) {
	c, bus := newTestCpu(0x8000)
	bus.load(0x8000, 0x4E, 0x00, 0x30)
	bus.ram[0x3000] = 0xFF

	for i := 0; i < 6; i++ {
		require.NoError(t, c.Tick())
	}

	assert.Equal(t, byte(0x7F), bus.ram[0x3000])
	assert.True(t, c.Flag(FlagCarry))
	assert.False(t, c.Flag(FlagNegative))
}
