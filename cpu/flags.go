package cpu

// Flag identifies a single bit of the processor status register. Values are
// the bitmasks themselves (wire-compatible with a 6502 stack push), matching
// the guidance to model status as a plain byte with typed accessors rather
// than a struct of booleans — PHP/PLP need an exact 8-bit image, not a
// reconstructed one.
type Flag byte

const (
	FlagCarry     Flag = 0x01
	FlagZero      Flag = 0x02
	FlagInterrupt Flag = 0x04
	FlagDecimal   Flag = 0x08
	FlagBreak     Flag = 0x10
	FlagUnused    Flag = 0x20
	FlagOverflow  Flag = 0x40
	FlagNegative  Flag = 0x80
)

// Flag reports whether the given status bit is set.
func (c *Cpu) Flag(f Flag) bool {
	return c.status&byte(f) != 0
}

// SetFlag writes value into the given status bit, leaving all others
// untouched.
func (c *Cpu) SetFlag(f Flag, value bool) {
	if value {
		c.status |= byte(f)
	} else {
		c.status &^= byte(f)
	}
}

// updateZN sets Zero iff result is zero and Negative iff bit 7 of result is
// set. No other flag is touched.
func (c *Cpu) updateZN(result byte) {
	c.SetFlag(FlagZero, result == 0)
	c.SetFlag(FlagNegative, result&0x80 != 0)
}
