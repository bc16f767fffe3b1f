package cpu

// AddressingMode names one of the effective-address evaluators a decode
// table entry may reference. Each mode is a pure function of the current PC,
// X, Y, and the bus: it returns a 16-bit effective address and whether
// computing it crossed a page boundary, and advances PC past any operand
// bytes it consumed.
type AddressingMode int

const (
	ModeImmediate AddressingMode = iota
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirectX
	ModeIndirectY
)

// evalAddress dispatches to the evaluator for mode and returns the effective
// address plus whether a page crossed while computing it. Modes that cannot
// cross a page (everything confined to the zero page, plus Immediate)
// unconditionally report false.
func (c *Cpu) evalAddress(mode AddressingMode) (addr uint16, pageCrossed bool) {
	switch mode {
	case ModeImmediate:
		addr = c.PC
		c.PC++
		return addr, false

	case ModeZeroPage:
		addr = uint16(c.Read(c.PC))
		c.PC++
		return addr, false

	case ModeZeroPageX:
		zp := c.Read(c.PC)
		c.PC++
		return uint16((zp + c.X) & 0xFF), false

	case ModeZeroPageY:
		zp := c.Read(c.PC)
		c.PC++
		return uint16((zp + c.Y) & 0xFF), false

	case ModeAbsolute:
		lo := uint16(c.Read(c.PC))
		c.PC++
		hi := uint16(c.Read(c.PC))
		c.PC++
		return hi<<8 | lo, false

	case ModeAbsoluteX:
		lo := uint16(c.Read(c.PC))
		c.PC++
		hi := uint16(c.Read(c.PC))
		c.PC++
		base := hi<<8 | lo
		final := base + uint16(c.X)
		return final, final&0xFF00 != base&0xFF00

	case ModeAbsoluteY:
		lo := uint16(c.Read(c.PC))
		c.PC++
		hi := uint16(c.Read(c.PC))
		c.PC++
		base := hi<<8 | lo
		final := base + uint16(c.Y)
		return final, final&0xFF00 != base&0xFF00

	case ModeIndirectX:
		ptr := c.Read(c.PC)
		c.PC++
		ptr += c.X // zero-page wrap
		lo := uint16(c.Read(uint16(ptr)))
		hi := uint16(c.Read(uint16(ptr+1) & 0xFF))
		return hi<<8 | lo, false

	case ModeIndirectY:
		ptr := c.Read(c.PC)
		c.PC++
		lo := uint16(c.Read(uint16(ptr)))
		hi := uint16(c.Read(uint16(ptr+1) & 0xFF))
		base := hi<<8 | lo
		final := base + uint16(c.Y)
		return final, final&0xFF00 != base&0xFF00
	}

	// unreachable for any mode referenced by the decode table
	return 0, false
}
