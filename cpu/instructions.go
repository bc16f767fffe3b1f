package cpu

// Instruction handlers for the subset of the 6502 instruction set this core
// implements: loads, stores, register transfers, stack operations, ASL,
// LSR, and the carry-flag instructions CLC/SEC.
//
// Addressed handlers receive the effective address computed by the
// instruction's addressing mode. Implied handlers take no address and act
// only on the register file. Unless noted, every handler that writes a
// register or produces a result updates Zero and Negative from that result.

// --- Load family ---------------------------------------------------------

func (c *Cpu) opLDA(addr uint16) {
	c.A = c.Read(addr)
	c.updateZN(c.A)
}

func (c *Cpu) opLDX(addr uint16) {
	c.X = c.Read(addr)
	c.updateZN(c.X)
}

func (c *Cpu) opLDY(addr uint16) {
	c.Y = c.Read(addr)
	c.updateZN(c.Y)
}

// --- Store family ----------------------------------------------------------
// Store handlers never touch the flags.

func (c *Cpu) opSTA(addr uint16) { c.Write(addr, c.A) }
func (c *Cpu) opSTX(addr uint16) { c.Write(addr, c.X) }
func (c *Cpu) opSTY(addr uint16) { c.Write(addr, c.Y) }

// --- Transfer family -------------------------------------------------------

func (c *Cpu) opTAX() {
	c.X = c.A
	c.updateZN(c.X)
}

func (c *Cpu) opTAY() {
	c.Y = c.A
	c.updateZN(c.Y)
}

func (c *Cpu) opTXA() {
	c.A = c.X
	c.updateZN(c.A)
}

func (c *Cpu) opTYA() {
	c.A = c.Y
	c.updateZN(c.A)
}

func (c *Cpu) opTSX() {
	c.X = c.SP
	c.updateZN(c.X)
}

// TXS does not update flags.
func (c *Cpu) opTXS() { c.SP = c.X }

// --- Stack family ------------------------------------------------------
// The stack occupies page 1 (0x0100-0x01FF) and grows downward. SP wraps
// modulo 256 on push and pull.

func (c *Cpu) opPHA() {
	c.Write(0x0100|uint16(c.SP), c.A)
	c.SP--
}

// PHP forces the Break and Unused bits set in the pushed byte without
// altering the live status register.
func (c *Cpu) opPHP() {
	c.Write(0x0100|uint16(c.SP), c.status|byte(FlagBreak)|byte(FlagUnused))
	c.SP--
}

func (c *Cpu) opPLA() {
	c.SP++
	c.A = c.Read(0x0100 | uint16(c.SP))
	c.updateZN(c.A)
}

// PLP discards the pulled Break bit in favor of the live one and forces
// Unused set; every other bit takes the pulled value.
func (c *Cpu) opPLP() {
	c.SP++
	pulled := c.Read(0x0100 | uint16(c.SP))
	liveBreak := c.status & byte(FlagBreak)
	c.status = (pulled &^ byte(FlagBreak)) | liveBreak | byte(FlagUnused)
}

// --- Shift family ------------------------------------------------------

func (c *Cpu) opASL(addr uint16) {
	v := c.Read(addr)
	c.SetFlag(FlagCarry, v&0x80 != 0)
	v <<= 1
	c.Write(addr, v)
	c.updateZN(v)
}

func (c *Cpu) opASLAcc() {
	c.SetFlag(FlagCarry, c.A&0x80 != 0)
	c.A <<= 1
	c.updateZN(c.A)
}

func (c *Cpu) opLSR(addr uint16) {
	v := c.Read(addr)
	c.SetFlag(FlagCarry, v&0x01 != 0)
	v >>= 1
	c.Write(addr, v)
	c.SetFlag(FlagNegative, false)
	c.SetFlag(FlagZero, v == 0)
}

func (c *Cpu) opLSRAcc() {
	c.SetFlag(FlagCarry, c.A&0x01 != 0)
	c.A >>= 1
	c.SetFlag(FlagNegative, false)
	c.SetFlag(FlagZero, c.A == 0)
}

// --- Flag family -------------------------------------------------------

func (c *Cpu) opCLC() { c.SetFlag(FlagCarry, false) }
func (c *Cpu) opSEC() { c.SetFlag(FlagCarry, true) }
