package cpu

import "github.com/rs/zerolog/log"

// Tick advances the engine by one host cycle.
//
// If cycles remain from the instruction currently in flight, Tick simply
// decrements the counter and returns. Otherwise it is a fetch boundary: Tick
// fetches the opcode at PC, advances PC past it, forces the Unused status
// bit set, looks the opcode up in the decode table, computes an effective
// address if the entry requires one, invokes the handler, and charges the
// instruction's base cycle cost plus any page-crossing penalty.
//
// An opcode absent from the decode table is a fatal decode failure: Tick
// returns a *DecodeError without mutating any state beyond the opcode fetch,
// the PC increment past it, and the forced Unused status bit.
func (c *Cpu) Tick() error {
	if c.CyclesRemaining > 0 {
		c.CyclesRemaining--
		return nil
	}

	opByte := c.Read(c.PC)
	pcAtFetch := c.PC
	c.PC++
	c.SetFlag(FlagUnused, true)

	e, ok := opcodes[opByte]
	if !ok {
		err := &DecodeError{Opcode: opByte, PC: pcAtFetch}
		log.Error().Uint8("opcode", opByte).Uint16("pc", pcAtFetch).Msg(err.Error())
		return err
	}

	c.lastOpcode = opByte
	c.lastMnemonic = e.mnemonic
	c.CyclesRemaining = e.cycles

	if e.kind == kindImplied {
		e.implied(c)
	} else {
		addr, pageCrossed := c.evalAddress(e.mode)
		if pageCrossed && e.extra {
			c.CyclesRemaining++
		}
		c.AbsAddress = addr
		e.addressed(c, addr)
	}

	c.CyclesRemaining--
	return nil
}
