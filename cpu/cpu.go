// Package cpu implements the core of a cycle-aware MOS 6502 / Ricoh 2A03
// emulator: the fetch-decode-execute engine, its addressing-mode evaluators,
// and the instruction handlers that operate on the register file.
//
// The package owns no memory of its own. A Cpu is constructed around a Bus
// supplied by the caller, and reaches the outside world exclusively through
// that Bus's Read and Write methods.
package cpu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// A Bus is the 16-bit address space the Cpu reaches the outside world
// through. Implementations are not required to be idempotent: the Cpu
// treats every fetch and operand read as a distinct observable event.
//
// A Bus may be shared with other subsystems in the host; from the Cpu's
// point of view it is a single-threaded collaborator, and no coordination is
// performed between Tick calls.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
}

// Cpu is the architectural state of a 6502: the register file plus the
// cycle-accounting fields the execution engine needs between ticks. It is
// constructed in reset state and mutated only by Tick, Reset, and the
// instruction handlers.
type Cpu struct {
	Bus Bus

	A  byte // accumulator
	X  byte // index register X
	Y  byte // index register Y
	SP byte // stack pointer; effective stack address is 0x0100 | SP

	PC uint16

	status byte // processor status (P register), bit-packed per Flag

	// M is an operand staging byte. No addressing-mode evaluator or
	// handler writes it; handlers read their operand through the effective
	// address instead, and Reset clears it.
	M byte

	// AbsAddress is the effective address computed by the current
	// instruction's addressing mode. Implied-addressing handlers ignore
	// it.
	AbsAddress uint16

	// CyclesRemaining counts down the host ticks owed before the next
	// fetch. It is zero only on a fetch boundary.
	CyclesRemaining byte

	// lastMnemonic/lastOpcode are purely for logging and the monitor; they
	// carry no semantic weight for the engine itself.
	lastMnemonic string
	lastOpcode   byte
}

// New constructs a Cpu wired to bus and puts it in reset state.
func New(bus Bus) *Cpu {
	c := &Cpu{Bus: bus}
	c.Reset()
	return c
}

// Read reads one byte from the bus at addr.
func (c *Cpu) Read(addr uint16) byte {
	return c.Bus.Read(addr)
}

// Write writes value to the bus at addr.
func (c *Cpu) Write(addr uint16, value byte) {
	c.Bus.Write(addr, value)
}

// Reset restores the register file to its power-on-equivalent state:
// A=X=Y=0, SP=0xFF, the unused and break status bits set and all others
// clear, and PC=0xFFFC. Reset may be called at any fetch boundary, and also
// mid-instruction — any pending cycle debt is discarded.
//
// The source this core is derived from sets PC directly to 0xFFFC and begins
// fetching from there rather than indirecting through it as a vector; this
// core preserves that behavior deliberately (see DESIGN.md).
func (c *Cpu) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xFF
	c.status = byte(FlagUnused) | byte(FlagBreak)
	c.PC = 0xFFFC
	c.M = 0
	c.AbsAddress = 0
	c.CyclesRemaining = 0
	c.lastMnemonic = ""
	c.lastOpcode = 0

	log.Debug().
		Uint16("pc", c.PC).
		Uint8("sp", c.SP).
		Uint8("status", c.status).
		Msg("cpu reset")
}

// DecodeError is returned by Tick when the byte fetched at a fetch boundary
// does not correspond to any entry in the decode table. It is fatal: the
// engine has not mutated any architectural state beyond the opcode fetch,
// the PC increment past it, and the forced Unused status bit.
type DecodeError struct {
	Opcode byte
	PC     uint16 // the PC at which the offending byte was fetched
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cpu: unknown opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// Status returns the packed 8-bit processor status byte.
func (c *Cpu) Status() byte { return c.status }

// SetStatus overwrites the packed processor status byte directly. It exists
// for tests; instruction handlers never call it (PHP/PLP read and assign
// the packed status field directly, the other handlers use SetFlag).
func (c *Cpu) SetStatus(v byte) { c.status = v }

// SetSP is a testing aid allowing direct manipulation of the stack pointer,
// matching the engine's documented external surface.
func (c *Cpu) SetSP(v byte) { c.SP = v }

// Mnemonic returns the human-readable name of the opcode most recently
// fetched at a fetch boundary. It is not semantically load-bearing; it
// exists for logging and the monitor.
func (c *Cpu) Mnemonic() string { return c.lastMnemonic }

// LastOpcode returns the raw opcode byte most recently fetched.
func (c *Cpu) LastOpcode() byte { return c.lastOpcode }

// LoadProgram parses program as whitespace-separated hexadecimal byte
// tokens and writes the resulting bytes to the bus starting at addr. It is a
// testing/tooling convenience, not part of the core's architectural
// behavior, kept from the source this core is derived from.
func (c *Cpu) LoadProgram(program []byte, addr uint16) error {
	for i, tok := range strings.Fields(string(program)) {
		b, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return fmt.Errorf("cpu: LoadProgram: token %q at index %d: %w", tok, i, err)
		}
		c.Bus.Write(addr+uint16(i), byte(b))
	}
	return nil
}
