// Package busmem provides a flat 64KiB reference implementation of the
// cpu.Bus contract, suitable for tests, fixtures, and the monitor. It is not
// goroutine-safe: per the core's concurrency model, the bus is a
// single-threaded collaborator and callers sharing it across goroutines must
// coordinate themselves.
package busmem

import (
	"fmt"
	"strconv"
	"strings"
)

// Bus is a flat, unmapped 64KiB address space. There is no mirroring or
// bank-switching; every address reads back whatever was last written to it,
// zero-initialized otherwise.
type Bus struct {
	ram [65536]byte
}

// Read returns the byte at addr. Every read is total: addr is always in
// range for a 16-bit address and a flat 64KiB array.
func (b *Bus) Read(addr uint16) byte {
	return b.ram[addr]
}

// Write stores value at addr.
func (b *Bus) Write(addr uint16, value byte) {
	b.ram[addr] = value
}

// Load copies program into the bus starting at addr.
func (b *Bus) Load(program []byte, addr uint16) {
	for i, v := range program {
		b.ram[int(addr)+i] = v
	}
}

// LoadHex parses program as whitespace-separated hexadecimal byte tokens
// (e.g. "A9 00 8D 00 20") and writes the resulting bytes starting at addr.
// It returns an error naming the offending token instead of panicking on a
// malformed one.
func (b *Bus) LoadHex(program string, addr uint16) error {
	for i, tok := range strings.Fields(program) {
		v, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return fmt.Errorf("busmem: LoadHex: token %q at index %d: %w", tok, i, err)
		}
		b.ram[int(addr)+i] = byte(v)
	}
	return nil
}

// SetResetVector writes a little-endian pointer at 0xFFFC/0xFFFD. The core
// does not dereference this vector on Reset — PC is set directly to 0xFFFC —
// but callers that want hardware-faithful indirection through the reset
// vector (e.g. the monitor) can use this to set one up explicitly.
func (b *Bus) SetResetVector(addr uint16) {
	b.ram[0xFFFC] = byte(addr)
	b.ram[0xFFFD] = byte(addr >> 8)
}
