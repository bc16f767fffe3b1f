package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"nes6502/busmem"
	"nes6502/cpu"
)

// flagSymbols lists the status byte's bits MSB-first (N V U B D I Z C).
var flagSymbols = []struct {
	flag cpu.Flag
	sym  rune
}{
	{cpu.FlagNegative, 'N'},
	{cpu.FlagOverflow, 'V'},
	{cpu.FlagUnused, 'U'},
	{cpu.FlagBreak, 'B'},
	{cpu.FlagDecimal, 'D'},
	{cpu.FlagInterrupt, 'I'},
	{cpu.FlagZero, 'Z'},
	{cpu.FlagCarry, 'C'},
}

type model struct {
	c      *cpu.Cpu
	bus    *busmem.Bus
	origin uint16

	prevPC uint16
	err    error
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "r":
		m.c.Reset()
		m.err = nil

	case " ", "j":
		m.prevPC = m.c.PC
		if err := m.c.Tick(); err != nil {
			m.err = err
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%04X | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.bus.Read(addr)
		if addr == m.c.PC {
			fmt.Fprintf(&sb, "[%02X] ", b)
		} else {
			fmt.Fprintf(&sb, " %02X  ", b)
		}
	}
	return sb.String()
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %X  ", b)
	}

	pageOf := func(addr uint16) uint16 { return addr &^ 0x0F }

	lines := []string{header, m.renderPage(pageOf(m.origin))}
	for i := uint16(1); i < 5; i++ {
		lines = append(lines, m.renderPage(pageOf(m.origin)+16*i))
	}
	lines = append(lines, m.renderPage(pageOf(m.c.PC)))
	return strings.Join(lines, "\n")
}

func (m model) statusLine() string {
	var row strings.Builder
	for _, f := range flagSymbols {
		if m.c.Flag(f.flag) {
			row.WriteRune(f.sym)
			row.WriteByte(' ')
		} else {
			row.WriteString(". ")
		}
	}

	errLine := ""
	if m.err != nil {
		errLine = "\nERROR: " + m.err.Error()
	}

	return fmt.Sprintf(`
PC: %04X (was %04X)
 A: %02X   X: %02X   Y: %02X   SP: %02X
cycles remaining: %d
N V U B D I Z C
%s%s`,
		m.c.PC, m.prevPC,
		m.c.A, m.c.X, m.c.Y, m.c.SP,
		m.c.CyclesRemaining,
		row.String(),
		errLine,
	)
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.statusLine(),
		),
		"",
		fmt.Sprintf("last opcode: 0x%02X (%s)", m.c.LastOpcode(), m.c.Mnemonic()),
		spew.Sdump(m.c),
	)
}
