// Command monitor is an interactive terminal front-end for single-stepping
// a program loaded into a nes6502/busmem.Bus. It is a host-side convenience
// built on top of the core; it holds no architectural state of its own.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	cli "gopkg.in/urfave/cli.v2"

	"nes6502/busmem"
	"nes6502/cpu"
)

func main() {
	app := &cli.App{
		Name:  "monitor",
		Usage: "single-step a hex-byte 6502 program in an interactive TUI",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "program",
				Aliases: []string{"p"},
				Usage:   "whitespace-separated hex bytes, e.g. \"A9 00 8D 00 20\"",
			},
			&cli.UintFlag{
				Name:    "origin",
				Aliases: []string{"o"},
				Usage:   "address the program is loaded at",
				Value:   0x8000,
			},
			&cli.BoolFlag{
				Name:  "vector",
				Usage: "write a reset-vector pointer at 0xFFFC pointing at --origin (opt-in; the core does not dereference it on its own)",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "suppress structured log output below warn level",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "monitor:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("quiet") {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	program := c.String("program")
	if program == "" {
		return cli.Exit("--program is required", 2)
	}
	origin := uint16(c.Uint("origin"))

	bus := &busmem.Bus{}
	if err := bus.LoadHex(program, origin); err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if c.Bool("vector") {
		// For inspection only: the core sets PC=0xFFFC directly on
		// Reset and never dereferences this pointer, so writing it
		// has no effect on where execution actually starts.
		bus.SetResetVector(origin)
	}

	engine := cpu.New(bus)
	engine.PC = origin

	log.Info().Uint16("origin", origin).Msg("monitor: program loaded")

	m := model{
		c:      engine,
		bus:    bus,
		origin: origin,
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return err
	}
	return nil
}
