package main

import (
	"fmt"
	"io"

	"github.com/glouw/run6502/cpu"
)

// dumpState prints a post-mortem register and memory dump, in the style of
// original_source/main.cpp's RTS handler: registers, then zero page, then
// the stack page, sixteen bytes to a line.
func dumpState(w io.Writer, c *cpu.CPU, bus cpu.Bus) {
	fmt.Fprintf(w, "A=%02X X=%02X Y=%02X SP=%02X PC=%04X P=%s (%s)\n",
		c.A, c.X, c.Y, c.SP, c.PC, c.P, c.P.String())

	fmt.Fprintln(w, "zero page:")
	dumpPage(w, bus, 0x0000)

	fmt.Fprintln(w, "stack page:")
	dumpPage(w, bus, 0x0100)
}

func dumpPage(w io.Writer, bus cpu.Bus, base uint16) {
	for row := uint16(0); row < 16; row++ {
		fmt.Fprintf(w, "%04X:", base+row*16)
		for col := uint16(0); col < 16; col++ {
			fmt.Fprintf(w, " %02X", bus.Read(base+row*16+col))
		}
		fmt.Fprintln(w)
	}
}
