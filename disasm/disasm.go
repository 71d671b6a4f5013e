// Package disasm renders 6502 machine code as text, reading mnemonic and
// addressing-mode metadata straight from cpu.Info instead of keeping a
// parallel, hand-written per-opcode string table, so the two can never
// drift apart.
package disasm

import (
	"fmt"

	"github.com/glouw/run6502/cpu"
)

// Line disassembles a single instruction at pc, returning its text and the
// number of bytes it occupies (1-3). Reads are non-destructive: pc and any
// operand bytes are peeked from bus, never fetched through a CPU.
func Line(bus cpu.Bus, pc uint16) (text string, size int) {
	opcode := bus.Read(pc)
	mode, op, _, legal := cpu.Info(opcode)
	if !legal {
		return fmt.Sprintf("%-4s", "???"), 1
	}

	operand, n := operandText(bus, pc, mode)
	if operand == "" {
		return op.String(), n
	}
	return fmt.Sprintf("%-4s %s", op.String(), operand), n
}

func operandText(bus cpu.Bus, pc uint16, mode cpu.Mode) (string, int) {
	byteAt := func(off uint16) uint8 { return bus.Read(pc + off) }
	word := func(off uint16) uint16 { return cpu.Read16(bus, pc+off) }

	switch mode {
	case cpu.IMP:
		return "", 1
	case cpu.ACC:
		return "A", 1
	case cpu.IMM:
		return fmt.Sprintf("#$%02X", byteAt(1)), 2
	case cpu.ZER:
		return fmt.Sprintf("$%02X", byteAt(1)), 2
	case cpu.ZEX:
		return fmt.Sprintf("$%02X,X", byteAt(1)), 2
	case cpu.ZEY:
		return fmt.Sprintf("$%02X,Y", byteAt(1)), 2
	case cpu.ABS:
		return fmt.Sprintf("$%04X", word(1)), 3
	case cpu.ABX:
		return fmt.Sprintf("$%04X,X", word(1)), 3
	case cpu.ABY:
		return fmt.Sprintf("$%04X,Y", word(1)), 3
	case cpu.ABI:
		return fmt.Sprintf("($%04X)", word(1)), 3
	case cpu.INX:
		return fmt.Sprintf("($%02X,X)", byteAt(1)), 2
	case cpu.INY:
		return fmt.Sprintf("($%02X),Y", byteAt(1)), 2
	case cpu.REL:
		off := int8(byteAt(1))
		target := uint16(int32(pc) + 2 + int32(off))
		return fmt.Sprintf("$%04X", target), 2
	default:
		return "", 1
	}
}
