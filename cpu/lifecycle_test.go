package cpu

import "testing"

func TestReset(t *testing.T) {
	dump := `0900: ea ea ea ea`
	cpu := loadCPUWith(t, dump)
	cpu.A, cpu.X, cpu.Y = 0x11, 0x22, 0x33
	cpu.P = FlagN | FlagC
	cpu.Halted = true

	cpu.Reset(0x0900)

	wantEqual(t, "A", cpu.A, uint8(0))
	wantEqual(t, "X", cpu.X, uint8(0))
	wantEqual(t, "Y", cpu.Y, uint8(0))
	wantEqual(t, "SP", cpu.SP, uint8(0xFD))
	wantEqual(t, "PC", cpu.PC, uint16(0x0900))
	if cpu.P != FlagU {
		t.Errorf("P = %s, want %s", cpu.P, FlagU)
	}
	if cpu.Halted {
		t.Error("Halted = true after Reset, want false")
	}
}

// TestResetThenNOPLoop exercises reset immediately followed by a run of
// plain NOPs: the canonical smallest program a host boots into, and the
// simplest possible check that cycle accounting and PC advancement agree
// after a reset.
func TestResetThenNOPLoop(t *testing.T) {
	dump := `0900: ea ea ea ea`
	cpu := loadCPUWith(t, dump)
	cpu.Reset(0x0900)

	elapsed := cpu.Run(8, ByCycles)

	wantEqual(t, "elapsed", elapsed, int64(8))
	wantEqual(t, "PC", cpu.PC, uint16(0x0904))
	if cpu.Halted {
		t.Error("Halted = true after a run of NOPs, want false")
	}
}

func TestIRQIgnoredWhenMasked(t *testing.T) {
	dump := `FFFE: 00 09`
	cpu := loadCPUWith(t, dump)
	cpu.PC = 0x0777
	cpu.SP = 0xFF
	cpu.P = FlagI

	cpu.IRQ()

	wantEqual(t, "PC", cpu.PC, uint16(0x0777))
	wantEqual(t, "SP", cpu.SP, uint8(0xFF))
}

func TestIRQDeliveredWhenUnmasked(t *testing.T) {
	dump := `FFFE: 00 09`
	cpu := loadCPUWith(t, dump)
	cpu.PC = 0x0777
	cpu.SP = 0xFF
	cpu.P = 0

	cpu.IRQ()

	wantEqual(t, "PC", cpu.PC, uint16(0x0900))
	wantEqual(t, "SP", cpu.SP, uint8(0xFC))
	if !cpu.P.I() {
		t.Error("P.I() = false after IRQ, want true")
	}

	pushedStatus := cpu.pop()
	if pushedStatus&uint8(FlagB) != 0 {
		t.Errorf("pushed status = $%02X, B should be clear", pushedStatus)
	}
	if got := cpu.pop16(); got != 0x0777 {
		t.Errorf("pushed return address = $%04X, want $0777", got)
	}
}

func TestNMIIgnoresIMask(t *testing.T) {
	dump := `FFFA: 00 08`
	cpu := loadCPUWith(t, dump)
	cpu.PC = 0x0777
	cpu.SP = 0xFF
	cpu.P = FlagI // NMI must fire even though IRQs are masked

	cpu.NMI()

	wantEqual(t, "PC", cpu.PC, uint16(0x0800))
	wantEqual(t, "SP", cpu.SP, uint8(0xFC))

	pushedStatus := cpu.pop()
	if pushedStatus&uint8(FlagB) != 0 {
		t.Errorf("pushed status = $%02X, B should be clear", pushedStatus)
	}
	if got := cpu.pop16(); got != 0x0777 {
		t.Errorf("pushed return address = $%04X, want $0777", got)
	}
}
