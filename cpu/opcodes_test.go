package cpu

import "testing"

func TestOpTableCoversAllLegalOpcodes(t *testing.T) {
	count := 0
	for opcode := 0; opcode < 256; opcode++ {
		if _, _, _, legal := Info(uint8(opcode)); legal {
			count++
		}
	}
	if count != 151 {
		t.Errorf("got %d legal opcodes, want 151", count)
	}
}

func TestIllegalOpcodeHalts(t *testing.T) {
	// 0x02 is undocumented and unmapped by the dispatch table.
	cpu := loadCPUWith(t, `0600: 02`)
	cpu.PC = 0x0600
	cpu.Run(10, ByCycles)
	if !cpu.Halted {
		t.Fatal("expected CPU to halt on illegal opcode")
	}
}

func TestCompareAgainstX(t *testing.T) {
	cases := []struct {
		name    string
		operand string
		wantP   uint8
	}{
		{"X below operand", "50", 0b10110000},
		{"X equal operand", "30", 0b00110011},
		{"X above operand", "10", 0b00110001},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			// LDX #$30; CPX #operand
			dump := "0900: a2 30 e0 " + tt.operand
			cpu := loadCPUWith(t, dump)
			cpu.PC = 0x0900
			cpu.P = 0b00110000
			runAndCheckState(t, cpu, 4,
				"A", uint8(0x00),
				"X", uint8(0x30),
				"Y", uint8(0x00),
				"P", tt.wantP,
			)
		})
	}
}

func TestStoreAbsoluteChain(t *testing.T) {
	// three LDA #imm / STA abs pairs into consecutive cells of a scratch page
	dump := `0900: a9 07 8d 00 03 a9 0e 8d 01 03 a9 15 8d 02 03`
	cpu := loadCPUWith(t, dump)
	cpu.PC = 0x0900
	runAndCheckState(t, cpu, 6*3,
		"A", uint8(0x15),
		"Pb", uint8(0),
		"PC", uint16(0x090F),
		"SP", uint8(0xfd),
		"mem", `0300: 07 0e 15`,
	)
}

func TestExclusiveOrZeroPage(t *testing.T) {
	dump := `
0030: c3
0900: 45 30`
	cpu := loadCPUWith(t, dump)
	cpu.PC = 0x0900
	cpu.A = 0x5A
	runAndCheckState(t, cpu, 3,
		"A", uint8(0x99),
		"Pn", uint8(1),
		"Pz", uint8(0),
	)
}

func TestRotateRightZeroPageWithCarryIn(t *testing.T) {
	dump := `
0040: 05
0900: 66 40`
	cpu := loadCPUWith(t, dump)
	cpu.PC = 0x0900
	cpu.P.set(FlagC, true)
	runAndCheckState(t, cpu, 5,
		"Pn", uint8(1),
		"Pc", uint8(1),
		"Pz", uint8(0),
	)
	wantMem8(t, cpu, 0x0040, 0x82)
}

func TestDescendingStackRoundTrip(t *testing.T) {
	// loop1 pushes X (0..7) onto the stack while also storing it forward
	// into a scratch page; loop2 pulls them back off (LIFO, so reversed)
	// and stores them into the tail of the same page.
	dump := `
# a2 00       LDX #$00
# a0 00       LDY #$00
# 8a          loop1: TXA
# 99 00 03    STA $0300,Y
# 48          PHA
# e8          INX
# c8          INY
# c0 08       CPY #$08
# d0 f5       BNE loop1
# 68          loop2: PLA
# 99 00 03    STA $0300,Y
# c8          INY
# c0 10       CPY #$10
# d0 f7       BNE loop2
0900: a2 00 a0 00 8a 99 00 03 48 e8 c8 c0 08 d0 f5 68
0910: 99 00 03 c8 c0 10 d0 f7
`
	cpu := loadCPUWith(t, dump)
	cpu.PC = 0x0900
	cpu.P = 0x30
	cpu.SP = 0xFF
	runAndCheckState(t, cpu, 268,
		"PC", uint16(0x0918),
		"A", uint8(0x00),
		"X", uint8(0x08),
		"Y", uint8(0x10),
		"SP", uint8(0xFF),
		"mem", `
0300: 00 01 02 03 04 05 06 07
0308: 07 06 05 04 03 02 01 00`,
	)
}

func TestPushPullPreservesValue(t *testing.T) {
	dump := `0900: a9 91 48 a9 3c 68`
	cpu := loadCPUWith(t, dump)
	cpu.PC = 0x0900
	cpu.P = 0x30
	cpu.SP = 0xFF
	runAndCheckState(t, cpu, 2+3+2+4,
		"PC", uint16(0x0906),
		"A", uint8(0x91),
		"SP", uint8(0xFF),
		"Pn", uint8(1),
	)
}

func TestJSR_RTS(t *testing.T) {
	dump := `
# JSR $0950; LDA #$EE
0900: 20 50 09 A9 EE
# LDA #$77; RTS
0950: A9 77 60`
	cpu := loadCPUWith(t, dump)
	cpu.PC = 0x0900
	cpu.P = 0x30
	cpu.SP = 0xFF
	runAndCheckState(t, cpu, 6, "PC", uint16(0x0950))
	runAndCheckState(t, cpu, 2, "A", uint8(0x77))
	runAndCheckState(t, cpu, 6, "PC", uint16(0x0903))
	runAndCheckState(t, cpu, 2, "A", uint8(0xEE))
}

func TestADCBinaryOverflow(t *testing.T) {
	// LDA #$60; CLC; ADC #$60 -> A=$C0, V=1, N=1, C=0
	dump := `0900: a9 60 18 69 60`
	cpu := loadCPUWith(t, dump)
	cpu.PC = 0x0900
	runAndCheckState(t, cpu, 2+2+2,
		"A", uint8(0xC0),
		"Pn", uint8(1),
		"Pv", uint8(1),
		"Pc", uint8(0),
	)
}

func TestSBCBorrow(t *testing.T) {
	// LDA #$70; SEC; SBC #$90 -> A=$E0, V=1, C=0, N=1, Z=0
	dump := `0900: a9 70 38 e9 90`
	cpu := loadCPUWith(t, dump)
	cpu.PC = 0x0900
	runAndCheckState(t, cpu, 2+2+2,
		"A", uint8(0xE0),
		"Pn", uint8(1),
		"Pv", uint8(1),
		"Pc", uint8(0),
		"Pz", uint8(0),
	)
}

func TestBRK_RTI(t *testing.T) {
	dump := `
# BRK
0760: 00
# IRQ/BRK vector
FFFE: 90 07
# handler: RTI
0790: 40`
	cpu := loadCPUWith(t, dump)
	cpu.PC = 0x0760
	cpu.SP = 0xFF
	cpu.P = FlagU
	runAndCheckState(t, cpu, 7, "PC", uint16(0x0790))
	runAndCheckState(t, cpu, 6,
		"PC", uint16(0x0762),
		"SP", uint8(0xFF),
	)
}

// TestRTIForcesU pokes a status byte with bit 5 (U) clear directly onto the
// stack, then executes a bare RTI popping it. U must read back set
// regardless of what was actually stored, matching PLP's behavior.
func TestRTIForcesU(t *testing.T) {
	dump := `0980: 40`
	cpu := loadCPUWith(t, dump)
	cpu.PC = 0x0980
	cpu.SP = 0xFC

	// Stack layout for RTI, popped low address first: P, PCL, PCH.
	cpu.Write8(0x0100+uint16(cpu.SP)+1, 0x80) // P: only N set, U (0x20) clear
	cpu.Write8(0x0100+uint16(cpu.SP)+2, 0x34) // PCL
	cpu.Write8(0x0100+uint16(cpu.SP)+3, 0x12) // PCH

	cpu.Run(6, ByCycles)

	if !cpu.P.U() {
		t.Error("P.U() = false after RTI, want true")
	}
	if got, want := cpu.PC, uint16(0x1234); got != want {
		t.Errorf("PC = $%04X after RTI, want $%04X", got, want)
	}
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	// JMP ($04FF): the low byte of the target comes from $04FF, but the
	// NMOS bug fetches the high byte from $0400 (wrapping within the
	// page) instead of $0500. $0500 is seeded with a different value so
	// a correct emulation and a naive one disagree on the result.
	dump := `
04FF: 50
0500: 09
0400: 08
0980: 6c ff 04`
	cpu := loadCPUWith(t, dump)
	cpu.PC = 0x0980
	runAndCheckState(t, cpu, 5, "PC", uint16(0x0850))
}
