package cpu

// Mode is the addressing mode of an instruction: how its operand bytes,
// if any, are turned into an effective address.
type Mode uint8

const (
	IMP Mode = iota // implied
	ACC              // accumulator
	IMM              // immediate
	ZER              // zero-page
	ZEX              // zero-page,X
	ZEY              // zero-page,Y
	ABS              // absolute
	ABX              // absolute,X
	ABY              // absolute,Y
	ABI              // indirect (JMP only, reproduces the page-wrap bug)
	INX              // indexed-indirect (zp,X)
	INY              // indirect-indexed (zp),Y
	REL              // relative (branches)
)

var modeNames = [...]string{
	IMP: "imp", ACC: "acc", IMM: "imm", ZER: "zp", ZEX: "zp,x", ZEY: "zp,y",
	ABS: "abs", ABX: "abs,x", ABY: "abs,y", ABI: "ind", INX: "(zp,x)", INY: "(zp),y",
	REL: "rel",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "?"
}

// operandBytes is the number of operand bytes following the opcode byte
// for each addressing mode.
var operandBytes = [...]uint8{
	IMP: 0, ACC: 0, IMM: 1, ZER: 1, ZEX: 1, ZEY: 1,
	ABS: 2, ABX: 2, ABY: 2, ABI: 2, INX: 1, INY: 1, REL: 1,
}
