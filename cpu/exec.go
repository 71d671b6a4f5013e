package cpu

// operand loads the value an operation acts on: A itself for the
// accumulator addressing mode (no bus traffic), or the byte at addr
// otherwise.
func (c *CPU) operand(mode Mode, addr uint16) uint8 {
	if mode == ACC {
		return c.A
	}
	return c.Read8(addr)
}

// storeResult writes back a read-modify-write result to A or memory,
// mirroring operand's addressing-mode split.
func (c *CPU) storeResult(mode Mode, addr uint16, val uint8) {
	if mode == ACC {
		c.A = val
	} else {
		c.Write8(addr, val)
	}
}

// execute performs the operation named by op, using mode to decide whether
// it touches the accumulator or memory at addr. addr is a don't-care value
// for IMP and ACC modes.
func (c *CPU) execute(op Op, mode Mode, addr uint16) {
	switch op {
	case OpILLEGAL:
		c.Halted = true

	case OpADC:
		c.adc(c.Read8(addr))
	case OpSBC:
		c.sbc(c.Read8(addr))

	case OpAND:
		c.A &= c.Read8(addr)
		c.P.setNZ(c.A)
	case OpORA:
		c.A |= c.Read8(addr)
		c.P.setNZ(c.A)
	case OpEOR:
		c.A ^= c.Read8(addr)
		c.P.setNZ(c.A)

	case OpASL:
		v := c.operand(mode, addr)
		c.P.set(FlagC, v&0x80 != 0)
		v <<= 1
		c.P.setNZ(v)
		c.storeResult(mode, addr, v)

	case OpLSR:
		v := c.operand(mode, addr)
		c.P.set(FlagC, v&0x01 != 0)
		v >>= 1
		c.P.set(FlagN, false)
		c.P.set(FlagZ, v == 0)
		c.storeResult(mode, addr, v)

	case OpROL:
		v := uint16(c.operand(mode, addr)) << 1
		if c.P.C() {
			v |= 0x01
		}
		c.P.set(FlagC, v > 0xFF)
		v &= 0xFF
		c.P.setNZ(uint8(v))
		c.storeResult(mode, addr, uint8(v))

	case OpROR:
		v := uint16(c.operand(mode, addr))
		if c.P.C() {
			v |= 0x100
		}
		c.P.set(FlagC, v&0x01 != 0)
		v >>= 1
		c.P.setNZ(uint8(v))
		c.storeResult(mode, addr, uint8(v))

	case OpBIT:
		m := c.Read8(addr)
		res := c.A & m
		c.P.set(FlagN, m&0x80 != 0)
		c.P.set(FlagV, m&0x40 != 0)
		c.P.set(FlagZ, res == 0)

	case OpCMP:
		c.compare(c.A, c.Read8(addr))
	case OpCPX:
		c.compare(c.X, c.Read8(addr))
	case OpCPY:
		c.compare(c.Y, c.Read8(addr))

	case OpINC:
		v := c.Read8(addr) + 1
		c.P.setNZ(v)
		c.Write8(addr, v)
	case OpDEC:
		v := c.Read8(addr) - 1
		c.P.setNZ(v)
		c.Write8(addr, v)
	case OpINX:
		c.X++
		c.P.setNZ(c.X)
	case OpDEX:
		c.X--
		c.P.setNZ(c.X)
	case OpINY:
		c.Y++
		c.P.setNZ(c.Y)
	case OpDEY:
		c.Y--
		c.P.setNZ(c.Y)

	case OpLDA:
		c.A = c.Read8(addr)
		c.P.setNZ(c.A)
	case OpLDX:
		c.X = c.Read8(addr)
		c.P.setNZ(c.X)
	case OpLDY:
		c.Y = c.Read8(addr)
		c.P.setNZ(c.Y)
	case OpSTA:
		c.Write8(addr, c.A)
	case OpSTX:
		c.Write8(addr, c.X)
	case OpSTY:
		c.Write8(addr, c.Y)

	case OpTAX:
		c.X = c.A
		c.P.setNZ(c.X)
	case OpTAY:
		c.Y = c.A
		c.P.setNZ(c.Y)
	case OpTSX:
		c.X = c.SP
		c.P.setNZ(c.X)
	case OpTXA:
		c.A = c.X
		c.P.setNZ(c.A)
	case OpTXS:
		c.SP = c.X
	case OpTYA:
		c.A = c.Y
		c.P.setNZ(c.A)

	case OpBCC:
		c.branch(!c.P.C(), addr)
	case OpBCS:
		c.branch(c.P.C(), addr)
	case OpBEQ:
		c.branch(c.P.Z(), addr)
	case OpBNE:
		c.branch(!c.P.Z(), addr)
	case OpBMI:
		c.branch(c.P.N(), addr)
	case OpBPL:
		c.branch(!c.P.N(), addr)
	case OpBVC:
		c.branch(!c.P.V(), addr)
	case OpBVS:
		c.branch(c.P.V(), addr)

	case OpJMP:
		c.PC = addr
	case OpJSR:
		retAddr := c.PC - 1
		c.push16(retAddr)
		c.PC = addr
	case OpRTS:
		c.PC = c.pop16() + 1

	case OpBRK:
		c.PC++
		c.push16(c.PC)
		c.push(uint8(c.P | FlagB))
		c.P.set(FlagI, true)
		c.PC = c.Read16(IRQVector)
	case OpRTI:
		c.P = Flags(c.pop())
		c.P.set(FlagU, true)
		c.PC = c.pop16()

	case OpCLC:
		c.P.set(FlagC, false)
	case OpSEC:
		c.P.set(FlagC, true)
	case OpCLD:
		c.P.set(FlagD, false)
	case OpSED:
		c.P.set(FlagD, true)
	case OpCLI:
		c.P.set(FlagI, false)
	case OpSEI:
		c.P.set(FlagI, true)
	case OpCLV:
		c.P.set(FlagV, false)

	case OpPHA:
		c.push(c.A)
	case OpPHP:
		c.push(uint8(c.P | FlagB))
	case OpPLA:
		c.A = c.pop()
		c.P.setNZ(c.A)
	case OpPLP:
		c.P = Flags(c.pop())
		c.P.set(FlagU, true)

	case OpNOP:
		// no effect

	default:
		c.Halted = true
	}
}

func (c *CPU) branch(taken bool, target uint16) {
	if taken {
		c.PC = target
	}
}

// compare implements CMP/CPX/CPY: reg - m computed at 9-bit width, flags
// updated, register left unchanged.
func (c *CPU) compare(reg, m uint8) {
	t := uint16(reg) - uint16(m)
	c.P.set(FlagC, t < 0x100)
	c.P.set(FlagN, t&0x80 != 0)
	c.P.set(FlagZ, t&0xFF == 0)
}

// adc implements ADC, including BCD adjustment, per the documented NMOS
// behavior.
func (c *CPU) adc(m uint8) {
	carry := uint16(0)
	if c.P.C() {
		carry = 1
	}
	t := uint16(m) + uint16(c.A) + carry
	c.P.set(FlagZ, t&0xFF == 0)
	if c.P.D() {
		if (c.A&0x0F)+(m&0x0F)+uint8(carry) > 9 {
			t += 6
		}
		c.P.set(FlagN, t&0x80 != 0)
		c.P.set(FlagV, (uint16(c.A)^uint16(m))&0x80 == 0 && (uint16(c.A)^t)&0x80 != 0)
		if t > 0x99 {
			t += 0x60
		}
		c.P.set(FlagC, t > 0x99)
	} else {
		c.P.set(FlagN, t&0x80 != 0)
		c.P.set(FlagV, (uint16(c.A)^uint16(m))&0x80 == 0 && (uint16(c.A)^t)&0x80 != 0)
		c.P.set(FlagC, t > 0xFF)
	}
	c.A = uint8(t)
}

// sbc implements SBC, including BCD adjustment, per the documented NMOS
// behavior.
func (c *CPU) sbc(m uint8) {
	borrow := int32(1)
	if c.P.C() {
		borrow = 0
	}
	t := int32(c.A) - int32(m) - borrow
	trunc := uint8(t)
	c.P.set(FlagN, trunc&0x80 != 0)
	c.P.set(FlagZ, trunc == 0)
	c.P.set(FlagV, (uint8(c.A)^trunc)&0x80 != 0 && (c.A^m)&0x80 != 0)

	if c.P.D() {
		if int32(c.A&0x0F)-borrow < int32(m&0x0F) {
			t -= 6
		}
		// A negative t is what the reference's unsigned arithmetic sees as
		// a value above 0x99, so it takes the high-digit correction too.
		if t > 0x99 || t < 0 {
			t -= 0x60
		}
	}
	// t is computed in signed arithmetic rather than the reference's
	// unsigned wraparound, so "no borrow occurred" is t >= 0 rather than
	// the reference's equivalent tmp < 0x100.
	c.P.set(FlagC, t >= 0)
	c.A = uint8(t)
}
