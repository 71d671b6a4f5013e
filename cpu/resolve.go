package cpu

// resolve consumes the operand bytes for mode (advancing PC) and returns the
// effective address. IMP and ACC modes return an unused, don't-care value;
// their operations must not issue a bus read for it. IMM and REL return an
// address rather than a value, so the caller reads through it uniformly.
func (c *CPU) resolve(mode Mode) uint16 {
	switch mode {
	case IMP, ACC:
		return 0

	case IMM:
		addr := c.PC
		c.PC++
		return addr

	case ZER:
		return uint16(c.fetch8())

	case ZEX:
		return uint16(c.fetch8() + c.X)

	case ZEY:
		return uint16(c.fetch8() + c.Y)

	case ABS:
		lo := c.fetch8()
		hi := c.fetch8()
		return uint16(hi)<<8 | uint16(lo)

	case ABX:
		lo := c.fetch8()
		hi := c.fetch8()
		return (uint16(hi)<<8 | uint16(lo)) + uint16(c.X)

	case ABY:
		lo := c.fetch8()
		hi := c.fetch8()
		return (uint16(hi)<<8 | uint16(lo)) + uint16(c.Y)

	case ABI:
		lo := c.fetch8()
		hi := c.fetch8()
		ptr := uint16(hi)<<8 | uint16(lo)
		// Documented NMOS bug: the high byte is fetched from the same
		// page as the pointer, wrapping within it rather than crossing
		// into the next page.
		hiAddr := (ptr & 0xFF00) | ((ptr + 1) & 0x00FF)
		return uint16(c.Read8(hiAddr))<<8 | uint16(c.Read8(ptr))

	case INX:
		zp := c.fetch8() + c.X
		lo := c.Read8(uint16(zp))
		hi := c.Read8(uint16(zp + 1))
		return uint16(hi)<<8 | uint16(lo)

	case INY:
		zp := c.fetch8()
		lo := c.Read8(uint16(zp))
		hi := c.Read8(uint16(zp + 1))
		base := uint16(hi)<<8 | uint16(lo)
		return base + uint16(c.Y)

	case REL:
		off := int8(c.fetch8())
		return uint16(int32(c.PC) + int32(off))

	default:
		return 0
	}
}
