package cpu

// IRQ requests a maskable interrupt. It is a no-op while the I flag is set,
// otherwise it pushes the return address and status (B clear), sets I, and
// loads PC from IRQVector.
func (c *CPU) IRQ() {
	if c.P.I() {
		return
	}
	c.push16(c.PC)
	c.push(uint8(c.P &^ FlagB))
	c.P.set(FlagI, true)
	c.PC = c.Read16(IRQVector)
}

// NMI requests a non-maskable interrupt. Unlike IRQ it cannot be masked by
// the I flag; otherwise it follows the same push/vector sequence.
func (c *CPU) NMI() {
	c.push16(c.PC)
	c.push(uint8(c.P &^ FlagB))
	c.P.set(FlagI, true)
	c.PC = c.Read16(NMIVector)
}
