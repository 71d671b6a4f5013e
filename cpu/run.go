package cpu

// Step fetches, decodes, and executes exactly one instruction, returning the
// number of cycles it costs per the dispatch table. It is the primitive Run
// is built on; hosts that need to observe architectural state between every
// instruction (the RTS/SP==0xFF completion convention in cmd/run6502, for
// instance) call Step directly instead of Run.
func (c *CPU) Step() uint8 {
	if c.Halted {
		return 0
	}

	pc := c.PC
	opcode := c.fetch8()
	mode, op, cycles, legal := Info(opcode)
	if !legal {
		c.Halted = true
		if c.Trace != nil {
			c.Trace(pc, opcode)
		}
		return 0
	}

	if c.Trace != nil {
		c.Trace(pc, opcode)
	}

	addr := c.resolve(mode)
	c.execute(op, mode, addr)
	return cycles
}

// Run steps the CPU until either the budget is exhausted or the CPU halts on
// an illegal opcode. In ByCycles mode budget is debited by each
// instruction's base cycle count; in ByInstructions mode it is debited by
// one per instruction regardless of cost. Run returns the number of cycles
// actually elapsed.
func (c *CPU) Run(budget int64, mode CycleMode) int64 {
	var elapsed int64
	for budget > 0 && !c.Halted {
		cycles := c.Step()
		elapsed += int64(cycles)
		if mode == ByInstructions {
			budget--
		} else {
			budget -= int64(cycles)
		}
	}
	return elapsed
}
