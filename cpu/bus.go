package cpu

// Bus is the memory and peripheral fabric the CPU is wired to. It is owned
// and implemented entirely by the host: the CPU caches nothing and issues
// every fetch, operand load, and stack access through it. Both methods must
// be total over the full 16-bit address space.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

// Read16 reads a little-endian 16-bit value at addr and addr+1.
func Read16(b Bus, addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}
