// Package memio implements the host-owned memory and peripheral fabric a
// cpu.CPU is wired to: a flat 64K address space assembled from RAM,
// mirrored RAM, and callback-backed device regions. Regions are held in a
// small sorted slice searched linearly, which is more than fast enough for
// a handful of RAM/device mappings.
package memio

import (
	"fmt"
	"sort"

	"github.com/glouw/run6502/log"
)

// Device is a memory-mapped peripheral: a register bank or callback-backed
// I/O range. ReadCb may be nil for write-only devices and vice versa.
type Device struct {
	Name string

	ReadCb  func(addr uint16) uint8
	WriteCb func(addr uint16, val uint8)
}

func (d *Device) read(addr uint16) uint8 {
	if d.ReadCb == nil {
		log.ModBus.Warnf("read from write-only device %s at $%04X", d.Name, addr)
		return 0
	}
	return d.ReadCb(addr)
}

func (d *Device) write(addr uint16, val uint8) {
	if d.WriteCb == nil {
		log.ModBus.Warnf("write to read-only device %s at $%04X", d.Name, addr)
		return
	}
	d.WriteCb(addr, val)
}

type region struct {
	start, end uint16
	mem        []byte // nil for a Device-backed region
	readOnly   bool
	dev        *Device
}

func (r *region) contains(addr uint16) bool { return addr >= r.start && addr <= r.end }

// Bus is a flat 64K address space assembled from non-overlapping regions.
// It implements cpu.Bus. Unmapped addresses read as zero and discard
// writes, mirroring open-bus behavior rather than panicking, since a
// misconfigured memory map should be a debugging nuisance, not a crash.
type Bus struct {
	regions []*region
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) insert(r *region) {
	for _, other := range b.regions {
		if r.start <= other.end && other.start <= r.end {
			panic(fmt.Sprintf("memio: region [$%04X,$%04X] overlaps existing [$%04X,$%04X]",
				r.start, r.end, other.start, other.end))
		}
	}
	b.regions = append(b.regions, r)
	sort.Slice(b.regions, func(i, j int) bool { return b.regions[i].start < b.regions[j].start })
}

// MapRAM installs a plain byte-addressable region over [start, end]. If ro
// is true, writes are logged and discarded rather than applied.
func (b *Bus) MapRAM(start, end uint16, ro bool) {
	log.ModBus.Debugf("mapping ram [$%04X,$%04X] ro=%v", start, end, ro)
	b.insert(&region{start: start, end: end, mem: make([]byte, int(end-start)+1), readOnly: ro})
}

// MapMirror installs a region that aliases an already-mapped RAM region,
// wrapping addresses modulo the size of that region. A common example is the
// 6502 zero-page/stack mirroring seen on constrained hosts.
func (b *Bus) MapMirror(start, end uint16, of uint16) {
	src := b.find(of)
	if src == nil || src.mem == nil {
		panic(fmt.Sprintf("memio: MapMirror target $%04X is not a mapped RAM region", of))
	}
	log.ModBus.Debugf("mapping mirror [$%04X,$%04X] of $%04X", start, end, of)
	b.insert(&region{start: start, end: end, mem: src.mem, readOnly: src.readOnly})
}

// MapDevice installs a callback-backed region over [start, end].
func (b *Bus) MapDevice(start, end uint16, dev *Device) {
	log.ModBus.Debugf("mapping device %q [$%04X,$%04X]", dev.Name, start, end)
	b.insert(&region{start: start, end: end, dev: dev})
}

func (b *Bus) find(addr uint16) *region {
	for _, r := range b.regions {
		if r.contains(addr) {
			return r
		}
	}
	return nil
}

func (b *Bus) Read(addr uint16) uint8 {
	r := b.find(addr)
	if r == nil {
		return 0
	}
	if r.dev != nil {
		return r.dev.read(addr)
	}
	return r.mem[int(addr-r.start)%len(r.mem)]
}

func (b *Bus) Write(addr uint16, val uint8) {
	r := b.find(addr)
	if r == nil {
		return
	}
	if r.dev != nil {
		r.dev.write(addr, val)
		return
	}
	if r.readOnly {
		log.ModBus.Warnf("write to read-only region at $%04X", addr)
		return
	}
	r.mem[int(addr-r.start)%len(r.mem)] = val
}

// Writer is the write-only view of a Bus. loader.Image writes through
// loader.Writer, which has the same method set, so loader does not import
// memio.
type Writer interface {
	Write(addr uint16, val uint8)
}
