// Package bus implements the CPU-side system bus: the address decode
// that arbitrates work RAM, PPU registers, and cartridge PRG access.
package bus

import (
	"nescore/internal/cartridge"
	"nescore/internal/hostio"
	"nescore/internal/memory"
	"nescore/internal/ppu"
)

// Bus is the CPU's MemoryInterface implementation, wired over work RAM,
// the PPU's register file, and the cartridge.
type Bus struct {
	ram  *memory.WorkRAM
	ppu  *ppu.PPU
	cart *cartridge.Cartridge
}

// New builds a CPU bus over the given cartridge and PPU, sharing the
// same cartridge instance the PPU bus was constructed with.
func New(cart *cartridge.Cartridge, p *ppu.PPU, sink hostio.Sink) *Bus {
	if sink == nil {
		sink = hostio.NoopSink{}
	}
	return &Bus{
		ram:  memory.NewWorkRAM(sink),
		ppu:  p,
		cart: cart,
	}
}

// Read decodes addr per §4.4: work RAM mirrors across 0x0000-0x1FFF,
// 0x2000/0x2001/0x2002/0x2007 service the PPU's register reads, and
// 0x8000-0xFFFF reaches the cartridge with the read side offset by
// -0x8000 — an asymmetry with Write that is preserved verbatim, see §9.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram.Read(addr)
	case addr == 0x2000:
		return b.ppu.ReadCtrl()
	case addr == 0x2001:
		return b.ppu.ReadMask()
	case addr == 0x2002:
		return b.ppu.ReadStatus()
	case addr == 0x2007:
		return b.ppu.ReadData()
	case addr >= 0x8000:
		return b.cart.ReadPRG(addr - 0x8000)
	default:
		return 0
	}
}

// Write decodes addr per §4.4. 0x2002 writes are ignored (status is
// read-only); 0x8000-0xFFFF reaches the cartridge with the raw,
// un-offset address, unlike Read.
func (b *Bus) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		b.ram.Write(addr, value)
	case addr == 0x2000:
		b.ppu.WriteCtrl(value)
	case addr == 0x2001:
		b.ppu.WriteMask(value)
	case addr == 0x2002:
		// status is read-only; writes have no effect.
	case addr == 0x2006:
		b.ppu.WriteAddr(value)
	case addr == 0x2007:
		b.ppu.WriteData(value)
	case addr >= 0x8000:
		b.cart.WritePRG(addr, value)
	}
}
