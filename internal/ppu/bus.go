package ppu

import (
	"nescore/internal/cartridge"
	"nescore/internal/hostio"
)

// Bus is the PPU-side address bus: it arbitrates CHR, name-table VRAM,
// and palette RAM, consulting the shared cartridge for CHR access and
// mirroring mode.
type Bus struct {
	Address uint16
	Data    uint8

	cart    *cartridge.Cartridge
	vram    *VRAM
	palette Palette
}

// NewBus builds a PPU bus over the given cartridge.
func NewBus(cart *cartridge.Cartridge, sink hostio.Sink) *Bus {
	if sink == nil {
		sink = hostio.NoopSink{}
	}
	return &Bus{
		cart: cart,
		vram: newVRAM(sink),
	}
}

// Read services b.Address into b.Data per §4.5.
func (b *Bus) Read() {
	switch {
	case b.Address < 0x2000:
		b.Data = b.cart.ReadPPU(b.Address)
	case b.Address < 0x3F00:
		b.Data = b.vram.Read(nametableAddress(b.Address, b.cart.MirrorMode()))
	default:
		b.Data = b.palette.Read(b.Address)
	}
}

// Write services b.Address/b.Data per §4.5.
func (b *Bus) Write() {
	switch {
	case b.Address < 0x2000:
		b.cart.WritePPU(b.Address, b.Data)
	case b.Address < 0x3F00:
		b.vram.Write(nametableAddress(b.Address, b.cart.MirrorMode()), b.Data)
	default:
		b.palette.Write(b.Address, b.Data)
	}
}

// nametableAddress folds a 0x2000-0x3EFF PPU address down to a 0-0x7FF
// VRAM offset per the cartridge's mirroring mode.
func nametableAddress(addr uint16, mirror cartridge.MirrorMode) uint16 {
	a := addr & 0x0FFF
	if mirror == cartridge.MirrorVertical {
		return a % 0x800
	}
	return (a & 0x3FF) | ((a & 0x800) >> 1)
}
