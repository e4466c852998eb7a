package ppu

import (
	"nescore/internal/cartridge"
	"nescore/internal/hostio"
)

const (
	screenWidth  = 256
	screenHeight = 240
)

// PPU is the picture-processing unit: register file, VRAM address
// latch, and the dot/scanline timing engine that drives the
// placeholder framebuffer renderer described in §4.7.
type PPU struct {
	Ctrl   Ctrl
	Mask   Mask
	Status Status

	bus *Bus

	writeLatch   bool
	transferAddr uint16
	vramAddr     uint16
	tempVRAMAddr uint16

	dot      int
	scanline int

	screen [screenWidth * screenHeight * 4]uint8

	sink hostio.Sink
}

// New constructs a PPU wired to the given cartridge via a fresh PPU bus.
func New(cart *cartridge.Cartridge, sink hostio.Sink) *PPU {
	if sink == nil {
		sink = hostio.NoopSink{}
	}
	return &PPU{
		bus:  NewBus(cart, sink),
		sink: sink,
	}
}

// Dot and Scanline expose the current timing position; both invariants
// dot ∈ [0,341), scanline ∈ [0,262) hold after every Step call.
func (p *PPU) Dot() int      { return p.dot }
func (p *PPU) Scanline() int { return p.scanline }

// ScreenBuffer returns the live 256x240 RGBA framebuffer.
func (p *PPU) ScreenBuffer() []uint8 { return p.screen[:] }

// WriteCtrl services a CPU-side write to 0x2000.
func (p *PPU) WriteCtrl(value uint8) { p.Ctrl = CtrlFromByte(value) }

// ReadCtrl services a CPU-side read of 0x2000.
func (p *PPU) ReadCtrl() uint8 { return p.Ctrl.ToByte() }

// WriteMask services a CPU-side write to 0x2001.
func (p *PPU) WriteMask(value uint8) { p.Mask = MaskFromByte(value) }

// ReadMask services a CPU-side read of 0x2001.
func (p *PPU) ReadMask() uint8 { return p.Mask.ToByte() }

// ReadStatus services a CPU-side read of 0x2002. This forces VBlank high
// and then reads-and-clears it in the same call — a quirk present in the
// source this was ported from and reproduced verbatim per §4.4.
func (p *PPU) ReadStatus() uint8 {
	p.Status.VBlank = true
	return p.Status.ReadAndClearVBlank()
}

// WriteAddr services a CPU-side write to 0x2006: the write-latch toggles
// on every access; the first write stages the high byte (masked to 14
// bits), the second ORs in the low byte and commits the live address.
func (p *PPU) WriteAddr(value uint8) {
	if !p.writeLatch {
		p.tempVRAMAddr = (uint16(value) & 0x3F) << 8
	} else {
		p.vramAddr = p.tempVRAMAddr | uint16(value)
		p.transferAddr = p.vramAddr
	}
	p.writeLatch = !p.writeLatch
}

// WriteData services a CPU-side write to 0x2007: writes to the current
// VRAM address, then post-increments by 1 or 32 per Ctrl, masked to 14
// bits.
func (p *PPU) WriteData(value uint8) {
	p.bus.Address = p.vramAddr
	p.bus.Data = value
	p.bus.Write()
	p.vramAddr = (p.vramAddr + p.Ctrl.VRAMStep()) & 0x3FFF
}

// ReadData services a CPU-side read of 0x2007. No internal one-byte
// read-buffer is modelled — this omission matches the source and is the
// specified behaviour per §4.7/§9.
func (p *PPU) ReadData() uint8 {
	p.bus.Address = p.vramAddr
	p.bus.Read()
	return p.bus.Data
}

func (p *PPU) busRead(addr uint16) uint8 {
	p.bus.Address = addr
	p.bus.Read()
	return p.bus.Data
}

// Step advances the timing engine by one dot, per §4.7. It returns true
// on the exact dot that VBlank rises (dot=1, scanline=241), which the
// facade uses to drive NMI delivery — an addition over the source,
// which never wired VBlank to an NMI handler (see §9).
func (p *PPU) Step() bool {
	vblankRose := false

	if p.dot == 1 && p.scanline == 241 {
		p.Status.VBlank = true
		vblankRose = true
	} else if p.dot == 1 && p.scanline == 261 {
		p.Status.VBlank = false
	}

	tileIndex := uint16(p.busRead(0x2000 + uint16(p.dot) + uint16(p.scanline)*32))

	for y := 0; y < 8; y++ {
		low := p.busRead(tileIndex*16 + uint16(y))
		high := p.busRead(tileIndex*16 + 8 + uint16(y))

		for x := 0; x < 8; x++ {
			twoBit := ((low >> (7 - uint(x))) & 1) | (((high >> (7 - uint(x))) & 1) << 1)

			buffX := x + p.dot*8
			buffY := y + p.scanline*8
			if buffX >= screenWidth || buffY >= screenHeight {
				continue
			}
			buffAddr := (buffY*screenWidth + buffX) * 4
			shade := twoBit * 85
			p.screen[buffAddr] = shade
			p.screen[buffAddr+1] = shade
			p.screen[buffAddr+2] = shade
			p.screen[buffAddr+3] = 255
		}
	}

	p.dot++
	if p.dot >= 341 {
		p.dot = 0
		p.scanline++
		if p.scanline >= 262 {
			p.scanline = 0
		}
	}

	p.sink.ForceScreenDraw()
	return vblankRose
}
