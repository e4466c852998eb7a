// Package console implements the top-level NES facade: it owns the CPU,
// PPU, and cartridge, and drives them together one clock at a time.
package console

import (
	"errors"

	"nescore/internal/bus"
	"nescore/internal/cartridge"
	"nescore/internal/cpu"
	"nescore/internal/hostio"
	"nescore/internal/ppu"
)

// Console ties the CPU, PPU, and cartridge together and drives the
// combined clock, including NMI delivery on VBlank.
type Console struct {
	cpu  *cpu.CPU
	ppu  *ppu.PPU
	cart *cartridge.Cartridge
	sink hostio.Sink
}

// New builds a Console over an already-loaded cartridge and resets it to
// its power-on state.
func New(cart *cartridge.Cartridge, sink hostio.Sink) *Console {
	if sink == nil {
		sink = hostio.NoopSink{}
	}
	p := ppu.New(cart, sink)
	b := bus.New(cart, p, sink)
	c := &Console{
		cpu:  cpu.New(b, sink),
		ppu:  p,
		cart: cart,
		sink: sink,
	}
	c.cpu.Reset()
	return c
}

// NewDefault builds a Console over a minimal, programmatically
// constructed cartridge: a 32 KiB NROM PRG image whose reset vector
// points at 0x8000, which holds a single instruction — an infinite
// `JMP $8000` — plus 8 KiB of zeroed CHR-RAM. This stands in for the
// source's baked-in test ROM (`include_bytes!`), which this repo cannot
// ship as a binary fixture; see DESIGN.md.
func NewDefault(sink hostio.Sink) *Console {
	data := make([]byte, 16+32*1024)
	data[0], data[1], data[2], data[3] = 0x4E, 0x45, 0x53, 0x1A
	data[4] = 2 // 32 KiB PRG
	data[5] = 0 // CHR-RAM

	prgStart := 16
	prg := data[prgStart:]
	prg[0x7FFC] = 0x00 // reset vector low -> 0x8000
	prg[0x7FFD] = 0x80 // reset vector high
	prg[0x0000] = 0x4C // JMP $8000
	prg[0x0001] = 0x00
	prg[0x0002] = 0x80

	cart, err := cartridge.Load(data, sink)
	if err != nil {
		// The image above is built by hand and always well-formed; a
		// failure here means this function itself regressed.
		panic("console: NewDefault built an invalid cartridge: " + err.Error())
	}
	return New(cart, sink)
}

// Clock runs one CPU instruction, advances the PPU three PPU-dots per
// CPU cycle consumed, and drives the CPU's NMI sequence the instant
// VBlank rises while Ctrl.NMIOnVBlank is set — an addition over the
// source (§9: "implementations targeting real games must add it").
// Returns the number of CPU cycles the instruction consumed.
func (c *Console) Clock() uint64 {
	cycles := c.cpu.Clock()

	for i := uint64(0); i < cycles*3; i++ {
		if c.ppu.Step() && c.ppu.Ctrl.NMIOnVBlank {
			c.cpu.NMI()
		}
	}

	return cycles
}

// CPUClock runs exactly one CPU instruction without advancing the PPU,
// mirroring the source's `cpu_clock` single-stepping entry point.
func (c *Console) CPUClock() uint64 {
	return c.cpu.Clock()
}

// PPUClock advances the PPU by exactly one dot, mirroring the source's
// `ppu_clock` single-stepping entry point.
func (c *Console) PPUClock() {
	c.ppu.Step()
}

// IsRunning reports whether the CPU is still dispatching instructions
// (false after a KIL/JAM opcode).
func (c *Console) IsRunning() bool {
	return c.cpu.Running
}

// SwapROM replaces the active cartridge image and resets the CPU, as
// the source's `swap_rom` does.
func (c *Console) SwapROM(data []byte) error {
	if c.cart == nil {
		return errors.New("console: no cartridge loaded")
	}
	if err := c.cart.SwapROM(data); err != nil {
		return err
	}
	c.cpu.Reset()
	return nil
}

// ScreenBuffer returns the live 256x240 RGBA framebuffer.
func (c *Console) ScreenBuffer() []uint8 {
	return c.ppu.ScreenBuffer()
}
