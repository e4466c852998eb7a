package console

import (
	"testing"

	"nescore/internal/cartridge"
)

func TestNewDefaultRunsAndStaysAtInfiniteLoop(t *testing.T) {
	c := NewDefault(nil)
	if !c.IsRunning() {
		t.Fatal("NewDefault console should start running")
	}

	for i := 0; i < 8; i++ {
		c.Clock()
	}
	if !c.IsRunning() {
		t.Fatal("an infinite JMP $8000 should never halt the CPU")
	}
}

func TestClockAdvancesPPUThreeTimesPerCPUCycle(t *testing.T) {
	c := NewDefault(nil)
	before := c.ppu.Scanline()*341 + c.ppu.Dot()
	cycles := c.Clock()
	after := c.ppu.Scanline()*341 + c.ppu.Dot()

	total := 341 * 262
	advanced := (after - before + total) % total
	if uint64(advanced) != cycles*3 {
		t.Fatalf("PPU advanced %d dots for %d CPU cycles, want %d", advanced, cycles, cycles*3)
	}
}

func TestSwapROMResetsCPU(t *testing.T) {
	c := NewDefault(nil)
	c.Clock()

	data := make([]byte, 16+16*1024)
	data[0], data[1], data[2], data[3] = 0x4E, 0x45, 0x53, 0x1A
	data[4] = 1
	data[5] = 0
	prg := data[16:]
	prg[0x3FFC] = 0x00 // reset vector -> 0xC000 (mirrored from 0x8000 in a 16KiB image)
	prg[0x3FFD] = 0xC0

	if err := c.SwapROM(data); err != nil {
		t.Fatalf("SwapROM returned error: %v", err)
	}
	if !c.IsRunning() {
		t.Fatal("SwapROM should leave the CPU running after reset")
	}
	if c.cpu.PC != 0xC000 {
		t.Fatalf("PC after SwapROM = %#04x, want 0xC000 (new reset vector)", c.cpu.PC)
	}
}

func TestIsRunningFalseAfterHLT(t *testing.T) {
	data := make([]byte, 16+32*1024)
	data[0], data[1], data[2], data[3] = 0x4E, 0x45, 0x53, 0x1A
	data[4] = 2
	data[5] = 0
	prg := data[16:]
	prg[0x7FFC] = 0x00
	prg[0x7FFD] = 0x80
	prg[0x0000] = 0x02 // KIL

	cart, err := cartridge.Load(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	c := New(cart, nil)
	c.Clock()
	if c.IsRunning() {
		t.Fatal("KIL/JAM opcode should stop the CPU")
	}
}
