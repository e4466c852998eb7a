package ppu

import (
	"testing"

	"nescore/internal/cartridge"
)

func buildINES(prgBanks, chrBanks uint8, flags6 uint8) []byte {
	data := make([]byte, 16+int(prgBanks)*16384+int(chrBanks)*8192)
	data[0], data[1], data[2], data[3] = 0x4E, 0x45, 0x53, 0x1A
	data[4] = prgBanks
	data[5] = chrBanks
	data[6] = flags6
	return data
}

func newTestPPU(t *testing.T) *PPU {
	t.Helper()
	cart, err := cartridge.Load(buildINES(2, 0, 0), nil)
	if err != nil {
		t.Fatal(err)
	}
	return New(cart, nil)
}

func TestVRAMAddrLatchTwoWrite(t *testing.T) {
	p := newTestPPU(t)
	p.WriteAddr(0x21) // high byte
	p.WriteAddr(0x00) // low byte -> committed address 0x2100
	if p.vramAddr != 0x2100 {
		t.Fatalf("vramAddr = %#x, want 0x2100", p.vramAddr)
	}
}

func TestDataWriteIncrementsByOne(t *testing.T) {
	p := newTestPPU(t)
	p.WriteAddr(0x21)
	p.WriteAddr(0x00)
	p.WriteData(0x11)
	p.WriteData(0x22)
	if p.vramAddr != 0x2102 {
		t.Fatalf("vramAddr after two writes = %#x, want 0x2102", p.vramAddr)
	}
}

func TestDataWriteIncrementsByThirtyTwo(t *testing.T) {
	p := newTestPPU(t)
	p.Ctrl.VRAMIncrement = true
	p.WriteAddr(0x21)
	p.WriteAddr(0x00)
	p.WriteData(0x11)
	p.WriteData(0x22)
	if p.vramAddr != 0x2140 {
		t.Fatalf("vramAddr after two writes = %#x, want 0x2140", p.vramAddr)
	}
}

func TestStatusReadForcesAndClearsVBlank(t *testing.T) {
	p := newTestPPU(t)
	b := p.ReadStatus()
	if b != 0x80 {
		t.Fatalf("ReadStatus() = %#x, want 0x80", b)
	}
	if p.Status.VBlank {
		t.Fatal("VBlank should be cleared after ReadStatus")
	}
}

func TestStepSetsVBlankAtDot1Scanline241(t *testing.T) {
	p := newTestPPU(t)
	for i := 0; i < 341*241+2; i++ {
		p.Step()
	}
	if !p.Status.VBlank {
		t.Fatalf("expected VBlank set at dot=1,scanline=241 (dot=%d scanline=%d)", p.dot, p.scanline)
	}
}

func TestStepDotScanlineStayInRange(t *testing.T) {
	p := newTestPPU(t)
	for i := 0; i < 341*262*2; i++ {
		p.Step()
		if p.dot < 0 || p.dot >= 341 {
			t.Fatalf("dot out of range: %d", p.dot)
		}
		if p.scanline < 0 || p.scanline >= 262 {
			t.Fatalf("scanline out of range: %d", p.scanline)
		}
	}
}
