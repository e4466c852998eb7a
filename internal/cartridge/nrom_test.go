package cartridge

import "testing"

func TestNROMReadPRG32KiB(t *testing.T) {
	prg := make([]uint8, 0x8000)
	prg[0] = 0xAA
	prg[0x7FFF] = 0xBB
	m := NewNROM(prg, nil, false)

	if v, ok := m.ReadPRG(0); !ok || v != 0xAA {
		t.Fatalf("ReadPRG(0) = %#x, %v", v, ok)
	}
	if v, ok := m.ReadPRG(0x7FFF); !ok || v != 0xBB {
		t.Fatalf("ReadPRG(0x7FFF) = %#x, %v", v, ok)
	}
}

func TestNROMReadPRG16KiBMirrors(t *testing.T) {
	prg := make([]uint8, 0x4000)
	prg[0] = 0x42
	m := NewNROM(prg, nil, false)

	// CPU 0x8000 and 0xC000 both offset to 0 by the bus before calling
	// ReadPRG, and a 16 KiB image must mirror across both halves.
	if v, _ := m.ReadPRG(0); v != 0x42 {
		t.Fatalf("ReadPRG(0) = %#x, want 0x42", v)
	}
	if v, _ := m.ReadPRG(0x4000); v != 0x42 {
		t.Fatalf("ReadPRG(0x4000) = %#x, want 0x42 (mirror)", v)
	}
}

func TestNROMWritePRGIgnored(t *testing.T) {
	prg := make([]uint8, 0x8000)
	m := NewNROM(prg, nil, false)
	m.WritePRG(0x8000, 0xFF)
	if prg[0] != 0 {
		t.Fatalf("write to PRG-ROM should be ignored, got %#x", prg[0])
	}
}

func TestNROMCHRRAMWritable(t *testing.T) {
	chr := make([]uint8, 0x2000)
	m := NewNROM(nil, chr, true)
	m.WritePPU(0x0010, 0x77)
	if v, ok := m.ReadPPU(0x0010); !ok || v != 0x77 {
		t.Fatalf("ReadPPU(0x0010) = %#x, %v", v, ok)
	}
}

func TestNROMCHRROMWritesIgnored(t *testing.T) {
	chr := make([]uint8, 0x2000)
	m := NewNROM(nil, chr, false)
	m.WritePPU(0x0010, 0x77)
	if v, _ := m.ReadPPU(0x0010); v != 0 {
		t.Fatalf("write to CHR-ROM should be ignored, got %#x", v)
	}
}

func TestNROMOutOfRangeCHR(t *testing.T) {
	m := NewNROM(nil, make([]uint8, 0), false)
	if _, ok := m.ReadPPU(0); ok {
		t.Fatalf("expected ok=false for empty CHR")
	}
}
