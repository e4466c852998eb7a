package memory

import "testing"

func TestWorkRAMReadWrite(t *testing.T) {
	ram := NewWorkRAM(nil)
	ram.Write(0x0010, 0xAB)
	if v := ram.Read(0x0010); v != 0xAB {
		t.Fatalf("Read(0x0010) = %#x, want 0xAB", v)
	}
}

func TestWorkRAMMirroring(t *testing.T) {
	ram := NewWorkRAM(nil)
	ram.Write(0x0000, 0xAB)
	for _, addr := range []uint16{0x0800, 0x1000, 0x1800} {
		if v := ram.Read(addr); v != 0xAB {
			t.Fatalf("Read(%#x) = %#x, want mirrored 0xAB", addr, v)
		}
	}
}

func TestWorkRAMZeroed(t *testing.T) {
	ram := NewWorkRAM(nil)
	if v := ram.Read(0x0123); v != 0 {
		t.Fatalf("fresh WorkRAM should read zero, got %#x", v)
	}
}
