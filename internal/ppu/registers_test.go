package ppu

import "testing"

func TestCtrlRoundTrip(t *testing.T) {
	c := Ctrl{BaseNametable: 0x2, VRAMIncrement: true, SpriteTable: true, NMIOnVBlank: true}
	got := CtrlFromByte(c.ToByte())
	if got != c {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, c)
	}
}

func TestCtrlVRAMStep(t *testing.T) {
	if (Ctrl{}).VRAMStep() != 1 {
		t.Fatal("default VRAM step should be 1")
	}
	if (Ctrl{VRAMIncrement: true}).VRAMStep() != 32 {
		t.Fatal("VRAM step should be 32 when increment bit set")
	}
}

func TestMaskRoundTrip(t *testing.T) {
	m := Mask{MaskBG: true, RenderSprites: true}
	if got := MaskFromByte(m.ToByte()); got != m {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, m)
	}
}

func TestStatusReadAndClearVBlank(t *testing.T) {
	s := Status{VBlank: true, Sprite0Hit: true}
	b := s.ReadAndClearVBlank()
	if b != 0xC0 {
		t.Fatalf("ReadAndClearVBlank byte = %#x, want 0xC0", b)
	}
	if s.VBlank {
		t.Fatal("VBlank should be cleared after read")
	}
	if !s.Sprite0Hit {
		t.Fatal("Sprite0Hit should be untouched")
	}
}

func TestPaletteAliases(t *testing.T) {
	var p Palette
	cases := []struct{ write, read uint16 }{
		{0x3F10, 0x3F00},
		{0x3F14, 0x3F04},
		{0x3F18, 0x3F08},
		{0x3F1C, 0x3F0C},
	}
	for _, c := range cases {
		p.Write(c.write, 0x2A)
		if v := p.Read(c.read); v != 0x2A {
			t.Fatalf("write %#x should alias to %#x, got %#x", c.write, c.read, v)
		}
	}
}

func TestPaletteWriteMasksTo6Bits(t *testing.T) {
	var p Palette
	p.Write(0x3F00, 0xFF)
	if v := p.Read(0x3F00); v != 0x3F {
		t.Fatalf("palette write should mask to 6 bits, got %#x", v)
	}
}
