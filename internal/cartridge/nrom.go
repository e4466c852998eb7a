package cartridge

// NROM is mapper 0, the simplest mapper: no bank switching. CPU
// addresses in 0x8000-0xFFFF (already offset to a zero base by the
// caller, see §4.4) map directly into PRG-ROM, with 16 KiB images
// mirrored to fill the 32 KiB window. PPU addresses in 0x0000-0x1FFF map
// directly into CHR-ROM or CHR-RAM.
type NROM struct {
	prg         []uint8
	chr         []uint8
	chrWritable bool
}

// NewNROM constructs an NROM mapper over the given PRG/CHR blobs.
// chrWritable should be true only when chr is CHR-RAM (the header
// declared zero CHR pages); real CHR-ROM is read-only.
func NewNROM(prg, chr []uint8, chrWritable bool) *NROM {
	return &NROM{prg: prg, chr: chr, chrWritable: chrWritable}
}

func (m *NROM) ReadPRG(address uint16) (uint8, bool) {
	if len(m.prg) == 0 {
		return 0, false
	}
	offset := int(address) % len(m.prg)
	return m.prg[offset], true
}

// WritePRG is a no-op: NROM has no PRG-RAM and writes to ROM are
// silently ignored per §4.2.
func (m *NROM) WritePRG(uint16, uint8) {}

func (m *NROM) ReadPPU(address uint16) (uint8, bool) {
	if address >= uint16(len(m.chr)) {
		return 0, false
	}
	return m.chr[address], true
}

// WritePPU only has an effect when the cartridge allocated CHR-RAM;
// writes against real CHR-ROM are silently ignored per §4.2.
func (m *NROM) WritePPU(address uint16, value uint8) {
	if m.chrWritable && address < uint16(len(m.chr)) {
		m.chr[address] = value
	}
}

func (m *NROM) SwapPRG(prg []uint8) { m.prg = prg }

// SwapCHR replaces the CHR blob and its writability (true when the
// incoming image is CHR-RAM rather than CHR-ROM).
func (m *NROM) SwapCHR(chr []uint8, writable bool) {
	m.chr = chr
	m.chrWritable = writable
}
