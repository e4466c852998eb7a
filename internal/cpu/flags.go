package cpu

// Flags is the 6502 status register, unpacked into named bits. Bit 5
// (unused) has no field here — it is always forced to 1 when the flags
// are serialised, per §4.6.
type Flags struct {
	Carry            bool
	Zero             bool
	InterruptDisable bool
	Decimal          bool
	Break            bool
	Overflow         bool
	Negative         bool
}

// ToByte packs the flags into the status byte. Bit 5 is always set.
func (f Flags) ToByte() uint8 {
	var b uint8 = 0x20
	if f.Carry {
		b |= 0x01
	}
	if f.Zero {
		b |= 0x02
	}
	if f.InterruptDisable {
		b |= 0x04
	}
	if f.Decimal {
		b |= 0x08
	}
	if f.Break {
		b |= 0x10
	}
	if f.Overflow {
		b |= 0x40
	}
	if f.Negative {
		b |= 0x80
	}
	return b
}

// FlagsFromByte unpacks a status byte. Break is always cleared on
// restore (PLP/RTI clear it, per §4.6).
func FlagsFromByte(b uint8) Flags {
	return Flags{
		Carry:            b&0x01 != 0,
		Zero:             b&0x02 != 0,
		InterruptDisable: b&0x04 != 0,
		Decimal:          b&0x08 != 0,
		Break:            false,
		Overflow:         b&0x40 != 0,
		Negative:         b&0x80 != 0,
	}
}

// letters renders the flag-letter trace string: uppercase for set,
// lowercase for clear, six letters in NVDIZC order (the break and unused
// bits are not shown).
func (f Flags) letters() string {
	bit := func(set bool, up, low byte) byte {
		if set {
			return up
		}
		return low
	}
	out := make([]byte, 6)
	out[0] = bit(f.Negative, 'N', 'n')
	out[1] = bit(f.Overflow, 'V', 'v')
	out[2] = bit(f.Decimal, 'D', 'd')
	out[3] = bit(f.InterruptDisable, 'I', 'i')
	out[4] = bit(f.Zero, 'Z', 'z')
	out[5] = bit(f.Carry, 'C', 'c')
	return string(out)
}
