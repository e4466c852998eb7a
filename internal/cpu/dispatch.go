package cpu

// dispatch is the official 6502 opcode table, grounded one-for-one on
// the instruction set's reference decode table: each entry pairs an
// instruction with the addressing mode that feeds it.
var dispatch = map[uint8]func(*CPU){
	// ADC
	0x69: func(c *CPU) { c.adc(c.immediate()) },
	0x65: func(c *CPU) { c.adc(c.zeropage()) },
	0x75: func(c *CPU) { c.adc(c.zeropageX()) },
	0x6D: func(c *CPU) { c.adc(c.absolute()) },
	0x7D: func(c *CPU) { c.adc(c.absoluteX()) },
	0x79: func(c *CPU) { c.adc(c.absoluteY()) },
	0x61: func(c *CPU) { c.adc(c.indirectX()) },
	0x71: func(c *CPU) { c.adc(c.indirectY()) },

	// AND
	0x29: func(c *CPU) { c.and(c.immediate()) },
	0x25: func(c *CPU) { c.and(c.zeropage()) },
	0x35: func(c *CPU) { c.and(c.zeropageX()) },
	0x2D: func(c *CPU) { c.and(c.absolute()) },
	0x3D: func(c *CPU) { c.and(c.absoluteX()) },
	0x39: func(c *CPU) { c.and(c.absoluteY()) },
	0x21: func(c *CPU) { c.and(c.indirectX()) },
	0x31: func(c *CPU) { c.and(c.indirectY()) },

	// ASL
	0x0A: func(c *CPU) { c.aslAccumulator() },
	0x06: func(c *CPU) { c.asl(c.zeropageAddr()) },
	0x16: func(c *CPU) { c.asl(c.zeropageXAddr()) },
	0x0E: func(c *CPU) { c.asl(c.absoluteAddr()) },
	0x1E: func(c *CPU) { c.asl(c.absoluteXAddr()) },

	// BIT
	0x24: func(c *CPU) { c.bit(c.zeropage()) },
	0x2C: func(c *CPU) { c.bit(c.absolute()) },

	// Branches
	0x10: func(c *CPU) { c.branchFlag(!c.Flags.Negative, "BPL") },
	0x30: func(c *CPU) { c.branchFlag(c.Flags.Negative, "BMI") },
	0x50: func(c *CPU) { c.branchFlag(!c.Flags.Overflow, "BVC") },
	0x70: func(c *CPU) { c.branchFlag(c.Flags.Overflow, "BVS") },
	0x90: func(c *CPU) { c.branchFlag(!c.Flags.Carry, "BCC") },
	0xB0: func(c *CPU) { c.branchFlag(c.Flags.Carry, "BCS") },
	0xD0: func(c *CPU) { c.branchFlag(!c.Flags.Zero, "BNE") },
	0xF0: func(c *CPU) { c.branchFlag(c.Flags.Zero, "BEQ") },

	// Flag clear/set
	0x18: func(c *CPU) { c.clc() },
	0xD8: func(c *CPU) { c.cld() },
	0x58: func(c *CPU) { c.cli() },
	0xB8: func(c *CPU) { c.clv() },
	0x38: func(c *CPU) { c.sec() },
	0xF8: func(c *CPU) { c.sed() },
	0x78: func(c *CPU) { c.sei() },

	// BRK
	0x00: func(c *CPU) { c.brk() },

	// CMP
	0xC9: func(c *CPU) { c.cmp(c.immediate()) },
	0xC5: func(c *CPU) { c.cmp(c.zeropage()) },
	0xD5: func(c *CPU) { c.cmp(c.zeropageX()) },
	0xCD: func(c *CPU) { c.cmp(c.absolute()) },
	0xDD: func(c *CPU) { c.cmp(c.absoluteX()) },
	0xD9: func(c *CPU) { c.cmp(c.absoluteY()) },
	0xC1: func(c *CPU) { c.cmp(c.indirectX()) },
	0xD1: func(c *CPU) { c.cmp(c.indirectY()) },

	// CPX
	0xE0: func(c *CPU) { c.cpx(c.immediate()) },
	0xE4: func(c *CPU) { c.cpx(c.zeropage()) },
	0xEC: func(c *CPU) { c.cpx(c.absolute()) },

	// CPY
	0xC0: func(c *CPU) { c.cpy(c.immediate()) },
	0xC4: func(c *CPU) { c.cpy(c.zeropage()) },
	0xCC: func(c *CPU) { c.cpy(c.absolute()) },

	// DEC
	0xC6: func(c *CPU) { c.dec(c.zeropageAddr()) },
	0xD6: func(c *CPU) { c.dec(c.zeropageXAddr()) },
	0xCE: func(c *CPU) { c.dec(c.absoluteAddr()) },
	0xDE: func(c *CPU) { c.dec(c.absoluteXAddr()) },

	0xCA: func(c *CPU) { c.dex() },
	0x88: func(c *CPU) { c.dey() },

	// EOR
	0x49: func(c *CPU) { c.eor(c.immediate()) },
	0x45: func(c *CPU) { c.eor(c.zeropage()) },
	0x55: func(c *CPU) { c.eor(c.zeropageX()) },
	0x4D: func(c *CPU) { c.eor(c.absolute()) },
	0x5D: func(c *CPU) { c.eor(c.absoluteX()) },
	0x59: func(c *CPU) { c.eor(c.absoluteY()) },
	0x41: func(c *CPU) { c.eor(c.indirectX()) },
	0x51: func(c *CPU) { c.eor(c.indirectY()) },

	// INC
	0xE6: func(c *CPU) { c.inc(c.zeropageAddr()) },
	0xF6: func(c *CPU) { c.inc(c.zeropageXAddr()) },
	0xEE: func(c *CPU) { c.inc(c.absoluteAddr()) },
	0xFE: func(c *CPU) { c.inc(c.absoluteXAddr()) },

	0xE8: func(c *CPU) { c.inx() },
	0xC8: func(c *CPU) { c.iny() },

	// JMP / JSR
	0x4C: func(c *CPU) { c.jmpAbsolute() },
	0x6C: func(c *CPU) { c.jmpIndirect() },
	0x20: func(c *CPU) { c.jsrAbsolute() },

	// LDA
	0xA9: func(c *CPU) { c.lda(c.immediate()) },
	0xA5: func(c *CPU) { c.lda(c.zeropage()) },
	0xB5: func(c *CPU) { c.lda(c.zeropageX()) },
	0xAD: func(c *CPU) { c.lda(c.absolute()) },
	0xBD: func(c *CPU) { c.lda(c.absoluteX()) },
	0xB9: func(c *CPU) { c.lda(c.absoluteY()) },
	0xA1: func(c *CPU) { c.lda(c.indirectX()) },
	0xB1: func(c *CPU) { c.lda(c.indirectY()) },

	// LDX
	0xA2: func(c *CPU) { c.ldx(c.immediate()) },
	0xA6: func(c *CPU) { c.ldx(c.zeropage()) },
	0xB6: func(c *CPU) { c.ldx(c.zeropageY()) },
	0xAE: func(c *CPU) { c.ldx(c.absolute()) },
	0xBE: func(c *CPU) { c.ldx(c.absoluteY()) },

	// LDY
	0xA0: func(c *CPU) { c.ldy(c.immediate()) },
	0xA4: func(c *CPU) { c.ldy(c.zeropage()) },
	0xB4: func(c *CPU) { c.ldy(c.zeropageX()) },
	0xAC: func(c *CPU) { c.ldy(c.absolute()) },
	0xBC: func(c *CPU) { c.ldy(c.absoluteX()) },

	// LSR
	0x4A: func(c *CPU) { c.lsrAccumulator() },
	0x46: func(c *CPU) { c.lsr(c.zeropageAddr()) },
	0x56: func(c *CPU) { c.lsr(c.zeropageXAddr()) },
	0x4E: func(c *CPU) { c.lsr(c.absoluteAddr()) },
	0x5E: func(c *CPU) { c.lsr(c.absoluteXAddr()) },

	0xEA: func(c *CPU) { c.nop() },

	// ORA
	0x09: func(c *CPU) { c.ora(c.immediate()) },
	0x05: func(c *CPU) { c.ora(c.zeropage()) },
	0x15: func(c *CPU) { c.ora(c.zeropageX()) },
	0x0D: func(c *CPU) { c.ora(c.absolute()) },
	0x1D: func(c *CPU) { c.ora(c.absoluteX()) },
	0x19: func(c *CPU) { c.ora(c.absoluteY()) },
	0x01: func(c *CPU) { c.ora(c.indirectX()) },
	0x11: func(c *CPU) { c.ora(c.indirectY()) },

	// Stack
	0x48: func(c *CPU) { c.pha() },
	0x08: func(c *CPU) { c.php() },
	0x68: func(c *CPU) { c.pla() },
	0x28: func(c *CPU) { c.plp() },

	// ROL
	0x2A: func(c *CPU) { c.rolAccumulator() },
	0x26: func(c *CPU) { c.rol(c.zeropageAddr()) },
	0x36: func(c *CPU) { c.rol(c.zeropageXAddr()) },
	0x2E: func(c *CPU) { c.rol(c.absoluteAddr()) },
	0x3E: func(c *CPU) { c.rol(c.absoluteXAddr()) },

	// ROR
	0x6A: func(c *CPU) { c.rorAccumulator() },
	0x66: func(c *CPU) { c.ror(c.zeropageAddr()) },
	0x76: func(c *CPU) { c.ror(c.zeropageXAddr()) },
	0x6E: func(c *CPU) { c.ror(c.absoluteAddr()) },
	0x7E: func(c *CPU) { c.ror(c.absoluteXAddr()) },

	0x40: func(c *CPU) { c.rti() },
	0x60: func(c *CPU) { c.rts() },

	// SBC
	0xE9: func(c *CPU) { c.sbc(c.immediate()) },
	0xE5: func(c *CPU) { c.sbc(c.zeropage()) },
	0xF5: func(c *CPU) { c.sbc(c.zeropageX()) },
	0xED: func(c *CPU) { c.sbc(c.absolute()) },
	0xFD: func(c *CPU) { c.sbc(c.absoluteX()) },
	0xF9: func(c *CPU) { c.sbc(c.absoluteY()) },
	0xE1: func(c *CPU) { c.sbc(c.indirectX()) },
	0xF1: func(c *CPU) { c.sbc(c.indirectY()) },

	// STA
	0x85: func(c *CPU) { c.sta(c.zeropageAddr()) },
	0x95: func(c *CPU) { c.sta(c.zeropageXAddr()) },
	0x8D: func(c *CPU) { c.sta(c.absoluteAddr()) },
	0x9D: func(c *CPU) { c.sta(c.absoluteXAddr()) },
	0x99: func(c *CPU) { c.sta(c.absoluteYAddr()) },
	0x81: func(c *CPU) { c.sta(c.indirectXAddr()) },
	0x91: func(c *CPU) { c.sta(c.indirectYAddr()) },

	// STX
	0x86: func(c *CPU) { c.stx(c.zeropageAddr()) },
	0x96: func(c *CPU) { c.stx(c.zeropageYAddr()) },
	0x8E: func(c *CPU) { c.stx(c.absoluteAddr()) },

	// STY
	0x84: func(c *CPU) { c.sty(c.zeropageAddr()) },
	0x94: func(c *CPU) { c.sty(c.zeropageXAddr()) },
	0x8C: func(c *CPU) { c.sty(c.absoluteAddr()) },

	// Register transfers
	0xAA: func(c *CPU) { c.tax() },
	0xA8: func(c *CPU) { c.tay() },
	0xBA: func(c *CPU) { c.tsx() },
	0x8A: func(c *CPU) { c.txa() },
	0x9A: func(c *CPU) { c.txs() },
	0x98: func(c *CPU) { c.tya() },

	// KIL/JAM
	0x02: func(c *CPU) { c.hlt() },
	0x12: func(c *CPU) { c.hlt() },
	0x22: func(c *CPU) { c.hlt() },
	0x32: func(c *CPU) { c.hlt() },
	0x42: func(c *CPU) { c.hlt() },
	0x52: func(c *CPU) { c.hlt() },
	0x62: func(c *CPU) { c.hlt() },
	0x72: func(c *CPU) { c.hlt() },
	0x92: func(c *CPU) { c.hlt() },
	0xB2: func(c *CPU) { c.hlt() },
	0xD2: func(c *CPU) { c.hlt() },
	0xF2: func(c *CPU) { c.hlt() },
}
