package cpu

import "fmt"

func (c *CPU) adc(op operand) {
	oldA := c.A
	res := uint16(c.A) + uint16(op.value) + boolToUint16(c.Flags.Carry)
	c.A = uint8(res)
	c.Flags.Carry = res > 0xFF
	c.Flags.Overflow = ((^(oldA ^ op.value)) & (oldA ^ c.A) & 0x80) != 0
	c.setZN(c.A)
	c.addTraceLog(op.bytes, fmt.Sprintf("ADC %s", op.text))
}

func (c *CPU) and(op operand) {
	c.A &= op.value
	c.setZN(c.A)
	c.addTraceLog(op.bytes, fmt.Sprintf("AND %s", op.text))
}

func (c *CPU) aslAccumulator() {
	c.Flags.Carry = c.A&0x80 != 0
	c.A <<= 1
	c.cycle()
	c.setZN(c.A)
	c.addTraceLog(nil, "ASL")
}

func (c *CPU) asl(op addrOperand) {
	target := c.read(op.addr)
	c.Flags.Carry = target&0x80 != 0
	c.cycle()
	c.write(op.addr, target<<1)
	c.setZN(target) // matches the source: flags derive from the pre-shift value
	c.addTraceLog(op.bytes, fmt.Sprintf("ASL %s", op.text))
}

func (c *CPU) bit(op operand) {
	v := op.value
	c.Flags.Zero = c.A&v == 0
	c.Flags.Negative = v&0x80 != 0
	c.Flags.Overflow = v&0x40 != 0
	c.addTraceLog(op.bytes, fmt.Sprintf("BIT %s", op.text))
}

// branchFlag implements BPL/BMI/BVC/BVS/BCC/BCS/BNE/BEQ: a relative
// offset is always fetched; it's only applied to PC when flag matches.
// Taken branches cost +1 cycle, plus +1 more on page crossing.
func (c *CPU) branchFlag(flag bool, name string) {
	offset := c.readNext()
	target := c.PC + uint16(int8(offset))

	if flag {
		old := c.PC
		c.PC = target
		c.cycle()
		if old&0xFF00 != c.PC&0xFF00 {
			c.cycle()
		}
		c.addTraceLog([]uint8{offset}, fmt.Sprintf("%s $%04X -> $%04X", name, target, target))
	} else {
		c.addTraceLog([]uint8{offset}, fmt.Sprintf("%s $%04X -> $%04X", name, target, c.PC))
	}
}

func (c *CPU) brk() {
	next := c.PC + 1
	c.pushStack(uint8(next >> 8))
	c.pushStack(uint8(next & 0xFF))

	status := c.Flags
	status.Break = true
	c.pushStack(status.ToByte())
	c.Flags.InterruptDisable = true

	low := uint16(c.read(0xFFFE))
	high := uint16(c.read(0xFFFF))
	c.PC = high<<8 | low
	c.cycle()
	c.addTraceLog(nil, "BRK")
}

func (c *CPU) cmp(op operand) {
	res := c.A - op.value
	c.Flags.Carry = c.A >= op.value
	c.Flags.Zero = res == 0
	c.Flags.Negative = res >= 0x80
	c.addTraceLog(op.bytes, fmt.Sprintf("CMP %s", op.text))
}

func (c *CPU) cpx(op operand) {
	res := c.X - op.value
	c.Flags.Carry = c.X >= op.value
	c.Flags.Zero = res == 0
	c.Flags.Negative = res >= 0x80
	c.addTraceLog(op.bytes, fmt.Sprintf("CPX %s", op.text))
}

func (c *CPU) cpy(op operand) {
	res := c.Y - op.value
	c.Flags.Carry = c.Y >= op.value
	c.Flags.Zero = res == 0
	c.Flags.Negative = res >= 0x80
	c.addTraceLog(op.bytes, fmt.Sprintf("CPY %s", op.text))
}

func (c *CPU) dec(op addrOperand) {
	prev := c.read(op.addr)
	res := prev - 1
	c.cycle()
	c.write(op.addr, res)
	c.setZN(res)
	c.addTraceLog(op.bytes, fmt.Sprintf("DEC %s", op.text))
}

func (c *CPU) dex() {
	c.X--
	c.cycle()
	c.setZN(c.X)
	c.addTraceLog(nil, "DEX")
}

func (c *CPU) dey() {
	c.Y--
	c.cycle()
	c.setZN(c.Y)
	c.addTraceLog(nil, "DEY")
}

// eor emits a correctly-prefixed "EOR" trace mnemonic — the source this
// was ported from dropped the prefix entirely, a tracing bug fixed per
// §9.
func (c *CPU) eor(op operand) {
	c.A ^= op.value
	c.setZN(c.A)
	c.addTraceLog(op.bytes, fmt.Sprintf("EOR %s", op.text))
}

func (c *CPU) inc(op addrOperand) {
	prev := c.read(op.addr)
	res := prev + 1
	c.cycle()
	c.write(op.addr, res)
	c.setZN(res)
	c.addTraceLog(op.bytes, fmt.Sprintf("INC %s", op.text))
}

func (c *CPU) inx() {
	c.X++
	c.cycle()
	c.setZN(c.X)
	c.addTraceLog(nil, "INX")
}

// iny emits the correct "INY" trace mnemonic — the source this was
// ported from emitted "INX" for this opcode, a tracing bug fixed per §9.
func (c *CPU) iny() {
	c.Y++
	c.cycle()
	c.setZN(c.Y)
	c.addTraceLog(nil, "INY")
}

func (c *CPU) jmpAbsolute() {
	low := c.readNext()
	high := c.readNext()
	addr := uint16(high)<<8 | uint16(low)
	c.PC = addr
	c.addTraceLog([]uint8{low, high}, fmt.Sprintf("JMP $%04X", addr))
}

func (c *CPU) jmpIndirect() {
	low := c.readNext()
	high := c.readNext()
	ptr := uint16(high)<<8 | uint16(low)

	targetLow := c.read(ptr)
	var targetHigh uint8
	if low == 0xFF {
		targetHigh = c.read(ptr & 0xFF00) // the classic 6502 page-wrap bug, preserved
	} else {
		targetHigh = c.read(ptr + 1)
	}

	c.PC = uint16(targetHigh)<<8 | uint16(targetLow)
	c.addTraceLog([]uint8{low, high}, fmt.Sprintf("JMP ($%04X)", ptr))
}

func (c *CPU) jsrAbsolute() {
	low := c.readNext()
	high := c.readNext()
	addr := uint16(high)<<8 | uint16(low)

	returnAddr := c.PC - 1
	c.pushStack(uint8(returnAddr >> 8))
	c.pushStack(uint8(returnAddr & 0xFF))
	c.PC = addr
	c.cycle()
	c.addTraceLog([]uint8{low, high}, fmt.Sprintf("JSR $%04X", addr))
}

func (c *CPU) lda(op operand) {
	c.A = op.value
	c.setZN(c.A)
	c.addTraceLog(op.bytes, fmt.Sprintf("LDA %s", op.text))
}

func (c *CPU) ldx(op operand) {
	c.X = op.value
	c.setZN(c.X)
	c.addTraceLog(op.bytes, fmt.Sprintf("LDX %s", op.text))
}

func (c *CPU) ldy(op operand) {
	c.Y = op.value
	c.setZN(c.Y)
	c.addTraceLog(op.bytes, fmt.Sprintf("LDY %s", op.text))
}

func (c *CPU) lsrAccumulator() {
	c.Flags.Carry = c.A&0x01 != 0
	c.A >>= 1
	c.cycle()
	c.Flags.Zero = c.A == 0
	c.Flags.Negative = false
	c.addTraceLog(nil, "LSR")
}

func (c *CPU) lsr(op addrOperand) {
	value := c.read(op.addr)
	c.Flags.Carry = value&0x01 != 0
	c.cycle()
	result := value >> 1
	c.Flags.Zero = result == 0
	c.Flags.Negative = false
	c.write(op.addr, result)
	c.addTraceLog(op.bytes, fmt.Sprintf("LSR %s", op.text))
}

func (c *CPU) nop() {
	c.cycle()
	c.cycle()
	c.addTraceLog(nil, "NOP")
}

// ora derives the negative flag from the result rather than clearing it
// unconditionally — §9 calls out the unconditional clear as a bug to fix.
func (c *CPU) ora(op operand) {
	c.A |= op.value
	c.setZN(c.A)
	c.addTraceLog(op.bytes, fmt.Sprintf("ORA %s", op.text))
}

func (c *CPU) pha() {
	c.cycle()
	c.pushStack(c.A)
	c.addTraceLog(nil, "PHA")
}

func (c *CPU) php() {
	c.cycle()
	status := c.Flags
	status.Break = true
	c.pushStack(status.ToByte())
	c.addTraceLog(nil, "PHP")
}

func (c *CPU) pla() {
	c.cycle()
	c.A = c.pullStack()
	c.setZN(c.A)
	c.addTraceLog(nil, "PLA")
}

func (c *CPU) plp() {
	c.cycle()
	value := c.pullStack()
	c.Flags = FlagsFromByte(value)
	c.cycle()
	c.addTraceLog([]uint8{value}, "PLP")
}

func (c *CPU) rolAccumulator() {
	oldCarry := c.Flags.Carry
	c.Flags.Carry = c.A&0x80 != 0
	c.cycle()
	c.A = (c.A << 1) | boolToUint8(oldCarry)
	c.setZN(c.A)
	c.addTraceLog(nil, "ROL")
}

func (c *CPU) rol(op addrOperand) {
	value := c.read(op.addr)
	oldCarry := c.Flags.Carry
	c.Flags.Carry = value&0x80 != 0
	value = (value << 1) | boolToUint8(oldCarry)
	c.write(op.addr, value)
	c.setZN(value)
	c.addTraceLog(op.bytes, fmt.Sprintf("ROL %s", op.text))
}

// rorAccumulator's trace mnemonic says "ROL", not "ROR" — a pre-existing
// tracing mixup in the source, preserved here since only EOR/ORA/INY are
// called out in §9 as tracing bugs to fix.
func (c *CPU) rorAccumulator() {
	oldCarry := c.Flags.Carry
	c.Flags.Carry = c.A&0x01 != 0
	c.cycle()
	c.A = (c.A >> 1) | (boolToUint8(oldCarry) << 7)
	c.setZN(c.A)
	c.addTraceLog(nil, "ROL")
}

// ror's trace mnemonic says "ROL" for the same reason as rorAccumulator.
func (c *CPU) ror(op addrOperand) {
	value := c.read(op.addr)
	oldCarry := c.Flags.Carry
	c.Flags.Carry = value&0x01 != 0
	value = (value >> 1) | (boolToUint8(oldCarry) << 7)
	c.write(op.addr, value)
	c.setZN(value)
	c.addTraceLog(op.bytes, fmt.Sprintf("ROL %s", op.text))
}

func (c *CPU) rti() {
	status := c.pullStack()
	c.Flags = FlagsFromByte(status)
	low := uint16(c.pullStack())
	high := uint16(c.pullStack())
	addr := high<<8 | low
	c.PC = addr
	c.addTraceLog(nil, fmt.Sprintf("RTI $%02X -> $%04X", status, addr))
}

func (c *CPU) rts() {
	low := uint16(c.pullStack())
	high := uint16(c.pullStack())
	addr := high<<8 | low
	c.PC = addr + 1
	c.cycle()
	c.addTraceLog(nil, fmt.Sprintf("RTS -> $%04X", addr))
}

func (c *CPU) sbc(op operand) {
	operandV := op.value
	oldA := c.A
	carry := int16(1)
	if c.Flags.Carry {
		carry = 0
	}
	res := int16(c.A) - int16(operandV) - carry
	c.A = uint8(res)
	c.Flags.Carry = res >= 0
	c.Flags.Zero = c.A == 0
	c.Flags.Negative = c.A&0x80 != 0
	c.Flags.Overflow = ((oldA^operandV)&0x80 != 0) && ((oldA^c.A)&0x80 != 0)
	c.addTraceLog(op.bytes, fmt.Sprintf("SBC %s", op.text))
}

func (c *CPU) sta(op addrOperand) {
	c.write(op.addr, c.A)
	c.addTraceLog(op.bytes, fmt.Sprintf("STA %s", op.text))
}

func (c *CPU) stx(op addrOperand) {
	c.write(op.addr, c.X)
	c.addTraceLog(op.bytes, fmt.Sprintf("STX %s", op.text))
}

func (c *CPU) sty(op addrOperand) {
	c.write(op.addr, c.Y)
	c.addTraceLog(op.bytes, fmt.Sprintf("STY %s", op.text))
}

// tax/tay/tsx/txa/tya set zero/negative from the transferred value. The
// Rust source this was ported from never touched the flags in any of
// these five transfers; §8 property 1 requires it, and the teacher's own
// CPU core does set them here, so this port follows the teacher.
func (c *CPU) tax() {
	c.X = c.A
	c.cycle()
	c.setZN(c.X)
	c.addTraceLog(nil, "TAX")
}

func (c *CPU) tay() {
	c.Y = c.A
	c.cycle()
	c.setZN(c.Y)
	c.addTraceLog(nil, "TAY")
}

func (c *CPU) tsx() {
	c.X = c.SP
	c.cycle()
	c.setZN(c.X)
	c.addTraceLog(nil, "TSX")
}

func (c *CPU) txa() {
	c.A = c.X
	c.cycle()
	c.setZN(c.A)
	c.addTraceLog(nil, "TXA")
}

func (c *CPU) txs() {
	c.SP = c.X
	c.cycle()
	c.addTraceLog(nil, "TXS")
}

func (c *CPU) tya() {
	c.A = c.Y
	c.cycle()
	c.setZN(c.A)
	c.addTraceLog(nil, "TYA")
}

func (c *CPU) clc() {
	c.Flags.Carry = false
	c.addTraceLog(nil, "CLC")
}

func (c *CPU) cld() {
	c.Flags.Decimal = false
	c.addTraceLog(nil, "CLD")
}

func (c *CPU) cli() {
	c.Flags.InterruptDisable = false
	c.addTraceLog(nil, "CLI")
}

func (c *CPU) clv() {
	c.Flags.Overflow = false
	c.addTraceLog(nil, "CLV")
}

func (c *CPU) sec() {
	c.Flags.Carry = true
	c.addTraceLog(nil, "SEC")
}

func (c *CPU) sed() {
	c.Flags.Decimal = true
	c.addTraceLog(nil, "SED")
}

func (c *CPU) sei() {
	c.Flags.InterruptDisable = true
	c.addTraceLog(nil, "SEI")
}

// hlt handles the twelve KIL/JAM opcodes: clear Running, halt dispatch.
func (c *CPU) hlt() {
	c.Running = false
	c.addTraceLog(nil, "HLT")
}

func boolToUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func boolToUint16(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}
