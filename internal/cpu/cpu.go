// Package cpu implements the 6502 instruction interpreter: addressing
// modes, the official opcode dispatch table, cycle accounting, and
// per-instruction tracing.
package cpu

import "nescore/internal/hostio"

// MemoryInterface is the CPU's view of the bus it's attached to.
type MemoryInterface interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// CPU holds 6502 register state and drives decode/execute one
// instruction at a time via Clock.
type CPU struct {
	Cycles  uint64
	PC      uint16
	A, X, Y uint8
	SP      uint8
	Flags   Flags
	Running bool

	memory MemoryInterface
	sink   hostio.Sink

	lastInstruction uint8
	lastLocation    uint16
}

// New constructs a CPU attached to the given bus. The CPU does not start
// running until Reset is called.
func New(memory MemoryInterface, sink hostio.Sink) *CPU {
	if sink == nil {
		sink = hostio.NoopSink{}
	}
	return &CPU{memory: memory, sink: sink}
}

// Reset sets interrupt-disable, marks the CPU running, reads the reset
// vector {0xFFFC, 0xFFFD}, and initialises SP to 0xFD, per §4.6.
func (c *CPU) Reset() {
	c.Flags.InterruptDisable = true
	c.Running = true

	low := c.memory.Read(0xFFFC)
	high := c.memory.Read(0xFFFD)
	c.PC = uint16(high)<<8 | uint16(low)
	c.SP = 0xFD
}

// NMI drives the non-maskable interrupt sequence: push PC high/low, push
// status with Break clear, set interrupt-disable, load PC from
// {0xFFFA, 0xFFFB}. The source this core is based on never wired VBlank
// to this sequence (§9); the facade now calls NMI explicitly when the
// PPU's VBlank flag rises and Ctrl.NMIOnVBlank is set.
func (c *CPU) NMI() {
	c.pushStack(uint8(c.PC >> 8))
	c.pushStack(uint8(c.PC & 0xFF))
	status := c.Flags
	status.Break = false
	c.pushStack(status.ToByte())
	c.Flags.InterruptDisable = true

	low := c.read(0xFFFA)
	high := c.read(0xFFFB)
	c.PC = uint16(high)<<8 | uint16(low)
}

// Clock decodes and executes a single instruction, returning the number
// of cycles it consumed. The cycle counter resets at the start of every
// call, per the data-model invariant in §3.
func (c *CPU) Clock() uint64 {
	if !c.Running {
		return 0
	}

	c.Cycles = 0
	c.lastLocation = c.PC
	opcode := c.readNext()
	c.lastInstruction = opcode

	if fn, ok := dispatch[opcode]; ok {
		fn(c)
	} else {
		c.sink.ConsoleLog(unimplementedMessage(opcode))
		return c.Cycles
	}

	return c.Cycles
}

// readNext fetches the byte at PC, advances PC, and consumes a cycle —
// the CPU's instruction-stream fetch primitive.
func (c *CPU) readNext() uint8 {
	value := c.memory.Read(c.PC)
	c.PC++
	c.cycle()
	return value
}

// read performs a cycle-costed memory read at an arbitrary address.
func (c *CPU) read(addr uint16) uint8 {
	value := c.memory.Read(addr)
	c.cycle()
	return value
}

// write performs a cycle-costed memory write at an arbitrary address.
func (c *CPU) write(addr uint16, value uint8) {
	c.memory.Write(addr, value)
	c.cycle()
}

func (c *CPU) cycle() {
	c.Cycles++
}

func (c *CPU) pushStack(value uint8) {
	c.write(0x0100+uint16(c.SP), value)
	c.SP--
}

func (c *CPU) pullStack() uint8 {
	c.cycle()
	c.SP++
	return c.read(0x0100 + uint16(c.SP))
}

// setZN recomputes the zero and negative flags from a result byte, per
// the data-model invariant that any register-writing operation derives
// them from the resulting byte.
func (c *CPU) setZN(value uint8) {
	c.Flags.Zero = value == 0
	c.Flags.Negative = value >= 0x80
}

func (c *CPU) addTraceLog(operandBytes []uint8, mnemonic string) {
	c.sink.AddTraceLog(hostio.TraceRecord{
		PC:       c.lastLocation,
		Opcode:   c.lastInstruction,
		Operands: operandBytes,
		Mnemonic: mnemonic,
		A:        c.A,
		X:        c.X,
		Y:        c.Y,
		SP:       c.SP,
		P:        c.Flags.ToByte(),
		Flags:    c.Flags.letters(),
		Cycles:   c.Cycles,
	})
}

func unimplementedMessage(opcode uint8) string {
	const hex = "0123456789ABCDEF"
	return "unimplemented instruction: 0x" + string([]byte{hex[opcode>>4], hex[opcode&0xF]})
}
