// Package memory implements the NES's 2 KiB of CPU-visible work RAM.
package memory

import "nescore/internal/hostio"

// WorkRAM is exactly 2048 bytes, addressable at CPU 0x0000-0x1FFF with
// 3x mirroring (the mirroring itself is the CPU bus's responsibility;
// this type only masks modulo 0x800).
type WorkRAM struct {
	contents [0x800]uint8
	sink     hostio.Sink
}

// NewWorkRAM constructs zeroed work RAM reporting snapshots to sink.
func NewWorkRAM(sink hostio.Sink) *WorkRAM {
	if sink == nil {
		sink = hostio.NoopSink{}
	}
	w := &WorkRAM{sink: sink}
	w.sink.UpdateRAM(w.contents[:])
	return w
}

// Read returns the byte at addr mod 0x800.
func (w *WorkRAM) Read(addr uint16) uint8 {
	return w.contents[addr&0x7FF]
}

// Write stores value at addr mod 0x800 and reports the updated snapshot.
func (w *WorkRAM) Write(addr uint16, value uint8) {
	w.contents[addr&0x7FF] = value
	w.sink.UpdateRAM(w.contents[:])
}
