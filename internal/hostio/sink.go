// Package hostio defines the collaborator contracts the core hands control
// to: diagnostic logging, per-instruction tracing, memory-region snapshots
// for a debugger view, and the redraw hint. The core never assumes a
// concrete front end; it only calls through Sink.
package hostio

import "github.com/golang/glog"

// TraceRecord is emitted once per retired CPU instruction.
type TraceRecord struct {
	PC          uint16
	Opcode      uint8
	Operands    []uint8
	Mnemonic    string
	A, X, Y, SP uint8
	P           uint8
	Flags       string
	Cycles      uint64
}

// Sink receives side-effects the core itself has no opinion about: where
// log lines go, how a trace is displayed, and when the framebuffer should
// be redrawn. All methods must tolerate being called at emulation speed.
type Sink interface {
	ConsoleLog(message string)
	AddTraceLog(rec TraceRecord)
	UpdateRAM(data []byte)
	UpdateVRAM(data []byte)
	UpdatePRGROM(data []byte)
	UpdateCHRROM(data []byte)
	ForceScreenDraw()
}

// NoopSink discards everything. Useful for tests and headless runs that
// don't care about diagnostics.
type NoopSink struct{}

func (NoopSink) ConsoleLog(string)        {}
func (NoopSink) AddTraceLog(TraceRecord)  {}
func (NoopSink) UpdateRAM([]byte)         {}
func (NoopSink) UpdateVRAM([]byte)        {}
func (NoopSink) UpdatePRGROM([]byte)      {}
func (NoopSink) UpdateCHRROM([]byte)      {}
func (NoopSink) ForceScreenDraw()         {}

// GlogSink is the default Sink: diagnostics go to glog, trace records are
// formatted as a single structured log line, and memory snapshots are only
// logged at a verbose level since they fire on every write.
type GlogSink struct{}

func (GlogSink) ConsoleLog(message string) {
	glog.Info(message)
}

func (GlogSink) AddTraceLog(rec TraceRecord) {
	operands := ""
	for _, b := range rec.Operands {
		operands += " "
		operands += hexByte(b)
	}
	glog.V(2).Infof("%04X  %02X%s  %-20s A:%02X X:%02X Y:%02X SP:%02X P:%02X %s CYC:%d",
		rec.PC, rec.Opcode, operands, rec.Mnemonic, rec.A, rec.X, rec.Y, rec.SP, rec.P, rec.Flags, rec.Cycles)
}

func (GlogSink) UpdateRAM(data []byte) {
	glog.V(3).Infof("work RAM snapshot: %d bytes", len(data))
}

func (GlogSink) UpdateVRAM(data []byte) {
	glog.V(3).Infof("VRAM snapshot: %d bytes", len(data))
}

func (GlogSink) UpdatePRGROM(data []byte) {
	glog.V(3).Infof("PRG-ROM snapshot: %d bytes", len(data))
}

func (GlogSink) UpdateCHRROM(data []byte) {
	glog.V(3).Infof("CHR-ROM snapshot: %d bytes", len(data))
}

func (GlogSink) ForceScreenDraw() {
	glog.V(4).Info("frame ready")
}

func hexByte(b uint8) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[b>>4], digits[b&0x0F]})
}
