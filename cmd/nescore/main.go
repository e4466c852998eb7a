// Command nescore runs the NES emulation core, either in a windowed
// Ebitengine front end or headless for automated runs.
package main

import (
	"flag"

	"github.com/golang/glog"

	"nescore/internal/cartridge"
	"nescore/internal/console"
	"nescore/internal/graphics"
	"nescore/internal/hostio"
)

func main() {
	romPath := flag.String("rom", "", "path to an iNES ROM file (defaults to the built-in test cartridge)")
	headless := flag.Bool("headless", false, "run without a window, driving the clock directly")
	frames := flag.Int("frames", 0, "in headless mode, stop after this many PPU frames (0 = run forever)")
	title := flag.String("title", "nescore", "window title")
	flag.Parse()
	defer glog.Flush()

	sink := hostio.GlogSink{}

	nes, err := buildConsole(*romPath, sink)
	if err != nil {
		glog.Exitf("nescore: %v", err)
	}

	if *headless {
		runHeadless(nes, *frames, sink)
		return
	}

	if err := runWindowed(nes, *title, sink); err != nil {
		glog.Exitf("nescore: %v", err)
	}
}

func buildConsole(romPath string, sink hostio.Sink) (*console.Console, error) {
	if romPath == "" {
		glog.Info("no -rom given, running the built-in test cartridge")
		return console.NewDefault(sink), nil
	}

	cart, err := cartridge.LoadFile(romPath, sink)
	if err != nil {
		return nil, err
	}
	return console.New(cart, sink), nil
}

func runHeadless(nes *console.Console, maxFrames int, sink hostio.Sink) {
	glog.Info("running headless")
	var cycleCount uint64
	for nes.IsRunning() {
		cycles := nes.Clock()

		if maxFrames > 0 {
			cycleCount += cycles
			if cycleCount >= uint64(maxFrames)*29781 { // ~29781 CPU cycles/frame at NTSC
				break
			}
		}
	}
}

func runWindowed(nes *console.Console, title string, sink hostio.Sink) error {
	backend := graphics.CreateBackend(graphics.BackendEbitengine)
	if err := backend.Initialize(graphics.Config{WindowTitle: title, WindowWidth: 512, WindowHeight: 480, VSync: true}); err != nil {
		return err
	}
	defer backend.Cleanup()

	win, err := backend.CreateWindow(title, 512, 480)
	if err != nil {
		return err
	}
	defer win.Cleanup()

	ebitenWindow, ok := win.(*graphics.EbitengineWindow)
	if !ok {
		// A headless backend was selected some other way; there is no
		// game loop to drive, so just clock the emulator until it halts.
		for nes.IsRunning() {
			nes.Clock()
		}
		return nil
	}

	return ebitenWindow.Run(func() error {
		if nes.IsRunning() {
			nes.Clock()
		}
		return win.RenderFrame(nes.ScreenBuffer())
	})
}
