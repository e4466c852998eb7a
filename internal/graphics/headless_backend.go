package graphics

import (
	"errors"
	"fmt"
	"os"
)

// HeadlessBackend implements Backend without any real window, optionally
// dumping select frames to disk as PPM images for debugging — the same
// sampling the teacher's headless backend uses.
type HeadlessBackend struct {
	initialized bool
	config      Config
}

// HeadlessWindow implements Window as a no-op sink, counting frames.
type HeadlessWindow struct {
	title      string
	width      int
	height     int
	running    bool
	frameCount int
}

// NewHeadlessBackend constructs an uninitialised headless backend.
func NewHeadlessBackend() Backend {
	return &HeadlessBackend{}
}

func (b *HeadlessBackend) Initialize(config Config) error {
	if b.initialized {
		return errors.New("graphics: headless backend already initialized")
	}
	b.config = config
	b.initialized = true
	return nil
}

func (b *HeadlessBackend) CreateWindow(title string, width, height int) (Window, error) {
	if !b.initialized {
		return nil, errors.New("graphics: backend not initialized")
	}
	return &HeadlessWindow{title: title, width: width, height: height, running: true}, nil
}

func (b *HeadlessBackend) Cleanup() error {
	b.initialized = false
	return nil
}

func (b *HeadlessBackend) IsHeadless() bool { return true }
func (b *HeadlessBackend) GetName() string  { return "Headless" }

func (w *HeadlessWindow) SetTitle(title string) { w.title = title }
func (w *HeadlessWindow) GetSize() (int, int)   { return w.width, w.height }
func (w *HeadlessWindow) ShouldClose() bool     { return !w.running }
func (w *HeadlessWindow) Cleanup() error        { w.running = false; return nil }

// RenderFrame counts frames and periodically dumps one to disk as a PPM
// image, mirroring the teacher's debug sampling (frames 31, 61, 120).
func (w *HeadlessWindow) RenderFrame(frameBuffer []uint8) error {
	w.frameCount++
	switch w.frameCount {
	case 31, 61, 120:
		return w.saveFrameAsPPM(frameBuffer, fmt.Sprintf("frame_%03d.ppm", w.frameCount))
	}
	return nil
}

func (w *HeadlessWindow) saveFrameAsPPM(frameBuffer []uint8, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("graphics: failed to create %s: %w", filename, err)
	}
	defer file.Close()

	fmt.Fprintf(file, "P3\n%d %d\n255\n", screenWidth, screenHeight)
	for y := 0; y < screenHeight; y++ {
		for x := 0; x < screenWidth; x++ {
			i := (y*screenWidth + x) * 4
			fmt.Fprintf(file, "%d %d %d ", frameBuffer[i], frameBuffer[i+1], frameBuffer[i+2])
		}
		fmt.Fprintln(file)
	}
	return nil
}

// GetFrameCount returns the number of frames rendered so far.
func (w *HeadlessWindow) GetFrameCount() int { return w.frameCount }
