package graphics

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitengineBackend implements Backend using ebiten/v2.
type EbitengineBackend struct {
	initialized bool
	config      Config
}

// EbitengineWindow implements Window over an ebiten game loop.
type EbitengineWindow struct {
	backend *EbitengineBackend
	title   string
	width   int
	height  int
	game    *ebitengineGame
	running bool
}

// ebitengineGame implements ebiten.Game, drawing whatever RGBA frame
// buffer was most recently handed to RenderFrame.
type ebitengineGame struct {
	window      *EbitengineWindow
	frameImage  *ebiten.Image
	imageBuffer *image.RGBA
	update      func() error
}

// NewEbitengineBackend constructs an uninitialised Ebitengine backend.
func NewEbitengineBackend() Backend {
	return &EbitengineBackend{}
}

func (b *EbitengineBackend) Initialize(config Config) error {
	if b.initialized {
		return errors.New("graphics: ebitengine backend already initialized")
	}
	b.config = config
	b.initialized = true
	return nil
}

func (b *EbitengineBackend) CreateWindow(title string, width, height int) (Window, error) {
	if !b.initialized {
		return nil, errors.New("graphics: backend not initialized")
	}
	if b.config.Headless {
		return nil, errors.New("graphics: cannot create a window in headless mode")
	}

	game := &ebitengineGame{
		frameImage:  ebiten.NewImage(screenWidth, screenHeight),
		imageBuffer: image.NewRGBA(image.Rect(0, 0, screenWidth, screenHeight)),
	}
	window := &EbitengineWindow{
		backend: b,
		title:   title,
		width:   width,
		height:  height,
		game:    game,
		running: true,
	}
	game.window = window

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(b.config.VSync)
	if b.config.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return window, nil
}

func (b *EbitengineBackend) Cleanup() error {
	b.initialized = false
	return nil
}

func (b *EbitengineBackend) IsHeadless() bool { return b.config.Headless }
func (b *EbitengineBackend) GetName() string  { return "Ebitengine" }

func (w *EbitengineWindow) SetTitle(title string) {
	w.title = title
	ebiten.SetWindowTitle(title)
}

func (w *EbitengineWindow) GetSize() (int, int) { return w.width, w.height }
func (w *EbitengineWindow) ShouldClose() bool   { return !w.running }

// RenderFrame copies an RGBA frame buffer into the backing image that
// the next Draw call presents.
func (w *EbitengineWindow) RenderFrame(frameBuffer []uint8) error {
	if w.game == nil {
		return errors.New("graphics: window has no game loop")
	}
	copy(w.game.imageBuffer.Pix, frameBuffer)
	w.game.frameImage.WritePixels(w.game.imageBuffer.Pix)
	return nil
}

func (w *EbitengineWindow) Cleanup() error {
	w.running = false
	return nil
}

// Run starts the Ebitengine game loop, calling update on every tick.
func (w *EbitengineWindow) Run(update func() error) error {
	if w.game == nil {
		return errors.New("graphics: window has no game loop")
	}
	w.game.update = update
	return ebiten.RunGame(w.game)
}

func (g *ebitengineGame) Update() error {
	if g.update != nil {
		return g.update()
	}
	return nil
}

func (g *ebitengineGame) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.frameImage, nil)
}

func (g *ebitengineGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
