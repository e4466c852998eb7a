// Package graphics abstracts frame presentation behind a Backend/Window
// pair, so the emulation core never depends on a concrete windowing
// library. Controller input is out of scope for this port (the source
// program exposes no input handling either — see DESIGN.md), so unlike
// the teacher's graphics package this one carries no InputEvent surface.
package graphics

// Backend represents a graphics rendering backend (Ebitengine, headless).
type Backend interface {
	// Initialize initializes the graphics backend.
	Initialize(config Config) error

	// CreateWindow creates a window for rendering (returns a no-op
	// window for headless backends).
	CreateWindow(title string, width, height int) (Window, error)

	// Cleanup releases all resources.
	Cleanup() error

	// IsHeadless returns true if running in headless mode.
	IsHeadless() bool

	// GetName returns the backend name for identification.
	GetName() string
}

// Window represents a rendering window.
type Window interface {
	// SetTitle sets the window title.
	SetTitle(title string)

	// GetSize returns window dimensions.
	GetSize() (width, height int)

	// ShouldClose returns true if the window should close.
	ShouldClose() bool

	// RenderFrame presents a 256x240 RGBA frame buffer (the same byte
	// layout Console.ScreenBuffer returns) to the window.
	RenderFrame(frameBuffer []uint8) error

	// Cleanup releases window resources.
	Cleanup() error
}

// Config contains configuration for graphics backends.
type Config struct {
	WindowTitle  string
	WindowWidth  int
	WindowHeight int
	Fullscreen   bool
	VSync        bool
	Headless     bool
}

// BackendType selects which graphics backend to construct.
type BackendType string

const (
	BackendEbitengine BackendType = "ebitengine"
	BackendHeadless   BackendType = "headless"
)

// CreateBackend constructs a graphics backend of the given type,
// defaulting to Ebitengine for anything unrecognised.
func CreateBackend(backendType BackendType) Backend {
	switch backendType {
	case BackendHeadless:
		return NewHeadlessBackend()
	default:
		return NewEbitengineBackend()
	}
}

const (
	screenWidth  = 256
	screenHeight = 240
)
