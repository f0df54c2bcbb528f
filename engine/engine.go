package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxygl/engine/profiler"
	"github.com/Carmen-Shannon/oxygl/engine/window"
)

// engine is the implementation of the Engine interface.
// The entire loop runs on the one OS thread that owns the GL context:
// OpenGL calls are bound to that thread, so unlike a multi-queue GPU API
// there is no render goroutine to fan out to. Each iteration polls window
// events, fires the update and render callbacks, and swaps buffers.
type engine struct {
	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	updateCallback func(deltaTime float32)
	renderCallback func(deltaTime float32)

	frameLimit time.Duration // minimum frame duration; 0 = uncapped

	running bool
}

// Engine is the main entry point for the engine.
// It owns the single-threaded frame loop and window management.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetUpdateCallback registers the function called at the start of each
	// frame, after event polling and before rendering. Use this for input
	// handling, time accumulation, and uniform updates.
	//
	// Parameters:
	//   - callback: function receiving the frame delta time in seconds
	SetUpdateCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each frame to issue
	// draw calls. The buffer swap happens after this returns.
	//
	// Parameters:
	//   - callback: function receiving the frame delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default; vsync usually caps it anyway).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetFrameLimit(fps float64)

	// Run starts the frame loop on the calling thread and blocks until the
	// window closes or Quit is called. Must be called from the thread that
	// created the window.
	Run()

	// Quit stops the frame loop after the current frame. Safe to call from
	// within the update or render callbacks.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder
// pattern.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		profiler: profiler.NewProfiler(),
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	e.running = true
	lastFrame := time.Now()

	for e.running && e.window.IsRunning() {
		e.window.PollEvents()

		now := time.Now()
		dt := float32(now.Sub(lastFrame).Seconds())
		lastFrame = now

		if e.updateCallback != nil {
			e.updateCallback(dt)
		}
		if e.renderCallback != nil {
			e.renderCallback(dt)
		}

		e.window.SwapBuffers()

		if e.profilingEnabled && e.profiler != nil {
			e.profiler.Tick()
		}

		if e.frameLimit > 0 {
			elapsed := time.Since(lastFrame)
			if remaining := e.frameLimit - elapsed; remaining > 0 {
				time.Sleep(remaining)
			}
		}
	}
}

// Quit stops the frame loop after the current frame completes.
func (e *engine) Quit() {
	e.running = false
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetUpdateCallback registers the function called each frame before rendering.
func (e *engine) SetUpdateCallback(callback func(deltaTime float32)) {
	e.updateCallback = callback
}

// SetRenderCallback registers the function called each frame to issue draw calls.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetFrameLimit sets an optional frame rate cap. Pass 0 to uncap the loop.
func (e *engine) SetFrameLimit(fps float64) {
	if fps <= 0 {
		e.frameLimit = 0
		return
	}
	e.frameLimit = time.Second / time.Duration(fps)
}
