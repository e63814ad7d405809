package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/profile"
)

type Options struct {
	// Profile writes a CPU profile for the window's lifetime.
	Profile bool
}

type glfwWindow struct {
	win   *glfw.Window
	prof  interface{ Stop() }
	queue eventQueue
}

// New creates a window with a current OpenGL 3.3 core context. The
// calling thread must be locked to the OS thread for the lifetime of the
// window.
func New(width, height int, title string, opts *Options) (Window, error) {
	if opts == nil {
		opts = &Options{}
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	w := &glfwWindow{win: window}
	if opts.Profile {
		w.prof = profile.Start(profile.CPUProfile)
	}

	configureEvents(window, &w.queue)

	// paint once without waiting for the first expose
	w.queue.push(RedrawEvent{})

	return w, nil
}

func (g *glfwWindow) FramebufferSize() (int, int) {
	return g.win.GetFramebufferSize()
}

func (g *glfwWindow) Wait() []Event {
	for {
		if events := g.queue.drain(); len(events) > 0 {
			return events
		}

		if g.win.ShouldClose() {
			return []Event{CloseEvent{}}
		}

		glfw.WaitEvents()
	}
}

func (g *glfwWindow) SwapBuffers() error {
	g.win.SwapBuffers()
	return nil
}

func (g *glfwWindow) Terminate() {
	if g.prof != nil {
		g.prof.Stop()
	}

	g.win.Destroy()
	glfw.Terminate()
}

func configureEvents(window *glfw.Window, queue *eventQueue) {
	window.SetFramebufferSizeCallback(func(_win *glfw.Window, width int, height int) {
		queue.push(ResizeEvent{Width: width, Height: height})
	})

	window.SetRefreshCallback(func(_win *glfw.Window) {
		queue.push(RedrawEvent{})
	})

	window.SetCloseCallback(func(_win *glfw.Window) {
		queue.push(CloseEvent{})
	})
}
