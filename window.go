package spincube

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type WindowState struct {
	// glfw
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string

	closeRequested bool
	destroyed      bool
	logger         Logger
}

// createWindowState opens a resizable window with a current OpenGL 4.1 core
// context. It must run on the main thread.
func createWindowState(windowWidth int, windowHeight int, windowTitle string, logger Logger) (*WindowState, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("could not start GLFW3: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("could not open window with GLFW3: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	s := &WindowState{
		windowGlfw:   win,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		windowTitle:  windowTitle,
		logger:       logger,
	}
	win.SetSizeCallback(func(w *glfw.Window, width, height int) {
		s.resize(width, height)
	})

	return s, nil
}

// resize caches the new viewport size; the renderer picks it up next frame.
func (s *WindowState) resize(width, height int) {
	s.WindowWidth = width
	s.WindowHeight = height
	s.logger.Infof("New viewport: (width: %d, height: %d)", width, height)
}

// RequestClose marks the window for closing at the end of the frame.
func (s *WindowState) RequestClose() {
	s.closeRequested = true
	if s.windowGlfw != nil {
		s.windowGlfw.SetShouldClose(true)
	}
}

func (s *WindowState) ShouldClose() bool {
	if s.closeRequested {
		return true
	}
	return s.windowGlfw != nil && s.windowGlfw.ShouldClose()
}

func (s *WindowState) swapBuffers() {
	if s.windowGlfw != nil {
		s.windowGlfw.SwapBuffers()
	}
}

func (s *WindowState) destroy() {
	s.destroyed = true
	if s.windowGlfw == nil {
		return
	}
	s.windowGlfw.Destroy()
	s.windowGlfw = nil
	glfw.Terminate()
}
