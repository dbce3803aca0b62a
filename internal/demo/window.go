package demo

import (
	"fmt"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowTitle returns the executable's base name for use as a window title.
// Both '/' and '\' count as separators so Windows-style paths work anywhere.
func WindowTitle(exePath string) string {
	i := strings.LastIndexAny(exePath, `/\`)
	return exePath[i+1:]
}

// initWindow initializes glfw and opens a window with a current GL context.
// On error glfw is left terminated.
func initWindow(title string) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, GLVersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, GLVersionMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(WindowWidth, WindowHeight, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}

// windowPresenter swaps the window's buffers at the end of every frame.
type windowPresenter struct {
	window *glfw.Window
}

func (p windowPresenter) Present() { p.window.SwapBuffers() }
