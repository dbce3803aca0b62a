package demo

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const defaultTitle = "triangle"

// Main runs the demo and returns the process exit status: 0 after a normal
// quit, 1 if any part of setup failed.
func Main(args []string) int {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := RunDesktop(args, log); err != nil {
		log.Error("setup failed", "err", err)
		return 1
	}
	return 0
}

// RunDesktop opens the window, builds the GL resources and runs the frame
// loop until quit. Everything acquired is released before it returns, on
// success and on every error path.
func RunDesktop(args []string, log *slog.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	title := defaultTitle
	if len(args) > 0 {
		if t := WindowTitle(args[0]); t != "" {
			title = t
		}
	}

	window, err := initWindow(title)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()
	log.Info("window created", "title", title, "width", WindowWidth, "height", WindowHeight,
		"gl", fmt.Sprintf("%d.%d core", GLVersionMajor, GLVersionMinor))

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info("gl loaded", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	prog, posVBO, colVBO, vao := rend.Handles()
	log.Info("assets loaded", "program", prog, "positionVBO", posVBO, "colorVBO", colVBO, "vao", vao)

	input := NewInput(window)
	defer input.Close()

	status := NewConsoleStatus(os.Stdout)
	defer status.Close()

	loop := NewLoop(input, rend, windowPresenter{window: window}, status, log)
	frames := loop.Run()

	// End the status line before the shutdown log.
	status.Close()
	log.Info("cleaning up", "frames", frames, "simTime", loop.Sim.Time)
	return nil
}
