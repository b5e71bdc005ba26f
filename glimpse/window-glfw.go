//go:build !js

package glimpse

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
	"github.com/pkg/profile"
)

type glfwWindow struct {
	win   *glfw.Window
	prof  interface{ Stop() }
	input InputState
}

func NewWindow(width, height int, title string) (Window, error) {
	config, err := ConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("load window config: %w", err)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{
		win: window,

		// glfw does not report touches, drag with the mouse instead
		input: InputState{EmulateTouch: true},
	}

	switch config.Profile {
	case "cpu":
		w.prof = profile.Start(profile.CPUProfile, profile.NoShutdownHook)
	case "mem":
		w.prof = profile.Start(profile.MemProfile, profile.NoShutdownHook)
	}

	if w.prof != nil {
		slog.Info("Profiling enabled", slog.String("mode", config.Profile))
	}

	configureInput(window, &w.input)

	return w, nil
}

func (g *glfwWindow) GetSize() (uint32, uint32) {
	width, height := g.win.GetFramebufferSize()
	return uint32(width), uint32(height)
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) Terminate() {
	if g.prof != nil {
		g.prof.Stop()
	}

	g.win.Destroy()
	glfw.Terminate()
}

func (g *glfwWindow) Run(render func(input UpdateInputState) error) error {
	var updateInputState UpdateInputState = func() InputState {
		g.input.nextTick()
		glfw.PollEvents()
		return g.input.snapshot()
	}

	for !g.win.ShouldClose() {
		if err := render(updateInputState); err != nil {
			return err
		}
	}

	return nil
}

func configureInput(window *glfw.Window, input *InputState) {
	window.SetMouseButtonCallback(func(_win *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			input.mouseButton(MouseButton(btn), true)
		case glfw.Release:
			input.mouseButton(MouseButton(btn), false)
		}
	})

	window.SetCursorPosCallback(func(win *glfw.Window, xpos float64, ypos float64) {
		// report positions in framebuffer pixels, same as GetSize
		width, _ := win.GetSize()
		fbWidth, _ := win.GetFramebufferSize()

		scale := 1.0
		if width > 0 {
			scale = float64(fbWidth) / float64(width)
		}

		input.mouseMoved(float32(xpos*scale), float32(ypos*scale))
	})
}
