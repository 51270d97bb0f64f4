// Command opengl shows the reorderable list demo in a GLFW window.
//
//	go run ./example/opengl [-config lists.toml] [-v]
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/reorderable"
	"github.com/go-theft-auto/reorderable/backend/opengl"
	"github.com/go-theft-auto/reorderable/example/internal/demo"
)

const (
	windowWidth  = 480
	windowHeight = 720
	windowTitle  = "reorderable lists"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML list configuration")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if err := run(*configPath, *verbose); err != nil {
		log.Fatal(err)
	}
}

func run(configPath string, verbose bool) error {
	reorderable.SetVerbose(verbose)

	var opts []reorderable.Option
	if configPath != "" {
		cfg, err := reorderable.LoadListConfig(configPath)
		if err != nil {
			return err
		}
		opts = cfg.Options()
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	style := reorderable.DefaultStyle()
	style.CharHeight = 13
	style.CharWidth = 7
	ui := reorderable.New(renderer, reorderable.WithStyle(style))
	scene := demo.New(style, opts...)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()
		in := input.Update()

		w, h := window.GetFramebufferSize()
		ui.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		now := glfw.GetTime()
		ctx := ui.Begin(in, reorderable.Vec2{X: float32(w), Y: float32(h)}, float32(now-last))
		last = now
		ctx.SetCursorPos(12, 12)
		ctx.SetContentWidth(float32(w) - 24)
		scene.Draw(ctx)

		if err := ui.End(); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		input.EndFrame()
		window.SwapBuffers()
	}
	return nil
}
