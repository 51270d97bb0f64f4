// Command gen renders the list control in its main states, captures the
// framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/reorderable"
	"github.com/go-theft-auto/reorderable/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single capture.
type screenshot struct {
	name   string                         // filename without extension
	width  int                            // viewport width
	height int                            // viewport height
	draw   func(ctx *reorderable.Context) // list drawing function
	frames int                            // frames to render (0 = default 2)
	// input scripts the pointer and keys before frame i; nil leaves input idle.
	input func(i int, in *reorderable.InputState)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only the projection changes; the hidden window stays at 800x600,
	// which is larger than every screenshot.
	renderer.Resize(s.width, s.height)

	// Fresh GUI per screenshot so drag and menu state do not leak.
	ui := reorderable.New(renderer)
	input := reorderable.NewInputState()

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	for i := range frames {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if s.input != nil {
			s.input(i, input)
		}
		displaySize := reorderable.Vec2{X: float32(s.width), Y: float32(s.height)}
		ctx := ui.Begin(input, displaySize, 1.0/60.0)
		s.draw(ctx)
		if err := ui.End(); err != nil {
			return err
		}
		input.Reset()
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// Rows of a list drawn at (12, 12) with the default style.
func rowMid(i int) float32 { return 12 + 4 + 23*float32(i) + 11 }

const handleX = 12 + 10

// buildScreenshots returns every list state to capture.
func buildScreenshots() []screenshot {
	cars := []string{"Infernus", "Banshee", "Sultan", "Cheetah", "Turismo"}
	var empty []string
	tasks := []string{"Write tests", "Review", "Ship"}
	locked := []string{"Header", "Body", "Footer"}

	list := func(items *[]string, opts ...reorderable.Option) func(ctx *reorderable.Context) {
		a := reorderable.NewSliceAdaptor(items, reorderable.TextFieldRenderer)
		opts = append(opts, reorderable.WithWidth(370))
		return func(ctx *reorderable.Context) {
			ctx.SetCursorPos(12, 12)
			ctx.ReorderableList("list", a, opts...)
		}
	}

	return []screenshot{
		{
			name: "list", width: 400, height: 180,
			draw: list(&cars),
		},
		{
			name: "list_empty", width: 400, height: 90,
			draw: list(&empty),
		},
		{
			name: "list_fixed", width: 400, height: 120,
			draw: list(&locked, reorderable.WithListFlags(
				reorderable.DisableReordering|reorderable.HideAddButton|reorderable.HideRemoveButtons)),
		},
		{
			name: "list_drag", width: 400, height: 180, frames: 3,
			draw: list(&cars),
			input: func(i int, in *reorderable.InputState) {
				switch i {
				case 0:
					in.SetMousePos(handleX, rowMid(0))
					in.SetMouseButton(reorderable.MouseButtonLeft, true)
				default:
					in.SetMousePos(handleX, rowMid(2)+4)
				}
			},
		},
		{
			name: "list_context_menu", width: 400, height: 220, frames: 3,
			draw: list(&tasks),
			input: func(i int, in *reorderable.InputState) {
				in.SetMousePos(200, rowMid(1))
				in.SetMouseButton(reorderable.MouseButtonRight, i == 0)
				if i == 2 {
					in.SetMousePos(220, rowMid(1)+30)
				}
			},
		},
	}
}
