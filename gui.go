package reorderable

// Renderer draws the output of a frame.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI drives a Context frame by frame against a Renderer.
type GUI struct {
	renderer    Renderer
	style       Style
	displaySize Vec2
	ctx         *Context
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// WithDisplaySize sets the display size used when Begin is given a zero size.
func WithDisplaySize(width, height float32) GUIOption {
	return func(g *GUI) { g.displaySize = Vec2{X: width, Y: height} }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	if renderer == nil {
		panic("reorderable: New with nil Renderer")
	}
	g := &GUI{
		renderer: renderer,
		style:    DefaultStyle(),
		ctx:      NewContext(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Begin starts a new frame and returns the GUI context.
// Call this at the start of each frame before drawing any UI.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	if displaySize == (Vec2{}) {
		displaySize = g.displaySize
	}
	g.displaySize = displaySize

	ctx := g.ctx
	ctx.Input = input
	ctx.SetStyle(g.style)
	ctx.FontTextureID = g.renderer.FontTextureID()
	ctx.Reset(displaySize, deltaTime)
	return ctx
}

// End finishes the frame: it runs popups, renders the main draw list and
// then the foreground list on top, and returns both lists to the pool.
func (g *GUI) End() error {
	ctx := g.ctx
	if ctx.DrawList == nil {
		return nil
	}
	ctx.EndFrame()

	ctx.DrawList.Finalize()
	err := g.renderer.Render(ctx.DrawList)
	if err == nil && ctx.ForegroundDrawList != nil {
		ctx.ForegroundDrawList.Finalize()
		if len(ctx.ForegroundDrawList.CmdBuffer) > 0 {
			err = g.renderer.Render(ctx.ForegroundDrawList)
		}
	}

	ReleaseDrawList(ctx.DrawList)
	ctx.DrawList = nil
	if ctx.ForegroundDrawList != nil {
		ReleaseDrawList(ctx.ForegroundDrawList)
		ctx.ForegroundDrawList = nil
	}
	return err
}

// Context returns the GUI context. Drawing is only valid between Begin and End.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Style returns the current GUI style.
func (g *GUI) Style() Style {
	return g.style
}

// SetStyle sets the GUI style from the next frame on.
func (g *GUI) SetStyle(style Style) {
	g.style = style
}

// Resize notifies the GUI of a display size change.
func (g *GUI) Resize(width, height int) {
	g.displaySize = Vec2{X: float32(width), Y: float32(height)}
	g.renderer.Resize(width, height)
}
