// Package terminal renders reorderable draw lists into a tcell screen and
// turns tcell events into reorderable input.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/reorderable"
)

// fontTextureID marks textured draw commands; the atlas itself is never
// sampled since glyphs are decoded from texture coordinates.
const fontTextureID = 1

// Renderer rasterizes draw lists onto terminal cells. Filled primitives
// paint the background of every cell whose center they cover. Primitives
// thinner than half a cell become box-drawing lines, and text quads become
// one glyph per cell.
type Renderer struct {
	screen       tcell.Screen
	cellW, cellH float32
}

// NewRenderer creates a renderer for screen where one cell spans
// cellW x cellH GUI units.
func NewRenderer(screen tcell.Screen, cellW, cellH float32) *Renderer {
	if cellW <= 0 {
		cellW = DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = DefaultCellHeight
	}
	return &Renderer{screen: screen, cellW: cellW, cellH: cellH}
}

// FontTextureID implements reorderable.Renderer.
func (r *Renderer) FontTextureID() uint32 {
	return fontTextureID
}

// Resize implements reorderable.Renderer. The screen tracks its own size.
func (r *Renderer) Resize(int, int) {}

// DisplaySize returns the screen size in GUI units.
func (r *Renderer) DisplaySize() reorderable.Vec2 {
	w, h := r.screen.Size()
	return reorderable.Vec2{X: float32(w) * r.cellW, Y: float32(h) * r.cellH}
}

// Render draws a finalized draw list. It does not clear or show the screen.
func (r *Renderer) Render(dl *reorderable.DrawList) error {
	if dl == nil {
		return nil
	}
	for _, cmd := range dl.CmdBuffer {
		end := cmd.IndexOffset + cmd.ElemCount
		if int(end) > len(dl.IdxBuffer) {
			end = uint32(len(dl.IdxBuffer))
		}
		idx := dl.IdxBuffer[cmd.IndexOffset:end]
		for t := 0; t+2 < len(idx); t += 3 {
			tri := [3]reorderable.Vertex{
				dl.VtxBuffer[cmd.VertexOffset+uint32(idx[t])],
				dl.VtxBuffer[cmd.VertexOffset+uint32(idx[t+1])],
				dl.VtxBuffer[cmd.VertexOffset+uint32(idx[t+2])],
			}
			box, uv := bounds(tri)
			if cmd.TextureID != 0 {
				r.glyph(box, uv, cmd.ClipRect, tri[0].Color)
				continue
			}
			box = intersect(box, cmd.ClipRect)
			if box[2] <= box[0] || box[3] <= box[1] {
				continue
			}
			r.fill(box, tri[0].Color)
		}
	}
	return nil
}

// bounds returns the bounding box (x0, y0, x1, y1) of a triangle and its
// smallest texture coordinates.
func bounds(tri [3]reorderable.Vertex) (box [4]float32, uv [2]float32) {
	box = [4]float32{tri[0].Pos[0], tri[0].Pos[1], tri[0].Pos[0], tri[0].Pos[1]}
	uv = tri[0].TexCoord
	for _, v := range tri[1:] {
		box[0] = min(box[0], v.Pos[0])
		box[1] = min(box[1], v.Pos[1])
		box[2] = max(box[2], v.Pos[0])
		box[3] = max(box[3], v.Pos[1])
		uv[0] = min(uv[0], v.TexCoord[0])
		uv[1] = min(uv[1], v.TexCoord[1])
	}
	return box, uv
}

func intersect(a, b [4]float32) [4]float32 {
	return [4]float32{max(a[0], b[0]), max(a[1], b[1]), min(a[2], b[2]), min(a[3], b[3])}
}

// centers returns the cells [first, last) whose centers lie in [lo, hi).
func centers(lo, hi, cell float32) (first, last int) {
	first = int(math.Ceil(float64(lo/cell - 0.5)))
	last = int(math.Ceil(float64(hi/cell - 0.5)))
	return first, last
}

func cellColor(c uint32) tcell.Color {
	red, green, blue, _ := reorderable.UnpackRGBA(c)
	return tcell.NewRGBColor(int32(red), int32(green), int32(blue))
}

func (r *Renderer) inside(x, y int) bool {
	w, h := r.screen.Size()
	return x >= 0 && y >= 0 && x < w && y < h
}

func (r *Renderer) background(x, y int) tcell.Color {
	_, _, st, _ := r.screen.GetContent(x, y)
	_, bg, _ := st.Decompose()
	return bg
}

func (r *Renderer) fill(box [4]float32, color uint32) {
	c := cellColor(color)
	x0, x1 := centers(box[0], box[2], r.cellW)
	y0, y1 := centers(box[1], box[3], r.cellH)

	switch {
	case y0 < y1 && x0 < x1:
		style := tcell.StyleDefault.Background(c)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if r.inside(x, y) {
					r.screen.SetContent(x, y, ' ', nil, style)
				}
			}
		}
	case x0 < x1:
		y := int((box[1] + box[3]) * 0.5 / r.cellH)
		for x := x0; x < x1; x++ {
			r.line(x, y, '─', c)
		}
	case y0 < y1:
		x := int((box[0] + box[2]) * 0.5 / r.cellW)
		for y := y0; y < y1; y++ {
			r.line(x, y, '│', c)
		}
	}
}

// line draws a box-drawing rune over an empty cell. Over text it reverses
// the cell instead, which is how the text cursor shows up.
func (r *Renderer) line(x, y int, ch rune, c tcell.Color) {
	if !r.inside(x, y) {
		return
	}
	mainc, comb, st, _ := r.screen.GetContent(x, y)
	if mainc != ' ' && mainc != 0 && mainc != '─' && mainc != '│' {
		r.screen.SetContent(x, y, mainc, comb, st.Reverse(true))
		return
	}
	_, bg, _ := st.Decompose()
	r.screen.SetContent(x, y, ch, nil, tcell.StyleDefault.Foreground(c).Background(bg))
}

func (r *Renderer) glyph(box [4]float32, uv [2]float32, clip [4]float32, color uint32) {
	// The glyph belongs to the cell holding the quad's top-left corner,
	// nudged inward so exact cell boundaries round the right way.
	px, py := box[0]+r.cellW*0.25, box[1]+r.cellH*0.25
	if px < clip[0] || py < clip[1] || px >= clip[2] || py >= clip[3] {
		return
	}
	x, y := int(px/r.cellW), int(py/r.cellH)
	if !r.inside(x, y) {
		return
	}
	ch := reorderable.GlyphAt(uv[0], uv[1])
	if ch == ' ' {
		return
	}
	style := tcell.StyleDefault.Foreground(cellColor(color)).Background(r.background(x, y))
	r.screen.SetContent(x, y, ch, nil, style)
}
