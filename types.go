package reorderable

import "cmp"

// Vec2 is a position or size in GUI units.
type Vec2 struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle; (X, Y) is the top-left corner.
type Rect struct {
	X, Y float32
	W, H float32
}

// Contains reports whether p lies inside r. Zero-sized rectangles contain
// nothing.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func (r Rect) Bottom() float32 { return r.Y + r.H }

func (r Rect) Right() float32 { return r.X + r.W }

func (r Rect) MidY() float32 { return r.Y + r.H*0.5 }

// Inset shrinks r by the given margins, never below zero size.
func (r Rect) Inset(left, top, right, bottom float32) Rect {
	return Rect{
		X: r.X + left,
		Y: r.Y + top,
		W: max(0, r.W-left-right),
		H: max(0, r.H-top-bottom),
	}
}

// Vertex is one draw list vertex. The field order is the attribute layout
// the OpenGL backend binds.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32 // packed 0xAABBGGRR
}

// DrawCmd is a run of indices sharing one texture and clip rectangle.
type DrawCmd struct {
	ElemCount    uint32     // indices in this command
	ClipRect     [4]float32 // x1, y1, x2, y2
	TextureID    uint32     // 0 draws untextured
	VertexOffset uint32
	IndexOffset  uint32
}

// Colors are packed as 0xAABBGGRR.
const (
	ColorWhite uint32 = 0xFFFFFFFF
	ColorCyan  uint32 = 0xFFFFFF00
	ColorGray  uint32 = 0xFF808080
)

// RGBA packs 8-bit components into a color.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA splits a packed color into its components.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

func clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
