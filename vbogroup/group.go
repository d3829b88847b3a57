// Implements the editable vertex lists (VBOs) drawn by vbodraw.
// A Group only holds state: the ordered vertices and the draw mode.
// Its order is significant since it drives primitive assembly,
// and is only changed by the explicit Move operations.
package vbogroup

import (
	"fmt"
	"math"
)

// VertexID identifies a vertex inside its Group.
// Ids are strictly increasing and never reused, even after removal.
type VertexID uint64

// Vertex is a colored 2D point, in model units.
type Vertex struct {
	ID    VertexID
	X, Y  float64
	Color Color
}

// Group is an ordered list of vertices with a draw mode.
// The zero value is an empty, unnamed group drawn as Points.
type Group struct {
	Name string // display only

	mode   DrawMode
	verts  []Vertex
	nextID VertexID
}

// NewGroup returns an empty group drawn as Points.
func NewGroup(name string) *Group {
	return &Group{Name: name, mode: Points}
}

// Mode returns the current draw mode, which may be invalid
// if an invalid value was set.
func (g *Group) Mode() DrawMode { return g.mode }

// SetDrawMode changes the draw mode. Vertices are not touched.
// The value is not validated here: rendering refuses invalid modes.
func (g *Group) SetDrawMode(m DrawMode) { g.mode = m }

// Len returns the number of vertices.
func (g *Group) Len() int { return len(g.verts) }

// At returns the vertex at index i, which must be in [0, Len()).
func (g *Group) At(i int) Vertex { return g.verts[i] }

// Vertices returns a copy of the vertex list.
func (g *Group) Vertices() []Vertex { return append([]Vertex(nil), g.verts...) }

// IndexOf returns the current index of the vertex `id`, or -1.
func (g *Group) IndexOf(id VertexID) int {
	for i, v := range g.verts {
		if v.ID == id {
			return i
		}
	}
	return -1
}

// Label returns the display identifier of a vertex, such as "VBO 1::V3".
func (g *Group) Label(id VertexID) string {
	return fmt.Sprintf("%s::V%d", g.Name, id)
}

// NextColor returns the default color of the next appended vertex:
// the color of the last vertex, or black for an empty group.
func (g *Group) NextColor() Color {
	if len(g.verts) == 0 {
		return Black
	}
	return g.verts[len(g.verts)-1].Color
}

// NewVertex returns a vertex at the origin, with the default color,
// not yet added to the group.
func (g *Group) NewVertex() Vertex {
	return Vertex{Color: g.NextColor()}
}

// Append adds `v` at the end of the group, after assigning it a fresh id
// (any id already set in `v` is overwritten). The stored vertex is returned.
func (g *Group) Append(v Vertex) Vertex {
	v.ID = g.nextID
	g.nextID++
	g.verts = append(g.verts, v)
	return v
}

// AddVertex appends a vertex at (x, y) using the default color.
func (g *Group) AddVertex(x, y float64) Vertex {
	v := g.NewVertex()
	v.X, v.Y = x, y
	return g.Append(v)
}

func (g *Group) inRange(i int) bool { return 0 <= i && i < len(g.verts) }

// RemoveAt deletes the vertex at index i, shifting the following ones.
// An out of range index is ignored and false is returned.
func (g *Group) RemoveAt(i int) bool {
	if !g.inRange(i) {
		return false
	}
	copy(g.verts[i:], g.verts[i+1:])
	g.verts[len(g.verts)-1] = Vertex{}
	g.verts = g.verts[:len(g.verts)-1]
	return true
}

// MoveUp swaps the vertex at index i with its predecessor.
// It does nothing and returns false for the first vertex or an invalid index.
func (g *Group) MoveUp(i int) bool {
	if !g.inRange(i) || i == 0 {
		return false
	}
	g.verts[i-1], g.verts[i] = g.verts[i], g.verts[i-1]
	return true
}

// MoveDown swaps the vertex at index i with its successor.
// It does nothing and returns false for the last vertex (index Len()-1)
// or an invalid index.
func (g *Group) MoveDown(i int) bool {
	if !g.inRange(i) || i == len(g.verts)-1 {
		return false
	}
	g.verts[i], g.verts[i+1] = g.verts[i+1], g.verts[i]
	return true
}

// SetPosition moves the vertex at index i. Invalid indices are ignored.
func (g *Group) SetPosition(i int, x, y float64) bool {
	if !g.inRange(i) {
		return false
	}
	g.verts[i].X, g.verts[i].Y = x, y
	return true
}

// SetColor recolors the vertex at index i. Invalid indices are ignored.
func (g *Group) SetColor(i int, c Color) bool {
	if !g.inRange(i) {
		return false
	}
	g.verts[i].Color = c
	return true
}

// Bounds is a model space rectangle.
type Bounds struct{ MinX, MinY, MaxX, MaxY float64 }

// Contains reports whether (x, y) lies inside b, borders included.
func (b Bounds) Contains(x, y float64) bool {
	return b.MinX <= x && x <= b.MaxX && b.MinY <= y && y <= b.MaxY
}

// Extent returns the bounding box of all the vertices of `groups`.
// ok is false when there is no vertex at all.
func Extent(groups []*Group) (b Bounds, ok bool) {
	b = Bounds{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, v := range g.verts {
			b.MinX = math.Min(b.MinX, v.X)
			b.MinY = math.Min(b.MinY, v.Y)
			b.MaxX = math.Max(b.MaxX, v.X)
			b.MaxY = math.Max(b.MaxY, v.Y)
			ok = true
		}
	}
	if !ok {
		return Bounds{}, false
	}
	return b, true
}
