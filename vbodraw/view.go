package vbodraw

import "github.com/benoitkugler/vbodraw/vbogroup"

// View binds a scene to the surface it is displayed on.
// The surface is acquired once and reused by every Redraw.
type View struct {
	Scene    *vbogroup.Scene
	Surface  Surface
	Renderer Renderer

	last Stats
}

// NewView returns a view drawing `scene` on `s` with `r`.
func NewView(scene *vbogroup.Scene, s Surface, r Renderer) *View {
	return &View{Scene: scene, Surface: s, Renderer: r}
}

// Redraw renders the current state of the scene from scratch.
// It should be called after every change of the scene or
// resize of the surface.
func (v *View) Redraw() error {
	stats, err := v.Renderer.Render(v.Scene.Groups(), v.Surface)
	v.last = stats
	return err
}

// LastStats returns the statistics of the last Redraw.
func (v *View) LastStats() Stats { return v.last }
