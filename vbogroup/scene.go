package vbogroup

// DefaultGroupName is used by AddGroup when no name is given.
const DefaultGroupName = "VBO"

// Scene owns the ordered list of groups of one editing session.
// Renderers read it by reference, so they always see the current state.
type Scene struct {
	groups []*Group
}

// NewScene returns an empty scene.
func NewScene() *Scene { return &Scene{} }

// NewDemoScene returns the starting scene of the visualizer:
// a "VBO 1" group holding a red vertex, followed by a second vertex
// which inherits its color.
func NewDemoScene() *Scene {
	s := NewScene()
	g := s.AddGroup("VBO 1")
	v := g.NewVertex()
	v.Color = Red
	g.Append(v)
	g.AddVertex(0, 0)
	return s
}

// Groups returns the groups, in drawing order.
// The slice is shared with the scene and must not be modified.
func (s *Scene) Groups() []*Group { return s.groups }

// Len returns the number of groups.
func (s *Scene) Len() int { return len(s.groups) }

// Group returns the group at index i, which must be valid.
func (s *Scene) Group(i int) *Group { return s.groups[i] }

// AddGroup creates an empty group at the end of the scene.
// An empty name is replaced by DefaultGroupName.
func (s *Scene) AddGroup(name string) *Group {
	if name == "" {
		name = DefaultGroupName
	}
	g := NewGroup(name)
	s.groups = append(s.groups, g)
	return g
}

// Push adds an existing group at the end of the scene.
func (s *Scene) Push(g *Group) { s.groups = append(s.groups, g) }

// RemoveGroup deletes the group at index i.
// An out of range index is ignored and false is returned.
func (s *Scene) RemoveGroup(i int) bool {
	if i < 0 || i >= len(s.groups) {
		return false
	}
	copy(s.groups[i:], s.groups[i+1:])
	s.groups[len(s.groups)-1] = nil // release the removed group
	s.groups = s.groups[:len(s.groups)-1]
	return true
}

// MoveGroupUp swaps the group at index i with the previous one,
// changing which one is drawn on top.
func (s *Scene) MoveGroupUp(i int) bool {
	if i <= 0 || i >= len(s.groups) {
		return false
	}
	s.groups[i-1], s.groups[i] = s.groups[i], s.groups[i-1]
	return true
}

// MoveGroupDown swaps the group at index i with the next one.
func (s *Scene) MoveGroupDown(i int) bool {
	if i < 0 || i >= len(s.groups)-1 {
		return false
	}
	s.groups[i], s.groups[i+1] = s.groups[i+1], s.groups[i]
	return true
}
