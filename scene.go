package polysandbox

import "github.com/hajimehoshi/ebiten/v2"

const defaultCommandCap = 64

// renderCommand is a single DrawTriangles call emitted during traversal.
type renderCommand struct {
	verts []ebiten.Vertex
	inds  []uint16
	image *ebiten.Image
}

// Scene owns the node tree the window backend draws. Polygons are
// submitted in tree order, so later children paint over earlier ones.
type Scene struct {
	// ClearColor fills the target before drawing. A zero alpha skips the fill.
	ClearColor Color

	root     *Node
	commands []renderCommand
	triOp    ebiten.DrawTrianglesOptions
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	s := &Scene{
		root:     NewContainer("root"),
		commands: make([]renderCommand, 0, defaultCommandCap),
	}
	// The fan of a concave polygon overlaps itself, but its signed
	// triangles sum to the polygon's winding, so nonzero fills it exactly.
	s.triOp.FillRule = ebiten.FillRuleNonZero
	return s
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Draw traverses the tree, emits render commands and submits them to screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.RGBA())
	}
	s.commands = s.commands[:0]
	s.traverse(s.root, 1)
	for i := range s.commands {
		s.submitMesh(screen, &s.commands[i])
	}
}

// traverse walks the tree depth-first, tinting mesh vertices and emitting a
// command for every visible, non-empty mesh.
func (s *Scene) traverse(n *Node, parentAlpha float64) {
	if !n.Visible {
		return
	}
	alpha := parentAlpha * n.Alpha

	if n.Type == NodeTypeMesh && len(n.Vertices) > 0 && len(n.Indices) > 0 {
		tint := Color{n.Color.R, n.Color.G, n.Color.B, n.Color.A * alpha}
		dst := ensureTransformedVerts(n)
		tintVertices(n.Vertices, dst, tint)
		s.commands = append(s.commands, renderCommand{
			verts: dst,
			inds:  n.Indices,
			image: n.MeshImage,
		})
	}

	for _, child := range n.children {
		s.traverse(child, alpha)
	}
}

// submitMesh draws a mesh command using DrawTriangles.
func (s *Scene) submitMesh(target *ebiten.Image, cmd *renderCommand) {
	if cmd.image == nil || len(cmd.verts) == 0 || len(cmd.inds) == 0 {
		return
	}
	target.DrawTriangles(cmd.verts, cmd.inds, cmd.image, &s.triOp)
}
