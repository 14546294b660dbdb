package polysandbox

import "github.com/hajimehoshi/ebiten/v2"

// NodeType distinguishes scene graph nodes.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // groups children, draws nothing
	NodeTypeMesh                      // draws Vertices/Indices with DrawTriangles
)

// nodeIDCounter is a plain counter; nodes are only created on the loop goroutine.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is an element of the window backend's scene graph. A single flat
// struct serves containers and meshes.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Visibility
	Alpha   float64
	Visible bool

	// Color tints every vertex. Polygons carry white vertices, so it is the
	// fill color.
	Color Color

	// UserData is free for the owner; EbitenBackend stores the ColorTag.
	UserData any

	// Mesh fields (NodeTypeMesh). Vertex positions are in world space.
	Vertices         []ebiten.Vertex
	Indices          []uint16
	MeshImage        *ebiten.Image
	transformedVerts []ebiten.Vertex // tinted copy rebuilt each draw
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Alpha = 1
	n.Color = Color{1, 1, 1, 1}
	n.Visible = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewMesh creates a mesh node that uses DrawTriangles for rendering.
func NewMesh(name string, img *ebiten.Image, vertices []ebiten.Vertex, indices []uint16) *Node {
	n := &Node{
		Name:      name,
		Type:      NodeTypeMesh,
		MeshImage: img,
		Vertices:  vertices,
		Indices:   indices,
	}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("polysandbox: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("polysandbox: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("polysandbox: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
