package polysandbox

import "github.com/hajimehoshi/ebiten/v2"

// --- Polygon ---

// NewPolygon creates an untextured polygon mesh from world-space points.
// Uses fan triangulation. The polygon is drawn with the shared white pixel;
// color comes from the node's Color field.
func NewPolygon(name string, points []Vec2) *Node {
	verts, inds := buildPolygonFan(points, nil, nil)
	return NewMesh(name, ensureWhitePixel(), verts, inds)
}

// SetPolygonPoints replaces the polygon's vertices, reusing its backing arrays
// when they are large enough.
func SetPolygonPoints(n *Node, points []Vec2) {
	n.Vertices, n.Indices = buildPolygonFan(points, n.Vertices, n.Indices)
}

// buildPolygonFan generates white vertices and indices for a fan-triangulated
// polygon: N vertices, 3*(N-2) indices.
func buildPolygonFan(points []Vec2, verts []ebiten.Vertex, inds []uint16) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return verts[:0], inds[:0]
	}

	verts = growVerts(verts, n)
	inds = growInds(inds, (n-2)*3)

	for i, p := range points {
		v := &verts[i]
		v.DstX = float32(p.X)
		v.DstY = float32(p.Y)
		// Map to the center of the white pixel.
		v.SrcX = 1.5
		v.SrcY = 1.5
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = 1, 1, 1, 1
	}

	// Fan triangulation: vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}
	return verts, inds
}

// growVerts resizes buf to n, reusing its backing array when possible.
func growVerts(buf []ebiten.Vertex, n int) []ebiten.Vertex {
	if cap(buf) < n {
		return make([]ebiten.Vertex, n)
	}
	return buf[:n]
}

func growInds(buf []uint16, n int) []uint16 {
	if cap(buf) < n {
		return make([]uint16, n)
	}
	return buf[:n]
}
