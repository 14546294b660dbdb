package polysandbox

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// tintVertices copies src into dst, multiplying each vertex color by tint.
// dst must be at least len(src) in length. The result is premultiplied.
func tintVertices(src, dst []ebiten.Vertex, tint Color) {
	cr := float32(tint.R)
	cg := float32(tint.G)
	cb := float32(tint.B)
	ca := float32(tint.A)

	for i := range src {
		s := &src[i]
		dst[i] = ebiten.Vertex{
			DstX:   s.DstX,
			DstY:   s.DstY,
			SrcX:   s.SrcX,
			SrcY:   s.SrcY,
			ColorR: s.ColorR * cr * ca,
			ColorG: s.ColorG * cg * ca,
			ColorB: s.ColorB * cb * ca,
			ColorA: s.ColorA * ca,
		}
	}
}

// ensureTransformedVerts grows the node's transformedVerts buffer to fit
// len(n.Vertices), using a high-water-mark strategy (never shrinks).
func ensureTransformedVerts(n *Node) []ebiten.Vertex {
	need := len(n.Vertices)
	if cap(n.transformedVerts) < need {
		n.transformedVerts = make([]ebiten.Vertex, need)
	}
	n.transformedVerts = n.transformedVerts[:need]
	return n.transformedVerts
}

// --- White pixel singleton ---

var whitePixel *ebiten.Image

// ensureWhitePixel lazily creates the shared 3x3 white source image and
// returns its 1x1 center, so sampling never bleeds past an edge.
func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(Color{1, 1, 1, 1}.RGBA())
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}
