package spritemesh

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	whiteOnce sync.Once
	whiteSub  *ebiten.Image
)

func whiteSubImage() *ebiten.Image {
	whiteOnce.Do(func() {
		whiteImage := ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSub
}

// DrawOptions places pixel-space sprite geometry on screen.
type DrawOptions struct {
	X, Y  float32
	Scale float32
	// Height is the sprite rect height; sprite Y grows upwards, screen Y
	// grows downwards.
	Height  float32
	Fill    color.RGBA
	Outline color.RGBA
}

func (op *DrawOptions) project(v Vector2) (float32, float32) {
	scale := op.Scale
	if scale == 0 {
		scale = 1
	}
	return op.X + float32(v.X)*scale, op.Y + (op.Height-float32(v.Y))*scale
}

// AppendTriangles appends g to a DrawTriangles batch. The batch shares one
// 16-bit index space, so it fails once the batch would hold more vertices
// than a uint16 can address.
func AppendTriangles(vertices []ebiten.Vertex, indices []uint16, g *Geometry, op *DrawOptions) ([]ebiten.Vertex, []uint16, error) {
	if err := g.Validate(); err != nil {
		return vertices, indices, err
	}
	if len(vertices)+len(g.Vertices) > MaxIndexedVertices {
		return vertices, indices, overflowf("batch of %d vertices cannot be addressed by 16-bit indices", len(vertices)+len(g.Vertices))
	}

	cr := float32(op.Fill.R) / 255.0
	cg := float32(op.Fill.G) / 255.0
	cb := float32(op.Fill.B) / 255.0
	ca := float32(op.Fill.A) / 255.0

	base := uint16(len(vertices))
	for _, v := range g.Vertices {
		x, y := op.project(v)
		vertices = append(vertices, ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	for _, t := range g.Triangles {
		indices = append(indices, base+t)
	}
	return vertices, indices, nil
}

// DrawGeometry fills g and outlines every triangle edge.
func DrawGeometry(screen *ebiten.Image, g *Geometry, op *DrawOptions) error {
	vertices, indices, err := AppendTriangles(nil, nil, g, op)
	if err != nil {
		return err
	}
	if len(indices) > 0 {
		screen.DrawTriangles(vertices, indices, whiteSubImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}

	if op.Outline.A == 0 {
		return nil
	}
	for i := 0; i < len(g.Triangles); i += 3 {
		tri := g.Triangles[i : i+3]
		for j := range tri {
			x1, y1 := op.project(g.Vertices[tri[j]])
			x2, y2 := op.project(g.Vertices[tri[(j+1)%3]])
			DrawLine(screen, x1, y1, x2, y2, op.Outline)
		}
	}
	return nil
}
