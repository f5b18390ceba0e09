package spritemesh

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
)

const wireframePadding = 4

// RenderWireframe draws the triangles and vertices of g, scaled by scale,
// and writes the picture to w as PNG.
func RenderWireframe(w io.Writer, g *Geometry, r Rect, scale float64) error {
	if !(scale > 0) {
		return invalidInputf("wireframe scale must be positive, got %g", scale)
	}
	if err := g.Validate(); err != nil {
		return err
	}
	width := int(math.Ceil(r.Width*scale)) + 2*wireframePadding
	height := int(math.Ceil(r.Height*scale)) + 2*wireframePadding

	dc := gg.NewContext(width, height)
	defer dc.Close()

	project := func(v Vector2) (float64, float64) {
		return wireframePadding + v.X*scale, float64(height) - wireframePadding - v.Y*scale
	}

	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("wireframe background: %w", err)
	}

	dc.SetRGB(0.6, 0.6, 0.6)
	dc.SetLineWidth(1)
	dc.DrawRectangle(wireframePadding, wireframePadding, r.Width*scale, r.Height*scale)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("wireframe rect: %w", err)
	}

	dc.SetRGB(0.1, 0.3, 0.8)
	for i := 0; i < len(g.Triangles); i += 3 {
		x, y := project(g.Vertices[g.Triangles[i]])
		dc.MoveTo(x, y)
		x, y = project(g.Vertices[g.Triangles[i+1]])
		dc.LineTo(x, y)
		x, y = project(g.Vertices[g.Triangles[i+2]])
		dc.LineTo(x, y)
		dc.ClosePath()
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("wireframe edges: %w", err)
	}

	dc.SetRGB(0.8, 0.1, 0.1)
	for _, v := range g.Vertices {
		x, y := project(v)
		dc.DrawCircle(x, y, 2)
	}
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("wireframe vertices: %w", err)
	}

	return dc.EncodePNG(w)
}
