package spritemesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MaxIndexedVertices is the largest vertex count a 16-bit triangle buffer
// can address.
const MaxIndexedVertices = math.MaxUint16 + 1

// Rect is the size of a sprite's pixel rectangle.
type Rect struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Sprite is the geometry of one sprite as the importer hands it over.
type Sprite struct {
	Name string `json:"name"`
	// Vertices are in sprite-local units, centred on the sprite rect.
	Vertices      []Vector2 `json:"vertices"`
	Triangles     []uint16  `json:"triangles"`
	PixelsPerUnit float64   `json:"pixels_per_unit"`
	Rect          Rect      `json:"rect"`
}

// Geometry is pixel-space sprite geometry, ready to override a sprite's mesh.
type Geometry struct {
	Vertices  []Vector2 `json:"vertices"`
	Triangles []uint16  `json:"triangles"`
}

// Validate checks that every triangle index addresses a vertex.
func (g *Geometry) Validate() error {
	if g == nil {
		return invalidInputf("nil geometry")
	}
	if len(g.Triangles)%3 != 0 {
		return invalidInputf("triangle index count %d is not a multiple of 3", len(g.Triangles))
	}
	for i, t := range g.Triangles {
		if int(t) >= len(g.Vertices) {
			return invalidInputf("triangle index %d at position %d out of range [0,%d)", t, i, len(g.Vertices))
		}
	}
	return nil
}

func (s *Sprite) Validate() error {
	if len(s.Vertices) == 0 {
		return invalidInputf("sprite %q has no vertices", s.Name)
	}
	if !(s.PixelsPerUnit > 0) || math.IsInf(s.PixelsPerUnit, 0) {
		return invalidInputf("sprite %q pixels per unit must be positive, got %g", s.Name, s.PixelsPerUnit)
	}
	if s.Rect.Width < 0 || s.Rect.Height < 0 {
		return invalidInputf("sprite %q has negative rect %gx%g", s.Name, s.Rect.Width, s.Rect.Height)
	}
	return nil
}

// pixelMatrix scales sprite units by pixels per unit and moves the origin
// from the rect centre to its corner.
func (s *Sprite) pixelMatrix() mgl64.Mat4 {
	return mgl64.Translate3D(s.Rect.Width/2, s.Rect.Height/2, 0).
		Mul4(mgl64.Scale3D(s.PixelsPerUnit, s.PixelsPerUnit, 1))
}

func (s *Sprite) localMatrix() mgl64.Mat4 {
	return mgl64.Scale3D(1/s.PixelsPerUnit, 1/s.PixelsPerUnit, 1).
		Mul4(mgl64.Translate3D(-s.Rect.Width/2, -s.Rect.Height/2, 0))
}

// ToPixelSpace returns the sprite vertices as pixel-space points on Z == 0.
func (s *Sprite) ToPixelSpace() []Point3d {
	m := s.pixelMatrix()
	points := ToPoints(s.Vertices)
	for i, p := range points {
		points[i] = m.Mul4x1(p.Vec4(1)).Vec3()
	}
	return points
}

// ToLocal maps pixel-space vertices back into sprite-local units.
func (s *Sprite) ToLocal(pixels []Vector2) []Vector2 {
	m := s.localMatrix()
	local := make([]Vector2, len(pixels))
	for i, v := range pixels {
		local[i] = Vector2From3d(m.Mul4x1(v.To3d().Vec4(1)).Vec3())
	}
	return local
}

// OverrideGeometry replaces the sprite's mesh with pixel-space geometry g.
func (s *Sprite) OverrideGeometry(g *Geometry) {
	s.Vertices = s.ToLocal(g.Vertices)
	s.Triangles = append([]uint16(nil), g.Triangles...)
}

// ClampPoint pins v inside [0,r.Width] x [0,r.Height].
func ClampPoint(v Vector2, r Rect) Vector2 {
	return Vector2{
		X: clamp(v.X, 0, r.Width),
		Y: clamp(v.Y, 0, r.Height),
	}
}

// ClampToRect clamps every vertex in place and returns vs.
func ClampToRect(vs []Vector2, r Rect) []Vector2 {
	for i := range vs {
		vs[i] = ClampPoint(vs[i], r)
	}
	return vs
}

// OptimizeSprite welds the sprite's pixel-space vertices and returns the
// reduced geometry. The sprite itself is not modified.
func OptimizeSprite(s *Sprite, cfg WeldConfig, clampToRect bool) (*Geometry, error) {
	if s == nil {
		return nil, invalidInputf("nil sprite")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	res, err := Weld(s.ToPixelSpace(), widenIndices(s.Triangles), cfg)
	if err != nil {
		return nil, err
	}

	tris, err := narrowIndices(res.Triangles, len(res.Points))
	if err != nil {
		return nil, err
	}

	vertices := ToVector2s(res.Points)
	if clampToRect {
		ClampToRect(vertices, s.Rect)
	}

	return &Geometry{Vertices: vertices, Triangles: tris}, nil
}

func widenIndices(tris []uint16) []int {
	wide := make([]int, len(tris))
	for i, t := range tris {
		wide[i] = int(t)
	}
	return wide
}

func narrowIndices(tris []int, vertexCount int) ([]uint16, error) {
	if vertexCount > MaxIndexedVertices {
		return nil, overflowf("%d vertices cannot be addressed by 16-bit indices", vertexCount)
	}
	narrow := make([]uint16, len(tris))
	for i, t := range tris {
		if t < 0 || t > math.MaxUint16 {
			return nil, overflowf("triangle index %d does not fit 16 bits", t)
		}
		narrow[i] = uint16(t)
	}
	return narrow, nil
}
