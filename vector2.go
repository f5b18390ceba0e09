package spritemesh

// Vector2 is a sprite vertex, either in sprite-local units or in pixels.
type Vector2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// To3d lifts v onto the Z == 0 plane.
func (v Vector2) To3d() Point3d {
	return Point3d{v.X, v.Y, 0}
}

// Vector2From3d drops the Z component.
func Vector2From3d(p Point3d) Vector2 {
	return Vector2{X: p.X(), Y: p.Y()}
}

func ToPoints(vs []Vector2) []Point3d {
	points := make([]Point3d, len(vs))
	for i, v := range vs {
		points[i] = v.To3d()
	}
	return points
}

func ToVector2s(points []Point3d) []Vector2 {
	vs := make([]Vector2, len(points))
	for i, p := range points {
		vs[i] = Vector2From3d(p)
	}
	return vs
}
