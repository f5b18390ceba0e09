package spritemesh

// Mesh is an indexed triangle mesh. Every three entries of Triangles form
// one triangle referencing Points.
type Mesh struct {
	Points    []Point3d
	Triangles []int
	// Normals is filled by RecalculateNormals, one per point.
	Normals []Point3d
}

func NewMesh() *Mesh {
	return &Mesh{
		Points:    make([]Point3d, 0, 100),
		Triangles: make([]int, 0, 300),
	}
}

// AddPoint appends p and returns its index.
func (m *Mesh) AddPoint(p Point3d) int {
	m.Points = append(m.Points, p)
	return len(m.Points) - 1
}

func (m *Mesh) AddTriangle(a, b, c int) {
	m.Triangles = append(m.Triangles, a, b, c)
}

func (m *Mesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

// Triangle returns the point indices of triangle i.
func (m *Mesh) Triangle(i int) (int, int, int) {
	return m.Triangles[i*3], m.Triangles[i*3+1], m.Triangles[i*3+2]
}

// DegenerateCount returns how many triangles reference the same point more
// than once.
func (m *Mesh) DegenerateCount() int {
	n := 0
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		if a == b || b == c || a == c {
			n++
		}
	}
	return n
}

func (m *Mesh) Copy() *Mesh {
	c := &Mesh{
		Points:    make([]Point3d, len(m.Points)),
		Triangles: make([]int, len(m.Triangles)),
	}
	copy(c.Points, m.Points)
	copy(c.Triangles, m.Triangles)
	if m.Normals != nil {
		c.Normals = make([]Point3d, len(m.Normals))
		copy(c.Normals, m.Normals)
	}
	return c
}

// Bounds returns the bounding box of the mesh points.
func (m *Mesh) Bounds() (Bounds, bool) {
	return BoundsOf(m.Points)
}

// Weld returns a new mesh with coincident points merged and normals
// recomputed. m is left untouched.
func (m *Mesh) Weld(cfg WeldConfig) (*Mesh, error) {
	res, err := Weld(m.Points, m.Triangles, cfg)
	if err != nil {
		return nil, err
	}

	welded := &Mesh{
		Points:    res.Points,
		Triangles: res.Triangles,
	}
	welded.RecalculateNormals()
	return welded, nil
}
