package spritemesh

import (
	"errors"
	"reflect"
	"testing"
)

func TestRecalculateNormals(t *testing.T) {
	testCases := []struct {
		name      string
		points    []Point3d
		triangles []int
		want      []Point3d
	}{
		{
			name:      "Counter clockwise",
			points:    []Point3d{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
			triangles: []int{0, 1, 2},
			want:      []Point3d{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
		},
		{
			name:      "Clockwise",
			points:    []Point3d{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}},
			triangles: []int{0, 1, 2},
			want:      []Point3d{{0, 0, -1}, {0, 0, -1}, {0, 0, -1}},
		},
		{
			name:      "Degenerate only",
			points:    []Point3d{{0, 0, 0}, {1, 0, 0}},
			triangles: []int{0, 0, 1},
			want:      []Point3d{{0, 0, 1}, {0, 0, 1}},
		},
		{
			name:      "Unused point",
			points:    []Point3d{{0, 0, 0}, {0, 2, 0}, {2, 0, 0}, {9, 9, 9}},
			triangles: []int{0, 1, 2},
			want:      []Point3d{{0, 0, -1}, {0, 0, -1}, {0, 0, -1}, {0, 0, 1}},
		},
		{
			name:      "Folded edge averages",
			points:    []Point3d{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
			triangles: []int{0, 1, 2, 1, 0, 3},
			want: []Point3d{
				{0, 0.70710678, 0.70710678},
				{0, 0.70710678, 0.70710678},
				{0, 0, 1},
				{0, 1, 0},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := &Mesh{Points: tc.points, Triangles: tc.triangles}
			m.RecalculateNormals()
			if !pointsAlmostEqual(m.Normals, tc.want) {
				t.Errorf("RecalculateNormals() = %v, want %v", m.Normals, tc.want)
			}
		})
	}
}

func TestMeshWeld(t *testing.T) {
	m := NewMesh()
	a := m.AddPoint(Point3d{0, 0, 0})
	b := m.AddPoint(Point3d{1, 0, 0})
	c := m.AddPoint(Point3d{1, 1, 0})
	d := m.AddPoint(Point3d{0, 0, 0})
	e := m.AddPoint(Point3d{1, 1, 0})
	f := m.AddPoint(Point3d{0, 1, 0})
	m.AddTriangle(a, b, c)
	m.AddTriangle(d, e, f)

	if m.TriangleCount() != 2 {
		t.Fatalf("TriangleCount() = %d, want 2", m.TriangleCount())
	}
	before := m.Copy()

	welded, err := m.Weld(WeldConfig{Threshold: 1e-6, CellSize: 1})
	if err != nil {
		t.Fatalf("Weld() error = %v", err)
	}
	if !reflect.DeepEqual(m, before) {
		t.Errorf("Weld() modified the source mesh")
	}

	wantPoints := []Point3d{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	if !pointsAlmostEqual(welded.Points, wantPoints) {
		t.Errorf("points = %v, want %v", welded.Points, wantPoints)
	}
	if want := []int{0, 1, 2, 0, 2, 3}; !reflect.DeepEqual(welded.Triangles, want) {
		t.Errorf("triangles = %v, want %v", welded.Triangles, want)
	}
	if len(welded.Normals) != len(welded.Points) {
		t.Errorf("got %d normals for %d points", len(welded.Normals), len(welded.Points))
	}
	if welded.DegenerateCount() != 0 {
		t.Errorf("DegenerateCount() = %d, want 0", welded.DegenerateCount())
	}
}

func TestMeshWeldDegenerate(t *testing.T) {
	m := &Mesh{
		Points:    []Point3d{{0, 0, 0}, {0.001, 0, 0}, {1, 1, 0}},
		Triangles: []int{0, 1, 2},
	}
	welded, err := m.Weld(WeldConfig{Threshold: 0.01, CellSize: 10})
	if err != nil {
		t.Fatalf("Weld() error = %v", err)
	}
	if welded.DegenerateCount() != 1 {
		t.Errorf("DegenerateCount() = %d, want 1", welded.DegenerateCount())
	}

	if _, err := NewMesh().Weld(DefaultWeldConfig()); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Weld() of an empty mesh error = %v, want ErrInvalidInput", err)
	}
}

func TestMeshCopy(t *testing.T) {
	m := &Mesh{Points: []Point3d{{1, 2, 3}}, Triangles: []int{0, 0, 0}}
	m.RecalculateNormals()
	c := m.Copy()
	c.Points[0][0] = 9
	c.Triangles[0] = 7
	c.Normals[0][2] = 5
	if m.Points[0][0] != 1 || m.Triangles[0] != 0 || m.Normals[0][2] != 1 {
		t.Errorf("Copy() shares buffers with the original")
	}

	b, ok := m.Bounds()
	if !ok || b.Min != (Point3d{1, 2, 3}) || b.Max != (Point3d{1, 2, 3}) {
		t.Errorf("Bounds() = %v, %v", b, ok)
	}
}
