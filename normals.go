package spritemesh

// fallbackNormal is used for points that no usable triangle touches.
var fallbackNormal = Point3d{0, 0, 1}

// faceNormal returns the unit normal of the triangle a, b, c. ok is false for
// degenerate triangles.
func faceNormal(a, b, c Point3d) (Point3d, bool) {
	u := b.Sub(a)
	v := c.Sub(b)
	n := u.Cross(v)
	l := n.Len()
	if l == 0 {
		return Point3d{}, false
	}
	return n.Mul(1 / l), true
}

// RecalculateNormals sets one normal per point by averaging the normals of
// the triangles using it.
func (m *Mesh) RecalculateNormals() {
	normals := make([]Point3d, len(m.Points))
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		n, ok := faceNormal(m.Points[a], m.Points[b], m.Points[c])
		if !ok {
			continue
		}
		normals[a] = normals[a].Add(n)
		normals[b] = normals[b].Add(n)
		normals[c] = normals[c].Add(n)
	}

	for i, n := range normals {
		l := n.Len()
		if l == 0 {
			normals[i] = fallbackNormal
			continue
		}
		normals[i] = n.Mul(1 / l)
	}
	m.Normals = normals
}
