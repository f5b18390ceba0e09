package spritemesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

func LoadMeshFromPLYFile(fileName string) (*Mesh, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open PLY file %s: %w", fileName, err)
	}
	defer file.Close()

	m, err := ReadPLY(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing PLY file %s: %w", fileName, err)
	}
	return m, nil
}

// ReadPLY reads an ASCII PLY mesh. Only vertex positions and face indices
// are kept; polygons are fan triangulated.
func ReadPLY(reader io.Reader) (*Mesh, error) {
	m := NewMesh()
	scanner := bufio.NewScanner(reader)

	var vertexCount, faceCount int
	sawMagic, sawEnd := false, false

header:
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "ply":
			sawMagic = true
		case "format":
			if len(parts) < 2 || parts[1] != "ascii" {
				return nil, fmt.Errorf("unsupported PLY format %q", strings.Join(parts[1:], " "))
			}
		case "element":
			if len(parts) != 3 {
				return nil, fmt.Errorf("malformed element line %q", scanner.Text())
			}
			n, err := strconv.Atoi(parts[2])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("bad %s count %q", parts[1], parts[2])
			}
			switch parts[1] {
			case "vertex":
				vertexCount = n
			case "face":
				faceCount = n
			}
		case "end_header":
			sawEnd = true
			break header
		}
	}
	if !sawMagic || !sawEnd {
		return nil, fmt.Errorf("missing PLY header")
	}

	for i := 0; i < vertexCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected end of file while reading vertices")
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) < 3 {
			return nil, fmt.Errorf("invalid vertex data on line %d", i)
		}
		var p Point3d
		for axis := 0; axis < 3; axis++ {
			v, err := strconv.ParseFloat(parts[axis], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid vertex %d: %w", i, err)
			}
			p[axis] = v
		}
		m.AddPoint(p)
	}

	for i := 0; i < faceCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected end of file while reading faces")
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			return nil, fmt.Errorf("empty face on line %d", i)
		}
		numFaceVerts, err := strconv.Atoi(parts[0])
		if err != nil || numFaceVerts < 3 || len(parts) < numFaceVerts+1 {
			return nil, fmt.Errorf("invalid face data on line %d", i)
		}

		idx := make([]int, numFaceVerts)
		for j := range idx {
			v, err := strconv.Atoi(parts[j+1])
			if err != nil || v < 0 || v >= vertexCount {
				return nil, fmt.Errorf("invalid vertex index %q in face %d", parts[j+1], i)
			}
			idx[j] = v
		}
		for j := 2; j < numFaceVerts; j++ {
			m.AddTriangle(idx[0], idx[j-1], idx[j])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from PLY source: %w", err)
	}
	return m, nil
}

// WritePLY writes m as an ASCII PLY file. Normals are written when present.
func WritePLY(w io.Writer, m *Mesh) error {
	writer := bufio.NewWriter(w)
	withNormals := len(m.Normals) == len(m.Points) && len(m.Normals) > 0

	fmt.Fprintln(writer, "ply")
	fmt.Fprintln(writer, "format ascii 1.0")
	fmt.Fprintf(writer, "element vertex %d\n", len(m.Points))
	fmt.Fprintln(writer, "property double x")
	fmt.Fprintln(writer, "property double y")
	fmt.Fprintln(writer, "property double z")
	if withNormals {
		fmt.Fprintln(writer, "property double nx")
		fmt.Fprintln(writer, "property double ny")
		fmt.Fprintln(writer, "property double nz")
	}
	fmt.Fprintf(writer, "element face %d\n", m.TriangleCount())
	fmt.Fprintln(writer, "property list uchar int vertex_indices")
	fmt.Fprintln(writer, "end_header")

	for i, p := range m.Points {
		line := formatFloats(p[:]...)
		if withNormals {
			line += " " + formatFloats(m.Normals[i][:]...)
		}
		fmt.Fprintln(writer, line)
	}
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		fmt.Fprintf(writer, "3 %d %d %d\n", a, b, c)
	}

	return writer.Flush()
}

func SaveMeshToPLYFile(fileName string, m *Mesh) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create PLY file %s: %w", fileName, err)
	}
	defer file.Close()

	if err := WritePLY(file, m); err != nil {
		return fmt.Errorf("error writing PLY file %s: %w", fileName, err)
	}
	return file.Close()
}

func formatFloats(vs ...float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}
