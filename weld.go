package spritemesh

import "math"

// WeldConfig controls vertex welding.
type WeldConfig struct {
	// Threshold is compared against the squared distance between points.
	Threshold float64 `json:"threshold"`
	// CellSize is the edge length of the cubic buckets used to limit
	// comparisons. Only points in the same bucket are ever merged, so
	// Threshold should be small relative to CellSize.
	CellSize float64 `json:"cell_size"`
}

// DefaultWeldConfig matches the values the sprite importer has always used.
func DefaultWeldConfig() WeldConfig {
	return WeldConfig{
		Threshold: 1000,
		CellSize:  1000,
	}
}

func (c WeldConfig) Validate() error {
	if !(c.CellSize > 0) {
		return invalidInputf("cell size must be positive, got %g", c.CellSize)
	}
	if math.IsNaN(c.Threshold) || c.Threshold < 0 {
		return invalidInputf("threshold must not be negative, got %g", c.Threshold)
	}
	return nil
}

// WeldResult is the output of Weld.
type WeldResult struct {
	Points    []Point3d
	Triangles []int
	// Remap maps every input point index to its index in Points.
	Remap []int
	// Dims is the size of the bucket grid on each axis.
	Dims [3]int
}

// Merged returns how many input points were folded into an earlier one.
func (r *WeldResult) Merged() int {
	return len(r.Remap) - len(r.Points)
}

// Weld merges points that lie within the squared distance cfg.Threshold of
// an already kept point in the same grid cell, and rewrites triangles to
// reference the surviving points.
//
// Points are visited in their original order and a point merges into the
// first kept point of its cell that is close enough, not the nearest one,
// so the result is fully determined by the input order. Kept points retain
// their relative order. The triangle buffer keeps its length; welding may
// leave degenerate triangles behind.
func Weld(points []Point3d, triangles []int, cfg WeldConfig) (*WeldResult, error) {
	if err := validateWeldInput(points, triangles, cfg); err != nil {
		return nil, err
	}

	bounds, _ := BoundsOf(points)
	grid, err := newBucketGrid(bounds, cfg.CellSize)
	if err != nil {
		return nil, err
	}

	newPoints := make([]Point3d, len(points))
	remap := make([]int, len(points))
	newSize := 0

	for i, p := range points {
		cell := grid.cellOf(p)
		if j, ok := grid.find(cell, p, newPoints, cfg.Threshold); ok {
			remap[i] = j
			continue
		}

		newPoints[newSize] = p
		grid.add(cell, newSize)
		remap[i] = newSize
		newSize++
	}

	newTris := make([]int, len(triangles))
	for i, t := range triangles {
		newTris[i] = remap[t]
	}

	Logger().Debug("weld finished",
		"points", len(points),
		"kept", newSize,
		"grid", grid.dims,
		"cells", grid.occupied())

	return &WeldResult{
		Points:    newPoints[:newSize:newSize],
		Triangles: newTris,
		Remap:     remap,
		Dims:      grid.dims,
	}, nil
}

func validateWeldInput(points []Point3d, triangles []int, cfg WeldConfig) error {
	if len(points) == 0 {
		return invalidInputf("no points to weld")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	for i, p := range points {
		if !isFinitePoint(p) {
			return invalidInputf("point %d is not finite: %v", i, p)
		}
	}
	if len(triangles)%3 != 0 {
		return invalidInputf("triangle index count %d is not a multiple of 3", len(triangles))
	}
	for i, t := range triangles {
		if t < 0 || t >= len(points) {
			return invalidInputf("triangle index %d at position %d out of range [0,%d)", t, i, len(points))
		}
	}
	return nil
}
