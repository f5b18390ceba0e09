package spritemesh

// bucketGrid is a sparse uniform grid over a bounding box. Each touched cell
// holds, in insertion order, indices into the welded point buffer.
type bucketGrid struct {
	bounds Bounds
	step   float64
	dims   [3]int
	cells  map[[3]int][]int
}

func newBucketGrid(bounds Bounds, step float64) (*bucketGrid, error) {
	dims, err := bounds.GridDims(step)
	if err != nil {
		return nil, err
	}
	return &bucketGrid{
		bounds: bounds,
		step:   step,
		dims:   dims,
		cells:  make(map[[3]int][]int),
	}, nil
}

func (g *bucketGrid) cellOf(p Point3d) [3]int {
	return g.bounds.CellOf(p, g.step)
}

// find scans the cell in insertion order and returns the first kept point
// closer than threshold (squared). It never looks at neighbouring cells.
func (g *bucketGrid) find(cell [3]int, p Point3d, kept []Point3d, threshold float64) (int, bool) {
	for _, j := range g.cells[cell] {
		if SqrDistance(kept[j], p) < threshold {
			return j, true
		}
	}
	return 0, false
}

func (g *bucketGrid) add(cell [3]int, index int) {
	g.cells[cell] = append(g.cells[cell], index)
}

// occupied returns how many cells have been materialised.
func (g *bucketGrid) occupied() int {
	return len(g.cells)
}
