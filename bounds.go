package spritemesh

import "math"

// Bounds is an axis aligned bounding box.
type Bounds struct {
	Min Point3d
	Max Point3d
}

// BoundsOf returns the bounding box of points. ok is false for an empty slice.
func BoundsOf(points []Point3d) (b Bounds, ok bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}

	b.Min, b.Max = points[0], points[0]
	for _, p := range points[1:] {
		for axis := 0; axis < 3; axis++ {
			if p[axis] < b.Min[axis] {
				b.Min[axis] = p[axis]
			}
			if p[axis] > b.Max[axis] {
				b.Max[axis] = p[axis]
			}
		}
	}
	return b, true
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() Point3d {
	return b.Max.Sub(b.Min)
}

// GridDims returns how many cells of the given step are needed on each axis
// so that every point inside b falls in a cell: floor(size/step) + 1.
func (b Bounds) GridDims(step float64) ([3]int, error) {
	var dims [3]int
	size := b.Size()
	for axis := 0; axis < 3; axis++ {
		cells := math.Floor(size[axis]/step) + 1
		if math.IsNaN(cells) || cells > math.MaxInt32 {
			return dims, invalidInputf("cell size %g too small for extent %g", step, size[axis])
		}
		dims[axis] = int(cells)
	}
	return dims, nil
}

// CellOf returns the grid cell p falls in for a grid anchored at b.Min.
func (b Bounds) CellOf(p Point3d, step float64) [3]int {
	var cell [3]int
	for axis := 0; axis < 3; axis++ {
		cell[axis] = int(math.Floor((p[axis] - b.Min[axis]) / step))
	}
	return cell
}
