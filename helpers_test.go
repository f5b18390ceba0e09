package spritemesh

import "math"

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func vec2AlmostEqual(a, b []Vector2) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !almostEqual(a[i].X, b[i].X) || !almostEqual(a[i].Y, b[i].Y) {
			return false
		}
	}
	return true
}

func pointsAlmostEqual(a, b []Point3d) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		for axis := 0; axis < 3; axis++ {
			if !almostEqual(a[i][axis], b[i][axis]) {
				return false
			}
		}
	}
	return true
}
