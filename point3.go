package spritemesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point3d is a position in mesh space. Sprite geometry always has Z == 0,
// but nothing in the welder depends on that.
type Point3d = mgl64.Vec3

// SqrDistance returns the squared distance between a and b.
func SqrDistance(a, b Point3d) float64 {
	return b.Sub(a).LenSqr()
}

func isFinitePoint(p Point3d) bool {
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
