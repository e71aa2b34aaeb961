package runaway

import "gonum.org/v1/gonum/spatial/r2"

// Collides reports whether a and b are closer than the catch radius.
// radius2 is the squared radius; the comparison is strict.
func Collides(a, b r2.Vec, radius2 float64) bool {
	return r2.Norm2(r2.Sub(a, b)) < radius2
}
