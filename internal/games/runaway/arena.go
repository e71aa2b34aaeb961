package runaway

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/runaway/internal/core"
)

// Arena is the legal rectangle [-HalfWidth, HalfWidth] x [-HalfHeight, HalfHeight].
type Arena struct {
	HalfWidth  float64
	HalfHeight float64
}

// Clamp pulls the actor back onto the arena edge if it moved past it.
// Each axis is clamped independently; in-bounds actors are left as is.
func (ar Arena) Clamp(a *Actor) {
	a.pos.X = core.ClampF(a.pos.X, -ar.HalfWidth, ar.HalfWidth)
	a.pos.Y = core.ClampF(a.pos.Y, -ar.HalfHeight, ar.HalfHeight)
}

// Contains reports whether p lies inside the arena, edges included.
func (ar Arena) Contains(p r2.Vec) bool {
	return p.X >= -ar.HalfWidth && p.X <= ar.HalfWidth &&
		p.Y >= -ar.HalfHeight && p.Y <= ar.HalfHeight
}
