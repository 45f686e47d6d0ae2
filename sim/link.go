package sim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"softring/vec"
)

// Link is a spring between two ring nodes, addressed by index. It stiffens
// differently when compressed and when stretched.
type Link struct {
	A, B        int
	RestLength  float64
	Extension   float64
	Compression float64
	Coupling    bool // pull the endpoint velocities toward each other
}

func NewLink(a, b int, restLength, extension, compression float64, coupling bool) (Link, error) {
	if a < 0 || b < 0 {
		return Link{}, fmt.Errorf("link %d-%d: %w", a, b, ErrBadIndex)
	}
	if a == b {
		return Link{}, fmt.Errorf("link %d-%d: endpoints must differ", a, b)
	}
	if !(restLength > 0) {
		return Link{}, fmt.Errorf("link %d-%d: rest length %v must be > 0", a, b, restLength)
	}
	if extension < 0 || compression < 0 {
		return Link{}, fmt.Errorf("link %d-%d: negative stiffness (%v, %v)", a, b, extension, compression)
	}
	return Link{A: a, B: b, RestLength: restLength, Extension: extension, Compression: compression, Coupling: coupling}, nil
}

// Force is the signed pull along A->B for the given endpoint distance.
// Positive pulls the ends together, negative pushes them apart.
func (l Link) Force(distance float64) float64 {
	if distance < l.RestLength {
		return math.Min(0, distance-math.Max(MinSeparation, l.RestLength)) * l.Compression
	}
	return math.Max(0, distance-l.RestLength) * l.Extension
}

func (l Link) Evaluate(points []PointMass) {
	a, b := &points[l.A], &points[l.B]
	sep := r2.Sub(b.Pos, a.Pos)
	f := r2.Scale(l.Force(vec.Len(sep)), vec.Unit(sep))
	a.Accumulate(f)
	b.Accumulate(r2.Scale(-1, f))

	if l.Coupling {
		dv := r2.Scale(VelocityCoupling, r2.Sub(b.Vel, a.Vel))
		a.Accumulate(dv)
		b.Accumulate(r2.Scale(-1, dv))
	}
}
