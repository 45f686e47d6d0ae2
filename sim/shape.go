package sim

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"softring/vec"
)

// ShapeForce pushes every ring vertex along its bisector so the enclosed
// area drifts back toward TargetArea.
type ShapeForce struct {
	TargetArea float64
	Gain       float64
}

// PolygonArea is the unsigned shoelace area of a closed polygon.
func PolygonArea(pts []r2.Vec) float64 {
	total := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		total += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return math.Abs(total / 2)
}

// Bisector is the unit direction at cur halfway between the normals of the
// two edges meeting there. For a ring wound like the one New builds it
// points outward.
func Bisector(prv, cur, nxt r2.Vec) r2.Vec {
	n1 := vec.Unit(vec.Perp(r2.Sub(cur, nxt)))
	n2 := vec.Unit(vec.Perp(r2.Sub(prv, cur)))
	return vec.Unit(r2.Add(n1, n2))
}

// Apply accumulates the area-restoring force on every node and stores the
// bisectors it used. It returns the area measured before any force.
func (sf ShapeForce) Apply(points []PointMass, bisectors []r2.Vec) float64 {
	n := len(points)
	pos := make([]r2.Vec, n)
	for i := range points {
		pos[i] = points[i].Pos
	}
	area := PolygonArea(pos)
	force := (sf.TargetArea - area) * sf.Gain
	for i := range points {
		b := Bisector(pos[(i-1+n)%n], pos[i], pos[(i+1)%n])
		bisectors[i] = b
		if points[i].Fixed {
			continue
		}
		points[i].Accumulate(r2.Scale(force, b))
	}
	return area
}
