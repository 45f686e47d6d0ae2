package sim

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"softring/vec"
)

// Contact tunes the velocity-space collision response.
type Contact struct {
	Radius         float64 // proximity that counts as touching
	AngleThreshold float64 // max angle between perp velocity and edge normal
	Reflect        float64 // applied to the perp component when reflecting
}

func DefaultContact() Contact {
	return Contact{Radius: ContactRadius, AngleThreshold: ReflectAngle, Reflect: ReflectFactor}
}

// Obstacle is static geometry that can redirect a node's velocity.
type Obstacle interface {
	Collide(p *PointMass, c Contact)
}

type Segment struct {
	A, B r2.Vec
}

// DistToSegmentSquared is the squared distance from p to the closest point
// of segment a-b. A zero-length segment degrades to point distance.
func DistToSegmentSquared(p, a, b r2.Vec) float64 {
	ab := r2.Sub(b, a)
	l2 := r2.Dot(ab, ab)
	if l2 == 0 {
		return vec.Dist2(p, a)
	}
	t := r2.Dot(r2.Sub(p, a), ab) / l2
	t = max(0, min(1, t))
	return vec.Dist2(p, r2.Add(a, r2.Scale(t, ab)))
}

// decompose splits v into the part along dir and the part across it.
func decompose(v, dir r2.Vec) (proj, perp r2.Vec) {
	n := vec.Unit(dir)
	proj = r2.Scale(r2.Dot(v, n), n)
	perp = r2.Sub(v, proj)
	return proj, perp
}

// Collide flips and halves the node's velocity across the segment when the
// node is close and its cross-segment velocity lines up with the edge
// normal. Anything else passes through unchanged this substep.
func (s Segment) Collide(p *PointMass, c Contact) {
	if p.Fixed {
		return
	}
	dir := r2.Sub(s.B, s.A)
	if dir == (r2.Vec{}) {
		return
	}
	if DistToSegmentSquared(p.Pos, s.A, s.B) >= c.Radius*c.Radius {
		return
	}
	proj, perp := decompose(p.Vel, dir)
	// NaN for a zero perp component, which never reflects.
	if vec.AngleBetween(perp, vec.Perp(dir)) < c.AngleThreshold {
		perp = r2.Scale(c.Reflect, perp)
	}
	p.Vel = r2.Add(perp, proj)
}

// Polygon is a closed loop of segments, vertex i to vertex i+1 mod n.
type Polygon struct {
	Segments []Segment
}

func NewPolygon(vertices ...r2.Vec) (Polygon, error) {
	if len(vertices) < 2 {
		return Polygon{}, fmt.Errorf("polygon needs at least 2 vertices, got %d", len(vertices))
	}
	for i, v := range vertices {
		if !vec.Finite(v) {
			return Polygon{}, fmt.Errorf("polygon vertex %d is not finite: %v", i, v)
		}
	}
	segs := make([]Segment, len(vertices))
	for i := range vertices {
		segs[i] = Segment{A: vertices[i], B: vertices[(i+1)%len(vertices)]}
	}
	return Polygon{Segments: segs}, nil
}

// Vertices returns the polygon outline in order.
func (pg Polygon) Vertices() []r2.Vec {
	out := make([]r2.Vec, len(pg.Segments))
	for i, s := range pg.Segments {
		out[i] = s.A
	}
	return out
}

// Collide tests every edge in order; near a corner more than one edge may
// act on the same node.
func (pg Polygon) Collide(p *PointMass, c Contact) {
	for _, s := range pg.Segments {
		s.Collide(p, c)
	}
}
