package sim

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestDistToSegmentSquared(t *testing.T) {
	a, b := r2.Vec{X: 0, Y: 0}, r2.Vec{X: 10, Y: 0}
	cases := []struct {
		p    r2.Vec
		want float64
	}{
		{r2.Vec{X: 5, Y: 3}, 9},
		{r2.Vec{X: -4, Y: 3}, 25},
		{r2.Vec{X: 13, Y: -4}, 25},
		{r2.Vec{X: 7, Y: 0}, 0},
	}
	for _, c := range cases {
		if got := DistToSegmentSquared(c.p, a, b); math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("dist2(%v) = %f, want %f", c.p, got, c.want)
		}
	}
}

func TestDistToDegenerateSegment(t *testing.T) {
	a := r2.Vec{X: 2, Y: 2}
	got := DistToSegmentSquared(r2.Vec{X: 5, Y: 6}, a, a)
	if got != 25 {
		t.Fatalf("dist2 to point segment = %f, want 25", got)
	}
}

func TestCollideAtRestIsNoop(t *testing.T) {
	s := Segment{A: r2.Vec{X: 0}, B: r2.Vec{X: 100}}
	p := PointMass{Pos: r2.Vec{X: 50, Y: 0}}
	s.Collide(&p, DefaultContact())
	if p.Vel != (r2.Vec{}) || math.IsNaN(p.Vel.X) || math.IsNaN(p.Vel.Y) {
		t.Fatalf("resting node got velocity %v", p.Vel)
	}
}

func TestCollideOutOfRangeIsNoop(t *testing.T) {
	s := Segment{A: r2.Vec{X: 0}, B: r2.Vec{X: 100}}
	p := PointMass{Pos: r2.Vec{X: 50, Y: -ContactRadius - 1}, Vel: r2.Vec{X: 1, Y: 10}}
	s.Collide(&p, DefaultContact())
	if p.Vel != (r2.Vec{X: 1, Y: 10}) {
		t.Fatalf("distant node velocity changed to %v", p.Vel)
	}
}

func TestCollideDegenerateSegmentIsNoop(t *testing.T) {
	s := Segment{A: r2.Vec{X: 3, Y: 3}, B: r2.Vec{X: 3, Y: 3}}
	p := PointMass{Pos: r2.Vec{X: 3, Y: 4}, Vel: r2.Vec{Y: -2}}
	s.Collide(&p, DefaultContact())
	if p.Vel != (r2.Vec{Y: -2}) {
		t.Fatalf("degenerate segment changed velocity to %v", p.Vel)
	}
}

func TestCollideKeepsTangentialVelocity(t *testing.T) {
	s := Segment{A: r2.Vec{X: 0}, B: r2.Vec{X: 100}}
	p := PointMass{Pos: r2.Vec{X: 50, Y: -5}, Vel: r2.Vec{X: 3, Y: 4}}
	s.Collide(&p, DefaultContact())
	if math.Abs(p.Vel.X-3) > 1e-12 || math.Abs(p.Vel.Y+2) > 1e-12 {
		t.Fatalf("vel = %v, want (3,-2)", p.Vel)
	}
}

// runSubsteps mirrors the substep loop of Simulation.Step for one node.
func runSubsteps(p *PointMass, o Obstacle) {
	c := DefaultContact()
	for range Substeps {
		o.Collide(p, c)
		p.Integrate(Substeps, Damping)
	}
}

func TestApproachWithinThresholdReflects(t *testing.T) {
	// Left-to-right edge: its quarter-turn normal is +Y, the approach direction.
	s := Segment{A: r2.Vec{X: 0}, B: r2.Vec{X: 100}}
	p := PointMass{Pos: r2.Vec{X: 50, Y: -10}, Vel: r2.Vec{Y: 10}}
	runSubsteps(&p, s)

	if p.Vel.Y >= 0 {
		t.Fatalf("expected y velocity to flip, got %v", p.Vel)
	}
	want := -10 * -ReflectFactor * Damping
	if math.Abs(p.Vel.Y-want) > 1e-9 {
		t.Fatalf("vel.Y = %f, want %f", p.Vel.Y, want)
	}
	if p.Pos.Y >= -10 {
		t.Fatalf("node kept moving into the edge: y=%f", p.Pos.Y)
	}
}

func TestApproachOutsideThresholdPassesThrough(t *testing.T) {
	// Same line, opposite winding: the normal now points away from the node.
	s := Segment{A: r2.Vec{X: 100}, B: r2.Vec{X: 0}}
	p := PointMass{Pos: r2.Vec{X: 50, Y: -10}, Vel: r2.Vec{Y: 10}}
	runSubsteps(&p, s)

	want := 10 * Damping
	if math.Abs(p.Vel.Y-want) > 1e-9 {
		t.Fatalf("vel.Y = %f, want %f (unchanged apart from damping)", p.Vel.Y, want)
	}
}

func TestCollideSkipsFixed(t *testing.T) {
	s := Segment{A: r2.Vec{X: 0}, B: r2.Vec{X: 100}}
	p := PointMass{Pos: r2.Vec{X: 50, Y: -5}, Vel: r2.Vec{Y: 10}, Fixed: true}
	s.Collide(&p, DefaultContact())
	if p.Vel != (r2.Vec{Y: 10}) {
		t.Fatalf("fixed node velocity changed to %v", p.Vel)
	}
}

func TestNewPolygonClosesLoop(t *testing.T) {
	verts := []r2.Vec{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	pg, err := NewPolygon(verts...)
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	if len(pg.Segments) != 3 {
		t.Fatalf("segments = %d, want 3", len(pg.Segments))
	}
	last := pg.Segments[2]
	if last.A != verts[2] || last.B != verts[0] {
		t.Fatalf("closing segment = %v, want %v->%v", last, verts[2], verts[0])
	}
	got := pg.Vertices()
	for i := range verts {
		if got[i] != verts[i] {
			t.Fatalf("vertex %d = %v, want %v", i, got[i], verts[i])
		}
	}
}

func TestNewPolygonRejectsBadVertices(t *testing.T) {
	if _, err := NewPolygon(r2.Vec{X: 1}); err == nil {
		t.Fatalf("expected error for single vertex")
	}
	if _, err := NewPolygon(r2.Vec{}, r2.Vec{X: math.NaN()}); err == nil {
		t.Fatalf("expected error for NaN vertex")
	}
}

func TestDefaultObstacles(t *testing.T) {
	obs, err := DefaultObstacles(WorldWidth, WorldHeight)
	if err != nil {
		t.Fatalf("DefaultObstacles: %v", err)
	}
	if len(obs) != 23 {
		t.Fatalf("obstacles = %d, want 23", len(obs))
	}
	floor := obs[0].(Polygon)
	if floor.Segments[0].A.Y != WorldHeight-50 {
		t.Fatalf("floor top at y=%f, want %f", floor.Segments[0].A.Y, WorldHeight-50)
	}
	if _, err := DefaultObstacles(0, 100); err == nil {
		t.Fatalf("expected error for empty world")
	}
}
