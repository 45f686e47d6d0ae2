package sim

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"softring/vec"
)

func TestIntegrateFixedPointUnchanged(t *testing.T) {
	p := PointMass{
		Pos:   r2.Vec{X: 1.25, Y: -3.5},
		Vel:   r2.Vec{X: 0.1, Y: 7},
		Acc:   r2.Vec{X: 4, Y: 4},
		Fixed: true,
	}
	before := p
	for range 25 {
		p.Integrate(Substeps, Damping)
	}
	if p.Pos != before.Pos || p.Vel != before.Vel {
		t.Fatalf("fixed point moved: pos=%v vel=%v, want pos=%v vel=%v", p.Pos, p.Vel, before.Pos, before.Vel)
	}
}

func TestIntegrateClearsAcceleration(t *testing.T) {
	p := PointMass{Acc: r2.Vec{X: 3, Y: -1}}
	p.Integrate(1, Damping)
	if p.Acc != (r2.Vec{}) {
		t.Fatalf("acc not cleared: %v", p.Acc)
	}
}

func TestIntegrateDampingIsSubstepInvariant(t *testing.T) {
	start := r2.Vec{X: 6, Y: -8}

	one := PointMass{Vel: start}
	one.Integrate(1, Damping)

	split := PointMass{Vel: start}
	for range Substeps {
		split.Integrate(Substeps, Damping)
	}

	got, want := vec.Len(split.Vel), vec.Len(one.Vel)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("speed after %d substeps = %.15f, want %.15f", Substeps, got, want)
	}
	if math.Abs(want-10*Damping) > 1e-12 {
		t.Fatalf("single step speed = %f, want %f", want, 10*Damping)
	}
}

func TestIntegrateAdvancesPosition(t *testing.T) {
	p := PointMass{Vel: r2.Vec{X: 10}}
	p.Integrate(1, 1)
	if p.Pos.X != 10 || p.Pos.Y != 0 {
		t.Fatalf("pos = %v, want (10,0)", p.Pos)
	}
}
