package vec

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestUnitOfZeroIsZero(t *testing.T) {
	if got := Unit(Zero); got != Zero {
		t.Fatalf("Unit(0) = %v, want zero", got)
	}
}

func TestUnitHasLengthOne(t *testing.T) {
	got := Unit(r2.Vec{X: 3, Y: 4})
	if math.Abs(Len(got)-1) > 1e-12 {
		t.Fatalf("len(Unit) = %f, want 1", Len(got))
	}
	if math.Abs(got.X-0.6) > 1e-12 || math.Abs(got.Y-0.8) > 1e-12 {
		t.Fatalf("Unit(3,4) = %v, want (0.6,0.8)", got)
	}
}

func TestPerpMatchesQuarterTurn(t *testing.T) {
	v := r2.Vec{X: 2, Y: -5}
	p := Perp(v)
	r := Rotate(v, math.Pi/2)
	if math.Abs(p.X-r.X) > 1e-9 || math.Abs(p.Y-r.Y) > 1e-9 {
		t.Fatalf("Perp=%v Rotate=%v", p, r)
	}
	if r2.Dot(p, v) != 0 {
		t.Fatalf("Perp not orthogonal: dot=%f", r2.Dot(p, v))
	}
}

func TestClampLen(t *testing.T) {
	got := ClampLen(r2.Vec{X: 30, Y: 40}, 10)
	if math.Abs(Len(got)-10) > 1e-12 {
		t.Fatalf("clamped len = %f, want 10", Len(got))
	}
	short := r2.Vec{X: 1, Y: 1}
	if ClampLen(short, 10) != short {
		t.Fatalf("short vector should pass through unchanged")
	}
	if ClampLen(Zero, 10) != Zero {
		t.Fatalf("zero vector should pass through unchanged")
	}
}

func TestAngleBetween(t *testing.T) {
	x := r2.Vec{X: 1}
	if a := AngleBetween(x, r2.Vec{X: 5}); a != 0 {
		t.Fatalf("parallel angle = %f, want 0", a)
	}
	if a := AngleBetween(x, r2.Vec{X: -2}); math.Abs(a-math.Pi) > 1e-12 {
		t.Fatalf("opposite angle = %f, want pi", a)
	}
	if a := AngleBetween(x, r2.Vec{Y: -1}); math.Abs(a-math.Pi/2) > 1e-12 {
		t.Fatalf("orthogonal angle = %f, want pi/2", a)
	}
	if a := AngleBetween(x, Zero); !math.IsNaN(a) {
		t.Fatalf("angle against zero = %f, want NaN", a)
	}
}

func TestFinite(t *testing.T) {
	if !Finite(r2.Vec{X: 1, Y: -1}) {
		t.Fatalf("expected finite")
	}
	if Finite(r2.Vec{X: math.NaN()}) || Finite(r2.Vec{Y: math.Inf(1)}) {
		t.Fatalf("expected NaN/Inf to be rejected")
	}
}
