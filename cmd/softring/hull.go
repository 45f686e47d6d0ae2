package main

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"softring/vec"
)

const (
	hullSpacing = 5.0
	hullPasses  = 3
)

// smoothHull subdivides the closed outline so no edge is longer than spacing,
// then runs passes of 3-point averaging around the loop.
func smoothHull(pts []r2.Vec, spacing float64, passes int) []r2.Vec {
	n := len(pts)
	if n < 3 {
		return append([]r2.Vec(nil), pts...)
	}

	var out []r2.Vec
	for i := range n {
		a, b := pts[i], pts[(i+1)%n]
		steps := 1
		if spacing > 0 {
			steps = max(1, int(math.Ceil(math.Sqrt(vec.Dist2(a, b))/spacing)))
		}
		d := r2.Scale(1/float64(steps), r2.Sub(b, a))
		for k := range steps {
			out = append(out, r2.Add(a, r2.Scale(float64(k), d)))
		}
	}

	m := len(out)
	tmp := make([]r2.Vec, m)
	for range passes {
		for i := range m {
			sum := r2.Add(r2.Add(out[(i-1+m)%m], out[i]), out[(i+1)%m])
			tmp[i] = r2.Scale(1.0/3, sum)
		}
		out, tmp = tmp, out
	}
	return out
}
