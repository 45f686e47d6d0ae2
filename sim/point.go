package sim

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// PointMass is one node of the ring. Acc collects force for the current
// frame only.
type PointMass struct {
	Pos   r2.Vec
	Vel   r2.Vec
	Acc   r2.Vec
	Fixed bool
}

func (p *PointMass) Accumulate(f r2.Vec) {
	p.Acc = r2.Add(p.Acc, f)
}

// Integrate advances the node by 1/substeps of a frame. Damping is taken to
// the 1/substeps power so a full frame of substeps damps by exactly damping.
func (p *PointMass) Integrate(substeps int, damping float64) {
	if p.Fixed {
		return
	}
	frac := 1 / float64(substeps)
	p.Vel = r2.Scale(math.Pow(damping, frac), p.Vel)
	p.Pos = r2.Add(p.Pos, r2.Scale(frac, p.Vel))
	p.Acc = r2.Vec{}
}
