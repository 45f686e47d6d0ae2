package sim

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"softring/vec"
)

// Config fixes every constant of a run. It is read once by New.
type Config struct {
	Nodes       int
	Center      r2.Vec
	Radius      float64
	RestLength  float64 // 0 derives it from the initial node spacing
	Extension   float64
	Compression float64
	Coupling    bool

	TargetArea float64
	AreaGain   float64
	Gravity    r2.Vec
	Damping    float64
	Substeps   int
	Contact    Contact

	DragGain    float64
	DragCap     float64
	DragFalloff float64

	Seed uint64 // link shuffle seed
}

func DefaultConfig() Config {
	return Config{
		Nodes:       RingNodes,
		Center:      r2.Vec{X: RingCenterX, Y: RingCenterY},
		Radius:      RingRadius,
		RestLength:  LinkRestLength,
		Extension:   ExtensionStiff,
		Compression: CompressionStiff,
		Coupling:    true,
		TargetArea:  TargetArea,
		AreaGain:    AreaGain,
		Gravity:     r2.Vec{Y: GravityY},
		Damping:     Damping,
		Substeps:    Substeps,
		Contact:     DefaultContact(),
		DragGain:    DragGain,
		DragCap:     DragCap,
		DragFalloff: DragFalloff,
		Seed:        1,
	}
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Validate reports every out-of-range field at once. NaN and Inf are out of
// range everywhere.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}
	if c.Nodes < 3 {
		bad("nodes = %d, need at least 3", c.Nodes)
	}
	if !vec.Finite(c.Center) {
		bad("center = %v, must be finite", c.Center)
	}
	if !finite(c.Radius) || c.Radius <= 0 {
		bad("radius = %v, must be > 0", c.Radius)
	}
	if !finite(c.RestLength) || c.RestLength < 0 {
		bad("rest length = %v, must be >= 0", c.RestLength)
	}
	if !finite(c.Extension, c.Compression) || c.Extension < 0 || c.Compression < 0 {
		bad("stiffness (%v, %v) must be >= 0", c.Extension, c.Compression)
	}
	if !finite(c.TargetArea) || c.TargetArea < 0 {
		bad("target area = %v, must be >= 0", c.TargetArea)
	}
	if !finite(c.AreaGain) || c.AreaGain < 0 {
		bad("area gain = %v, must be >= 0", c.AreaGain)
	}
	if !vec.Finite(c.Gravity) {
		bad("gravity = %v, must be finite", c.Gravity)
	}
	if !(c.Damping > 0 && c.Damping <= 1) {
		bad("damping = %v, must be in (0, 1]", c.Damping)
	}
	if c.Substeps < 1 {
		bad("substeps = %d, must be >= 1", c.Substeps)
	}
	if !finite(c.Contact.Radius, c.Contact.AngleThreshold) || c.Contact.Radius < 0 || c.Contact.AngleThreshold < 0 {
		bad("contact radius/angle (%v, %v) must be >= 0", c.Contact.Radius, c.Contact.AngleThreshold)
	}
	if !finite(c.Contact.Reflect) {
		bad("contact reflect = %v, must be finite", c.Contact.Reflect)
	}
	if !finite(c.DragGain) {
		bad("drag gain = %v, must be finite", c.DragGain)
	}
	if !finite(c.DragCap) || c.DragCap < 0 {
		bad("drag cap = %v, must be >= 0", c.DragCap)
	}
	if !finite(c.DragFalloff) || c.DragFalloff <= 0 {
		bad("drag falloff = %v, must be > 0", c.DragFalloff)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
