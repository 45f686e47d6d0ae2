package sim

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"

	"softring/vec"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrBadIndex     = errors.New("node index out of range")
)

// Input is what the presentation layer hands over each frame.
type Input struct {
	Delta   r2.Vec // pointer motion since the previous frame
	Pointer r2.Vec // pointer position in world coordinates
	Held    bool
}

func (in Input) Validate() error {
	if !vec.Finite(in.Delta) || !vec.Finite(in.Pointer) {
		return fmt.Errorf("%w: delta=%v pointer=%v", ErrInvalidInput, in.Delta, in.Pointer)
	}
	return nil
}

// Simulation owns the ring, its links and the obstacle set. It is not safe
// for concurrent use; one goroutine drives Step.
type Simulation struct {
	cfg       Config
	shape     ShapeForce
	points    []PointMass
	links     []Link
	order     []int // shuffled view of links, links itself never moves
	bisectors []r2.Vec
	obstacles []Obstacle
	rng       *rand.Rand
	area      float64
	frame     int
}

func New(cfg Config, obstacles ...Obstacle) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulation{
		cfg:       cfg,
		shape:     ShapeForce{TargetArea: cfg.TargetArea, Gain: cfg.AreaGain},
		points:    make([]PointMass, cfg.Nodes),
		links:     make([]Link, cfg.Nodes),
		order:     make([]int, cfg.Nodes),
		bisectors: make([]r2.Vec, cfg.Nodes),
		obstacles: append([]Obstacle(nil), obstacles...),
		rng:       rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}

	arm := r2.Vec{Y: cfg.Radius}
	for i := range s.points {
		s.points[i].Pos = r2.Add(cfg.Center, vec.Rotate(arm, 2*math.Pi*float64(i)/float64(cfg.Nodes)))
	}

	rest := cfg.RestLength
	if rest == 0 {
		rest = vec.Len(r2.Sub(s.points[1].Pos, s.points[0].Pos))
	}
	for i := range s.links {
		l, err := NewLink(i, (i+1)%cfg.Nodes, rest, cfg.Extension, cfg.Compression, cfg.Coupling)
		if err != nil {
			return nil, err
		}
		s.links[i] = l
		s.order[i] = i
	}

	pos := s.Positions()
	s.area = PolygonArea(pos)
	n := len(pos)
	for i := range pos {
		s.bisectors[i] = Bisector(pos[(i-1+n)%n], pos[i], pos[(i+1)%n])
	}
	return s, nil
}

// Step advances one frame. Invalid input is rejected before anything moves.
func (s *Simulation) Step(in Input) error {
	if err := in.Validate(); err != nil {
		return err
	}

	if in.Held {
		s.drag(in)
	}

	s.rng.Shuffle(len(s.order), func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})
	for _, li := range s.order {
		s.links[li].Evaluate(s.points)
	}

	s.area = s.shape.Apply(s.points, s.bisectors)

	for i := range s.points {
		p := &s.points[i]
		if p.Fixed {
			p.Acc = r2.Vec{}
			continue
		}
		p.Accumulate(s.cfg.Gravity)
		p.Vel = r2.Add(p.Vel, p.Acc)
	}

	for range s.cfg.Substeps {
		for _, o := range s.obstacles {
			for i := range s.points {
				o.Collide(&s.points[i], s.cfg.Contact)
			}
		}
		for i := range s.points {
			s.points[i].Integrate(s.cfg.Substeps, s.cfg.Damping)
		}
	}

	s.frame++
	return nil
}

// drag pulls every node along the pointer motion, harder the closer it is.
func (s *Simulation) drag(in Input) {
	d := vec.ClampLen(in.Delta, s.cfg.DragCap)
	for i := range s.points {
		p := &s.points[i]
		if p.Fixed {
			continue
		}
		dist := vec.Len(r2.Sub(in.Pointer, p.Pos))
		p.Accumulate(r2.Scale(s.cfg.DragGain/math.Max(s.cfg.DragFalloff, dist), d))
	}
}

// Pin sets or clears the fixed flag of node i.
func (s *Simulation) Pin(i int, fixed bool) error {
	if i < 0 || i >= len(s.points) {
		return fmt.Errorf("pin %d of %d: %w", i, len(s.points), ErrBadIndex)
	}
	s.points[i].Fixed = fixed
	return nil
}

func (s *Simulation) Positions() []r2.Vec {
	out := make([]r2.Vec, len(s.points))
	for i := range s.points {
		out[i] = s.points[i].Pos
	}
	return out
}

// Bisectors returns the per-node directions used by the last area force.
func (s *Simulation) Bisectors() []r2.Vec {
	return append([]r2.Vec(nil), s.bisectors...)
}

func (s *Simulation) Points() []PointMass {
	return append([]PointMass(nil), s.points...)
}

func (s *Simulation) Links() []Link {
	return append([]Link(nil), s.links...)
}

// Area is the enclosed area measured at the start of the last frame.
func (s *Simulation) Area() float64 { return s.area }

// CurrentArea measures the ring as it stands now.
func (s *Simulation) CurrentArea() float64 {
	return PolygonArea(s.Positions())
}

func (s *Simulation) Centroid() r2.Vec {
	var c r2.Vec
	for i := range s.points {
		c = r2.Add(c, s.points[i].Pos)
	}
	return r2.Scale(1/float64(len(s.points)), c)
}

func (s *Simulation) Frame() int { return s.frame }

func (s *Simulation) Config() Config { return s.cfg }

func (s *Simulation) Obstacles() []Obstacle {
	return append([]Obstacle(nil), s.obstacles...)
}
