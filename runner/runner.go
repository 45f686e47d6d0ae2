package runner

import (
	"context"
	"log"

	"gonum.org/v1/gonum/spatial/r2"

	"softring/protocol"
	"softring/sim"
)

// Runner drives one Simulation from a Clock. All simulation access happens
// on the goroutine running Run; everything else talks to it through Inbox.
type Runner struct {
	Inbox          chan any
	BroadcastEvery int  // send a frame every n steps
	Bisectors      bool // include bisectors in frames

	sim     *sim.Simulation
	clock   Clock
	world   protocol.World
	conns   map[int]Conn
	nextID  int
	pending sim.Input
}

func New(s *sim.Simulation, clock Clock, world protocol.World) *Runner {
	every := protocol.SimTickHz / protocol.BroadcastHz
	if every <= 0 {
		every = 1
	}
	return &Runner{
		Inbox:          make(chan any, 256),
		BroadcastEvery: every,
		sim:            s,
		clock:          clock,
		world:          world,
		conns:          make(map[int]Conn),
		nextID:         1,
	}
}

// Run steps the simulation once per clock tick until frames steps have run
// or ctx is done. frames <= 0 means no limit. The final frame is always
// broadcast. The clock is stopped on return. A BroadcastEvery below 1 is
// treated as 1.
func (r *Runner) Run(ctx context.Context, frames int) error {
	defer r.clock.Stop()
	r.BroadcastEvery = max(1, r.BroadcastEvery)

	done := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-r.clock.C():
			r.drainInbox()
			r.step()
			done++
			last := frames > 0 && done >= frames
			if last || done%r.BroadcastEvery == 0 {
				r.broadcastFrame()
			}
			if last {
				return nil
			}
		}
	}
}

// drainInbox applies every queued command so a tick never overtakes
// commands sent before it.
func (r *Runner) drainInbox() {
	for {
		select {
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		default:
			return
		}
	}
}

func (r *Runner) step() {
	in := r.pending
	r.pending.Delta = r2.Vec{}
	if err := r.sim.Step(in); err != nil {
		log.Printf("runner: frame %d: %v", r.sim.Frame(), err)
		_ = r.sim.Step(sim.Input{})
	}
}

func (r *Runner) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Subscribe:
		id := r.nextID
		r.nextID++
		r.conns[id] = c.Conn
		if b, err := protocol.Encode(protocol.MsgWorld, r.world); err == nil {
			if err := c.Conn.Send(b); err != nil {
				r.removeConn(id)
			}
		}
		if c.Reply != nil {
			c.Reply <- id
		}
	case Unsubscribe:
		r.removeConn(c.ID)
	case Input:
		in := sim.Input{
			Delta:   r2.Vec{X: c.Input.DX, Y: c.Input.DY},
			Pointer: r2.Vec{X: c.Input.PX, Y: c.Input.PY},
			Held:    c.Input.Held,
		}
		if err := in.Validate(); err != nil {
			log.Printf("runner: %v", err)
			return
		}
		r.pending.Delta = r2.Add(r.pending.Delta, in.Delta)
		r.pending.Pointer = in.Pointer
		r.pending.Held = in.Held
	}
}

func (r *Runner) removeConn(id int) {
	if c, ok := r.conns[id]; ok {
		_ = c.Close()
		delete(r.conns, id)
	}
}

func (r *Runner) broadcastFrame() {
	if len(r.conns) == 0 {
		return
	}
	b, err := protocol.Encode(protocol.MsgFrame, r.buildFrame())
	if err != nil {
		log.Printf("runner: encode frame: %v", err)
		return
	}

	var failed []int
	for id, c := range r.conns {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		r.removeConn(id)
	}
}

func (r *Runner) buildFrame() protocol.Frame {
	f := protocol.Frame{
		Tick:     r.sim.Frame(),
		Points:   points(r.sim.Positions()),
		Area:     r.sim.Area(),
		Centroid: point(r.sim.Centroid()),
	}
	if r.Bisectors {
		f.Bisectors = points(r.sim.Bisectors())
	}
	return f
}

// WorldOf describes the obstacles of s for a presentation layer.
func WorldOf(s *sim.Simulation, width, height float64) protocol.World {
	w := protocol.World{Width: width, Height: height, Nodes: s.Config().Nodes}
	for _, o := range s.Obstacles() {
		switch ob := o.(type) {
		case sim.Polygon:
			w.Obstacles = append(w.Obstacles, points(ob.Vertices()))
		case sim.Segment:
			w.Obstacles = append(w.Obstacles, points([]r2.Vec{ob.A, ob.B}))
		}
	}
	return w
}

func point(v r2.Vec) protocol.Point {
	return protocol.Point{X: v.X, Y: v.Y}
}

func points(vs []r2.Vec) []protocol.Point {
	out := make([]protocol.Point, len(vs))
	for i, v := range vs {
		out[i] = point(v)
	}
	return out
}
