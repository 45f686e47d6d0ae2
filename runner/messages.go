package runner

import "softring/protocol"

type Conn interface {
	Send([]byte) error
	Close() error
}

// Subscribe attaches a frame sink. The sink gets the world first.
type Subscribe struct {
	Conn  Conn
	Reply chan<- int
}

type Unsubscribe struct {
	ID int
}

// Input is one pointer sample. Deltas add up until the next frame.
type Input struct {
	Input protocol.Input
}
