package protocol

import (
	"encoding/json"
)

const (
	MsgWorld = "world"
	MsgFrame = "frame"
	MsgInput = "input"
)

const (
	SimTickHz   = 60
	BroadcastHz = 30
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
