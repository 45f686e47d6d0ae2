package protocol

// Point is a world-space coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// World is sent once per subscriber before any frame.
type World struct {
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Nodes     int       `json:"nodes"`
	Obstacles [][]Point `json:"obstacles"`
}

// Frame is the ring after one simulation step.
type Frame struct {
	Tick      int     `json:"tick"`
	Points    []Point `json:"points"`
	Bisectors []Point `json:"bisectors,omitempty"`
	Area      float64 `json:"area"`
	Centroid  Point   `json:"centroid"`
}

// Input is one pointer sample from a presentation layer.
type Input struct {
	DX   float64 `json:"dx"`
	DY   float64 `json:"dy"`
	PX   float64 `json:"px"`
	PY   float64 `json:"py"`
	Held bool    `json:"held,omitempty"`
}
