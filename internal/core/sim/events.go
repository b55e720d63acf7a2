package sim

import "github.com/zeusync/territory/internal/core/board"

// Event types published on the bus.
const (
	EventCellCaptured = "cell.captured"
	EventAgentBounced = "agent.bounced"
)

// Axis names the movement component being resolved.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// BounceReason tells why a direction component was reversed.
type BounceReason uint8

const (
	BounceBoundary BounceReason = iota
	BounceCapture
)

func (r BounceReason) String() string {
	if r == BounceBoundary {
		return "boundary"
	}
	return "capture"
}

// CaptureEvent is the payload of EventCellCaptured.
type CaptureEvent struct {
	Frame    uint64
	Agent    board.Owner
	Previous board.Owner
	CellX    int
	CellY    int
	Axis     Axis
}

// BounceEvent is the payload of EventAgentBounced.
type BounceEvent struct {
	Frame  uint64
	Agent  board.Owner
	Axis   Axis
	Reason BounceReason
}
