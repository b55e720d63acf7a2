package sim

import (
	"github.com/zeusync/territory/internal/core/board"
	"github.com/zeusync/territory/internal/core/systems/physics"
)

const (
	AgentA board.Owner = 0
	AgentB board.Owner = 1

	AgentCount = 2
)

// Initial headings in degrees, clockwise from +X in screen space.
const (
	headingA = 45.0
	headingB = 225.0
)

// Agent is one of the two moving circles. Velocity is Direction * Speed.
type Agent struct {
	Position  physics.Vec2
	Direction physics.Vec2
	Speed     float64
	Radius    float64
	BodyColor Color
	CellColor Color
}

// Velocity returns the displacement per unit of time.
func (a Agent) Velocity() physics.Vec2 {
	return a.Direction.Scale(a.Speed)
}

func newAgents(screenWidth, screenHeight, radius, speed float64, palette Palette) [AgentCount]Agent {
	cy := screenHeight / 2
	return [AgentCount]Agent{
		AgentA: {
			Position:  physics.Vec2{X: screenWidth / 4, Y: cy},
			Direction: physics.FromAngle(headingA),
			Speed:     speed,
			Radius:    radius,
			BodyColor: palette.Bodies[AgentA],
			CellColor: palette.Cells[AgentA],
		},
		AgentB: {
			Position:  physics.Vec2{X: screenWidth * 3 / 4, Y: cy},
			Direction: physics.FromAngle(headingB),
			Speed:     speed,
			Radius:    radius,
			BodyColor: palette.Bodies[AgentB],
			CellColor: palette.Cells[AgentB],
		},
	}
}
