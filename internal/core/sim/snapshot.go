package sim

import (
	"fmt"

	"github.com/zeusync/territory/internal/core/board"
)

// Snapshot is a read-only copy of the drawable state, taken between steps.
type Snapshot struct {
	Frame        uint64
	BoardWidth   int
	BoardHeight  int
	CellSize     float64
	ScreenWidth  float64
	ScreenHeight float64
	Cells        []board.Owner
	Agents       [AgentCount]Agent
}

// Snapshot copies the board and agents under the simulation lock.
func (s *Simulation) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Frame:        s.stats.Frames,
		BoardWidth:   s.board.Width(),
		BoardHeight:  s.board.Height(),
		CellSize:     s.cellSize,
		ScreenWidth:  s.screenWidth,
		ScreenHeight: s.screenHeight,
		Cells:        s.board.Cells(),
		Agents:       s.agents,
	}
}

// OwnerAt reads a cell of the snapshot. Same range contract as board.Board:
// out-of-range coordinates panic.
func (s Snapshot) OwnerAt(x, y int) board.Owner {
	if x < 0 || y < 0 || x >= s.BoardWidth || y >= s.BoardHeight {
		panic(fmt.Sprintf("sim: snapshot cell (%d,%d) out of range %dx%d", x, y, s.BoardWidth, s.BoardHeight))
	}
	return s.Cells[y*s.BoardWidth+x]
}

// Count returns the number of cells owner holds in the snapshot.
func (s Snapshot) Count(owner board.Owner) int {
	n := 0
	for _, c := range s.Cells {
		if c == owner {
			n++
		}
	}
	return n
}
