package app

import (
	"fmt"
	"sync"

	"github.com/zeusync/territory/internal/core/board"
	"github.com/zeusync/territory/internal/core/events/bus"
	"github.com/zeusync/territory/internal/core/observability/log"
	"github.com/zeusync/territory/internal/core/sim"
)

// tally follows cell ownership from capture events alone, so it can be checked
// against the board at the end of a run. It also logs every change of leader.
type tally struct {
	mu     sync.Mutex
	counts [sim.AgentCount]int
	leader int // agent ID, or -1 on a tie
	logger log.Log
}

func newTally(initial sim.Snapshot, logger log.Log) *tally {
	t := &tally{logger: logger}
	for id := range t.counts {
		t.counts[id] = initial.Count(board.Owner(id))
	}
	t.leader = t.lead()
	return t
}

func (t *tally) handle(e bus.Event) error {
	ev, ok := e.Data().(sim.CaptureEvent)
	if !ok {
		return fmt.Errorf("tally: unexpected payload %T for %s", e.Data(), e.Type())
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.counts[ev.Agent]++
	t.counts[ev.Previous]--

	if lead := t.lead(); lead != t.leader {
		t.leader = lead
		if lead >= 0 {
			t.logger.Info("lead changed",
				log.Int("leader", lead),
				log.Uint64("frame", ev.Frame),
				log.Int("cells_a", t.counts[sim.AgentA]),
				log.Int("cells_b", t.counts[sim.AgentB]),
			)
		}
	}
	return nil
}

func (t *tally) lead() int {
	switch a, b := t.counts[sim.AgentA], t.counts[sim.AgentB]; {
	case a > b:
		return int(sim.AgentA)
	case b > a:
		return int(sim.AgentB)
	default:
		return -1
	}
}

func (t *tally) snapshot() [sim.AgentCount]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts
}
