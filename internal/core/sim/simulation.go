package sim

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/zeusync/territory/internal/core/board"
	"github.com/zeusync/territory/internal/core/events/bus"
	"github.com/zeusync/territory/internal/core/observability/log"
)

// Stats are per-run counters maintained by Update.
type Stats struct {
	Frames   uint64
	Captures [AgentCount]uint64
	Bounces  [AgentCount]uint64
}

// Simulation owns the board and both agents. All exported methods are safe for
// concurrent use; a single mutex serializes every step and every mutation.
type Simulation struct {
	mu sync.Mutex

	board  *board.Board
	agents [AgentCount]Agent

	cellSize     float64
	screenWidth  float64
	screenHeight float64
	radius       float64
	mode         CaptureMode

	bus     bus.EventBus
	pending []bus.Event
	logger  log.Log
	source  string
	stats   Stats
}

// Option customizes a Simulation at construction.
type Option func(*Simulation)

// WithBus publishes capture and bounce events to b. The events of one Update
// are delivered as a single batch, in step order, after both agents have moved.
// Handlers run synchronously while the simulation lock is held and must not
// call back into the Simulation.
func WithBus(b bus.EventBus) Option {
	return func(s *Simulation) { s.bus = b }
}

func WithLogger(l log.Log) Option {
	return func(s *Simulation) { s.logger = l }
}

// WithSource sets the Source of published events. Defaults to a random run ID.
func WithSource(id string) Option {
	return func(s *Simulation) { s.source = id }
}

// New builds a simulation from cfg. Non-positive board dimensions or cell size
// are programming errors and panic.
func New(cfg Config, opts ...Option) *Simulation {
	if cfg.BoardWidth <= 0 || cfg.BoardHeight <= 0 {
		panic(fmt.Sprintf("sim: invalid board dimensions %dx%d", cfg.BoardWidth, cfg.BoardHeight))
	}
	if cfg.CellSize <= 0 {
		panic(fmt.Sprintf("sim: invalid cell size %v", cfg.CellSize))
	}

	s := &Simulation{
		board:        board.New(cfg.BoardWidth, cfg.BoardHeight, AgentA, AgentB),
		cellSize:     cfg.CellSize,
		screenWidth:  cfg.ScreenWidth(),
		screenHeight: cfg.ScreenHeight(),
		radius:       cfg.PlayerRadius(),
		mode:         cfg.CaptureMode,
		logger:       log.NewNop(),
	}
	s.agents = newAgents(s.screenWidth, s.screenHeight, s.radius, cfg.PlayerSpeed, cfg.Palette)

	for _, opt := range opts {
		opt(s)
	}
	if s.source == "" {
		s.source = uuid.NewString()
	}
	return s
}

// Initialize builds a simulation with the default palette and capture mode.
func Initialize(boardWidth, boardHeight int, cellSize, playerSpeed float64) *Simulation {
	cfg := DefaultConfig()
	cfg.BoardWidth = boardWidth
	cfg.BoardHeight = boardHeight
	cfg.CellSize = cellSize
	cfg.PlayerSpeed = playerSpeed
	return New(cfg)
}

// Update advances both agents by dt. Agents are resolved in ID order; for each,
// the X axis is resolved completely (including any capture) before Y, and the Y
// check uses the already updated X.
func (s *Simulation) Update(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.Frames++
	for id := range s.agents {
		s.step(board.Owner(id), dt)
	}
	s.flush()
}

func (s *Simulation) step(id board.Owner, dt float64) {
	a := &s.agents[id]
	// Reversing X never touches Direction.Y, so one displacement serves both axes.
	d := a.Velocity().Scale(dt)

	nx := a.Position.X + d.X
	switch {
	case nx-a.Radius < 0 || nx+a.Radius > s.screenWidth:
		a.Direction.X = -a.Direction.X
		s.bounced(id, AxisX, BounceBoundary)
	case s.capture(nx, a.Position.Y, id, AxisX):
		a.Direction.X = -a.Direction.X
		s.bounced(id, AxisX, BounceCapture)
	default:
		a.Position.X = nx
	}

	ny := a.Position.Y + d.Y
	switch {
	case ny-a.Radius < 0 || ny+a.Radius > s.screenHeight:
		a.Direction.Y = -a.Direction.Y
		s.bounced(id, AxisY, BounceBoundary)
	case s.capture(a.Position.X, ny, id, AxisY):
		a.Direction.Y = -a.Direction.Y
		s.bounced(id, AxisY, BounceCapture)
	default:
		a.Position.Y = ny
	}
}

// SetPlayerSpeed rebinds the speed of both agents. It takes effect with the next Update.
func (s *Simulation) SetPlayerSpeed(speed float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.agents {
		s.agents[i].Speed = speed
	}
}

// Agent returns a copy of the agent with the given ID.
func (s *Simulation) Agent(id board.Owner) Agent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agents[id]
}

func (s *Simulation) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Fingerprint hashes the current board layout.
func (s *Simulation) Fingerprint() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Fingerprint()
}

func (s *Simulation) CaptureMode() CaptureMode { return s.mode }
func (s *Simulation) PlayerRadius() float64    { return s.radius }

// ScreenSize returns the simulated area in screen units.
func (s *Simulation) ScreenSize() (width, height float64) {
	return s.screenWidth, s.screenHeight
}

func (s *Simulation) bounced(id board.Owner, axis Axis, reason BounceReason) {
	s.stats.Bounces[id]++
	s.publish(EventAgentBounced, BounceEvent{
		Frame:  s.stats.Frames,
		Agent:  id,
		Axis:   axis,
		Reason: reason,
	})
}

// publish queues an event; Update delivers the frame's events as one batch
// once both agents have moved.
func (s *Simulation) publish(eventType string, data any) {
	if s.bus == nil {
		return
	}
	s.pending = append(s.pending, bus.NewEvent(eventType, s.source, data))
}

func (s *Simulation) flush() {
	if len(s.pending) == 0 {
		return
	}
	events := s.pending
	s.pending = s.pending[:0]
	if err := s.bus.PublishBatch(events...); err != nil {
		s.logger.Warn("event handler failed",
			log.Uint64("frame", s.stats.Frames),
			log.Int("events", len(events)),
			log.Error(err),
		)
	}
}
