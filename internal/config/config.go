package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/territory/internal/core/sim"
	"github.com/zeusync/territory/internal/render"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Backends accepted by Render.Backend.
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
	BackendHeadless = "headless"
)

// Config is the full run configuration, decoded from YAML over Default().
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Player   PlayerConfig   `yaml:"player"`
	Capture  CaptureConfig  `yaml:"capture"`
	Colors   ColorsConfig   `yaml:"colors"`
	Render   RenderConfig   `yaml:"render"`
	Headless HeadlessConfig `yaml:"headless"`
	Log      LogConfig      `yaml:"log"`
}

type BoardConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	CellSize float64 `yaml:"cell_size"`
}

type PlayerConfig struct {
	Speed        float64 `yaml:"speed"`
	RadiusFactor float64 `yaml:"radius_factor"`
}

type CaptureConfig struct {
	// Mode is "bbox" or "exact".
	Mode string `yaml:"mode"`
}

type AgentColors struct {
	Body sim.Color `yaml:"body"`
	Cell sim.Color `yaml:"cell"`
}

// ColorsConfig values are quoted hex strings in YAML ("#RRGGBB" or "#RRGGBBAA").
type ColorsConfig struct {
	AgentA     AgentColors `yaml:"agent_a"`
	AgentB     AgentColors `yaml:"agent_b"`
	Background sim.Color   `yaml:"background"`
	Grid       sim.Color   `yaml:"grid"`
	Outline    sim.Color   `yaml:"outline"`
	Text       sim.Color   `yaml:"text"`
}

type RenderConfig struct {
	Backend  string `yaml:"backend"`
	TPS      int    `yaml:"tps"`
	Scale    int    `yaml:"scale"`
	Title    string `yaml:"title"`
	ShowGrid bool   `yaml:"show_grid"`
	Overlay  bool   `yaml:"overlay"`
}

type HeadlessConfig struct {
	Frames        int     `yaml:"frames"`
	DT            float64 `yaml:"dt"`
	SnapshotEvery int     `yaml:"snapshot_every"`
	OutputDir     string  `yaml:"output_dir"`
	FontSize      float64 `yaml:"font_size"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
	// OutputPaths are zap sink URLs; empty means stderr.
	OutputPaths []string `yaml:"output_paths"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	palette := sim.DefaultPalette()
	theme := render.DefaultTheme()
	return Config{
		Board: BoardConfig{
			Width:    40,
			Height:   20,
			CellSize: 20,
		},
		Player: PlayerConfig{
			Speed:        500,
			RadiusFactor: 0.5,
		},
		Capture: CaptureConfig{Mode: "bbox"},
		Colors: ColorsConfig{
			AgentA:     AgentColors{Body: palette.Bodies[sim.AgentA], Cell: palette.Cells[sim.AgentA]},
			AgentB:     AgentColors{Body: palette.Bodies[sim.AgentB], Cell: palette.Cells[sim.AgentB]},
			Background: theme.Background,
			Grid:       theme.Grid,
			Outline:    theme.Outline,
			Text:       theme.Text,
		},
		Render: RenderConfig{
			Backend:  BackendWindow,
			TPS:      60,
			Scale:    1,
			Title:    "territory",
			ShowGrid: theme.ShowGrid,
			Overlay:  theme.Overlay,
		},
		Headless: HeadlessConfig{
			Frames:        600,
			DT:            1.0 / 60,
			SnapshotEvery: 60,
			OutputDir:     "frames",
			FontSize:      14,
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads a YAML file. Keys missing from the file keep their Default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// LoadYAML decodes r over Default() and validates the result.
func LoadYAML(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks ranges. The simulation core panics on bad geometry, so it is
// rejected here first.
func (c *Config) Validate() error {
	switch {
	case c.Board.Width <= 0 || c.Board.Height <= 0:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	case !finitePositive(c.Board.CellSize):
		return fmt.Errorf("%w: board.cell_size must be > 0, got %v", ErrInvalidConfig, c.Board.CellSize)
	case math.IsNaN(c.Player.Speed) || math.IsInf(c.Player.Speed, 0):
		return fmt.Errorf("%w: player.speed must be finite", ErrInvalidConfig)
	case !finitePositive(c.Player.RadiusFactor):
		return fmt.Errorf("%w: player.radius_factor must be > 0, got %v", ErrInvalidConfig, c.Player.RadiusFactor)
	}

	radius := c.Board.CellSize * c.Player.RadiusFactor
	shortSide := math.Min(float64(c.Board.Width), float64(c.Board.Height)) * c.Board.CellSize
	if 2*radius >= shortSide {
		return fmt.Errorf("%w: player radius %v does not fit a %v-unit side", ErrInvalidConfig, radius, shortSide)
	}

	if _, err := sim.ParseCaptureMode(c.Capture.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	switch c.Log.Encoding {
	case "", "json", "console":
	default:
		return fmt.Errorf("%w: log.encoding must be json or console, got %q", ErrInvalidConfig, c.Log.Encoding)
	}

	switch c.Render.Backend {
	case BackendWindow, BackendTerminal, BackendHeadless:
	default:
		return fmt.Errorf("%w: unknown render.backend %q", ErrInvalidConfig, c.Render.Backend)
	}
	if c.Render.TPS <= 0 {
		return fmt.Errorf("%w: render.tps must be > 0, got %d", ErrInvalidConfig, c.Render.TPS)
	}
	if c.Render.Scale <= 0 {
		return fmt.Errorf("%w: render.scale must be > 0, got %d", ErrInvalidConfig, c.Render.Scale)
	}

	if c.Render.Backend == BackendHeadless {
		if c.Headless.Frames <= 0 {
			return fmt.Errorf("%w: headless.frames must be > 0", ErrInvalidConfig)
		}
		if !finitePositive(c.Headless.DT) {
			return fmt.Errorf("%w: headless.dt must be > 0", ErrInvalidConfig)
		}
		if c.Headless.SnapshotEvery < 0 {
			return fmt.Errorf("%w: headless.snapshot_every must be >= 0", ErrInvalidConfig)
		}
		if strings.TrimSpace(c.Headless.OutputDir) == "" {
			return fmt.Errorf("%w: headless.output_dir must not be empty", ErrInvalidConfig)
		}
	}
	return nil
}

// Simulation converts the board/player/capture/colors sections to a sim.Config.
func (c *Config) Simulation() (sim.Config, error) {
	mode, err := sim.ParseCaptureMode(c.Capture.Mode)
	if err != nil {
		return sim.Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return sim.Config{
		BoardWidth:   c.Board.Width,
		BoardHeight:  c.Board.Height,
		CellSize:     c.Board.CellSize,
		PlayerSpeed:  c.Player.Speed,
		RadiusFactor: c.Player.RadiusFactor,
		CaptureMode:  mode,
		Palette: sim.Palette{
			Bodies: [sim.AgentCount]sim.Color{c.Colors.AgentA.Body, c.Colors.AgentB.Body},
			Cells:  [sim.AgentCount]sim.Color{c.Colors.AgentA.Cell, c.Colors.AgentB.Cell},
		},
	}, nil
}

// Theme extracts the non-agent colors and drawing toggles.
func (c *Config) Theme() render.Theme {
	return render.Theme{
		Background: c.Colors.Background,
		Grid:       c.Colors.Grid,
		Outline:    c.Colors.Outline,
		Text:       c.Colors.Text,
		ShowGrid:   c.Render.ShowGrid,
		Overlay:    c.Render.Overlay,
	}
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
