package brushmc

import (
	"encoding/json"
	"fmt"
	"os"
)

// StrokeCfg describes one brush application. Strokes apply in array
// order; later strokes overwrite bag slots in their overlap region
// proportionally to their own falloff weight.
type StrokeCfg struct {
	Shape     string  `json:"shape"` // "circle" or "square"
	Pigment   uint8   `json:"pigment"`
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Radius    int     `json:"radius,omitempty"` // circle extent
	Side      int     `json:"side,omitempty"`   // square extent
	Intensity float64 `json:"intensity"`
}

// Apply validates and runs the stroke on a canvas.
func (s StrokeCfg) Apply(c *Canvas) error {
	switch s.Shape {
	case "circle":
		return c.StrokeCircle(s.Pigment, s.X, s.Y, s.Radius, s.Intensity)
	case "square":
		return c.StrokeSquare(s.Pigment, s.X, s.Y, s.Side, s.Intensity)
	default:
		return fmt.Errorf("unknown stroke shape %q (want circle or square)", s.Shape)
	}
}

type Config struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	BagSize int    `json:"bagSize"`
	Photons int    `json:"photons"`
	Seed    uint32 `json:"seed"`
	Out     string `json:"out,omitempty"`
	Workers int    `json:"workers,omitempty"`

	Strokes []StrokeCfg `json:"strokes,omitempty"`
	// Optional plain-text stroke list, applied after Strokes.
	StrokeScript string `json:"strokeScript,omitempty"`
}

const DefaultOut = "render.png"

// LoadConfig reads and validates a render config. The core simulation
// parameters have no inferred defaults: zero width, height, bag size or
// photon count is a configuration error, rejected here rather than
// anywhere near the per-pixel loop. Host-side knobs (output path,
// worker count) do default.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("config: width and height must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.BagSize <= 0 {
		return nil, fmt.Errorf("config: bagSize must be positive, got %d", cfg.BagSize)
	}
	if cfg.Photons <= 0 {
		return nil, fmt.Errorf("config: photons must be positive, got %d", cfg.Photons)
	}
	for i, s := range cfg.Strokes {
		if s.Shape != "circle" && s.Shape != "square" {
			return nil, fmt.Errorf("config: stroke %d has unknown shape %q", i, s.Shape)
		}
	}
	if cfg.Out == "" {
		cfg.Out = DefaultOut
	}
	DebugLog("Loaded config from %s: %dx%d, bag=%d, photons=%d, seed=%d, strokes=%d",
		path, cfg.Width, cfg.Height, cfg.BagSize, cfg.Photons, cfg.Seed, len(cfg.Strokes))
	return &cfg, nil
}
