package brushmc

import "time"

// Run renders one image from a config file: build the canvas, apply the
// strokes (single-threaded, before any dispatch), simulate, tone-map,
// persist. One-shot batch: no retry logic anywhere in here — a failed
// render is simply rerun by the caller, and a failed write can be
// retried against another path because the framebuffer stays valid.
func Run(cfgPath string) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	table := NewPigmentTable()
	canvas := NewCanvas(cfg.Width, cfg.Height, cfg.BagSize)

	strokes := cfg.Strokes
	if cfg.StrokeScript != "" {
		scripted, err := LoadStrokeScript(cfg.StrokeScript)
		if err != nil {
			return err
		}
		strokes = append(strokes, scripted...)
	}
	for _, s := range strokes {
		if err := s.Apply(canvas); err != nil {
			return err
		}
	}

	start := time.Now()
	fb, err := Render(NewCPUDispatcher(cfg.Workers), table, canvas, cfg.Photons, cfg.Seed)
	if err != nil {
		return err
	}
	DebugLog("Simulated %d pixels × %d photons in %s", cfg.Width*cfg.Height, cfg.Photons, time.Since(start))

	ToneMap(fb)
	return WriteImage(fb, cfg.Out)
}
