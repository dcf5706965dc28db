package brushmc

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// Stroke scripts are a hand-authoring alternative to the JSON stroke
// array. One stroke per line:
//
//	circle <pigment> <cx> <cy> <radius> <intensity>
//	square <pigment> <cx> <cy> <side> <intensity>
//
// Blank lines are skipped and '#' starts a comment.

// LoadStrokeScript parses a script file into stroke configs, in file
// order.
func LoadStrokeScript(path string) ([]StrokeCfg, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var strokes []StrokeCfg
	for n, line := range strings.Split(string(data), "\n") {
		s, err := ParseStrokeLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, n+1, err)
		}
		if s != nil {
			strokes = append(strokes, *s)
		}
	}
	DebugLog("Loaded %d strokes from script %s", len(strokes), path)
	return strokes, nil
}

// ParseStrokeLine tokenizes one script line. Returns (nil, nil) for
// blank or comment-only lines.
func ParseStrokeLine(line string) (*StrokeCfg, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, nil
	}
	if len(tokens) != 6 {
		return nil, fmt.Errorf("want 6 fields (shape pigment cx cy extent intensity), got %d", len(tokens))
	}

	shape := tokens[0]
	if shape != "circle" && shape != "square" {
		return nil, fmt.Errorf("unknown stroke shape %q", shape)
	}
	pid, err := strconv.ParseUint(tokens[1], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("pigment id: %w", err)
	}
	cx, err := strconv.Atoi(tokens[2])
	if err != nil {
		return nil, fmt.Errorf("cx: %w", err)
	}
	cy, err := strconv.Atoi(tokens[3])
	if err != nil {
		return nil, fmt.Errorf("cy: %w", err)
	}
	extent, err := strconv.Atoi(tokens[4])
	if err != nil {
		return nil, fmt.Errorf("extent: %w", err)
	}
	intensity, err := strconv.ParseFloat(tokens[5], 64)
	if err != nil {
		return nil, fmt.Errorf("intensity: %w", err)
	}

	s := &StrokeCfg{
		Shape:     shape,
		Pigment:   uint8(pid),
		X:         cx,
		Y:         cy,
		Intensity: intensity,
	}
	if shape == "circle" {
		s.Radius = extent
	} else {
		s.Side = extent
	}
	return s, nil
}
