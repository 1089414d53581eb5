// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pattern

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"

	"github.com/gogpu/parametric/function"
	"github.com/gogpu/parametric/internal/logging"
)

// Defaults for Config fields.
const (
	DefaultPattern = "connect"
	DefaultCount   = 36
)

// White is the default line color.
var White = gg.RGB(1, 1, 1)

// Config is the configuration of one pattern.
type Config struct {
	// Pattern names the connection strategy.
	Pattern string

	// Points are the point functions evaluated for every iteration.
	Points []function.Config

	// Count is the number of iterations.
	Count int

	// Center translates every point. Nil means the window center.
	Center *gg.Point

	Color gg.RGBA

	// Width is the line width. Zero or less selects the strategy default.
	Width float64

	// CloseLoop makes connectToNext join the last iteration to the first.
	CloseLoop bool

	// Fill is recorded for connectClosed but not drawn.
	Fill bool
}

// DefaultConfig returns a Config with every documented default set.
func DefaultConfig() Config {
	return Config{
		Pattern:   DefaultPattern,
		Count:     DefaultCount,
		Color:     White,
		CloseLoop: true,
	}
}

// UnmarshalJSON decodes a pattern object. Decoding starts from
// DefaultConfig; a key with a malformed value is logged and keeps its
// default.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = DefaultConfig()

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		logging.Logger().Warn("pattern config is not an object, using defaults", "config", string(data))
		return nil
	}

	for key, val := range raw {
		var ok bool
		switch key {
		case "pattern":
			ok = json.Unmarshal(val, &c.Pattern) == nil
		case "points":
			ok = json.Unmarshal(val, &c.Points) == nil
			if !ok {
				c.Points = nil
			}
		case "count":
			var n float64
			if ok = json.Unmarshal(val, &n) == nil; ok {
				c.Count = int(math.Max(math.MinInt32, math.Min(n, math.MaxInt32)))
			}
		case "center":
			var xy []float64
			if ok = json.Unmarshal(val, &xy) == nil && len(xy) >= 2; ok {
				c.Center = &gg.Point{X: xy[0], Y: xy[1]}
			}
		case "color":
			c.Color, ok = parseColor(val)
		case "width":
			ok = json.Unmarshal(val, &c.Width) == nil
		case "line_width":
			if _, both := raw["width"]; both {
				logging.Logger().Debug("line_width ignored, width is set")
				continue
			}
			ok = json.Unmarshal(val, &c.Width) == nil
		case "close_loop":
			ok = json.Unmarshal(val, &c.CloseLoop) == nil
		case "fill":
			ok = json.Unmarshal(val, &c.Fill) == nil
		default:
			logging.Logger().Debug("ignoring unknown pattern key", "key", key)
			continue
		}
		if !ok {
			logging.Logger().Warn("malformed pattern key, using default", "key", key, "value", string(val))
		}
	}
	return nil
}

// parseColor accepts [r, g, b], [r, g, b, a] with 0-255 components, a
// "#rgb", "#rrggbb" or "#rrggbbaa" hex string, or an SVG color name.
func parseColor(data json.RawMessage) (gg.RGBA, bool) {
	var comps []float64
	if err := json.Unmarshal(data, &comps); err == nil {
		if len(comps) < 3 {
			return White, false
		}
		c := gg.RGBA{R: channel(comps[0]), G: channel(comps[1]), B: channel(comps[2]), A: 1}
		if len(comps) >= 4 {
			c.A = channel(comps[3])
		}
		return c, true
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return White, false
	}
	return ParseColor(s)
}

// ParseColor parses a hex string or an SVG color name.
func ParseColor(s string) (gg.RGBA, bool) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		switch len(hex) {
		case 3, 4, 6, 8:
		default:
			return White, false
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return White, false
		}
		return gg.Hex(hex), true
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return gg.FromColor(c), true
	}
	return White, false
}

func channel(v float64) float64 {
	return math.Max(0, math.Min(v, 255)) / 255
}
