// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pattern

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/parametric/function"
	"github.com/gogpu/parametric/internal/logging"
)

// Strategy decides which computed points are joined by segments.
type Strategy interface {
	// Name is the value of the pattern key that selects the strategy.
	Name() string

	// DefaultWidth is the line width used when the config sets none.
	DefaultWidth() float64

	// Build adds the segments of p's current configuration through
	// p.Add. It logs and adds nothing when the configuration cannot
	// produce lines.
	Build(p *Pattern)
}

// Segment is a built line: its current endpoints and the recipe that
// recomputes them.
type Segment struct {
	A, B   gg.Point
	Recipe Recipe
}

type segment struct {
	Segment
	line Line
}

// Pattern holds a configuration, its strategy and the segments built
// from them. It is not safe for concurrent use.
type Pattern struct {
	strategy Strategy
	reg      *function.Registry

	cfg        Config
	configured bool

	width, height int
	center        gg.Point
	autoCenter    bool

	batch Batch
	segs  []segment
}

// New returns a pattern for a window of the given size. A nil registry
// means function.NewRegistry().
func New(s Strategy, reg *function.Registry, width, height int) *Pattern {
	if reg == nil {
		reg = function.NewRegistry()
	}
	return &Pattern{
		strategy: s,
		reg:      reg,
		cfg:      DefaultConfig(),
		width:    width,
		height:   height,
	}
}

// Name returns the strategy name.
func (p *Pattern) Name() string { return p.strategy.Name() }

// Strategy returns the connection strategy.
func (p *Pattern) Strategy() Strategy { return p.strategy }

// Registry returns the registry points are evaluated with.
func (p *Pattern) Registry() *function.Registry { return p.reg }

// SetConfig stores cfg. Without an explicit center the window center is
// used, and follows later resizes. Existing segments are kept until the
// next Build.
func (p *Pattern) SetConfig(cfg Config) {
	p.cfg = cfg
	p.configured = true
	if cfg.Center != nil {
		p.center = *cfg.Center
		p.autoCenter = false
		return
	}
	p.autoCenter = true
	p.center = windowCenter(p.width, p.height)
	logging.Logger().Debug("pattern auto-center", "pattern", p.Name(), "x", p.center.X, "y", p.center.Y)
}

// Config returns the stored configuration.
func (p *Pattern) Config() Config { return p.cfg }

// Configured reports whether SetConfig has been called.
func (p *Pattern) Configured() bool { return p.configured }

// SetBatch sets the batch segments are added to.
func (p *Pattern) SetBatch(b Batch) { p.batch = b }

// Resize records a new window size. An auto center moves to the new
// window center; built segments are not recomputed.
func (p *Pattern) Resize(width, height int) {
	p.width, p.height = width, height
	if p.autoCenter {
		p.center = windowCenter(width, height)
	}
}

// Center returns the point every computed point is translated by.
func (p *Pattern) Center() gg.Point {
	if !p.configured {
		return windowCenter(p.width, p.height)
	}
	return p.center
}

func windowCenter(width, height int) gg.Point {
	return gg.Pt(float64(width/2), float64(height/2))
}

// Context returns the evaluation context of iteration n at time t.
func (p *Pattern) Context(n int, t float64) function.Context {
	return function.NewContext(n, t, p.cfg.Count)
}

// Point evaluates configured point i in ctx and translates it by the
// center.
func (p *Pattern) Point(i int, ctx function.Context) gg.Point {
	if i < 0 || i >= len(p.cfg.Points) {
		return p.Center()
	}
	return p.reg.EvaluateConfig(&p.cfg.Points[i], ctx).Add(p.Center())
}

// Points evaluates every configured point for iteration n at time t.
func (p *Pattern) Points(n int, t float64) []gg.Point {
	if len(p.cfg.Points) == 0 {
		return nil
	}
	ctx := p.Context(n, t)
	pts := make([]gg.Point, len(p.cfg.Points))
	for i := range pts {
		pts[i] = p.Point(i, ctx)
	}
	return pts
}

// Build discards the current segments and builds new ones at time 0.
// It returns the number of segments built.
func (p *Pattern) Build() int {
	p.segs = p.segs[:0]
	if p.batch == nil {
		logging.Logger().Warn("pattern has no batch, nothing built", "pattern", p.Name())
		return 0
	}
	p.batch.Reset()
	p.strategy.Build(p)
	logging.Logger().Debug("pattern built", "pattern", p.Name(), "lines", len(p.segs))
	return len(p.segs)
}

// Add adds a segment from a to b, to be recomputed by r. Strategies call
// it from Build.
func (p *Pattern) Add(r Recipe, a, b gg.Point) {
	if p.batch == nil {
		return
	}
	line := p.batch.AddLine(a, b, p.cfg.Color)
	p.segs = append(p.segs, segment{Segment: Segment{A: a, B: b, Recipe: r}, line: line})
}

// Update recomputes every segment at time t and moves its line.
func (p *Pattern) Update(t float64) {
	for i := range p.segs {
		s := &p.segs[i]
		s.A, s.B = s.Recipe.Endpoints(p, t)
		s.line.SetEndpoints(s.A, s.B)
	}
}

// LineWidth returns the configured width, or the strategy default.
func (p *Pattern) LineWidth() float64 {
	if p.cfg.Width > 0 {
		return p.cfg.Width
	}
	return p.strategy.DefaultWidth()
}

// Draw draws the batch with the pattern's line width. Nothing is drawn
// before the first successful Build.
func (p *Pattern) Draw() error {
	if p.batch == nil || len(p.segs) == 0 {
		return nil
	}
	return p.batch.Draw(p.LineWidth())
}

// Lines returns the line handles in build order.
func (p *Pattern) Lines() []Line {
	lines := make([]Line, len(p.segs))
	for i := range p.segs {
		lines[i] = p.segs[i].line
	}
	return lines
}

// LineCount returns the number of built segments.
func (p *Pattern) LineCount() int { return len(p.segs) }

// Segments returns a copy of the built segments in build order.
func (p *Pattern) Segments() []Segment {
	out := make([]Segment, len(p.segs))
	for i := range p.segs {
		out[i] = p.segs[i].Segment
	}
	return out
}
