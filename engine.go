package parametric

import (
	"maps"
	"slices"
	"time"

	"github.com/gogpu/parametric/function"
	"github.com/gogpu/parametric/internal/logging"
	"github.com/gogpu/parametric/pattern"
)

// Engine owns one pattern per strategy and the active configuration.
// Hosts feed it window sizes and ticks and ask it to draw. It is not safe
// for concurrent use; drive it from the render loop.
type Engine struct {
	width, height int
	renderer      pattern.Renderer
	reg           *function.Registry

	patterns map[string]*pattern.Pattern
	current  *pattern.Pattern
	cfg      pattern.Config
	loaded   bool

	clock func() time.Time
	start time.Time
}

// New returns an engine for a window of the given size. Lines are drawn
// through r.
func New(width, height int, r pattern.Renderer, opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	reg := o.registry
	if reg == nil {
		reg = function.NewRegistry(function.WithAdvanced(o.advanced))
	}

	strategies := pattern.Strategies()
	for _, s := range o.strategies {
		strategies[s.Name()] = s
	}

	e := &Engine{
		width:    width,
		height:   height,
		renderer: r,
		reg:      reg,
		patterns: make(map[string]*pattern.Pattern, len(strategies)),
		clock:    o.clock,
	}
	for name, s := range strategies {
		e.patterns[name] = pattern.New(s, reg, width, height)
	}
	e.start = e.clock()
	return e
}

// Registry returns the function registry.
func (e *Engine) Registry() *function.Registry { return e.reg }

// Patterns returns the available pattern names in sorted order.
func (e *Engine) Patterns() []string {
	return slices.Sorted(maps.Keys(e.patterns))
}

// Load makes doc the active configuration and rebuilds the lines. A
// document without parametric_lines loads an empty default pattern.
func (e *Engine) Load(doc Document) {
	cfg := pattern.DefaultConfig()
	e.loaded = doc.Lines != nil
	if e.loaded {
		cfg = *doc.Lines
	}
	e.cfg = cfg
	e.rebuild()
}

// LoadConfig is Load for a single pattern configuration.
func (e *Engine) LoadConfig(cfg pattern.Config) {
	e.Load(Document{Lines: &cfg})
}

// Reload loads the document at path. On any error the active pattern is
// kept and the error returned.
func (e *Engine) Reload(path string) error {
	doc, err := LoadFile(path)
	if err != nil {
		logging.Logger().Warn("reload failed, keeping current pattern", "path", path, "err", err)
		return err
	}
	if doc.Lines == nil {
		logging.Logger().Warn("reload found no pattern, keeping current pattern", "path", path)
		return ErrNoLines
	}
	e.Load(doc)
	return nil
}

func (e *Engine) rebuild() {
	name := e.cfg.Pattern
	p, ok := e.patterns[name]
	if !ok {
		logging.Logger().Warn("pattern not found, using fallback",
			"pattern", name, "available", e.Patterns(), "fallback", pattern.DefaultPattern)
		name = pattern.DefaultPattern
		p = e.patterns[name]
	}
	e.current = p

	p.SetConfig(e.cfg)
	p.SetBatch(e.renderer.NewBatch())
	n := p.Build()
	logging.Logger().Info("pattern built", "pattern", name, "lines", n)
}

// Resize passes a new window size to every pattern and rebuilds the
// active one if a configuration is loaded.
func (e *Engine) Resize(width, height int) {
	e.width, e.height = width, height
	for _, p := range e.patterns {
		p.Resize(width, height)
	}
	if e.loaded {
		e.rebuild()
	}
}

// Size returns the current window size.
func (e *Engine) Size() (width, height int) { return e.width, e.height }

// Elapsed returns the seconds since the engine was created, measured
// with its clock.
func (e *Engine) Elapsed() float64 {
	return e.clock().Sub(e.start).Seconds()
}

// Tick updates the active pattern to the elapsed time and returns it.
func (e *Engine) Tick() float64 {
	t := e.Elapsed()
	e.Update(t)
	return t
}

// Update recomputes the active pattern's lines at time t.
func (e *Engine) Update(t float64) {
	if e.current == nil {
		return
	}
	e.current.Update(t)
}

// Draw draws the active pattern.
func (e *Engine) Draw() error {
	if e.current == nil {
		return nil
	}
	return e.current.Draw()
}

// Pattern returns the active pattern, or nil before the first Load.
func (e *Engine) Pattern() *pattern.Pattern { return e.current }

// PatternName returns the name of the active pattern, or "" before the
// first Load.
func (e *Engine) PatternName() string {
	if e.current == nil {
		return ""
	}
	return e.current.Name()
}

// LineCount returns the number of lines of the active pattern.
func (e *Engine) LineCount() int {
	if e.current == nil {
		return 0
	}
	return e.current.LineCount()
}
