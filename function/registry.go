// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package function

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/gogpu/gg"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/parametric/internal/logging"
)

// MaxDepth is the deepest nesting of composite configs a Scope evaluates.
const MaxDepth = 32

// FallbackName is the function returned for unknown names. It is always
// registered.
const FallbackName = "circle"

// ErrTooDeep is returned when composite configs nest deeper than MaxDepth,
// which usually means a config refers to itself.
var ErrTooDeep = errors.New("function: composite nesting too deep")

// Func is a point function. Eval reads its parameters from cfg, resolving
// them in the scope's context, and returns a point relative to the
// pattern origin. Composite functions evaluate nested configs through s.
//
// Func values are compared by the registry tests, so implementations
// should be comparable types.
type Func interface {
	Eval(s *Scope, cfg *Config) (gg.Point, error)
}

// Scope is the environment of one evaluation: the registry nested
// configs resolve through, the context their parameters see and the
// current nesting depth.
type Scope struct {
	reg   *Registry
	ctx   Context
	depth int
}

// Context returns the evaluation context.
func (s *Scope) Context() Context { return s.ctx }

// Registry returns the registry nested configs resolve through.
func (s *Scope) Registry() *Registry { return s.reg }

// Num resolves the named parameter of cfg, or returns def when cfg does
// not set it.
func (s *Scope) Num(cfg *Config, name string, def float64) float64 {
	p, ok := cfg.Param(name)
	if !ok {
		return def
	}
	return p.Resolve(s.ctx)
}

// Eval evaluates a nested config one level deeper than s. An empty
// function name means circle.
func (s *Scope) Eval(cfg *Config) (gg.Point, error) {
	return s.EvalDefault(cfg, FallbackName)
}

// EvalDefault is Eval with def used for an empty function name.
func (s *Scope) EvalDefault(cfg *Config, def string) (gg.Point, error) {
	if s.depth >= MaxDepth {
		return gg.Point{}, fmt.Errorf("%w: %d levels at %q", ErrTooDeep, s.depth, cfg.Name(def))
	}
	fn := s.reg.Get(cfg.Name(def))
	sub := &Scope{reg: s.reg, ctx: s.ctx, depth: s.depth + 1}
	return fn.Eval(sub, cfg)
}

// RegistryOption configures a Registry during creation.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	advanced bool
}

// WithAdvanced enables or disables registration of the curve family
// (see RegisterAdvanced). It is enabled by default; the built-in set alone
// is enough for every pattern.
func WithAdvanced(enabled bool) RegistryOption {
	return func(o *registryOptions) {
		o.advanced = enabled
	}
}

// Registry maps names to point functions. Register is meant for setup;
// once patterns are evaluating, the registry is only read.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry returns a registry holding the built-in functions and,
// unless disabled, the curve family.
func NewRegistry(opts ...RegistryOption) *Registry {
	o := registryOptions{advanced: true}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{funcs: make(map[string]Func)}
	RegisterBuiltins(r)
	if o.advanced {
		RegisterAdvanced(r)
	}
	return r
}

// Register binds name to fn, replacing any previous binding. Registering
// one Func under several names makes aliases.
func (r *Registry) Register(name string, fn Func) {
	r.funcs[norm.NFC.String(name)] = fn
}

// Lookup returns the function bound to name.
func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.funcs[norm.NFC.String(name)]
	return fn, ok
}

// Get returns the function bound to name, or circle with a diagnostic if
// there is none.
func (r *Registry) Get(name string) Func {
	if fn, ok := r.Lookup(name); ok {
		return fn
	}
	logging.Logger().Warn("function not found, using fallback", "name", name, "fallback", FallbackName)
	return r.funcs[FallbackName]
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Evaluate evaluates the function bound to name with the parameters of
// cfg in ctx. It never fails: errors, panics and non-finite results are
// logged and yield the origin.
func (r *Registry) Evaluate(name string, cfg *Config, ctx Context) (pt gg.Point) {
	defer func() {
		if v := recover(); v != nil {
			logging.Logger().Warn("point function panicked", "func", name, "panic", v)
			pt = gg.Point{}
		}
	}()

	fn := r.Get(name)
	s := &Scope{reg: r, ctx: ctx}
	p, err := fn.Eval(s, cfg)
	if err != nil {
		logging.Logger().Warn("point function failed", "func", name, "err", err)
		return gg.Point{}
	}
	if !isFinite(p) {
		logging.Logger().Warn("point function produced a non-finite point", "func", name, "x", p.X, "y", p.Y)
		return gg.Point{}
	}
	return p
}

// EvaluateConfig is Evaluate with the name taken from cfg, defaulting to
// circle.
func (r *Registry) EvaluateConfig(cfg *Config, ctx Context) gg.Point {
	return r.Evaluate(cfg.Name(FallbackName), cfg, ctx)
}

func isFinite(p gg.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
