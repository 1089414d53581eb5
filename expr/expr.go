// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package expr

import (
	"sync"

	"github.com/gogpu/parametric/internal/logging"
)

// Env binds names to values for one evaluation.
type Env interface {
	Lookup(name string) (float64, bool)
}

// Vars is a map-backed Env.
type Vars map[string]float64

// Lookup implements Env.
func (v Vars) Lookup(name string) (float64, bool) {
	x, ok := v[name]
	return x, ok
}

// Program is a compiled expression. A Program is immutable and may be
// evaluated concurrently.
type Program struct {
	src  string
	root node
}

// Compile parses src.
func Compile(src string) (*Program, error) {
	root, err := parse(src)
	if err != nil {
		return nil, err
	}
	return &Program{src: src, root: root}, nil
}

// Source returns the text the program was compiled from.
func (p *Program) Source() string { return p.src }

// Eval evaluates the program against env. A nil env binds nothing but
// the constants.
func (p *Program) Eval(env Env) (float64, error) {
	return p.root.eval(env)
}

// maxCached bounds the compile cache. Configurations hold few distinct
// expressions; the bound only matters for callers that generate source
// text dynamically.
const maxCached = 4096

type compiled struct {
	prog *Program
	err  error
}

// Evaluator compiles expressions on first use and caches the result,
// including compile errors, by source text. The zero value is ready to
// use and an Evaluator is safe for concurrent use.
type Evaluator struct {
	mu    sync.Mutex
	cache map[string]compiled
}

// NewEvaluator returns an empty Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Compile returns the cached program for src, compiling it if needed.
func (ev *Evaluator) Compile(src string) (*Program, error) {
	ev.mu.Lock()
	c, ok := ev.cache[src]
	ev.mu.Unlock()
	if ok {
		return c.prog, c.err
	}

	prog, err := Compile(src)

	ev.mu.Lock()
	if ev.cache == nil || len(ev.cache) >= maxCached {
		ev.cache = make(map[string]compiled)
	}
	ev.cache[src] = compiled{prog: prog, err: err}
	ev.mu.Unlock()
	return prog, err
}

// Eval compiles (or fetches) src and evaluates it against env.
func (ev *Evaluator) Eval(src string, env Env) (float64, error) {
	prog, err := ev.Compile(src)
	if err != nil {
		return 0, err
	}
	return prog.Eval(env)
}

// Evaluate is Eval that never fails: on error it logs a warning and
// returns 0.
func (ev *Evaluator) Evaluate(src string, env Env) float64 {
	v, err := ev.Eval(src, env)
	if err != nil {
		logging.Logger().Warn("expression evaluation failed", "expr", src, "err", err)
		return 0
	}
	return v
}

var defaultEvaluator = NewEvaluator()

// Eval evaluates src with the package's shared Evaluator.
func Eval(src string, env Env) (float64, error) {
	return defaultEvaluator.Eval(src, env)
}

// Evaluate evaluates src with the package's shared Evaluator, logging
// any error and returning 0 in its place.
func Evaluate(src string, env Env) float64 {
	return defaultEvaluator.Evaluate(src, env)
}
