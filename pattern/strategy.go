// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pattern

import "github.com/gogpu/parametric/internal/logging"

// Default line widths.
const (
	DefaultWidth           = 2.0
	DefaultConnectAllWidth = 0.5
)

// manyLines is the segment count above which connectAll warns.
const manyLines = 1000

// Strategies returns the built-in strategies keyed by name.
func Strategies() map[string]Strategy {
	m := make(map[string]Strategy, 4)
	for _, s := range []Strategy{Connect{}, ConnectAll{}, ConnectClosed{}, ConnectToNext{}} {
		m[s.Name()] = s
	}
	return m
}

// Connect joins neighbouring points of each iteration.
type Connect struct{}

func (Connect) Name() string          { return "connect" }
func (Connect) DefaultWidth() float64 { return DefaultWidth }

func (s Connect) Build(p *Pattern) {
	cfg := p.Config()
	if len(cfg.Points) < 2 {
		logging.Logger().Warn("pattern needs at least 2 points", "pattern", s.Name(), "points", len(cfg.Points))
		return
	}
	for n := 0; n < cfg.Count; n++ {
		pts := p.Points(n, 0)
		for i := 0; i+1 < len(pts); i++ {
			p.Add(PairRecipe{From: i, To: i + 1, N: n}, pts[i], pts[i+1])
		}
	}
}

// ConnectAll joins every pair of points of each iteration.
type ConnectAll struct{}

func (ConnectAll) Name() string          { return "connectAll" }
func (ConnectAll) DefaultWidth() float64 { return DefaultConnectAllWidth }

func (s ConnectAll) Build(p *Pattern) {
	cfg := p.Config()
	np := len(cfg.Points)
	if np < 2 {
		logging.Logger().Warn("pattern needs at least 2 points", "pattern", s.Name(), "points", np)
		return
	}
	if total := max(cfg.Count, 0) * np * (np - 1) / 2; total > manyLines {
		logging.Logger().Warn("pattern creates many lines", "pattern", s.Name(), "lines", total)
	}
	for n := 0; n < cfg.Count; n++ {
		pts := p.Points(n, 0)
		for i := range pts {
			for j := i + 1; j < len(pts); j++ {
				p.Add(PairRecipe{From: i, To: j, N: n}, pts[i], pts[j])
			}
		}
	}
}

// ConnectClosed joins neighbouring points and the last point back to the
// first. The fill flag is recorded but not drawn.
type ConnectClosed struct{}

func (ConnectClosed) Name() string          { return "connectClosed" }
func (ConnectClosed) DefaultWidth() float64 { return DefaultWidth }

func (s ConnectClosed) Build(p *Pattern) {
	cfg := p.Config()
	if len(cfg.Points) < 2 {
		logging.Logger().Warn("pattern needs at least 2 points", "pattern", s.Name(), "points", len(cfg.Points))
		return
	}
	for n := 0; n < cfg.Count; n++ {
		pts := p.Points(n, 0)
		last := len(pts) - 1
		for i := range pts {
			if i == last {
				p.Add(PairRecipe{From: i, To: 0, N: n, Closing: true}, pts[i], pts[0])
				continue
			}
			p.Add(PairRecipe{From: i, To: i + 1, N: n}, pts[i], pts[i+1])
		}
	}
}

// ConnectToNext joins each point of iteration n to the same point of
// iteration n+1. With CloseLoop the last iteration joins the first;
// without it the last iteration has no outgoing segments.
type ConnectToNext struct{}

func (ConnectToNext) Name() string          { return "connectToNext" }
func (ConnectToNext) DefaultWidth() float64 { return DefaultWidth }

func (s ConnectToNext) Build(p *Pattern) {
	cfg := p.Config()
	if cfg.Count < 2 {
		logging.Logger().Warn("pattern needs at least 2 iterations", "pattern", s.Name(), "count", cfg.Count)
		return
	}
	if len(cfg.Points) == 0 {
		logging.Logger().Warn("pattern has no points", "pattern", s.Name())
		return
	}

	// Iteration n's points are the previous iteration's "next" points.
	first := p.Points(0, 0)
	cur := first
	for n := 0; n < cfg.Count; n++ {
		next, nextN := first, 0
		switch {
		case n+1 < cfg.Count:
			nextN = n + 1
			next = p.Points(nextN, 0)
		case !cfg.CloseLoop:
			return
		}
		for i := range cur {
			p.Add(StepRecipe{Point: i, N: n, Next: nextN}, cur[i], next[i])
		}
		cur = next
	}
}
