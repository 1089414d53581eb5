// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pattern

import "github.com/gogpu/gg"

// Recipe recomputes the endpoints of a segment at a given time.
type Recipe interface {
	Endpoints(p *Pattern, t float64) (a, b gg.Point)
}

// PairRecipe joins two configured points of the same iteration. From and
// To index Config.Points. Closing marks the segment that closes a
// contour.
type PairRecipe struct {
	From, To int
	N        int
	Closing  bool
}

// Endpoints implements Recipe.
func (r PairRecipe) Endpoints(p *Pattern, t float64) (a, b gg.Point) {
	ctx := p.Context(r.N, t)
	return p.Point(r.From, ctx), p.Point(r.To, ctx)
}

// StepRecipe joins one configured point in iteration N to the same point
// in iteration Next.
type StepRecipe struct {
	Point   int
	N, Next int
}

// Endpoints implements Recipe.
func (r StepRecipe) Endpoints(p *Pattern, t float64) (a, b gg.Point) {
	return p.Point(r.Point, p.Context(r.N, t)), p.Point(r.Point, p.Context(r.Next, t))
}
