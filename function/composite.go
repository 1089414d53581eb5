// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package function

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/parametric/internal/logging"
)

// Sum adds the points of its nested functions.
type Sum struct{}

func (Sum) Eval(s *Scope, cfg *Config) (gg.Point, error) {
	var total gg.Point
	for i := range cfg.Functions {
		p, err := s.Eval(&cfg.Functions[i])
		if err != nil {
			return gg.Point{}, err
		}
		total = total.Add(p)
	}
	return total, nil
}

// Multiply operations.
const (
	OpElementwise = "elementwise"
	OpScalarX     = "scalar_x"
	OpScalarY     = "scalar_y"
)

// Multiply folds its nested functions by multiplication, starting from
// the first one's point. The operation parameter selects which axes each
// further point multiplies: both (elementwise), only x (scalar_x) or only
// y (scalar_y).
type Multiply struct{}

func (Multiply) Eval(s *Scope, cfg *Config) (gg.Point, error) {
	if len(cfg.Functions) == 0 {
		return gg.Point{}, nil
	}

	op := OpElementwise
	if p, ok := cfg.Param("operation"); ok {
		op = p.String()
	}
	switch op {
	case OpElementwise, OpScalarX, OpScalarY:
	default:
		logging.Logger().Warn("unknown multiply operation, factors ignored", "operation", op)
	}

	result, err := s.Eval(&cfg.Functions[0])
	if err != nil {
		return gg.Point{}, err
	}
	for i := 1; i < len(cfg.Functions); i++ {
		p, err := s.Eval(&cfg.Functions[i])
		if err != nil {
			return gg.Point{}, err
		}
		switch op {
		case OpElementwise:
			result.X *= p.X
			result.Y *= p.Y
		case OpScalarX:
			result.X *= p.X
		case OpScalarY:
			result.Y *= p.Y
		}
	}
	return result, nil
}

// Morph interpolates along its list of nested functions. The parameter t,
// clamped to [0, 1], spans the whole list: with k functions, segment
// t·(k-1) selects the bracketing pair and its fractional part the blend.
type Morph struct{}

func (Morph) Eval(s *Scope, cfg *Config) (gg.Point, error) {
	fns := cfg.Functions
	if len(fns) == 0 {
		return gg.Point{}, nil
	}
	t := math.Max(0, math.Min(1, s.Num(cfg, "t", 0)))
	if len(fns) == 1 {
		return s.Eval(&fns[0])
	}

	segment := t * float64(len(fns)-1)
	i := int(segment)
	frac := segment - float64(i)
	if i >= len(fns)-1 {
		i = len(fns) - 2
		frac = 1
	}

	a, err := s.Eval(&fns[i])
	if err != nil {
		return gg.Point{}, err
	}
	b, err := s.Eval(&fns[i+1])
	if err != nil {
		return gg.Point{}, err
	}
	return lerp(a, b, frac), nil
}

// degenerateLength is the distance below which directed_line treats its
// endpoints as coincident.
const degenerateLength = 1e-4

// DirectedLine is a point positioned relative to the line from one
// nested function to another: distance along the direction (rotated by
// rotation radians) from the start, then offset along its left normal.
// Coincident endpoints yield the start point.
type DirectedLine struct{}

func (DirectedLine) Eval(s *Scope, cfg *Config) (gg.Point, error) {
	distance := s.Num(cfg, "distance", 0)
	offset := s.Num(cfg, "offset", 0)
	rotation := s.Num(cfg, "rotation", 0)

	fromCfg, toCfg := cfg.From, cfg.To
	if fromCfg == nil {
		fromCfg = fixedAt(-50, 0)
	}
	if toCfg == nil {
		toCfg = fixedAt(50, 0)
	}

	from, err := s.EvalDefault(fromCfg, "fixed")
	if err != nil {
		return gg.Point{}, err
	}
	to, err := s.EvalDefault(toCfg, "fixed")
	if err != nil {
		return gg.Point{}, err
	}

	d := to.Sub(from)
	length := d.Length()
	if length < degenerateLength {
		return from, nil
	}

	dir := d.Div(length)
	if rotation != 0 {
		dir = dir.Rotate(rotation)
	}
	p := from.Add(dir.Mul(distance))
	if offset != 0 {
		p = p.Add(gg.Pt(-dir.Y, dir.X).Mul(offset))
	}
	return p, nil
}

func fixedAt(x, y float64) *Config {
	c := &Config{Func: "fixed"}
	return c.Set("x", Number(x)).Set("y", Number(y))
}
