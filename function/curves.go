// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package function

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/parametric/internal/logging"
)

// RegisterAdvanced registers the curve family and its aliases. It only
// adds names, so a registry without it is fully functional.
func RegisterAdvanced(r *Registry) {
	r.Register("ellipse", Ellipse{})
	r.Register("superellipse", Superellipse{})
	r.Register("hypocycloid", Hypocycloid{})
	r.Register("epicycloid", Epicycloid{})
	r.Register("lissajous", Lissajous{})
	r.Register("butterfly", Butterfly{})
	r.Register("cardioid", Cardioid{})
	r.Register("rose", Rose{})
	r.Register("spiral", Spiral{})

	r.Register("astroida", Hypocycloid{})
	r.Register("roses", Rose{})
	r.Register("lamé", Superellipse{})

	logging.Logger().Debug("registered advanced functions")
}

// nearZero is the threshold the curve family uses for degenerate
// parameters.
const nearZero = 1e-3

// Ellipse is (a·cos θ, b·sin θ).
type Ellipse struct{}

func (Ellipse) Eval(s *Scope, cfg *Config) (gg.Point, error) {
	a := s.Num(cfg, "a", 100)
	b := s.Num(cfg, "b", 100)
	angle := s.Num(cfg, "angle", 0)
	return gg.Pt(a*math.Cos(angle), b*math.Sin(angle)), nil
}

// Superellipse is the Lamé curve |x/a|^n + |y/b|^n = 1. For n >= 2 the
// point is the intersection with the ray at angle; below 2 the signed
// power parametrization is used. n is kept away from zero.
type Superellipse struct{}

func (Superellipse) Eval(s *Scope, cfg *Config) (gg.Point, error) {
	a := s.Num(cfg, "a", 100)
	b := s.Num(cfg, "b", 100)
	n := s.Num(cfg, "n", 2)
	angle := s.Num(cfg, "angle", 0)

	if math.Abs(n) < nearZero {
		n = nearZero
	}
	cos, sin := math.Cos(angle), math.Sin(angle)

	if n < 2 {
		return gg.Pt(
			a*sign(cos)*math.Pow(math.Abs(cos), 2/n),
			b*sign(sin)*math.Pow(math.Abs(sin), 2/n),
		), nil
	}

	switch {
	case math.Abs(cos) < nearZero:
		return gg.Pt(0, b*sign(sin)), nil
	case math.Abs(sin) < nearZero:
		return gg.Pt(a*sign(cos), 0), nil
	}
	denom := math.Pow(math.Abs(cos/a), n) + math.Pow(math.Abs(sin/b), n)
	if denom <= 0 {
		return gg.Point{}, nil
	}
	r := 1 / math.Pow(denom, 1/n)
	return gg.Pt(r*cos, r*sin), nil
}

// Hypocycloid is traced by a circle of radius r rolling inside one of
// radius R. R=4r gives the astroid.
type Hypocycloid struct{}

func (Hypocycloid) Eval(s *Scope, cfg *Config) (gg.Point, error) {
	bigR := s.Num(cfg, "R", 100)
	r := s.Num(cfg, "r", 25)
	t := s.Num(cfg, "angle", 0)

	if math.Abs(r) <= nearZero {
		return gg.Pt(bigR*math.Cos(t), bigR*math.Sin(t)), nil
	}
	k := (bigR - r) / r
	return gg.Pt(
		(bigR-r)*math.Cos(t)+r*math.Cos(k*t),
		(bigR-r)*math.Sin(t)-r*math.Sin(k*t),
	), nil
}

// Epicycloid is traced by a circle of radius r rolling outside one of
// radius R.
type Epicycloid struct{}

func (Epicycloid) Eval(s *Scope, cfg *Config) (gg.Point, error) {
	bigR := s.Num(cfg, "R", 100)
	r := s.Num(cfg, "r", 30)
	t := s.Num(cfg, "angle", 0)

	if math.Abs(r) <= nearZero {
		return gg.Pt(bigR*math.Cos(t), bigR*math.Sin(t)), nil
	}
	k := (bigR + r) / r
	return gg.Pt(
		(bigR+r)*math.Cos(t)-r*math.Cos(k*t),
		(bigR+r)*math.Sin(t)-r*math.Sin(k*t),
	), nil
}

// Lissajous is (a·sin(Aθ+δ), b·sin(Bθ)).
type Lissajous struct{}

func (Lissajous) Eval(s *Scope, cfg *Config) (gg.Point, error) {
	a := s.Num(cfg, "a", 200)
	b := s.Num(cfg, "b", 150)
	fa := s.Num(cfg, "A", 3)
	fb := s.Num(cfg, "B", 2)
	delta := s.Num(cfg, "delta", 0)
	t := s.Num(cfg, "angle", 0)
	return gg.Pt(a*math.Sin(fa*t+delta), b*math.Sin(fb*t)), nil
}

// Butterfly is Fay's butterfly curve r = e^cos θ − 2cos 4θ + sin⁵(θ/12),
// scaled by size.
type Butterfly struct{}

func (Butterfly) Eval(s *Scope, cfg *Config) (gg.Point, error) {
	size := s.Num(cfg, "size", 100)
	t := s.Num(cfg, "angle", 0)
	r := math.Exp(math.Cos(t)) - 2*math.Cos(4*t) + math.Pow(math.Sin(t/12), 5)
	return polar(size*r, t), nil
}

// Cardioid is r = size·(1 − cos θ).
type Cardioid struct{}

func (Cardioid) Eval(s *Scope, cfg *Config) (gg.Point, error) {
	size := s.Num(cfg, "size", 100)
	t := s.Num(cfg, "angle", 0)
	return polar(size*(1-math.Cos(t)), t), nil
}

// Rose is r = size·cos(kθ); k near zero collapses to the origin.
type Rose struct{}

func (Rose) Eval(s *Scope, cfg *Config) (gg.Point, error) {
	k := s.Num(cfg, "k", 2)
	size := s.Num(cfg, "size", 100)
	t := s.Num(cfg, "angle", 0)
	if math.Abs(k) < nearZero {
		return gg.Point{}, nil
	}
	return polar(size*math.Cos(k*t), t), nil
}

// Spiral is the Archimedean spiral r = size·θ/(2π·turns): the radius grows
// by size every turns full revolutions. turns near zero collapses to the
// origin.
type Spiral struct{}

func (Spiral) Eval(s *Scope, cfg *Config) (gg.Point, error) {
	size := s.Num(cfg, "size", 100)
	turns := s.Num(cfg, "turns", 1)
	t := s.Num(cfg, "angle", 0)
	if math.Abs(turns) < nearZero {
		return gg.Point{}, nil
	}
	return polar(size*t/(2*math.Pi*turns), t), nil
}

func polar(r, t float64) gg.Point {
	return gg.Pt(r*math.Cos(t), r*math.Sin(t))
}

// sign is 1 for non-negative x and -1 otherwise.
func sign(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return -1
}
