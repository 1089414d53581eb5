// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package function

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/parametric/internal/logging"
)

// RegisterBuiltins registers circle, square, ngon, fixed and the
// composites sum, multiply, morph and directed_line.
func RegisterBuiltins(r *Registry) {
	r.Register("circle", Circle{})
	r.Register("square", Square{})
	r.Register("ngon", NGon{})
	r.Register("fixed", Fixed{})

	r.Register("sum", Sum{})
	r.Register("multiply", Multiply{})
	r.Register("morph", Morph{})
	r.Register("directed_line", DirectedLine{})

	logging.Logger().Debug("registered built-in functions")
}

// Circle is a point on a circle of radius size at angle.
type Circle struct{}

func (Circle) Eval(s *Scope, cfg *Config) (gg.Point, error) {
	size := s.Num(cfg, "size", 100)
	angle := s.Num(cfg, "angle", 0)
	return gg.Pt(size*math.Cos(angle), size*math.Sin(angle)), nil
}

// Square walks the sides of an axis-aligned square of half-width size.
// The angle, taken modulo 2π, is split into four quarter turns, one per
// side, each traversed linearly.
type Square struct{}

func (Square) Eval(s *Scope, cfg *Config) (gg.Point, error) {
	size := s.Num(cfg, "size", 100)
	angle := s.Num(cfg, "angle", 0)

	const quarter = math.Pi / 2
	side := int(floorMod(math.Floor(angle/quarter), 4))
	t := floorMod(angle, quarter) / quarter

	switch side {
	case 0:
		return gg.Pt(size*(1-2*t), size), nil
	case 1:
		return gg.Pt(size, size*(1-2*t)), nil
	case 2:
		return gg.Pt(size*(-1+2*t), -size), nil
	default:
		return gg.Pt(-size, size*(-1+2*t)), nil
	}
}

// maxSides bounds the polygon side count so absurd values stay cheap and
// convert to int safely.
const maxSides = 1 << 16

// NGon is a point on the edge of a regular polygon with circumradius size.
// Fractional side counts interpolate between the neighbouring integer
// polygons, which makes sides animatable.
type NGon struct{}

func (NGon) Eval(s *Scope, cfg *Config) (gg.Point, error) {
	size := s.Num(cfg, "size", 100)
	angle := s.Num(cfg, "angle", 0)
	sides := s.Num(cfg, "sides", 5)

	sides = math.Max(-maxSides, math.Min(sides, maxSides))
	angle = floorMod(angle, 2*math.Pi)

	if sides == math.Trunc(sides) {
		return ngonPoint(int(sides), size, angle), nil
	}

	lo := int(math.Floor(sides))
	hi := int(math.Ceil(sides))
	frac := sides - float64(lo)
	if lo < 2 {
		// Below two sides, blend between the segment and the triangle.
		lo, hi = 2, 3
		frac = math.Max(0, sides-2)
	}
	return lerp(ngonPoint(lo, size, angle), ngonPoint(hi, size, angle), frac), nil
}

// ngonPoint returns the point at angle (in [0, 2π)) on the polygon with
// the given integer side count. Fewer than one side is the origin, one
// side is the circle and two sides is a segment along the x axis.
func ngonPoint(sides int, size, angle float64) gg.Point {
	switch {
	case sides < 1:
		return gg.Point{}
	case sides == 1:
		return gg.Pt(size*math.Cos(angle), size*math.Sin(angle))
	case sides == 2:
		t := angle/math.Pi - 1
		return gg.Pt(size*t, 0)
	}

	step := 2 * math.Pi / float64(sides)
	side := int(math.Floor(angle/step)) % sides
	t := floorMod(angle, step) / step

	a := gg.Pt(size*math.Cos(float64(side)*step), size*math.Sin(float64(side)*step))
	next := (side + 1) % sides
	b := gg.Pt(size*math.Cos(float64(next)*step), size*math.Sin(float64(next)*step))
	return lerp(a, b, t)
}

// Fixed is the constant point (x, y).
type Fixed struct{}

func (Fixed) Eval(s *Scope, cfg *Config) (gg.Point, error) {
	return gg.Pt(s.Num(cfg, "x", 0), s.Num(cfg, "y", 0)), nil
}

// floorMod is the modulo whose result takes the sign of y.
func floorMod(x, y float64) float64 {
	m := math.Mod(x, y)
	if m != 0 && (m < 0) != (y < 0) {
		m += y
	}
	return m
}

// lerp interpolates from a to b, returning the endpoints exactly at t=0
// and t=1.
func lerp(a, b gg.Point, t float64) gg.Point {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	return a.Lerp(b, t)
}
