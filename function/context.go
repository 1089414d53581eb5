// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package function

import "math"

// Context is the set of names visible to parameter expressions during one
// evaluation. It is passed by value and never modified by the functions
// that receive it.
type Context struct {
	N         int     // iteration index in [0, Count)
	Time      float64 // seconds since the animation started
	Count     int     // total number of iterations
	AngleStep float64 // 2π/Count, or 0 when Count <= 0
}

// NewContext returns the context of iteration n at time t in a pattern
// of count iterations.
func NewContext(n int, t float64, count int) Context {
	step := 0.0
	if count > 0 {
		step = 2 * math.Pi / float64(count)
	}
	return Context{N: n, Time: t, Count: count, AngleStep: step}
}

// WithTime returns a copy of c with Time replaced.
func (c Context) WithTime(t float64) Context {
	c.Time = t
	return c
}

// Lookup implements expr.Env.
func (c Context) Lookup(name string) (float64, bool) {
	switch name {
	case "n":
		return float64(c.N), true
	case "time":
		return c.Time, true
	case "count":
		return float64(c.Count), true
	case "angle_step":
		return c.AngleStep, true
	case "pi":
		return math.Pi, true
	case "e":
		return math.E, true
	case "tau":
		return 2 * math.Pi, true
	}
	return 0, false
}
