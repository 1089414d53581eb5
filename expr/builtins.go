// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package expr

import "math"

// builtin is an allow-listed function. Calls with fewer than minArgs or
// more than maxArgs arguments are rejected at compile time.
type builtin struct {
	minArgs, maxArgs int
	fn               func(args []float64) float64
}

func unary(f func(float64) float64) builtin {
	return builtin{minArgs: 1, maxArgs: 1, fn: func(a []float64) float64 { return f(a[0]) }}
}

var builtins = map[string]builtin{
	"sin":   unary(math.Sin),
	"cos":   unary(math.Cos),
	"tan":   unary(math.Tan),
	"asin":  unary(math.Asin),
	"acos":  unary(math.Acos),
	"atan":  unary(math.Atan),
	"sinh":  unary(math.Sinh),
	"cosh":  unary(math.Cosh),
	"tanh":  unary(math.Tanh),
	"sqrt":  unary(math.Sqrt),
	"abs":   unary(math.Abs),
	"exp":   unary(math.Exp),
	"log10": unary(math.Log10),
	"floor": unary(math.Floor),
	"ceil":  unary(math.Ceil),
	"pow": {minArgs: 2, maxArgs: 2, fn: func(a []float64) float64 {
		return math.Pow(a[0], a[1])
	}},
	// log(x) is the natural logarithm, log(x, base) any other base.
	"log": {minArgs: 1, maxArgs: 2, fn: func(a []float64) float64 {
		if len(a) == 2 {
			return math.Log(a[0]) / math.Log(a[1])
		}
		return math.Log(a[0])
	}},
	// round rounds half to even, optionally to a number of decimal digits.
	"round": {minArgs: 1, maxArgs: 2, fn: func(a []float64) float64 {
		if len(a) == 2 {
			scale := math.Pow(10, math.Trunc(a[1]))
			return math.RoundToEven(a[0]*scale) / scale
		}
		return math.RoundToEven(a[0])
	}},
}

var constants = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"tau": 2 * math.Pi,
}
