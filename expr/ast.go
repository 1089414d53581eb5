// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math"
)

type node interface {
	eval(env Env) (float64, error)
}

type numberNode float64

func (n numberNode) eval(Env) (float64, error) { return float64(n), nil }

type nameNode string

func (n nameNode) eval(env Env) (float64, error) {
	if env != nil {
		if v, ok := env.Lookup(string(n)); ok {
			return v, nil
		}
	}
	if v, ok := constants[string(n)]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownName, string(n))
}

type negNode struct {
	x node
}

func (n *negNode) eval(env Env) (float64, error) {
	v, err := n.x.eval(env)
	if err != nil {
		return 0, err
	}
	return -v, nil
}

type binaryNode struct {
	op   string
	x, y node
}

func (n *binaryNode) eval(env Env) (float64, error) {
	x, err := n.x.eval(env)
	if err != nil {
		return 0, err
	}
	y, err := n.y.eval(env)
	if err != nil {
		return 0, err
	}

	var v float64
	switch n.op {
	case "+":
		v = x + y
	case "-":
		v = x - y
	case "*":
		v = x * y
	case "/":
		if y == 0 {
			return 0, fmt.Errorf("%w: %g / 0", ErrDivByZero, x)
		}
		v = x / y
	case "//":
		if y == 0 {
			return 0, fmt.Errorf("%w: %g // 0", ErrDivByZero, x)
		}
		v = math.Floor(x / y)
	case "%":
		if y == 0 {
			return 0, fmt.Errorf("%w: %g %% 0", ErrDivByZero, x)
		}
		// The result takes the sign of the divisor.
		v = math.Mod(x, y)
		if v != 0 && (v < 0) != (y < 0) {
			v += y
		}
	case "**":
		if x == 0 && y < 0 {
			return 0, fmt.Errorf("%w: 0 ** %g", ErrDivByZero, y)
		}
		v = math.Pow(x, y)
	default:
		return 0, fmt.Errorf("%w: operator %q", ErrSyntax, n.op)
	}
	return finite(v, n.op)
}

type callNode struct {
	name string
	fn   builtin
	args []node
}

func (n *callNode) eval(env Env) (float64, error) {
	args := make([]float64, len(n.args))
	for i, a := range n.args {
		v, err := a.eval(env)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	return finite(n.fn.fn(args), n.name)
}

func finite(v float64, op string) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s produced %g", ErrNonFinite, op, v)
	}
	return v, nil
}
