// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package expr evaluates the arithmetic expressions used as live parameter
// values in pattern configurations.
//
// The language is deliberately small: numeric literals, names bound by an
// [Env] or by the constant table (pi, e, tau), the operators
// + - * / // % ** with Python precedence, parentheses and calls to a fixed
// allow-list of math functions:
//
//	sin cos tan asin acos atan sinh cosh tanh
//	sqrt abs pow exp log log10 floor ceil round
//
// Nothing outside that table and the environment is reachable, and
// evaluation has no side effects.
//
// # Strict and lenient evaluation
//
// [Eval] reports failures as errors matching [ErrSyntax], [ErrUnknownName],
// [ErrDivByZero], [ErrNonFinite] or [ErrArity]. [Evaluate] never fails: it
// logs the error and returns 0, which is what pattern parameters need so
// that a broken expression degrades the drawing instead of stopping it.
//
//	v := expr.Evaluate("size * cos(n * angle_step + time)", vars)
//
// Parsed programs are cached by source text; values are not, so an
// expression that references time changes every frame.
package expr
