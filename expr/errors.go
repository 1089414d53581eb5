// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package expr

import "errors"

// Errors reported by Compile and Eval. Returned errors wrap one of these
// with position or name detail; test with errors.Is.
var (
	// ErrSyntax is returned for malformed input.
	ErrSyntax = errors.New("expr: syntax error")

	// ErrUnknownName is returned for a name that is neither bound by the
	// environment nor a constant, and for calls to functions outside the
	// allow-list.
	ErrUnknownName = errors.New("expr: unknown name")

	// ErrArity is returned when a function is called with the wrong
	// number of arguments.
	ErrArity = errors.New("expr: wrong number of arguments")

	// ErrDivByZero is returned for division or modulo by zero.
	ErrDivByZero = errors.New("expr: division by zero")

	// ErrNonFinite is returned when an operation produces NaN or an
	// infinity, for example sqrt(-1) or exp(1000).
	ErrNonFinite = errors.New("expr: non-finite result")
)
