// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package function provides the point functions that generate pattern
// vertices and the registry that dispatches to them by name.
//
// A point function maps a [Config] and a [Context] to a [gg.Point]. Every
// numeric parameter is a [Param]: either a number or an expression
// evaluated against the context (see package expr), so any parameter can
// depend on the iteration index n, the elapsed time, count, angle_step and
// the constants pi, e and tau.
//
// # Built-in functions
//
//	circle        size=100 angle=0
//	square        size=100 angle=0
//	ngon          size=100 angle=0 sides=5 (sides may be fractional)
//	fixed         x=0 y=0
//	sum           functions=[...]
//	multiply      functions=[...] operation=elementwise|scalar_x|scalar_y
//	morph         functions=[...] t=0
//	directed_line from to distance=0 offset=0 rotation=0
//
// The curve family is registered by [RegisterAdvanced], which [NewRegistry]
// runs unless [WithAdvanced](false) is given:
//
//	ellipse (a b angle), superellipse / lamé (a b n angle),
//	hypocycloid / astroida (R r angle), epicycloid (R r angle),
//	lissajous (a b A B delta angle), butterfly (size angle),
//	cardioid (size angle), rose / roses (k size angle),
//	spiral (size turns angle)
//
// # Composites
//
// sum, multiply, morph and directed_line hold nested configs and evaluate
// them through the [Scope] they are given, which carries the registry and
// the nesting depth. Nesting deeper than [MaxDepth] fails with
// [ErrTooDeep] instead of overflowing the stack.
//
// # Failure policy
//
// [Registry.Evaluate] never fails. An unknown name falls back to circle,
// and an error, panic or non-finite result inside a function is logged and
// produces the origin.
package function
