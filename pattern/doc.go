// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pattern turns point-function configurations into animated line
// sets.
//
// A [Pattern] evaluates its configured points once per iteration n in
// [0, count) and hands the resulting point sets to a [Strategy], which
// decides which points to join:
//
//   - connect joins neighbouring points of one iteration
//   - connectAll joins every pair of points of one iteration
//   - connectClosed joins neighbours and closes the contour
//   - connectToNext joins each point to the same point of the next iteration
//
// Every segment keeps a [Recipe] describing how its endpoints were
// computed. [Pattern.Update] replays all recipes at a new time, so the
// geometry is always a pure function of configuration, iteration and time.
//
// Drawing goes through the [Renderer] and [Batch] interfaces.
package pattern
