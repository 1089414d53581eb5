// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pattern

import "github.com/gogpu/gg"

// Renderer creates line batches. The pattern layer never writes pixels
// itself; canvas and svgout provide implementations.
type Renderer interface {
	// NewBatch returns an empty batch.
	NewBatch() Batch
}

// Batch is a redrawable group of lines.
type Batch interface {
	// AddLine adds a line from a to b and returns a handle whose
	// endpoints can be moved later.
	AddLine(a, b gg.Point, color gg.RGBA) Line

	// Draw draws every line in the batch with the given width. The width
	// applies to this call only.
	Draw(width float64) error

	// Reset removes all lines. Handles returned earlier must not be used
	// afterwards.
	Reset()
}

// Line is a single line primitive owned by a Batch.
type Line interface {
	// SetEndpoints moves the line in place.
	SetEndpoints(a, b gg.Point)
}
