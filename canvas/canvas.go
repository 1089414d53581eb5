// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvas draws pattern batches onto a gg.Context.
//
//	dc := gg.NewContext(800, 600)
//	r := canvas.New(dc, canvas.WithYUp(true))
//	b := r.NewBatch()
//	b.AddLine(gg.Pt(0, 0), gg.Pt(800, 600), gg.RGB(1, 1, 1))
//	_ = b.Draw(2)
package canvas

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/parametric/pattern"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithYUp makes y grow upward from the bottom edge of the context
// instead of downward from the top.
func WithYUp(yUp bool) Option {
	return func(r *Renderer) {
		r.yUp = yUp
	}
}

// WithLineCap sets the cap style of every stroked line. The default is
// gg.LineCapRound.
func WithLineCap(c gg.LineCap) Option {
	return func(r *Renderer) {
		r.lineCap = c
	}
}

// Renderer implements pattern.Renderer on a gg.Context.
type Renderer struct {
	dc      *gg.Context
	yUp     bool
	lineCap gg.LineCap
}

var _ pattern.Renderer = (*Renderer)(nil)

// New returns a renderer drawing onto dc.
func New(dc *gg.Context, opts ...Option) *Renderer {
	r := &Renderer{dc: dc, lineCap: gg.LineCapRound}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Context returns the target context.
func (r *Renderer) Context() *gg.Context { return r.dc }

// SetContext retargets the renderer, for example after the host
// replaced its canvas on resize. Existing batches draw onto the new
// context.
func (r *Renderer) SetContext(dc *gg.Context) { r.dc = dc }

// NewBatch implements pattern.Renderer.
func (r *Renderer) NewBatch() pattern.Batch {
	return &Batch{r: r}
}

// Batch is a retained list of lines.
type Batch struct {
	r     *Renderer
	lines []*Line
}

// Line is a retained line.
type Line struct {
	A, B  gg.Point
	Color gg.RGBA
}

// SetEndpoints implements pattern.Line.
func (l *Line) SetEndpoints(a, b gg.Point) { l.A, l.B = a, b }

// AddLine implements pattern.Batch.
func (b *Batch) AddLine(a, c gg.Point, color gg.RGBA) pattern.Line {
	l := &Line{A: a, B: c, Color: color}
	b.lines = append(b.lines, l)
	return l
}

// Len returns the number of lines in the batch.
func (b *Batch) Len() int { return len(b.lines) }

// Reset implements pattern.Batch.
func (b *Batch) Reset() {
	clear(b.lines)
	b.lines = b.lines[:0]
}

// Draw strokes every line with the given width. Consecutive lines of
// the same color share one path. The context's stroke style is restored
// afterwards.
func (b *Batch) Draw(width float64) error {
	dc := b.r.dc
	if dc == nil || len(b.lines) == 0 {
		return nil
	}

	dc.Push()
	defer dc.Pop()
	if b.r.yUp {
		dc.Translate(0, float64(dc.Height()))
		dc.Scale(1, -1)
	}
	defer dc.SetStroke(dc.GetStroke())
	dc.SetLineWidth(width)
	dc.SetLineCap(b.r.lineCap)

	for i := 0; i < len(b.lines); {
		color := b.lines[i].Color
		dc.SetRGBA(color.R, color.G, color.B, color.A)
		j := i
		for ; j < len(b.lines) && b.lines[j].Color == color; j++ {
			l := b.lines[j]
			dc.DrawLine(l.A.X, l.A.Y, l.B.X, l.B.Y)
		}
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("canvas: stroke lines %d-%d: %w", i, j-1, err)
		}
		i = j
	}
	return nil
}
