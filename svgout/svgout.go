// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package svgout records drawn pattern batches and writes them as SVG
// documents, one document per frame.
package svgout

import (
	"fmt"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/gogpu/gg"

	"github.com/gogpu/parametric/pattern"
)

// DefaultResolution is the number of SVG user units per pixel. svgo
// takes integer coordinates, so points are scaled by the resolution and
// the view box maps them back to the pixel size.
const DefaultResolution = 10

// Option configures a Renderer.
type Option func(*Renderer)

// WithResolution sets the number of user units per pixel. Values below 1
// are ignored.
func WithResolution(units int) Option {
	return func(r *Renderer) {
		if units >= 1 {
			r.res = units
		}
	}
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(r *Renderer) {
		r.title = title
	}
}

// WithBackground fills the document with c before any lines.
func WithBackground(c gg.RGBA) Option {
	return func(r *Renderer) {
		r.background = &c
	}
}

// WithYUp makes y grow upward from the bottom edge.
func WithYUp(yUp bool) Option {
	return func(r *Renderer) {
		r.yUp = yUp
	}
}

// Renderer implements pattern.Renderer. Batch.Draw records a snapshot of
// the batch; WriteTo writes every snapshot recorded since the last write.
type Renderer struct {
	width, height int
	res           int
	title         string
	background    *gg.RGBA
	yUp           bool

	calls []drawCall
}

type drawCall struct {
	width float64
	lines []Line
}

var _ pattern.Renderer = (*Renderer)(nil)

// New returns a renderer for documents of the given pixel size.
func New(width, height int, opts ...Option) *Renderer {
	r := &Renderer{width: width, height: height, res: DefaultResolution}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resize sets the pixel size of later documents.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// Pending returns the number of draw calls recorded since the last write.
func (r *Renderer) Pending() int { return len(r.calls) }

// Discard drops the recorded draw calls.
func (r *Renderer) Discard() { r.calls = r.calls[:0] }

// NewBatch implements pattern.Renderer.
func (r *Renderer) NewBatch() pattern.Batch {
	return &Batch{r: r}
}

// WriteTo writes one SVG document holding the recorded draw calls in
// order, then discards them.
func (r *Renderer) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	s := svg.New(cw)

	vw, vh := r.width*r.res, r.height*r.res
	s.Startview(r.width, r.height, 0, 0, vw, vh)
	if r.title != "" {
		s.Title(r.title)
	}
	if r.background != nil {
		s.Rect(0, 0, vw, vh, "fill:"+rgb(*r.background)+";fill-opacity:"+num(r.background.A))
	}
	if r.yUp {
		s.Gtransform(fmt.Sprintf("translate(0,%d) scale(1,-1)", vh))
	}
	for _, c := range r.calls {
		r.writeCall(s, c)
	}
	if r.yUp {
		s.Gend()
	}
	s.End()

	r.Discard()
	return cw.n, cw.err
}

func (r *Renderer) writeCall(s *svg.SVG, c drawCall) {
	if len(c.lines) == 0 {
		return
	}
	base := c.lines[0].Color
	s.Gstyle("fill:none;stroke-linecap:round;stroke-width:" + num(c.width*float64(r.res)) + ";" + stroke(base))
	for _, l := range c.lines {
		x1, y1 := r.coord(l.A)
		x2, y2 := r.coord(l.B)
		if l.Color != base {
			s.Line(x1, y1, x2, y2, stroke(l.Color))
			continue
		}
		s.Line(x1, y1, x2, y2)
	}
	s.Gend()
}

func (r *Renderer) coord(p gg.Point) (int, int) {
	return scaled(p.X, r.res), scaled(p.Y, r.res)
}

// scaled converts v to user units, saturating at the int32 range so
// huge coordinates stay representable.
func scaled(v float64, res int) int {
	v = math.Round(v * float64(res))
	return int(math.Max(math.MinInt32, math.Min(v, math.MaxInt32)))
}

func stroke(c gg.RGBA) string {
	return "stroke:" + rgb(c) + ";stroke-opacity:" + num(c.A)
}

func rgb(c gg.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(v, 1)) * 255))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// countWriter counts written bytes and keeps the first error, which svgo
// would otherwise drop.
type countWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err
	return n, err
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

// Reset implements pattern.Batch.
func (b *Batch) Reset() {
	clear(b.lines)
	b.lines = b.lines[:0]
}

// Draw records the current lines with the given width.
func (b *Batch) Draw(width float64) error {
	c := drawCall{width: width, lines: make([]Line, len(b.lines))}
	for i, l := range b.lines {
		c.lines[i] = *l
	}
	b.r.calls = append(b.r.calls, c)
	return nil
}
