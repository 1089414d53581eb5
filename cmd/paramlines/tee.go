package main

import (
	"errors"

	"github.com/gogpu/gg"

	"github.com/gogpu/parametric/pattern"
)

// tee draws every batch through several renderers at once.
type tee []pattern.Renderer

func (t tee) NewBatch() pattern.Batch {
	b := make(teeBatch, len(t))
	for i, r := range t {
		b[i] = r.NewBatch()
	}
	return b
}

type teeBatch []pattern.Batch

func (b teeBatch) AddLine(a, c gg.Point, color gg.RGBA) pattern.Line {
	l := make(teeLine, len(b))
	for i, bb := range b {
		l[i] = bb.AddLine(a, c, color)
	}
	return l
}

func (b teeBatch) Draw(width float64) error {
	var errs []error
	for _, bb := range b {
		errs = append(errs, bb.Draw(width))
	}
	return errors.Join(errs...)
}

func (b teeBatch) Reset() {
	for _, bb := range b {
		bb.Reset()
	}
}

type teeLine []pattern.Line

func (l teeLine) SetEndpoints(a, b gg.Point) {
	for _, ll := range l {
		ll.SetEndpoints(a, b)
	}
}
