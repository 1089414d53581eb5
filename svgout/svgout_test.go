// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package svgout

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
)

type svgLine struct {
	X1    int    `xml:"x1,attr"`
	Y1    int    `xml:"y1,attr"`
	X2    int    `xml:"x2,attr"`
	Y2    int    `xml:"y2,attr"`
	Style string `xml:"style,attr"`
}

type svgGroup struct {
	Style     string     `xml:"style,attr"`
	Transform string     `xml:"transform,attr"`
	Lines     []svgLine  `xml:"line"`
	Groups    []svgGroup `xml:"g"`
}

type svgDoc struct {
	Width   string     `xml:"width,attr"`
	Height  string     `xml:"height,attr"`
	ViewBox string     `xml:"viewBox,attr"`
	Title   string     `xml:"title"`
	Groups  []svgGroup `xml:"g"`
}

func parse(t *testing.T, data []byte) svgDoc {
	t.Helper()
	var d svgDoc
	if err := xml.Unmarshal(data, &d); err != nil {
		t.Fatalf("parse svg: %v\n%s", err, data)
	}
	return d
}

func TestWriteFrame(t *testing.T) {
	r := New(50, 40, WithTitle("frame"))
	b := r.NewBatch()
	b.AddLine(gg.Pt(5, 10), gg.Pt(45, 10.04), gg.RGB(1, 0, 0))
	b.AddLine(gg.Pt(0, 0), gg.Pt(1.25, 2.5), gg.RGB(1, 0, 0))
	if err := b.Draw(2); err != nil {
		t.Fatal(err)
	}
	if r.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", r.Pending())
	}

	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d", n, buf.Len())
	}
	if r.Pending() != 0 {
		t.Errorf("Pending() after write = %d", r.Pending())
	}

	d := parse(t, buf.Bytes())
	if d.Title != "frame" {
		t.Errorf("title = %q", d.Title)
	}
	if d.ViewBox != "0 0 500 400" {
		t.Errorf("viewBox = %q", d.ViewBox)
	}
	if len(d.Groups) != 1 {
		t.Fatalf("%d groups, want 1", len(d.Groups))
	}
	g := d.Groups[0]
	if !strings.Contains(g.Style, "stroke-width:20") || !strings.Contains(g.Style, "stroke:rgb(255,0,0)") {
		t.Errorf("group style = %q", g.Style)
	}
	want := []svgLine{
		{X1: 50, Y1: 100, X2: 450, Y2: 100},
		{X1: 0, Y1: 0, X2: 13, Y2: 25},
	}
	if diff := cmp.Diff(want, g.Lines); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
}

func TestLineColors(t *testing.T) {
	r := New(10, 10, WithResolution(1))
	b := r.NewBatch()
	b.AddLine(gg.Pt(0, 0), gg.Pt(1, 1), gg.RGB(0, 0, 1))
	b.AddLine(gg.Pt(1, 1), gg.Pt(2, 2), gg.RGBA{G: 1, A: 0.5})
	_ = b.Draw(1)

	var buf bytes.Buffer
	if _, err := r.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	lines := parse(t, buf.Bytes()).Groups[0].Lines
	if len(lines) != 2 {
		t.Fatalf("%d lines", len(lines))
	}
	if lines[0].Style != "" {
		t.Errorf("line with group color has style %q", lines[0].Style)
	}
	if lines[1].Style != "stroke:rgb(0,255,0);stroke-opacity:0.5" {
		t.Errorf("line style = %q", lines[1].Style)
	}
}

func TestDrawSnapshots(t *testing.T) {
	r := New(10, 10, WithResolution(1))
	b := r.NewBatch()
	l := b.AddLine(gg.Pt(1, 1), gg.Pt(2, 2), gg.RGB(1, 1, 1))
	_ = b.Draw(1)
	l.SetEndpoints(gg.Pt(3, 3), gg.Pt(4, 4))
	_ = b.Draw(1)
	b.Reset()
	_ = b.Draw(1)

	var buf bytes.Buffer
	if _, err := r.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	groups := parse(t, buf.Bytes()).Groups
	if len(groups) != 2 {
		t.Fatalf("%d groups, want 2 (empty draw writes nothing)", len(groups))
	}
	if got := groups[0].Lines[0]; got.X1 != 1 {
		t.Errorf("first draw line = %+v", got)
	}
	if got := groups[1].Lines[0]; got.X1 != 3 {
		t.Errorf("second draw line = %+v", got)
	}
}

func TestYUpAndBackground(t *testing.T) {
	r := New(10, 20, WithResolution(2), WithYUp(true), WithBackground(gg.RGB(0, 0, 0)))
	b := r.NewBatch()
	b.AddLine(gg.Pt(0, 0), gg.Pt(1, 1), gg.RGB(1, 1, 1))
	_ = b.Draw(1)

	var buf bytes.Buffer
	if _, err := r.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "fill:rgb(0,0,0)") {
		t.Errorf("background missing:\n%s", out)
	}
	d := parse(t, buf.Bytes())
	if len(d.Groups) != 1 || d.Groups[0].Transform != "translate(0,40) scale(1,-1)" {
		t.Fatalf("groups = %+v", d.Groups)
	}
	if len(d.Groups[0].Groups) != 1 {
		t.Errorf("lines not inside the flip group")
	}
}

func TestResize(t *testing.T) {
	r := New(10, 10)
	r.Resize(30, 20)
	var buf bytes.Buffer
	if _, err := r.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if vb := parse(t, buf.Bytes()).ViewBox; vb != "0 0 300 200" {
		t.Errorf("viewBox = %q", vb)
	}
}

type failWriter struct{}

var errWrite = errors.New("disk full")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteError(t *testing.T) {
	r := New(10, 10)
	if _, err := r.WriteTo(failWriter{}); !errors.Is(err, errWrite) {
		t.Errorf("WriteTo error = %v, want %v", err, errWrite)
	}
}
