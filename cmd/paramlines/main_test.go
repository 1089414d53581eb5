package main

import (
	"encoding/xml"
	"fmt"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/parametric/pattern"
)

const testConfig = `{
	"parametric_lines": {
		"pattern": "connectClosed",
		"count": 8,
		"color": "#ff8000",
		"points": [
			{"func": "circle", "size": 20, "angle": "n * angle_step + time"},
			{"func": "ngon", "sides": 3, "size": 10, "angle": "n * angle_step"}
		]
	}
}`

func testOptions(t *testing.T) options {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "lines.json")
	if err := os.WriteFile(cfg, []byte(testConfig), 0o600); err != nil {
		t.Fatal(err)
	}
	return options{
		config: cfg,
		width:  64,
		height: 48,
		frames: 1,
		fps:    10,
		out:    filepath.Join(dir, "frame.png"),
		scale:  1,
	}
}

func decodePNG(t *testing.T, path string) (w, h int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestHeadlessPNG(t *testing.T) {
	o := testOptions(t)
	o.frames = 3
	if err := runHeadless(o); err != nil {
		t.Fatal(err)
	}
	if w, h := decodePNG(t, o.out); w != 64 || h != 48 {
		t.Errorf("image size = %dx%d, want 64x48", w, h)
	}
}

func TestHeadlessSequence(t *testing.T) {
	o := testOptions(t)
	o.frames = 3
	o.out = filepath.Join(filepath.Dir(o.out), "seq%02d.png")
	if err := runHeadless(o); err != nil {
		t.Fatal(err)
	}
	for f := 0; f < o.frames; f++ {
		path := fmt.Sprintf(o.out, f)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("frame %d: %v", f, err)
		}
	}
}

func TestHeadlessScale(t *testing.T) {
	o := testOptions(t)
	o.scale = 0.5
	if err := runHeadless(o); err != nil {
		t.Fatal(err)
	}
	if w, h := decodePNG(t, o.out); w != 32 || h != 24 {
		t.Errorf("image size = %dx%d, want 32x24", w, h)
	}
}

func TestHeadlessGIF(t *testing.T) {
	o := testOptions(t)
	o.frames = 4
	o.out = filepath.Join(filepath.Dir(o.out), "loop.gif")
	if err := runHeadless(o); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(o.out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Image) != 4 {
		t.Errorf("%d frames, want 4", len(g.Image))
	}
	for i, d := range g.Delay {
		if d != 10 {
			t.Errorf("frame %d delay = %d, want 10", i, d)
		}
	}
}

func TestHeadlessSVG(t *testing.T) {
	o := testOptions(t)
	o.frames = 2
	o.svg = filepath.Join(filepath.Dir(o.out), "lines.svg")
	if err := runHeadless(o); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(o.svg)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Lines []struct{} `xml:"g>g>line"`
	}
	if err := xml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parse svg: %v", err)
	}
	// connectClosed over two points: two segments per iteration, last
	// frame only.
	if len(doc.Lines) != 8*2 {
		t.Errorf("%d lines, want %d", len(doc.Lines), 8*2)
	}
}

func TestHeadlessErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*options)
	}{
		{"zero width", func(o *options) { o.width = 0 }},
		{"no frames", func(o *options) { o.frames = 0 }},
		{"zero fps", func(o *options) { o.fps = 0 }},
		{"negative scale", func(o *options) { o.scale = -1 }},
		{"missing config", func(o *options) { o.config = filepath.Join(t.TempDir(), "none.json") }},
		{"bad output dir", func(o *options) { o.out = filepath.Join(t.TempDir(), "no", "such", "dir.png") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := testOptions(t)
			tt.modify(&o)
			if err := runHeadless(o); err == nil {
				t.Error("runHeadless succeeded")
			}
		})
	}
}

type countBatch struct {
	lines, draws, resets int
}

func (b *countBatch) AddLine(_, _ gg.Point, _ gg.RGBA) pattern.Line {
	b.lines++
	return countLine{}
}

func (b *countBatch) Draw(float64) error { b.draws++; return nil }
func (b *countBatch) Reset()             { b.resets++ }

type countLine struct{}

func (countLine) SetEndpoints(_, _ gg.Point) {}

type countRenderer struct{ b *countBatch }

func (r *countRenderer) NewBatch() pattern.Batch {
	r.b = &countBatch{}
	return r.b
}

func TestTee(t *testing.T) {
	a, b := &countRenderer{}, &countRenderer{}
	batch := tee{a, b}.NewBatch()
	batch.AddLine(gg.Pt(0, 0), gg.Pt(1, 1), gg.RGB(1, 1, 1)).SetEndpoints(gg.Pt(2, 2), gg.Pt(3, 3))
	batch.AddLine(gg.Pt(0, 0), gg.Pt(1, 1), gg.RGB(1, 1, 1))
	if err := batch.Draw(1); err != nil {
		t.Fatal(err)
	}
	batch.Reset()

	for i, r := range []*countRenderer{a, b} {
		if *r.b != (countBatch{lines: 2, draws: 1, resets: 1}) {
			t.Errorf("renderer %d batch = %+v", i, *r.b)
		}
	}
}
