// Command paramlines draws parametric line patterns.
//
// By default it renders frames headless and writes them as PNG, an
// animated GIF or SVG:
//
//	paramlines -config example_parametric.json -frames 120 -out frame%03d.png
//	paramlines -frames 90 -fps 30 -out loop.gif -scale 0.5
//	paramlines -svg pattern.svg
//
// With -window it opens a gogpu window and animates the pattern live.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/parametric"
	"github.com/gogpu/parametric/canvas"
	"github.com/gogpu/parametric/pattern"
	"github.com/gogpu/parametric/svgout"
)

type options struct {
	config        string
	width, height int
	frames        int
	fps           float64
	out           string
	svg           string
	scale         float64
	window        bool
}

var background = gg.RGB(0, 0, 0)

func main() {
	var (
		o       options
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.StringVar(&o.config, "config", "example_parametric.json", "configuration file")
	flag.IntVar(&o.width, "width", 1024, "image width")
	flag.IntVar(&o.height, "height", 768, "image height")
	flag.IntVar(&o.frames, "frames", 1, "number of frames to render")
	flag.Float64Var(&o.fps, "fps", 60, "frames per second of the animation clock")
	flag.StringVar(&o.out, "out", "frame.png", "output file; %d numbers frames, .gif writes an animation")
	flag.StringVar(&o.svg, "svg", "", "also write the last frame as SVG to this file")
	flag.Float64Var(&o.scale, "scale", 1, "output scale factor")
	flag.BoolVar(&o.window, "window", false, "animate in a window instead of writing files")
	flag.Parse()

	setupLogging(*verbose)

	if o.window {
		banner()
		if err := runWindow(o); err != nil {
			log.Fatalf("Window failed: %v", err)
		}
		return
	}

	if err := runHeadless(o); err != nil {
		log.Fatalf("Render failed: %v", err)
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	parametric.SetLogger(l)
	gg.SetLogger(l)
}

func banner() {
	line := strings.Repeat("=", 50)
	fmt.Println(line)
	fmt.Println("Parametric Line Drawer")
	fmt.Println("Controls: Space - reload config, close window - exit")
	fmt.Println(line)
}

func (o options) validate() error {
	switch {
	case o.width <= 0 || o.height <= 0:
		return fmt.Errorf("invalid size %dx%d", o.width, o.height)
	case o.frames < 1:
		return fmt.Errorf("invalid frame count %d", o.frames)
	case o.fps <= 0:
		return fmt.Errorf("invalid fps %v", o.fps)
	case o.scale <= 0:
		return fmt.Errorf("invalid scale %v", o.scale)
	}
	return nil
}

// runHeadless renders o.frames frames on a fixed-rate clock and writes
// them according to o.out and o.svg.
func runHeadless(o options) error {
	if err := o.validate(); err != nil {
		return err
	}

	dc := gg.NewContext(o.width, o.height)
	defer dc.Close()

	var r pattern.Renderer = canvas.New(dc, canvas.WithYUp(true))
	var sr *svgout.Renderer
	if o.svg != "" {
		sr = svgout.New(o.width, o.height,
			svgout.WithYUp(true),
			svgout.WithBackground(background),
			svgout.WithTitle(filepath.Base(o.config)))
		r = tee{r, sr}
	}

	start := time.Unix(0, 0)
	now := start
	e := parametric.New(o.width, o.height, r, parametric.WithClock(func() time.Time { return now }))
	doc, err := parametric.LoadFile(o.config)
	if err != nil {
		return err
	}
	e.Load(doc)

	animated := strings.EqualFold(filepath.Ext(o.out), ".gif")
	var anim gif.GIF
	delay := max(1, int(100/o.fps+0.5))

	for f := 0; f < o.frames; f++ {
		now = start.Add(time.Duration(float64(f) / o.fps * float64(time.Second)))
		e.Tick()

		dc.ClearWithColor(background)
		if sr != nil {
			sr.Discard()
		}
		if err := e.Draw(); err != nil {
			return fmt.Errorf("frame %d: %w", f, err)
		}
		img := scaleImage(dc.Image(), o.scale)

		switch {
		case animated:
			anim.Image = append(anim.Image, paletted(img))
			anim.Delay = append(anim.Delay, delay)
		case strings.Contains(o.out, "%"):
			if err := writePNG(fmt.Sprintf(o.out, f), img); err != nil {
				return err
			}
		case f == o.frames-1:
			if err := writePNG(o.out, img); err != nil {
				return err
			}
		}
	}

	if animated {
		if err := writeGIF(o.out, &anim); err != nil {
			return err
		}
	}
	if sr != nil {
		if err := writeSVG(o.svg, sr); err != nil {
			return err
		}
	}
	slog.Info("rendered", "frames", o.frames, "pattern", e.PatternName(), "lines", e.LineCount(), "out", o.out)
	return nil
}

// scaleImage resamples img by factor s. s == 1 returns img unchanged.
func scaleImage(img image.Image, s float64) image.Image {
	if s == 1 {
		return img
	}
	b := img.Bounds()
	w := max(1, int(float64(b.Dx())*s+0.5))
	h := max(1, int(float64(b.Dy())*s+0.5))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func paletted(img image.Image) *image.Paletted {
	b := img.Bounds()
	p := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Plan9)
	draw.FloydSteinberg.Draw(p, p.Bounds(), img, b.Min)
	return p
}

func writePNG(path string, img image.Image) error {
	return writeFile(path, func(f *os.File) error { return png.Encode(f, img) })
}

func writeGIF(path string, g *gif.GIF) error {
	return writeFile(path, func(f *os.File) error { return gif.EncodeAll(f, g) })
}

func writeSVG(path string, r *svgout.Renderer) error {
	return writeFile(path, func(f *os.File) error {
		_, err := r.WriteTo(f)
		return err
	})
}

func writeFile(path string, encode func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
