package main

import (
	"log"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/parametric"
	"github.com/gogpu/parametric/canvas"
)

// runWindow animates the pattern in a gogpu window until it is closed.
// Space reloads the configuration file.
func runWindow(o options) error {
	if err := o.validate(); err != nil {
		return err
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle("Parametric Line Drawer").
		WithSize(o.width, o.height).
		WithContinuousRender(false))

	r := canvas.New(nil, canvas.WithYUp(true))
	e := parametric.New(o.width, o.height, r)
	if err := e.Reload(o.config); err != nil {
		log.Printf("Config: %v", err)
	}

	var cv *ggcanvas.Canvas
	var animToken *gogpu.AnimationToken

	app.OnDraw(func(dc *gogpu.Context) {
		if animToken == nil {
			animToken = app.StartAnimation()
		}

		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}

		if cv == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			var err error
			cv, err = ggcanvas.New(provider, w, h)
			if err != nil {
				log.Fatalf("Failed to create canvas: %v", err)
			}
		}

		if cw, ch := cv.Size(); cw != w || ch != h {
			if err := cv.Resize(w, h); err != nil {
				log.Printf("Resize error: %v", err)
			}
		}
		if ew, eh := e.Size(); ew != w || eh != h {
			e.Resize(w, h)
		}

		e.Tick()
		if err := cv.Draw(func(cc *gg.Context) {
			cc.ClearWithColor(background)
			r.SetContext(cc)
			if err := e.Draw(); err != nil {
				log.Printf("Draw error: %v", err)
			}
		}); err != nil {
			log.Printf("Canvas error: %v", err)
		}

		if err := cv.RenderTo(dc.AsTextureDrawer()); err != nil {
			log.Printf("Render error: %v", err)
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key != gpucontext.KeySpace {
			return
		}
		if err := e.Reload(o.config); err != nil {
			log.Printf("Reload failed, keeping %s: %v", e.PatternName(), err)
			return
		}
		log.Printf("Reloaded %s: %s with %d lines", o.config, e.PatternName(), e.LineCount())
	})

	app.OnClose(func() {
		if animToken != nil {
			animToken.Stop()
		}
		gg.CloseAccelerator()
	})

	return app.Run()
}
