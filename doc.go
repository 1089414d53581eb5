// Package parametric draws animated line patterns defined by parametric
// point functions.
//
// # Overview
//
// A configuration names a connection pattern and a list of point
// functions. For every iteration n in [0, count) each point function is
// evaluated at n, and the resulting points are joined by lines according
// to the pattern. Parameters may be numbers or arithmetic expressions
// over n, time, count, angle_step and the constants pi, e and tau, so a
// single configuration sweeps out whole families of curves and animates
// them over time.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gg"
//		"github.com/gogpu/parametric"
//		"github.com/gogpu/parametric/canvas"
//	)
//
//	dc := gg.NewContext(800, 600)
//	e := parametric.New(800, 600, canvas.New(dc))
//
//	doc, err := parametric.LoadFile("example_parametric.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	e.Load(doc)
//
//	e.Update(1.5) // seconds
//	dc.ClearWithColor(gg.RGB(0, 0, 0))
//	_ = e.Draw()
//	_ = dc.SavePNG("frame.png")
//
// # Configuration
//
// The document is JSON with a single top-level key:
//
//	{
//	  "parametric_lines": {
//	    "pattern": "connect",
//	    "count": 36,
//	    "color": [255, 200, 0],
//	    "width": 2,
//	    "points": [
//	      {"func": "circle", "size": 200, "angle": "n * angle_step"},
//	      {"func": "ngon", "sides": 5, "size": 120, "angle": "n * angle_step * 2 + time"}
//	    ]
//	  }
//	}
//
// Unknown pattern names fall back to connect and unknown function names
// to circle. Malformed values fall back to their defaults. All of these
// are logged, never fatal.
//
// # Architecture
//
// The module is organized into:
//   - expr: the sandboxed arithmetic expression evaluator
//   - function: parameters, evaluation context, the registry and every point function
//   - pattern: the pattern mechanics, connection strategies and the renderer interfaces
//   - canvas, svgout: renderers for gg.Context and SVG documents
//   - cmd/paramlines: the command line host, headless or in a gogpu window
//
// # Coordinate System
//
// Points are computed relative to the pattern center, which defaults to
// the window center. canvas draws in gg coordinates (y down) unless
// created with canvas.WithYUp.
package parametric

// Version is the current version of the module.
const Version = "0.1.0"
