package parametric

import (
	"time"

	"github.com/gogpu/parametric/function"
	"github.com/gogpu/parametric/pattern"
)

// Option configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Default registry and wall clock
//	e := parametric.New(800, 600, renderer)
//
//	// Shared registry with extra functions (dependency injection)
//	e := parametric.New(800, 600, renderer, parametric.WithRegistry(reg))
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	registry   *function.Registry
	advanced   bool
	clock      func() time.Time
	strategies []pattern.Strategy
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		registry: nil, // Will be created with NewRegistry if nil
		advanced: true,
		clock:    time.Now,
	}
}

// WithRegistry sets the function registry patterns evaluate with.
// Use this to share a registry or to register custom point functions
// before loading a configuration.
//
// Example:
//
//	reg := function.NewRegistry()
//	reg.Register("wobble", wobble{})
//	e := parametric.New(800, 600, r, parametric.WithRegistry(reg))
//
// WithAdvancedFunctions has no effect when a registry is given.
func WithRegistry(r *function.Registry) Option {
	return func(o *engineOptions) {
		o.registry = r
	}
}

// WithAdvancedFunctions enables or disables the curve family (ellipse,
// rose, lissajous and the rest) in the engine's own registry. It is
// enabled by default.
func WithAdvancedFunctions(enabled bool) Option {
	return func(o *engineOptions) {
		o.advanced = enabled
	}
}

// WithClock sets the time source Tick measures elapsed time with.
// Headless hosts use it to drive animation at a fixed frame rate.
func WithClock(now func() time.Time) Option {
	return func(o *engineOptions) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithStrategy adds a connection strategy, selected by its Name in the
// pattern key. A strategy with a built-in name replaces the built-in.
func WithStrategy(s pattern.Strategy) Option {
	return func(o *engineOptions) {
		if s != nil {
			o.strategies = append(o.strategies, s)
		}
	}
}
