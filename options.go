package lottie

import (
	"fmt"

	"github.com/gogpu/lottie/engine"
)

// Option configures animation loading.
//
// Example:
//
//	// Highest-priority engine compiled in (rlottie, then software)
//	anim, err := lottie.FromFile("spinner.json")
//
//	// Explicit engine
//	anim, err := lottie.FromFile("spinner.json", lottie.WithEngineName("software"))
type Option func(*options)

// options holds optional configuration for loading.
type options struct {
	engine     engine.Engine
	engineName string
}

// WithEngine loads through e instead of a registered engine.
// Use this for dependency injection of custom or test engines.
func WithEngine(e engine.Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}

// WithEngineName selects a registered engine by name
// (engine.EngineRlottie, engine.EngineSoftware or a custom one).
func WithEngineName(name string) Option {
	return func(o *options) {
		o.engineName = name
	}
}

// resolveEngine applies opts and returns the engine to load with.
// An explicit engine wins over a name; without either the registry default
// is used.
func resolveEngine(opts []Option) (engine.Engine, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case o.engine != nil:
		return o.engine, nil
	case o.engineName != "":
		e := engine.Get(o.engineName)
		if e == nil {
			return nil, fmt.Errorf("%w: %q", ErrEngineNotAvailable, o.engineName)
		}
		return e, nil
	}

	e := engine.Default()
	if e == nil {
		return nil, ErrEngineNotAvailable
	}
	return e, nil
}

// ConfigureModelCacheSize sets how many parsed models the engine keeps,
// keyed by animation identifier. 0 disables the cache. Engines without a
// model cache ignore the call.
func ConfigureModelCacheSize(size int, opts ...Option) error {
	e, err := resolveEngine(opts)
	if err != nil {
		return err
	}
	mc, ok := e.(engine.ModelCacher)
	if !ok {
		Logger().Debug("lottie: engine has no model cache", "engine", e.Name())
		return nil
	}
	mc.SetModelCacheSize(max(size, 0))
	Logger().Debug("lottie: model cache configured", "engine", e.Name(), "size", size)
	return nil
}
