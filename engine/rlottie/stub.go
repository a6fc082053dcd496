//go:build !rlottie || !cgo

package rlottie

import "github.com/gogpu/lottie/engine"

// init registers a nil-returning factory when the rlottie tag is not set
// or cgo is disabled, so engine.Get(engine.EngineRlottie) returns nil and
// engine.Default falls through to the next engine.
func init() {
	engine.Register(engine.EngineRlottie, func() engine.Engine {
		return nil
	})
}
